package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/config"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.GetMySettings)
				r.Put("/", h.UpdateMySettings)
			})
		})

		// 用户管理只对管理员开放
		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteUser)
				r.Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyTasks)
			r.Get("/matrix", h.GetMyTaskMatrix)
			r.Post("/", h.CreateTask)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.taskInfo)
				r.Patch("/", h.UpdateTask)
				r.Delete("/", h.DeleteTask)
			})
		})

		r.Route("/notes", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyNotes)
			r.Post("/", h.CreateNote)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.noteInfo)
				r.Patch("/", h.UpdateNote)
				r.Delete("/", h.DeleteNote)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyNotifications)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.SendNotification)
			r.Patch("/{id}/read", h.MarkNotificationRead)
			r.Delete("/{id}", h.DeleteNotification)
		})

		// 请假排班
		r.Route("/vacations", func(r chi.Router) {
			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.GetEmployees)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Put("/", h.UpdateEmployees)
			})
			r.Route("/months/{month}", func(r chi.Router) {
				r.Get("/", h.GetMonthSchedule)
				r.Patch("/employees/{index}", h.UpdateMonthEmployee)
			})
			r.Route("/days/{date}/slots", func(r chi.Router) {
				r.Post("/", h.AddLeaveSlot)
				r.Route("/{slotID}", func(r chi.Router) {
					r.Patch("/", h.AssignLeaveSlot)
					r.Delete("/", h.DeleteLeaveSlot)
					r.Post("/move", h.MoveLeaveSlot)
				})
			})
		})
	})
}
