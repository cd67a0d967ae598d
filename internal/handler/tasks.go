package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

func (h *Handler) GetMyTasks(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	tasks, err := h.repository.GetTasksByUserID(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取任务列表成功", tasks)
}

// GetMyTaskMatrix 按四象限返回任务，四个象限即使为空也都会出现在响应中
func (h *Handler) GetMyTaskMatrix(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	tasks, err := h.repository.GetTasksByUserID(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	matrix := map[domain.TaskCategory][]*domain.Task{
		domain.TaskCategoryUrgentImportant:       {},
		domain.TaskCategoryUrgentNotImportant:    {},
		domain.TaskCategoryNotUrgentImportant:    {},
		domain.TaskCategoryNotUrgentNotImportant: {},
	}
	for _, task := range tasks {
		matrix[task.Category] = append(matrix[task.Category], task)
	}

	h.successResponse(w, r, "获取任务矩阵成功", matrix)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Title         string     `json:"title" validate:"required"`
		Description   string     `json:"description"`
		Category      string     `json:"category" validate:"required,oneof=urgent_important urgent_not_important not_urgent_important not_urgent_not_important"`
		Status        string     `json:"status" validate:"omitempty,oneof=todo in_progress completed"`
		PriorityColor string     `json:"priorityColor"`
		DueDate       *time.Time `json:"dueDate"`
		ReminderTime  *time.Time `json:"reminderTime"`
		Order         int32      `json:"order"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Status == "" {
		req.Status = string(domain.TaskStatusTodo)
	}

	task := &domain.Task{
		ID:            uuid.NewString(),
		UserID:        myInfo.ID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      domain.TaskCategory(req.Category),
		Status:        domain.TaskStatus(req.Status),
		PriorityColor: req.PriorityColor,
		DueDate:       req.DueDate,
		ReminderTime:  req.ReminderTime,
		Order:         req.Order,
	}

	if err := h.repository.CreateTask(task); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建任务成功", task)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title         *string    `json:"title"`
		Description   *string    `json:"description"`
		Category      *string    `json:"category" validate:"omitempty,oneof=urgent_important urgent_not_important not_urgent_important not_urgent_not_important"`
		Status        *string    `json:"status" validate:"omitempty,oneof=todo in_progress completed"`
		PriorityColor *string    `json:"priorityColor"`
		DueDate       *time.Time `json:"dueDate"`
		ReminderTime  *time.Time `json:"reminderTime"`
		Order         *int32     `json:"order"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	task := r.Context().Value(TaskCtx).(*domain.Task)

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Category != nil {
		task.Category = domain.TaskCategory(*req.Category)
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.PriorityColor != nil {
		task.PriorityColor = *req.PriorityColor
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.ReminderTime != nil {
		task.ReminderTime = req.ReminderTime
	}
	if req.Order != nil {
		task.Order = *req.Order
	}

	if err := h.repository.UpdateTask(task); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新任务失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新任务成功", task)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	task := r.Context().Value(TaskCtx).(*domain.Task)

	if err := h.repository.DeleteTask(task.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除任务成功", nil)
}
