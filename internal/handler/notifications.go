package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

func (h *Handler) GetMyNotifications(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	notifications, err := h.repository.GetNotificationsByReceiverID(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取通知列表成功", notifications)
}

func (h *Handler) SendNotification(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		ReceiverID int64  `json:"receiverId" validate:"required"`
		Title      string `json:"title" validate:"required"`
		Content    string `json:"content"`
		Type       string `json:"type" validate:"required,oneof=popup redirect"`
		Link       string `json:"link" validate:"required_if=Type redirect"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 确认接收者存在
	receiver, err := h.repository.GetUserByID(req.ReceiverID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "接收者不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	notification := &domain.Notification{
		ID:         uuid.NewString(),
		SenderID:   myInfo.ID,
		ReceiverID: receiver.ID,
		Title:      req.Title,
		Content:    req.Content,
		Type:       domain.NotificationType(req.Type),
		Link:       req.Link,
		Status:     domain.NotificationStatusUnread,
	}

	if err := h.repository.CreateNotification(notification); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 站内通知同时抄送一封邮件
	mailMessage := domain.MailMessage{
		Type: "notification",
		To:   receiver.Email,
		Data: domain.NotificationMailData{
			FullName: receiver.FullName,
			Title:    req.Title,
			Content:  req.Content,
			Link:     req.Link,
		},
	}

	if err := h.publishMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "发送通知成功", notification)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	notificationID := chi.URLParam(r, "id")

	if err := h.repository.MarkNotificationRead(notificationID, myInfo.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "通知不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "通知已读", nil)
}

func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	notificationID := chi.URLParam(r, "id")

	if err := h.repository.DeleteNotification(notificationID, myInfo.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除通知成功", nil)
}
