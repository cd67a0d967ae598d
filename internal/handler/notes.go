package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

func (h *Handler) GetMyNotes(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	notes, err := h.repository.GetNotesByUserID(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取便签列表成功", notes)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	note := &domain.Note{
		ID:      uuid.NewString(),
		UserID:  myInfo.ID,
		Content: req.Content,
	}

	if err := h.repository.CreateNote(note); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建便签成功", note)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	note := r.Context().Value(NoteCtx).(*domain.Note)
	note.Content = req.Content

	if err := h.repository.UpdateNote(note); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新便签失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新便签成功", note)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	note := r.Context().Value(NoteCtx).(*domain.Note)

	if err := h.repository.DeleteNote(note.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除便签成功", nil)
}
