package handlers

import (
	"fmt"
	"net/http"

	"hotelbooking/internal/service"
)

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, service.MsgPostAbsent, http.StatusNotFound)
		return
	}

	post, err := h.PostService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req service.PostInput
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.PostService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, service.MsgPostAbsent, http.StatusNotFound)
		return
	}

	var req service.PostInput
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.PostService.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, service.MsgPostAbsent, http.StatusNotFound)
		return
	}

	if err := h.PostService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, DeleteResponse{
		ID:      id,
		Message: fmt.Sprintf("Пост с ID %d успешно удален", id),
	}, http.StatusOK)
}
