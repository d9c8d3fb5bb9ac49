package handlers

import (
	"net/http"

	"hotelbooking/internal/models"
	"hotelbooking/internal/service"
)

// userRequest accepts the password, which models.User never serializes.
type userRequest struct {
	Name       *string `json:"name"`
	Surname    *string `json:"surname"`
	Patronymic *string `json:"patronymic"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Password   *string `json:"password"`
}

func (req userRequest) toModel() models.User {
	return models.User{
		Name:       req.Name,
		Surname:    req.Surname,
		Patronymic: req.Patronymic,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
	}
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, users, http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, service.MsgUserAbsent, http.StatusNotFound)
		return
	}

	user, err := h.UserService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.Create(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, user, http.StatusCreated)
}

// UpdateUser keeps the stored password when the body has none.
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, service.MsgUserAbsent, http.StatusNotFound)
		return
	}

	var req userRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.Update(r.Context(), id, req.toModel())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, service.MsgUserAbsent, http.StatusNotFound)
		return
	}

	if err := h.UserService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, DeleteResponse{ID: id}, http.StatusOK)
}
