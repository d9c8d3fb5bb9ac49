package handlers

import (
	"net/http"

	"hotelbooking/internal/service"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool               `json:"success"`
	User    *service.LoginUser `json:"user"`
}

type LegacyLoginResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Token   string `json:"token"`
}

type SessionResponse struct {
	ID int64 `json:"id"`
}

// Login distinguishes an unknown email (404) from a wrong password (401).
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeLoginError(w, err)
		return
	}

	writeSuccess(w, LoginResponse{Success: true, User: user}, http.StatusOK)
}

// LegacyLogin answers every credential failure with 401 and returns a
// session token on success.
func (h *Handlers) LegacyLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		e := service.AsError(err)
		if e.Kind == service.KindNotFound {
			e = &service.Error{Kind: service.KindUnauthorized, Message: e.Message, Cause: e.Cause}
		}
		writeLoginError(w, e)
		return
	}

	token, err := h.AuthService.IssueToken(user.ID)
	if err != nil {
		h.Log.WithError(err).Error("issue token")
		writeLoginError(w, err)
		return
	}

	writeSuccess(w, LegacyLoginResponse{Success: true, ID: user.ID, Token: token}, http.StatusOK)
}

// Session returns the user id carried by the bearer token. SessionMiddleware
// has already rejected requests without a valid one.
func (h *Handlers) Session(w http.ResponseWriter, r *http.Request) {
	userID, ok := SessionUserID(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	writeSuccess(w, SessionResponse{ID: userID}, http.StatusOK)
}
