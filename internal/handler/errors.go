package handlers

import (
	"encoding/json"
	"net/http"

	"hotelbooking/internal/service"
)

// ErrorResponse is the body of every failed request. Error carries the
// underlying failure text where it is exposed.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// LoginErrorResponse is used by the login endpoints.
type LoginErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, ErrorResponse{Message: message}, statusCode)
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindBadRequest:
		return http.StatusBadRequest
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError maps a service error kind to its status code.
func writeServiceError(w http.ResponseWriter, err error) {
	e := service.AsError(err)
	writeSuccess(w, ErrorResponse{Message: e.Message, Error: e.Detail}, statusFor(e.Kind))
}

func writeLoginError(w http.ResponseWriter, err error) {
	e := service.AsError(err)
	writeSuccess(w, LoginErrorResponse{Success: false, Message: e.Message}, statusFor(e.Kind))
}

// decodeJSON reports false and writes a 400 when the body is not a JSON
// object matching v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeSuccess(w, ErrorResponse{Message: service.MsgBadRequest, Error: err.Error()}, http.StatusBadRequest)
		return false
	}
	return true
}
