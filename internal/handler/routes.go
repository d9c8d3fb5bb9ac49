package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"hotelbooking/internal/metrics"
	"hotelbooking/internal/middleware"
)

// NewRouter registers the API routes. Cross-cutting middlewares that must
// also see unmatched requests (CORS, logging) are applied by the caller.
func NewRouter(h *Handlers) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.MetricsMiddleware)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Ресурс не найден", http.StatusNotFound)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Метод не поддерживается", http.StatusMethodNotAllowed)
	})

	router.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/bookings", h.ListBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", h.GetBooking).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", h.UpdateBooking).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{id}", h.DeleteBooking).Methods(http.MethodDelete)

	api.HandleFunc("/rooms", h.ListRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms", h.CreateRoom).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}", h.GetRoom).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", h.UpdateRoom).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{id}", h.DeleteRoom).Methods(http.MethodDelete)

	api.HandleFunc("/users/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", h.DeleteUser).Methods(http.MethodDelete)

	api.HandleFunc("/posts", h.ListPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.UpdatePost).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id}", h.DeletePost).Methods(http.MethodDelete)

	api.HandleFunc("/login", h.LegacyLogin).Methods(http.MethodPost)
	api.Handle("/session", SessionMiddleware(h.AuthService)(http.HandlerFunc(h.Session))).Methods(http.MethodGet)
	api.HandleFunc("/images", h.UploadImage).Methods(http.MethodPost)
	api.HandleFunc("/stats", h.StatsHandler).Methods(http.MethodGet)

	return router
}
