package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"hotelbooking/internal/config"
	"hotelbooking/internal/service"
)

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	BookingService service.BookingService
	RoomService    service.RoomService
	UserService    service.UserService
	AuthService    service.AuthService
	PostService    service.PostService
	ImageService   service.ImageService
	StatsService   service.StatsService
	DB             HealthChecker
	Cfg            *config.Config
	Validate       *validator.Validate
	Log            logrus.FieldLogger
}

func NewHandlers(service *service.Service, db HealthChecker, config *config.Config, log logrus.FieldLogger) *Handlers {
	return &Handlers{
		BookingService: service.Booking,
		RoomService:    service.Room,
		UserService:    service.User,
		AuthService:    service.Auth,
		PostService:    service.Post,
		ImageService:   service.Image,
		StatsService:   service.Stats,
		DB:             db,
		Cfg:            config,
		Validate:       validator.New(),
		Log:            log,
	}
}

// pathID reads the {id} route variable. ok is false when it does not fit an
// int64, in which case no row can match.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// DeleteResponse is returned by every successful DELETE.
type DeleteResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message,omitempty"`
}
