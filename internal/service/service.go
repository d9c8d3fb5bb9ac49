package service

import (
	"github.com/sirupsen/logrus"

	"hotelbooking/internal/config"
	"hotelbooking/internal/repository"
	"hotelbooking/internal/storage"
)

type Service struct {
	Booking BookingService
	Room    RoomService
	User    UserService
	Auth    AuthService
	Post    PostService
	Image   ImageService
	Stats   StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, recorder BookingRecorder, log logrus.FieldLogger) *Service {
	verifier := NewPasswordVerifier(cfg.Auth.PasswordScheme)

	return &Service{
		Booking: NewBookingService(rep.Booking, recorder, log),
		Room:    NewRoomService(rep.Room, log),
		User:    NewUserService(rep.User, verifier, log),
		Auth:    NewAuthService(rep.User, verifier, cfg.Auth, log),
		Post:    NewPostService(rep.Post, log),
		Image:   NewImageService(storage, log),
		Stats:   NewStatsService(rep.Stats, log),
	}
}
