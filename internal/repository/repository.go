package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"hotelbooking/internal/models"
)

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id int64) error
}

type BookingRepository interface {
	List(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id int64) error
}

type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
}

type StatsRepository interface {
	CountRows(ctx context.Context) (map[string]int64, error)
}

type Repository struct {
	User    UserRepository
	Room    RoomRepository
	Booking BookingRepository
	Post    PostRepository
	Stats   StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Room:    NewRoomRepository(db),
		Booking: NewBookingRepository(db),
		Post:    NewPostRepository(db),
		Stats:   NewStatsRepository(db),
	}
}
