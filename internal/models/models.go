package models

import (
	"time"
)

// BookingStatus is a flat classification; any update may set any value.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// DateLayout is the wire format for check-in and check-out dates.
const DateLayout = "2006-01-02"

type User struct {
	ID         int64   `json:"id" db:"id"`
	Name       *string `json:"name" db:"name"`
	Surname    *string `json:"surname" db:"surname"`
	Patronymic *string `json:"patronymic" db:"patronymic"`
	Email      *string `json:"email" db:"email"`
	Phone      *string `json:"phone" db:"phone"`
	Password   *string `json:"-" db:"password"`
}

type Room struct {
	ID           int64    `json:"id" db:"id"`
	Name         *string  `json:"name" db:"name"`
	Type         *string  `json:"type" db:"type"`
	Description  *string  `json:"description" db:"description"`
	Price        *float64 `json:"price" db:"price"`
	MaxOccupancy *int     `json:"max_occupancy" db:"max_occupancy"`
	IsAvailable  *int     `json:"is_available" db:"is_available"`
	Amenities    *string  `json:"amenities" db:"amenities"`
	ImageURL     *string  `json:"image_url" db:"image_url"`
}

// Booking fields other than ID are nullable: updates replace every column,
// and a field missing from the request is written as NULL.
type Booking struct {
	ID             int64          `json:"id" db:"id"`
	UserID         *int64         `json:"user_id" db:"user_id"`
	RoomID         *int64         `json:"room_id" db:"room_id"`
	CheckInDate    *string        `json:"check_in_date" db:"check_in_date"`
	CheckOutDate   *string        `json:"check_out_date" db:"check_out_date"`
	NumberOfGuests *int           `json:"number_of_guests" db:"number_of_guests"`
	TotalPrice     *float64       `json:"total_price" db:"total_price"`
	Status         *BookingStatus `json:"status" db:"status"`
	BookingDate    *time.Time     `json:"booking_date,omitempty" db:"booking_date"`
}

type Post struct {
	ID       int64   `json:"id" db:"id"`
	Title    *string `json:"title" db:"title"`
	Content  *string `json:"content" db:"content"`
	Max      *string `json:"max,omitempty" db:"max"`
	AuthorID *int64  `json:"author_id" db:"author_id"`
	ImageURL *string `json:"image_url" db:"image_url"`
}

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}
