package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hotelbooking/internal/models"
)

// dates are rendered by the store so reads return the same YYYY-MM-DD text that was written
const bookingColumns = `id, user_id, room_id,
	to_char(check_in_date, 'YYYY-MM-DD') AS check_in_date,
	to_char(check_out_date, 'YYYY-MM-DD') AS check_out_date,
	number_of_guests, total_price, status, booking_date`

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY id`

	bookings := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, fmt.Errorf("ошибка при получении бронирований: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("бронирование", id)
		}
		return nil, fmt.Errorf("ошибка при получении бронирования: %w", err)
	}

	return &booking, nil
}

// Create inserts the booking as given. No overlap or existence checks are made.
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (user_id, room_id, check_in_date, check_out_date, number_of_guests, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		booking.UserID,
		booking.RoomID,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.NumberOfGuests,
		booking.TotalPrice,
		booking.Status,
	).Scan(&booking.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании бронирования: %w", err)
	}

	return nil
}

// Update overwrites every column of the row, nil fields included.
func (r *bookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings SET
			user_id = :user_id,
			room_id = :room_id,
			check_in_date = :check_in_date,
			check_out_date = :check_out_date,
			number_of_guests = :number_of_guests,
			total_price = :total_price,
			status = :status
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, booking)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении бронирования: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return notFound("бронирование", booking.ID)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка при удалении бронирования: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return notFound("бронирование", id)
	}

	return nil
}
