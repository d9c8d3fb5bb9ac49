package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hotelbooking/internal/models"
)

const roomColumns = `id, name, type, description, price, max_occupancy, is_available, amenities, image_url`

type roomRepository struct {
	db *sqlx.DB
}

func NewRoomRepository(db *sqlx.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) List(ctx context.Context) ([]models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY id`

	rooms := []models.Room{}
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("ошибка при получении номеров: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	var room models.Room
	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("номер", id)
		}
		return nil, fmt.Errorf("ошибка при получении номера: %w", err)
	}

	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (name, type, description, price, max_occupancy, is_available, amenities, image_url)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, 1), $7, $8)
		RETURNING id, is_available
	`

	err := r.db.QueryRowxContext(ctx, query,
		room.Name,
		room.Type,
		room.Description,
		room.Price,
		room.MaxOccupancy,
		room.IsAvailable,
		room.Amenities,
		room.ImageURL,
	).Scan(&room.ID, &room.IsAvailable)
	if err != nil {
		return fmt.Errorf("ошибка при создании номера: %w", err)
	}

	return nil
}

func (r *roomRepository) Update(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE rooms SET
			name = :name,
			type = :type,
			description = :description,
			price = :price,
			max_occupancy = :max_occupancy,
			is_available = :is_available,
			amenities = :amenities,
			image_url = :image_url
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, room)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении номера: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return notFound("номер", room.ID)
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка при удалении номера: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return notFound("номер", id)
	}

	return nil
}
