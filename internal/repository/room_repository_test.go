package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/models"
)

var roomRowColumns = []string{
	"id", "name", "type", "description", "price", "max_occupancy", "is_available", "amenities", "image_url",
}

func TestRoomRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	query := `
		INSERT INTO rooms (name, type, description, price, max_occupancy, is_available, amenities, image_url)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, 1), $7, $8)
		RETURNING id, is_available
	`

	room := &models.Room{
		Name:         ptr("Люкс"),
		Type:         ptr("suite"),
		Price:        ptr(1500.0),
		MaxOccupancy: ptr(2),
	}

	mock.ExpectQuery(query).
		WithArgs("Люкс", "suite", nil, 1500.0, int64(2), nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_available"}).AddRow(int64(3), int64(1)))

	err := repo.Create(context.Background(), room)

	require.NoError(t, err)
	assert.Equal(t, int64(3), room.ID)
	require.NotNil(t, room.IsAvailable)
	assert.Equal(t, 1, *room.IsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	t.Run("Успешное получение номера", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(roomRowColumns).
				AddRow(int64(3), "Люкс", "suite", "Вид на море", 1500.0, int64(2), int64(1), "wifi", nil))

		room, err := repo.GetByID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "Люкс", *room.Name)
		assert.Equal(t, 1500.0, *room.Price)
		assert.Nil(t, room.ImageURL)
	})

	t.Run("Номер не найден", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(9)).WillReturnRows(sqlmock.NewRows(roomRowColumns))

		room, err := repo.GetByID(ctx, 9)

		assert.Nil(t, room)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRoomRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectQuery(`SELECT ` + roomColumns + ` FROM rooms ORDER BY id`).
		WillReturnError(errors.New("relation \"rooms\" does not exist"))

	rooms, err := repo.List(context.Background())

	assert.Nil(t, rooms)
	assert.Contains(t, err.Error(), "ошибка при получении номеров")
}

func TestRoomRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	query := `
		UPDATE rooms SET
			name = ?,
			type = ?,
			description = ?,
			price = ?,
			max_occupancy = ?,
			is_available = ?,
			amenities = ?,
			image_url = ?
		WHERE id = ?
	`

	room := &models.Room{ID: 3, Type: ptr("standard"), IsAvailable: ptr(0)}

	mock.ExpectExec(query).
		WithArgs(nil, "standard", nil, nil, nil, int64(0), nil, nil, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).
		WithArgs(nil, "standard", nil, nil, nil, int64(0), nil, nil, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Update(context.Background(), room))
	assert.ErrorIs(t, repo.Update(context.Background(), room), ErrNotFound)
}

func TestRoomRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectExec(`DELETE FROM rooms WHERE id = $1`).WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), ErrNotFound)
}
