package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/models"
)

func TestPostRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(`SELECT id, title, content, author_id, image_url FROM posts ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "author_id", "image_url"}).
			AddRow(int64(1), "Открытие", "Кратко", int64(1), nil))

	posts, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Nil(t, posts[0].Max)
}

func TestPostRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	query := `SELECT id, title, content, max, author_id, image_url FROM posts WHERE id = $1`
	columns := []string{"id", "title", "content", "max", "author_id", "image_url"}

	t.Run("Пост с полным текстом", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), "Открытие", "Кратко", "Полный текст", int64(1), "http://img/1.png"))

		post, err := repo.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Полный текст", *post.Max)
	})

	t.Run("Пост не найден", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(2)).WillReturnRows(sqlmock.NewRows(columns))

		post, err := repo.GetByID(ctx, 2)

		assert.Nil(t, post)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostRepository_CreateUpdateDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{Title: ptr("Акция"), Content: ptr("Скидки"), Max: ptr("Подробно")}

	mock.ExpectQuery(`
		INSERT INTO posts (title, content, max, author_id, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`).
		WithArgs("Акция", "Скидки", "Подробно", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	mock.ExpectExec(`
		UPDATE posts
		SET title = ?, content = ?, max = ?, author_id = ?, image_url = ?
		WHERE id = ?
	`).
		WithArgs("Акция", "Скидки", "Подробно", nil, nil, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec(`DELETE FROM posts WHERE id = $1`).WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(ctx, post))
	assert.Equal(t, int64(4), post.ID)
	require.NoError(t, repo.Update(ctx, post))
	require.NoError(t, repo.Delete(ctx, post.ID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
