package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"hotelbooking/internal/models"
)

// publicUserColumns never include the password.
const publicUserColumns = `id, name, surname, patronymic, email, phone`

type userRepository struct {
	db *sqlx.DB
	qb squirrel.StatementBuilderType
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{
		db: db,
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + publicUserColumns + ` FROM users ORDER BY id`

	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("ошибка при получении пользователей: %w", err)
	}

	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User

	query := `SELECT ` + publicUserColumns + ` FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("пользователь", id)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

// GetByEmail returns the first matching user together with the stored password.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT ` + publicUserColumns + `, password FROM users WHERE email = $1 ORDER BY id LIMIT 1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("пользователь с email", email)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("ошибка при проверке email: %w", err)
	}

	return exists, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query, args, err := r.qb.
		Insert("users").
		Columns("name", "surname", "patronymic", "email", "phone", "password").
		Values(user.Name, user.Surname, user.Patronymic, user.Email, user.Phone, user.Password).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка при построении запроса: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&user.ID); err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

// Update replaces the profile columns. The password column is only written
// when a non-empty password is supplied.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	builder := r.qb.
		Update("users").
		Set("name", user.Name).
		Set("surname", user.Surname).
		Set("patronymic", user.Patronymic).
		Set("email", user.Email).
		Set("phone", user.Phone)

	if user.Password != nil && *user.Password != "" {
		builder = builder.Set("password", *user.Password)
	}

	query, args, err := builder.Where(squirrel.Eq{"id": user.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка при построении запроса: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении пользователя: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return notFound("пользователь", user.ID)
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка при удалении пользователя: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return notFound("пользователь", id)
	}

	return nil
}
