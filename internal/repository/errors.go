package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrNotFound is returned when no row matched the given id or email.
var ErrNotFound = errors.New("запись не найдена")

func notFound(entity string, key any) error {
	return fmt.Errorf("%s %v не найден(о): %w", entity, key, ErrNotFound)
}

// PQCode extracts the SQLSTATE from a lib/pq error, or "" for anything else.
func PQCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
