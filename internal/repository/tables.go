package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// StatsTables lists the tables reported by CountRows, in query order.
var StatsTables = []string{"users", "rooms", "bookings", "posts"}

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountRows(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(StatsTables))

	for _, table := range StatsTables {
		query, args, err := squirrel.Select("COUNT(*)").From(table).ToSql()
		if err != nil {
			return nil, fmt.Errorf("ошибка при построении запроса: %w", err)
		}

		var count int64
		if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
			return nil, fmt.Errorf("ошибка при подсчёте строк таблицы %s: %w", table, err)
		}
		counts[table] = count
	}

	return counts, nil
}
