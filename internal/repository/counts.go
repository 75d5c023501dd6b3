package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimassfeb-09/sima-app-web/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CountsRepository struct {
	db *pgxpool.Pool
}

func NewCountsRepository(db *pgxpool.Pool) service.CountsRepository {
	return &CountsRepository{db: db}
}

// GetByTitle возвращает значение счетчика по названию.
// Отсутствующий счетчик читается как 0.
func (r *CountsRepository) GetByTitle(ctx context.Context, title string) (int64, error) {
	query := `SELECT value FROM counts WHERE title = $1;`

	var value int64
	err := r.db.QueryRow(ctx, query, title).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get count by title: %w", err)
	}
	return value, nil
}

// Increment увеличивает счетчик на единицу, создавая его при отсутствии
func (r *CountsRepository) Increment(ctx context.Context, title string) error {
	query := `
		INSERT INTO counts (title, value)
		VALUES ($1, 1)
		ON CONFLICT (title) DO UPDATE SET value = counts.value + 1;
	`
	if _, err := r.db.Exec(ctx, query, title); err != nil {
		return fmt.Errorf("failed to increment count: %w", err)
	}
	return nil
}
