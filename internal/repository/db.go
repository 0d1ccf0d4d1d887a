package repository

import (
	"context"
	"errors"
	"fmt"

	"gamestore/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB - подмножество pgxpool.Pool, которое нужно репозиториям.
// Реализуется *pgxpool.Pool и pgxmock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// notFound переводит pgx.ErrNoRows в models.ErrNotFound, остальное оборачивает.
func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, models.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// ErrNotFound - псевдоним models.ErrNotFound для вызывающих пакет repository.
var ErrNotFound = models.ErrNotFound
