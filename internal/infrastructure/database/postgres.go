package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/watchstore-app/backend/internal/domain"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		panic(err)
	}
	if err := pool.Ping(ctx); err != nil {
		panic(err)
	}
	return pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetByID fetches the push-routing address for one user. The user table is
// owned by the storefront; this service only reads it.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	var (
		u     domain.User
		token *string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, fcm_token
		FROM users
		WHERE id=$1
		`, userID).Scan(&u.ID, &token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	if token != nil {
		u.FCMToken = *token
	}
	return &u, nil
}
