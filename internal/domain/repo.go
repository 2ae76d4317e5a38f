package domain

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*User, error)
}
