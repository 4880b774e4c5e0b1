package repository

import (
	"context"
	"errors"

	"bookshelf/internal/domain/entity"
)

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned by inserts that violate a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

// UserRepository defines the interface for credential store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) (string, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
