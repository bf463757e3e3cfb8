package repository

import (
	"context"
	"errors"

	"github.com/campverse/campground-service/internal/domain/entity"
)

// ErrNotFound is returned by every repository when the requested row is absent.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique constraint (username, email) is hit.
var ErrDuplicate = errors.New("duplicate identity")

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
