package repository

import (
	"context"

	"github.com/campverse/campground-service/internal/domain/entity"
)

// CampgroundRepository defines campground persistence operations.
// GetByID resolves the owner; List resolves owners for every row.
type CampgroundRepository interface {
	Create(ctx context.Context, cg *entity.Campground) error
	GetByID(ctx context.Context, id string) (*entity.Campground, error)
	List(ctx context.Context) ([]entity.Campground, error)
	Update(ctx context.Context, cg *entity.Campground) error
	Delete(ctx context.Context, id string) error
}

// TxManager runs fn inside a single storage transaction. The context passed
// to fn carries the transaction; repositories route their queries through it.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
