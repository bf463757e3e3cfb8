package repository

import (
	"context"

	"github.com/campverse/campground-service/internal/domain/entity"
)

// ReviewRepository defines review persistence operations.
// ListByCampground returns reviews in creation order with authors resolved.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByCampground(ctx context.Context, campgroundID string) ([]entity.Review, error)
	Delete(ctx context.Context, id string) error
	DeleteByCampground(ctx context.Context, campgroundID string) (int64, error)
}
