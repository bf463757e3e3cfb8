package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/campverse/campground-service/internal/domain/entity"
	repo "github.com/campverse/campground-service/internal/domain/repository"
)

// ReviewService creates, lists and deletes reviews. A review is always
// attached to an existing campground; rating is an integer in [0,5] and
// out-of-range values are rejected, never clamped.
type ReviewService struct {
	Reviews     repo.ReviewRepository
	Campgrounds repo.CampgroundRepository
	Logger      *logrus.Logger
}

func NewReviewService(reviews repo.ReviewRepository, campgrounds repo.CampgroundRepository, logger *logrus.Logger) *ReviewService {
	return &ReviewService{Reviews: reviews, Campgrounds: campgrounds, Logger: logger}
}

func (s *ReviewService) Create(ctx context.Context, campgroundID, ownerID, body string, rating int) (*entity.Review, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: body is required", ErrValidation)
	}
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	}
	if _, err := s.Campgrounds.GetByID(ctx, campgroundID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCampgroundNotFound
		}
		return nil, err
	}
	rv := &entity.Review{
		CampgroundID: campgroundID,
		OwnerID:      ownerID,
		Body:         body,
		Rating:       rating,
	}
	if err := s.Reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *ReviewService) ListByCampground(ctx context.Context, campgroundID string) ([]entity.Review, error) {
	if _, err := s.Campgrounds.GetByID(ctx, campgroundID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCampgroundNotFound
		}
		return nil, err
	}
	return s.Reviews.ListByCampground(ctx, campgroundID)
}

// Delete removes a single review. The campground's review set is derived
// from the reviews table, so no reference cleanup can be missed.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if err := s.Reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}
