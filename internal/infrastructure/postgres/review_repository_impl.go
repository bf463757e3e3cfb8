package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campverse/campground-service/internal/domain/entity"
	"github.com/campverse/campground-service/internal/domain/repository"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *entity.Review) error {
	row := querierFrom(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO reviews (campground_id, owner_id, body, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, rv.CampgroundID, rv.OwnerID, rv.Body, rv.Rating)

	return row.Scan(&rv.ID, &rv.CreatedAt)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	rv := &entity.Review{Owner: &entity.User{}}
	row := querierFrom(ctx, r.pool).QueryRow(ctx, `
		SELECT r.id, r.campground_id, r.body, r.rating, r.owner_id, r.created_at,
		       u.id, u.username, u.email, u.created_at, u.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.owner_id
		WHERE r.id = $1
	`, id)

	if err := row.Scan(&rv.ID, &rv.CampgroundID, &rv.Body, &rv.Rating, &rv.OwnerID, &rv.CreatedAt,
		&rv.Owner.ID, &rv.Owner.Username, &rv.Owner.Email,
		&rv.Owner.CreatedAt, &rv.Owner.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

// ListByCampground returns reviews in creation order, authors resolved.
func (r *ReviewRepository) ListByCampground(ctx context.Context, campgroundID string) ([]entity.Review, error) {
	rows, err := querierFrom(ctx, r.pool).Query(ctx, `
		SELECT r.id, r.campground_id, r.body, r.rating, r.owner_id, r.created_at,
		       u.id, u.username, u.email, u.created_at, u.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.owner_id
		WHERE r.campground_id = $1
		ORDER BY r.created_at ASC
	`, campgroundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Review, 0)
	for rows.Next() {
		rv := entity.Review{Owner: &entity.User{}}
		if err := rows.Scan(&rv.ID, &rv.CampgroundID, &rv.Body, &rv.Rating, &rv.OwnerID, &rv.CreatedAt,
			&rv.Owner.ID, &rv.Owner.Username, &rv.Owner.Email,
			&rv.Owner.CreatedAt, &rv.Owner.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	res, err := querierFrom(ctx, r.pool).Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ReviewRepository) DeleteByCampground(ctx context.Context, campgroundID string) (int64, error) {
	res, err := querierFrom(ctx, r.pool).Exec(ctx, `DELETE FROM reviews WHERE campground_id = $1`, campgroundID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)
