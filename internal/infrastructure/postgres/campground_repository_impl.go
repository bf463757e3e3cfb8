package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campverse/campground-service/internal/domain/entity"
	"github.com/campverse/campground-service/internal/domain/repository"
)

type CampgroundRepository struct {
	pool *pgxpool.Pool
}

func NewCampgroundRepository(pool *pgxpool.Pool) *CampgroundRepository {
	return &CampgroundRepository{pool: pool}
}

const campgroundWithOwner = `
	SELECT c.id, c.title, c.price, c.description, c.location, c.image_url,
	       c.owner_id, c.created_at, c.updated_at,
	       u.id, u.username, u.email, u.created_at, u.updated_at
	FROM campgrounds c
	JOIN users u ON u.id = c.owner_id
`

func (r *CampgroundRepository) Create(ctx context.Context, cg *entity.Campground) error {
	row := querierFrom(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO campgrounds (title, price, description, location, image_url, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, cg.Title, cg.Price, cg.Description, cg.Location, cg.ImageURL, cg.OwnerID)

	return row.Scan(&cg.ID, &cg.CreatedAt, &cg.UpdatedAt)
}

func (r *CampgroundRepository) GetByID(ctx context.Context, id string) (*entity.Campground, error) {
	row := querierFrom(ctx, r.pool).QueryRow(ctx, campgroundWithOwner+` WHERE c.id = $1`, id)
	cg, err := scanCampground(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return cg, nil
}

func (r *CampgroundRepository) List(ctx context.Context) ([]entity.Campground, error) {
	rows, err := querierFrom(ctx, r.pool).Query(ctx, campgroundWithOwner+` ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Campground, 0)
	for rows.Next() {
		cg, err := scanCampground(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *cg)
	}
	return out, rows.Err()
}

// Update is a full-field replace; partial updates are not supported.
func (r *CampgroundRepository) Update(ctx context.Context, cg *entity.Campground) error {
	res, err := querierFrom(ctx, r.pool).Exec(ctx, `
		UPDATE campgrounds
		SET title = $1, price = $2, description = $3, location = $4,
		    image_url = $5, updated_at = now()
		WHERE id = $6
	`, cg.Title, cg.Price, cg.Description, cg.Location, cg.ImageURL, cg.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CampgroundRepository) Delete(ctx context.Context, id string) error {
	res, err := querierFrom(ctx, r.pool).Exec(ctx, `DELETE FROM campgrounds WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanCampground(row pgx.Row) (*entity.Campground, error) {
	cg := &entity.Campground{Owner: &entity.User{}}
	if err := row.Scan(
		&cg.ID, &cg.Title, &cg.Price, &cg.Description, &cg.Location, &cg.ImageURL,
		&cg.OwnerID, &cg.CreatedAt, &cg.UpdatedAt,
		&cg.Owner.ID, &cg.Owner.Username, &cg.Owner.Email,
		&cg.Owner.CreatedAt, &cg.Owner.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return cg, nil
}

var _ repository.CampgroundRepository = (*CampgroundRepository)(nil)
