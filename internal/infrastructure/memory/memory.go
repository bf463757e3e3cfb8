// Package memory provides map-backed implementations of the domain
// repositories. They back the test suites and are handy for running the
// service without external infrastructure.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campverse/campground-service/internal/domain/entity"
	"github.com/campverse/campground-service/internal/domain/repository"
)

// Store holds all collections behind one mutex, mirroring the single
// externally-synchronized store the service assumes.
type Store struct {
	mu          sync.Mutex
	users       map[string]entity.User
	campgrounds map[string]entity.Campground
	reviews     map[string]entity.Review
	reviewSeq   map[string]int
	seq         int
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]entity.User),
		campgrounds: make(map[string]entity.Campground),
		reviews:     make(map[string]entity.Review),
		reviewSeq:   make(map[string]int),
	}
}

func (s *Store) Users() *UserRepository             { return &UserRepository{s} }
func (s *Store) Campgrounds() *CampgroundRepository { return &CampgroundRepository{s} }
func (s *Store) Reviews() *ReviewRepository         { return &ReviewRepository{s} }
func (s *Store) Tx() *TxManager                     { return &TxManager{} }

// TxManager satisfies repository.TxManager; the map store mutates in place,
// so fn simply runs against the live store.
type TxManager struct{}

func (TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findBy(func(u entity.User) bool { return u.Username == username })
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findBy(func(u entity.User) bool { return u.Email == email })
}

func (r *UserRepository) findBy(match func(entity.User) bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type CampgroundRepository struct{ s *Store }

func (r *CampgroundRepository) Create(ctx context.Context, cg *entity.Campground) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cg.ID = uuid.NewString()
	cg.CreatedAt = time.Now()
	cg.UpdatedAt = cg.CreatedAt
	stored := *cg
	stored.Owner = nil
	stored.Reviews = nil
	r.s.campgrounds[cg.ID] = stored
	return nil
}

func (r *CampgroundRepository) GetByID(ctx context.Context, id string) (*entity.Campground, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cg, ok := r.s.campgrounds[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if owner, ok := r.s.users[cg.OwnerID]; ok {
		owner := owner
		cg.Owner = &owner
	}
	return &cg, nil
}

func (r *CampgroundRepository) List(ctx context.Context) ([]entity.Campground, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Campground, 0, len(r.s.campgrounds))
	for _, cg := range r.s.campgrounds {
		if owner, ok := r.s.users[cg.OwnerID]; ok {
			owner := owner
			cg.Owner = &owner
		}
		out = append(out, cg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *CampgroundRepository) Update(ctx context.Context, cg *entity.Campground) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.campgrounds[cg.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Title = cg.Title
	stored.Price = cg.Price
	stored.Description = cg.Description
	stored.Location = cg.Location
	stored.ImageURL = cg.ImageURL
	stored.UpdatedAt = time.Now()
	r.s.campgrounds[cg.ID] = stored
	return nil
}

func (r *CampgroundRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.campgrounds[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.campgrounds, id)
	return nil
}

type ReviewRepository struct{ s *Store }

func (r *ReviewRepository) Create(ctx context.Context, rv *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rv.ID = uuid.NewString()
	rv.CreatedAt = time.Now()
	stored := *rv
	stored.Owner = nil
	r.s.reviews[rv.ID] = stored
	r.s.seq++
	r.s.reviewSeq[rv.ID] = r.s.seq
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if owner, ok := r.s.users[rv.OwnerID]; ok {
		owner := owner
		rv.Owner = &owner
	}
	return &rv, nil
}

func (r *ReviewRepository) ListByCampground(ctx context.Context, campgroundID string) ([]entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Review, 0)
	for _, rv := range r.s.reviews {
		if rv.CampgroundID != campgroundID {
			continue
		}
		if owner, ok := r.s.users[rv.OwnerID]; ok {
			owner := owner
			rv.Owner = &owner
		}
		out = append(out, rv)
	}
	sort.Slice(out, func(i, j int) bool {
		return r.s.reviewSeq[out[i].ID] < r.s.reviewSeq[out[j].ID]
	})
	return out, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.reviews, id)
	delete(r.s.reviewSeq, id)
	return nil
}

func (r *ReviewRepository) DeleteByCampground(ctx context.Context, campgroundID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, rv := range r.s.reviews {
		if rv.CampgroundID == campgroundID {
			delete(r.s.reviews, id)
			delete(r.s.reviewSeq, id)
			n++
		}
	}
	return n, nil
}

var (
	_ repository.UserRepository       = (*UserRepository)(nil)
	_ repository.CampgroundRepository = (*CampgroundRepository)(nil)
	_ repository.ReviewRepository     = (*ReviewRepository)(nil)
	_ repository.TxManager            = (*TxManager)(nil)
)
