package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/campverse/campground-service/internal/domain/entity"
	repo "github.com/campverse/campground-service/internal/domain/repository"
	"github.com/campverse/campground-service/pkg/helpers"
)

// CampgroundService owns campground CRUD, the two-level detail resolution,
// and the explicit cascade delete that keeps reviews from outliving their
// campground. Search indexing and image upload are best-effort side channels.
type CampgroundService struct {
	Campgrounds repo.CampgroundRepository
	Reviews     repo.ReviewRepository
	Tx          repo.TxManager
	Logger      *logrus.Logger

	ES      *elasticsearch.Client
	ESIndex string

	GCS       *storage.Client
	GCSBucket string
}

func NewCampgroundService(campgrounds repo.CampgroundRepository, reviews repo.ReviewRepository, tx repo.TxManager, logger *logrus.Logger) *CampgroundService {
	return &CampgroundService{Campgrounds: campgrounds, Reviews: reviews, Tx: tx, Logger: logger}
}

// CampgroundInput carries the full field set; create and update both require
// every field (update is a full replace, never partial).
type CampgroundInput struct {
	Title       string
	Price       float64
	Description string
	Location    string
	ImageURL    string
}

func (in CampgroundInput) validate() error {
	if in.Title == "" || in.Description == "" || in.Location == "" || in.ImageURL == "" {
		return fmt.Errorf("%w: title, price, description, location and image are required", ErrValidation)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}

func (s *CampgroundService) Create(ctx context.Context, ownerID string, in CampgroundInput) (*entity.Campground, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	cg := &entity.Campground{
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
		OwnerID:     ownerID,
	}
	if err := s.Campgrounds.Create(ctx, cg); err != nil {
		return nil, err
	}
	s.index(ctx, cg)
	return cg, nil
}

// Get resolves the campground, its owner, and every review with its author.
func (s *CampgroundService) Get(ctx context.Context, id string) (*entity.Campground, error) {
	cg, err := s.Campgrounds.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCampgroundNotFound
		}
		return nil, err
	}
	reviews, err := s.Reviews.ListByCampground(ctx, id)
	if err != nil {
		return nil, err
	}
	cg.Reviews = reviews
	return cg, nil
}

func (s *CampgroundService) List(ctx context.Context) ([]entity.Campground, error) {
	return s.Campgrounds.List(ctx)
}

// Update replaces all mutable fields. The caller has already passed the
// ownership guard; a vanished row still maps to not-found.
func (s *CampgroundService) Update(ctx context.Context, id string, in CampgroundInput) (*entity.Campground, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	cg := &entity.Campground{
		ID:          id,
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
	}
	if err := s.Campgrounds.Update(ctx, cg); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCampgroundNotFound
		}
		return nil, err
	}
	updated, err := s.Campgrounds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.index(ctx, updated)
	return updated, nil
}

// Delete removes the campground and every review it contains, atomically.
// A concurrent second delete observes not-found instead of corrupting state.
func (s *CampgroundService) Delete(ctx context.Context, id string) error {
	if _, err := s.Campgrounds.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCampgroundNotFound
		}
		return err
	}
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		// Reviews first: they reference the campground row.
		if _, err := s.Reviews.DeleteByCampground(ctx, id); err != nil {
			return err
		}
		return s.Campgrounds.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCampgroundNotFound
		}
		return err
	}
	s.deleteFromIndex(ctx, id)
	return nil
}

// UploadImage stores the campground image in GCS and replaces the image URL.
func (s *CampgroundService) UploadImage(ctx context.Context, id string, r io.Reader, filename, contentType string) (*entity.Campground, error) {
	cg, err := s.Campgrounds.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCampgroundNotFound
		}
		return nil, err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("campgrounds", id, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	cg.ImageURL = url
	if err := s.Campgrounds.Update(ctx, cg); err != nil {
		return nil, err
	}
	s.index(ctx, cg)
	return cg, nil
}

// Search performs a multi_match query over title, location and description.
func (s *CampgroundService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "location", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *CampgroundService) index(ctx context.Context, cg *entity.Campground) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          cg.ID,
		"title":       cg.Title,
		"price":       cg.Price,
		"location":    cg.Location,
		"description": cg.Description,
		"image":       cg.ImageURL,
		"owner_id":    cg.OwnerID,
		"created_at":  cg.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: cg.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("campground_id", cg.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("campground_id", cg.ID).Warn("es index response error")
	}
}

func (s *CampgroundService) deleteFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("campground_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
