package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campverse/campground-service/internal/application"
	"github.com/campverse/campground-service/internal/infrastructure/memory"
)

func TestReviewService_CreateRatingBounds(t *testing.T) {
	t.Parallel()
	store := memory.NewStore()
	cgSvc := newCampgroundService(store)
	svc := application.NewReviewService(store.Reviews(), store.Campgrounds(), quietLogger())
	ctx := context.Background()
	owner := seedUser(t, store, "alice")

	cg, err := cgSvc.Create(ctx, owner.ID, validInput())
	require.NoError(t, err)

	// boundary ratings are accepted, never clamped
	for _, rating := range []int{0, 5} {
		rv, err := svc.Create(ctx, cg.ID, owner.ID, "fine", rating)
		require.NoError(t, err)
		assert.Equal(t, rating, rv.Rating)
	}

	for _, rating := range []int{-1, 6} {
		_, err := svc.Create(ctx, cg.ID, owner.ID, "fine", rating)
		assert.ErrorIs(t, err, application.ErrValidation, "rating %d", rating)
	}

	_, err = svc.Create(ctx, cg.ID, owner.ID, "", 3)
	assert.ErrorIs(t, err, application.ErrValidation, "empty body")

	list, err := svc.ListByCampground(ctx, cg.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2, "rejected reviews persisted nothing")
}

func TestReviewService_CreateOnMissingCampground(t *testing.T) {
	t.Parallel()
	store := memory.NewStore()
	svc := application.NewReviewService(store.Reviews(), store.Campgrounds(), quietLogger())
	owner := seedUser(t, store, "bob")

	_, err := svc.Create(context.Background(), "no-such-campground", owner.ID, "nice", 4)
	assert.ErrorIs(t, err, application.ErrCampgroundNotFound)
}

func TestReviewService_ListOrderAndAuthors(t *testing.T) {
	t.Parallel()
	store := memory.NewStore()
	cgSvc := newCampgroundService(store)
	svc := application.NewReviewService(store.Reviews(), store.Campgrounds(), quietLogger())
	ctx := context.Background()
	owner := seedUser(t, store, "carol")
	reviewer := seedUser(t, store, "dave")

	cg, err := cgSvc.Create(ctx, owner.ID, validInput())
	require.NoError(t, err)

	_, err = svc.Create(ctx, cg.ID, reviewer.ID, "first visit", 4)
	require.NoError(t, err)
	_, err = svc.Create(ctx, cg.ID, owner.ID, "second visit", 5)
	require.NoError(t, err)

	list, err := svc.ListByCampground(ctx, cg.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first visit", list[0].Body)
	assert.Equal(t, "second visit", list[1].Body)
	require.NotNil(t, list[0].Owner)
	assert.Equal(t, "dave", list[0].Owner.Username)

	_, err = svc.ListByCampground(ctx, "no-such-campground")
	assert.ErrorIs(t, err, application.ErrCampgroundNotFound)
}

func TestReviewService_Delete(t *testing.T) {
	t.Parallel()
	store := memory.NewStore()
	cgSvc := newCampgroundService(store)
	svc := application.NewReviewService(store.Reviews(), store.Campgrounds(), quietLogger())
	ctx := context.Background()
	owner := seedUser(t, store, "erin")

	cg, err := cgSvc.Create(ctx, owner.ID, validInput())
	require.NoError(t, err)
	rv, err := svc.Create(ctx, cg.ID, owner.ID, "short stay", 2)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rv.ID))

	// the campground survives the review's removal
	got, err := cgSvc.Get(ctx, cg.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Reviews)

	err = svc.Delete(ctx, rv.ID)
	assert.ErrorIs(t, err, application.ErrReviewNotFound)
}
