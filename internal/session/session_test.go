package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campverse/campground-service/internal/domain/entity"
	"github.com/campverse/campground-service/internal/session"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	t.Parallel()
	store := session.NewMemoryStore()
	ctx := context.Background()

	sess, err := store.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.False(t, sess.Authenticated())

	u := &entity.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
	require.NoError(t, store.BindUser(ctx, sess.ID, u))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, got.Authenticated())
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "alice", got.Username)

	require.NoError(t, store.Destroy(ctx, sess.ID))
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrNoSession)

	// a destroyed session never accepts a late bind
	err = store.BindUser(ctx, sess.ID, u)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestMemoryStore_ReturnToConsumedOnce(t *testing.T) {
	t.Parallel()
	store := session.NewMemoryStore()
	ctx := context.Background()

	sess, err := store.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, store.SetReturnTo(ctx, sess.ID, "/campgrounds/abc"))
	// later visits overwrite earlier targets
	require.NoError(t, store.SetReturnTo(ctx, sess.ID, "/campgrounds/xyz"))

	got, err := store.TakeReturnTo(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "/campgrounds/xyz", got)

	got, err = store.TakeReturnTo(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_UnknownSession(t *testing.T) {
	t.Parallel()
	store := session.NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrNoSession)

	// destroy is idempotent
	assert.NoError(t, store.Destroy(ctx, "missing"))

	got, err := store.TakeReturnTo(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}
