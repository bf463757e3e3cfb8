package application_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campverse/campground-service/internal/application"
	"github.com/campverse/campground-service/internal/infrastructure/memory"
	"github.com/campverse/campground-service/pkg/helpers"
)

func newAuthService(store *memory.Store) *application.AuthService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return application.NewAuthService(store.Users(), logger, nil, "campverse", false)
}

func TestAuthService_RegisterAndAuthenticate(t *testing.T) {
	t.Parallel()
	svc := newAuthService(memory.NewStore())
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice@example.com", "alice", "hunter2secret")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "hunter2secret", u.PasswordHash, "plaintext must never be stored")
	assert.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "hunter2secret"))

	got, err := svc.Authenticate(ctx, "alice", "hunter2secret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	t.Parallel()
	svc := newAuthService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, "bob@example.com", "bob", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "bob@example.com", "bob2", "password123")
	assert.ErrorIs(t, err, application.ErrDuplicateIdentity)

	_, err = svc.Register(ctx, "bob2@example.com", "bob", "password123")
	assert.ErrorIs(t, err, application.ErrDuplicateIdentity)

	// the duplicate attempts persisted nothing
	_, err = svc.Authenticate(ctx, "bob2", "password123")
	assert.ErrorIs(t, err, application.ErrInvalidCredential)
}

func TestAuthService_RegisterMissingFields(t *testing.T) {
	t.Parallel()
	svc := newAuthService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "carol", "password123")
	assert.ErrorIs(t, err, application.ErrValidation)
	_, err = svc.Register(ctx, "carol@example.com", "", "password123")
	assert.ErrorIs(t, err, application.ErrValidation)
	_, err = svc.Register(ctx, "carol@example.com", "carol", "")
	assert.ErrorIs(t, err, application.ErrValidation)
}

func TestAuthService_AuthenticateFailures(t *testing.T) {
	t.Parallel()
	svc := newAuthService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, "dave@example.com", "dave", "password123")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "dave", "wrongpassword")
	assert.ErrorIs(t, err, application.ErrInvalidCredential)

	// unknown user gets the same error as a bad password
	_, err = svc.Authenticate(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, application.ErrInvalidCredential)
}

func TestAuthService_GetUser(t *testing.T) {
	t.Parallel()
	svc := newAuthService(memory.NewStore())
	ctx := context.Background()

	u, err := svc.Register(ctx, "erin@example.com", "erin", "password123")
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "erin", got.Username)

	_, err = svc.GetUser(ctx, "does-not-exist")
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}
