package helpers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campverse/campground-service/pkg/helpers"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()
	hash, err := helpers.HashPassword("hunter2secret")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2secret", hash)

	assert.True(t, helpers.CompareHashAndPassword(hash, "hunter2secret"))
	assert.False(t, helpers.CompareHashAndPassword(hash, "wrong"))
	assert.False(t, helpers.CompareHashAndPassword("not-a-hash", "hunter2secret"))
}

func TestTokenManager_RoundTrip(t *testing.T) {
	t.Parallel()
	tm := helpers.NewTokenManager("test-secret", time.Hour)

	tok, exp, err := tm.GenerateSessionToken("sid-123")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := tm.ParseSessionToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "sid-123", claims.SessionID)
}

func TestTokenManager_RejectsBadTokens(t *testing.T) {
	t.Parallel()
	tm := helpers.NewTokenManager("test-secret", time.Hour)

	_, err := tm.ParseSessionToken("garbage")
	assert.Error(t, err)

	// token signed with a different secret
	other := helpers.NewTokenManager("other-secret", time.Hour)
	tok, _, err := other.GenerateSessionToken("sid-123")
	require.NoError(t, err)
	_, err = tm.ParseSessionToken(tok)
	assert.Error(t, err)

	// expired token
	expired := helpers.NewTokenManager("test-secret", -time.Minute)
	tok, _, err = expired.GenerateSessionToken("sid-123")
	require.NoError(t, err)
	_, err = tm.ParseSessionToken(tok)
	assert.Error(t, err)
}
