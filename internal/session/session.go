// Package session implements the server-side session state backing the
// signed session cookie: identity binding, lifetime, and the transient
// return-to target recorded for unauthenticated GETs.
package session

import (
	"context"
	"errors"

	"github.com/campverse/campground-service/internal/domain/entity"
)

// ErrNoSession is returned when the session id does not resolve to live state.
var ErrNoSession = errors.New("session not found")

// Session is an immutable per-request snapshot of the server-side state.
type Session struct {
	ID       string
	UserID   string
	Username string
	Email    string
	ReturnTo string
}

// Authenticated reports whether a user identity is bound to the session.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}

// Store persists sessions. All mutations are atomic per session.
type Store interface {
	// Create starts a new anonymous session.
	Create(ctx context.Context) (*Session, error)
	// Get loads a snapshot; ErrNoSession when expired or destroyed.
	Get(ctx context.Context, sid string) (*Session, error)
	// BindUser attaches the user identity for the rest of the session's life.
	BindUser(ctx context.Context, sid string, u *entity.User) error
	// SetReturnTo overwrites the return-to target.
	SetReturnTo(ctx context.Context, sid, path string) error
	// TakeReturnTo reads and clears the return-to target in one step.
	TakeReturnTo(ctx context.Context, sid string) (string, error)
	// Destroy removes the session entirely; the old identity is never
	// honored afterwards.
	Destroy(ctx context.Context, sid string) error
}
