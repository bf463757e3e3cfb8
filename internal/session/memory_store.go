package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campverse/campground-service/internal/domain/entity"
)

// MemoryStore is a map-backed Store for tests and infrastructure-free runs.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (s *MemoryStore) Create(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sid := uuid.NewString()
	s.sessions[sid] = Session{ID: sid}
	sess := s.sessions[sid]
	return &sess, nil
}

func (s *MemoryStore) Get(ctx context.Context, sid string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sid]
	if !ok {
		return nil, ErrNoSession
	}
	return &sess, nil
}

func (s *MemoryStore) BindUser(ctx context.Context, sid string, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sid]
	if !ok {
		return ErrNoSession
	}
	sess.UserID = u.ID
	sess.Username = u.Username
	sess.Email = u.Email
	s.sessions[sid] = sess
	return nil
}

func (s *MemoryStore) SetReturnTo(ctx context.Context, sid, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sid]
	if !ok {
		return ErrNoSession
	}
	sess.ReturnTo = path
	s.sessions[sid] = sess
	return nil
}

func (s *MemoryStore) TakeReturnTo(ctx context.Context, sid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sid]
	if !ok {
		return "", nil
	}
	v := sess.ReturnTo
	sess.ReturnTo = ""
	s.sessions[sid] = sess
	return v, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

var _ Store = (*MemoryStore)(nil)
