package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/campverse/campground-service/internal/domain/entity"
)

func sessionKey(sid string) string {
	return "session:" + sid
}

// RedisStore keeps each session as a Redis hash under session:<sid> with a
// sliding TTL. DEL on logout makes the unbind atomic and immediate.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context) (*Session, error) {
	sid := uuid.NewString()
	key := sessionKey(sid)
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return &Session{ID: sid}, nil
}

func (s *RedisStore) Get(ctx context.Context, sid string) (*Session, error) {
	data, err := s.rdb.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNoSession
	}
	return &Session{
		ID:       sid,
		UserID:   data["user_id"],
		Username: data["username"],
		Email:    data["email"],
		ReturnTo: data["return_to"],
	}, nil
}

func (s *RedisStore) BindUser(ctx context.Context, sid string, u *entity.User) error {
	key := sessionKey(sid)
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":  u.ID,
		"username": u.Username,
		"email":    u.Email,
	})
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) SetReturnTo(ctx context.Context, sid, path string) error {
	return s.rdb.HSet(ctx, sessionKey(sid), "return_to", path).Err()
}

// takeFieldScript reads and deletes a hash field atomically.
var takeFieldScript = redis.NewScript(`
local v = redis.call("HGET", KEYS[1], ARGV[1])
if v then
  redis.call("HDEL", KEYS[1], ARGV[1])
  return v
end
return ""
`)

func (s *RedisStore) TakeReturnTo(ctx context.Context, sid string) (string, error) {
	v, err := takeFieldScript.Run(ctx, s.rdb, []string{sessionKey(sid)}, "return_to").Text()
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *RedisStore) Destroy(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, sessionKey(sid)).Err()
}

var _ Store = (*RedisStore)(nil)
