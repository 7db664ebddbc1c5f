package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session: not found")

// Store persists sessions for the duration of one user interaction.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

const keyPrefix = "sess:"

// RedisStore keeps sessions in Redis under sess:<id> with a TTL, so an
// abandoned session expires on its own.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (st *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := st.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (st *RedisStore) Save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return st.rdb.Set(ctx, keyPrefix+s.ID, raw, st.ttl).Err()
}

func (st *RedisStore) Delete(ctx context.Context, id string) error {
	return st.rdb.Del(ctx, keyPrefix+id).Err()
}
