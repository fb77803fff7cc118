package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long an idle session's values are kept.
const sessionTTL = 24 * time.Hour

// RedisStore implements Store on a Redis hash per session token. Selected
// when the deployment points TURFEASE_REDIS_ADDR at a Redis instance;
// otherwise the SQLite store is used.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a session store backed by the given Redis address.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

// Ping verifies the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func sessionKey(token string) string { return "session:" + token }

// Get returns the value for key, or "" when unset.
func (s *RedisStore) Get(ctx context.Context, token, key string) (string, error) {
	value, err := s.rdb.HGet(ctx, sessionKey(token), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return value, err
}

// Set writes key=value and refreshes the session TTL.
func (s *RedisStore) Set(ctx context.Context, token, key, value string) error {
	k := sessionKey(token)
	if err := s.rdb.HSet(ctx, k, key, value).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, k, sessionTTL).Err()
}

// Delete removes a single key.
func (s *RedisStore) Delete(ctx context.Context, token, key string) error {
	return s.rdb.HDel(ctx, sessionKey(token), key).Err()
}

// Clear removes every key held for the session.
func (s *RedisStore) Clear(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}

// Snapshot returns a point-in-time copy of all values for the session.
func (s *RedisStore) Snapshot(ctx context.Context, token string) (Values, error) {
	m, err := s.rdb.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, err
	}
	values := make(Values, len(m))
	for k, v := range m {
		values[k] = v
	}
	return values, nil
}
