package otp

import (
	"context"
	"errors"
	"time"

	chatapp_errors "chatapp/pkg/errors"

	goredis "github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// RedisStore keeps pending codes in Redis with a native TTL. Used when
// the process is deployed with more than one replica; expiry and
// last-write-wins semantics match MemoryStore.
type RedisStore struct {
	client *goredis.Client
}

func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, subject, code string, ttl time.Duration) error {
	return s.client.Set(ctx, otpKeyPrefix+subject, code, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, subject string) (Pending, error) {
	key := otpKeyPrefix + subject
	code, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return Pending{}, chatapp_errors.ErrNotFound
	}
	if err != nil {
		return Pending{}, err
	}

	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return Pending{}, err
	}

	return Pending{
		Code:      code,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

func (s *RedisStore) Delete(ctx context.Context, subject string) error {
	return s.client.Del(ctx, otpKeyPrefix+subject).Err()
}
