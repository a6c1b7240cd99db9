package handlers

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenStore keeps issued refresh tokens so logout can revoke them.
type TokenStore interface {
	Save(ctx context.Context, token string, userID uint, ttl time.Duration) error
	Revoke(ctx context.Context, token string) error
}

// RedisTokenStore stores refresh tokens in Redis, keyed by the token itself.
type RedisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func (s *RedisTokenStore) Save(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, token, userID, ttl).Err()
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, token).Err()
}
