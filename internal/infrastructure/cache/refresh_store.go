package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenStore is the revocable-token registry: a refresh token is only
// honored while its entry exists here. Tokens are stored hashed so a Redis
// dump does not leak usable credentials. Entries expire with the token.
type RefreshTokenStore struct {
	rdb *redis.Client
}

func NewRefreshTokenStore(rdb *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{rdb: rdb}
}

func refreshKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:refresh:" + hex.EncodeToString(sum[:])
}

func (s *RefreshTokenStore) Add(ctx context.Context, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, refreshKey(token), 1, ttl).Err()
}

func (s *RefreshTokenStore) Contains(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, refreshKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RefreshTokenStore) Remove(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, refreshKey(token)).Err()
}
