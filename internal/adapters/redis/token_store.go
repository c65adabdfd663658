package redis

// Package redis provides Redis-based adapters for the admin API.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenplate/admin-api/internal/ports"
)

// defaultTokenKey is the fixed name the single admin access token lives
// under, mirroring the original client's localStorage key.
const defaultTokenKey = "greenplate:admin_token"

// TokenStore is a Redis-backed store for the single persisted admin access
// token. TTL semantics are handled by Redis.
type TokenStore struct {
	client redis.UniversalClient
	key    string
}

var _ ports.TokenStore = (*TokenStore)(nil)

// NewTokenStore creates a token store using the default fixed key.
func NewTokenStore(client redis.UniversalClient) *TokenStore {
	return &TokenStore{client: client, key: defaultTokenKey}
}

// NewTokenStoreWithKey creates a token store with a custom key.
func NewTokenStoreWithKey(client redis.UniversalClient, key string) *TokenStore {
	return &TokenStore{client: client, key: key}
}

func (s *TokenStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if ttl <= 0 {
		return errors.New("token TTL must be positive")
	}
	if err := s.client.Set(ctx, s.key, token, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *TokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrNoToken
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return token, nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
