package utils

import (
	"context"
	"sync"
	"time"

	"maxcleaners/config"
	"maxcleaners/models"

	"github.com/redis/go-redis/v9"
)

// TokenStore is the revocation set for signed-out tokens. Entries only need
// to live until the token's own expiry passes.
type TokenStore interface {
	// Revoke adds a token to the set. Revoking a token that is already
	// present returns models.ErrAlreadyRevoked.
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) bool
}

// Blacklist is the process-wide revocation set. InitTokenStore swaps in the
// Redis-backed store when Redis is configured so revocations are shared
// across instances.
var Blacklist TokenStore = NewMemoryTokenStore()

func InitTokenStore() {
	if config.RedisClient != nil {
		Blacklist = NewRedisTokenStore(config.RedisClient)
	}
}

type MemoryTokenStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{revoked: make(map[string]time.Time)}
}

func (s *MemoryTokenStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	if _, ok := s.revoked[token]; ok {
		return models.ErrAlreadyRevoked
	}
	s.revoked[token] = expiresAt
	return nil
}

func (s *MemoryTokenStore) IsRevoked(ctx context.Context, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.revoked[token]
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(s.revoked, token)
		return false
	}
	return true
}

// prune drops entries whose tokens have expired on their own. Caller holds
// the lock.
func (s *MemoryTokenStore) prune() {
	now := time.Now()
	for token, expiresAt := range s.revoked {
		if now.After(expiresAt) {
			delete(s.revoked, token)
		}
	}
}

type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}

	// SETNX keeps concurrent double sign-outs from both succeeding.
	ok, err := s.client.SetNX(ctx, blacklistKey(token), "1", ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrAlreadyRevoked
	}
	return nil
}

func (s *RedisTokenStore) IsRevoked(ctx context.Context, token string) bool {
	n, err := s.client.Exists(ctx, blacklistKey(token)).Result()
	return err == nil && n > 0
}
