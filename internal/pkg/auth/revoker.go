package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRevoker tracks logged-out session ids until their tokens expire.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MemorySessionRevoker keeps revoked ids in-memory (single instance only).
type MemorySessionRevoker struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

// NewMemorySessionRevoker builds an in-memory revoker.
func NewMemorySessionRevoker() *MemorySessionRevoker {
	return &MemorySessionRevoker{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Revoke marks a session id as revoked until its expiry.
func (r *MemorySessionRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	r.mu.Lock()
	r.tokens[tokenID] = r.now().Add(ttl)
	r.mu.Unlock()
	return nil
}

// IsRevoked checks if the session id is revoked.
func (r *MemorySessionRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiry, ok := r.tokens[tokenID]
	if !ok {
		return false, nil
	}
	if r.now().After(expiry) {
		delete(r.tokens, tokenID)
		return false, nil
	}
	return true, nil
}

// RedisSessionRevoker stores revoked session ids in Redis with a TTL.
type RedisSessionRevoker struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisSessionRevoker builds a Redis-backed revoker.
func NewRedisSessionRevoker(client redis.UniversalClient, keyPrefix string) *RedisSessionRevoker {
	if keyPrefix == "" {
		keyPrefix = "placement:revoked:"
	}
	return &RedisSessionRevoker{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Revoke marks a session id as revoked until expiry.
func (r *RedisSessionRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.client.Set(ctx, r.keyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked checks if the session id is revoked.
func (r *RedisSessionRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.client.Exists(ctx, r.keyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}
