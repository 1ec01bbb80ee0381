package userauth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/redis/go-redis/v9"
)

// ResetTokenStore keeps the currently valid password-reset token per user,
// expiring it automatically.
type ResetTokenStore interface {
	Put(ctx context.Context, userID kernel.UserID, token string, ttl time.Duration) error
	Get(ctx context.Context, userID kernel.UserID) (string, error)
	Delete(ctx context.Context, userID kernel.UserID) error
}

// RedisResetTokenStore is the production implementation; the TTL rides on the
// Redis key.
type RedisResetTokenStore struct {
	client *redis.Client
}

func NewRedisResetTokenStore(client *redis.Client) *RedisResetTokenStore {
	return &RedisResetTokenStore{client: client}
}

func resetKey(userID kernel.UserID) string {
	return "pwreset:" + userID.String()
}

func (s *RedisResetTokenStore) Put(ctx context.Context, userID kernel.UserID, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, resetKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("store reset token for %s: %w", userID, err)
	}
	return nil
}

func (s *RedisResetTokenStore) Get(ctx context.Context, userID kernel.UserID) (string, error) {
	token, err := s.client.Get(ctx, resetKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("load reset token for %s: %w", userID, err)
	}
	return token, nil
}

func (s *RedisResetTokenStore) Delete(ctx context.Context, userID kernel.UserID) error {
	if err := s.client.Del(ctx, resetKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete reset token for %s: %w", userID, err)
	}
	return nil
}

// MemoryResetTokenStore backs tests and local development.
type MemoryResetTokenStore struct {
	mu     sync.Mutex
	tokens map[kernel.UserID]memoryResetEntry
}

type memoryResetEntry struct {
	token     string
	expiresAt time.Time
}

func NewMemoryResetTokenStore() *MemoryResetTokenStore {
	return &MemoryResetTokenStore{tokens: make(map[kernel.UserID]memoryResetEntry)}
}

func (s *MemoryResetTokenStore) Put(ctx context.Context, userID kernel.UserID, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[userID] = memoryResetEntry{token: token, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryResetTokenStore) Get(ctx context.Context, userID kernel.UserID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tokens[userID]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", nil
	}
	return entry.token, nil
}

func (s *MemoryResetTokenStore) Delete(ctx context.Context, userID kernel.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, userID)
	return nil
}
