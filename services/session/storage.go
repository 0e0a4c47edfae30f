package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
)

const credentialKeyPrefix = "session:"

// CredentialStorage is the durable record behind a session store. The access
// and refresh tokens are written only as a pair so the record can never hold
// one token without its partner.
type CredentialStorage interface {
	// Read returns the persisted pair. Absent values come back as empty
	// strings, not errors.
	Read(ctx context.Context) (accessToken, refreshToken string, err error)
	// Write persists the pair atomically.
	Write(ctx context.Context, accessToken, refreshToken string) error
	// Clear removes the persisted pair.
	Clear(ctx context.Context) error
}

// RedisCredentialStorage persists a session's credential pair under two
// fixed keys derived from the session ID.
type RedisCredentialStorage struct {
	client     *redis.Client
	accessKey  string
	refreshKey string
}

// NewRedisCredentialStorage creates credential storage for one session ID.
func NewRedisCredentialStorage(client *redis.Client, sessionID string) *RedisCredentialStorage {
	return &RedisCredentialStorage{
		client:     client,
		accessKey:  credentialKeyPrefix + sessionID + ":accessToken",
		refreshKey: credentialKeyPrefix + sessionID + ":refreshToken",
	}
}

// Read returns the persisted pair, treating missing keys as absent values.
func (s *RedisCredentialStorage) Read(ctx context.Context) (string, string, error) {
	values, err := s.client.MGet(ctx, s.accessKey, s.refreshKey).Result()
	if err != nil {
		return "", "", fmt.Errorf("failed to read session credentials: %w", err)
	}
	var access, refresh string
	if v, ok := values[0].(string); ok {
		access = v
	}
	if v, ok := values[1].(string); ok {
		refresh = v
	}
	return access, refresh, nil
}

// Write persists both tokens in a single transactional pipeline.
func (s *RedisCredentialStorage) Write(ctx context.Context, accessToken, refreshToken string) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.accessKey, accessToken, 0)
	pipe.Set(ctx, s.refreshKey, refreshToken, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist session credentials: %w", err)
	}
	return nil
}

// Clear removes both tokens.
func (s *RedisCredentialStorage) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.accessKey, s.refreshKey).Err(); err != nil {
		return fmt.Errorf("failed to clear session credentials: %w", err)
	}
	return nil
}

// MemoryCredentialStorage is an in-process CredentialStorage used in tests
// and as a degraded fallback when Redis is unavailable.
type MemoryCredentialStorage struct {
	mu      sync.Mutex
	access  string
	refresh string
	set     bool
}

// NewMemoryCredentialStorage creates empty in-memory credential storage.
func NewMemoryCredentialStorage() *MemoryCredentialStorage {
	return &MemoryCredentialStorage{}
}

// Seed pre-loads a persisted pair, as if written by a previous process.
func (s *MemoryCredentialStorage) Seed(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = accessToken
	s.refresh = refreshToken
	s.set = true
}

// HasRecord reports whether a pair is currently persisted.
func (s *MemoryCredentialStorage) HasRecord() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set
}

func (s *MemoryCredentialStorage) Read(ctx context.Context) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access, s.refresh, nil
}

func (s *MemoryCredentialStorage) Write(ctx context.Context, accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = accessToken
	s.refresh = refreshToken
	s.set = true
	return nil
}

func (s *MemoryCredentialStorage) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	s.set = false
	return nil
}
