package session

import (
	"context"
	"sync"
	"time"

	"nestora/models"

	"go.uber.org/zap"
)

const storageTimeout = 2 * time.Second

// Store is the single source of truth for one device session: whether the
// actor is authenticated, as whom, and under which access token. It holds
// state in memory and mirrors the token pair into durable storage.
//
// The store is Anonymous while no access token is held and Authenticated
// otherwise. An Authenticated store with a nil account is a valid transient
// state: the token was rehydrated but no profile fetch has completed yet.
// Only Logout returns the store to Anonymous.
type Store struct {
	mu          sync.Mutex
	storage     CredentialStorage
	logger      *zap.Logger
	user        *models.Account
	accessToken string
}

// NewStore creates a store rehydrated from durable storage. A storage read
// failure degrades to an Anonymous start rather than propagating.
func NewStore(storage CredentialStorage, logger *zap.Logger) *Store {
	s := &Store{storage: storage, logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	access, _, err := storage.Read(ctx)
	if err != nil {
		logger.Warn("session storage read failed, starting anonymous", zap.Error(err))
		return s
	}
	s.accessToken = access
	return s
}

// SetCredentials installs a fresh token pair, optionally updating the account
// record. Both tokens are required: a call missing either is a defensive
// no-op, not an error. The pair is persisted before memory is updated so a
// crash in between never strands a refresh token.
func (s *Store) SetCredentials(user *models.Account, accessToken, refreshToken string) {
	if accessToken == "" || refreshToken == "" {
		s.logger.Warn("ignoring credential update with missing token")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	if err := s.storage.Write(ctx, accessToken, refreshToken); err != nil {
		// Best effort: the in-memory session stays usable without it.
		s.logger.Error("failed to persist session credentials", zap.Error(err))
	}

	s.accessToken = accessToken
	if user != nil {
		s.user = user
	}
}

// IdentityVerified records a successful identity verification. The server
// hands back a fresh token pair on verification, so the transition is the
// same as SetCredentials.
func (s *Store) IdentityVerified(user *models.Account, accessToken, refreshToken string) {
	s.SetCredentials(user, accessToken, refreshToken)
}

// AccountFetched refreshes the account record without touching tokens.
// It is a no-op on an Anonymous store.
func (s *Store) AccountFetched(user *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accessToken == "" {
		return
	}
	s.user = user
}

// Logout erases the durable credential record first, then clears memory.
// A storage failure is logged and the in-memory session is cleared anyway.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	if err := s.storage.Clear(ctx); err != nil {
		s.logger.Error("failed to clear session credentials", zap.Error(err))
	}

	s.accessToken = ""
	s.user = nil
}

// IsAuthenticated reports whether an access token is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken != ""
}

// AccessToken returns the current access token, empty while Anonymous.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

// User returns the current account record, nil until a fetch has completed.
func (s *Store) User() *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}
