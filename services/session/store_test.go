package session

import (
	"context"
	"errors"
	"testing"

	"nestora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingStorage simulates durable storage that is unavailable.
type failingStorage struct{}

func (failingStorage) Read(ctx context.Context) (string, string, error) {
	return "", "", errors.New("storage unavailable")
}

func (failingStorage) Write(ctx context.Context, access, refresh string) error {
	return errors.New("storage unavailable")
}

func (failingStorage) Clear(ctx context.Context) error {
	return errors.New("storage unavailable")
}

func testAccount(id string) *models.Account {
	return &models.Account{ID: id, Email: id + "@example.com", Role: "agent"}
}

func TestStore_StartsAnonymousWithEmptyStorage(t *testing.T) {
	store := NewStore(NewMemoryCredentialStorage(), zap.NewNop())

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.AccessToken())
	assert.Nil(t, store.User())
}

func TestStore_RehydratesFromPersistedToken(t *testing.T) {
	storage := NewMemoryCredentialStorage()
	storage.Seed("a1", "r1")

	store := NewStore(storage, zap.NewNop())

	// Token present but no profile loaded yet: a valid transient state.
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "a1", store.AccessToken())
	assert.Nil(t, store.User())
}

func TestStore_SetCredentialsAuthenticates(t *testing.T) {
	storage := NewMemoryCredentialStorage()
	store := NewStore(storage, zap.NewNop())

	store.SetCredentials(testAccount("u1"), "a1", "r1")

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "a1", store.AccessToken())
	require.NotNil(t, store.User())
	assert.Equal(t, "u1", store.User().ID)

	access, refresh, err := storage.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a1", access)
	assert.Equal(t, "r1", refresh)
}

func TestStore_SetCredentialsMissingTokenIsNoOp(t *testing.T) {
	storage := NewMemoryCredentialStorage()
	store := NewStore(storage, zap.NewNop())
	store.SetCredentials(testAccount("u1"), "a1", "r1")

	// Neither an empty access token nor an empty refresh token may move state.
	store.SetCredentials(testAccount("u2"), "", "r2")
	store.SetCredentials(testAccount("u2"), "a2", "")

	assert.Equal(t, "a1", store.AccessToken())
	assert.Equal(t, "u1", store.User().ID)

	access, refresh, err := storage.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a1", access)
	assert.Equal(t, "r1", refresh)
}

func TestStore_TokenRotationKeepsUser(t *testing.T) {
	storage := NewMemoryCredentialStorage()
	store := NewStore(storage, zap.NewNop())
	store.SetCredentials(testAccount("u1"), "a1", "r1")

	store.SetCredentials(nil, "a2", "r2")

	assert.Equal(t, "a2", store.AccessToken())
	require.NotNil(t, store.User())
	assert.Equal(t, "u1", store.User().ID)
}

func TestStore_AccountFetchedRefreshesProfileOnly(t *testing.T) {
	storage := NewMemoryCredentialStorage()
	storage.Seed("a1", "r1")
	store := NewStore(storage, zap.NewNop())

	store.AccountFetched(testAccount("u1"))

	assert.Equal(t, "a1", store.AccessToken())
	require.NotNil(t, store.User())
	assert.Equal(t, "u1", store.User().ID)
}

func TestStore_AccountFetchedWhileAnonymousIsNoOp(t *testing.T) {
	store := NewStore(NewMemoryCredentialStorage(), zap.NewNop())

	store.AccountFetched(testAccount("u1"))

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
}

func TestStore_IdentityVerifiedBehavesLikeSetCredentials(t *testing.T) {
	storage := NewMemoryCredentialStorage()
	store := NewStore(storage, zap.NewNop())

	store.IdentityVerified(testAccount("u1"), "a1", "r1")

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "a1", store.AccessToken())

	store.IdentityVerified(nil, "", "r2")
	assert.Equal(t, "a1", store.AccessToken())
}

func TestStore_LogoutClearsMemoryAndStorage(t *testing.T) {
	storage := NewMemoryCredentialStorage()
	store := NewStore(storage, zap.NewNop())
	store.SetCredentials(testAccount("u1"), "a1", "r1")

	store.Logout()

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.AccessToken())
	assert.Nil(t, store.User())
	assert.False(t, storage.HasRecord())

	access, refresh, err := storage.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}

func TestStore_DegradesWhenStorageFails(t *testing.T) {
	store := NewStore(failingStorage{}, zap.NewNop())
	assert.False(t, store.IsAuthenticated())

	// Writes fail but the in-memory session still works.
	store.SetCredentials(testAccount("u1"), "a1", "r1")
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "a1", store.AccessToken())

	store.Logout()
	assert.False(t, store.IsAuthenticated())
}
