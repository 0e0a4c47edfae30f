package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func memoryFactory() (StorageFactory, map[string]*MemoryCredentialStorage) {
	backing := make(map[string]*MemoryCredentialStorage)
	factory := func(sessionID string) CredentialStorage {
		s, ok := backing[sessionID]
		if !ok {
			s = NewMemoryCredentialStorage()
			backing[sessionID] = s
		}
		return s
	}
	return factory, backing
}

func TestManager_ReturnsSameStorePerSessionID(t *testing.T) {
	factory, _ := memoryFactory()
	m := NewManager(factory, zap.NewNop())

	a := m.Store("device-1")
	b := m.Store("device-1")
	assert.Same(t, a, b)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	factory, backing := memoryFactory()
	m := NewManager(factory, zap.NewNop())

	m.Store("device-1").SetCredentials(testAccount("u1"), "a1", "r1")

	assert.True(t, m.Store("device-1").IsAuthenticated())
	assert.False(t, m.Store("device-2").IsAuthenticated())

	m.Store("device-1").Logout()
	assert.False(t, m.Store("device-1").IsAuthenticated())
	assert.False(t, backing["device-1"].HasRecord())
}

func TestManager_DropForgetsMemoryNotStorage(t *testing.T) {
	factory, backing := memoryFactory()
	m := NewManager(factory, zap.NewNop())

	m.Store("device-1").SetCredentials(testAccount("u1"), "a1", "r1")
	m.Drop("device-1")

	require.True(t, backing["device-1"].HasRecord())

	// A fresh store rehydrates from the persisted pair.
	revived := m.Store("device-1")
	assert.True(t, revived.IsAuthenticated())
	assert.Equal(t, "a1", revived.AccessToken())
	assert.Nil(t, revived.User())
}
