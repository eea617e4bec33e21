package realtime

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := NewRegistry(zerolog.Nop())
	c1 := NewClient(nil, zerolog.Nop())
	c2 := NewClient(nil, zerolog.Nop())

	registry.Register(7, c1)
	registry.Register(7, c2)

	conns := registry.ConnectionsFor(7)
	assert.Len(t, conns, 2)
	assert.Equal(t, 1, registry.UserCount())
	assert.Equal(t, 2, registry.ConnectionCount(7))
}

func TestRegistryRegisterIsIdempotent(t *testing.T) {
	registry := NewRegistry(zerolog.Nop())
	c := NewClient(nil, zerolog.Nop())

	registry.Register(7, c)
	registry.Register(7, c)

	assert.Len(t, registry.ConnectionsFor(7), 1)
	assert.Equal(t, 1, registry.ConnectionCount(7))
}

func TestRegistryUnregisterRemovesEmptyEntry(t *testing.T) {
	registry := NewRegistry(zerolog.Nop())
	c1 := NewClient(nil, zerolog.Nop())
	c2 := NewClient(nil, zerolog.Nop())

	registry.Register(7, c1)
	registry.Register(7, c2)

	registry.Unregister(7, c1)
	assert.Len(t, registry.ConnectionsFor(7), 1)
	assert.Equal(t, 1, registry.UserCount())

	registry.Unregister(7, c2)
	assert.Empty(t, registry.ConnectionsFor(7))
	assert.Equal(t, 0, registry.UserCount())
}

func TestRegistryUnregisterUnknownIsNoop(t *testing.T) {
	registry := NewRegistry(zerolog.Nop())
	c := NewClient(nil, zerolog.Nop())

	registry.Unregister(42, c)

	assert.Equal(t, 0, registry.UserCount())
	assert.Equal(t, 0, registry.ConnectionCount(42))
}

func TestRegistryConnectionsForUnknownUser(t *testing.T) {
	registry := NewRegistry(zerolog.Nop())
	assert.Empty(t, registry.ConnectionsFor(99))
}
