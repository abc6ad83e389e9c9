package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Backend = (*MemoryBackend)(nil)
var _ Backend = (*SQLiteBackend)(nil)

func TestMemoryBackend_Roundtrip(t *testing.T) {
	m := NewMemoryBackend()
	ctx := context.Background()

	_, ok, err := m.Get(ctx, "jwt")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "jwt", "x"))
	require.NoError(t, m.Set(ctx, "jwtExpiration", "42"))
	assert.Equal(t, 2, m.Len())

	v, ok, err := m.Get(ctx, "jwtExpiration")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", v)

	require.NoError(t, m.Remove(ctx, "jwt", "jwtExpiration", "never-set"))
	assert.Equal(t, 0, m.Len())
}

func TestMemoryBackend_ConcurrentAccess(t *testing.T) {
	m := NewMemoryBackend()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Set(ctx, "k", "v")
			_, _, _ = m.Get(ctx, "k")
			_ = m.Remove(ctx, "k")
		}()
	}
	wg.Wait()
}
