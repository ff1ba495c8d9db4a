package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("missing")
	assert.False(t, ok)

	m.Set("count", "3")
	value, ok := m.Get("count")
	require.True(t, ok)
	assert.Equal(t, "3", value)

	m.Set("count", "4")
	value, _ = m.Get("count")
	assert.Equal(t, "4", value, "last write wins")
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "storefront.json")

	f, err := OpenFile(path)
	require.NoError(t, err)

	f.Set("abokichi_cart_count", "2")
	f.Set("abokichi_latest_order", `{"productId":1}`)

	reopened, err := OpenFile(path)
	require.NoError(t, err)

	value, ok := reopened.Get("abokichi_cart_count")
	require.True(t, ok)
	assert.Equal(t, "2", value)

	value, ok = reopened.Get("abokichi_latest_order")
	require.True(t, ok)
	assert.Equal(t, `{"productId":1}`, value)
}

func TestFileCorruptSnapshotStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	f, err := OpenFile(path)
	require.NoError(t, err)

	_, ok := f.Get("abokichi_cart_count")
	assert.False(t, ok)

	// The store must stay writable after recovering from corruption.
	f.Set("abokichi_cart_count", "1")
	value, ok := f.Get("abokichi_cart_count")
	require.True(t, ok)
	assert.Equal(t, "1", value)
}

func TestFileEmptyPathRejected(t *testing.T) {
	_, err := OpenFile("")
	assert.Error(t, err)
}
