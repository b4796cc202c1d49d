package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSnapshotStore_SaveAndLoad_RoundTrip(t *testing.T) {
	comp, err := NewZstdCompressor()
	require.NoError(t, err)

	store := NewSnapshotStore(comp)
	path := filepath.Join(t.TempDir(), "snap.dat")

	require.NoError(t, store.Save(path, payload{Name: "x", Count: 3}))

	var out payload
	found, err := store.Load(path, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "x", Count: 3}, out)
}

func TestSnapshotStore_LoadMissingFile(t *testing.T) {
	comp, err := NewZstdCompressor()
	require.NoError(t, err)

	store := NewSnapshotStore(comp)

	var out payload
	found, err := store.Load(filepath.Join(t.TempDir(), "absent.dat"), &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, payload{}, out)
}

func TestSnapshotStore_LoadCorruptFile(t *testing.T) {
	comp, err := NewZstdCompressor()
	require.NoError(t, err)

	store := NewSnapshotStore(comp)
	path := filepath.Join(t.TempDir(), "corrupt.dat")
	require.NoError(t, os.WriteFile(path, []byte("definitely not zstd"), 0644))

	var out payload
	_, err = store.Load(path, &out)
	assert.Error(t, err)
}

func TestSnapshotStore_SaveLeavesNoTempFile(t *testing.T) {
	comp, err := NewZstdCompressor()
	require.NoError(t, err)

	store := NewSnapshotStore(comp)
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.dat")

	require.NoError(t, store.Save(path, payload{Name: "y"}))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestZstdCompressor_RoundTrip(t *testing.T) {
	comp, err := NewZstdCompressor()
	require.NoError(t, err)

	data := []byte("the same bytes out that went in, the same bytes out that went in")
	compressed, err := comp.Compress(data)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(data))

	out, err := comp.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}
