package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore()

	key, err := s.Put("previews/x", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, "previews/x", key)
	assert.Equal(t, 1, s.Len())

	rc, err := s.Get(key)
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "payload", string(b))

	require.NoError(t, s.Delete(key))
	assert.Equal(t, 0, s.Len())
	_, err = s.Get(key)
	assert.ErrorIs(t, err, ErrNoBlob)

	// deleting again is fine
	assert.NoError(t, s.Delete(key))

	_, err = s.Put("", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestFSStoreRoundTrip(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	key, err := s.Put("previews/a/b.png", strings.NewReader("img"))
	require.NoError(t, err)

	rc, err := s.Get(key)
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "img", string(b))

	require.NoError(t, s.Delete(key))
	_, err = s.Get(key)
	assert.Error(t, err)

	// absent keys delete cleanly
	assert.NoError(t, s.Delete("never/stored"))
}
