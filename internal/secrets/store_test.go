package secrets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreFetchRoundTrip(t *testing.T) {
	t.Parallel()
	s := NewFileStoreAt(t.TempDir())

	require.NoError(t, s.Store("bearer-token-123"))
	got, err := s.Fetch()
	require.NoError(t, err)
	require.Equal(t, "bearer-token-123", got)
}

func TestTokenIsNotStoredInPlainText(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	s := NewFileStoreAt(dir)
	require.NoError(t, s.Store("super-secret"))

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	require.NoError(t, err)
	require.NotContains(t, string(data), "super-secret")

	var tf tokenFile
	require.NoError(t, json.Unmarshal(data, &tf))
	require.NotEmpty(t, tf.Token)
}

func TestFetchMissingToken(t *testing.T) {
	t.Parallel()
	s := NewFileStoreAt(t.TempDir())

	_, err := s.Fetch()
	require.Error(t, err)
}

func TestDeleteRemovesTokenAndIsIdempotent(t *testing.T) {
	t.Parallel()
	s := NewFileStoreAt(t.TempDir())
	require.NoError(t, s.Store("tok"))

	require.NoError(t, s.Delete())
	_, err := s.Fetch()
	require.Error(t, err)

	require.NoError(t, s.Delete())
}

func TestStoreOverwrites(t *testing.T) {
	t.Parallel()
	s := NewFileStoreAt(t.TempDir())
	require.NoError(t, s.Store("first"))
	require.NoError(t, s.Store("second"))

	got, err := s.Fetch()
	require.NoError(t, err)
	require.Equal(t, "second", got)
}
