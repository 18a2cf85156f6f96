package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLocalStore(t *testing.T) {
	_, err := NewLocalStore("")
	require.Error(t, err)

	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	require.NotNil(t, store)
	require.DirExists(t, dir)
}

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "user-1", "passport.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "user-1_passport.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "image-bytes", string(data))
}

func TestLocalStore_SaveSanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "u", "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, dir), "stored path stays inside the upload dir")
	require.NotContains(t, path, "..")

	_, err = store.Save(context.Background(), "u", "..", strings.NewReader("x"))
	require.Error(t, err, "filename that sanitizes to nothing is rejected")
}
