package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"placehub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBucket(t *testing.T) (*photoBucket, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := openPhotoBucket(&config.Config{Photo: &config.PhotoConfig{StorageDir: dir}})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.bucket.Close())
	})

	return store, dir
}

func TestPhotoBucket_SaveAndDelete(t *testing.T) {
	store, dir := newTestBucket(t)
	ctx := context.Background()

	key, err := store.Save(ctx, []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "places/photos/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	require.NoError(t, store.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))
}

func TestPhotoBucket_DeleteMissingKeyIsNoop(t *testing.T) {
	store, _ := newTestBucket(t)

	assert.NoError(t, store.Delete(context.Background(), "places/photos/does-not-exist.jpg"))
}

func TestPhotoBucket_TraversalKeyStaysInsideBucket(t *testing.T) {
	store, dir := newTestBucket(t)

	outside := filepath.Join(filepath.Dir(dir), "outside.jpg")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))
	t.Cleanup(func() {
		_ = os.Remove(outside)
	})

	// fileblob escapes the key, so this never reaches the parent directory.
	require.NoError(t, store.Delete(context.Background(), "../outside.jpg"))

	data, err := os.ReadFile(outside)
	require.NoError(t, err)
	assert.Equal(t, []byte("keep"), data)
}

func TestPhotoBucket_SaveGeneratesUniqueKeys(t *testing.T) {
	store, _ := newTestBucket(t)
	ctx := context.Background()

	first, err := store.Save(ctx, []byte("a"))
	require.NoError(t, err)
	second, err := store.Save(ctx, []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
