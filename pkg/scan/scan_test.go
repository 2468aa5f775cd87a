package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.tsx"))
	touch(t, filepath.Join(dir, "c.ts"))
	touch(t, filepath.Join(dir, "node_modules", "dep.tsx"))
	touch(t, filepath.Join(dir, ".git", "hook.tsx"))
	touch(t, filepath.Join(dir, "stories", "a.stories.tsx"))
	touch(t, filepath.Join(dir, "sub", "b.tsx"))

	t.Run("extension_filter_and_skipped_dirs", func(t *testing.T) {
		paths, err := Discover(context.Background(), dir, ".tsx", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.tsx"),
			filepath.Join(dir, "stories", "a.stories.tsx"),
			filepath.Join(dir, "sub", "b.tsx"),
		}, paths)
	})

	t.Run("ignore_globs", func(t *testing.T) {
		paths, err := Discover(context.Background(), dir, ".tsx", []string{"**/*.stories.tsx"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.tsx"),
			filepath.Join(dir, "sub", "b.tsx"),
		}, paths)
	})

	t.Run("deterministic_order", func(t *testing.T) {
		first, err := Discover(context.Background(), dir, ".tsx", nil)
		require.NoError(t, err)
		second, err := Discover(context.Background(), dir, ".tsx", nil)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("invalid_ignore_pattern", func(t *testing.T) {
		_, err := Discover(context.Background(), dir, ".tsx", []string{"[unclosed"})
		require.Error(t, err)
	})
}

func TestWalk_CallbackErrorStopsTraversal(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.tsx"))
	touch(t, filepath.Join(dir, "b.tsx"))

	var seen int
	err := Walk(context.Background(), dir, ".tsx", nil, func(path string) error {
		seen++
		return os.ErrClosed
	})
	require.Error(t, err)
	assert.Equal(t, 1, seen)
}
