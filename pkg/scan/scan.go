package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Directories that never hold migratable sources.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// Walk visits every regular file under root whose name ends with ext,
// in lexical order, calling fn once per file. Ignore patterns are
// doublestar globs matched against the path relative to root. The
// traversal is read-only.
func Walk(ctx context.Context, root, ext string, ignore []string, fn func(path string) error) error {
	zerolog.Ctx(ctx).Debug().
		Str("root", root).
		Str("ext", ext).
		Strs("ignore", ignore).
		Msg("scanning for candidate files")

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		for _, pattern := range ignore {
			ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
			if err != nil {
				return errors.Errorf("matching ignore pattern %q: %w", pattern, err)
			}
			if ok {
				return nil
			}
		}

		return fn(path)
	})
}

// Discover collects the walk into a slice.
func Discover(ctx context.Context, root, ext string, ignore []string) ([]string, error) {
	var paths []string
	err := Walk(ctx, root, ext, ignore, func(path string) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
