package fixup

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/layoutrc/pkg/config"
	"github.com/walteh/layoutrc/pkg/fileops"
	"github.com/walteh/layoutrc/pkg/migrate"
	"github.com/walteh/layoutrc/pkg/scan"
)

// Cleaner removes leftover half-width panel wrappers from migrated files,
// replacing them with fragments. This is the only pass that produces
// backups: the original is copied to "<path>.bak" before the rewrite.
type Cleaner struct {
	cfg *config.Config
}

// NewCleaner creates a Cleaner for the given configuration.
func NewCleaner(cfg *config.Config) *Cleaner {
	return &Cleaner{cfg: cfg}
}

// CleanupFile backs up and rewrites a single migrated file.
func (c *Cleaner) CleanupFile(ctx context.Context, path string) migrate.Result {
	log := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	raw, err := fileops.ReadFile(ctx, path)
	if err != nil {
		return migrate.Result{Path: path, Outcome: migrate.OutcomeFailed, Err: errors.Errorf("reading %s: %w", path, err)}
	}
	content := string(raw)

	if !migrate.AlreadyMigrated(content, c.cfg.Marker) {
		return migrate.Result{Path: path, Outcome: migrate.OutcomeSkippedNotMigrated}
	}

	// Backup before any destructive write. The backup is never deleted
	// automatically; restoring it is the manual recovery path.
	backupPath, err := fileops.BackupFile(ctx, path, c.cfg.BackupSuffix)
	if err != nil {
		return migrate.Result{Path: path, Outcome: migrate.OutcomeFailed, Err: errors.Errorf("backing up %s: %w", path, err)}
	}
	log.Debug().Str("backup", backupPath).Msg("backup created")

	cleaned := ReplaceLeftoverPanels(content, c.cfg.Delimiter, c.cfg.ClosingTag)
	if cleaned == content {
		return migrate.Result{Path: path, Outcome: migrate.OutcomeUnchanged}
	}

	if err := fileops.WriteFileAtomic(ctx, path, []byte(cleaned)); err != nil {
		return migrate.Result{Path: path, Outcome: migrate.OutcomeFailed, Err: errors.Errorf("writing %s: %w", path, err)}
	}

	return migrate.Result{Path: path, Outcome: migrate.OutcomeUpdated}
}

// Run walks the configured root and cleans every file matching the
// extension filter, returning one Result per file.
func (c *Cleaner) Run(ctx context.Context) ([]migrate.Result, error) {
	var results []migrate.Result
	err := scan.Walk(ctx, c.cfg.Root, c.cfg.Extension, c.cfg.Ignore, func(path string) error {
		results = append(results, c.CleanupFile(ctx, path))
		return nil
	})
	if err != nil {
		return results, errors.Errorf("discovering files under %s: %w", c.cfg.Root, err)
	}
	return results, nil
}

// ReplaceLeftoverPanels rewrites any line opening a half-width panel into a
// fragment open, drops the lines through the next closing tag, and closes
// the fragment there. Lines outside a panel pass through untouched.
func ReplaceLeftoverPanels(content, delim, closing string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	skipping := false
	for _, line := range lines {
		switch {
		case strings.Contains(line, delim):
			out = append(out, "<>")
			skipping = true
		case skipping && strings.Contains(line, closing):
			out = append(out, "</>")
			skipping = false
		case !skipping:
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
