package fixup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/layoutrc/pkg/config"
	"github.com/walteh/layoutrc/pkg/migrate"
)

func fixerConfig(t *testing.T, root string) *config.Config {
	t.Helper()
	cfg := &config.Config{Root: root}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestFixer_FixFile_InPlace(t *testing.T) {
	dir := t.TempDir()
	cfg := fixerConfig(t, dir)

	content := "// TwoColumnLayout in use\n" + malformedMapOpening + "\n  <Tab />\n"
	path := filepath.Join(dir, "Tabs.tsx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	res := NewFixer(cfg, false).FixFile(context.Background(), path)
	require.NoError(t, res.Err)
	assert.Equal(t, migrate.OutcomeUpdated, res.Outcome)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), mapOpeningCorrected)
}

func TestFixer_FixFile_SidecarMode(t *testing.T) {
	dir := t.TempDir()
	cfg := fixerConfig(t, dir)

	content := "// TwoColumnLayout in use\n<div className=\"p-2 shad\n  <span>x</span>\n"
	path := filepath.Join(dir, "Card.tsx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	res := NewFixer(cfg, true).FixFile(context.Background(), path)
	require.NoError(t, res.Err)
	assert.Equal(t, migrate.OutcomeUpdated, res.Outcome)

	// The source file is never touched in sidecar mode.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	fixed, err := os.ReadFile(filepath.Join(dir, "Card_fixed.tsx"))
	require.NoError(t, err)
	assert.Contains(t, string(fixed), "className=\"p-2 shadow\">")
}

func TestFixer_FixFile_Skips(t *testing.T) {
	dir := t.TempDir()
	cfg := fixerConfig(t, dir)

	t.Run("unmigrated_file", func(t *testing.T) {
		path := filepath.Join(dir, "Plain.tsx")
		require.NoError(t, os.WriteFile(path, []byte(malformedMapOpening), 0644))

		res := NewFixer(cfg, false).FixFile(context.Background(), path)
		assert.Equal(t, migrate.OutcomeSkippedNotMigrated, res.Outcome)
	})

	t.Run("already_corrected_file", func(t *testing.T) {
		content := "// TwoColumnLayout in use\n" + mapOpeningCorrected + "\n  <Tab />\n"
		path := filepath.Join(dir, "Done.tsx")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		res := NewFixer(cfg, false).FixFile(context.Background(), path)
		assert.Equal(t, migrate.OutcomeUnchanged, res.Outcome)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	})

	t.Run("sidecar_not_written_when_unchanged", func(t *testing.T) {
		path := filepath.Join(dir, "Quiet.tsx")
		require.NoError(t, os.WriteFile(path, []byte("uses TwoColumnLayout, nothing broken"), 0644))

		res := NewFixer(cfg, true).FixFile(context.Background(), path)
		assert.Equal(t, migrate.OutcomeUnchanged, res.Outcome)

		_, err := os.Stat(filepath.Join(dir, "Quiet_fixed.tsx"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestFixer_Run(t *testing.T) {
	dir := t.TempDir()
	cfg := fixerConfig(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.tsx"),
		[]byte("// TwoColumnLayout\n"+malformedMapOpening+"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "B.tsx"),
		[]byte("not migrated"), 0644))

	results, err := NewFixer(cfg, false).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	byPath := map[string]migrate.Outcome{}
	for _, res := range results {
		byPath[res.Path] = res.Outcome
	}
	assert.Equal(t, migrate.OutcomeUpdated, byPath[filepath.Join(dir, "A.tsx")])
	assert.Equal(t, migrate.OutcomeSkippedNotMigrated, byPath[filepath.Join(dir, "B.tsx")])
}

func TestSidecarPath(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b_fixed.tsx"), sidecarPath(filepath.Join("a", "b.tsx"), "_fixed"))
	assert.Equal(t, "noext_fixed", sidecarPath("noext", "_fixed"))
}
