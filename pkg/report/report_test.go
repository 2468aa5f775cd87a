package report

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/layoutrc/pkg/migrate"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	pterm.DisableColor()
	os.Exit(m.Run())
}

func TestPrinter_Print(t *testing.T) {
	results := []migrate.Result{
		{Path: "components/A.tsx", Outcome: migrate.OutcomeUpdated},
		{Path: "components/B.tsx", Outcome: migrate.OutcomeSkippedAlreadyMigrated},
		{Path: "components/C.tsx", Outcome: migrate.OutcomeSkippedStructureNotFound},
		{Path: "components/D.tsx", Outcome: migrate.OutcomeFailed, Err: os.ErrPermission},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).Print(results)
	out := buf.String()

	// Every processed file appears exactly once.
	for _, res := range results {
		assert.Equal(t, 1, strings.Count(out, res.Path), "path %s", res.Path)
	}

	assert.Contains(t, out, "skipped: already migrated")
	assert.Contains(t, out, "skipped: layout structure not found")
	assert.Contains(t, out, os.ErrPermission.Error())
	assert.Contains(t, out, "1 updated, 0 unchanged, 2 skipped, 1 failed (4 total)")
}

func TestPrinter_Print_NoFailures(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Print([]migrate.Result{
		{Path: "A.tsx", Outcome: migrate.OutcomeUpdated},
		{Path: "B.tsx", Outcome: migrate.OutcomeUnchanged},
	})

	require.Contains(t, buf.String(), "1 updated, 1 unchanged, 0 skipped, 0 failed (2 total)")
}

func TestFormatResult_Symbols(t *testing.T) {
	tests := []struct {
		name    string
		outcome migrate.Outcome
		symbol  string
	}{
		{name: "updated", outcome: migrate.OutcomeUpdated, symbol: "✓"},
		{name: "unchanged", outcome: migrate.OutcomeUnchanged, symbol: "•"},
		{name: "skipped", outcome: migrate.OutcomeSkippedNotFound, symbol: "-"},
		{name: "failed", outcome: migrate.OutcomeFailed, symbol: "✗"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := formatResult(migrate.Result{Path: "x.tsx", Outcome: tt.outcome})
			assert.Contains(t, line, tt.symbol)
			assert.Contains(t, line, "x.tsx")
		})
	}
}
