// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package migrate

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/layoutrc/pkg/config"
	"github.com/walteh/layoutrc/pkg/fileops"
	"github.com/walteh/layoutrc/pkg/scan"
)

// Outcome classifies what happened to a single file during a pass.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeUpdated
	OutcomeUnchanged
	OutcomeSkippedAlreadyMigrated
	OutcomeSkippedNotMigrated
	OutcomeSkippedNotFound
	OutcomeSkippedStructureNotFound
	OutcomeFailed
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeSkippedAlreadyMigrated:
		return "skipped: already migrated"
	case OutcomeSkippedNotMigrated:
		return "skipped: not migrated"
	case OutcomeSkippedNotFound:
		return "skipped: file not found"
	case OutcomeSkippedStructureNotFound:
		return "skipped: layout structure not found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the per-file outcome of a pass. One Result is produced for every
// discovered or listed file; the aggregate is the run's report.
type Result struct {
	Path    string
	Outcome Outcome
	Err     error
}

// Migrator rewrites the legacy two-panel layout into the unified wrapper.
type Migrator struct {
	cfg *config.Config
}

// New creates a Migrator for the given configuration.
func New(cfg *config.Config) *Migrator {
	return &Migrator{cfg: cfg}
}

// Transform applies the full in-memory pipeline to content: inject the
// wrapper import, locate the two panel regions, and reassemble the file
// around the rendered wrapper. Callers must check AlreadyMigrated first.
func (m *Migrator) Transform(content string) (string, error) {
	content = InjectImport(content, m.cfg.Import, m.cfg.ImportAnchor)

	segs, err := SplitRegions(content, m.cfg.Delimiter, m.cfg.ClosingTag)
	if err != nil {
		return "", err
	}

	wrapper := LayoutDescriptor{
		Left: Side{
			Header:     m.cfg.LeftHeader,
			Content:    segs.Left,
			Scrollable: true,
			MinHeight:  m.cfg.MinHeight,
		},
		Right: Side{
			Header:     m.cfg.RightHeader,
			Content:    segs.Right,
			Scrollable: true,
			MinHeight:  m.cfg.MinHeight,
		},
	}

	return segs.Prefix + wrapper.Render() + segs.Suffix, nil
}

// MigrateFile reads, transforms and rewrites a single file. Files that are
// already migrated or lack the expected structure are left byte-identical.
func (m *Migrator) MigrateFile(ctx context.Context, path string) Result {
	log := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	raw, err := fileops.ReadFile(ctx, path)
	if err != nil {
		return Result{Path: path, Outcome: OutcomeFailed, Err: errors.Errorf("reading %s: %w", path, err)}
	}
	content := string(raw)

	if AlreadyMigrated(content, m.cfg.Marker) {
		log.Debug().Msg("marker present, skipping")
		return Result{Path: path, Outcome: OutcomeSkippedAlreadyMigrated}
	}

	rewritten, err := m.Transform(content)
	if err != nil {
		if errors.Is(err, ErrStructureNotFound) {
			log.Debug().Msg("panel anchors not found, skipping")
			return Result{Path: path, Outcome: OutcomeSkippedStructureNotFound}
		}
		return Result{Path: path, Outcome: OutcomeFailed, Err: errors.Errorf("transforming %s: %w", path, err)}
	}

	if err := fileops.WriteFileAtomic(ctx, path, []byte(rewritten)); err != nil {
		return Result{Path: path, Outcome: OutcomeFailed, Err: errors.Errorf("writing %s: %w", path, err)}
	}

	log.Debug().Msg("migrated")
	return Result{Path: path, Outcome: OutcomeUpdated}
}

// Run processes every target file and returns one Result per file. With an
// explicit file list, missing paths are recorded as skips. In discovery mode
// the configured root is walked for files matching the extension filter.
// A failure on one file never blocks the rest of the batch.
func (m *Migrator) Run(ctx context.Context) ([]Result, error) {
	if len(m.cfg.Files) > 0 {
		results := make([]Result, 0, len(m.cfg.Files))
		for _, path := range m.cfg.Files {
			ok, err := fileops.Exists(ctx, path)
			if err != nil {
				results = append(results, Result{Path: path, Outcome: OutcomeFailed, Err: err})
				continue
			}
			if !ok {
				results = append(results, Result{Path: path, Outcome: OutcomeSkippedNotFound})
				continue
			}
			results = append(results, m.MigrateFile(ctx, path))
		}
		return results, nil
	}

	var results []Result
	err := scan.Walk(ctx, m.cfg.Root, m.cfg.Extension, m.cfg.Ignore, func(path string) error {
		results = append(results, m.MigrateFile(ctx, path))
		return nil
	})
	if err != nil {
		return results, errors.Errorf("discovering files under %s: %w", m.cfg.Root, err)
	}
	return results, nil
}
