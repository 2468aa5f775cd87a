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

package fixup

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/layoutrc/pkg/config"
	"github.com/walteh/layoutrc/pkg/fileops"
	"github.com/walteh/layoutrc/pkg/migrate"
	"github.com/walteh/layoutrc/pkg/scan"
)

// Fixer applies the post-fix substitution rules to already-migrated files.
// In sidecar mode corrected content goes to a "<name>_fixed<ext>" sibling
// and the source file is never touched.
type Fixer struct {
	cfg     *config.Config
	rules   []Rule
	sidecar bool
}

// NewFixer creates a Fixer. Advanced mode adds the truncated-class repair
// and switches to sidecar output.
func NewFixer(cfg *config.Config, advanced bool) *Fixer {
	if advanced {
		return &Fixer{cfg: cfg, rules: SidecarRules(), sidecar: true}
	}
	return &Fixer{cfg: cfg, rules: StandardRules()}
}

// FixFile applies the rules to a single file. Files without the migration
// marker are skipped; files the rules leave unchanged are not rewritten.
func (f *Fixer) FixFile(ctx context.Context, path string) migrate.Result {
	log := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	raw, err := fileops.ReadFile(ctx, path)
	if err != nil {
		return migrate.Result{Path: path, Outcome: migrate.OutcomeFailed, Err: errors.Errorf("reading %s: %w", path, err)}
	}
	content := string(raw)

	if !migrate.AlreadyMigrated(content, f.cfg.Marker) {
		return migrate.Result{Path: path, Outcome: migrate.OutcomeSkippedNotMigrated}
	}

	fixed := content
	for _, rule := range f.rules {
		var applied bool
		fixed, applied = rule.Apply(fixed)
		if applied {
			log.Debug().Str("rule", rule.Name).Msg("rule applied")
		}
	}

	if fixed == content {
		return migrate.Result{Path: path, Outcome: migrate.OutcomeUnchanged}
	}

	target := path
	if f.sidecar {
		target = sidecarPath(path, f.cfg.FixedSuffix)
	}
	if err := fileops.WriteFileAtomic(ctx, target, []byte(fixed)); err != nil {
		return migrate.Result{Path: path, Outcome: migrate.OutcomeFailed, Err: errors.Errorf("writing %s: %w", target, err)}
	}

	return migrate.Result{Path: path, Outcome: migrate.OutcomeUpdated}
}

// Run walks the configured root and fixes every file matching the extension
// filter, returning one Result per file.
func (f *Fixer) Run(ctx context.Context) ([]migrate.Result, error) {
	var results []migrate.Result
	err := scan.Walk(ctx, f.cfg.Root, f.cfg.Extension, f.cfg.Ignore, func(path string) error {
		results = append(results, f.FixFile(ctx, path))
		return nil
	})
	if err != nil {
		return results, errors.Errorf("discovering files under %s: %w", f.cfg.Root, err)
	}
	return results, nil
}

// sidecarPath inserts suffix between the file name and its extension.
func sidecarPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}
