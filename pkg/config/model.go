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

package config

import (
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Defaults reproduce the literals the legacy migration operated on.
const (
	DefaultExtension    = ".tsx"
	DefaultMarker       = "TwoColumnLayout"
	DefaultImport       = "import { TwoColumnLayout } from './Layout/TwoColumnLayout';\n"
	DefaultImportAnchor = "import SEO from"
	DefaultDelimiter    = `<div className="w-full lg:w-1/2`
	DefaultClosingTag   = "</div>"
	DefaultLeftHeader   = "Input Section"
	DefaultRightHeader  = "Output Section"
	DefaultMinHeight    = "500px"
	DefaultBackupSuffix = ".bak"
	DefaultFixedSuffix  = "_fixed"
)

// 📚 Config is the complete configuration for a run. It is always passed
// explicitly into the pipeline entry points; there is no process-wide state.
type Config struct {
	Root      string   `yaml:"root" json:"root" hcl:"root,optional"`           // Directory to discover files under
	Extension string   `yaml:"extension" json:"extension" hcl:"extension,optional"` // File name suffix filter
	Files     []string `yaml:"files" json:"files" hcl:"files,optional"`        // Explicit target list; skips discovery when set
	Ignore    []string `yaml:"ignore" json:"ignore" hcl:"ignore,optional"`     // Doublestar globs excluded from discovery

	Marker       string `yaml:"marker" json:"marker" hcl:"marker,optional"`                      // Idempotency marker token
	Import       string `yaml:"import" json:"import" hcl:"import,optional"`                      // Import declaration to inject
	ImportAnchor string `yaml:"import_anchor" json:"import_anchor" hcl:"import_anchor,optional"` // Pre-existing import to insert before
	Delimiter    string `yaml:"delimiter" json:"delimiter" hcl:"delimiter,optional"`             // Anchor substring opening a panel region
	ClosingTag   string `yaml:"closing_tag" json:"closing_tag" hcl:"closing_tag,optional"`       // Substring closing a panel region

	LeftHeader  string `yaml:"left_header" json:"left_header" hcl:"left_header,optional"`    // Header label for the first region
	RightHeader string `yaml:"right_header" json:"right_header" hcl:"right_header,optional"` // Header label for the second region
	MinHeight   string `yaml:"min_height" json:"min_height" hcl:"min_height,optional"`       // minHeight metadata on both sides

	BackupSuffix string `yaml:"backup_suffix" json:"backup_suffix" hcl:"backup_suffix,optional"` // Suffix for pre-cleanup copies
	FixedSuffix  string `yaml:"fixed_suffix" json:"fixed_suffix" hcl:"fixed_suffix,optional"`    // Name suffix for advanced-fix siblings

	location string // Path the config was loaded from, if any
}

// 🔍 Validate fills in defaults and rejects contradictory values.
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}
	if cfg.Import == "" {
		cfg.Import = DefaultImport
	}
	if cfg.ImportAnchor == "" {
		cfg.ImportAnchor = DefaultImportAnchor
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = DefaultDelimiter
	}
	if cfg.ClosingTag == "" {
		cfg.ClosingTag = DefaultClosingTag
	}
	if cfg.LeftHeader == "" {
		cfg.LeftHeader = DefaultLeftHeader
	}
	if cfg.RightHeader == "" {
		cfg.RightHeader = DefaultRightHeader
	}
	if cfg.MinHeight == "" {
		cfg.MinHeight = DefaultMinHeight
	}
	if cfg.BackupSuffix == "" {
		cfg.BackupSuffix = DefaultBackupSuffix
	}
	if cfg.FixedSuffix == "" {
		cfg.FixedSuffix = DefaultFixedSuffix
	}

	if cfg.Delimiter == cfg.ClosingTag {
		return errors.Errorf("delimiter and closing_tag must differ, both are %q", cfg.Delimiter)
	}
	if strings.Contains(cfg.Import, cfg.Delimiter) {
		return errors.Errorf("import declaration must not contain the delimiter %q", cfg.Delimiter)
	}

	cfg.Root = filepath.Clean(cfg.Root)

	return nil
}

// 📍 Location returns the path the config was loaded from, or "" when the
// config was assembled from flags alone.
func (cfg *Config) Location() string {
	return cfg.location
}
