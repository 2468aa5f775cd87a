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
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrStructureNotFound indicates a file does not contain the two panel
// anchors the migration expects. It is a recoverable, per-file condition.
var ErrStructureNotFound = errors.New("layout structure not found")

// Segments holds the four ordered slices of a source file around the two
// panel regions. Prefix + Left + ... + Right + ... + Suffix is not a
// reconstruction of the input; the text between the regions is what the
// rewrite discards.
type Segments struct {
	Prefix string // Everything before the first anchor
	Left   string // First region, anchor through its first closing tag
	Right  string // Second region, anchor through its first closing tag
	Suffix string // Everything after the second region's first closing tag
}

// SplitRegions locates the two panel regions in content. The delimiter must
// occur at least twice; fewer occurrences yield ErrStructureNotFound and the
// caller must leave the file untouched.
//
// Each region is closed at the first occurrence of closing after its anchor.
// This is a nearest-closing-tag heuristic, not a balanced-tag parse: a region
// that nests another tag of the same closing kind before its own end is
// truncated at the inner close. Unrelated occurrences of the closing tag
// after the second region are preserved verbatim in Suffix.
func SplitRegions(content, delim, closing string) (*Segments, error) {
	parts := strings.SplitN(content, delim, 3)
	if len(parts) < 3 {
		return nil, errors.Errorf("need 2 occurrences of %q, found %d: %w", delim, len(parts)-1, ErrStructureNotFound)
	}

	leftBody, _, _ := strings.Cut(parts[1], closing)
	rightBody, suffix, _ := strings.Cut(parts[2], closing)

	return &Segments{
		Prefix: parts[0],
		Left:   delim + leftBody + closing,
		Right:  delim + rightBody + closing,
		Suffix: suffix,
	}, nil
}
