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
	"fmt"
	"strings"
)

// Side describes one panel of the unified layout wrapper.
type Side struct {
	Header     string // Header label rendered above the panel
	Content    string // Captured region embedded as the panel body
	Scrollable bool
	MinHeight  string
}

// LayoutDescriptor carries both sides of the wrapper. Both sides are always
// present together and render in a fixed order, left first.
type LayoutDescriptor struct {
	Left  Side
	Right Side
}

// Render emits the full TwoColumnLayout wrapper text as a single string
// formation. No partial state ever reaches disk.
func (d LayoutDescriptor) Render() string {
	var sb strings.Builder
	sb.WriteString("\n<TwoColumnLayout\n")
	writeSide(&sb, "left", d.Left)
	writeSide(&sb, "right", d.Right)
	sb.WriteString("/>\n")
	return sb.String()
}

func writeSide(sb *strings.Builder, name string, s Side) {
	fmt.Fprintf(sb, "  %s={\n", name)
	fmt.Fprintf(sb, "    header: <h2 className=\"text-xl font-semibold\">%s</h2>,\n", s.Header)
	sb.WriteString("    content: (\n")
	fmt.Fprintf(sb, "      %s\n", s.Content)
	sb.WriteString("    ),\n")
	fmt.Fprintf(sb, "    scrollable: %t,\n", s.Scrollable)
	fmt.Fprintf(sb, "    minHeight: %q\n", s.MinHeight)
	sb.WriteString("  }\n")
}
