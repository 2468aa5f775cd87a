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
	"regexp"
)

// Rule is a named, ordered, idempotent text substitution. Applying a rule to
// text that does not match is a no-op, and a rule never re-matches its own
// output.
type Rule struct {
	Name    string
	re      *regexp.Regexp
	rewrite func(groups []string) string
}

// Apply runs the rule over content and reports whether anything changed.
func (r Rule) Apply(content string) (string, bool) {
	changed := false
	out := r.re.ReplaceAllStringFunc(content, func(m string) string {
		rewritten := r.rewrite(r.re.FindStringSubmatch(m))
		if rewritten != m {
			changed = true
		}
		return rewritten
	})
	return out, changed
}

const mapOpeningCorrected = "{tabOrder.map((lang, index) => {\n" +
	"  const { label, icon } = languageDetails[lang];\n" +
	"  return ("

// MapOpeningRule corrects the malformed iteration-block opening left behind
// by the layout migration: the opening brace sequence without the per-item
// descriptor destructure or the returned element. The optional group matches
// the corrected continuation, so text already in corrected form is returned
// untouched instead of being expanded again.
func MapOpeningRule() Rule {
	re := regexp.MustCompile(`\{tabOrder\.map\(\(lang, index\) => \{` +
		`(\n  const \{ label, icon \} = languageDetails\[lang\];\n  return \()?`)
	return Rule{
		Name: "map-opening",
		re:   re,
		rewrite: func(groups []string) string {
			if groups[1] != "" {
				return groups[0]
			}
			return mapOpeningCorrected
		},
	}
}

var propsTailPattern = regexp.MustCompile(`\),\s*scrollable:\s*true,\s*minHeight:\s*"500px"`)

// PropsTailRule corrects the dangling closing construct immediately followed
// by the wrapper's scroll/min-height metadata. The corrected tail starts with
// ")})", which the pattern cannot match, so the rule is idempotent.
func PropsTailRule() Rule {
	return Rule{
		Name: "props-tail",
		re:   propsTailPattern,
		rewrite: func(groups []string) string {
			return ")})\n},\nscrollable: true,\nminHeight: \"500px\""
		},
	}
}

// PropsTailSidecarRule is the variant used by the advanced fix mode, which
// closes the tail without the extra brace line.
func PropsTailSidecarRule() Rule {
	return Rule{
		Name: "props-tail-sidecar",
		re:   propsTailPattern,
		rewrite: func(groups []string) string {
			return ")})\nscrollable: true,\nminHeight: \"500px\""
		},
	}
}

// TruncatedClassRule repairs a class attribute value truncated at "shad"
// followed by a line break, appending the missing suffix and closing the tag.
func TruncatedClassRule() Rule {
	re := regexp.MustCompile(`(className="[^"]*?)shad\n`)
	return Rule{
		Name: "truncated-class",
		re:   re,
		rewrite: func(groups []string) string {
			return groups[1] + `shadow">`
		},
	}
}

// StandardRules are applied by the in-place fix pass, in order.
func StandardRules() []Rule {
	return []Rule{MapOpeningRule(), PropsTailRule()}
}

// SidecarRules are applied by the advanced fix pass, which writes corrected
// siblings instead of overwriting.
func SidecarRules() []Rule {
	return []Rule{MapOpeningRule(), PropsTailSidecarRule(), TruncatedClassRule()}
}
