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

package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/walteh/layoutrc/pkg/migrate"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 45 // Base width for file path
	statusWidth = 35 // Width for outcome text
)

// 🎯 Printer renders the end-of-run report: one line per processed file,
// emitted after the full batch completes, followed by a summary.
type Printer struct {
	out io.Writer
}

// 🏭 NewPrinter creates a Printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// 📝 formatResult formats one per-file outcome line
func formatResult(res migrate.Result) string {
	var symbol rune
	var symbolColor color.Attribute
	switch res.Outcome {
	case migrate.OutcomeUpdated:
		symbol = '✓'
		symbolColor = color.FgGreen
	case migrate.OutcomeUnchanged:
		symbol = '•'
		symbolColor = color.FgCyan
	case migrate.OutcomeFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, res.Path),
		fmt.Sprintf("%-*s", statusWidth, res.Outcome))
	if res.Err != nil {
		line += " " + color.New(color.FgRed).Sprint(res.Err.Error())
	}
	return line
}

// 📊 Print writes one line per result and a final summary. Every file the
// run discovered appears exactly once.
func (p *Printer) Print(results []migrate.Result) {
	for _, res := range results {
		fmt.Fprintln(p.out, formatResult(res))
	}

	var updated, unchanged, skipped, failed int
	for _, res := range results {
		switch res.Outcome {
		case migrate.OutcomeUpdated:
			updated++
		case migrate.OutcomeUnchanged:
			unchanged++
		case migrate.OutcomeFailed:
			failed++
		default:
			skipped++
		}
	}

	summary := fmt.Sprintf("%d updated, %d unchanged, %d skipped, %d failed (%d total)",
		updated, unchanged, skipped, failed, len(results))
	if failed > 0 {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(p.out).Println(summary)
		return
	}
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(p.out).Println(summary)
}
