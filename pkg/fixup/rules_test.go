package fixup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const malformedMapOpening = "{tabOrder.map((lang, index) => {"

func TestMapOpeningRule(t *testing.T) {
	rule := MapOpeningRule()

	t.Run("corrects_malformed_opening", func(t *testing.T) {
		in := "before\n" + malformedMapOpening + "\n  <Tab />\nafter"
		got, changed := rule.Apply(in)
		assert.True(t, changed)
		assert.Contains(t, got, mapOpeningCorrected)
		assert.Contains(t, got, "const { label, icon } = languageDetails[lang];")
	})

	t.Run("no_op_on_unrelated_text", func(t *testing.T) {
		in := "{items.map((item) => <li>{item}</li>)}"
		got, changed := rule.Apply(in)
		assert.False(t, changed)
		assert.Equal(t, in, got)
	})
}

func TestPropsTailRule(t *testing.T) {
	rule := PropsTailRule()

	in := "content\n),\n  scrollable: true,\n  minHeight: \"500px\"\nrest"
	got, changed := rule.Apply(in)
	assert.True(t, changed)
	assert.Contains(t, got, ")})\n},\nscrollable: true,\nminHeight: \"500px\"")
	assert.Contains(t, got, "rest")
}

func TestPropsTailSidecarRule(t *testing.T) {
	rule := PropsTailSidecarRule()

	in := "content\n), scrollable: true, minHeight: \"500px\"\nrest"
	got, changed := rule.Apply(in)
	assert.True(t, changed)
	assert.Contains(t, got, ")})\nscrollable: true,\nminHeight: \"500px\"")
}

func TestTruncatedClassRule(t *testing.T) {
	rule := TruncatedClassRule()

	t.Run("repairs_truncated_attribute", func(t *testing.T) {
		in := "<div className=\"rounded-md shad\n  <span>x</span>"
		got, changed := rule.Apply(in)
		assert.True(t, changed)
		assert.Contains(t, got, "className=\"rounded-md shadow\">")
	})

	t.Run("no_op_on_complete_attribute", func(t *testing.T) {
		in := "<div className=\"rounded-md shadow\">\n"
		got, changed := rule.Apply(in)
		assert.False(t, changed)
		assert.Equal(t, in, got)
	})
}

// Every rule must be a no-op when re-applied to its own output.
func TestRules_Idempotent(t *testing.T) {
	samples := []string{
		"before\n" + malformedMapOpening + "\n  <Tab />\nafter",
		"content\n),\n  scrollable: true,\n  minHeight: \"500px\"\nrest",
		"<div className=\"p-2 shad\n  <span>x</span>",
		"text with no malformed shapes at all",
	}

	rules := append(StandardRules(), SidecarRules()...)
	for _, rule := range rules {
		t.Run(rule.Name, func(t *testing.T) {
			for _, sample := range samples {
				once, _ := rule.Apply(sample)
				twice, changed := rule.Apply(once)
				require.False(t, changed, "rule %s re-matched its own output", rule.Name)
				assert.Equal(t, once, twice)
			}
		})
	}
}
