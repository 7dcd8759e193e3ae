//go:build property

package template

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// literalText generates text that contains no delimiter sequences, so
// it must render to itself.
func literalText() gopter.Gen {
	return gen.UnicodeString().SuchThat(func(s string) bool {
		return !strings.Contains(s, "<%") && !strings.Contains(s, "%>")
	})
}

func TestRenderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("delimiter-free templates round-trip unchanged", prop.ForAll(
		func(text string) bool {
			out, err := Render(text, map[string]any{})
			return err == nil && out == text
		},
		literalText(),
	))

	properties.Property("trimming is local and symmetric", prop.ForAll(
		func(inner string, pad int) bool {
			// Whitespace-wrapping a directive pair only strips the
			// adjacent padding, never the interior of the text.
			core := strings.Trim(inner, " \t\n\r")
			if core == "" {
				return true
			}
			padding := strings.Repeat(" ", pad%8)
			src := "<% x = 1 -%>" + padding + core + padding + "<%- x = 2 %>"
			out, err := Render(src, map[string]any{})
			return err == nil && out == core
		},
		literalText(),
		gen.IntRange(0, 16),
	))

	properties.Property("print inserts value, code never does", prop.ForAll(
		func(value string) bool {
			data := map[string]any{"v": value}
			printed, err := Render("<%= v %>", data)
			if err != nil || printed != value {
				return false
			}
			silent, err := Render("<% v %>", data)
			return err == nil && silent == ""
		},
		literalText().SuchThat(func(s string) bool { return s != "" }),
	))

	properties.Property("unclosed opener always fails with no partial output", prop.ForAll(
		func(prefix string, body string) bool {
			// Removing every '>' guarantees no closer can appear or
			// be re-formed after the opener.
			src := prefix + "<%" + strings.ReplaceAll(body, ">", "")
			out, err := Render(src, map[string]any{})
			if _, ok := err.(*SyntaxError); !ok {
				return false
			}
			return out == ""
		},
		literalText(),
		literalText(),
	))

	properties.Property("quoted literals survive program embedding", prop.ForAll(
		func(text string) bool {
			// Force the text through the assembled program twice,
			// once as a literal and once as data, and require both
			// paths to agree.
			out, err := Render("<%= v %>"+text, map[string]any{"v": text})
			return err == nil && out == text+text
		},
		literalText(),
	))

	_ = properties.TestingRun(t)
}
