package template

import (
	"strings"

	"github.com/pkgstrap/pkgstrap/internal/template/expr"
)

// Accumulator is the reserved variable collecting rendered output
// during execution. It must not appear in caller data mappings.
const Accumulator = "__out"

// Render tokenizes src and renders it against data. It is the
// convenience composition of Tokenize and RenderTokens and the entry
// point the scaffolder uses.
func Render(src string, data map[string]any) (string, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return "", err
	}
	return RenderTokens(tokens, data)
}

// RenderTokens applies the trim pass, assembles the token sequence into
// an expression-language program, and executes it in a fresh
// environment seeded from data plus the empty accumulator. Nothing is
// cached or shared between calls. Expression-language failures (parse
// or runtime) propagate unclassified; no partial output is returned.
func RenderTokens(tokens []Token, data map[string]any) (string, error) {
	applyTrim(tokens)

	env := expr.NewEnv(data)
	env.Set(Accumulator, "")
	if err := expr.Exec(assemble(tokens), env); err != nil {
		return "", err
	}
	out, _ := env.Get(Accumulator)
	s, _ := out.(string)
	return s, nil
}

// trimCutset is the whitespace class the trim modifiers strip.
const trimCutset = " \t\n\r"

// applyTrim strips whitespace from Text tokens adjacent to trim-marked
// directive tokens, destructively and exactly once per side. A Text
// token sandwiched between two trim-marked directives is stripped at
// the front and back independently; interior whitespace is never
// touched. Neighbors that are absent or not Text make the flag a no-op.
func applyTrim(tokens []Token) {
	for i := range tokens {
		if tokens[i].Kind == Text {
			continue
		}
		if tokens[i].TrimBefore && i > 0 && tokens[i-1].Kind == Text {
			tokens[i-1].Value = strings.TrimRight(tokens[i-1].Value, trimCutset)
		}
		if tokens[i].TrimAfter && i+1 < len(tokens) && tokens[i+1].Kind == Text {
			tokens[i+1].Value = strings.TrimLeft(tokens[i+1].Value, trimCutset)
		}
	}
}

// assemble compiles the token sequence into one program source, one
// operation per line:
//
//	Text   __out = __out + "<quoted literal>"
//	Print  __out = __out + (<expression>)
//	Code   <statement text verbatim>
//
// Compiling to a single concatenated source is what lets a code token
// open a block that a later code token closes. Operations for empty
// Text tokens are skipped; they contribute nothing.
func assemble(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case Text:
			if tok.Value == "" {
				continue
			}
			b.WriteString(Accumulator)
			b.WriteString(" = ")
			b.WriteString(Accumulator)
			b.WriteString(" + ")
			b.WriteString(quote(tok.Value))
			b.WriteByte('\n')
		case Print:
			b.WriteString(Accumulator)
			b.WriteString(" = ")
			b.WriteString(Accumulator)
			b.WriteString(" + (")
			b.WriteString(tok.Value)
			b.WriteString(")\n")
		case Code:
			b.WriteString(tok.Value)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// quote renders s as a double-quoted expression-language string
// literal. Backslashes, quotes and line-control characters are
// escaped so arbitrary literal text, embedded quotes and newlines
// included, can never terminate the literal or corrupt the assembled
// program.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
