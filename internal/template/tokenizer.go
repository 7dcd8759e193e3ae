package template

import (
	"fmt"
	"regexp"
)

// SyntaxError is the single parse failure the engine produces: a code
// or print opener that is not followed by a valid closer, either
// because the template ends first or because another delimiter nests
// inside the block. It is always fatal; no partial token sequence or
// output is ever returned alongside it.
type SyntaxError struct {
	Offset int // byte offset of the offending opener
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template: parse error at offset %d: %s", e.Offset, e.Msg)
}

const errUnclosed = "unclosed expression, missing closing delimiter"

// delimPattern matches every delimiter form. Longer openers come first
// so "<%-=" is never consumed as "<%-" followed by "=".
var delimPattern = regexp.MustCompile(`<%-=|<%=|<%-|<%|-%>|%>`)

const (
	openCode      = "<%"
	openCodeTrim  = "<%-"
	openPrint     = "<%="
	openPrintTrim = "<%-="
	closePlain    = "%>"
	closeTrim     = "-%>"
)

// piece is one fragment of the split input: either a delimiter or the
// literal text between two delimiters (possibly empty).
type piece struct {
	text   string
	offset int
	delim  bool
}

// Tokenize splits template source into a flat token sequence. The
// sequence is a lossless partition of the input: concatenating the
// tokens (re-wrapping Print/Code values in their delimiters) restores
// the source exactly.
//
// The walk is a flat cursor, not a descent: delimiters cannot nest, so
// after any opener the next piece must be the raw block body and the
// piece after that must be one of the two closers. Delimiters are not
// escapable; a literal "<%" in text cannot be expressed (known
// limitation, preserved deliberately).
func Tokenize(src string) ([]Token, error) {
	pieces := split(src)
	tokens := make([]Token, 0, len(pieces))

	for i := 0; i < len(pieces); i++ {
		p := pieces[i]

		var kind Kind
		var trimBefore bool
		switch p.text {
		case openCode:
			kind = Code
		case openCodeTrim:
			kind, trimBefore = Code, true
		case openPrint:
			kind = Print
		case openPrintTrim:
			kind, trimBefore = Print, true
		default:
			// Everything that is not an opener, stray closers
			// included, is literal text.
			tokens = append(tokens, Token{Kind: Text, Value: p.text})
			continue
		}

		// Opener found: the body and a closer must follow. Text
		// pieces never contain delimiter substrings, so matching an
		// opener form here implies p.delim.
		if i+2 >= len(pieces) {
			return nil, &SyntaxError{Offset: p.offset, Msg: errUnclosed}
		}
		body, closer := pieces[i+1], pieces[i+2]
		if body.delim {
			return nil, &SyntaxError{Offset: p.offset, Msg: errUnclosed}
		}
		if !closer.delim || (closer.text != closePlain && closer.text != closeTrim) {
			return nil, &SyntaxError{Offset: p.offset, Msg: errUnclosed}
		}
		tokens = append(tokens, Token{
			Kind:       kind,
			Value:      body.text,
			TrimBefore: trimBefore,
			TrimAfter:  closer.text == closeTrim,
		})
		i += 2
	}
	return tokens, nil
}

// split cuts src on every delimiter occurrence, keeping the delimiters
// as their own pieces. Text pieces between adjacent delimiters are kept
// even when empty, so an opener's body piece always exists.
func split(src string) []piece {
	matches := delimPattern.FindAllStringIndex(src, -1)
	pieces := make([]piece, 0, len(matches)*2+1)
	prev := 0
	for _, m := range matches {
		pieces = append(pieces,
			piece{text: src[prev:m[0]], offset: prev},
			piece{text: src[m[0]:m[1]], offset: m[0], delim: true},
		)
		prev = m[1]
	}
	pieces = append(pieces, piece{text: src[prev:], offset: prev})
	return pieces
}
