package template

// Kind classifies a template token.
type Kind int

const (
	// Text is literal template content emitted verbatim.
	Text Kind = iota
	// Print is an expression whose value is appended to the output.
	Print
	// Code is a statement executed for control flow only; its value,
	// if any, is discarded.
	Code
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Print:
		return "print"
	case Code:
		return "code"
	default:
		return "unknown"
	}
}

// Token is one piece of a tokenized template. For Text tokens Value is
// the literal content; for Print and Code tokens it is the raw
// expression or statement source between the delimiters.
//
// TrimBefore and TrimAfter are only ever set on Print and Code tokens.
// TrimBefore requests that trailing whitespace be stripped from the
// immediately preceding Text token, TrimAfter that leading whitespace
// be stripped from the immediately following one. Both are no-ops when
// the neighbor is absent or not Text.
type Token struct {
	Kind       Kind
	Value      string
	TrimBefore bool
	TrimAfter  bool
}
