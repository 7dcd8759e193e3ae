package expr

import "fmt"

// Type identifies a lexical token kind.
type Type int

const (
	// Special
	EOF Type = iota
	NEWLINE

	// Literals and identifiers
	IDENT
	NUMBER
	STRING
	BOOL
	NULL

	// Punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	DOT

	// Operators
	ASSIGN
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	EQ
	NEQ
	LT
	LTE
	GT
	GTE
	NOT
	AND
	OR

	// Keywords
	IF
	ELSE
	FOR
	IN
	WHILE
)

var typeNames = map[Type]string{
	EOF:      "end of input",
	NEWLINE:  "newline",
	IDENT:    "identifier",
	NUMBER:   "number",
	STRING:   "string",
	BOOL:     "boolean",
	NULL:     "null",
	LPAREN:   "'('",
	RPAREN:   "')'",
	LBRACE:   "'{'",
	RBRACE:   "'}'",
	LBRACKET: "'['",
	RBRACKET: "']'",
	COMMA:    "','",
	DOT:      "'.'",
	ASSIGN:   "'='",
	PLUS:     "'+'",
	MINUS:    "'-'",
	STAR:     "'*'",
	SLASH:    "'/'",
	PERCENT:  "'%'",
	EQ:       "'=='",
	NEQ:      "'!='",
	LT:       "'<'",
	LTE:      "'<='",
	GT:       "'>'",
	GTE:      "'>='",
	NOT:      "'!'",
	AND:      "'&&'",
	OR:       "'||'",
	IF:       "'if'",
	ELSE:     "'else'",
	FOR:      "'for'",
	IN:       "'in'",
	WHILE:    "'while'",
}

// String returns a human-readable name for the token type, used in
// parse error messages.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Token is a single lexical token with its decoded literal value (for
// NUMBER, STRING, BOOL and NULL) and the 1-based source line it starts on.
type Token struct {
	Type    Type
	Lexeme  string
	Literal any
	Line    int
}

var keywords = map[string]Type{
	"if":    IF,
	"else":  ELSE,
	"for":   FOR,
	"in":    IN,
	"while": WHILE,
	"true":  BOOL,
	"false": BOOL,
	"null":  NULL,
}
