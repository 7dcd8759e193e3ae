package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError is a lexical or syntactic error in an expression-language
// program, anchored to the 1-based line where it was detected.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: parse error on line %d: %s", e.Line, e.Msg)
}

// Lexer converts a program source string into a flat token stream.
//
// Newlines are significant only at bracket depth zero, where they are
// emitted as NEWLINE tokens and act as statement terminators. Inside
// parentheses and square brackets newlines are plain whitespace, so
// expressions may span lines there. Braces do not suppress newlines;
// block bodies are newline-separated statements.
type Lexer struct {
	src    string
	pos    int
	line   int
	depth  int // open '(' + '[' nesting
	tokens []Token
}

// NewLexer returns a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Scan tokenizes the whole input and returns the token slice terminated
// by an EOF token.
func (l *Lexer) Scan() ([]Token, error) {
	for l.pos < len(l.src) {
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.emit(EOF, "", nil)
	return l.tokens, nil
}

func (l *Lexer) emit(t Type, lexeme string, literal any) {
	l.tokens = append(l.tokens, Token{Type: t, Lexeme: lexeme, Literal: literal, Line: l.line})
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) match(c byte) bool {
	if l.peek() == c {
		l.pos++
		return true
	}
	return false
}

func (l *Lexer) errorf(format string, args ...any) error {
	return &ParseError{Line: l.line, Msg: fmt.Sprintf(format, args...)}
}

func (l *Lexer) scanToken() error {
	c := l.src[l.pos]
	l.pos++

	switch c {
	case ' ', '\t', '\r':
		return nil
	case '\n':
		l.line++
		// Collapse runs of newlines and skip them entirely inside
		// parentheses or brackets.
		if l.depth == 0 && len(l.tokens) > 0 && l.tokens[len(l.tokens)-1].Type != NEWLINE {
			l.tokens = append(l.tokens, Token{Type: NEWLINE, Lexeme: "\n", Line: l.line - 1})
		}
		return nil
	case '(':
		l.depth++
		l.emit(LPAREN, "(", nil)
		return nil
	case ')':
		if l.depth > 0 {
			l.depth--
		}
		l.emit(RPAREN, ")", nil)
		return nil
	case '[':
		l.depth++
		l.emit(LBRACKET, "[", nil)
		return nil
	case ']':
		if l.depth > 0 {
			l.depth--
		}
		l.emit(RBRACKET, "]", nil)
		return nil
	case '{':
		l.emit(LBRACE, "{", nil)
		return nil
	case '}':
		l.emit(RBRACE, "}", nil)
		return nil
	case ',':
		l.emit(COMMA, ",", nil)
		return nil
	case '.':
		l.emit(DOT, ".", nil)
		return nil
	case '+':
		l.emit(PLUS, "+", nil)
		return nil
	case '-':
		l.emit(MINUS, "-", nil)
		return nil
	case '*':
		l.emit(STAR, "*", nil)
		return nil
	case '/':
		l.emit(SLASH, "/", nil)
		return nil
	case '%':
		l.emit(PERCENT, "%", nil)
		return nil
	case '=':
		if l.match('=') {
			l.emit(EQ, "==", nil)
		} else {
			l.emit(ASSIGN, "=", nil)
		}
		return nil
	case '!':
		if l.match('=') {
			l.emit(NEQ, "!=", nil)
		} else {
			l.emit(NOT, "!", nil)
		}
		return nil
	case '<':
		if l.match('=') {
			l.emit(LTE, "<=", nil)
		} else {
			l.emit(LT, "<", nil)
		}
		return nil
	case '>':
		if l.match('=') {
			l.emit(GTE, ">=", nil)
		} else {
			l.emit(GT, ">", nil)
		}
		return nil
	case '&':
		if l.match('&') {
			l.emit(AND, "&&", nil)
			return nil
		}
		return l.errorf("unexpected character '&'")
	case '|':
		if l.match('|') {
			l.emit(OR, "||", nil)
			return nil
		}
		return l.errorf("unexpected character '|'")
	case '"', '\'':
		return l.scanString(c)
	}

	if isDigit(c) {
		return l.scanNumber(c)
	}
	if isIdentStart(c) {
		l.scanIdent(c)
		return nil
	}
	return l.errorf("unexpected character %q", string(c))
}

func (l *Lexer) scanString(quote byte) error {
	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			return l.errorf("unterminated string literal")
		}
		c := l.src[l.pos]
		l.pos++
		switch c {
		case quote:
			l.emit(STRING, b.String(), b.String())
			return nil
		case '\n':
			return l.errorf("unterminated string literal")
		case '\\':
			if l.pos >= len(l.src) {
				return l.errorf("unterminated string literal")
			}
			esc := l.src[l.pos]
			l.pos++
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '\\', '"', '\'':
				b.WriteByte(esc)
			default:
				return l.errorf("invalid escape sequence '\\%s'", string(esc))
			}
		default:
			b.WriteByte(c)
		}
	}
}

func (l *Lexer) scanNumber(first byte) error {
	start := l.pos - 1
	for isDigit(l.peek()) {
		l.pos++
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.pos++
		for isDigit(l.peek()) {
			l.pos++
		}
	}
	if c := l.peek(); c == 'e' || c == 'E' {
		next := l.peekNext()
		if isDigit(next) || next == '+' || next == '-' {
			l.pos += 2
			for isDigit(l.peek()) {
				l.pos++
			}
		}
	}
	lexeme := l.src[start:l.pos]
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return l.errorf("invalid number literal %q", lexeme)
	}
	l.emit(NUMBER, lexeme, f)
	return nil
}

func (l *Lexer) scanIdent(first byte) {
	start := l.pos - 1
	for isIdentPart(l.peek()) {
		l.pos++
	}
	lexeme := l.src[start:l.pos]
	if kw, ok := keywords[lexeme]; ok {
		switch kw {
		case BOOL:
			l.emit(BOOL, lexeme, lexeme == "true")
		case NULL:
			l.emit(NULL, lexeme, nil)
		default:
			l.emit(kw, lexeme, nil)
		}
		return
	}
	l.emit(IDENT, lexeme, nil)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
