package expr

import "fmt"

// Parser builds an AST from a token stream using recursive descent with
// one token of lookahead. Binary operator parsing never crosses a
// NEWLINE token, which is how statements terminate without semicolons.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse lexes and parses a complete program.
func Parse(src string) ([]Stmt, error) {
	tokens, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	return p.parseProgram()
}

// ParseExpression lexes and parses a single expression, rejecting
// trailing input. Used for print-token bodies.
func ParseExpression(src string) (Expr, error) {
	tokens, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	p.skipNewlines()
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if p.peek().Type != EOF {
		return nil, p.errorf("unexpected %s after expression", p.peek().Type)
	}
	return e, nil
}

func (p *Parser) peek() Token { return p.tokens[p.pos] }

func (p *Parser) next() Token {
	t := p.tokens[p.pos]
	if t.Type != EOF {
		p.pos++
	}
	return t
}

func (p *Parser) check(t Type) bool { return p.peek().Type == t }

func (p *Parser) accept(t Type) bool {
	if p.check(t) {
		p.pos++
		return true
	}
	return false
}

func (p *Parser) expect(t Type) (Token, error) {
	if p.check(t) {
		return p.next(), nil
	}
	return Token{}, p.errorf("expected %s, found %s", t, p.peek().Type)
}

func (p *Parser) skipNewlines() {
	for p.check(NEWLINE) {
		p.pos++
	}
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Line: p.peek().Line, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) parseProgram() ([]Stmt, error) {
	var stmts []Stmt
	for {
		p.skipNewlines()
		if p.check(EOF) {
			return stmts, nil
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
}

func (p *Parser) parseStmt() (Stmt, error) {
	switch p.peek().Type {
	case LBRACE:
		return p.parseBlock()
	case IF:
		return p.parseIf()
	case FOR:
		return p.parseFor()
	case WHILE:
		return p.parseWhile()
	case IDENT:
		// Assignment needs two tokens of lookahead to distinguish
		// "x = ..." from an expression statement starting with x.
		if p.tokens[p.pos+1].Type == ASSIGN {
			name := p.next()
			p.next() // '='
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return &Assign{Name: name.Lexeme, Value: value, Line: name.Line}, nil
		}
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{X: x}, nil
}

func (p *Parser) parseBlock() (*Block, error) {
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}
	block := &Block{}
	for {
		p.skipNewlines()
		if p.accept(RBRACE) {
			return block, nil
		}
		if p.check(EOF) {
			return nil, p.errorf("unexpected end of input, expected '}'")
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, s)
	}
}

func (p *Parser) parseIf() (Stmt, error) {
	p.next() // 'if'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &If{Cond: cond, Then: then}
	// An else may sit on the next line; consumed newlines double as
	// statement separators when no else follows.
	p.skipNewlines()
	if p.accept(ELSE) {
		p.skipNewlines()
		if p.check(IF) {
			stmt.Else, err = p.parseIf()
		} else {
			stmt.Else, err = p.parseBlock()
		}
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseFor() (Stmt, error) {
	p.next() // 'for'
	// Allow the loop header to be parenthesized: for (x in xs) { ... }
	parens := p.accept(LPAREN)
	name, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(IN); err != nil {
		return nil, err
	}
	seq, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if parens {
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
	}
	p.skipNewlines()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ForIn{Var: name.Lexeme, Seq: seq, Body: body}, nil
}

func (p *Parser) parseWhile() (Stmt, error) {
	p.next() // 'while'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &While{Cond: cond, Body: body}, nil
}

// Expression grammar, lowest to highest precedence:
//
//	or:       and ("||" and)*
//	and:      equality ("&&" equality)*
//	equality: compare (("==" | "!=") compare)*
//	compare:  additive (("<" | "<=" | ">" | ">=") additive)*
//	additive: multiplicative (("+" | "-") multiplicative)*
//	multi:    unary (("*" | "/" | "%") unary)*
//	unary:    ("!" | "-") unary | postfix
//	postfix:  primary ("." IDENT | "[" expr "]")*
//	primary:  literal | IDENT | IDENT "(" args ")" | "(" expr ")"
func (p *Parser) parseExpr() (Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Expr, error) {
	x, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.check(OR) {
		op := p.next()
		y, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		x = &Binary{Op: OR, X: x, Y: y, Line: op.Line}
	}
	return x, nil
}

func (p *Parser) parseAnd() (Expr, error) {
	x, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.check(AND) {
		op := p.next()
		y, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		x = &Binary{Op: AND, X: x, Y: y, Line: op.Line}
	}
	return x, nil
}

func (p *Parser) parseEquality() (Expr, error) {
	return p.parseBinary(p.parseCompare, EQ, NEQ)
}

func (p *Parser) parseCompare() (Expr, error) {
	return p.parseBinary(p.parseAdditive, LT, LTE, GT, GTE)
}

func (p *Parser) parseAdditive() (Expr, error) {
	return p.parseBinary(p.parseMultiplicative, PLUS, MINUS)
}

func (p *Parser) parseMultiplicative() (Expr, error) {
	return p.parseBinary(p.parseUnary, STAR, SLASH, PERCENT)
}

func (p *Parser) parseBinary(operand func() (Expr, error), ops ...Type) (Expr, error) {
	x, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		matched := false
		for _, op := range ops {
			if p.check(op) {
				tok := p.next()
				y, err := operand()
				if err != nil {
					return nil, err
				}
				x = &Binary{Op: tok.Type, X: x, Y: y, Line: tok.Line}
				matched = true
				break
			}
		}
		if !matched {
			return x, nil
		}
	}
}

func (p *Parser) parseUnary() (Expr, error) {
	if p.check(NOT) || p.check(MINUS) {
		op := p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op.Type, X: x, Line: op.Line}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(DOT):
			tok := p.next()
			name, err := p.expect(IDENT)
			if err != nil {
				return nil, err
			}
			x = &Member{X: x, Name: name.Lexeme, Line: tok.Line}
		case p.check(LBRACKET):
			tok := p.next()
			key, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(RBRACKET); err != nil {
				return nil, err
			}
			x = &Index{X: x, Key: key, Line: tok.Line}
		default:
			return x, nil
		}
	}
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case NUMBER, STRING, BOOL, NULL:
		p.next()
		return &Literal{Value: tok.Literal, Line: tok.Line}, nil
	case IDENT:
		p.next()
		if p.check(LPAREN) {
			return p.parseCall(tok)
		}
		return &Ident{Name: tok.Lexeme, Line: tok.Line}, nil
	case LPAREN:
		p.next()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, p.errorf("unexpected %s", tok.Type)
}

func (p *Parser) parseCall(name Token) (Expr, error) {
	p.next() // '('
	call := &Call{Name: name.Lexeme, Line: name.Line}
	if p.accept(RPAREN) {
		return call, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.accept(COMMA) {
			continue
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return call, nil
	}
}
