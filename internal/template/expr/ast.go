package expr

// Expr is an expression node. Every node records the 1-based source line
// it starts on for error reporting.
type Expr interface {
	exprNode()
	Pos() int
}

// Stmt is a statement node.
type Stmt interface {
	stmtNode()
}

// Literal is a constant value: number, string, boolean or null.
type Literal struct {
	Value any
	Line  int
}

// Ident is a variable reference.
type Ident struct {
	Name string
	Line int
}

// Unary is a prefix operator application: NOT or MINUS.
type Unary struct {
	Op   Type
	X    Expr
	Line int
}

// Binary is an infix operator application.
type Binary struct {
	Op   Type
	X, Y Expr
	Line int
}

// Member is property access: X.Name.
type Member struct {
	X    Expr
	Name string
	Line int
}

// Index is subscript access: X[Key].
type Index struct {
	X    Expr
	Key  Expr
	Line int
}

// Call is a builtin function invocation. Only the fixed builtin set is
// callable; there are no user-defined functions.
type Call struct {
	Name string
	Args []Expr
	Line int
}

func (*Literal) exprNode() {}
func (*Ident) exprNode()   {}
func (*Unary) exprNode()   {}
func (*Binary) exprNode()  {}
func (*Member) exprNode()  {}
func (*Index) exprNode()   {}
func (*Call) exprNode()    {}

func (e *Literal) Pos() int { return e.Line }
func (e *Ident) Pos() int   { return e.Line }
func (e *Unary) Pos() int   { return e.Line }
func (e *Binary) Pos() int  { return e.Line }
func (e *Member) Pos() int  { return e.Line }
func (e *Index) Pos() int   { return e.Line }
func (e *Call) Pos() int    { return e.Line }

// ExprStmt evaluates an expression and discards the result.
type ExprStmt struct {
	X Expr
}

// Assign binds the value of an expression to a variable name.
type Assign struct {
	Name  string
	Value Expr
	Line  int
}

// Block is a braced statement list.
type Block struct {
	Stmts []Stmt
}

// If is a conditional with an optional else branch. Else is nil, a
// *Block, or another *If (else-if chain).
type If struct {
	Cond Expr
	Then *Block
	Else Stmt
}

// ForIn iterates a list's elements or a map's keys in sorted order.
type ForIn struct {
	Var  string
	Seq  Expr
	Body *Block
}

// While loops as long as its condition is truthy.
type While struct {
	Cond Expr
	Body *Block
}

func (*ExprStmt) stmtNode() {}
func (*Assign) stmtNode()   {}
func (*Block) stmtNode()    {}
func (*If) stmtNode()       {}
func (*ForIn) stmtNode()    {}
func (*While) stmtNode()    {}
