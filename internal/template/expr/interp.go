package expr

import (
	"fmt"
	"math"
	"strings"
)

// RuntimeError is a failure raised while executing a program: an
// undefined variable, a bad operand type, an out-of-range index.
type RuntimeError struct {
	Line int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("expr: runtime error on line %d: %s", e.Line, e.Msg)
}

// Env is a flat variable environment for one program execution. It is
// seeded from a caller mapping and never shared between executions.
type Env struct {
	vars map[string]any
}

// NewEnv returns an environment holding a copy of data. A nil mapping
// yields an empty environment.
func NewEnv(data map[string]any) *Env {
	vars := make(map[string]any, len(data)+1)
	for k, v := range data {
		vars[k] = v
	}
	return &Env{vars: vars}
}

// Get looks up a variable by name.
func (e *Env) Get(name string) (any, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds a variable, creating it if absent.
func (e *Env) Set(name string, v any) {
	e.vars[name] = v
}

// Exec parses and runs a program against env. Parse errors and runtime
// errors are returned as-is; the environment may be partially mutated
// on failure.
func Exec(src string, env *Env) error {
	stmts, err := Parse(src)
	if err != nil {
		return err
	}
	in := &interp{env: env}
	for _, s := range stmts {
		if err := in.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// Eval parses and evaluates a single expression against env.
func Eval(src string, env *Env) (any, error) {
	e, err := ParseExpression(src)
	if err != nil {
		return nil, err
	}
	in := &interp{env: env}
	return in.eval(e)
}

type interp struct {
	env *Env
}

func (in *interp) errorf(line int, format string, args ...any) error {
	return &RuntimeError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

func (in *interp) execStmt(s Stmt) error {
	switch st := s.(type) {
	case *ExprStmt:
		_, err := in.eval(st.X)
		return err
	case *Assign:
		v, err := in.eval(st.Value)
		if err != nil {
			return err
		}
		in.env.Set(st.Name, v)
		return nil
	case *Block:
		for _, inner := range st.Stmts {
			if err := in.execStmt(inner); err != nil {
				return err
			}
		}
		return nil
	case *If:
		cond, err := in.eval(st.Cond)
		if err != nil {
			return err
		}
		if Truthy(cond) {
			return in.execStmt(st.Then)
		}
		if st.Else != nil {
			return in.execStmt(st.Else)
		}
		return nil
	case *ForIn:
		seq, err := in.eval(st.Seq)
		if err != nil {
			return err
		}
		items, ok := sequence(seq)
		if !ok {
			return in.errorf(st.Seq.Pos(), "cannot iterate %s", typeName(seq))
		}
		for _, item := range items {
			in.env.Set(st.Var, item)
			if err := in.execStmt(st.Body); err != nil {
				return err
			}
		}
		return nil
	case *While:
		for {
			cond, err := in.eval(st.Cond)
			if err != nil {
				return err
			}
			if !Truthy(cond) {
				return nil
			}
			if err := in.execStmt(st.Body); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("expr: unknown statement %T", s)
}

func (in *interp) eval(e Expr) (any, error) {
	switch ex := e.(type) {
	case *Literal:
		return ex.Value, nil
	case *Ident:
		v, ok := in.env.Get(ex.Name)
		if !ok {
			return nil, in.errorf(ex.Line, "undefined variable %q", ex.Name)
		}
		return v, nil
	case *Unary:
		return in.evalUnary(ex)
	case *Binary:
		return in.evalBinary(ex)
	case *Member:
		x, err := in.eval(ex.X)
		if err != nil {
			return nil, err
		}
		m, ok := x.(map[string]any)
		if !ok {
			return nil, in.errorf(ex.Line, "cannot access property %q of %s", ex.Name, typeName(x))
		}
		// Missing keys read as null, unlike undefined variables.
		return m[ex.Name], nil
	case *Index:
		return in.evalIndex(ex)
	case *Call:
		return in.evalCall(ex)
	}
	return nil, fmt.Errorf("expr: unknown expression %T", e)
}

func (in *interp) evalUnary(ex *Unary) (any, error) {
	x, err := in.eval(ex.X)
	if err != nil {
		return nil, err
	}
	switch ex.Op {
	case NOT:
		return !Truthy(x), nil
	case MINUS:
		f, ok := numeric(x)
		if !ok {
			return nil, in.errorf(ex.Line, "cannot negate %s", typeName(x))
		}
		return -f, nil
	}
	return nil, in.errorf(ex.Line, "unknown unary operator")
}

func (in *interp) evalBinary(ex *Binary) (any, error) {
	// Short-circuit operators evaluate the right side lazily and
	// return a boolean, not the operand value.
	if ex.Op == AND || ex.Op == OR {
		x, err := in.eval(ex.X)
		if err != nil {
			return nil, err
		}
		if ex.Op == AND && !Truthy(x) {
			return false, nil
		}
		if ex.Op == OR && Truthy(x) {
			return true, nil
		}
		y, err := in.eval(ex.Y)
		if err != nil {
			return nil, err
		}
		return Truthy(y), nil
	}

	x, err := in.eval(ex.X)
	if err != nil {
		return nil, err
	}
	y, err := in.eval(ex.Y)
	if err != nil {
		return nil, err
	}

	switch ex.Op {
	case EQ:
		return equals(x, y), nil
	case NEQ:
		return !equals(x, y), nil
	case PLUS:
		// + concatenates when either operand is a string.
		if xs, ok := x.(string); ok {
			return xs + ToString(y), nil
		}
		if ys, ok := y.(string); ok {
			return ToString(x) + ys, nil
		}
		fx, fy, err := in.numericPair(ex, x, y)
		if err != nil {
			return nil, err
		}
		return fx + fy, nil
	case MINUS, STAR, SLASH, PERCENT:
		fx, fy, err := in.numericPair(ex, x, y)
		if err != nil {
			return nil, err
		}
		switch ex.Op {
		case MINUS:
			return fx - fy, nil
		case STAR:
			return fx * fy, nil
		case SLASH:
			if fy == 0 {
				return nil, in.errorf(ex.Line, "division by zero")
			}
			return fx / fy, nil
		default:
			if fy == 0 {
				return nil, in.errorf(ex.Line, "division by zero")
			}
			return math.Mod(fx, fy), nil
		}
	case LT, LTE, GT, GTE:
		return in.compare(ex, x, y)
	}
	return nil, in.errorf(ex.Line, "unknown binary operator")
}

func (in *interp) numericPair(ex *Binary, x, y any) (float64, float64, error) {
	fx, okx := numeric(x)
	fy, oky := numeric(y)
	if !okx || !oky {
		return 0, 0, in.errorf(ex.Line, "operator %s requires numbers, found %s and %s",
			ex.Op, typeName(x), typeName(y))
	}
	return fx, fy, nil
}

func (in *interp) compare(ex *Binary, x, y any) (any, error) {
	var cmp int
	if xs, ok := x.(string); ok {
		ys, ok := y.(string)
		if !ok {
			return nil, in.errorf(ex.Line, "cannot compare string with %s", typeName(y))
		}
		cmp = strings.Compare(xs, ys)
	} else {
		fx, fy, err := in.numericPair(ex, x, y)
		if err != nil {
			return nil, err
		}
		switch {
		case fx < fy:
			cmp = -1
		case fx > fy:
			cmp = 1
		}
	}
	switch ex.Op {
	case LT:
		return cmp < 0, nil
	case LTE:
		return cmp <= 0, nil
	case GT:
		return cmp > 0, nil
	default:
		return cmp >= 0, nil
	}
}

func (in *interp) evalIndex(ex *Index) (any, error) {
	x, err := in.eval(ex.X)
	if err != nil {
		return nil, err
	}
	key, err := in.eval(ex.Key)
	if err != nil {
		return nil, err
	}
	switch container := x.(type) {
	case map[string]any:
		ks, ok := key.(string)
		if !ok {
			return nil, in.errorf(ex.Line, "map index must be a string, found %s", typeName(key))
		}
		return container[ks], nil
	case []any, []string:
		items, _ := sequence(container)
		f, ok := numeric(key)
		if !ok {
			return nil, in.errorf(ex.Line, "list index must be a number, found %s", typeName(key))
		}
		i := int(f)
		if i < 0 || i >= len(items) {
			return nil, in.errorf(ex.Line, "index %d out of range (length %d)", i, len(items))
		}
		return items[i], nil
	}
	return nil, in.errorf(ex.Line, "cannot index %s", typeName(x))
}

func (in *interp) evalCall(ex *Call) (any, error) {
	args := make([]any, len(ex.Args))
	for i, a := range ex.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	builtin, ok := builtins[ex.Name]
	if !ok {
		return nil, in.errorf(ex.Line, "unknown function %q", ex.Name)
	}
	v, err := builtin(args)
	if err != nil {
		return nil, in.errorf(ex.Line, "%s: %s", ex.Name, err)
	}
	return v, nil
}

var builtins = map[string]func(args []any) (any, error){
	"len": func(args []any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, found %d", len(args))
		}
		switch x := args[0].(type) {
		case string:
			return float64(len(x)), nil
		case []any:
			return float64(len(x)), nil
		case []string:
			return float64(len(x)), nil
		case map[string]any:
			return float64(len(x)), nil
		}
		return nil, fmt.Errorf("cannot take length of %s", typeName(args[0]))
	},
	"upper": stringBuiltin(strings.ToUpper),
	"lower": stringBuiltin(strings.ToLower),
	"trim":  stringBuiltin(strings.TrimSpace),
}

func stringBuiltin(fn func(string) string) func(args []any) (any, error) {
	return func(args []any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, found %d", len(args))
		}
		return fn(ToString(args[0])), nil
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []any, []string:
		return "list"
	case map[string]any:
		return "map"
	}
	if _, ok := numeric(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
