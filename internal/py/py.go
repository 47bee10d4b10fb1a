// Package py defines the target intermediate representation produced by the
// translator: a Python-shaped tree in which control flow is statement-only.
// No statement-shaped expression exists in this union; closing that gap is
// the translator's job, not this package's.
package py

// Module is one translated source file: hoisted imports followed by the
// translated body.
type Module struct {
	Body []Stmt
}

// Stmt is the closed union of target statements.
type Stmt interface {
	isStmt()
}

// Expr is the closed union of target expressions.
type Expr interface {
	isExpr()
}

// Assign binds a value to a single target (name, attribute or tuple).
type Assign struct {
	Target Expr
	Value  Expr
}

// ExprStmt evaluates an expression for its side effects.
type ExprStmt struct {
	Value Expr
}

// Return exits the enclosing function; a nil Value is a bare return.
type Return struct {
	Value Expr
}

// Pass is the explicit no-op that keeps an empty block syntactically valid.
type Pass struct{}

// If is a conditional statement with an optional else branch.
type If struct {
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

// While is a pre-test loop.
type While struct {
	Test Expr
	Body []Stmt
}

// For iterates a target over an iterable.
type For struct {
	Target Expr
	Iter   Expr
	Body   []Stmt
}

// Try runs a body with exception handlers and an optional finalizer.
type Try struct {
	Body      []Stmt
	Handlers  []*ExceptHandler
	Finalbody []Stmt
}

// ExceptHandler binds one caught exception.
type ExceptHandler struct {
	Type Expr
	Name string
	Body []Stmt
}

// FunctionDef is a named function definition.
type FunctionDef struct {
	Name string
	Args *Arguments
	Body []Stmt
}

// ClassDef is a class definition with at most one base.
type ClassDef struct {
	Name  string
	Bases []Expr
	Body  []Stmt
}

// Import is a plain module import.
type Import struct {
	Names []*Alias
}

// ImportFrom imports members from a module.
type ImportFrom struct {
	Module string
	Names  []*Alias
}

// Alias is an imported name with an optional local rebinding.
type Alias struct {
	Name   string
	AsName string
}

// Break exits the innermost loop.
type Break struct{}

// Continue restarts the innermost loop.
type Continue struct{}

// Arguments is a parameter list: positional parameters plus an optional
// variadic-capture slot.
type Arguments struct {
	Args   []*Arg
	Vararg *Arg
}

// Arg is one formal parameter with an optional default.
type Arg struct {
	Name    string
	Default Expr
}

// Constant is a literal value: nil, bool, float64 or string.
type Constant struct {
	Value any
}

// Name references a binding by identifier.
type Name struct {
	Id string
}

// Attribute is non-computed member access.
type Attribute struct {
	Value Expr
	Attr  string
}

// Subscript is index access.
type Subscript struct {
	Value Expr
	Index Expr
}

// Call applies a callable to positional arguments.
type Call struct {
	Func Expr
	Args []Expr
}

// BinOp applies a binary operator.
type BinOp struct {
	Left  Expr
	Op    Operator
	Right Expr
}

// UnaryOp applies a unary operator.
type UnaryOp struct {
	Op      UnaryOperator
	Operand Expr
}

// BoolOp chains short-circuiting boolean operands.
type BoolOp struct {
	Op     BoolOperator
	Values []Expr
}

// Compare is a comparison chain: Left followed by pairwise op/comparator.
type Compare struct {
	Left        Expr
	Ops         []CmpOp
	Comparators []Expr
}

// Tuple is a fixed-length sequence literal.
type Tuple struct {
	Elts []Expr
}

// Dict is a mapping literal with parallel key/value lists.
type Dict struct {
	Keys   []Expr
	Values []Expr
}

// Lambda is a single-expression closure. Its body cannot contain statements;
// the translator lifts statement-bodied closures into named functions
// instead.
type Lambda struct {
	Args *Arguments
	Body Expr
}

// IfExp is the conditional expression "body if test else orelse".
type IfExp struct {
	Test   Expr
	Body   Expr
	Orelse Expr
}

func (*Assign) isStmt()      {}
func (*ExprStmt) isStmt()    {}
func (*Return) isStmt()      {}
func (*Pass) isStmt()        {}
func (*If) isStmt()          {}
func (*While) isStmt()       {}
func (*For) isStmt()         {}
func (*Try) isStmt()         {}
func (*FunctionDef) isStmt() {}
func (*ClassDef) isStmt()    {}
func (*Import) isStmt()      {}
func (*ImportFrom) isStmt()  {}
func (*Break) isStmt()       {}
func (*Continue) isStmt()    {}

func (*Constant) isExpr()  {}
func (*Name) isExpr()      {}
func (*Attribute) isExpr() {}
func (*Subscript) isExpr() {}
func (*Call) isExpr()      {}
func (*BinOp) isExpr()     {}
func (*UnaryOp) isExpr()   {}
func (*BoolOp) isExpr()    {}
func (*Compare) isExpr()   {}
func (*Tuple) isExpr()     {}
func (*Dict) isExpr()      {}
func (*Lambda) isExpr()    {}
func (*IfExp) isExpr()     {}
