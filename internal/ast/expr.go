package ast

// Literal represents a literal value
// Example: null, true, 42, "hello"
type Literal struct {
	Pos  Position
	Kind LiteralKind
	Str  string  // StrLit payload
	Num  float64 // NumLit payload
	Bool bool    // BoolLit payload
}

// Ident represents an identifier reference
// Example: "count", "balanceOf"
type Ident struct {
	Pos  Position
	Name string
}

// ThisExpr represents the instance self-reference
// Example: "this.value"
type ThisExpr struct {
	Pos Position
}

// BinaryExpr represents arithmetic, bitwise, shift and comparison operators
// Example: "a + b", "x === y", "n << 2"
type BinaryExpr struct {
	Pos   Position
	Op    string
	Left  Expr
	Right Expr
}

// LogicalExpr represents short-circuiting boolean operators
// Example: "a && b", "x || y"
type LogicalExpr struct {
	Pos   Position
	Op    string
	Left  Expr
	Right Expr
}

// UnaryExpr represents prefix operators
// Example: "-x", "!done", "~mask"
type UnaryExpr struct {
	Pos     Position
	Op      string
	Operand Expr
}

// UpdateExpr represents unit increment/decrement. It is only recognized as
// the update slot of a canonical for-loop.
// Example: "i++"
type UpdateExpr struct {
	Pos     Position
	Op      string
	Operand Expr
	Prefix  bool
}

// AssignExpr represents an assignment. The source language treats assignment
// as an expression; the translator routes it through a dedicated
// statement-shaped lowering.
// Example: "x = 1", "obj.field = v", "obj[\"key\"] = v"
type AssignExpr struct {
	Pos    Position
	Target Expr
	Value  Expr
}

// CallExpr represents a function or method call
// Example: "f(a, b)", "obj.run()"
type CallExpr struct {
	Pos    Position
	Callee Expr
	Args   []Expr
}

// NewExpr represents constructor invocation. The target language has no
// syntactic new, so it lowers to a plain call.
// Example: "new Point(1, 2)"
type NewExpr struct {
	Pos    Position
	Callee Expr
	Args   []Expr
}

// MemberExpr represents property access, computed or not
// Example: "obj.name", "arr[0]", "obj[\"key\"]"
type MemberExpr struct {
	Pos      Position
	Object   Expr
	Property Expr
	Computed bool
}

// ArrayExpr represents an array literal
// Example: "[1, 2, 3]"
type ArrayExpr struct {
	Pos      Position
	Elements []Expr
}

// ObjectExpr represents an object literal
// Example: "{ name: \"x\", run() { ... } }"
type ObjectExpr struct {
	Pos        Position
	Properties []*Property
}

// Property is one key/value pair of an object literal. Method marks a
// method-valued property, which always lowers through the lifting path.
type Property struct {
	Pos    Position
	Key    Expr
	Value  Expr
	Method bool
}

// Param is one formal parameter. Rest marks a variadic-capture parameter.
type Param struct {
	Pos  Position
	Name string
	Rest bool
}

// ArrowExpr represents an arrow function expression. The body is always a
// statement list; a single-return body takes the inline closure path.
// Example: "(x) => x + 1"
type ArrowExpr struct {
	Pos    Position
	Params []*Param
	Body   []Stmt
}

// FunctionExpr represents an anonymous function expression
// Example: "function (x) { return x + 1; }"
type FunctionExpr struct {
	Pos    Position
	Params []*Param
	Body   []Stmt
}

// ConditionalExpr represents the ternary operator
// Example: "ok ? a : b"
type ConditionalExpr struct {
	Pos        Position
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

// SequenceExpr represents the comma operator
// Example: "(a(), b(), c)"
type SequenceExpr struct {
	Pos   Position
	Exprs []Expr
}

// EmitExpr is the intrinsic escape hatch: a raw target snippet produced
// upstream, optionally applied to arguments.
type EmitExpr struct {
	Pos   Position
	Value string
	Args  []Expr
}

func (*Literal) isExpr()         {}
func (*Ident) isExpr()           {}
func (*ThisExpr) isExpr()        {}
func (*BinaryExpr) isExpr()      {}
func (*LogicalExpr) isExpr()     {}
func (*UnaryExpr) isExpr()       {}
func (*UpdateExpr) isExpr()      {}
func (*AssignExpr) isExpr()      {}
func (*CallExpr) isExpr()        {}
func (*NewExpr) isExpr()         {}
func (*MemberExpr) isExpr()      {}
func (*ArrayExpr) isExpr()       {}
func (*ObjectExpr) isExpr()      {}
func (*ArrowExpr) isExpr()       {}
func (*FunctionExpr) isExpr()    {}
func (*ConditionalExpr) isExpr() {}
func (*SequenceExpr) isExpr()    {}
func (*EmitExpr) isExpr()        {}
