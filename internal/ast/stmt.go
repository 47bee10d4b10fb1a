package ast

// BlockStmt represents a braced statement list
// Example: "{ let x = 1; return x; }"
type BlockStmt struct {
	Pos  Position
	Body []Stmt
}

// ReturnStmt represents a return, with or without a value
// Example: "return x + 1;"
type ReturnStmt struct {
	Pos      Position
	Argument Expr // nil for a bare return
}

// VarDeclStmt represents a variable declaration with one or more declarators
// Example: "let x = 1, y;"
type VarDeclStmt struct {
	Pos   Position
	Decls []*VarDeclarator
}

// VarDeclarator is one name/initializer pair of a declaration. Declarators
// without an initializer emit nothing; the target declares on first
// assignment.
type VarDeclarator struct {
	Pos  Position
	Name string
	Init Expr // nil when uninitialized
}

// ExprStmt represents an expression evaluated for its side effects
// Example: "f();", "x = 1;"
type ExprStmt struct {
	Pos  Position
	Expr Expr
}

// IfStmt represents a conditional statement
// Example: "if (c) { ... } else { ... }"
type IfStmt struct {
	Pos        Position
	Test       Expr
	Consequent Stmt
	Alternate  Stmt // nil when absent
}

// WhileStmt represents a pre-test loop
// Example: "while (c) { ... }"
type WhileStmt struct {
	Pos  Position
	Test Expr
	Body Stmt
}

// ForStmt represents a C-style for loop. Only the canonical counting shape
// (single declarator, "i <= bound" test, unit increment) is translatable.
// Example: "for (let i = 0; i <= n; i++) { ... }"
type ForStmt struct {
	Pos    Position
	Init   *VarDeclStmt
	Test   Expr
	Update Expr
	Body   Stmt
}

// TryStmt represents try/catch/finally
// Example: "try { ... } catch (e) { ... } finally { ... }"
type TryStmt struct {
	Pos       Position
	Block     *BlockStmt
	Handler   *CatchClause // nil when absent
	Finalizer *BlockStmt   // nil when absent
}

// CatchClause binds exactly one parameter. The discriminated exception type
// from the source is erased during translation.
type CatchClause struct {
	Pos   Position
	Param string
	Body  *BlockStmt
}

// SwitchStmt represents a switch over a discriminant
// Example: "switch (x) { case 1: f(); break; default: g(); }"
type SwitchStmt struct {
	Pos          Position
	Discriminant Expr
	Cases        []*SwitchCase
}

// SwitchCase is one case clause. A nil Test marks the default case; an empty
// Consequent marks fallthrough into the next case.
type SwitchCase struct {
	Pos        Position
	Test       Expr // nil for default
	Consequent []Stmt
}

// BreakStmt represents break
type BreakStmt struct {
	Pos Position
}

// ContinueStmt represents continue
type ContinueStmt struct {
	Pos Position
}

// LabeledStmt represents a labeled statement. Labels are discarded during
// translation; only plain break/continue semantics survive.
type LabeledStmt struct {
	Pos   Position
	Label string
	Body  Stmt
}

// FunctionDecl represents a named function declaration
// Example: "function add(a, b) { return a + b; }"
type FunctionDecl struct {
	Pos    Position
	Name   string
	Params []*Param
	Body   *BlockStmt
}

// ClassDecl represents a class declaration
// Example: "class Point extends Base { constructor(x) { ... } norm() { ... } }"
type ClassDecl struct {
	Pos        Position
	Name       string
	Superclass Expr // nil when absent
	Members    []*ClassMember
}

// ClassMember is one class body member. Only MethodMember is translatable.
type ClassMember struct {
	Pos    Position
	Kind   MemberKind
	Name   string
	Params []*Param
	Body   *BlockStmt
}

func (*BlockStmt) isStmt()    {}
func (*ReturnStmt) isStmt()   {}
func (*VarDeclStmt) isStmt()  {}
func (*ExprStmt) isStmt()     {}
func (*IfStmt) isStmt()       {}
func (*WhileStmt) isStmt()    {}
func (*ForStmt) isStmt()      {}
func (*TryStmt) isStmt()      {}
func (*SwitchStmt) isStmt()   {}
func (*BreakStmt) isStmt()    {}
func (*ContinueStmt) isStmt() {}
func (*LabeledStmt) isStmt()  {}
func (*FunctionDecl) isStmt() {}
func (*ClassDecl) isStmt()    {}
