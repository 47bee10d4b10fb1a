// Package ast defines the source intermediate representation consumed by the
// translator: a desugared JavaScript-family tree of expressions, statements
// and module-level declarations. The tree is produced upstream and is never
// mutated here.
package ast

// Position tracks location information for diagnostics
type Position struct {
	File   string
	Line   int
	Column int
}

// Node is implemented by every source IR node.
type Node interface {
	NodePos() Position
	NodeType() NodeType
}

// Expr is the closed union of source expressions.
type Expr interface {
	Node
	isExpr()
}

// Stmt is the closed union of source statements.
type Stmt interface {
	Node
	isStmt()
}

// Decl is the closed union of module-level declarations.
type Decl interface {
	Node
	isDecl()
}

// NodeType discriminates source IR nodes without reflection.
type NodeType int

const (
	LITERAL NodeType = iota
	IDENT
	THIS_EXPR
	BINARY_EXPR
	LOGICAL_EXPR
	UNARY_EXPR
	UPDATE_EXPR
	ASSIGN_EXPR
	CALL_EXPR
	NEW_EXPR
	MEMBER_EXPR
	ARRAY_EXPR
	OBJECT_EXPR
	PROPERTY
	ARROW_EXPR
	FUNCTION_EXPR
	CONDITIONAL_EXPR
	SEQUENCE_EXPR
	EMIT_EXPR
	BLOCK_STMT
	RETURN_STMT
	VAR_DECL_STMT
	EXPR_STMT
	IF_STMT
	WHILE_STMT
	FOR_STMT
	TRY_STMT
	SWITCH_STMT
	BREAK_STMT
	CONTINUE_STMT
	LABELED_STMT
	FUNCTION_DECL
	CLASS_DECL
	IMPORT_DECL
	EXPORT_DECL
)

// LiteralKind discriminates literal payloads.
type LiteralKind int

const (
	NullLit LiteralKind = iota
	BoolLit
	NumLit
	StrLit
)

// MemberKind discriminates class members. Only methods are translatable;
// every other kind is a front-end/back-end contract violation.
type MemberKind int

const (
	MethodMember MemberKind = iota
	FieldMember
	GetterMember
	SetterMember
)

// ImportKind discriminates import specifiers.
type ImportKind int

const (
	DefaultImport ImportKind = iota
	NamedImport
	NamespaceImport
)
