package ast

// ImportDecl represents a module import with one or more specifiers
// Example: "import { map, filter } from \"./fable-library/List.js\""
type ImportDecl struct {
	Pos        Position
	Specifiers []*ImportSpecifier
	Source     string
}

// ImportSpecifier is one imported binding. Imported is empty for default and
// namespace specifiers, which bind the module itself.
type ImportSpecifier struct {
	Pos      Position
	Kind     ImportKind
	Imported string
	Local    string
}

// ExportDecl wraps a declaration exported from the module. The translated
// target has no export syntax, so only the inner declaration survives.
// Example: "export function add(a, b) { ... }"
type ExportDecl struct {
	Pos  Position
	Decl Decl
}

func (*ImportDecl) isDecl()   {}
func (*ExportDecl) isDecl()   {}
func (*FunctionDecl) isDecl() {}
func (*ClassDecl) isDecl()    {}
func (*VarDeclStmt) isDecl()  {}
func (*ExprStmt) isDecl()     {}
