// Package transform converts the source IR (a desugared JavaScript-family
// tree) into the target IR (a Python-shaped tree where control flow is
// statement-only). Constructs that cannot be expressed locally in the target
// grammar are lifted into synthetic named functions hoisted into the prelude
// of the expression that required them.
package transform

import (
	"fmt"

	"fable/internal/ast"
	"fable/internal/errors"
	"fable/internal/py"
)

// Transformer translates exactly one source file. It owns the file's two
// pieces of mutable state: the import table and the synthetic-name counter.
// Parallel translation needs one Transformer per file; nothing is shared.
type Transformer struct {
	reporter *errors.Reporter
	imports  *ImportTable
	names    *NameGenerator
}

// NewTransformer creates a translator for one source file.
func NewTransformer(reporter *errors.Reporter) *Transformer {
	return &Transformer{
		reporter: reporter,
		imports:  NewImportTable(),
		names:    &NameGenerator{},
	}
}

// fatalError carries the fail-fast internal error up to TranslateProgram.
// An unrecognized source shape signals a mismatch between the upstream IR
// producer and this translator's coverage, not a user-facing error; there is
// no partial-output mode.
type fatalError struct {
	err *errors.CompilerError
}

func (t *Transformer) fatalf(pos ast.Position, code, format string, args ...any) {
	panic(fatalError{err: t.reporter.NewError(code, fmt.Sprintf(format, args...), pos)})
}

func (t *Transformer) warnOnce(pos ast.Position, code, format string, args ...any) {
	t.reporter.ReportWarningOnce(code, fmt.Sprintf(format, args...), pos)
}

// TranslateProgram walks the top-level module declarations in order and
// assembles the translated module, with every accumulated import hoisted
// ahead of the body regardless of where the originating import declarations
// appeared. It is the only entry point that recovers the fail-fast stop into
// an error value.
func (t *Transformer) TranslateProgram(decls []ast.Decl) (module *py.Module, err error) {
	defer func() {
		if r := recover(); r != nil {
			fe, ok := r.(fatalError)
			if !ok {
				panic(r)
			}
			module = nil
			err = fe.err
		}
	}()

	ctx := NewContext()
	var body []py.Stmt
	for _, decl := range decls {
		body = append(body, t.translateDecl(ctx, decl)...)
	}
	return &py.Module{Body: append(t.GetAllImports(), body...)}, nil
}

func (t *Transformer) translateDecl(ctx Context, decl ast.Decl) []py.Stmt {
	switch d := decl.(type) {
	case *ast.ImportDecl:
		return t.TranslateImports(ctx, d.Specifiers, d.Source)
	case *ast.ExportDecl:
		// The target has no export syntax; only the declaration survives.
		return t.translateDecl(ctx, d.Decl)
	case *ast.FunctionDecl, *ast.ClassDecl, *ast.VarDeclStmt, *ast.ExprStmt:
		return t.TranslateStatement(ctx, NoReturn, decl.(ast.Stmt))
	}
	t.fatalf(decl.NodePos(), errors.CodeUnknownNode, "unknown module declaration %T", decl)
	return nil
}
