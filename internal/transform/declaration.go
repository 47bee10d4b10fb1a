package transform

import (
	"fable/internal/ast"
	"fable/internal/errors"
	"fable/internal/py"
)

// initializerName is the target's canonical initializer; source constructors
// are renamed onto it.
const initializerName = "__init__"

// TranslateFunction lowers a named function: parameters map to positional
// target parameters after name cleaning, and the body runs under Return
// strategy.
func (t *Transformer) TranslateFunction(ctx Context, name string, params []*ast.Param, body *ast.BlockStmt) *py.FunctionDef {
	var stmts []ast.Stmt
	if body != nil {
		stmts = body.Body
	}
	return &py.FunctionDef{
		Name: cleanName(name),
		Args: t.functionArgs(params),
		Body: t.translateBlock(ctx, Return, stmts),
	}
}

// functionArgs reshapes a parameter list. A trailing rest parameter maps to
// the target's single variadic-capture slot; a rest parameter anywhere else
// cannot be represented and is demoted to a plain positional parameter.
func (t *Transformer) functionArgs(params []*ast.Param) *py.Arguments {
	args := &py.Arguments{}
	for i, p := range params {
		name := cleanName(p.Name)
		if p.Rest && i == len(params)-1 && args.Vararg == nil {
			args.Vararg = &py.Arg{Name: name}
			continue
		}
		if p.Rest {
			t.warnOnce(p.Pos, errors.CodeDroppedRestParam,
				"only a trailing rest parameter maps to the variadic slot; %q is treated as positional", p.Name)
		}
		args.Args = append(args.Args, &py.Arg{Name: name})
	}
	return args
}

// TranslateClass lowers a class declaration. The superclass expression, if
// present, becomes the single base-class reference; only method members are
// supported. Every method receives an injected leading instance parameter,
// and a constructor is renamed to the canonical initializer and translated
// under NoReturn strategy, since initializers must not produce a value.
func (t *Transformer) TranslateClass(ctx Context, c *ast.ClassDecl) []py.Stmt {
	var out []py.Stmt
	var bases []py.Expr
	if c.Superclass != nil {
		base, stmts := t.TranslateExpression(ctx, c.Superclass)
		out = append(out, stmts...)
		bases = append(bases, base)
	}

	var body []py.Stmt
	for _, m := range c.Members {
		if m.Kind != ast.MethodMember {
			t.fatalf(m.Pos, errors.CodeBadClassMember, "unsupported class member kind %d for %q", m.Kind, m.Name)
		}
		body = append(body, t.translateMethod(ctx, m))
	}
	if len(body) == 0 {
		body = []py.Stmt{&py.Pass{}}
	}
	return append(out, &py.ClassDef{Name: cleanName(c.Name), Bases: bases, Body: body})
}

func (t *Transformer) translateMethod(ctx Context, m *ast.ClassMember) py.Stmt {
	name := memberName(m.Name)
	strategy := Return
	if m.Name == "constructor" {
		name = initializerName
		strategy = NoReturn
	}

	args := t.functionArgs(m.Params)
	args.Args = append([]*py.Arg{{Name: selfName}}, args.Args...)

	var stmts []ast.Stmt
	if m.Body != nil {
		stmts = m.Body.Body
	}
	return &py.FunctionDef{
		Name: name,
		Args: args,
		Body: t.translateBlock(ctx, strategy, stmts),
	}
}
