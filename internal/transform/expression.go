package transform

import (
	"fable/internal/ast"
	"fable/internal/errors"
	"fable/internal/py"
)

// binaryOps is the fixed token-to-operator table for arithmetic, bitwise and
// shift operators. A token outside this table (and outside comparisonOps) is
// a front-end/back-end contract violation.
var binaryOps = map[string]py.Operator{
	"+":  py.Add,
	"-":  py.Sub,
	"*":  py.Mult,
	"/":  py.Div,
	"%":  py.Mod,
	"**": py.Pow,
	"<<": py.LShift,
	">>": py.RShift,
	"&":  py.BitAnd,
	"|":  py.BitOr,
	"^":  py.BitXor,
}

// comparisonOps maps equality and ordering tokens. Strict and loose source
// equality collapse onto the same target comparison.
var comparisonOps = map[string]py.CmpOp{
	"==":  py.Eq,
	"===": py.Eq,
	"!=":  py.NotEq,
	"!==": py.NotEq,
	"<":   py.Lt,
	"<=":  py.LtE,
	">":   py.Gt,
	">=":  py.GtE,
}

var unaryOps = map[string]py.UnaryOperator{
	"-": py.USub,
	"+": py.UAdd,
	"~": py.Invert,
	"!": py.Not,
}

var logicalOps = map[string]py.BoolOperator{
	"&&": py.And,
	"||": py.Or,
}

// memberIntrinsics rewrites a small table of well-known member names on
// non-computed access. The table is open for extension; unmatched names fall
// back to plain attribute access.
var memberIntrinsics = map[string]func(obj py.Expr) py.Expr{
	"length": func(obj py.Expr) py.Expr {
		return &py.Call{Func: &py.Name{Id: "len"}, Args: []py.Expr{obj}}
	},
	"indexOf": func(obj py.Expr) py.Expr {
		return &py.Attribute{Value: obj, Attr: "index"}
	},
	"message": func(obj py.Expr) py.Expr {
		return &py.Call{Func: &py.Name{Id: "str"}, Args: []py.Expr{obj}}
	},
	"toString": func(obj py.Expr) py.Expr {
		return &py.Call{Func: &py.Name{Id: "str"}, Args: []py.Expr{obj}}
	},
}

// TranslateExpression maps one source expression to one target expression
// plus the prelude statements that must run before the expression is
// evaluated. Preludes compose in source left-to-right evaluation order.
func (t *Transformer) TranslateExpression(ctx Context, expr ast.Expr) (py.Expr, []py.Stmt) {
	switch e := expr.(type) {
	case *ast.Literal:
		return t.translateLiteral(e), nil
	case *ast.Ident:
		if ctx.isTypeParam(e.Name) {
			return &py.Name{Id: e.Name}, nil
		}
		return &py.Name{Id: cleanName(e.Name)}, nil
	case *ast.ThisExpr:
		return &py.Name{Id: selfName}, nil
	case *ast.BinaryExpr:
		return t.translateBinary(ctx, e)
	case *ast.LogicalExpr:
		op, ok := logicalOps[e.Op]
		if !ok {
			t.fatalf(e.Pos, errors.CodeUnknownOperator, "unknown logical operator %q", e.Op)
		}
		left, stmts := t.TranslateExpression(ctx, e.Left)
		right, rightStmts := t.TranslateExpression(ctx, e.Right)
		return &py.BoolOp{Op: op, Values: []py.Expr{left, right}}, append(stmts, rightStmts...)
	case *ast.UnaryExpr:
		op, ok := unaryOps[e.Op]
		if !ok {
			t.fatalf(e.Pos, errors.CodeUnknownOperator, "unknown unary operator %q", e.Op)
		}
		operand, stmts := t.TranslateExpression(ctx, e.Operand)
		return &py.UnaryOp{Op: op, Operand: operand}, stmts
	case *ast.AssignExpr:
		stmts, reread := t.translateAssign(ctx, e)
		return reread, stmts
	case *ast.CallExpr:
		return t.translateCall(ctx, e.Callee, e.Args)
	case *ast.NewExpr:
		// The target has no syntactic new; construction is a plain call.
		return t.translateCall(ctx, e.Callee, e.Args)
	case *ast.MemberExpr:
		return t.translateMember(ctx, e)
	case *ast.ArrayExpr:
		elts := make([]py.Expr, 0, len(e.Elements))
		var stmts []py.Stmt
		for _, el := range e.Elements {
			value, elStmts := t.TranslateExpression(ctx, el)
			stmts = append(stmts, elStmts...)
			elts = append(elts, value)
		}
		return &py.Tuple{Elts: elts}, stmts
	case *ast.ObjectExpr:
		return t.translateObject(ctx, e)
	case *ast.ArrowExpr:
		return t.translateClosure(ctx, e.Params, e.Body, false)
	case *ast.FunctionExpr:
		return t.translateClosure(ctx, e.Params, e.Body, true)
	case *ast.ConditionalExpr:
		test, stmts := t.TranslateExpression(ctx, e.Test)
		cons, consStmts := t.TranslateExpression(ctx, e.Consequent)
		alt, altStmts := t.TranslateExpression(ctx, e.Alternate)
		stmts = append(stmts, consStmts...)
		stmts = append(stmts, altStmts...)
		return &py.IfExp{Test: test, Body: cons, Orelse: alt}, stmts
	case *ast.SequenceExpr:
		return t.translateSequence(ctx, e)
	case *ast.EmitExpr:
		if len(e.Args) == 0 {
			return &py.Name{Id: e.Value}, nil
		}
		args := make([]py.Expr, 0, len(e.Args))
		var stmts []py.Stmt
		for _, a := range e.Args {
			value, argStmts := t.TranslateExpression(ctx, a)
			stmts = append(stmts, argStmts...)
			args = append(args, value)
		}
		return &py.Call{Func: &py.Name{Id: e.Value}, Args: args}, stmts
	}
	t.fatalf(expr.NodePos(), errors.CodeUnknownNode, "unsupported expression node %T", expr)
	return nil, nil
}

func (t *Transformer) translateLiteral(lit *ast.Literal) py.Expr {
	switch lit.Kind {
	case ast.NullLit:
		return &py.Constant{Value: nil}
	case ast.BoolLit:
		return &py.Constant{Value: lit.Bool}
	case ast.NumLit:
		return &py.Constant{Value: lit.Num}
	case ast.StrLit:
		return &py.Constant{Value: lit.Str}
	}
	t.fatalf(lit.Pos, errors.CodeUnknownLiteral, "unknown literal kind %d", lit.Kind)
	return nil
}

func (t *Transformer) translateBinary(ctx Context, e *ast.BinaryExpr) (py.Expr, []py.Stmt) {
	left, stmts := t.TranslateExpression(ctx, e.Left)
	right, rightStmts := t.TranslateExpression(ctx, e.Right)
	stmts = append(stmts, rightStmts...)
	if cmp, ok := comparisonOps[e.Op]; ok {
		return &py.Compare{Left: left, Ops: []py.CmpOp{cmp}, Comparators: []py.Expr{right}}, stmts
	}
	op, ok := binaryOps[e.Op]
	if !ok {
		t.fatalf(e.Pos, errors.CodeUnknownOperator, "unknown binary operator %q", e.Op)
	}
	return &py.BinOp{Left: left, Op: op, Right: right}, stmts
}

// translateCall lowers calls and new-expressions: preludes concatenate in
// callee-then-left-to-right-argument order.
func (t *Transformer) translateCall(ctx Context, callee ast.Expr, args []ast.Expr) (py.Expr, []py.Stmt) {
	fn, stmts := t.TranslateExpression(ctx, callee)
	translated := make([]py.Expr, 0, len(args))
	for _, arg := range args {
		value, argStmts := t.TranslateExpression(ctx, arg)
		stmts = append(stmts, argStmts...)
		translated = append(translated, value)
	}
	return &py.Call{Func: fn, Args: translated}, stmts
}

func (t *Transformer) translateMember(ctx Context, e *ast.MemberExpr) (py.Expr, []py.Stmt) {
	obj, stmts := t.TranslateExpression(ctx, e.Object)
	if e.Computed {
		if lit, ok := e.Property.(*ast.Literal); ok && lit.Kind == ast.NumLit {
			return &py.Subscript{Value: obj, Index: &py.Constant{Value: lit.Num}}, stmts
		}
		// Computed non-numeric access goes through the reflective getter.
		key, keyStmts := t.TranslateExpression(ctx, e.Property)
		stmts = append(stmts, keyStmts...)
		return &py.Call{Func: &py.Name{Id: "getattr"}, Args: []py.Expr{obj, key}}, stmts
	}
	prop, ok := e.Property.(*ast.Ident)
	if !ok {
		t.fatalf(e.Pos, errors.CodeUnknownNode, "non-computed member property must be an identifier, got %T", e.Property)
	}
	if rewrite, ok := memberIntrinsics[prop.Name]; ok {
		return rewrite(obj), stmts
	}
	return &py.Attribute{Value: obj, Attr: memberName(prop.Name)}, stmts
}

func (t *Transformer) translateObject(ctx Context, e *ast.ObjectExpr) (py.Expr, []py.Stmt) {
	keys := make([]py.Expr, 0, len(e.Properties))
	values := make([]py.Expr, 0, len(e.Properties))
	var stmts []py.Stmt
	for _, prop := range e.Properties {
		keys = append(keys, t.translatePropertyKey(ctx, prop.Key))
		if prop.Method {
			// Object methods are never inline: always take the lifting path.
			value, methodStmts := t.liftClosureProperty(ctx, prop)
			stmts = append(stmts, methodStmts...)
			values = append(values, value)
			continue
		}
		value, valueStmts := t.TranslateExpression(ctx, prop.Value)
		stmts = append(stmts, valueStmts...)
		values = append(values, value)
	}
	return &py.Dict{Keys: keys, Values: values}, stmts
}

func (t *Transformer) translatePropertyKey(ctx Context, key ast.Expr) py.Expr {
	switch k := key.(type) {
	case *ast.Ident:
		return &py.Constant{Value: k.Name}
	case *ast.Literal:
		return t.translateLiteral(k)
	}
	t.fatalf(key.NodePos(), errors.CodeUnknownNode, "unsupported object literal key %T", key)
	return nil
}

func (t *Transformer) liftClosureProperty(ctx Context, prop *ast.Property) (py.Expr, []py.Stmt) {
	var params []*ast.Param
	var body []ast.Stmt
	switch fn := prop.Value.(type) {
	case *ast.ArrowExpr:
		params, body = fn.Params, fn.Body
	case *ast.FunctionExpr:
		params, body = fn.Params, fn.Body
	default:
		t.fatalf(prop.Pos, errors.CodeUnknownNode, "method-valued property must be a function, got %T", prop.Value)
	}
	return t.liftFunction(ctx, params, body)
}

// translateClosure lowers arrow and function expressions. A single-return
// body (or a single bare expression, for function expressions) becomes an
// inline closure; any multi-statement body is lifted into a synthetic named
// function. The two paths never both fire for the same input shape.
func (t *Transformer) translateClosure(ctx Context, params []*ast.Param, body []ast.Stmt, allowBareExpr bool) (py.Expr, []py.Stmt) {
	if expr, ok := inlineClosureBody(body, allowBareExpr); ok {
		value, stmts := t.TranslateExpression(ctx, expr)
		return &py.Lambda{Args: t.closureArgs(params), Body: value}, stmts
	}
	return t.liftFunction(ctx, params, body)
}

// inlineClosureBody reports the body expression when the closure body is
// syntactically a single return, or a single bare expression where allowed.
func inlineClosureBody(body []ast.Stmt, allowBareExpr bool) (ast.Expr, bool) {
	if len(body) != 1 {
		return nil, false
	}
	switch s := body[0].(type) {
	case *ast.ReturnStmt:
		if s.Argument != nil {
			return s.Argument, true
		}
	case *ast.ExprStmt:
		if allowBareExpr {
			return s.Expr, true
		}
	}
	return nil, false
}

// liftFunction rewrites a statement-bodied closure into a synthetic named
// function hoisted into the prelude, yielding a reference to the name.
func (t *Transformer) liftFunction(ctx Context, params []*ast.Param, body []ast.Stmt) (py.Expr, []py.Stmt) {
	name := t.names.Next("expr")
	fn := &py.FunctionDef{
		Name: name,
		Args: t.closureArgs(params),
		Body: t.translateBlock(ctx, Return, body),
	}
	return &py.Name{Id: name}, []py.Stmt{fn}
}

// closureArgs reshapes closure parameters. A zero-parameter closure receives
// one synthetic placeholder bound to a null-equivalent default so it can
// still be invoked uniformly.
func (t *Transformer) closureArgs(params []*ast.Param) *py.Arguments {
	if len(params) == 0 {
		return &py.Arguments{Args: []*py.Arg{{Name: unitArgName, Default: &py.Constant{Value: nil}}}}
	}
	return t.functionArgs(params)
}

// translateSequence lowers the comma operator through the lifting path: each
// element becomes its own statement in a synthetic function body, the last
// under Return strategy so its value is the expression's value, and the
// function is invoked with zero arguments.
func (t *Transformer) translateSequence(ctx Context, e *ast.SequenceExpr) (py.Expr, []py.Stmt) {
	name := t.names.Next("expr")
	var body []py.Stmt
	for i, el := range e.Exprs {
		value, stmts := t.TranslateExpression(ctx, el)
		body = append(body, stmts...)
		if i == len(e.Exprs)-1 {
			body = append(body, &py.Return{Value: value})
		} else {
			body = append(body, &py.ExprStmt{Value: value})
		}
	}
	fn := &py.FunctionDef{
		Name: name,
		Args: t.closureArgs(nil),
		Body: normalizeBody(Return, body),
	}
	return &py.Call{Func: &py.Name{Id: name}}, []py.Stmt{fn}
}
