package transform

import (
	"fable/internal/ast"
	"fable/internal/errors"
	"fable/internal/py"
)

// TranslateStatement maps one source statement to zero or more target
// statements under the given return strategy.
func (t *Transformer) TranslateStatement(ctx Context, ret ReturnStrategy, stmt ast.Stmt) []py.Stmt {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		return t.translateBlock(ctx, ret, s.Body)
	case *ast.ReturnStmt:
		return t.translateReturn(ctx, ret, s)
	case *ast.VarDeclStmt:
		return t.translateVarDecl(ctx, s)
	case *ast.ExprStmt:
		// Assignment has statement-only side-effect semantics: route it
		// through the dedicated lowering instead of the value-producing path.
		if assign, ok := s.Expr.(*ast.AssignExpr); ok {
			stmts, _ := t.translateAssign(ctx, assign)
			return stmts
		}
		value, stmts := t.TranslateExpression(ctx, s.Expr)
		return append(stmts, &py.ExprStmt{Value: value})
	case *ast.IfStmt:
		return t.translateIf(ctx, s)
	case *ast.WhileStmt:
		return t.translateWhile(ctx, s)
	case *ast.ForStmt:
		return t.translateFor(ctx, s)
	case *ast.TryStmt:
		return t.translateTry(ctx, s)
	case *ast.SwitchStmt:
		return t.translateSwitch(ctx, s)
	case *ast.BreakStmt:
		return []py.Stmt{&py.Break{}}
	case *ast.ContinueStmt:
		return []py.Stmt{&py.Continue{}}
	case *ast.LabeledStmt:
		// Labels are discarded; only the labeled body survives.
		return t.TranslateStatement(ctx, ret, s.Body)
	case *ast.FunctionDecl:
		return []py.Stmt{t.TranslateFunction(ctx, s.Name, s.Params, s.Body)}
	case *ast.ClassDecl:
		return t.TranslateClass(ctx, s)
	}
	t.fatalf(stmt.NodePos(), errors.CodeUnknownNode, "unsupported statement node %T", stmt)
	return nil
}

// translateBlock translates contained statements in order, then applies the
// return-strategy normalizer.
func (t *Transformer) translateBlock(ctx Context, ret ReturnStrategy, body []ast.Stmt) []py.Stmt {
	var out []py.Stmt
	for _, stmt := range body {
		out = append(out, t.TranslateStatement(ctx, ret, stmt)...)
	}
	return normalizeBody(ret, out)
}

// translateNested translates a nested branch or loop body. Branches and
// bodies always run under NoReturn, regardless of the enclosing strategy.
func (t *Transformer) translateNested(ctx Context, stmt ast.Stmt) []py.Stmt {
	return normalizeBody(NoReturn, t.TranslateStatement(ctx, NoReturn, stmt))
}

func (t *Transformer) translateReturn(ctx Context, ret ReturnStrategy, s *ast.ReturnStmt) []py.Stmt {
	if s.Argument == nil {
		return []py.Stmt{&py.Return{}}
	}
	if ret == Return && ctx.TailCall != nil {
		if out, ok := t.translateTailCall(ctx, s.Argument); ok {
			return out
		}
	}
	value, stmts := t.TranslateExpression(ctx, s.Argument)
	if ret == Return {
		return append(stmts, &py.Return{Value: value})
	}
	// Non-tail slots (constructor bodies and the like) must not produce a
	// value: discard it as a bare expression statement.
	return append(stmts, &py.ExprStmt{Value: value})
}

// translateTailCall retargets a trailing self-call into a loop continuation:
// the formal parameters are rebound simultaneously and control re-enters the
// enclosing loop instead of recursing.
func (t *Transformer) translateTailCall(ctx Context, arg ast.Expr) ([]py.Stmt, bool) {
	tc := ctx.TailCall
	call, ok := arg.(*ast.CallExpr)
	if !ok || tc.IsCandidate == nil || !tc.IsCandidate(call) {
		return nil, false
	}
	if len(call.Args) != len(tc.Formals) {
		return nil, false
	}
	var out []py.Stmt
	values := make([]py.Expr, 0, len(call.Args))
	for _, a := range call.Args {
		value, stmts := t.TranslateExpression(ctx, a)
		out = append(out, stmts...)
		values = append(values, value)
	}
	if len(values) > 0 {
		targets := make([]py.Expr, 0, len(tc.Formals))
		for _, formal := range tc.Formals {
			targets = append(targets, &py.Name{Id: cleanName(formal)})
		}
		out = append(out, &py.Assign{
			Target: &py.Tuple{Elts: targets},
			Value:  &py.Tuple{Elts: values},
		})
	}
	return append(out, &py.Continue{}), true
}

func (t *Transformer) translateVarDecl(ctx Context, s *ast.VarDeclStmt) []py.Stmt {
	var out []py.Stmt
	for _, d := range s.Decls {
		if d.Init == nil {
			// The target declares on first assignment.
			continue
		}
		name := cleanName(d.Name)
		if ctx.ShouldHoist != nil && ctx.ShouldHoist(d.Name) {
			// Pre-bind captured variables ahead of the initializer's prelude
			// so nested lifted closures can close over them.
			out = append(out, &py.Assign{Target: &py.Name{Id: name}, Value: &py.Constant{Value: nil}})
		}
		value, stmts := t.TranslateExpression(ctx, d.Init)
		out = append(out, stmts...)
		out = append(out, &py.Assign{Target: &py.Name{Id: name}, Value: value})
	}
	return out
}

// translateAssign lowers the three supported assignment target shapes. It
// returns the statements and the expression a value-position caller should
// use to re-read the assigned slot. Any other left-hand-side shape is a
// front-end/back-end contract violation.
func (t *Transformer) translateAssign(ctx Context, s *ast.AssignExpr) ([]py.Stmt, py.Expr) {
	switch target := s.Target.(type) {
	case *ast.Ident:
		value, stmts := t.TranslateExpression(ctx, s.Value)
		name := &py.Name{Id: cleanName(target.Name)}
		return append(stmts, &py.Assign{Target: name, Value: value}), name
	case *ast.MemberExpr:
		obj, stmts := t.TranslateExpression(ctx, target.Object)
		if target.Computed {
			lit, ok := target.Property.(*ast.Literal)
			if !ok || lit.Kind != ast.StrLit {
				t.fatalf(s.Pos, errors.CodeBadAssignTarget,
					"computed assignment target must be a string key, got %T", target.Property)
			}
			key := &py.Constant{Value: lit.Str}
			value, valueStmts := t.TranslateExpression(ctx, s.Value)
			stmts = append(stmts, valueStmts...)
			set := &py.Call{Func: &py.Name{Id: "setattr"}, Args: []py.Expr{obj, key, value}}
			reread := &py.Call{Func: &py.Name{Id: "getattr"}, Args: []py.Expr{obj, key}}
			return append(stmts, &py.ExprStmt{Value: set}), reread
		}
		prop, ok := target.Property.(*ast.Ident)
		if !ok {
			t.fatalf(s.Pos, errors.CodeBadAssignTarget,
				"assignment target property must be an identifier, got %T", target.Property)
		}
		attr := &py.Attribute{Value: obj, Attr: memberName(prop.Name)}
		value, valueStmts := t.TranslateExpression(ctx, s.Value)
		stmts = append(stmts, valueStmts...)
		return append(stmts, &py.Assign{Target: attr, Value: value}), attr
	}
	t.fatalf(s.Pos, errors.CodeBadAssignTarget, "unsupported assignment target %T", s.Target)
	return nil, nil
}

func (t *Transformer) translateIf(ctx Context, s *ast.IfStmt) []py.Stmt {
	test, stmts := t.TranslateExpression(ctx, s.Test)
	out := &py.If{Test: test, Body: t.translateNested(ctx, s.Consequent)}
	if s.Alternate != nil {
		out.Orelse = t.translateNested(ctx, s.Alternate)
	}
	return append(stmts, out)
}

func (t *Transformer) translateWhile(ctx Context, s *ast.WhileStmt) []py.Stmt {
	test, stmts := t.TranslateExpression(ctx, s.Test)
	if len(stmts) > 0 {
		// The test prelude is hoisted once above the loop and will not
		// re-run on each iteration's implicit re-evaluation.
		t.warnOnce(s.Pos, errors.CodeHoistedPrelude,
			"while-loop test has side-effecting prelude statements; they are evaluated once before the loop")
	}
	return append(stmts, &py.While{Test: test, Body: t.translateNested(ctx, s.Body)})
}

// translateFor recognizes only the canonical counting loop — one declarator,
// an "i <= bound" test and a unit increment — and lowers it to a range loop
// over [start, bound+1). Any other shape is a contract violation.
func (t *Transformer) translateFor(ctx Context, s *ast.ForStmt) []py.Stmt {
	if s.Init == nil || len(s.Init.Decls) != 1 || s.Init.Decls[0].Init == nil {
		t.fatalf(s.Pos, errors.CodeBadForLoop, "for-loop init must declare exactly one counter")
	}
	decl := s.Init.Decls[0]
	counter := cleanName(decl.Name)

	test, ok := s.Test.(*ast.BinaryExpr)
	if !ok || test.Op != "<=" {
		t.fatalf(s.Pos, errors.CodeBadForLoop, "for-loop test must be a <= comparison")
	}
	if ident, ok := test.Left.(*ast.Ident); !ok || ident.Name != decl.Name {
		t.fatalf(s.Pos, errors.CodeBadForLoop, "for-loop test must compare the loop counter")
	}
	update, ok := s.Update.(*ast.UpdateExpr)
	if !ok || update.Op != "++" {
		t.fatalf(s.Pos, errors.CodeBadForLoop, "for-loop update must be a unit increment")
	}
	if ident, ok := update.Operand.(*ast.Ident); !ok || ident.Name != decl.Name {
		t.fatalf(s.Pos, errors.CodeBadForLoop, "for-loop update must increment the loop counter")
	}

	start, stmts := t.TranslateExpression(ctx, decl.Init)
	bound, boundStmts := t.TranslateExpression(ctx, test.Right)
	stmts = append(stmts, boundStmts...)
	iter := &py.Call{
		Func: &py.Name{Id: "range"},
		Args: []py.Expr{start, &py.BinOp{Left: bound, Op: py.Add, Right: &py.Constant{Value: 1}}},
	}
	loop := &py.For{
		Target: &py.Name{Id: counter},
		Iter:   iter,
		Body:   t.translateNested(ctx, s.Body),
	}
	return append(stmts, loop)
}

// translateTry lowers try/catch/finally. The catch clause binds one
// parameter to the single generic exception type; the source's discriminated
// exception types are erased.
func (t *Transformer) translateTry(ctx Context, s *ast.TryStmt) []py.Stmt {
	if s.Handler == nil && s.Finalizer == nil {
		t.fatalf(s.Pos, errors.CodeMalformedTry, "try statement needs a handler or a finalizer")
	}
	out := &py.Try{Body: t.translateNested(ctx, s.Block)}
	if s.Handler != nil {
		out.Handlers = []*py.ExceptHandler{{
			Type: &py.Name{Id: "Exception"},
			Name: cleanName(s.Handler.Param),
			Body: t.translateNested(ctx, s.Handler.Body),
		}}
	}
	if s.Finalizer != nil {
		out.Finalbody = t.translateNested(ctx, s.Finalizer)
	}
	return []py.Stmt{out}
}

// translateSwitch folds the cases right-to-left into an if/elif chain. A
// case with an empty consequent contributes only its equality test, OR'ed
// into the chain head built from the next non-empty case; the default case
// becomes the unconditional tail of the chain.
func (t *Transformer) translateSwitch(ctx Context, s *ast.SwitchStmt) []py.Stmt {
	disc, out := t.TranslateExpression(ctx, s.Discriminant)

	// Case tests are translated once, in source order, so their preludes
	// hoist above the whole chain in evaluation order.
	tests := make([]py.Expr, len(s.Cases))
	for i, c := range s.Cases {
		if c.Test == nil {
			continue
		}
		value, stmts := t.TranslateExpression(ctx, c.Test)
		out = append(out, stmts...)
		tests[i] = &py.Compare{Left: disc, Ops: []py.CmpOp{py.Eq}, Comparators: []py.Expr{value}}
	}

	var rest []py.Stmt
	for i := len(s.Cases) - 1; i >= 0; i-- {
		c := s.Cases[i]
		if c.Test == nil {
			// Default case: unconditional body, terminating the chain. A
			// default that is not last replaces whatever was already built.
			if rest != nil {
				t.warnOnce(c.Pos, errors.CodeSwitchDefault,
					"switch default case is not last; later cases are unreachable")
			}
			rest = t.translateBlock(ctx, NoBreak, c.Consequent)
			continue
		}
		if len(c.Consequent) == 0 {
			// Fallthrough emulation: OR this test into the next non-empty
			// case's already-built chain head.
			if len(rest) == 1 {
				if head, ok := rest[0].(*py.If); ok {
					head.Test = orTests(tests[i], head.Test)
				}
			}
			continue
		}
		rest = []py.Stmt{&py.If{
			Test:   tests[i],
			Body:   t.translateBlock(ctx, NoBreak, c.Consequent),
			Orelse: rest,
		}}
	}
	return append(out, rest...)
}

// orTests prepends a test to an OR chain, keeping source case order.
func orTests(test, existing py.Expr) py.Expr {
	if chain, ok := existing.(*py.BoolOp); ok && chain.Op == py.Or {
		chain.Values = append([]py.Expr{test}, chain.Values...)
		return chain
	}
	return &py.BoolOp{Op: py.Or, Values: []py.Expr{test, existing}}
}
