package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fable/internal/ast"
	"fable/internal/errors"
	"fable/internal/py"
)

func newTestTransformer() *Transformer {
	return NewTransformer(errors.NewReporter("test.js", nil))
}

// ============================================================================
// AST construction helpers
// ============================================================================

func ident(name string) *ast.Ident { return &ast.Ident{Name: name} }

func num(v float64) *ast.Literal { return &ast.Literal{Kind: ast.NumLit, Num: v} }

func str(v string) *ast.Literal { return &ast.Literal{Kind: ast.StrLit, Str: v} }

func callExpr(callee ast.Expr, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{Callee: callee, Args: args}
}

func exprStmt(e ast.Expr) *ast.ExprStmt { return &ast.ExprStmt{Expr: e} }

func returnStmt(e ast.Expr) *ast.ReturnStmt { return &ast.ReturnStmt{Argument: e} }

// multiBody is a closure body that cannot be expressed inline.
func multiBody() []ast.Stmt {
	return []ast.Stmt{
		exprStmt(callExpr(ident("sideEffect"))),
		returnStmt(num(1)),
	}
}

// ============================================================================
// Operator tables
// ============================================================================

func TestBinaryOperatorTable(t *testing.T) {
	tr := newTestTransformer()
	for token, want := range binaryOps {
		value, stmts := tr.TranslateExpression(NewContext(), &ast.BinaryExpr{
			Op: token, Left: ident("a"), Right: ident("b"),
		})
		require.Empty(t, stmts, "operator %q should not need a prelude", token)
		binop, ok := value.(*py.BinOp)
		require.True(t, ok, "operator %q should lower to a binary operation", token)
		assert.Equal(t, want, binop.Op)
	}
}

func TestComparisonOperatorTable(t *testing.T) {
	tr := newTestTransformer()
	for token, want := range comparisonOps {
		value, _ := tr.TranslateExpression(NewContext(), &ast.BinaryExpr{
			Op: token, Left: ident("a"), Right: ident("b"),
		})
		cmp, ok := value.(*py.Compare)
		require.True(t, ok, "operator %q should lower to a comparison", token)
		require.Len(t, cmp.Ops, 1)
		assert.Equal(t, want, cmp.Ops[0])
		assert.Len(t, cmp.Comparators, 1)
	}
}

func TestUnaryOperatorTable(t *testing.T) {
	tr := newTestTransformer()
	for token, want := range unaryOps {
		value, _ := tr.TranslateExpression(NewContext(), &ast.UnaryExpr{Op: token, Operand: ident("x")})
		unary, ok := value.(*py.UnaryOp)
		require.True(t, ok)
		assert.Equal(t, want, unary.Op)
	}
}

func TestLogicalOperators(t *testing.T) {
	tr := newTestTransformer()
	value, _ := tr.TranslateExpression(NewContext(), &ast.LogicalExpr{
		Op: "&&", Left: ident("a"), Right: ident("b"),
	})
	boolop, ok := value.(*py.BoolOp)
	require.True(t, ok)
	assert.Equal(t, py.And, boolop.Op)
	assert.Len(t, boolop.Values, 2)
}

func TestUnknownOperatorIsFatal(t *testing.T) {
	tr := newTestTransformer()
	assert.Panics(t, func() {
		tr.TranslateExpression(NewContext(), &ast.BinaryExpr{
			Op: ">>>", Left: ident("a"), Right: ident("b"),
		})
	}, "unsigned shift is outside the operator table")
}

// ============================================================================
// Literals, identifiers, this
// ============================================================================

func TestLiteralMapping(t *testing.T) {
	tr := newTestTransformer()

	value, _ := tr.TranslateExpression(NewContext(), &ast.Literal{Kind: ast.NullLit})
	assert.Equal(t, &py.Constant{Value: nil}, value)

	value, _ = tr.TranslateExpression(NewContext(), &ast.Literal{Kind: ast.BoolLit, Bool: true})
	assert.Equal(t, &py.Constant{Value: true}, value)

	value, _ = tr.TranslateExpression(NewContext(), num(42))
	assert.Equal(t, &py.Constant{Value: 42.0}, value)

	value, _ = tr.TranslateExpression(NewContext(), str("hi"))
	assert.Equal(t, &py.Constant{Value: "hi"}, value)
}

func TestUnknownLiteralKindIsFatal(t *testing.T) {
	tr := newTestTransformer()
	assert.Panics(t, func() {
		tr.TranslateExpression(NewContext(), &ast.Literal{Kind: ast.LiteralKind(99)})
	})
}

func TestThisLowersToSelf(t *testing.T) {
	tr := newTestTransformer()
	value, _ := tr.TranslateExpression(NewContext(), &ast.ThisExpr{})
	assert.Equal(t, &py.Name{Id: "self"}, value)
}

func TestIdentifierCleaning(t *testing.T) {
	tr := newTestTransformer()
	value, _ := tr.TranslateExpression(NewContext(), ident("class"))
	assert.Equal(t, &py.Name{Id: "class_"}, value)
}

func TestTypeParamBypassesCleaning(t *testing.T) {
	tr := newTestTransformer()
	ctx := NewContext().WithTypeParams("T")
	value, _ := tr.TranslateExpression(ctx, ident("T"))
	assert.Equal(t, &py.Name{Id: "T"}, value)
}

// ============================================================================
// Member access
// ============================================================================

func TestMemberLengthRewrite(t *testing.T) {
	tr := newTestTransformer()
	value, _ := tr.TranslateExpression(NewContext(), &ast.MemberExpr{
		Object: ident("obj"), Property: ident("length"),
	})
	call, ok := value.(*py.Call)
	require.True(t, ok)
	assert.Equal(t, &py.Name{Id: "len"}, call.Func)
	require.Len(t, call.Args, 1)
	assert.Equal(t, &py.Name{Id: "obj"}, call.Args[0])
}

func TestMemberIndexOfRewrite(t *testing.T) {
	tr := newTestTransformer()
	value, _ := tr.TranslateExpression(NewContext(), &ast.MemberExpr{
		Object: ident("obj"), Property: ident("indexOf"),
	})
	attr, ok := value.(*py.Attribute)
	require.True(t, ok)
	assert.Equal(t, "index", attr.Attr)
}

func TestMemberMessageRewrite(t *testing.T) {
	tr := newTestTransformer()
	value, _ := tr.TranslateExpression(NewContext(), &ast.MemberExpr{
		Object: ident("err"), Property: ident("message"),
	})
	call, ok := value.(*py.Call)
	require.True(t, ok)
	assert.Equal(t, &py.Name{Id: "str"}, call.Func)
}

func TestMemberPlainAccessSnakeCases(t *testing.T) {
	tr := newTestTransformer()
	value, _ := tr.TranslateExpression(NewContext(), &ast.MemberExpr{
		Object: ident("obj"), Property: ident("fooBar"),
	})
	attr, ok := value.(*py.Attribute)
	require.True(t, ok)
	assert.Equal(t, "foo_bar", attr.Attr)
}

func TestComputedNumericIndexLowersToSubscript(t *testing.T) {
	tr := newTestTransformer()
	value, _ := tr.TranslateExpression(NewContext(), &ast.MemberExpr{
		Object: ident("arr"), Property: num(0), Computed: true,
	})
	sub, ok := value.(*py.Subscript)
	require.True(t, ok)
	assert.Equal(t, &py.Constant{Value: 0.0}, sub.Index)
}

func TestComputedStringKeyLowersToGetattr(t *testing.T) {
	tr := newTestTransformer()
	value, _ := tr.TranslateExpression(NewContext(), &ast.MemberExpr{
		Object: ident("obj"), Property: str("key"), Computed: true,
	})
	call, ok := value.(*py.Call)
	require.True(t, ok)
	assert.Equal(t, &py.Name{Id: "getattr"}, call.Func)
	require.Len(t, call.Args, 2)
	assert.Equal(t, &py.Constant{Value: "key"}, call.Args[1])
}

// ============================================================================
// Calls and evaluation order
// ============================================================================

func TestNewLowersToPlainCall(t *testing.T) {
	tr := newTestTransformer()
	value, stmts := tr.TranslateExpression(NewContext(), &ast.NewExpr{
		Callee: ident("Point"), Args: []ast.Expr{num(1), num(2)},
	})
	assert.Empty(t, stmts)
	call, ok := value.(*py.Call)
	require.True(t, ok)
	assert.Equal(t, &py.Name{Id: "Point"}, call.Func)
	assert.Len(t, call.Args, 2)
}

func TestCallPreludesConcatenateInEvaluationOrder(t *testing.T) {
	tr := newTestTransformer()
	// Two statement-bodied arrows as arguments force two lifted functions;
	// their synthetic names must appear in argument order.
	value, stmts := tr.TranslateExpression(NewContext(), callExpr(
		ident("f"),
		&ast.ArrowExpr{Body: multiBody()},
		&ast.ArrowExpr{Body: multiBody()},
	))
	require.Len(t, stmts, 2)
	first, ok := stmts[0].(*py.FunctionDef)
	require.True(t, ok)
	second, ok := stmts[1].(*py.FunctionDef)
	require.True(t, ok)

	call, ok := value.(*py.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	assert.Equal(t, &py.Name{Id: first.Name}, call.Args[0])
	assert.Equal(t, &py.Name{Id: second.Name}, call.Args[1])
	assert.NotEqual(t, first.Name, second.Name, "synthetic names must be collision-free")
}

func TestConditionalExpression(t *testing.T) {
	tr := newTestTransformer()
	value, stmts := tr.TranslateExpression(NewContext(), &ast.ConditionalExpr{
		Test: ident("ok"), Consequent: num(1), Alternate: num(2),
	})
	assert.Empty(t, stmts)
	ifexp, ok := value.(*py.IfExp)
	require.True(t, ok)
	assert.Equal(t, &py.Name{Id: "ok"}, ifexp.Test)
}

// ============================================================================
// Closures and lifting
// ============================================================================

func TestArrowSingleReturnIsInline(t *testing.T) {
	tr := newTestTransformer()
	value, stmts := tr.TranslateExpression(NewContext(), &ast.ArrowExpr{
		Params: []*ast.Param{{Name: "x"}},
		Body:   []ast.Stmt{returnStmt(&ast.BinaryExpr{Op: "+", Left: ident("x"), Right: num(1)})},
	})
	assert.Empty(t, stmts, "inline closures need no prelude")
	lambda, ok := value.(*py.Lambda)
	require.True(t, ok)
	require.Len(t, lambda.Args.Args, 1)
	assert.Equal(t, "x", lambda.Args.Args[0].Name)
}

func TestArrowMultiStatementIsLifted(t *testing.T) {
	tr := newTestTransformer()
	value, stmts := tr.TranslateExpression(NewContext(), &ast.ArrowExpr{Body: multiBody()})
	require.Len(t, stmts, 1)
	fn, ok := stmts[0].(*py.FunctionDef)
	require.True(t, ok, "multi-statement bodies take the lifting path")
	name, ok := value.(*py.Name)
	require.True(t, ok, "the expression value is a reference to the lifted name")
	assert.Equal(t, fn.Name, name.Id)
	_, isLambda := value.(*py.Lambda)
	assert.False(t, isLambda, "the inline and lifted paths never both fire")
}

func TestArrowBareExpressionBodyIsLifted(t *testing.T) {
	// A bare expression body inlines for function expressions only; for
	// arrows it takes the lifting path.
	tr := newTestTransformer()
	_, stmts := tr.TranslateExpression(NewContext(), &ast.ArrowExpr{
		Body: []ast.Stmt{exprStmt(callExpr(ident("f")))},
	})
	require.Len(t, stmts, 1)
	assert.IsType(t, &py.FunctionDef{}, stmts[0])
}

func TestFunctionExpressionBareBodyIsInline(t *testing.T) {
	tr := newTestTransformer()
	value, stmts := tr.TranslateExpression(NewContext(), &ast.FunctionExpr{
		Params: []*ast.Param{{Name: "x"}},
		Body:   []ast.Stmt{exprStmt(ident("x"))},
	})
	assert.Empty(t, stmts)
	assert.IsType(t, &py.Lambda{}, value)
}

func TestZeroParameterClosureGetsPlaceholder(t *testing.T) {
	tr := newTestTransformer()
	value, _ := tr.TranslateExpression(NewContext(), &ast.ArrowExpr{
		Body: []ast.Stmt{returnStmt(num(1))},
	})
	lambda := value.(*py.Lambda)
	require.Len(t, lambda.Args.Args, 1)
	assert.Equal(t, "_unit", lambda.Args.Args[0].Name)
	assert.Equal(t, &py.Constant{Value: nil}, lambda.Args.Args[0].Default)
}

// ============================================================================
// Object and sequence lowering
// ============================================================================

func TestObjectLiteral(t *testing.T) {
	tr := newTestTransformer()
	value, stmts := tr.TranslateExpression(NewContext(), &ast.ObjectExpr{
		Properties: []*ast.Property{
			{Key: ident("name"), Value: str("x")},
			{Key: ident("run"), Value: &ast.FunctionExpr{Body: multiBody()}, Method: true},
		},
	})
	dict, ok := value.(*py.Dict)
	require.True(t, ok)
	require.Len(t, dict.Keys, 2)
	assert.Equal(t, &py.Constant{Value: "name"}, dict.Keys[0])

	// Object methods are never inline.
	require.Len(t, stmts, 1)
	fn := stmts[0].(*py.FunctionDef)
	assert.Equal(t, &py.Name{Id: fn.Name}, dict.Values[1])
}

func TestSequenceExpressionLifts(t *testing.T) {
	tr := newTestTransformer()
	value, stmts := tr.TranslateExpression(NewContext(), &ast.SequenceExpr{
		Exprs: []ast.Expr{callExpr(ident("a")), callExpr(ident("b")), ident("c")},
	})
	require.Len(t, stmts, 1)
	fn, ok := stmts[0].(*py.FunctionDef)
	require.True(t, ok)

	// The last element is the sequence's value.
	last, ok := fn.Body[len(fn.Body)-1].(*py.Return)
	require.True(t, ok)
	assert.Equal(t, &py.Name{Id: "c"}, last.Value)

	// The synthetic function is invoked with zero arguments.
	call, ok := value.(*py.Call)
	require.True(t, ok)
	assert.Equal(t, &py.Name{Id: fn.Name}, call.Func)
	assert.Empty(t, call.Args)
}

func TestArrayLowersToTuple(t *testing.T) {
	tr := newTestTransformer()
	value, _ := tr.TranslateExpression(NewContext(), &ast.ArrayExpr{
		Elements: []ast.Expr{num(1), num(2)},
	})
	tuple, ok := value.(*py.Tuple)
	require.True(t, ok)
	assert.Len(t, tuple.Elts, 2)
}

func TestEmitEscape(t *testing.T) {
	tr := newTestTransformer()

	value, stmts := tr.TranslateExpression(NewContext(), &ast.EmitExpr{Value: "print"})
	assert.Empty(t, stmts)
	assert.Equal(t, &py.Name{Id: "print"}, value)

	value, _ = tr.TranslateExpression(NewContext(), &ast.EmitExpr{Value: "print", Args: []ast.Expr{num(1)}})
	call, ok := value.(*py.Call)
	require.True(t, ok)
	assert.Equal(t, &py.Name{Id: "print"}, call.Func)
}
