package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fable/internal/py"
)

func TestNormalizeEmptyReturnBody(t *testing.T) {
	out := normalizeBody(Return, nil)
	require.Len(t, out, 1)
	assert.IsType(t, &py.Return{}, out[0])
}

func TestNormalizeEmptyNestedBody(t *testing.T) {
	out := normalizeBody(NoReturn, nil)
	require.Len(t, out, 1)
	assert.IsType(t, &py.Pass{}, out[0])
}

func TestNormalizeStripsDeadExpressions(t *testing.T) {
	out := normalizeBody(NoReturn, []py.Stmt{
		&py.ExprStmt{Value: &py.Name{Id: "x"}},
		&py.ExprStmt{Value: &py.Constant{Value: 1.0}},
		&py.ExprStmt{Value: &py.Call{Func: &py.Name{Id: "f"}}},
	})
	require.Len(t, out, 1, "only the side-effecting statement survives")
	es := out[0].(*py.ExprStmt)
	assert.IsType(t, &py.Call{}, es.Value)
}

func TestNormalizePassOnlyReturnBody(t *testing.T) {
	out := normalizeBody(Return, []py.Stmt{&py.Pass{}})
	require.Len(t, out, 1)
	assert.IsType(t, &py.Return{}, out[0])
}

func TestNormalizeNoBreakStripsTrailingBreaks(t *testing.T) {
	out := normalizeBody(NoBreak, []py.Stmt{
		&py.ExprStmt{Value: &py.Call{Func: &py.Name{Id: "f"}}},
		&py.Break{},
		&py.Break{},
	})
	require.Len(t, out, 1)
	assert.IsType(t, &py.ExprStmt{}, out[0])
}

func TestNormalizeNoBreakKeepsInteriorBreak(t *testing.T) {
	interior := &py.Break{}
	out := normalizeBody(NoBreak, []py.Stmt{
		&py.If{Test: &py.Name{Id: "x"}, Body: []py.Stmt{interior}},
		&py.ExprStmt{Value: &py.Call{Func: &py.Name{Id: "f"}}},
	})
	require.Len(t, out, 2, "only trailing breaks are structural")
}

func TestNormalizeBreakOnlyCaseBody(t *testing.T) {
	out := normalizeBody(NoBreak, []py.Stmt{&py.Break{}})
	require.Len(t, out, 1)
	assert.IsType(t, &py.Pass{}, out[0])
}
