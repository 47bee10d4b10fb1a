package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeModule(t *testing.T) {
	data := []byte(`{
		"file": "demo.js",
		"body": [
			{
				"type": "ImportDeclaration",
				"source": "./fable-library/List.js",
				"specifiers": [
					{"type": "ImportSpecifier", "kind": "named", "imported": "singleton"}
				]
			},
			{
				"type": "ExportDeclaration",
				"declaration": {
					"type": "FunctionDeclaration",
					"line": 3,
					"column": 1,
					"name": "add",
					"params": [{"name": "a"}, {"name": "b"}, {"name": "rest", "rest": true}],
					"body": {
						"type": "BlockStatement",
						"body": [
							{
								"type": "ReturnStatement",
								"argument": {
									"type": "BinaryExpression",
									"operator": "+",
									"left": {"type": "Identifier", "name": "a"},
									"right": {"type": "Identifier", "name": "b"}
								}
							}
						]
					}
				}
			}
		]
	}`)

	decls, err := DecodeModule(data)
	require.NoError(t, err)
	require.Len(t, decls, 2)

	imp, ok := decls[0].(*ImportDecl)
	require.True(t, ok)
	assert.Equal(t, "./fable-library/List.js", imp.Source)
	require.Len(t, imp.Specifiers, 1)
	assert.Equal(t, NamedImport, imp.Specifiers[0].Kind)
	assert.Equal(t, "singleton", imp.Specifiers[0].Imported)

	exp, ok := decls[1].(*ExportDecl)
	require.True(t, ok)
	fn, ok := exp.Decl.(*FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, Position{File: "demo.js", Line: 3, Column: 1}, fn.Pos)
	require.Len(t, fn.Params, 3)
	assert.False(t, fn.Params[0].Rest)
	assert.True(t, fn.Params[2].Rest)

	require.Len(t, fn.Body.Body, 1)
	ret, ok := fn.Body.Body[0].(*ReturnStmt)
	require.True(t, ok)
	bin, ok := ret.Argument.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestDecodeControlFlow(t *testing.T) {
	data := []byte(`{
		"file": "demo.js",
		"body": [
			{
				"type": "FunctionDeclaration",
				"name": "f",
				"params": [],
				"body": {
					"type": "BlockStatement",
					"body": [
						{
							"type": "SwitchStatement",
							"discriminant": {"type": "Identifier", "name": "x"},
							"cases": [
								{"test": {"type": "NumericLiteral", "value": 1}, "consequent": [
									{"type": "BreakStatement"}
								]},
								{"consequent": []}
							]
						},
						{
							"type": "TryStatement",
							"block": {"type": "BlockStatement", "body": []},
							"handler": {
								"param": "err",
								"body": {"type": "BlockStatement", "body": []}
							}
						}
					]
				}
			}
		]
	}`)

	decls, err := DecodeModule(data)
	require.NoError(t, err)
	fn := decls[0].(*FunctionDecl)
	require.Len(t, fn.Body.Body, 2)

	sw, ok := fn.Body.Body[0].(*SwitchStmt)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)
	lit, ok := sw.Cases[0].Test.(*Literal)
	require.True(t, ok)
	assert.Equal(t, NumLit, lit.Kind)
	assert.Equal(t, 1.0, lit.Num)
	assert.Nil(t, sw.Cases[1].Test, "a missing test marks the default case")

	try, ok := fn.Body.Body[1].(*TryStmt)
	require.True(t, ok)
	require.NotNil(t, try.Handler)
	assert.Equal(t, "err", try.Handler.Param)
	assert.Nil(t, try.Finalizer)
}

func TestDecodeExpressionShapes(t *testing.T) {
	data := []byte(`{
		"file": "demo.js",
		"body": [
			{
				"type": "ExpressionStatement",
				"expression": {
					"type": "CallExpression",
					"callee": {
						"type": "MemberExpression",
						"object": {"type": "ThisExpression"},
						"property": {"type": "Identifier", "name": "run"},
						"computed": false
					},
					"arguments": [
						{"type": "ArrowFunctionExpression", "params": [{"name": "x"}], "body": {
							"type": "BlockStatement",
							"body": [{"type": "ReturnStatement", "argument": {"type": "Identifier", "name": "x"}}]
						}},
						{"type": "EmitExpression", "value": "print", "arguments": []}
					]
				}
			}
		]
	}`)

	decls, err := DecodeModule(data)
	require.NoError(t, err)
	es := decls[0].(*ExprStmt)
	call := es.Expr.(*CallExpr)

	member := call.Callee.(*MemberExpr)
	assert.IsType(t, &ThisExpr{}, member.Object)
	assert.False(t, member.Computed)

	require.Len(t, call.Args, 2)
	arrow := call.Args[0].(*ArrowExpr)
	require.Len(t, arrow.Params, 1)
	require.Len(t, arrow.Body, 1)

	emit := call.Args[1].(*EmitExpr)
	assert.Equal(t, "print", emit.Value)
	assert.Empty(t, emit.Args)
}

func TestDecodeUnknownNodeErrors(t *testing.T) {
	_, err := DecodeModule([]byte(`{"file": "x.js", "body": [{"type": "WithStatement"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown declaration type")
}

func TestDecodeMalformedJSONErrors(t *testing.T) {
	_, err := DecodeModule([]byte(`{"body": [}`))
	require.Error(t, err)
}
