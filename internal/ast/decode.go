package ast

import (
	"encoding/json"
	"fmt"
)

// DecodeModule decodes a serialized source IR module. The envelope is plain
// JSON with a "type" discriminator per node, produced by the upstream
// front-end; positions are optional "line"/"column" fields.
func DecodeModule(data []byte) ([]Decl, error) {
	var root struct {
		File string            `json:"file"`
		Body []json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode module: %w", err)
	}
	decls := make([]Decl, 0, len(root.Body))
	for i, raw := range root.Body {
		d, err := decodeDecl(root.File, raw)
		if err != nil {
			return nil, fmt.Errorf("decode module body[%d]: %w", i, err)
		}
		decls = append(decls, d)
	}
	return decls, nil
}

type nodeHeader struct {
	Type   string `json:"type"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (h nodeHeader) pos(file string) Position {
	return Position{File: file, Line: h.Line, Column: h.Column}
}

func decodeDecl(file string, raw json.RawMessage) (Decl, error) {
	var h nodeHeader
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, err
	}
	switch h.Type {
	case "ImportDeclaration":
		var n struct {
			Specifiers []struct {
				nodeHeader
				Kind     string `json:"kind"`
				Imported string `json:"imported"`
				Local    string `json:"local"`
			} `json:"specifiers"`
			Source string `json:"source"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		decl := &ImportDecl{Pos: h.pos(file), Source: n.Source}
		for _, s := range n.Specifiers {
			kind, err := importKind(s.Kind)
			if err != nil {
				return nil, err
			}
			decl.Specifiers = append(decl.Specifiers, &ImportSpecifier{
				Pos:      s.pos(file),
				Kind:     kind,
				Imported: s.Imported,
				Local:    s.Local,
			})
		}
		return decl, nil
	case "ExportDeclaration":
		var n struct {
			Declaration json.RawMessage `json:"declaration"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		inner, err := decodeDecl(file, n.Declaration)
		if err != nil {
			return nil, err
		}
		return &ExportDecl{Pos: h.pos(file), Decl: inner}, nil
	case "FunctionDeclaration", "ClassDeclaration", "VariableDeclaration", "ExpressionStatement":
		s, err := decodeStmt(file, raw)
		if err != nil {
			return nil, err
		}
		return s.(Decl), nil
	}
	return nil, fmt.Errorf("unknown declaration type %q", h.Type)
}

func importKind(kind string) (ImportKind, error) {
	switch kind {
	case "default":
		return DefaultImport, nil
	case "named":
		return NamedImport, nil
	case "namespace":
		return NamespaceImport, nil
	}
	return 0, fmt.Errorf("unknown import specifier kind %q", kind)
}

func memberKind(kind string) (MemberKind, error) {
	switch kind {
	case "method", "constructor":
		return MethodMember, nil
	case "field":
		return FieldMember, nil
	case "get":
		return GetterMember, nil
	case "set":
		return SetterMember, nil
	}
	return 0, fmt.Errorf("unknown class member kind %q", kind)
}

type rawParam struct {
	nodeHeader
	Name string `json:"name"`
	Rest bool   `json:"rest"`
}

func decodeParams(file string, raws []rawParam) []*Param {
	params := make([]*Param, 0, len(raws))
	for _, p := range raws {
		params = append(params, &Param{Pos: p.pos(file), Name: p.Name, Rest: p.Rest})
	}
	return params
}

func decodeStmts(file string, raws []json.RawMessage) ([]Stmt, error) {
	stmts := make([]Stmt, 0, len(raws))
	for _, raw := range raws {
		s, err := decodeStmt(file, raw)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func decodeBlock(file string, raw json.RawMessage) (*BlockStmt, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	s, err := decodeStmt(file, raw)
	if err != nil {
		return nil, err
	}
	block, ok := s.(*BlockStmt)
	if !ok {
		return nil, fmt.Errorf("expected block statement, got %T", s)
	}
	return block, nil
}

func decodeStmt(file string, raw json.RawMessage) (Stmt, error) {
	var h nodeHeader
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, err
	}
	switch h.Type {
	case "BlockStatement":
		var n struct {
			Body []json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		body, err := decodeStmts(file, n.Body)
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Pos: h.pos(file), Body: body}, nil
	case "ReturnStatement":
		var n struct {
			Argument json.RawMessage `json:"argument"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		arg, err := decodeOptExpr(file, n.Argument)
		if err != nil {
			return nil, err
		}
		return &ReturnStmt{Pos: h.pos(file), Argument: arg}, nil
	case "VariableDeclaration":
		var n struct {
			Declarations []struct {
				nodeHeader
				Name string          `json:"name"`
				Init json.RawMessage `json:"init"`
			} `json:"declarations"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		decl := &VarDeclStmt{Pos: h.pos(file)}
		for _, d := range n.Declarations {
			init, err := decodeOptExpr(file, d.Init)
			if err != nil {
				return nil, err
			}
			decl.Decls = append(decl.Decls, &VarDeclarator{Pos: d.pos(file), Name: d.Name, Init: init})
		}
		return decl, nil
	case "ExpressionStatement":
		var n struct {
			Expression json.RawMessage `json:"expression"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		expr, err := decodeExpr(file, n.Expression)
		if err != nil {
			return nil, err
		}
		return &ExprStmt{Pos: h.pos(file), Expr: expr}, nil
	case "IfStatement":
		var n struct {
			Test       json.RawMessage `json:"test"`
			Consequent json.RawMessage `json:"consequent"`
			Alternate  json.RawMessage `json:"alternate"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		test, err := decodeExpr(file, n.Test)
		if err != nil {
			return nil, err
		}
		cons, err := decodeStmt(file, n.Consequent)
		if err != nil {
			return nil, err
		}
		var alt Stmt
		if len(n.Alternate) > 0 && string(n.Alternate) != "null" {
			if alt, err = decodeStmt(file, n.Alternate); err != nil {
				return nil, err
			}
		}
		return &IfStmt{Pos: h.pos(file), Test: test, Consequent: cons, Alternate: alt}, nil
	case "WhileStatement":
		var n struct {
			Test json.RawMessage `json:"test"`
			Body json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		test, err := decodeExpr(file, n.Test)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(file, n.Body)
		if err != nil {
			return nil, err
		}
		return &WhileStmt{Pos: h.pos(file), Test: test, Body: body}, nil
	case "ForStatement":
		var n struct {
			Init   json.RawMessage `json:"init"`
			Test   json.RawMessage `json:"test"`
			Update json.RawMessage `json:"update"`
			Body   json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		var init *VarDeclStmt
		if len(n.Init) > 0 && string(n.Init) != "null" {
			s, err := decodeStmt(file, n.Init)
			if err != nil {
				return nil, err
			}
			decl, ok := s.(*VarDeclStmt)
			if !ok {
				return nil, fmt.Errorf("for-loop init must be a variable declaration, got %T", s)
			}
			init = decl
		}
		test, err := decodeOptExpr(file, n.Test)
		if err != nil {
			return nil, err
		}
		update, err := decodeOptExpr(file, n.Update)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(file, n.Body)
		if err != nil {
			return nil, err
		}
		return &ForStmt{Pos: h.pos(file), Init: init, Test: test, Update: update, Body: body}, nil
	case "TryStatement":
		var n struct {
			Block   json.RawMessage `json:"block"`
			Handler *struct {
				nodeHeader
				Param string          `json:"param"`
				Body  json.RawMessage `json:"body"`
			} `json:"handler"`
			Finalizer json.RawMessage `json:"finalizer"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		block, err := decodeBlock(file, n.Block)
		if err != nil {
			return nil, err
		}
		stmt := &TryStmt{Pos: h.pos(file), Block: block}
		if n.Handler != nil {
			body, err := decodeBlock(file, n.Handler.Body)
			if err != nil {
				return nil, err
			}
			stmt.Handler = &CatchClause{Pos: n.Handler.pos(file), Param: n.Handler.Param, Body: body}
		}
		if stmt.Finalizer, err = decodeBlock(file, n.Finalizer); err != nil {
			return nil, err
		}
		return stmt, nil
	case "SwitchStatement":
		var n struct {
			Discriminant json.RawMessage `json:"discriminant"`
			Cases        []struct {
				nodeHeader
				Test       json.RawMessage   `json:"test"`
				Consequent []json.RawMessage `json:"consequent"`
			} `json:"cases"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		disc, err := decodeExpr(file, n.Discriminant)
		if err != nil {
			return nil, err
		}
		stmt := &SwitchStmt{Pos: h.pos(file), Discriminant: disc}
		for _, c := range n.Cases {
			test, err := decodeOptExpr(file, c.Test)
			if err != nil {
				return nil, err
			}
			body, err := decodeStmts(file, c.Consequent)
			if err != nil {
				return nil, err
			}
			stmt.Cases = append(stmt.Cases, &SwitchCase{Pos: c.pos(file), Test: test, Consequent: body})
		}
		return stmt, nil
	case "BreakStatement":
		return &BreakStmt{Pos: h.pos(file)}, nil
	case "ContinueStatement":
		return &ContinueStmt{Pos: h.pos(file)}, nil
	case "LabeledStatement":
		var n struct {
			Label string          `json:"label"`
			Body  json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		body, err := decodeStmt(file, n.Body)
		if err != nil {
			return nil, err
		}
		return &LabeledStmt{Pos: h.pos(file), Label: n.Label, Body: body}, nil
	case "FunctionDeclaration":
		var n struct {
			Name   string          `json:"name"`
			Params []rawParam      `json:"params"`
			Body   json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		body, err := decodeBlock(file, n.Body)
		if err != nil {
			return nil, err
		}
		return &FunctionDecl{Pos: h.pos(file), Name: n.Name, Params: decodeParams(file, n.Params), Body: body}, nil
	case "ClassDeclaration":
		var n struct {
			Name       string          `json:"name"`
			SuperClass json.RawMessage `json:"superClass"`
			Members    []struct {
				nodeHeader
				Kind   string          `json:"kind"`
				Name   string          `json:"name"`
				Params []rawParam      `json:"params"`
				Body   json.RawMessage `json:"body"`
			} `json:"members"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		super, err := decodeOptExpr(file, n.SuperClass)
		if err != nil {
			return nil, err
		}
		decl := &ClassDecl{Pos: h.pos(file), Name: n.Name, Superclass: super}
		for _, m := range n.Members {
			kind, err := memberKind(m.Kind)
			if err != nil {
				return nil, err
			}
			body, err := decodeBlock(file, m.Body)
			if err != nil {
				return nil, err
			}
			decl.Members = append(decl.Members, &ClassMember{
				Pos:    m.pos(file),
				Kind:   kind,
				Name:   m.Name,
				Params: decodeParams(file, m.Params),
				Body:   body,
			})
		}
		return decl, nil
	}
	return nil, fmt.Errorf("unknown statement type %q", h.Type)
}

func decodeOptExpr(file string, raw json.RawMessage) (Expr, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodeExpr(file, raw)
}

func decodeExprs(file string, raws []json.RawMessage) ([]Expr, error) {
	exprs := make([]Expr, 0, len(raws))
	for _, raw := range raws {
		e, err := decodeExpr(file, raw)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func decodeExpr(file string, raw json.RawMessage) (Expr, error) {
	var h nodeHeader
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, err
	}
	switch h.Type {
	case "NullLiteral":
		return &Literal{Pos: h.pos(file), Kind: NullLit}, nil
	case "BooleanLiteral":
		var n struct {
			Value bool `json:"value"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		return &Literal{Pos: h.pos(file), Kind: BoolLit, Bool: n.Value}, nil
	case "NumericLiteral":
		var n struct {
			Value float64 `json:"value"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		return &Literal{Pos: h.pos(file), Kind: NumLit, Num: n.Value}, nil
	case "StringLiteral":
		var n struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		return &Literal{Pos: h.pos(file), Kind: StrLit, Str: n.Value}, nil
	case "Identifier":
		var n struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		return &Ident{Pos: h.pos(file), Name: n.Name}, nil
	case "ThisExpression":
		return &ThisExpr{Pos: h.pos(file)}, nil
	case "BinaryExpression", "LogicalExpression":
		var n struct {
			Operator string          `json:"operator"`
			Left     json.RawMessage `json:"left"`
			Right    json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		left, err := decodeExpr(file, n.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(file, n.Right)
		if err != nil {
			return nil, err
		}
		if h.Type == "LogicalExpression" {
			return &LogicalExpr{Pos: h.pos(file), Op: n.Operator, Left: left, Right: right}, nil
		}
		return &BinaryExpr{Pos: h.pos(file), Op: n.Operator, Left: left, Right: right}, nil
	case "UnaryExpression", "UpdateExpression":
		var n struct {
			Operator string          `json:"operator"`
			Argument json.RawMessage `json:"argument"`
			Prefix   bool            `json:"prefix"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		operand, err := decodeExpr(file, n.Argument)
		if err != nil {
			return nil, err
		}
		if h.Type == "UpdateExpression" {
			return &UpdateExpr{Pos: h.pos(file), Op: n.Operator, Operand: operand, Prefix: n.Prefix}, nil
		}
		return &UnaryExpr{Pos: h.pos(file), Op: n.Operator, Operand: operand}, nil
	case "AssignmentExpression":
		var n struct {
			Left  json.RawMessage `json:"left"`
			Right json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		target, err := decodeExpr(file, n.Left)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(file, n.Right)
		if err != nil {
			return nil, err
		}
		return &AssignExpr{Pos: h.pos(file), Target: target, Value: value}, nil
	case "CallExpression", "NewExpression":
		var n struct {
			Callee    json.RawMessage   `json:"callee"`
			Arguments []json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		callee, err := decodeExpr(file, n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprs(file, n.Arguments)
		if err != nil {
			return nil, err
		}
		if h.Type == "NewExpression" {
			return &NewExpr{Pos: h.pos(file), Callee: callee, Args: args}, nil
		}
		return &CallExpr{Pos: h.pos(file), Callee: callee, Args: args}, nil
	case "MemberExpression":
		var n struct {
			Object   json.RawMessage `json:"object"`
			Property json.RawMessage `json:"property"`
			Computed bool            `json:"computed"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		object, err := decodeExpr(file, n.Object)
		if err != nil {
			return nil, err
		}
		property, err := decodeExpr(file, n.Property)
		if err != nil {
			return nil, err
		}
		return &MemberExpr{Pos: h.pos(file), Object: object, Property: property, Computed: n.Computed}, nil
	case "ArrayExpression":
		var n struct {
			Elements []json.RawMessage `json:"elements"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		elems, err := decodeExprs(file, n.Elements)
		if err != nil {
			return nil, err
		}
		return &ArrayExpr{Pos: h.pos(file), Elements: elems}, nil
	case "ObjectExpression":
		var n struct {
			Properties []struct {
				nodeHeader
				Key    json.RawMessage `json:"key"`
				Value  json.RawMessage `json:"value"`
				Method bool            `json:"method"`
			} `json:"properties"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		obj := &ObjectExpr{Pos: h.pos(file)}
		for _, p := range n.Properties {
			key, err := decodeExpr(file, p.Key)
			if err != nil {
				return nil, err
			}
			value, err := decodeExpr(file, p.Value)
			if err != nil {
				return nil, err
			}
			obj.Properties = append(obj.Properties, &Property{Pos: p.pos(file), Key: key, Value: value, Method: p.Method})
		}
		return obj, nil
	case "ArrowFunctionExpression", "FunctionExpression":
		var n struct {
			Params []rawParam      `json:"params"`
			Body   json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		body, err := decodeBlock(file, n.Body)
		if err != nil {
			return nil, err
		}
		var stmts []Stmt
		if body != nil {
			stmts = body.Body
		}
		if h.Type == "ArrowFunctionExpression" {
			return &ArrowExpr{Pos: h.pos(file), Params: decodeParams(file, n.Params), Body: stmts}, nil
		}
		return &FunctionExpr{Pos: h.pos(file), Params: decodeParams(file, n.Params), Body: stmts}, nil
	case "ConditionalExpression":
		var n struct {
			Test       json.RawMessage `json:"test"`
			Consequent json.RawMessage `json:"consequent"`
			Alternate  json.RawMessage `json:"alternate"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		test, err := decodeExpr(file, n.Test)
		if err != nil {
			return nil, err
		}
		cons, err := decodeExpr(file, n.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := decodeExpr(file, n.Alternate)
		if err != nil {
			return nil, err
		}
		return &ConditionalExpr{Pos: h.pos(file), Test: test, Consequent: cons, Alternate: alt}, nil
	case "SequenceExpression":
		var n struct {
			Expressions []json.RawMessage `json:"expressions"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		exprs, err := decodeExprs(file, n.Expressions)
		if err != nil {
			return nil, err
		}
		return &SequenceExpr{Pos: h.pos(file), Exprs: exprs}, nil
	case "EmitExpression":
		var n struct {
			Value     string            `json:"value"`
			Arguments []json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		args, err := decodeExprs(file, n.Arguments)
		if err != nil {
			return nil, err
		}
		return &EmitExpr{Pos: h.pos(file), Value: n.Value, Args: args}, nil
	}
	return nil, fmt.Errorf("unknown expression type %q", h.Type)
}
