package transform

import "fable/internal/py"

// normalizeBody post-processes a translated statement list according to the
// syntactic slot it fills: dead statements are stripped and the result is
// always a syntactically valid non-empty block.
func normalizeBody(strategy ReturnStrategy, stmts []py.Stmt) []py.Stmt {
	out := stripDeadStatements(stmts)
	if strategy == NoBreak {
		// Fallthrough is already encoded structurally by the if/elif chain;
		// trailing break markers carry no control transfer.
		for len(out) > 0 {
			if _, ok := out[len(out)-1].(*py.Break); !ok {
				break
			}
			out = out[:len(out)-1]
		}
	}
	switch strategy {
	case Return:
		if passOnly(out) {
			return []py.Stmt{&py.Return{}}
		}
	default:
		if len(out) == 0 {
			return []py.Stmt{&py.Pass{}}
		}
	}
	return out
}

// stripDeadStatements drops expression statements whose value is trivially
// side-effect-free.
func stripDeadStatements(stmts []py.Stmt) []py.Stmt {
	out := make([]py.Stmt, 0, len(stmts))
	for _, stmt := range stmts {
		if es, ok := stmt.(*py.ExprStmt); ok {
			switch es.Value.(type) {
			case *py.Constant, *py.Name:
				continue
			}
		}
		out = append(out, stmt)
	}
	return out
}

func passOnly(stmts []py.Stmt) bool {
	for _, stmt := range stmts {
		if _, ok := stmt.(*py.Pass); !ok {
			return false
		}
	}
	return true
}
