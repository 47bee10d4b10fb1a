package py

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer provides pretty-printing for the target IR. The output is readable
// Python-shaped text for tests, debugging and the CLI; it does not track
// line/column mappings.
type Printer struct {
	indent int
	output strings.Builder
}

// NewPrinter creates a new target IR printer
func NewPrinter() *Printer {
	return &Printer{indent: 0}
}

// Print returns the string representation of a translated module
func Print(module *Module) string {
	p := NewPrinter()
	for _, stmt := range module.Body {
		p.printStmt(stmt)
	}
	return p.output.String()
}

// PrintStmts prints a bare statement list, one statement per line
func PrintStmts(stmts []Stmt) string {
	p := NewPrinter()
	for _, stmt := range stmts {
		p.printStmt(stmt)
	}
	return p.output.String()
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("    ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printBody(stmts []Stmt) {
	p.indent++
	if len(stmts) == 0 {
		p.writeLine("pass")
	}
	for _, stmt := range stmts {
		p.printStmt(stmt)
	}
	p.indent--
}

func (p *Printer) printStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *Assign:
		p.writeLine("%s = %s", p.exprString(s.Target, false), p.exprString(s.Value, false))
	case *ExprStmt:
		p.writeLine("%s", p.exprString(s.Value, false))
	case *Return:
		if s.Value == nil {
			p.writeLine("return")
		} else {
			p.writeLine("return %s", p.exprString(s.Value, false))
		}
	case *Pass:
		p.writeLine("pass")
	case *Break:
		p.writeLine("break")
	case *Continue:
		p.writeLine("continue")
	case *If:
		p.printIf(s, "if")
	case *While:
		p.writeLine("while %s:", p.exprString(s.Test, false))
		p.printBody(s.Body)
	case *For:
		p.writeLine("for %s in %s:", p.exprString(s.Target, false), p.exprString(s.Iter, false))
		p.printBody(s.Body)
	case *Try:
		p.writeLine("try:")
		p.printBody(s.Body)
		for _, h := range s.Handlers {
			switch {
			case h.Type != nil && h.Name != "":
				p.writeLine("except %s as %s:", p.exprString(h.Type, false), h.Name)
			case h.Type != nil:
				p.writeLine("except %s:", p.exprString(h.Type, false))
			default:
				p.writeLine("except:")
			}
			p.printBody(h.Body)
		}
		if len(s.Finalbody) > 0 {
			p.writeLine("finally:")
			p.printBody(s.Finalbody)
		}
	case *FunctionDef:
		p.writeLine("def %s(%s):", s.Name, p.argsString(s.Args))
		p.printBody(s.Body)
	case *ClassDef:
		if len(s.Bases) > 0 {
			bases := make([]string, len(s.Bases))
			for i, b := range s.Bases {
				bases[i] = p.exprString(b, false)
			}
			p.writeLine("class %s(%s):", s.Name, strings.Join(bases, ", "))
		} else {
			p.writeLine("class %s:", s.Name)
		}
		p.printBody(s.Body)
	case *Import:
		p.writeLine("import %s", aliasesString(s.Names))
	case *ImportFrom:
		p.writeLine("from %s import %s", s.Module, aliasesString(s.Names))
	default:
		p.writeLine("<unknown statement %T>", stmt)
	}
}

// printIf collapses a single-if else branch into elif
func (p *Printer) printIf(s *If, keyword string) {
	p.writeLine("%s %s:", keyword, p.exprString(s.Test, false))
	p.printBody(s.Body)
	if len(s.Orelse) == 0 {
		return
	}
	if len(s.Orelse) == 1 {
		if chained, ok := s.Orelse[0].(*If); ok {
			p.printIf(chained, "elif")
			return
		}
	}
	p.writeLine("else:")
	p.printBody(s.Orelse)
}

func aliasesString(names []*Alias) string {
	parts := make([]string, len(names))
	for i, a := range names {
		if a.AsName != "" && a.AsName != a.Name {
			parts[i] = fmt.Sprintf("%s as %s", a.Name, a.AsName)
		} else {
			parts[i] = a.Name
		}
	}
	return strings.Join(parts, ", ")
}

func (p *Printer) argsString(args *Arguments) string {
	if args == nil {
		return ""
	}
	var parts []string
	for _, a := range args.Args {
		if a.Default != nil {
			parts = append(parts, fmt.Sprintf("%s=%s", a.Name, p.exprString(a.Default, false)))
		} else {
			parts = append(parts, a.Name)
		}
	}
	if args.Vararg != nil {
		parts = append(parts, "*"+args.Vararg.Name)
	}
	return strings.Join(parts, ", ")
}

// exprString renders an expression; nested compound expressions are
// parenthesized so the printed text never depends on precedence rules.
func (p *Printer) exprString(expr Expr, nested bool) string {
	switch e := expr.(type) {
	case *Constant:
		return constantString(e.Value)
	case *Name:
		return e.Id
	case *Attribute:
		return fmt.Sprintf("%s.%s", p.exprString(e.Value, true), e.Attr)
	case *Subscript:
		return fmt.Sprintf("%s[%s]", p.exprString(e.Value, true), p.exprString(e.Index, false))
	case *Call:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = p.exprString(a, false)
		}
		return fmt.Sprintf("%s(%s)", p.exprString(e.Func, true), strings.Join(args, ", "))
	case *BinOp:
		return p.wrap(nested, fmt.Sprintf("%s %s %s",
			p.exprString(e.Left, true), e.Op, p.exprString(e.Right, true)))
	case *UnaryOp:
		return fmt.Sprintf("%s%s", e.Op, p.exprString(e.Operand, true))
	case *BoolOp:
		parts := make([]string, len(e.Values))
		for i, v := range e.Values {
			parts[i] = p.exprString(v, true)
		}
		return p.wrap(nested, strings.Join(parts, fmt.Sprintf(" %s ", e.Op)))
	case *Compare:
		var sb strings.Builder
		sb.WriteString(p.exprString(e.Left, true))
		for i, op := range e.Ops {
			sb.WriteString(fmt.Sprintf(" %s %s", op, p.exprString(e.Comparators[i], true)))
		}
		return p.wrap(nested, sb.String())
	case *Tuple:
		parts := make([]string, len(e.Elts))
		for i, el := range e.Elts {
			parts[i] = p.exprString(el, false)
		}
		if len(parts) == 1 {
			return fmt.Sprintf("(%s,)", parts[0])
		}
		return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
	case *Dict:
		parts := make([]string, len(e.Keys))
		for i := range e.Keys {
			parts[i] = fmt.Sprintf("%s: %s",
				p.exprString(e.Keys[i], false), p.exprString(e.Values[i], false))
		}
		return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
	case *Lambda:
		return p.wrap(nested, fmt.Sprintf("lambda %s: %s",
			p.argsString(e.Args), p.exprString(e.Body, false)))
	case *IfExp:
		return p.wrap(nested, fmt.Sprintf("%s if %s else %s",
			p.exprString(e.Body, true), p.exprString(e.Test, true), p.exprString(e.Orelse, true)))
	}
	return fmt.Sprintf("<unknown expression %T>", expr)
}

func (p *Printer) wrap(nested bool, s string) string {
	if nested {
		return "(" + s + ")"
	}
	return s
}

func constantString(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case string:
		return strconv.Quote(v)
	}
	return fmt.Sprintf("%v", value)
}
