package py

// Operator is a binary arithmetic, bitwise or shift operator.
type Operator int

const (
	Add Operator = iota
	Sub
	Mult
	Div
	FloorDiv
	Mod
	Pow
	LShift
	RShift
	BitOr
	BitXor
	BitAnd
)

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mult:
		return "*"
	case Div:
		return "/"
	case FloorDiv:
		return "//"
	case Mod:
		return "%"
	case Pow:
		return "**"
	case LShift:
		return "<<"
	case RShift:
		return ">>"
	case BitOr:
		return "|"
	case BitXor:
		return "^"
	case BitAnd:
		return "&"
	}
	return "?"
}

// UnaryOperator is a prefix operator.
type UnaryOperator int

const (
	USub UnaryOperator = iota
	UAdd
	Invert
	Not
)

func (op UnaryOperator) String() string {
	switch op {
	case USub:
		return "-"
	case UAdd:
		return "+"
	case Invert:
		return "~"
	case Not:
		return "not "
	}
	return "?"
}

// BoolOperator is a short-circuiting boolean operator.
type BoolOperator int

const (
	And BoolOperator = iota
	Or
)

func (op BoolOperator) String() string {
	if op == And {
		return "and"
	}
	return "or"
}

// CmpOp is one comparison operator of a chain.
type CmpOp int

const (
	Eq CmpOp = iota
	NotEq
	Lt
	LtE
	Gt
	GtE
)

func (op CmpOp) String() string {
	switch op {
	case Eq:
		return "=="
	case NotEq:
		return "!="
	case Lt:
		return "<"
	case LtE:
		return "<="
	case Gt:
		return ">"
	case GtE:
		return ">="
	}
	return "?"
}
