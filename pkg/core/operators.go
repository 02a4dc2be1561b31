package core

// ArithmeticOperator is a binary arithmetic operator.
type ArithmeticOperator int

// ArithmeticOperator values.
const (
	Add ArithmeticOperator = iota + 1
	Subtract
	Multiply
	Divide
	Modulus
)

// String returns the operator name.
func (o ArithmeticOperator) String() string {
	switch o {
	case Add:
		return "ADD"
	case Subtract:
		return "SUBTRACT"
	case Multiply:
		return "MULTIPLY"
	case Divide:
		return "DIVIDE"
	case Modulus:
		return "MODULUS"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the SQL spelling.
func (o ArithmeticOperator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Modulus:
		return "%"
	default:
		return "?"
	}
}

// Sign is the operator of a unary arithmetic expression.
type Sign int

// Sign values.
const (
	Plus Sign = iota + 1
	Minus
)

// String returns the sign name.
func (s Sign) String() string {
	switch s {
	case Plus:
		return "PLUS"
	case Minus:
		return "MINUS"
	default:
		return "UNKNOWN"
	}
}

// ComparisonOperator is a binary comparison operator.
type ComparisonOperator int

// ComparisonOperator values.
const (
	Equals ComparisonOperator = iota + 1
	NotEquals
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

// String returns the operator name.
func (o ComparisonOperator) String() string {
	switch o {
	case Equals:
		return "EQUAL"
	case NotEquals:
		return "NOT_EQUAL"
	case LessThan:
		return "LESS_THAN"
	case LessThanOrEqual:
		return "LESS_THAN_OR_EQUAL"
	case GreaterThan:
		return "GREATER_THAN"
	case GreaterThanOrEqual:
		return "GREATER_THAN_OR_EQUAL"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the canonical SQL spelling.
func (o ComparisonOperator) Symbol() string {
	switch o {
	case Equals:
		return "="
	case NotEquals:
		return "<>"
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	default:
		return "?"
	}
}

// ComparisonOperatorFromSymbol maps an operator token to its operator.
// Both != and <> mean NOT_EQUAL, and == is accepted for EQUAL.
func ComparisonOperatorFromSymbol(s string) (ComparisonOperator, bool) {
	switch s {
	case "=", "==":
		return Equals, true
	case "<>", "!=":
		return NotEquals, true
	case "<":
		return LessThan, true
	case "<=":
		return LessThanOrEqual, true
	case ">":
		return GreaterThan, true
	case ">=":
		return GreaterThanOrEqual, true
	default:
		return 0, false
	}
}

// LogicalOperator joins the terms of a LogicalExpression.
type LogicalOperator int

// LogicalOperator values.
const (
	And LogicalOperator = iota + 1
	Or
)

// String returns the SQL keyword.
func (o LogicalOperator) String() string {
	switch o {
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return "UNKNOWN"
	}
}

// Ordering is the direction of a sort key.
type Ordering int

// Ordering values. OrderingUnspecified means no ASC or DESC was written.
const (
	OrderingUnspecified Ordering = iota
	Ascending
	Descending
)

// String returns the ordering name.
func (o Ordering) String() string {
	switch o {
	case Ascending:
		return "ASCENDING"
	case Descending:
		return "DESCENDING"
	default:
		return "UNSPECIFIED"
	}
}

// NullOrdering places nulls in a sort.
type NullOrdering int

// NullOrdering values.
const (
	NullsUndefined NullOrdering = iota
	NullsFirst
	NullsLast
)

// String returns the null ordering name.
func (o NullOrdering) String() string {
	switch o {
	case NullsFirst:
		return "FIRST"
	case NullsLast:
		return "LAST"
	default:
		return "UNDEFINED"
	}
}

// JoinType is the kind of a Join. Implicit is the comma join of a FROM list.
type JoinType int

// JoinType values.
const (
	JoinImplicit JoinType = iota + 1
	JoinCross
	JoinInner
	JoinLeft
	JoinRight
	JoinFull
)

// String returns the SQL keyword, or "," for an implicit join.
func (t JoinType) String() string {
	switch t {
	case JoinImplicit:
		return ","
	case JoinCross:
		return "CROSS"
	case JoinInner:
		return "INNER"
	case JoinLeft:
		return "LEFT"
	case JoinRight:
		return "RIGHT"
	case JoinFull:
		return "FULL"
	default:
		return "UNKNOWN"
	}
}
