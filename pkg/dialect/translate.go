package dialect

import (
	"strings"

	"github.com/leapstack-labs/sqlfront/pkg/core"
)

// ---------- Shared Translation Rules ----------

// ArithmeticOperator maps an operator token to its operator.
func ArithmeticOperator(symbol string) (core.ArithmeticOperator, bool) {
	switch symbol {
	case "+":
		return core.Add, true
	case "-":
		return core.Subtract, true
	case "*":
		return core.Multiply, true
	case "/":
		return core.Divide, true
	case "%":
		return core.Modulus, true
	default:
		return 0, false
	}
}

// Arithmetic builds left op right. The || operator becomes concat(left, right).
func Arithmetic(base core.BaseNode, symbol string, left, right core.Expression) (core.Expression, bool) {
	if symbol == "||" {
		return &core.FunctionCall{
			BaseNode:  base,
			Name:      core.NewQualifiedName("concat"),
			Arguments: []core.Expression{left, right},
		}, true
	}
	op, ok := ArithmeticOperator(symbol)
	if !ok {
		return nil, false
	}
	return &core.ArithmeticBinaryExpression{BaseNode: base, Operator: op, Left: left, Right: right}, true
}

// Logical joins terms with op. A single term is returned unchanged.
func Logical(base core.BaseNode, op core.LogicalOperator, terms []core.Expression) core.Expression {
	if len(terms) == 1 {
		return terms[0]
	}
	return &core.LogicalExpression{BaseNode: base, Operator: op, Terms: terms}
}

// Negate wraps expr in NOT when negated is set.
func Negate(base core.BaseNode, negated bool, expr core.Expression) core.Expression {
	if !negated {
		return expr
	}
	return &core.NotExpression{BaseNode: base, Value: expr}
}

// SortOrdering maps ASC or DESC, case-insensitively. Empty means unspecified.
func SortOrdering(keyword string) core.Ordering {
	switch strings.ToUpper(keyword) {
	case "ASC":
		return core.Ascending
	case "DESC":
		return core.Descending
	default:
		return core.OrderingUnspecified
	}
}

// NullOrdering maps FIRST or LAST, case-insensitively. Empty means undefined.
func NullOrdering(keyword string) core.NullOrdering {
	switch strings.ToUpper(keyword) {
	case "FIRST":
		return core.NullsFirst
	case "LAST":
		return core.NullsLast
	default:
		return core.NullsUndefined
	}
}

// JoinType maps the keyword before JOIN. A bare JOIN is an inner join.
func JoinType(keyword string) core.JoinType {
	switch strings.ToUpper(keyword) {
	case "CROSS":
		return core.JoinCross
	case "LEFT":
		return core.JoinLeft
	case "RIGHT":
		return core.JoinRight
	case "FULL":
		return core.JoinFull
	default:
		return core.JoinInner
	}
}

// ImplicitJoin folds a comma-separated FROM list left to right.
func ImplicitJoin(relations []core.Relation) core.Relation {
	if len(relations) == 0 {
		return nil
	}
	result := relations[0]
	for _, r := range relations[1:] {
		var base core.BaseNode
		if loc, ok := r.Location(); ok {
			base = core.At(loc)
		}
		result = &core.Join{BaseNode: base, Type: core.JoinImplicit, Left: result, Right: r}
	}
	return result
}

// Dereference turns a dotted column path a.b.c into nested DereferenceExpressions,
// each located at the start of the path.
func Dereference(parts []*core.Identifier) core.Expression {
	var result core.Expression = parts[0]
	for _, field := range parts[1:] {
		result = &core.DereferenceExpression{BaseNode: parts[0].BaseNode, Base: result, Field: field}
	}
	return result
}

// AnyValueFunction reports whether a plain function call of name should
// translate to AnyValue. arbitrary is the older spelling.
func AnyValueFunction(name core.QualifiedName) bool {
	if len(name.Parts) != 1 || name.Parts[0].Delimited {
		return false
	}
	switch name.Suffix() {
	case "any_value", "arbitrary":
		return true
	default:
		return false
	}
}
