package core

// Visitor is the required part of every visitor: the catch-all for variants the
// visitor has no method for.
//
// A visitor opts in to a variant by also implementing its per-variant interface,
// for example AnyValueVisitor. Accept falls back in this order:
// per-variant method, then LiteralVisitor, ExpressionVisitor, StatementVisitor or
// RelationVisitor where one applies, then VisitNode. Adding a variant never breaks
// an existing visitor.
type Visitor[R, C any] interface {
	VisitNode(n Node, ctx C) R
}

// LiteralVisitor handles every Literal without a per-variant method.
type LiteralVisitor[R, C any] interface {
	VisitLiteral(n Literal, ctx C) R
}

// ExpressionVisitor handles every Expression without a more specific method.
type ExpressionVisitor[R, C any] interface {
	VisitExpression(n Expression, ctx C) R
}

// StatementVisitor handles every Statement without a per-variant method.
type StatementVisitor[R, C any] interface {
	VisitStatement(n Statement, ctx C) R
}

// RelationVisitor handles every Relation without a per-variant method.
type RelationVisitor[R, C any] interface {
	VisitRelation(n Relation, ctx C) R
}

// StringLiteralVisitor handles *StringLiteral.
type StringLiteralVisitor[R, C any] interface {
	VisitStringLiteral(n *StringLiteral, ctx C) R
}

// LongLiteralVisitor handles *LongLiteral.
type LongLiteralVisitor[R, C any] interface {
	VisitLongLiteral(n *LongLiteral, ctx C) R
}

// DoubleLiteralVisitor handles *DoubleLiteral.
type DoubleLiteralVisitor[R, C any] interface {
	VisitDoubleLiteral(n *DoubleLiteral, ctx C) R
}

// DecimalLiteralVisitor handles *DecimalLiteral.
type DecimalLiteralVisitor[R, C any] interface {
	VisitDecimalLiteral(n *DecimalLiteral, ctx C) R
}

// BooleanLiteralVisitor handles *BooleanLiteral.
type BooleanLiteralVisitor[R, C any] interface {
	VisitBooleanLiteral(n *BooleanLiteral, ctx C) R
}

// NullLiteralVisitor handles *NullLiteral.
type NullLiteralVisitor[R, C any] interface {
	VisitNullLiteral(n *NullLiteral, ctx C) R
}

// IdentifierVisitor handles *Identifier.
type IdentifierVisitor[R, C any] interface {
	VisitIdentifier(n *Identifier, ctx C) R
}

// DereferenceExpressionVisitor handles *DereferenceExpression.
type DereferenceExpressionVisitor[R, C any] interface {
	VisitDereferenceExpression(n *DereferenceExpression, ctx C) R
}

// FunctionCallVisitor handles *FunctionCall.
type FunctionCallVisitor[R, C any] interface {
	VisitFunctionCall(n *FunctionCall, ctx C) R
}

// AnyValueVisitor handles *AnyValue.
type AnyValueVisitor[R, C any] interface {
	VisitAnyValue(n *AnyValue, ctx C) R
}

// ParameterVisitor handles *Parameter.
type ParameterVisitor[R, C any] interface {
	VisitParameter(n *Parameter, ctx C) R
}

// ArithmeticUnaryExpressionVisitor handles *ArithmeticUnaryExpression.
type ArithmeticUnaryExpressionVisitor[R, C any] interface {
	VisitArithmeticUnaryExpression(n *ArithmeticUnaryExpression, ctx C) R
}

// ArithmeticBinaryExpressionVisitor handles *ArithmeticBinaryExpression.
type ArithmeticBinaryExpressionVisitor[R, C any] interface {
	VisitArithmeticBinaryExpression(n *ArithmeticBinaryExpression, ctx C) R
}

// ComparisonExpressionVisitor handles *ComparisonExpression.
type ComparisonExpressionVisitor[R, C any] interface {
	VisitComparisonExpression(n *ComparisonExpression, ctx C) R
}

// LogicalExpressionVisitor handles *LogicalExpression.
type LogicalExpressionVisitor[R, C any] interface {
	VisitLogicalExpression(n *LogicalExpression, ctx C) R
}

// NotExpressionVisitor handles *NotExpression.
type NotExpressionVisitor[R, C any] interface {
	VisitNotExpression(n *NotExpression, ctx C) R
}

// IsNullPredicateVisitor handles *IsNullPredicate.
type IsNullPredicateVisitor[R, C any] interface {
	VisitIsNullPredicate(n *IsNullPredicate, ctx C) R
}

// IsNotNullPredicateVisitor handles *IsNotNullPredicate.
type IsNotNullPredicateVisitor[R, C any] interface {
	VisitIsNotNullPredicate(n *IsNotNullPredicate, ctx C) R
}

// BetweenPredicateVisitor handles *BetweenPredicate.
type BetweenPredicateVisitor[R, C any] interface {
	VisitBetweenPredicate(n *BetweenPredicate, ctx C) R
}

// InPredicateVisitor handles *InPredicate.
type InPredicateVisitor[R, C any] interface {
	VisitInPredicate(n *InPredicate, ctx C) R
}

// InListExpressionVisitor handles *InListExpression.
type InListExpressionVisitor[R, C any] interface {
	VisitInListExpression(n *InListExpression, ctx C) R
}

// LikePredicateVisitor handles *LikePredicate.
type LikePredicateVisitor[R, C any] interface {
	VisitLikePredicate(n *LikePredicate, ctx C) R
}

// CastVisitor handles *Cast.
type CastVisitor[R, C any] interface {
	VisitCast(n *Cast, ctx C) R
}

// WhenClauseVisitor handles *WhenClause.
type WhenClauseVisitor[R, C any] interface {
	VisitWhenClause(n *WhenClause, ctx C) R
}

// SearchedCaseExpressionVisitor handles *SearchedCaseExpression.
type SearchedCaseExpressionVisitor[R, C any] interface {
	VisitSearchedCaseExpression(n *SearchedCaseExpression, ctx C) R
}

// SimpleCaseExpressionVisitor handles *SimpleCaseExpression.
type SimpleCaseExpressionVisitor[R, C any] interface {
	VisitSimpleCaseExpression(n *SimpleCaseExpression, ctx C) R
}

// SubqueryExpressionVisitor handles *SubqueryExpression.
type SubqueryExpressionVisitor[R, C any] interface {
	VisitSubqueryExpression(n *SubqueryExpression, ctx C) R
}

// ExplainVisitor handles *Explain.
type ExplainVisitor[R, C any] interface {
	VisitExplain(n *Explain, ctx C) R
}

// QueryVisitor handles *Query.
type QueryVisitor[R, C any] interface {
	VisitQuery(n *Query, ctx C) R
}

// QuerySpecificationVisitor handles *QuerySpecification.
type QuerySpecificationVisitor[R, C any] interface {
	VisitQuerySpecification(n *QuerySpecification, ctx C) R
}

// SelectVisitor handles *Select.
type SelectVisitor[R, C any] interface {
	VisitSelect(n *Select, ctx C) R
}

// SingleColumnVisitor handles *SingleColumn.
type SingleColumnVisitor[R, C any] interface {
	VisitSingleColumn(n *SingleColumn, ctx C) R
}

// AllColumnsVisitor handles *AllColumns.
type AllColumnsVisitor[R, C any] interface {
	VisitAllColumns(n *AllColumns, ctx C) R
}

// SortItemVisitor handles *SortItem.
type SortItemVisitor[R, C any] interface {
	VisitSortItem(n *SortItem, ctx C) R
}

// LimitVisitor handles *Limit.
type LimitVisitor[R, C any] interface {
	VisitLimit(n *Limit, ctx C) R
}

// TableVisitor handles *Table.
type TableVisitor[R, C any] interface {
	VisitTable(n *Table, ctx C) R
}

// AliasedRelationVisitor handles *AliasedRelation.
type AliasedRelationVisitor[R, C any] interface {
	VisitAliasedRelation(n *AliasedRelation, ctx C) R
}

// TableSubqueryVisitor handles *TableSubquery.
type TableSubqueryVisitor[R, C any] interface {
	VisitTableSubquery(n *TableSubquery, ctx C) R
}

// JoinVisitor handles *Join.
type JoinVisitor[R, C any] interface {
	VisitJoin(n *Join, ctx C) R
}

// Accept dispatches n to the most specific method v implements.
func Accept[R, C any](n Node, v Visitor[R, C], ctx C) R {
	switch n := n.(type) {
	case *StringLiteral:
		if vv, ok := v.(StringLiteralVisitor[R, C]); ok {
			return vv.VisitStringLiteral(n, ctx)
		}
	case *LongLiteral:
		if vv, ok := v.(LongLiteralVisitor[R, C]); ok {
			return vv.VisitLongLiteral(n, ctx)
		}
	case *DoubleLiteral:
		if vv, ok := v.(DoubleLiteralVisitor[R, C]); ok {
			return vv.VisitDoubleLiteral(n, ctx)
		}
	case *DecimalLiteral:
		if vv, ok := v.(DecimalLiteralVisitor[R, C]); ok {
			return vv.VisitDecimalLiteral(n, ctx)
		}
	case *BooleanLiteral:
		if vv, ok := v.(BooleanLiteralVisitor[R, C]); ok {
			return vv.VisitBooleanLiteral(n, ctx)
		}
	case *NullLiteral:
		if vv, ok := v.(NullLiteralVisitor[R, C]); ok {
			return vv.VisitNullLiteral(n, ctx)
		}
	case *Identifier:
		if vv, ok := v.(IdentifierVisitor[R, C]); ok {
			return vv.VisitIdentifier(n, ctx)
		}
	case *DereferenceExpression:
		if vv, ok := v.(DereferenceExpressionVisitor[R, C]); ok {
			return vv.VisitDereferenceExpression(n, ctx)
		}
	case *FunctionCall:
		if vv, ok := v.(FunctionCallVisitor[R, C]); ok {
			return vv.VisitFunctionCall(n, ctx)
		}
	case *AnyValue:
		if vv, ok := v.(AnyValueVisitor[R, C]); ok {
			return vv.VisitAnyValue(n, ctx)
		}
	case *Parameter:
		if vv, ok := v.(ParameterVisitor[R, C]); ok {
			return vv.VisitParameter(n, ctx)
		}
	case *ArithmeticUnaryExpression:
		if vv, ok := v.(ArithmeticUnaryExpressionVisitor[R, C]); ok {
			return vv.VisitArithmeticUnaryExpression(n, ctx)
		}
	case *ArithmeticBinaryExpression:
		if vv, ok := v.(ArithmeticBinaryExpressionVisitor[R, C]); ok {
			return vv.VisitArithmeticBinaryExpression(n, ctx)
		}
	case *ComparisonExpression:
		if vv, ok := v.(ComparisonExpressionVisitor[R, C]); ok {
			return vv.VisitComparisonExpression(n, ctx)
		}
	case *LogicalExpression:
		if vv, ok := v.(LogicalExpressionVisitor[R, C]); ok {
			return vv.VisitLogicalExpression(n, ctx)
		}
	case *NotExpression:
		if vv, ok := v.(NotExpressionVisitor[R, C]); ok {
			return vv.VisitNotExpression(n, ctx)
		}
	case *IsNullPredicate:
		if vv, ok := v.(IsNullPredicateVisitor[R, C]); ok {
			return vv.VisitIsNullPredicate(n, ctx)
		}
	case *IsNotNullPredicate:
		if vv, ok := v.(IsNotNullPredicateVisitor[R, C]); ok {
			return vv.VisitIsNotNullPredicate(n, ctx)
		}
	case *BetweenPredicate:
		if vv, ok := v.(BetweenPredicateVisitor[R, C]); ok {
			return vv.VisitBetweenPredicate(n, ctx)
		}
	case *InPredicate:
		if vv, ok := v.(InPredicateVisitor[R, C]); ok {
			return vv.VisitInPredicate(n, ctx)
		}
	case *InListExpression:
		if vv, ok := v.(InListExpressionVisitor[R, C]); ok {
			return vv.VisitInListExpression(n, ctx)
		}
	case *LikePredicate:
		if vv, ok := v.(LikePredicateVisitor[R, C]); ok {
			return vv.VisitLikePredicate(n, ctx)
		}
	case *Cast:
		if vv, ok := v.(CastVisitor[R, C]); ok {
			return vv.VisitCast(n, ctx)
		}
	case *WhenClause:
		if vv, ok := v.(WhenClauseVisitor[R, C]); ok {
			return vv.VisitWhenClause(n, ctx)
		}
	case *SearchedCaseExpression:
		if vv, ok := v.(SearchedCaseExpressionVisitor[R, C]); ok {
			return vv.VisitSearchedCaseExpression(n, ctx)
		}
	case *SimpleCaseExpression:
		if vv, ok := v.(SimpleCaseExpressionVisitor[R, C]); ok {
			return vv.VisitSimpleCaseExpression(n, ctx)
		}
	case *SubqueryExpression:
		if vv, ok := v.(SubqueryExpressionVisitor[R, C]); ok {
			return vv.VisitSubqueryExpression(n, ctx)
		}
	case *Explain:
		if vv, ok := v.(ExplainVisitor[R, C]); ok {
			return vv.VisitExplain(n, ctx)
		}
	case *Query:
		if vv, ok := v.(QueryVisitor[R, C]); ok {
			return vv.VisitQuery(n, ctx)
		}
	case *QuerySpecification:
		if vv, ok := v.(QuerySpecificationVisitor[R, C]); ok {
			return vv.VisitQuerySpecification(n, ctx)
		}
	case *Select:
		if vv, ok := v.(SelectVisitor[R, C]); ok {
			return vv.VisitSelect(n, ctx)
		}
	case *SingleColumn:
		if vv, ok := v.(SingleColumnVisitor[R, C]); ok {
			return vv.VisitSingleColumn(n, ctx)
		}
	case *AllColumns:
		if vv, ok := v.(AllColumnsVisitor[R, C]); ok {
			return vv.VisitAllColumns(n, ctx)
		}
	case *SortItem:
		if vv, ok := v.(SortItemVisitor[R, C]); ok {
			return vv.VisitSortItem(n, ctx)
		}
	case *Limit:
		if vv, ok := v.(LimitVisitor[R, C]); ok {
			return vv.VisitLimit(n, ctx)
		}
	case *Table:
		if vv, ok := v.(TableVisitor[R, C]); ok {
			return vv.VisitTable(n, ctx)
		}
	case *AliasedRelation:
		if vv, ok := v.(AliasedRelationVisitor[R, C]); ok {
			return vv.VisitAliasedRelation(n, ctx)
		}
	case *TableSubquery:
		if vv, ok := v.(TableSubqueryVisitor[R, C]); ok {
			return vv.VisitTableSubquery(n, ctx)
		}
	case *Join:
		if vv, ok := v.(JoinVisitor[R, C]); ok {
			return vv.VisitJoin(n, ctx)
		}
	}
	return acceptFamily(n, v, ctx)
}

func acceptFamily[R, C any](n Node, v Visitor[R, C], ctx C) R {
	if lit, ok := n.(Literal); ok {
		if vv, ok := v.(LiteralVisitor[R, C]); ok {
			return vv.VisitLiteral(lit, ctx)
		}
	}
	if expr, ok := n.(Expression); ok {
		if vv, ok := v.(ExpressionVisitor[R, C]); ok {
			return vv.VisitExpression(expr, ctx)
		}
	}
	if stmt, ok := n.(Statement); ok {
		if vv, ok := v.(StatementVisitor[R, C]); ok {
			return vv.VisitStatement(stmt, ctx)
		}
	}
	if rel, ok := n.(Relation); ok {
		if vv, ok := v.(RelationVisitor[R, C]); ok {
			return vv.VisitRelation(rel, ctx)
		}
	}
	return v.VisitNode(n, ctx)
}

// VisitChildren accepts v on each child of n in order and returns the last
// result, or the zero R for a leaf. It is the default traversal for VisitNode.
func VisitChildren[R, C any](v Visitor[R, C], n Node, ctx C) R {
	var result R
	for _, child := range n.Children() {
		result = Accept(child, v, ctx)
	}
	return result
}

// DefaultTraversal is a Visitor that does nothing but recurse into
// Children(). It returns the zero R. Custom visitors that embed it must
// still recurse through VisitChildren themselves, since Go does not route
// the embedded VisitNode back to the outer type.
type DefaultTraversal[R, C any] struct{}

// VisitNode recurses into n's children.
func (d DefaultTraversal[R, C]) VisitNode(n Node, ctx C) R {
	return VisitChildren[R, C](d, n, ctx)
}

var _ Visitor[struct{}, struct{}] = DefaultTraversal[struct{}, struct{}]{}
