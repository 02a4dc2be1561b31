package format

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlfront/pkg/core"
)

type none = struct{}

// Binding strengths, loosest first. A child whose strength is below the
// context it is printed in gets parentheses.
const (
	precLowest = iota
	precOr
	precAnd
	precNot
	precPredicate
	precAdditive
	precMultiplicative
	precUnary
	precPrimary
)

func (p *Printer) node(n core.Node, prec int) {
	core.Accept[none, int](n, p, prec)
}

// group runs body inside parentheses when strength binds looser than ctx.
func (p *Printer) group(strength, ctx int, body func()) none {
	if strength < ctx {
		p.write("(")
		body()
		p.write(")")
		return none{}
	}
	body()
	return none{}
}

// VisitNode prints the children of nodes without a dedicated rule.
func (p *Printer) VisitNode(n core.Node, ctx int) none {
	return core.VisitChildren[none, int](p, n, ctx)
}

// ---------- Literals ----------

func (p *Printer) VisitStringLiteral(n *core.StringLiteral, _ int) none {
	p.write(QuoteString(n.Value))
	return none{}
}

func (p *Printer) VisitLongLiteral(n *core.LongLiteral, _ int) none {
	p.write(strconv.FormatInt(n.Value, 10))
	return none{}
}

func (p *Printer) VisitDoubleLiteral(n *core.DoubleLiteral, ctx int) none {
	text := strconv.FormatFloat(n.Value, 'E', -1, 64)
	if strings.HasPrefix(text, "-") {
		return p.group(precUnary, ctx, func() { p.write(text) })
	}
	p.write(text)
	return none{}
}

func (p *Printer) VisitDecimalLiteral(n *core.DecimalLiteral, ctx int) none {
	text := n.Text()
	if p.dialect != nil && p.dialect.DecimalSuffix != "" {
		text = n.Digits() + p.dialect.DecimalSuffix
	}
	if strings.HasPrefix(text, "-") {
		return p.group(precUnary, ctx, func() { p.write(text) })
	}
	p.write(text)
	return none{}
}

func (p *Printer) VisitBooleanLiteral(n *core.BooleanLiteral, _ int) none {
	if n.Value {
		p.keyword("TRUE")
	} else {
		p.keyword("FALSE")
	}
	return none{}
}

func (p *Printer) VisitNullLiteral(*core.NullLiteral, int) none {
	p.keyword("NULL")
	return none{}
}

// ---------- Names and Calls ----------

func (p *Printer) VisitIdentifier(n *core.Identifier, _ int) none {
	p.identifier(n.Value, n.Delimited)
	return none{}
}

func (p *Printer) VisitDereferenceExpression(n *core.DereferenceExpression, _ int) none {
	p.node(n.Base, precPrimary)
	p.write(".")
	p.node(n.Field, precPrimary)
	return none{}
}

func (p *Printer) qualifiedName(name core.QualifiedName) {
	for i, part := range name.Parts {
		if i > 0 {
			p.write(".")
		}
		p.identifier(part.Value, part.Delimited)
	}
}

func (p *Printer) VisitFunctionCall(n *core.FunctionCall, _ int) none {
	p.qualifiedName(n.Name)
	p.write("(")
	if len(n.Arguments) == 0 && !n.Distinct && n.Name.Suffix() == "count" {
		p.write("*")
	}
	if n.Distinct {
		p.keyword("DISTINCT")
		p.space()
	}
	p.expressionList(n.Arguments)
	p.write(")")
	return none{}
}

func (p *Printer) VisitAnyValue(n *core.AnyValue, _ int) none {
	p.write("any_value(")
	p.node(n.Expression, precLowest)
	if n.IgnoreNulls {
		p.write(" ")
		p.keyword("IGNORE NULLS")
	}
	p.write(")")
	return none{}
}

func (p *Printer) VisitParameter(*core.Parameter, int) none {
	p.write("?")
	return none{}
}

func (p *Printer) VisitCast(n *core.Cast, _ int) none {
	if n.Safe {
		p.keyword("TRY_CAST")
	} else {
		p.keyword("CAST")
	}
	p.write("(")
	p.node(n.Expression, precLowest)
	p.space()
	p.keyword("AS")
	p.space()
	p.write(n.Type)
	p.write(")")
	return none{}
}

func (p *Printer) expressionList(exprs []core.Expression) {
	p.formatList(len(exprs), func(i int) { p.node(exprs[i], precLowest) }, ", ", false)
}

// ---------- Operators ----------

func (p *Printer) VisitArithmeticUnaryExpression(n *core.ArithmeticUnaryExpression, ctx int) none {
	return p.group(precUnary, ctx, func() {
		if n.Sign == core.Minus {
			p.write("-")
		} else {
			p.write("+")
		}
		p.node(n.Value, precPrimary)
	})
}

func (p *Printer) VisitArithmeticBinaryExpression(n *core.ArithmeticBinaryExpression, ctx int) none {
	strength := precAdditive
	if n.Operator == core.Multiply || n.Operator == core.Divide || n.Operator == core.Modulus {
		strength = precMultiplicative
	}
	return p.group(strength, ctx, func() {
		p.node(n.Left, strength)
		p.write(" " + n.Operator.Symbol() + " ")
		p.node(n.Right, strength+1)
	})
}

func (p *Printer) VisitComparisonExpression(n *core.ComparisonExpression, ctx int) none {
	return p.group(precPredicate, ctx, func() {
		p.node(n.Left, precAdditive)
		p.write(" " + n.Operator.Symbol() + " ")
		p.node(n.Right, precAdditive)
	})
}

func (p *Printer) VisitLogicalExpression(n *core.LogicalExpression, ctx int) none {
	strength := precAnd
	if n.Operator == core.Or {
		strength = precOr
	}
	return p.group(strength, ctx, func() {
		p.formatList(len(n.Terms), func(i int) { p.node(n.Terms[i], strength+1) }, " "+n.Operator.String()+" ", false)
	})
}

func (p *Printer) VisitNotExpression(n *core.NotExpression, ctx int) none {
	return p.group(precNot, ctx, func() {
		p.keyword("NOT")
		p.space()
		p.node(n.Value, precNot)
	})
}

// ---------- Predicates ----------

func (p *Printer) VisitIsNullPredicate(n *core.IsNullPredicate, ctx int) none {
	return p.group(precPredicate, ctx, func() {
		p.node(n.Value, precAdditive)
		p.space()
		p.keyword("IS NULL")
	})
}

func (p *Printer) VisitIsNotNullPredicate(n *core.IsNotNullPredicate, ctx int) none {
	return p.group(precPredicate, ctx, func() {
		p.node(n.Value, precAdditive)
		p.space()
		p.keyword("IS NOT NULL")
	})
}

func (p *Printer) VisitBetweenPredicate(n *core.BetweenPredicate, ctx int) none {
	return p.group(precPredicate, ctx, func() {
		p.node(n.Value, precAdditive)
		p.space()
		p.keyword("BETWEEN")
		p.space()
		p.node(n.Min, precAdditive)
		p.space()
		p.keyword("AND")
		p.space()
		p.node(n.Max, precAdditive)
	})
}

func (p *Printer) VisitInPredicate(n *core.InPredicate, ctx int) none {
	return p.group(precPredicate, ctx, func() {
		p.node(n.Value, precAdditive)
		p.space()
		p.keyword("IN")
		p.space()
		p.node(n.ValueList, precPrimary)
	})
}

func (p *Printer) VisitInListExpression(n *core.InListExpression, _ int) none {
	p.write("(")
	p.expressionList(n.Values)
	p.write(")")
	return none{}
}

func (p *Printer) VisitLikePredicate(n *core.LikePredicate, ctx int) none {
	return p.group(precPredicate, ctx, func() {
		p.node(n.Value, precAdditive)
		p.space()
		p.keyword("LIKE")
		p.space()
		p.node(n.Pattern, precAdditive)
		if n.Escape != nil {
			p.space()
			p.keyword("ESCAPE")
			p.space()
			p.node(n.Escape, precAdditive)
		}
	})
}

// ---------- Conditionals ----------

func (p *Printer) VisitWhenClause(n *core.WhenClause, _ int) none {
	p.keyword("WHEN")
	p.space()
	p.node(n.Operand, precLowest)
	p.space()
	p.keyword("THEN")
	p.space()
	p.node(n.Result, precLowest)
	return none{}
}

func (p *Printer) caseBody(whens []*core.WhenClause, def core.Expression) {
	for _, w := range whens {
		p.space()
		p.node(w, precLowest)
	}
	if def != nil {
		p.space()
		p.keyword("ELSE")
		p.space()
		p.node(def, precLowest)
	}
	p.space()
	p.keyword("END")
}

func (p *Printer) VisitSearchedCaseExpression(n *core.SearchedCaseExpression, _ int) none {
	p.keyword("CASE")
	p.caseBody(n.WhenClauses, n.DefaultValue)
	return none{}
}

func (p *Printer) VisitSimpleCaseExpression(n *core.SimpleCaseExpression, _ int) none {
	p.keyword("CASE")
	p.space()
	p.node(n.Operand, precLowest)
	p.caseBody(n.WhenClauses, n.DefaultValue)
	return none{}
}

func (p *Printer) VisitSubqueryExpression(n *core.SubqueryExpression, _ int) none {
	p.parenthesizedQuery(n.Query)
	return none{}
}
