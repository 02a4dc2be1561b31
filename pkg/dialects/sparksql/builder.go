package sparksql

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/dialect"
)

// AstBuilder translates Spark SQL parse trees into canonical AST nodes.
//
// The builder owns the positional parameter counter, so it is not reentrant.
// Create one per parse.
type AstBuilder struct {
	options           core.ParsingOptions
	parameterPosition int
}

// NewAstBuilder returns a builder for one parse.
func NewAstBuilder(opts core.ParsingOptions) *AstBuilder {
	return &AstBuilder{options: opts}
}

// BuildStatement unwraps the single-statement production.
func (b *AstBuilder) BuildStatement(tree *SingleStatement) (core.Statement, error) {
	if err := b.options.Validate(); err != nil {
		return nil, err
	}
	if tree == nil || tree.Statement == nil {
		return nil, core.Errorf(core.UnsupportedConstruct, nil, core.ErrMsgNoRule, "empty statement")
	}
	return b.statement(tree.Statement)
}

// BuildExpression unwraps the single-expression production. A named
// expression (x AS y) has no standalone canonical form and is rejected.
func (b *AstBuilder) BuildExpression(tree *SingleExpression) (core.Expression, error) {
	if err := b.options.Validate(); err != nil {
		return nil, err
	}
	if tree == nil || tree.Expression == nil {
		return nil, core.Errorf(core.UnsupportedConstruct, nil, core.ErrMsgNoRule, "empty expression")
	}
	if tree.Alias != nil {
		return nil, dialect.Unsupported(tree.Alias.Pos, "aliased standalone expression")
	}
	return b.expression(tree.Expression)
}

// ---------- Statements ----------

func (b *AstBuilder) statement(s *Statement) (core.Statement, error) {
	if s.Explain != nil {
		inner, err := b.statement(s.Explain)
		if err != nil {
			return nil, err
		}
		return &core.Explain{BaseNode: dialect.At(s.Pos), Statement: inner}, nil
	}
	if s.Query != nil {
		return b.query(s.Query)
	}
	return nil, dialect.Unsupported(s.Pos, "statement")
}

func (b *AstBuilder) query(q *Query) (*core.Query, error) {
	var body core.QueryBody
	switch {
	case q.Body.Spec != nil:
		spec, err := b.querySpecification(q.Body.Spec)
		if err != nil {
			return nil, err
		}
		body = spec
	case q.Body.Subquery != nil:
		inner, err := b.query(q.Body.Subquery)
		if err != nil {
			return nil, err
		}
		body = &core.TableSubquery{BaseNode: dialect.At(q.Body.Pos), Query: inner}
	default:
		return nil, dialect.Unsupported(q.Body.Pos, "query body")
	}

	result := &core.Query{BaseNode: dialect.At(q.Pos), Body: body}
	for _, item := range q.OrderBy {
		sortItem, err := b.sortItem(item)
		if err != nil {
			return nil, err
		}
		result.OrderBy = append(result.OrderBy, sortItem)
	}
	if q.Limit != nil {
		limit, err := b.limit(q.Limit)
		if err != nil {
			return nil, err
		}
		result.Limit = limit
	}
	return result, nil
}

func (b *AstBuilder) sortItem(item *SortItem) (*core.SortItem, error) {
	key, err := b.expression(item.Key)
	if err != nil {
		return nil, err
	}
	return &core.SortItem{
		BaseNode:     dialect.At(item.Pos),
		SortKey:      key,
		Ordering:     dialect.SortOrdering(item.Direction),
		NullOrdering: dialect.NullOrdering(item.Nulls),
	}, nil
}

func (b *AstBuilder) limit(l *Limit) (*core.Limit, error) {
	base := dialect.At(l.Pos)
	if l.All {
		return &core.Limit{BaseNode: base}, nil
	}
	count, err := dialect.RowCount(*l.Count, l.Pos)
	if err != nil {
		return nil, err
	}
	return &core.Limit{BaseNode: base, RowCount: count}, nil
}

func (b *AstBuilder) querySpecification(s *QuerySpecification) (*core.QuerySpecification, error) {
	sel := &core.Select{BaseNode: dialect.At(s.Pos), Distinct: s.Distinct}
	for _, item := range s.Items {
		si, err := b.selectItem(item)
		if err != nil {
			return nil, err
		}
		sel.Items = append(sel.Items, si)
	}
	result := &core.QuerySpecification{BaseNode: dialect.At(s.Pos), Select: sel}

	relations := make([]core.Relation, 0, len(s.From))
	for _, r := range s.From {
		rel, err := b.relation(r)
		if err != nil {
			return nil, err
		}
		relations = append(relations, rel)
	}
	result.From = dialect.ImplicitJoin(relations)

	var err error
	if s.Where != nil {
		if result.Where, err = b.expression(s.Where); err != nil {
			return nil, err
		}
	}
	if result.GroupBy, err = b.expressions(s.GroupBy); err != nil {
		return nil, err
	}
	if s.Having != nil {
		if result.Having, err = b.expression(s.Having); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (b *AstBuilder) selectItem(item *SelectItem) (core.SelectItem, error) {
	if item.Star != nil {
		all := &core.AllColumns{BaseNode: dialect.At(item.Pos)}
		if len(item.Star.Qualifier) > 0 {
			parts, err := b.identifiers(item.Star.Qualifier)
			if err != nil {
				return nil, err
			}
			all.Target = dialect.Dereference(parts)
		}
		return all, nil
	}
	if item.Column == nil {
		return nil, dialect.Unsupported(item.Pos, "select item")
	}
	expr, err := b.expression(item.Column.Expression)
	if err != nil {
		return nil, err
	}
	col := &core.SingleColumn{BaseNode: dialect.At(item.Pos), Expression: expr}
	if item.Column.Alias != nil {
		if col.Alias, err = b.identifier(item.Column.Alias); err != nil {
			return nil, err
		}
	}
	return col, nil
}

// ---------- Relations ----------

func (b *AstBuilder) relation(r *Relation) (core.Relation, error) {
	result, err := b.relationPrimary(r.Left)
	if err != nil {
		return nil, err
	}
	for _, j := range r.Joins {
		right, err := b.relationPrimary(j.Right)
		if err != nil {
			return nil, err
		}
		join := &core.Join{BaseNode: dialect.At(j.Pos), Type: dialect.JoinType(j.Type), Left: result, Right: right}
		switch {
		case j.Condition != nil && join.Type == core.JoinCross:
			return nil, dialect.Unsupported(j.Pos, "CROSS JOIN with ON")
		case j.Condition != nil:
			if join.Criteria, err = b.expression(j.Condition); err != nil {
				return nil, err
			}
		case join.Type != core.JoinCross:
			return nil, dialect.Unsupported(j.Pos, join.Type.String()+" JOIN without ON")
		}
		result = join
	}
	return result, nil
}

func (b *AstBuilder) relationPrimary(r *RelationPrimary) (core.Relation, error) {
	base := dialect.At(r.Pos)
	var rel core.Relation
	if r.Subquery != nil {
		q, err := b.query(r.Subquery)
		if err != nil {
			return nil, err
		}
		rel = &core.TableSubquery{BaseNode: base, Query: q}
	} else {
		parts, err := b.identifiers(r.Table.Parts)
		if err != nil {
			return nil, err
		}
		rel = &core.Table{BaseNode: base, Name: core.QualifiedName{Parts: parts}}
	}
	if r.Alias == nil {
		return rel, nil
	}
	alias, err := b.identifier(r.Alias)
	if err != nil {
		return nil, err
	}
	return &core.AliasedRelation{BaseNode: base, Relation: rel, Alias: alias}, nil
}

// ---------- Expressions ----------

func (b *AstBuilder) expressions(list []*Expression) ([]core.Expression, error) {
	if len(list) == 0 {
		return nil, nil
	}
	out := make([]core.Expression, 0, len(list))
	for _, e := range list {
		expr, err := b.expression(e)
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

func (b *AstBuilder) expression(e *Expression) (core.Expression, error) {
	terms := make([]core.Expression, 0, 1+len(e.Right))
	for _, a := range append([]*AndExpression{e.Left}, e.Right...) {
		term, err := b.andExpression(a)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return dialect.Logical(dialect.At(e.Pos), core.Or, terms), nil
}

func (b *AstBuilder) andExpression(a *AndExpression) (core.Expression, error) {
	terms := make([]core.Expression, 0, 1+len(a.Right))
	for _, n := range append([]*NotExpression{a.Left}, a.Right...) {
		term, err := b.notExpression(n)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return dialect.Logical(dialect.At(a.Pos), core.And, terms), nil
}

func (b *AstBuilder) notExpression(n *NotExpression) (core.Expression, error) {
	if n.Not != nil {
		inner, err := b.notExpression(n.Not)
		if err != nil {
			return nil, err
		}
		return &core.NotExpression{BaseNode: dialect.At(n.Pos), Value: inner}, nil
	}
	if n.Predicate == nil {
		return nil, dialect.Unsupported(n.Pos, "boolean expression")
	}
	return b.predicate(n.Predicate)
}

func (b *AstBuilder) predicate(p *Predicate) (core.Expression, error) {
	value, err := b.valueExpression(p.Value)
	if err != nil {
		return nil, err
	}
	switch {
	case p.Comparison != nil:
		return b.comparison(value, p.Comparison)
	case p.Between != nil:
		return b.between(value, p.Between)
	case p.In != nil:
		return b.in(value, p.In)
	case p.Like != nil:
		return b.like(value, p.Like)
	case p.IsNull != nil:
		base := dialect.At(p.IsNull.Pos)
		if p.IsNull.Not {
			return &core.IsNotNullPredicate{BaseNode: base, Value: value}, nil
		}
		return &core.IsNullPredicate{BaseNode: base, Value: value}, nil
	default:
		return value, nil
	}
}

func (b *AstBuilder) comparison(left core.Expression, c *Comparison) (core.Expression, error) {
	right, err := b.valueExpression(c.Right)
	if err != nil {
		return nil, err
	}
	op, ok := core.ComparisonOperatorFromSymbol(c.Operator)
	if !ok {
		return nil, dialect.Unsupported(c.Pos, "operator "+c.Operator)
	}
	return &core.ComparisonExpression{BaseNode: dialect.At(c.Pos), Operator: op, Left: left, Right: right}, nil
}

func (b *AstBuilder) between(value core.Expression, p *Between) (core.Expression, error) {
	lower, err := b.valueExpression(p.Lower)
	if err != nil {
		return nil, err
	}
	upper, err := b.valueExpression(p.Upper)
	if err != nil {
		return nil, err
	}
	base := dialect.At(p.Pos)
	return dialect.Negate(base, p.Not, &core.BetweenPredicate{BaseNode: base, Value: value, Min: lower, Max: upper}), nil
}

func (b *AstBuilder) in(value core.Expression, p *In) (core.Expression, error) {
	base := dialect.At(p.Pos)
	var list core.Expression
	if p.Subquery != nil {
		q, err := b.query(p.Subquery)
		if err != nil {
			return nil, err
		}
		list = &core.SubqueryExpression{BaseNode: base, Query: q}
	} else {
		values, err := b.expressions(p.Values)
		if err != nil {
			return nil, err
		}
		list = &core.InListExpression{BaseNode: base, Values: values}
	}
	return dialect.Negate(base, p.Not, &core.InPredicate{BaseNode: base, Value: value, ValueList: list}), nil
}

func (b *AstBuilder) like(value core.Expression, p *Like) (core.Expression, error) {
	pattern, err := b.valueExpression(p.Pattern)
	if err != nil {
		return nil, err
	}
	base := dialect.At(p.Pos)
	like := &core.LikePredicate{BaseNode: base, Value: value, Pattern: pattern}
	if p.Escape != nil {
		escape, err := b.stringLiteral(*p.Escape, base)
		if err != nil {
			return nil, err
		}
		like.Escape = escape
	}
	return dialect.Negate(base, p.Not, like), nil
}

func (b *AstBuilder) valueExpression(v *ValueExpression) (core.Expression, error) {
	result, err := b.term(v.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range v.Right {
		right, err := b.term(op.Right)
		if err != nil {
			return nil, err
		}
		var ok bool
		if result, ok = dialect.Arithmetic(dialect.At(op.Pos), op.Operator, result, right); !ok {
			return nil, dialect.Unsupported(op.Pos, "operator "+op.Operator)
		}
	}
	return result, nil
}

func (b *AstBuilder) term(t *Term) (core.Expression, error) {
	result, err := b.unary(t.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range t.Right {
		right, err := b.unary(op.Right)
		if err != nil {
			return nil, err
		}
		var ok bool
		if result, ok = dialect.Arithmetic(dialect.At(op.Pos), op.Operator, result, right); !ok {
			return nil, dialect.Unsupported(op.Pos, "operator "+op.Operator)
		}
	}
	return result, nil
}

func (b *AstBuilder) unary(u *Unary) (core.Expression, error) {
	if u.Primary != nil {
		return b.primary(u.Primary)
	}
	if u.Operand == nil {
		return nil, dialect.Unsupported(u.Pos, "value expression")
	}
	operand, err := b.unary(u.Operand)
	if err != nil {
		return nil, err
	}
	sign := core.Plus
	if u.Sign == "-" {
		sign = core.Minus
	}
	return &core.ArithmeticUnaryExpression{BaseNode: dialect.At(u.Pos), Sign: sign, Value: operand}, nil
}

func (b *AstBuilder) primary(p *Primary) (core.Expression, error) {
	base := dialect.At(p.Pos)
	switch {
	case p.Null:
		return &core.NullLiteral{BaseNode: base}, nil
	case p.True, p.False:
		return &core.BooleanLiteral{BaseNode: base, Value: p.True}, nil
	case p.Number != nil:
		return b.number(*p.Number, base)
	case p.String != nil:
		return b.stringLiteral(*p.String, base)
	case p.Parameter:
		param := &core.Parameter{BaseNode: base, Position: b.parameterPosition}
		b.parameterPosition++
		return param, nil
	case p.Cast != nil:
		return b.cast(p.Cast)
	case p.Case != nil:
		return b.caseExpression(p.Case)
	case p.AnyValue != nil:
		return b.anyValue(p.AnyValue)
	case p.Subquery != nil:
		q, err := b.query(p.Subquery)
		if err != nil {
			return nil, err
		}
		return &core.SubqueryExpression{BaseNode: base, Query: q}, nil
	case p.Paren != nil:
		return b.expression(p.Paren)
	case p.Call != nil:
		return b.functionCall(p.Call)
	case p.Column != nil:
		parts, err := b.identifiers(p.Column.Parts)
		if err != nil {
			return nil, err
		}
		return dialect.Dereference(parts), nil
	default:
		return nil, dialect.Unsupported(p.Pos, "primary expression")
	}
}

// anyValue resolves the IGNORE NULLS flag from whichever spelling was used.
// A flag argument must be a boolean literal.
func (b *AstBuilder) anyValue(a *AnyValue) (core.Expression, error) {
	value, err := b.expression(a.Value)
	if err != nil {
		return nil, err
	}
	ignoreNulls := a.IgnoreNulls || a.Trailing
	if a.Flag != nil {
		if a.Trailing {
			return nil, dialect.Unsupported(a.Flag.Pos, "ANY_VALUE with both a flag argument and IGNORE NULLS")
		}
		flag, err := b.expression(a.Flag)
		if err != nil {
			return nil, err
		}
		lit, ok := flag.(*core.BooleanLiteral)
		if !ok {
			return nil, dialect.Unsupported(a.Flag.Pos, "non-literal ANY_VALUE flag")
		}
		ignoreNulls = lit.Value
	}
	return core.NewAnyValue(dialect.At(a.Pos), value, ignoreNulls), nil
}

func (b *AstBuilder) cast(c *Cast) (core.Expression, error) {
	value, err := b.expression(c.Value)
	if err != nil {
		return nil, err
	}
	typeName := Dialect.NormalizeType(strings.Join(c.Type.Name, " "))
	return &core.Cast{
		BaseNode:   dialect.At(c.Pos),
		Expression: value,
		Type:       dialect.TypeName(typeName, c.Type.Params),
		Safe:       strings.EqualFold(c.Kind, "TRY_CAST"),
	}, nil
}

func (b *AstBuilder) caseExpression(c *Case) (core.Expression, error) {
	whens := make([]*core.WhenClause, 0, len(c.Whens))
	for _, w := range c.Whens {
		cond, err := b.expression(w.Condition)
		if err != nil {
			return nil, err
		}
		result, err := b.expression(w.Result)
		if err != nil {
			return nil, err
		}
		whens = append(whens, &core.WhenClause{BaseNode: dialect.At(w.Pos), Operand: cond, Result: result})
	}
	var def core.Expression
	if c.Else != nil {
		var err error
		if def, err = b.expression(c.Else); err != nil {
			return nil, err
		}
	}
	base := dialect.At(c.Pos)
	if c.Operand == nil {
		return &core.SearchedCaseExpression{BaseNode: base, WhenClauses: whens, DefaultValue: def}, nil
	}
	operand, err := b.expression(c.Operand)
	if err != nil {
		return nil, err
	}
	return &core.SimpleCaseExpression{BaseNode: base, Operand: operand, WhenClauses: whens, DefaultValue: def}, nil
}

func (b *AstBuilder) functionCall(f *FunctionCall) (core.Expression, error) {
	parts, err := b.identifiers(f.Name.Parts)
	if err != nil {
		return nil, err
	}
	call := &core.FunctionCall{BaseNode: dialect.At(f.Pos), Name: core.QualifiedName{Parts: parts}, Distinct: f.Distinct}
	if f.Star {
		return call, nil
	}
	if call.Arguments, err = b.expressions(f.Args); err != nil {
		return nil, err
	}
	return call, nil
}

// ---------- Literals ----------

// number translates a numeric token and its optional type suffix.
// BD and D bypass the decimal policy; L, S and Y are range-checked integers.
func (b *AstBuilder) number(text string, base core.BaseNode) (core.Literal, error) {
	upper := strings.ToUpper(text)
	switch {
	case strings.HasSuffix(upper, "BD"):
		return exactDecimal(upper[:len(upper)-2], base)
	case strings.HasSuffix(upper, "D"):
		return dialect.DoubleLiteral(upper[:len(upper)-1], base)
	case strings.HasSuffix(upper, "L"):
		return dialect.LongLiteral(upper[:len(upper)-1], base)
	case strings.HasSuffix(upper, "S"):
		return boundedInteger(upper[:len(upper)-1], base, math.MinInt16, math.MaxInt16)
	case strings.HasSuffix(upper, "Y"):
		return boundedInteger(upper[:len(upper)-1], base, math.MinInt8, math.MaxInt8)
	default:
		return dialect.NumericLiteral(text, base, b.options.DecimalLiteralTreatment())
	}
}

// exactDecimal builds a DecimalLiteral, expanding an exponent first so that
// 1.5E2BD reads as 150.
func exactDecimal(text string, base core.BaseNode) (core.Literal, error) {
	if dialect.ClassifyNumber(text) == dialect.Double {
		d, err := decimal.NewFromString(text)
		if err != nil {
			return nil, core.Errorf(core.UnsupportedLiteral, base.Loc, core.ErrMsgInvalidNumber, text+"BD").WithCause(err)
		}
		text = d.String()
	}
	return dialect.ExactDecimal(text, base)
}

func boundedInteger(text string, base core.BaseNode, lo, hi int64) (core.Literal, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil || v < lo || v > hi {
		return nil, core.Errorf(core.UnsupportedLiteral, base.Loc, core.ErrMsgInvalidNumber, text)
	}
	return &core.LongLiteral{BaseNode: base, Value: v}, nil
}

// stringLiteral unquotes either quote style. Doubled quotes collapse; no
// backslash escapes are interpreted.
func (b *AstBuilder) stringLiteral(raw string, base core.BaseNode) (*core.StringLiteral, error) {
	var loc core.NodeLocation
	if base.Loc != nil {
		loc = *base.Loc
	}
	quote := byte('\'')
	if raw != "" && raw[0] == '"' {
		quote = '"'
	}
	value, err := dialect.Unquote(raw, quote, loc)
	if err != nil {
		return nil, err
	}
	return &core.StringLiteral{BaseNode: base, Value: value}, nil
}

// ---------- Names ----------

func (b *AstBuilder) identifiers(ids []*Identifier) ([]*core.Identifier, error) {
	out := make([]*core.Identifier, 0, len(ids))
	for _, id := range ids {
		ident, err := b.identifier(id)
		if err != nil {
			return nil, err
		}
		out = append(out, ident)
	}
	return out, nil
}

func (b *AstBuilder) identifier(id *Identifier) (*core.Identifier, error) {
	base := dialect.At(id.Pos)
	if id.Name != nil {
		return &core.Identifier{BaseNode: base, Value: *id.Name}, nil
	}
	if id.Backtick == nil {
		return nil, dialect.Unsupported(id.Pos, "identifier")
	}
	value, err := dialect.Unquote(*id.Backtick, '`', dialect.LocationOf(id.Pos))
	if err != nil {
		return nil, err
	}
	return &core.Identifier{BaseNode: base, Value: value, Delimited: true}, nil
}
