package trino

import (
	"strings"

	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/dialect"
)

// AstBuilder translates Trino parse trees into canonical AST nodes.
//
// A builder numbers positional parameters as it walks, so it is not reentrant.
// Use one builder per parse; separate builders share nothing.
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

// BuildExpression unwraps the single-expression production.
func (b *AstBuilder) BuildExpression(tree *SingleExpression) (core.Expression, error) {
	if err := b.options.Validate(); err != nil {
		return nil, err
	}
	if tree == nil || tree.Expression == nil {
		return nil, core.Errorf(core.UnsupportedConstruct, nil, core.ErrMsgNoRule, "empty expression")
	}
	return b.expression(tree.Expression)
}

// ---------- Statements ----------

func (b *AstBuilder) statement(s *Statement) (core.Statement, error) {
	switch {
	case s.Explain != nil:
		inner, err := b.statement(s.Explain)
		if err != nil {
			return nil, err
		}
		return &core.Explain{BaseNode: dialect.At(s.Pos), Statement: inner}, nil
	case s.Query != nil:
		return b.query(s.Query)
	default:
		return nil, dialect.Unsupported(s.Pos, "statement")
	}
}

func (b *AstBuilder) query(q *Query) (*core.Query, error) {
	body, err := b.queryPrimary(q.Body)
	if err != nil {
		return nil, err
	}
	result := &core.Query{BaseNode: dialect.At(q.Pos), Body: body}
	for _, item := range q.OrderBy {
		key, err := b.expression(item.Key)
		if err != nil {
			return nil, err
		}
		result.OrderBy = append(result.OrderBy, &core.SortItem{
			BaseNode:     dialect.At(item.Pos),
			SortKey:      key,
			Ordering:     dialect.SortOrdering(item.Ordering),
			NullOrdering: dialect.NullOrdering(item.Nulls),
		})
	}
	if q.Limit != nil {
		limit := &core.Limit{BaseNode: dialect.At(q.Limit.Pos)}
		if q.Limit.Count != nil {
			count, err := dialect.RowCount(*q.Limit.Count, q.Limit.Pos)
			if err != nil {
				return nil, err
			}
			limit.RowCount = count
		}
		result.Limit = limit
	}
	return result, nil
}

func (b *AstBuilder) queryPrimary(p *QueryPrimary) (core.QueryBody, error) {
	switch {
	case p.Spec != nil:
		return b.querySpecification(p.Spec)
	case p.Subquery != nil:
		q, err := b.query(p.Subquery)
		if err != nil {
			return nil, err
		}
		return &core.TableSubquery{BaseNode: dialect.At(p.Pos), Query: q}, nil
	default:
		return nil, dialect.Unsupported(p.Pos, "query body")
	}
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

	var from []core.Relation
	for _, r := range s.From {
		rel, err := b.relation(r)
		if err != nil {
			return nil, err
		}
		from = append(from, rel)
	}
	result.From = dialect.ImplicitJoin(from)

	var err error
	if s.Where != nil {
		if result.Where, err = b.expression(s.Where); err != nil {
			return nil, err
		}
	}
	for _, g := range s.GroupBy {
		expr, err := b.expression(g)
		if err != nil {
			return nil, err
		}
		result.GroupBy = append(result.GroupBy, expr)
	}
	if s.Having != nil {
		if result.Having, err = b.expression(s.Having); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (b *AstBuilder) selectItem(item *SelectItem) (core.SelectItem, error) {
	switch {
	case item.All != nil:
		all := &core.AllColumns{BaseNode: dialect.At(item.Pos)}
		if len(item.All.Prefix) > 0 {
			parts, err := b.identifiers(item.All.Prefix)
			if err != nil {
				return nil, err
			}
			all.Target = dialect.Dereference(parts)
		}
		return all, nil
	case item.Column != nil:
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
	default:
		return nil, dialect.Unsupported(item.Pos, "select item")
	}
}

// ---------- Relations ----------

func (b *AstBuilder) relation(r *Relation) (core.Relation, error) {
	left, err := b.aliasedRelation(r.Left)
	if err != nil {
		return nil, err
	}
	for _, j := range r.Joins {
		right, err := b.aliasedRelation(j.Right)
		if err != nil {
			return nil, err
		}
		join := &core.Join{BaseNode: dialect.At(j.Pos), Type: dialect.JoinType(j.Type), Left: left, Right: right}
		if j.Criteria != nil {
			if join.Type == core.JoinCross {
				return nil, dialect.Unsupported(j.Pos, "CROSS JOIN with ON")
			}
			if join.Criteria, err = b.expression(j.Criteria); err != nil {
				return nil, err
			}
		} else if join.Type != core.JoinCross {
			return nil, dialect.Unsupported(j.Pos, join.Type.String()+" JOIN without ON")
		}
		left = join
	}
	return left, nil
}

func (b *AstBuilder) aliasedRelation(r *AliasedRelation) (core.Relation, error) {
	var rel core.Relation
	switch {
	case r.Subquery != nil:
		q, err := b.query(r.Subquery)
		if err != nil {
			return nil, err
		}
		rel = &core.TableSubquery{BaseNode: dialect.At(r.Pos), Query: q}
	case r.Table != nil:
		name, err := b.qualifiedName(r.Table)
		if err != nil {
			return nil, err
		}
		rel = &core.Table{BaseNode: dialect.At(r.Pos), Name: name}
	default:
		return nil, dialect.Unsupported(r.Pos, "relation")
	}
	if r.Alias == nil {
		return rel, nil
	}
	alias, err := b.identifier(r.Alias)
	if err != nil {
		return nil, err
	}
	return &core.AliasedRelation{BaseNode: dialect.At(r.Pos), Relation: rel, Alias: alias}, nil
}

// ---------- Expressions ----------

func (b *AstBuilder) expression(e *Expression) (core.Expression, error) {
	terms := make([]core.Expression, 0, 1+len(e.Right))
	for _, and := range append([]*AndCondition{e.Left}, e.Right...) {
		term, err := b.and(and)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return dialect.Logical(dialect.At(e.Pos), core.Or, terms), nil
}

func (b *AstBuilder) and(a *AndCondition) (core.Expression, error) {
	terms := make([]core.Expression, 0, 1+len(a.Right))
	for _, not := range append([]*NotCondition{a.Left}, a.Right...) {
		term, err := b.not(not)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return dialect.Logical(dialect.At(a.Pos), core.And, terms), nil
}

func (b *AstBuilder) not(n *NotCondition) (core.Expression, error) {
	switch {
	case n.Not != nil:
		inner, err := b.not(n.Not)
		if err != nil {
			return nil, err
		}
		return &core.NotExpression{BaseNode: dialect.At(n.Pos), Value: inner}, nil
	case n.Predicate != nil:
		return b.predicate(n.Predicate)
	default:
		return nil, dialect.Unsupported(n.Pos, "boolean expression")
	}
}

func (b *AstBuilder) predicate(p *Predicate) (core.Expression, error) {
	value, err := b.valueExpression(p.Value)
	if err != nil {
		return nil, err
	}
	switch {
	case p.Comparison != nil:
		right, err := b.valueExpression(p.Comparison.Right)
		if err != nil {
			return nil, err
		}
		op, ok := core.ComparisonOperatorFromSymbol(p.Comparison.Operator)
		if !ok {
			return nil, dialect.Unsupported(p.Comparison.Pos, "operator "+p.Comparison.Operator)
		}
		return &core.ComparisonExpression{BaseNode: dialect.At(p.Comparison.Pos), Operator: op, Left: value, Right: right}, nil

	case p.Between != nil:
		lo, err := b.valueExpression(p.Between.Min)
		if err != nil {
			return nil, err
		}
		hi, err := b.valueExpression(p.Between.Max)
		if err != nil {
			return nil, err
		}
		base := dialect.At(p.Between.Pos)
		return dialect.Negate(base, p.Between.Not, &core.BetweenPredicate{BaseNode: base, Value: value, Min: lo, Max: hi}), nil

	case p.In != nil:
		base := dialect.At(p.In.Pos)
		var list core.Expression
		if p.In.Subquery != nil {
			q, err := b.query(p.In.Subquery)
			if err != nil {
				return nil, err
			}
			list = &core.SubqueryExpression{BaseNode: base, Query: q}
		} else {
			in := &core.InListExpression{BaseNode: base}
			for _, v := range p.In.Values {
				expr, err := b.expression(v)
				if err != nil {
					return nil, err
				}
				in.Values = append(in.Values, expr)
			}
			list = in
		}
		return dialect.Negate(base, p.In.Not, &core.InPredicate{BaseNode: base, Value: value, ValueList: list}), nil

	case p.Like != nil:
		pattern, err := b.valueExpression(p.Like.Pattern)
		if err != nil {
			return nil, err
		}
		base := dialect.At(p.Like.Pos)
		like := &core.LikePredicate{BaseNode: base, Value: value, Pattern: pattern}
		if p.Like.Escape != nil {
			if like.Escape, err = b.valueExpression(p.Like.Escape); err != nil {
				return nil, err
			}
		}
		return dialect.Negate(base, p.Like.Not, like), nil

	case p.IsNull != nil:
		base := dialect.At(p.IsNull.Pos)
		if p.IsNull.Not {
			return &core.IsNotNullPredicate{BaseNode: base, Value: value}, nil
		}
		return &core.IsNullPredicate{BaseNode: base, Value: value}, nil
	}
	return value, nil
}

func (b *AstBuilder) valueExpression(v *ValueExpression) (core.Expression, error) {
	left, err := b.term(v.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range v.Right {
		right, err := b.term(op.Right)
		if err != nil {
			return nil, err
		}
		expr, ok := dialect.Arithmetic(dialect.At(op.Pos), op.Operator, left, right)
		if !ok {
			return nil, dialect.Unsupported(op.Pos, "operator "+op.Operator)
		}
		left = expr
	}
	return left, nil
}

func (b *AstBuilder) term(t *Term) (core.Expression, error) {
	left, err := b.factor(t.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range t.Right {
		right, err := b.factor(op.Right)
		if err != nil {
			return nil, err
		}
		expr, ok := dialect.Arithmetic(dialect.At(op.Pos), op.Operator, left, right)
		if !ok {
			return nil, dialect.Unsupported(op.Pos, "operator "+op.Operator)
		}
		left = expr
	}
	return left, nil
}

func (b *AstBuilder) factor(f *Factor) (core.Expression, error) {
	switch {
	case f.Operand != nil:
		operand, err := b.factor(f.Operand)
		if err != nil {
			return nil, err
		}
		sign := core.Plus
		if f.Sign == "-" {
			sign = core.Minus
		}
		return &core.ArithmeticUnaryExpression{BaseNode: dialect.At(f.Pos), Sign: sign, Value: operand}, nil
	case f.Primary != nil:
		return b.primary(f.Primary)
	default:
		return nil, dialect.Unsupported(f.Pos, "value expression")
	}
}

func (b *AstBuilder) primary(p *Primary) (core.Expression, error) {
	base := dialect.At(p.Pos)
	switch {
	case p.Null:
		return &core.NullLiteral{BaseNode: base}, nil
	case p.True:
		return &core.BooleanLiteral{BaseNode: base, Value: true}, nil
	case p.False:
		return &core.BooleanLiteral{BaseNode: base, Value: false}, nil
	case p.Number != nil:
		return dialect.NumericLiteral(*p.Number, base, b.options.DecimalLiteralTreatment())
	case p.String != nil:
		value, err := dialect.UnquoteString(*p.String, dialect.LocationOf(p.Pos))
		if err != nil {
			return nil, err
		}
		return &core.StringLiteral{BaseNode: base, Value: value}, nil
	case p.Parameter:
		param := &core.Parameter{BaseNode: base, Position: b.parameterPosition}
		b.parameterPosition++
		return param, nil
	case p.Cast != nil:
		return b.cast(p.Cast)
	case p.Case != nil:
		return b.caseExpression(p.Case)
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

func (b *AstBuilder) cast(c *Cast) (core.Expression, error) {
	value, err := b.expression(c.Value)
	if err != nil {
		return nil, err
	}
	return &core.Cast{
		BaseNode:   dialect.At(c.Pos),
		Expression: value,
		Type:       dialect.TypeName(Dialect.NormalizeType(strings.Join(c.Type.Name, " ")), c.Type.Params),
		Safe:       strings.EqualFold(c.Kind, "TRY_CAST"),
	}, nil
}

func (b *AstBuilder) caseExpression(c *Case) (core.Expression, error) {
	var whens []*core.WhenClause
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

// functionCall translates a call. any_value(x) and arbitrary(x) become AnyValue.
func (b *AstBuilder) functionCall(f *FunctionCall) (core.Expression, error) {
	name, err := b.qualifiedName(f.Name)
	if err != nil {
		return nil, err
	}
	base := dialect.At(f.Pos)
	if f.Star {
		return &core.FunctionCall{BaseNode: base, Name: name}, nil
	}
	args := make([]core.Expression, 0, len(f.Args))
	for _, a := range f.Args {
		arg, err := b.expression(a)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if dialect.AnyValueFunction(name) && len(args) == 1 && !f.Distinct {
		return core.NewAnyValue(base, args[0], false), nil
	}
	return &core.FunctionCall{BaseNode: base, Name: name, Distinct: f.Distinct, Arguments: args}, nil
}

// ---------- Names ----------

func (b *AstBuilder) qualifiedName(q *QualifiedName) (core.QualifiedName, error) {
	parts, err := b.identifiers(q.Parts)
	if err != nil {
		return core.QualifiedName{}, err
	}
	return core.QualifiedName{Parts: parts}, nil
}

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
	switch {
	case id.Name != nil:
		return &core.Identifier{BaseNode: base, Value: *id.Name}, nil
	case id.Quoted != nil:
		value, err := dialect.Unquote(*id.Quoted, '"', dialect.LocationOf(id.Pos))
		if err != nil {
			return nil, err
		}
		return &core.Identifier{BaseNode: base, Value: value, Delimited: true}, nil
	default:
		return nil, dialect.Unsupported(id.Pos, "identifier")
	}
}
