package format

import (
	"strconv"

	"github.com/leapstack-labs/sqlfront/pkg/core"
)

// ---------- Statements ----------

func (p *Printer) VisitExplain(n *core.Explain, _ int) none {
	p.keyword("EXPLAIN")
	p.space()
	p.node(n.Statement, precLowest)
	return none{}
}

func (p *Printer) VisitQuery(n *core.Query, _ int) none {
	p.node(n.Body, precLowest)

	if len(n.OrderBy) > 0 {
		p.writeln()
		p.keyword("ORDER BY")
		p.writeln()
		p.indent()
		p.formatList(len(n.OrderBy), func(i int) { p.node(n.OrderBy[i], precLowest) }, ",", true)
		p.dedent()
	}
	if n.Limit != nil {
		p.writeln()
		p.node(n.Limit, precLowest)
	}
	return none{}
}

func (p *Printer) parenthesizedQuery(q *core.Query) {
	p.write("(")
	p.writeln()
	p.indent()
	p.node(q, precLowest)
	p.dedent()
	p.writeln()
	p.write(")")
}

func (p *Printer) VisitQuerySpecification(n *core.QuerySpecification, _ int) none {
	p.node(n.Select, precLowest)

	if n.From != nil {
		p.writeln()
		p.keyword("FROM")
		p.space()
		p.node(n.From, precLowest)
	}
	if n.Where != nil {
		p.clause("WHERE", n.Where)
	}
	if len(n.GroupBy) > 0 {
		p.writeln()
		p.keyword("GROUP BY")
		p.writeln()
		p.indent()
		p.formatList(len(n.GroupBy), func(i int) { p.node(n.GroupBy[i], precLowest) }, ",", true)
		p.dedent()
	}
	if n.Having != nil {
		p.clause("HAVING", n.Having)
	}
	return none{}
}

// clause prints an indented single-expression clause such as WHERE.
func (p *Printer) clause(keyword string, expr core.Expression) {
	p.writeln()
	p.keyword(keyword)
	p.writeln()
	p.indent()
	p.node(expr, precLowest)
	p.dedent()
}

func (p *Printer) VisitSelect(n *core.Select, _ int) none {
	p.keyword("SELECT")
	if n.Distinct {
		p.space()
		p.keyword("DISTINCT")
	}
	p.writeln()
	p.indent()
	p.formatList(len(n.Items), func(i int) { p.node(n.Items[i], precLowest) }, ",", true)
	p.dedent()
	return none{}
}

func (p *Printer) VisitSingleColumn(n *core.SingleColumn, _ int) none {
	p.node(n.Expression, precLowest)
	if n.Alias != nil {
		p.space()
		p.keyword("AS")
		p.space()
		p.node(n.Alias, precLowest)
	}
	return none{}
}

func (p *Printer) VisitAllColumns(n *core.AllColumns, _ int) none {
	if n.Target != nil {
		p.node(n.Target, precPrimary)
		p.write(".")
	}
	p.write("*")
	return none{}
}

func (p *Printer) VisitSortItem(n *core.SortItem, _ int) none {
	p.node(n.SortKey, precLowest)
	switch n.Ordering {
	case core.Ascending:
		p.write(" ASC")
	case core.Descending:
		p.write(" DESC")
	}
	switch n.NullOrdering {
	case core.NullsFirst:
		p.write(" NULLS FIRST")
	case core.NullsLast:
		p.write(" NULLS LAST")
	}
	return none{}
}

func (p *Printer) VisitLimit(n *core.Limit, _ int) none {
	p.keyword("LIMIT")
	p.space()
	if n.RowCount == nil {
		p.keyword("ALL")
	} else {
		p.write(strconv.FormatInt(n.RowCount.Value, 10))
	}
	return none{}
}

// ---------- Relations ----------

func (p *Printer) VisitTable(n *core.Table, _ int) none {
	p.qualifiedName(n.Name)
	return none{}
}

func (p *Printer) VisitAliasedRelation(n *core.AliasedRelation, _ int) none {
	p.node(n.Relation, precLowest)
	p.space()
	p.keyword("AS")
	p.space()
	p.node(n.Alias, precLowest)
	return none{}
}

func (p *Printer) VisitTableSubquery(n *core.TableSubquery, _ int) none {
	p.parenthesizedQuery(n.Query)
	return none{}
}

func (p *Printer) VisitJoin(n *core.Join, _ int) none {
	p.node(n.Left, precLowest)
	if n.Type == core.JoinImplicit {
		p.write(", ")
		p.node(n.Right, precLowest)
		return none{}
	}

	p.writeln()
	if n.Type == core.JoinInner {
		// Plain JOIN for inner joins
		p.keyword("JOIN")
	} else {
		p.keyword(n.Type.String())
		p.space()
		p.keyword("JOIN")
	}
	p.space()
	p.node(n.Right, precLowest)
	if n.Criteria != nil {
		p.space()
		p.keyword("ON")
		p.space()
		p.node(n.Criteria, precLowest)
	}
	return none{}
}
