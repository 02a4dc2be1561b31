package core

// ---------- Statement Types ----------

// Explain is EXPLAIN statement.
type Explain struct {
	BaseNode
	Statement Statement
}

func (*Explain) statementNode() {}

// Children implements Node.
func (e *Explain) Children() []Node { return collect(e.Statement) }

func (e *Explain) equal(other Node) bool {
	o, ok := other.(*Explain)
	return ok && Equal(e.Statement, o.Statement)
}

func (e *Explain) hash(h *hasher) {
	h.tag("Explain")
	h.node(e.Statement)
}

// Query is a query body with optional ORDER BY and LIMIT.
type Query struct {
	BaseNode
	Body    QueryBody
	OrderBy []*SortItem
	Limit   *Limit // optional
}

func (*Query) statementNode() {}

// Children implements Node.
func (q *Query) Children() []Node {
	out := collect(q.Body)
	out = appendAll(out, q.OrderBy)
	return append(out, collect(q.Limit)...)
}

func (q *Query) equal(other Node) bool {
	o, ok := other.(*Query)
	return ok && Equal(q.Body, o.Body) && equalSlices(q.OrderBy, o.OrderBy) && Equal(q.Limit, o.Limit)
}

func (q *Query) hash(h *hasher) {
	h.tag("Query")
	h.node(q.Body)
	hashSlice(h, q.OrderBy)
	h.node(q.Limit)
}

// QuerySpecification is SELECT ... [FROM] [WHERE] [GROUP BY] [HAVING].
type QuerySpecification struct {
	BaseNode
	Select  *Select
	From    Relation   // optional
	Where   Expression // optional
	GroupBy []Expression
	Having  Expression // optional
}

func (*QuerySpecification) relationNode()  {}
func (*QuerySpecification) queryBodyNode() {}

// Children implements Node.
func (q *QuerySpecification) Children() []Node {
	out := collect(q.Select, q.From, q.Where)
	out = appendAll(out, q.GroupBy)
	return append(out, collect(q.Having)...)
}

func (q *QuerySpecification) equal(other Node) bool {
	o, ok := other.(*QuerySpecification)
	return ok && Equal(q.Select, o.Select) && Equal(q.From, o.From) && Equal(q.Where, o.Where) &&
		equalSlices(q.GroupBy, o.GroupBy) && Equal(q.Having, o.Having)
}

func (q *QuerySpecification) hash(h *hasher) {
	h.tag("QuerySpecification")
	h.node(q.Select)
	h.node(q.From)
	h.node(q.Where)
	hashSlice(h, q.GroupBy)
	h.node(q.Having)
}

// SelectItem is an entry of a select list.
type SelectItem interface {
	Node
	selectItemNode()
}

// Select is the select list with its quantifier.
type Select struct {
	BaseNode
	Distinct bool
	Items    []SelectItem
}

// Children implements Node.
func (s *Select) Children() []Node { return appendAll(nil, s.Items) }

func (s *Select) equal(other Node) bool {
	o, ok := other.(*Select)
	return ok && s.Distinct == o.Distinct && equalSlices(s.Items, o.Items)
}

func (s *Select) hash(h *hasher) {
	h.tag("Select")
	h.bool(s.Distinct)
	hashSlice(h, s.Items)
}

// SingleColumn is expression [AS alias].
type SingleColumn struct {
	BaseNode
	Expression Expression
	Alias      *Identifier // optional
}

func (*SingleColumn) selectItemNode() {}

// Children implements Node.
func (c *SingleColumn) Children() []Node { return collect(c.Expression, c.Alias) }

func (c *SingleColumn) equal(other Node) bool {
	o, ok := other.(*SingleColumn)
	return ok && Equal(c.Expression, o.Expression) && Equal(c.Alias, o.Alias)
}

func (c *SingleColumn) hash(h *hasher) {
	h.tag("SingleColumn")
	h.node(c.Expression)
	h.node(c.Alias)
}

// AllColumns is * or target.*.
type AllColumns struct {
	BaseNode
	Target Expression // optional
}

func (*AllColumns) selectItemNode() {}

// Children implements Node.
func (a *AllColumns) Children() []Node { return collect(a.Target) }

func (a *AllColumns) equal(other Node) bool {
	o, ok := other.(*AllColumns)
	return ok && Equal(a.Target, o.Target)
}

func (a *AllColumns) hash(h *hasher) {
	h.tag("AllColumns")
	h.node(a.Target)
}

// SortItem is one key of an ORDER BY.
type SortItem struct {
	BaseNode
	SortKey      Expression
	Ordering     Ordering
	NullOrdering NullOrdering
}

// Children implements Node.
func (s *SortItem) Children() []Node { return collect(s.SortKey) }

func (s *SortItem) equal(other Node) bool {
	o, ok := other.(*SortItem)
	return ok && s.Ordering == o.Ordering && s.NullOrdering == o.NullOrdering && Equal(s.SortKey, o.SortKey)
}

func (s *SortItem) hash(h *hasher) {
	h.tag("SortItem")
	h.node(s.SortKey)
	h.int(int(s.Ordering))
	h.int(int(s.NullOrdering))
}

// Limit is LIMIT n. A nil RowCount is LIMIT ALL.
type Limit struct {
	BaseNode
	RowCount *LongLiteral
}

// Children implements Node.
func (l *Limit) Children() []Node { return collect(l.RowCount) }

func (l *Limit) equal(other Node) bool {
	o, ok := other.(*Limit)
	return ok && Equal(l.RowCount, o.RowCount)
}

func (l *Limit) hash(h *hasher) {
	h.tag("Limit")
	h.node(l.RowCount)
}
