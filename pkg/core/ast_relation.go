package core

// ---------- Relation Types ----------

// Table references a named table.
type Table struct {
	BaseNode
	Name QualifiedName
}

func (*Table) relationNode() {}

// Children implements Node.
func (*Table) Children() []Node { return nil }

func (t *Table) equal(other Node) bool {
	o, ok := other.(*Table)
	return ok && t.Name.Equal(o.Name)
}

func (t *Table) hash(h *hasher) {
	h.tag("Table")
	t.Name.hash(h)
}

// AliasedRelation is relation [AS] alias.
type AliasedRelation struct {
	BaseNode
	Relation Relation
	Alias    *Identifier
}

func (*AliasedRelation) relationNode() {}

// Children implements Node.
func (a *AliasedRelation) Children() []Node { return collect(a.Relation, a.Alias) }

func (a *AliasedRelation) equal(other Node) bool {
	o, ok := other.(*AliasedRelation)
	return ok && Equal(a.Relation, o.Relation) && Equal(a.Alias, o.Alias)
}

func (a *AliasedRelation) hash(h *hasher) {
	h.tag("AliasedRelation")
	h.node(a.Relation)
	h.node(a.Alias)
}

// TableSubquery is a parenthesized query used as a relation or query body.
type TableSubquery struct {
	BaseNode
	Query *Query
}

func (*TableSubquery) relationNode()  {}
func (*TableSubquery) queryBodyNode() {}

// Children implements Node.
func (t *TableSubquery) Children() []Node { return collect(t.Query) }

func (t *TableSubquery) equal(other Node) bool {
	o, ok := other.(*TableSubquery)
	return ok && Equal(t.Query, o.Query)
}

func (t *TableSubquery) hash(h *hasher) {
	h.tag("TableSubquery")
	h.node(t.Query)
}

// Join combines two relations. Criteria is the ON condition and is nil for
// cross and implicit joins.
type Join struct {
	BaseNode
	Type     JoinType
	Left     Relation
	Right    Relation
	Criteria Expression
}

func (*Join) relationNode() {}

// Children implements Node.
func (j *Join) Children() []Node { return collect(j.Left, j.Right, j.Criteria) }

func (j *Join) equal(other Node) bool {
	o, ok := other.(*Join)
	return ok && j.Type == o.Type && Equal(j.Left, o.Left) && Equal(j.Right, o.Right) &&
		Equal(j.Criteria, o.Criteria)
}

func (j *Join) hash(h *hasher) {
	h.tag("Join")
	h.int(int(j.Type))
	h.node(j.Left)
	h.node(j.Right)
	h.node(j.Criteria)
}
