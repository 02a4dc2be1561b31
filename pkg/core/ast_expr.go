package core

import "strings"

// ---------- Expression Types ----------

// Identifier is a column, alias or name part.
// Delimited is true when the source quoted it ("x" in Trino, `x` in SparkSQL).
type Identifier struct {
	BaseNode
	Value     string
	Delimited bool
}

func (*Identifier) expressionNode() {}

// Children implements Node.
func (*Identifier) Children() []Node { return nil }

func (i *Identifier) equal(other Node) bool {
	o, ok := other.(*Identifier)
	return ok && i.Value == o.Value && i.Delimited == o.Delimited
}

func (i *Identifier) hash(h *hasher) {
	h.tag("Identifier")
	h.str(i.Value)
	h.bool(i.Delimited)
}

// CanonicalValue returns the value used for name matching: undelimited names fold to lower case.
func (i *Identifier) CanonicalValue() string {
	if i.Delimited {
		return i.Value
	}
	return strings.ToLower(i.Value)
}

// QualifiedName is a dotted name such as catalog.schema.table.
// It is a value, not a Node.
type QualifiedName struct {
	Parts []*Identifier
}

// NewQualifiedName builds an undelimited name from plain parts.
func NewQualifiedName(parts ...string) QualifiedName {
	ids := make([]*Identifier, len(parts))
	for i, p := range parts {
		ids[i] = &Identifier{Value: p}
	}
	return QualifiedName{Parts: ids}
}

// Suffix returns the canonical last part.
func (q QualifiedName) Suffix() string {
	if len(q.Parts) == 0 {
		return ""
	}
	return q.Parts[len(q.Parts)-1].CanonicalValue()
}

// String joins the canonical parts with dots.
func (q QualifiedName) String() string {
	parts := make([]string, len(q.Parts))
	for i, p := range q.Parts {
		parts[i] = p.CanonicalValue()
	}
	return strings.Join(parts, ".")
}

// Equal compares canonical parts.
func (q QualifiedName) Equal(o QualifiedName) bool {
	if len(q.Parts) != len(o.Parts) {
		return false
	}
	for i := range q.Parts {
		if q.Parts[i].CanonicalValue() != o.Parts[i].CanonicalValue() {
			return false
		}
	}
	return true
}

func (q QualifiedName) hash(h *hasher) {
	h.str(q.String())
}

// DereferenceExpression is field access: base.field.
type DereferenceExpression struct {
	BaseNode
	Base  Expression
	Field *Identifier
}

func (*DereferenceExpression) expressionNode() {}

// Children implements Node.
func (d *DereferenceExpression) Children() []Node { return collect(d.Base, d.Field) }

func (d *DereferenceExpression) equal(other Node) bool {
	o, ok := other.(*DereferenceExpression)
	return ok && Equal(d.Base, o.Base) && Equal(d.Field, o.Field)
}

func (d *DereferenceExpression) hash(h *hasher) {
	h.tag("DereferenceExpression")
	h.node(d.Base)
	h.node(d.Field)
}

// FunctionCall is a call to a named function.
type FunctionCall struct {
	BaseNode
	Name      QualifiedName
	Distinct  bool
	Arguments []Expression
}

func (*FunctionCall) expressionNode() {}

// Children implements Node.
func (f *FunctionCall) Children() []Node { return appendAll(nil, f.Arguments) }

func (f *FunctionCall) equal(other Node) bool {
	o, ok := other.(*FunctionCall)
	return ok && f.Name.Equal(o.Name) && f.Distinct == o.Distinct && equalSlices(f.Arguments, o.Arguments)
}

func (f *FunctionCall) hash(h *hasher) {
	h.tag("FunctionCall")
	f.Name.hash(h)
	h.bool(f.Distinct)
	hashSlice(h, f.Arguments)
}

// AnyValue returns an arbitrary value of Expression from each group.
// With IgnoreNulls set, null inputs are skipped.
type AnyValue struct {
	BaseNode
	Expression  Expression
	IgnoreNulls bool
}

// NewAnyValue returns an AnyValue node. It panics if expression is nil.
func NewAnyValue(base BaseNode, expression Expression, ignoreNulls bool) *AnyValue {
	if isNil(expression) {
		panic("core: AnyValue requires an expression")
	}
	return &AnyValue{BaseNode: base, Expression: expression, IgnoreNulls: ignoreNulls}
}

func (*AnyValue) expressionNode() {}

// Children implements Node.
func (a *AnyValue) Children() []Node { return []Node{a.Expression} }

func (a *AnyValue) equal(other Node) bool {
	o, ok := other.(*AnyValue)
	return ok && a.IgnoreNulls == o.IgnoreNulls && Equal(a.Expression, o.Expression)
}

func (a *AnyValue) hash(h *hasher) {
	h.tag("AnyValue")
	h.node(a.Expression)
	h.bool(a.IgnoreNulls)
}

// Parameter is a positional placeholder (?). Position is 0-based in source order.
type Parameter struct {
	BaseNode
	Position int
}

func (*Parameter) expressionNode() {}

// Children implements Node.
func (*Parameter) Children() []Node { return nil }

func (p *Parameter) equal(other Node) bool {
	o, ok := other.(*Parameter)
	return ok && p.Position == o.Position
}

func (p *Parameter) hash(h *hasher) {
	h.tag("Parameter")
	h.int(p.Position)
}

// ArithmeticUnaryExpression is +value or -value.
type ArithmeticUnaryExpression struct {
	BaseNode
	Sign  Sign
	Value Expression
}

func (*ArithmeticUnaryExpression) expressionNode() {}

// Children implements Node.
func (a *ArithmeticUnaryExpression) Children() []Node { return collect(a.Value) }

func (a *ArithmeticUnaryExpression) equal(other Node) bool {
	o, ok := other.(*ArithmeticUnaryExpression)
	return ok && a.Sign == o.Sign && Equal(a.Value, o.Value)
}

func (a *ArithmeticUnaryExpression) hash(h *hasher) {
	h.tag("ArithmeticUnaryExpression")
	h.int(int(a.Sign))
	h.node(a.Value)
}

// ArithmeticBinaryExpression is left op right for +, -, *, / and %.
type ArithmeticBinaryExpression struct {
	BaseNode
	Operator ArithmeticOperator
	Left     Expression
	Right    Expression
}

func (*ArithmeticBinaryExpression) expressionNode() {}

// Children implements Node.
func (a *ArithmeticBinaryExpression) Children() []Node { return collect(a.Left, a.Right) }

func (a *ArithmeticBinaryExpression) equal(other Node) bool {
	o, ok := other.(*ArithmeticBinaryExpression)
	return ok && a.Operator == o.Operator && Equal(a.Left, o.Left) && Equal(a.Right, o.Right)
}

func (a *ArithmeticBinaryExpression) hash(h *hasher) {
	h.tag("ArithmeticBinaryExpression")
	h.int(int(a.Operator))
	h.node(a.Left)
	h.node(a.Right)
}

// ComparisonExpression is left op right for =, <>, <, <=, > and >=.
type ComparisonExpression struct {
	BaseNode
	Operator ComparisonOperator
	Left     Expression
	Right    Expression
}

func (*ComparisonExpression) expressionNode() {}

// Children implements Node.
func (c *ComparisonExpression) Children() []Node { return collect(c.Left, c.Right) }

func (c *ComparisonExpression) equal(other Node) bool {
	o, ok := other.(*ComparisonExpression)
	return ok && c.Operator == o.Operator && Equal(c.Left, o.Left) && Equal(c.Right, o.Right)
}

func (c *ComparisonExpression) hash(h *hasher) {
	h.tag("ComparisonExpression")
	h.int(int(c.Operator))
	h.node(c.Left)
	h.node(c.Right)
}

// LogicalExpression is a flat AND or OR over two or more terms.
type LogicalExpression struct {
	BaseNode
	Operator LogicalOperator
	Terms    []Expression
}

func (*LogicalExpression) expressionNode() {}

// Children implements Node.
func (l *LogicalExpression) Children() []Node { return appendAll(nil, l.Terms) }

func (l *LogicalExpression) equal(other Node) bool {
	o, ok := other.(*LogicalExpression)
	return ok && l.Operator == o.Operator && equalSlices(l.Terms, o.Terms)
}

func (l *LogicalExpression) hash(h *hasher) {
	h.tag("LogicalExpression")
	h.int(int(l.Operator))
	hashSlice(h, l.Terms)
}

// NotExpression is NOT value. NOT IN, NOT LIKE and NOT BETWEEN also build it.
type NotExpression struct {
	BaseNode
	Value Expression
}

func (*NotExpression) expressionNode() {}

// Children implements Node.
func (n *NotExpression) Children() []Node { return collect(n.Value) }

func (n *NotExpression) equal(other Node) bool {
	o, ok := other.(*NotExpression)
	return ok && Equal(n.Value, o.Value)
}

func (n *NotExpression) hash(h *hasher) {
	h.tag("NotExpression")
	h.node(n.Value)
}

// IsNullPredicate is value IS NULL.
type IsNullPredicate struct {
	BaseNode
	Value Expression
}

func (*IsNullPredicate) expressionNode() {}

// Children implements Node.
func (p *IsNullPredicate) Children() []Node { return collect(p.Value) }

func (p *IsNullPredicate) equal(other Node) bool {
	o, ok := other.(*IsNullPredicate)
	return ok && Equal(p.Value, o.Value)
}

func (p *IsNullPredicate) hash(h *hasher) {
	h.tag("IsNullPredicate")
	h.node(p.Value)
}

// IsNotNullPredicate is value IS NOT NULL.
type IsNotNullPredicate struct {
	BaseNode
	Value Expression
}

func (*IsNotNullPredicate) expressionNode() {}

// Children implements Node.
func (p *IsNotNullPredicate) Children() []Node { return collect(p.Value) }

func (p *IsNotNullPredicate) equal(other Node) bool {
	o, ok := other.(*IsNotNullPredicate)
	return ok && Equal(p.Value, o.Value)
}

func (p *IsNotNullPredicate) hash(h *hasher) {
	h.tag("IsNotNullPredicate")
	h.node(p.Value)
}

// BetweenPredicate is value BETWEEN min AND max.
type BetweenPredicate struct {
	BaseNode
	Value Expression
	Min   Expression
	Max   Expression
}

func (*BetweenPredicate) expressionNode() {}

// Children implements Node.
func (b *BetweenPredicate) Children() []Node { return collect(b.Value, b.Min, b.Max) }

func (b *BetweenPredicate) equal(other Node) bool {
	o, ok := other.(*BetweenPredicate)
	return ok && Equal(b.Value, o.Value) && Equal(b.Min, o.Min) && Equal(b.Max, o.Max)
}

func (b *BetweenPredicate) hash(h *hasher) {
	h.tag("BetweenPredicate")
	h.node(b.Value)
	h.node(b.Min)
	h.node(b.Max)
}

// InPredicate is value IN list. ValueList is an *InListExpression or a *SubqueryExpression.
type InPredicate struct {
	BaseNode
	Value     Expression
	ValueList Expression
}

func (*InPredicate) expressionNode() {}

// Children implements Node.
func (p *InPredicate) Children() []Node { return collect(p.Value, p.ValueList) }

func (p *InPredicate) equal(other Node) bool {
	o, ok := other.(*InPredicate)
	return ok && Equal(p.Value, o.Value) && Equal(p.ValueList, o.ValueList)
}

func (p *InPredicate) hash(h *hasher) {
	h.tag("InPredicate")
	h.node(p.Value)
	h.node(p.ValueList)
}

// InListExpression is the parenthesized list of an IN predicate.
type InListExpression struct {
	BaseNode
	Values []Expression
}

func (*InListExpression) expressionNode() {}

// Children implements Node.
func (l *InListExpression) Children() []Node { return appendAll(nil, l.Values) }

func (l *InListExpression) equal(other Node) bool {
	o, ok := other.(*InListExpression)
	return ok && equalSlices(l.Values, o.Values)
}

func (l *InListExpression) hash(h *hasher) {
	h.tag("InListExpression")
	hashSlice(h, l.Values)
}

// LikePredicate is value LIKE pattern [ESCAPE escape].
type LikePredicate struct {
	BaseNode
	Value   Expression
	Pattern Expression
	Escape  Expression // optional
}

func (*LikePredicate) expressionNode() {}

// Children implements Node.
func (l *LikePredicate) Children() []Node { return collect(l.Value, l.Pattern, l.Escape) }

func (l *LikePredicate) equal(other Node) bool {
	o, ok := other.(*LikePredicate)
	return ok && Equal(l.Value, o.Value) && Equal(l.Pattern, o.Pattern) && Equal(l.Escape, o.Escape)
}

func (l *LikePredicate) hash(h *hasher) {
	h.tag("LikePredicate")
	h.node(l.Value)
	h.node(l.Pattern)
	h.node(l.Escape)
}

// Cast converts Expression to Type. Safe is TRY_CAST, which yields NULL on failure.
// Type is the canonical lower-case type name, e.g. "decimal(10,2)".
type Cast struct {
	BaseNode
	Expression Expression
	Type       string
	Safe       bool
}

func (*Cast) expressionNode() {}

// Children implements Node.
func (c *Cast) Children() []Node { return collect(c.Expression) }

func (c *Cast) equal(other Node) bool {
	o, ok := other.(*Cast)
	return ok && c.Type == o.Type && c.Safe == o.Safe && Equal(c.Expression, o.Expression)
}

func (c *Cast) hash(h *hasher) {
	h.tag("Cast")
	h.node(c.Expression)
	h.str(c.Type)
	h.bool(c.Safe)
}

// WhenClause is one WHEN operand THEN result arm of a CASE.
type WhenClause struct {
	BaseNode
	Operand Expression
	Result  Expression
}

func (*WhenClause) expressionNode() {}

// Children implements Node.
func (w *WhenClause) Children() []Node { return collect(w.Operand, w.Result) }

func (w *WhenClause) equal(other Node) bool {
	o, ok := other.(*WhenClause)
	return ok && Equal(w.Operand, o.Operand) && Equal(w.Result, o.Result)
}

func (w *WhenClause) hash(h *hasher) {
	h.tag("WhenClause")
	h.node(w.Operand)
	h.node(w.Result)
}

// SearchedCaseExpression is CASE WHEN cond THEN result ... [ELSE default] END.
type SearchedCaseExpression struct {
	BaseNode
	WhenClauses  []*WhenClause
	DefaultValue Expression // optional
}

func (*SearchedCaseExpression) expressionNode() {}

// Children implements Node.
func (c *SearchedCaseExpression) Children() []Node {
	return append(appendAll(nil, c.WhenClauses), collect(c.DefaultValue)...)
}

func (c *SearchedCaseExpression) equal(other Node) bool {
	o, ok := other.(*SearchedCaseExpression)
	return ok && equalSlices(c.WhenClauses, o.WhenClauses) && Equal(c.DefaultValue, o.DefaultValue)
}

func (c *SearchedCaseExpression) hash(h *hasher) {
	h.tag("SearchedCaseExpression")
	hashSlice(h, c.WhenClauses)
	h.node(c.DefaultValue)
}

// SimpleCaseExpression is CASE operand WHEN value THEN result ... [ELSE default] END.
type SimpleCaseExpression struct {
	BaseNode
	Operand      Expression
	WhenClauses  []*WhenClause
	DefaultValue Expression // optional
}

func (*SimpleCaseExpression) expressionNode() {}

// Children implements Node.
func (c *SimpleCaseExpression) Children() []Node {
	out := collect(c.Operand)
	out = appendAll(out, c.WhenClauses)
	return append(out, collect(c.DefaultValue)...)
}

func (c *SimpleCaseExpression) equal(other Node) bool {
	o, ok := other.(*SimpleCaseExpression)
	return ok && Equal(c.Operand, o.Operand) && equalSlices(c.WhenClauses, o.WhenClauses) &&
		Equal(c.DefaultValue, o.DefaultValue)
}

func (c *SimpleCaseExpression) hash(h *hasher) {
	h.tag("SimpleCaseExpression")
	h.node(c.Operand)
	hashSlice(h, c.WhenClauses)
	h.node(c.DefaultValue)
}

// SubqueryExpression is a parenthesized query used as a value.
type SubqueryExpression struct {
	BaseNode
	Query *Query
}

func (*SubqueryExpression) expressionNode() {}

// Children implements Node.
func (s *SubqueryExpression) Children() []Node { return collect(s.Query) }

func (s *SubqueryExpression) equal(other Node) bool {
	o, ok := other.(*SubqueryExpression)
	return ok && Equal(s.Query, o.Query)
}

func (s *SubqueryExpression) hash(h *hasher) {
	h.tag("SubqueryExpression")
	h.node(s.Query)
}
