package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlfront/pkg/core"
)

// identCounter counts identifiers and records AnyValue visits.
type identCounter struct {
	anyValues int
}

func (c *identCounter) VisitNode(n core.Node, ctx *int) int {
	return core.VisitChildren[int, *int](c, n, ctx)
}

func (c *identCounter) VisitIdentifier(_ *core.Identifier, ctx *int) int {
	*ctx++
	return *ctx
}

func (c *identCounter) VisitAnyValue(n *core.AnyValue, ctx *int) int {
	c.anyValues++
	return core.VisitChildren[int, *int](c, n, ctx)
}

// familyVisitor only distinguishes node families.
type familyVisitor struct{}

func (familyVisitor) VisitNode(core.Node, struct{}) string             { return "node" }
func (familyVisitor) VisitExpression(core.Expression, struct{}) string { return "expression" }
func (familyVisitor) VisitLiteral(core.Literal, struct{}) string       { return "literal" }
func (familyVisitor) VisitStatement(core.Statement, struct{}) string   { return "statement" }
func (familyVisitor) VisitRelation(core.Relation, struct{}) string     { return "relation" }

func sampleTree() core.Node {
	return &core.Query{
		Body: &core.QuerySpecification{
			Select: &core.Select{Items: []core.SelectItem{
				&core.SingleColumn{Expression: core.NewAnyValue(core.BaseNode{}, &core.Identifier{Value: "a"}, true)},
				&core.SingleColumn{
					Expression: &core.ArithmeticBinaryExpression{
						Operator: core.Add,
						Left:     &core.Identifier{Value: "b"},
						Right:    &core.LongLiteral{Value: 1},
					},
					Alias: &core.Identifier{Value: "c"},
				},
			}},
			From: &core.Table{Name: core.NewQualifiedName("t")},
		},
	}
}

func TestAccept_DefaultTraversalRecurses(t *testing.T) {
	v := &identCounter{}
	count := 0
	core.Accept[int, *int](sampleTree(), v, &count)

	assert.Equal(t, 3, count, "a, b and the alias c")
	assert.Equal(t, 1, v.anyValues)
}

func TestDefaultTraversal(t *testing.T) {
	var v core.DefaultTraversal[int, *int]
	count := 0
	assert.NotPanics(t, func() {
		assert.Zero(t, core.Accept[int, *int](sampleTree(), v, &count))
	})
	assert.Zero(t, count)
}

func TestAccept_FamilyFallback(t *testing.T) {
	tests := []struct {
		name string
		node core.Node
		want string
	}{
		{name: "variant without method falls to expression", node: &core.AnyValue{Expression: &core.Identifier{Value: "x"}}, want: "expression"},
		{name: "literal before expression", node: &core.StringLiteral{Value: "x"}, want: "literal"},
		{name: "statement", node: &core.Query{}, want: "statement"},
		{name: "relation", node: &core.Table{}, want: "relation"},
		{name: "query body is a relation", node: &core.QuerySpecification{}, want: "relation"},
		{name: "other nodes reach VisitNode", node: &core.SortItem{}, want: "node"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.Accept[string, struct{}](tt.node, familyVisitor{}, struct{}{}))
		})
	}
}

func TestWalk(t *testing.T) {
	var names []string
	core.Walk(sampleTree(), func(n core.Node) bool {
		if id, ok := n.(*core.Identifier); ok {
			names = append(names, id.Value)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestWalk_SkipsChildren(t *testing.T) {
	visited := 0
	core.Walk(sampleTree(), func(n core.Node) bool {
		visited++
		_, isSelect := n.(*core.Select)
		return !isSelect
	})
	// Query, QuerySpecification, Select, Table
	assert.Equal(t, 4, visited)
}

func TestCollect(t *testing.T) {
	anyValues := core.Collect[*core.AnyValue](sampleTree())
	require.Len(t, anyValues, 1)
	assert.True(t, anyValues[0].IgnoreNulls)

	assert.Len(t, core.Collect[core.Literal](sampleTree()), 1)
}
