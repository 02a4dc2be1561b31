package commands

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlfront/internal/cli/testutil"
	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/parser"
)

func sampleView(t *testing.T) *NodeView {
	t.Helper()
	expr, err := parser.CreateExpression("x = 'a'", core.DefaultParsingOptions())
	require.NoError(t, err)
	return NewNodeView(expr)
}

func TestTreeStyles_PlainWhenNotTerminal(t *testing.T) {
	styles := newTreeStyles(&bytes.Buffer{})
	assert.False(t, styles.enabled)

	label := sampleView(t).label(styles)
	testutil.AssertNoANSI(t, label)
	assert.Equal(t, `ComparisonExpression @1:3 operator="EQUAL"`, label)
}

func TestTreeStyles_ColouredOnTerminalProfile(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	styles := stylesFor(r)

	view := sampleView(t)
	styled := view.label(styles)
	plain := view.label(treeStyles{})

	assert.NotEqual(t, plain, styled)
	assert.Contains(t, styled, "\x1b[")
	assert.Equal(t, plain, testutil.StripANSI(styled))
}

func TestRenderTree_Plain(t *testing.T) {
	expr, err := parser.CreateExpression("-1", core.DefaultParsingOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderTree(&buf, []core.Node{expr}, treeStyles{}))
	testutil.AssertNoANSI(t, buf.String())
	assert.Contains(t, buf.String(), "ArithmeticUnaryExpression @1:1")
	assert.Contains(t, buf.String(), "LongLiteral @1:2 value=1")
}
