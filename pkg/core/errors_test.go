package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/sqlfront/pkg/core"
)

func TestError_Format(t *testing.T) {
	err := core.ErrorAt(core.UnsupportedLiteral, core.NewNodeLocation(3, 5), core.ErrMsgRejectedDecimal, "1.5")
	assert.Equal(t,
		"line 3:5: unsupported literal: decimal literal 1.5 is not allowed; set decimal literal treatment to AS_DOUBLE or AS_DECIMAL",
		err.Error())

	noLoc := core.Errorf(core.InvalidConfiguration, nil, core.ErrMsgMissingDialect)
	assert.Equal(t, "invalid configuration: sql dialect is required", noLoc.Error())
}

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", core.ErrorAt(core.UnsupportedConstruct, core.NewNodeLocation(1, 1), core.ErrMsgNoRule, "x"))

	assert.True(t, errors.Is(err, core.ErrUnsupportedConstruct))
	assert.False(t, errors.Is(err, core.ErrUnsupportedLiteral))

	var coreErr *core.Error
	assert.True(t, errors.As(err, &coreErr))
	assert.Equal(t, 1, coreErr.Location.Line)
}

func TestError_Cause(t *testing.T) {
	cause := errors.New("boom")
	err := core.Errorf(core.SyntaxError, nil, "bad input").WithCause(cause)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, core.ErrSyntax)
	assert.Contains(t, err.Error(), "boom")
}

func TestNodeLocation(t *testing.T) {
	loc := core.NewNodeLocation(3, 5)
	assert.True(t, loc.IsValid())
	assert.Equal(t, "3:5", loc.String())
	assert.False(t, core.NodeLocation{}.IsValid())

	got, ok := core.At(loc).Location()
	assert.True(t, ok)
	assert.Equal(t, loc, got)
}
