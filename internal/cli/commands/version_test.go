package commands

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlfront/internal/cli/testutil"
)

func TestVersionCommand(t *testing.T) {
	for _, version := range []string{"0.1.0", "1.2.3", "dev"} {
		t.Run(version, func(t *testing.T) {
			res := testutil.Run(t, NewVersionCommand(version), testutil.Config("trino"), "")
			require.NoError(t, res.Err)
			assert.Contains(t, res.Out, "sqlfront v"+version+"\n")
			assert.Contains(t, res.Out, runtime.Version())
			assert.Empty(t, res.ErrOut)
		})
	}
}

func TestVersionCommand_Metadata(t *testing.T) {
	cmd := NewVersionCommand("test")
	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestDialectsCommand(t *testing.T) {
	tests := []struct {
		dialect string
		marked  string
	}{
		{dialect: "trino", marked: "TRINO"},
		{dialect: "sparksql", marked: "SPARKSQL"},
	}
	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			res := testutil.Run(t, NewDialectsCommand(), testutil.Config(tt.dialect), "")
			require.NoError(t, res.Err)
			assert.Contains(t, res.Out, "TRINO")
			assert.Contains(t, res.Out, "SPARKSQL")
			assert.Regexp(t, `\*\s+│\s+`+tt.marked, res.Out)
		})
	}
}

func TestDialectsCommand_RejectsArgs(t *testing.T) {
	res := testutil.Run(t, NewDialectsCommand(), testutil.Config("trino"), "", "extra")
	assert.Error(t, res.Err)
}
