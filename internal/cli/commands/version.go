package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display sqlfront version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sqlfront v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Trino and SparkSQL front end built with %s\n", runtime.Version())
		},
	}
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			opts, _, err := cc.ParsingOptions()
			if err != nil {
				return err
			}
			renderDialects(cc.Out, opts.SQLDialect())
			return nil
		},
	}
}
