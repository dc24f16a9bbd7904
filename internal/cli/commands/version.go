package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command for the named binary.
func NewVersionCommand(binary, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the binary name and Lazo suite version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", binary, version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Lazo visual modeling suite")
		},
	}
}
