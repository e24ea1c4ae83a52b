package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genry-dev/genry/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show CLI version information",
		RunE:  runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), version.GetInfo().String())
	return nil
}
