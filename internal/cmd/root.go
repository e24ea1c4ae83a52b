package cmd

import (
	"github.com/spf13/cobra"

	"github.com/genry-dev/genry/internal/output"
	"github.com/genry-dev/genry/internal/version"
)

var (
	// Global flags
	pathFlag       string
	configFlag     string
	verboseFlag    bool
	ipcServerFlag  string
	terminalIDFlag string
)

// NewRootCmd creates the root command for the genry CLI. Invocation with no
// subcommand runs the default scaffolding flow.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "genry",
		Short: "Interactive project scaffolding",
		Long: `genry discovers template files in your package, lets you pick one,
and runs its generation routine in the target directory.

Template files are executable modules named <anything>.genry.<ext> found
anywhere under the nearest package root.`,
		Version:       version.GetInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(verboseFlag)
		},
		RunE: runScaffold,
	}

	// Flag-parse failures are usage errors, same exit code as an
	// unloadable configuration.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return NewExitError(err, ExitUsageError)
	})

	rootCmd.Flags().StringVarP(&pathFlag, "path", "p", ".", "Generation target directory")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to rc file (default: .genryrc.* in the package root)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose output")

	// Editor-integration channel, set by the extension, not by humans.
	rootCmd.Flags().StringVar(&ipcServerFlag, "ipcServer", "", "IPC server id for editor integration")
	rootCmd.Flags().StringVar(&terminalIDFlag, "terminalId", "", "Terminal id for editor integration")
	_ = rootCmd.Flags().MarkHidden("ipcServer")
	_ = rootCmd.Flags().MarkHidden("terminalId")

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
