package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug     bool
	logFile   string
	workspace string
}

func Execute() {
	cmd := newRootCmd(os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "dvmm",
		Short:        "dvmm converts records between domain and view models",
		SilenceUsage: true,
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging (stderr, or --log-file when set)")
	cmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "write JSON logs to this file")
	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		convertCmd(g, directionView),
		convertCmd(g, directionDomain),
		checkCmd(g),
		entitiesCmd(g),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
