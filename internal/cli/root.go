package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the cider CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cider",
		Short: "Inspect concurrent IR graphs translated from netlist descriptions",
		Long: "cider loads a netlist description (YAML or CUE), translates it into the\n" +
			"concurrent IR, and answers the structural questions a simulation engine\n" +
			"would ask of the resulting graph.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.Verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewCellsCommand(opts))

	return cmd
}
