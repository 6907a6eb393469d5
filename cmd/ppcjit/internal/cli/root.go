// Package cli wires cobra subcommands over the internal/asm/ppc assembler.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	log        = logrus.New()
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ppcjit",
		Short: "Diagnostic front-end for the PowerPC-32 JIT assembler back-end",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level tracing")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a ppcjit.toml feature/tuning file")

	root.AddCommand(newPlanCommand())
	root.AddCommand(newAssembleCommand())
	return root
}

// Execute runs the ppcjit root command against os.Args.
func Execute() error {
	return newRootCommand().Execute()
}
