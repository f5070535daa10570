package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vxmppz/taquin/internal/config"
	"github.com/vxmppz/taquin/internal/obslog"
)

// cliState carries the parsed flags and lazily-built logger shared by every
// subcommand.
type cliState struct {
	n         int
	pdbPrefix string
	logLevel  string
	log       *zap.Logger
}

func newRootCommand() *cobra.Command {
	state := &cliState{}
	defaults := config.Defaults()

	root := &cobra.Command{
		Use:           "taquin",
		Short:         "Optimal sliding-tile puzzle solver and pattern-database generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := obslog.New(state.logLevel)
			if err != nil {
				return err
			}
			state.log = log
			return nil
		},
	}

	root.PersistentFlags().IntVar(&state.n, "n", 3, "board side length (2, 3 or 4)")
	root.PersistentFlags().StringVar(&state.pdbPrefix, "pdb-prefix", defaults.PDBPrefix, "directory holding the standard N=4 pattern databases")
	root.PersistentFlags().StringVar(&state.logLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(
		newSolveCommand(state),
		newGenerateBoardCommand(state),
		newCheckSolvableCommand(state),
		newGeneratePDBCommand(state),
		newGenerateStandardPDBsCommand(state),
	)

	return root
}
