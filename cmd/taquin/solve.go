package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vxmppz/taquin"
)

func newSolveCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <board>",
		Short: "Solve a board optimally and print the move sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var store *taquin.PDBStore
			if state.n == 4 {
				loaded, err := taquin.LoadStandardPDBs(state.pdbPrefix, state.log)
				if err != nil {
					return err
				}
				store = loaded
			}

			moves, err := taquin.Solve(args[0], state.n, store, state.log)
			if err != nil {
				return err
			}

			names := make([]string, len(moves))
			for i, m := range moves {
				names[i] = m.String()
			}
			fmt.Println(strings.Join(names, " "))
			return nil
		},
	}
}
