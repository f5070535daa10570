package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vxmppz/taquin"
)

func newCheckSolvableCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "check-solvable <board>",
		Short: "Print whether a board is solvable and its inversion count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			solvable, err := taquin.CheckSolvable(args[0], state.n)
			if err != nil {
				return err
			}
			inversions, err := taquin.InversionCount(args[0], state.n)
			if err != nil {
				return err
			}
			fmt.Printf("solvable=%t inversions=%d\n", solvable, inversions)
			return nil
		},
	}
}

func newGenerateBoardCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "generate-board",
		Short: "Print a random solvable board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := taquin.GenerateBoard(state.n, nil)
			if err != nil {
				return err
			}
			fmt.Println(board)
			return nil
		},
	}
}
