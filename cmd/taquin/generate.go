package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vxmppz/taquin"
)

func newGeneratePDBCommand(state *cliState) *cobra.Command {
	var goal string
	var groupCSV string
	var output string

	cmd := &cobra.Command{
		Use:   "generate-pdb",
		Short: "Generate one additive pattern database for a tile group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := parseGroup(groupCSV)
			if err != nil {
				return err
			}
			return taquin.GeneratePatternDB(goal, state.n, group, output, state.log)
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 0", "goal board, row-major")
	cmd.Flags().StringVar(&groupCSV, "group", "2,3,4", "comma-separated tile values forming the group")
	cmd.Flags().StringVar(&output, "output", "pdb.db.bin", "output file path")

	return cmd
}

func newGenerateStandardPDBsCommand(state *cliState) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "generate-standard-pdbs",
		Short: "Generate the three canonical N=4 pattern databases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return taquin.GenerateStandardPatternDatabases(state.pdbPrefix, workers, state.log)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "max concurrent database builds (0 = all three at once)")
	return cmd
}

func parseGroup(csv string) ([]uint8, error) {
	fields := strings.Split(csv, ",")
	group := make([]uint8, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		group = append(group, uint8(v))
	}
	return group, nil
}
