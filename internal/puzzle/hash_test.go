package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vxmppz/taquin/internal/puzzle"
)

func TestStateHashLiteralVectors(t *testing.T) {
	cases := []struct {
		name  string
		board string
		n     int
		want  uint64
	}{
		{"3x3 solved", "1 2 3 4 5 6 7 8 0", 3, 0x87654321},
		{"3x3 unsolvable", "5 4 7 2 8 0 6 1 3", 3, 0x316082745},
		{"3x3 solvable", "4 5 7 2 8 0 6 1 3", 3, 0x316082754},
		{"4x4 solved", "1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 0", 4, 0xfedcba987654321},
		{"4x4 solvable", "12 1 10 2 7 11 4 14 5 0 9 15 8 13 6 3", 4, 0x36d8f905e4b72a1c},
		{"4x4 unsolvable", "1 2 3 4 5 6 7 8 9 10 11 12 13 15 14 0", 4, 0x0efdcba987654321},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tiles, err := puzzle.ParseTiles(tc.board)
			require.NoError(t, err)
			b := puzzle.NewUnvalidated(tiles, tc.n)
			require.Equal(t, tc.want, b.StateHash())
		})
	}
}

func TestPartialStateHashCollapsesOutOfGroupTiles(t *testing.T) {
	tiles, err := puzzle.ParseTiles("1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 0")
	require.NoError(t, err)
	b := puzzle.NewUnvalidated(tiles, 4)

	group := puzzle.NewGroup(2, 3, 4)

	other, err := puzzle.ParseTiles("1 2 3 4 15 14 13 12 11 10 9 8 7 6 5 0")
	require.NoError(t, err)
	b2 := puzzle.NewUnvalidated(other, 4)

	// Both boards place {2,3,4} identically; every other cell differs, so the
	// partial hash must agree while the full hash does not.
	require.Equal(t, b.PartialStateHash(group), b2.PartialStateHash(group))
	require.NotEqual(t, b.StateHash(), b2.StateHash())
}
