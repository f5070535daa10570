package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vxmppz/taquin/internal/puzzle"
)

func TestMoveStringAndInverse(t *testing.T) {
	cases := []struct {
		move    puzzle.Move
		name    string
		inverse puzzle.Move
	}{
		{puzzle.Left, "LEFT", puzzle.Right},
		{puzzle.Right, "RIGHT", puzzle.Left},
		{puzzle.Up, "UP", puzzle.Down},
		{puzzle.Down, "DOWN", puzzle.Up},
	}

	for _, tc := range cases {
		require.Equal(t, tc.name, tc.move.String())
		require.Equal(t, tc.inverse, tc.move.Inverse())
		require.Equal(t, tc.move, tc.move.Inverse().Inverse())
	}
}
