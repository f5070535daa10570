package taquin_test

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vxmppz/taquin"
	"github.com/vxmppz/taquin/internal/heuristic"
	"github.com/vxmppz/taquin/internal/pdb"
	"github.com/vxmppz/taquin/internal/puzzle"
)

func TestScenario1_3x3Solved(t *testing.T) {
	board := "1 2 3 4 5 6 7 8 0"

	solvable, err := taquin.CheckSolvable(board, 3)
	require.NoError(t, err)
	require.True(t, solvable)

	inv, err := taquin.InversionCount(board, 3)
	require.NoError(t, err)
	require.Equal(t, 0, inv)

	moves, err := taquin.Solve(board, 3, nil, nil)
	require.NoError(t, err)
	require.Empty(t, moves)
}

func TestScenario2_3x3Unsolvable(t *testing.T) {
	board := "5 4 7 2 8 0 6 1 3"

	solvable, err := taquin.CheckSolvable(board, 3)
	require.NoError(t, err)
	require.False(t, solvable)

	_, err = taquin.Solve(board, 3, nil, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, taquin.ErrUnsolvable))
}

func TestScenario3_3x3Solvable27Moves(t *testing.T) {
	board := "4 5 7 2 8 0 6 1 3"

	solvable, err := taquin.CheckSolvable(board, 3)
	require.NoError(t, err)
	require.True(t, solvable)

	inv, err := taquin.InversionCount(board, 3)
	require.NoError(t, err)
	require.Equal(t, 16, inv)

	moves, err := taquin.Solve(board, 3, nil, nil)
	require.NoError(t, err)
	require.Len(t, moves, 27)
}

func TestScenario4_4x4Solved(t *testing.T) {
	board := "1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 0"

	inv, err := taquin.InversionCount(board, 4)
	require.NoError(t, err)
	require.Equal(t, 0, inv)

	moves, err := taquin.Solve(board, 4, nil, nil)
	require.NoError(t, err)
	require.Empty(t, moves)
}

func TestScenario6_4x4Unsolvable(t *testing.T) {
	board := "1 2 3 4 5 6 7 8 9 10 11 12 13 15 14 0"

	solvable, err := taquin.CheckSolvable(board, 4)
	require.NoError(t, err)
	require.False(t, solvable)

	_, err = taquin.Solve(board, 4, nil, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, taquin.ErrUnsolvable))
}

// TestScenario5_4x4SolvableWithPDBHeuristic builds the three standard N=4
// pattern databases and exercises the one literal scenario that actually
// drives the PDB-augmented heuristic: without it, an N=4 solve falls back
// to Manhattan distance alone and the scenario can't distinguish a correct
// pdbSum term from a missing one. Slow enough (three BFS builds plus a
// depth-53 IDA* search) to skip under -short.
func TestScenario5_4x4SolvableWithPDBHeuristic(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the three standard pattern databases; skipped under -short")
	}

	dir := t.TempDir()
	require.NoError(t, taquin.GenerateStandardPatternDatabases(dir, 0, nil))

	store, err := taquin.LoadStandardPDBs(dir, nil)
	require.NoError(t, err)

	board := "12 1 10 2 7 11 4 14 5 0 9 15 8 13 6 3"

	tiles, err := puzzle.ParseTiles(board)
	require.NoError(t, err)
	b, err := puzzle.New(tiles, 4)
	require.NoError(t, err)
	require.Equal(t, 39, heuristic.ValueWithStore(b, store))

	moves, err := taquin.Solve(board, 4, store, nil)
	require.NoError(t, err)
	require.Len(t, moves, 53)
}

func TestGenerateStandardPatternDatabasesWritesStandardFiles(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the three standard pattern databases; skipped under -short")
	}

	dir := t.TempDir()
	require.NoError(t, taquin.GenerateStandardPatternDatabases(dir, 2, nil))

	for _, f := range []string{pdb.FileGroup234, pdb.FileGroup15691013, pdb.FileGroup7811121415} {
		require.FileExists(t, filepath.Join(dir, f))
	}

	// Idempotent: a second build over the same prefix is a no-op, not an error.
	require.NoError(t, taquin.GenerateStandardPatternDatabases(dir, 2, nil))

	store, err := taquin.LoadStandardPDBs(dir, nil)
	require.NoError(t, err)
	for _, g := range taquin.StandardGroups {
		require.Greater(t, store.Len(g), 0)
	}
}

func TestGenerateBoardProducesSolvablePermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		board, err := taquin.GenerateBoard(3, rng)
		require.NoError(t, err)

		solvable, err := taquin.CheckSolvable(board, 3)
		require.NoError(t, err)
		require.True(t, solvable)
	}
}

// TestRandom3x3BoardsSolveWithinDiameter is spec.md §8's bounded property
// test: 100 random 3x3 boards, all solvable (GenerateBoard repairs parity),
// all solved in at most 31 moves, the known diameter of the 8-puzzle.
func TestRandom3x3BoardsSolveWithinDiameter(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		board, err := taquin.GenerateBoard(3, rng)
		require.NoError(t, err)

		moves, err := taquin.Solve(board, 3, nil, nil)
		require.NoError(t, err)
		require.LessOrEqual(t, len(moves), 31)
	}
}

// TestRandom4x4BoardsSolveWithinDiameter is the N=4 half of spec.md §8's
// bounded property test: 100 random 4x4 boards, all solved in at most 80
// moves, the known diameter of the 15-puzzle. Uses the standard pattern
// databases so each solve completes in reasonable time; skipped under
// -short along with the other PDB-building tests.
func TestRandom4x4BoardsSolveWithinDiameter(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the three standard pattern databases; skipped under -short")
	}

	dir := t.TempDir()
	require.NoError(t, taquin.GenerateStandardPatternDatabases(dir, 0, nil))
	store, err := taquin.LoadStandardPDBs(dir, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		board, err := taquin.GenerateBoard(4, rng)
		require.NoError(t, err)

		moves, err := taquin.Solve(board, 4, store, nil)
		require.NoError(t, err)
		require.LessOrEqual(t, len(moves), 80)
	}
}

func TestGeneratePatternDBRoundTrip(t *testing.T) {
	dir := t.TempDir()
	goal := "1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 0"
	outputPath := dir + "/group234.db.bin"

	err := taquin.GeneratePatternDB(goal, 4, []uint8{2, 3, 4}, outputPath, nil)
	require.NoError(t, err)

	store := pdb.NewStore()
	require.NoError(t, store.Load(taquin.StandardGroups[0], outputPath))
	require.Greater(t, store.Len(taquin.StandardGroups[0]), 0)
}
