// Package taquin is the public façade over the sliding-tile solver: solve a
// board optimally, generate a random solvable one, check solvability, and
// build or load the additive pattern databases the N=4 heuristic uses.
// Every exported call here is a thin wrapper — the algorithms live in
// internal/puzzle, internal/heuristic, internal/pdb and internal/solver.
package taquin

import (
	"math/rand"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vxmppz/taquin/internal/heuristic"
	"github.com/vxmppz/taquin/internal/pdb"
	"github.com/vxmppz/taquin/internal/puzzle"
	"github.com/vxmppz/taquin/internal/puzzleerr"
	"github.com/vxmppz/taquin/internal/solver"
)

// Move is the direction enum a solution is expressed in: UP, DOWN, LEFT,
// RIGHT.
type Move = puzzle.Move

// The four move directions, re-exported from the internal puzzle package.
const (
	Up    = puzzle.Up
	Down  = puzzle.Down
	Left  = puzzle.Left
	Right = puzzle.Right
)

// PDBStore is the loaded, read-only collection of pattern databases a
// solver consults for N=4 boards.
type PDBStore = pdb.Store

// StandardGroups is the canonical N=4 disjoint tile partition: {2,3,4},
// {1,5,6,9,10,13}, {7,8,11,12,14,15}.
var StandardGroups = heuristic.StandardGroups

// Error code re-exports so callers can errors.Is(err, taquin.ErrUnsolvable)
// without importing the internal package.
var (
	ErrInvalidSize    = puzzleerr.ErrInvalidSize
	ErrWrongLength    = puzzleerr.ErrWrongLength
	ErrNotPermutation = puzzleerr.ErrNotPermutation
	ErrUnsolvable     = puzzleerr.ErrUnsolvable
	ErrMissingPdb     = puzzleerr.ErrMissingPdb
	ErrCorruptPdb     = puzzleerr.ErrCorruptPdb
	ErrIoError        = puzzleerr.ErrIoError
)

// Solve parses board (the ASCII row-major format, e.g. "1 2 3 4 5 6 7 8 0"),
// validates it, and returns the optimal move sequence via IDA*. store may
// be nil; it is only consulted for N=4 boards.
func Solve(board string, n int, store *PDBStore, log *zap.Logger) ([]Move, error) {
	b, err := puzzle.ParseBoard(board, n)
	if err != nil {
		return nil, err
	}
	return solver.New(store, log).Solve(b)
}

// CheckSolvable reports whether board is solvable, per the inversion-parity
// test (spec §4.7). It does not require the board to already be a valid
// permutation beyond InversionCount's length check and the presence of an
// empty cell (tile 0).
func CheckSolvable(board string, n int) (bool, error) {
	tiles, err := parseTiles(board)
	if err != nil {
		return false, err
	}
	return puzzle.CheckSolvable(tiles, n)
}

// InversionCount returns the number of inverted pairs in board.
func InversionCount(board string, n int) (int, error) {
	tiles, err := parseTiles(board)
	if err != nil {
		return 0, err
	}
	return puzzle.InversionCount(tiles, n)
}

// parseTiles parses the ASCII board format without running the full
// Validate pipeline, since CheckSolvable and InversionCount are meant to
// work on (and report about) boards that may turn out to be unsolvable.
func parseTiles(board string) ([]uint8, error) {
	return puzzle.ParseTiles(board)
}

// GenerateBoard returns a random solvable board string for an n×n puzzle.
// It shuffles a solved board with Fisher-Yates and repairs parity by
// swapping two adjacent non-zero tiles if the shuffle landed on an
// unsolvable permutation.
func GenerateBoard(n int, rng *rand.Rand) (string, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	size := n * n
	tiles := make([]uint8, size)
	for i := range tiles {
		tiles[i] = uint8((i + 1) % size)
	}

	rng.Shuffle(size, func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })

	solvable, err := puzzle.CheckSolvable(tiles, n)
	if err != nil {
		return "", err
	}
	if !solvable {
		repairParity(tiles)
	}

	b, err := puzzle.New(tiles, n)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// repairParity swaps the first two adjacent non-zero tiles it finds, which
// flips the inversion count's parity by exactly one and so turns an
// unsolvable permutation into a solvable one (and vice versa).
func repairParity(tiles []uint8) {
	for i := 0; i+1 < len(tiles); i++ {
		if tiles[i] != 0 && tiles[i+1] != 0 {
			tiles[i], tiles[i+1] = tiles[i+1], tiles[i]
			return
		}
	}
}

// GeneratePatternDB builds one additive pattern database for group over an
// n×n goal board and writes it to outputPath. Idempotent: a no-op if
// outputPath already exists.
func GeneratePatternDB(goal string, n int, group []uint8, outputPath string, log *zap.Logger) error {
	tiles, err := parseTiles(goal)
	if err != nil {
		return err
	}
	return pdb.Generate(tiles, n, puzzle.NewGroup(group...), outputPath, log)
}

// GenerateStandardPatternDatabases builds the three canonical N=4 pattern
// databases at their install paths under prefix, one per StandardGroups
// entry, building them concurrently since the three BFS runs are over
// disjoint groups and disjoint output files. workers bounds concurrency;
// 0 means "let errgroup run all three at once" (there are only three).
func GenerateStandardPatternDatabases(prefix string, workers int, log *zap.Logger) error {
	goal := make([]uint8, 16)
	for i := 0; i < 15; i++ {
		goal[i] = uint8(i + 1)
	}
	goal[15] = 0

	files := []string{pdb.FileGroup234, pdb.FileGroup15691013, pdb.FileGroup7811121415}

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, group := range StandardGroups {
		i, group := i, group
		g.Go(func() error {
			return pdb.Generate(goal, 4, group, prefix+"/"+files[i], log)
		})
	}
	return g.Wait()
}

// LoadStandardPDBs loads the three canonical N=4 databases from prefix.
func LoadStandardPDBs(prefix string, log *zap.Logger) (*PDBStore, error) {
	return pdb.LoadStandard(prefix, StandardGroups, log)
}
