// Package puzzle implements the immutable sliding-tile board: state,
// successor generation, validation and the hashing scheme the heuristic
// and pattern databases key off.
package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vxmppz/taquin/internal/puzzleerr"
)

// MinSize and MaxSize bound the supported board side length.
const (
	MinSize = 2
	MaxSize = 4
)

// Board is an immutable puzzle state. Successors are produced by
// PerformMove, which returns a fresh Board; the original is never mutated.
// History is represented as a parent pointer plus the move that produced
// this state from it, reconstructed on demand by Moves — cheaper than
// storing the full move slice per board (spec design note, §9).
type Board struct {
	tiles   []uint8
	n       int
	zeroPos int

	parent    *Board
	lastMove  Move
	moveCount int

	hash *uint64
	heur *int
}

// Heuristic returns the cached heuristic value for this board, calling
// compute to fill the cache on first use. Safe to memoize because a Board
// is immutable and never swapped for a cheaper-cost duplicate once built
// (spec.md §4.1/§9's caching note); callers pass a closure over whatever
// heuristic function and PDB store apply, so this package never needs to
// import the heuristic package.
func (b *Board) Heuristic(compute func() int) int {
	if b.heur != nil {
		return *b.heur
	}
	v := compute()
	b.heur = &v
	return v
}

// New constructs a Board from a row-major tile sequence and validates it.
func New(tiles []uint8, n int) (*Board, error) {
	b := &Board{tiles: append([]uint8(nil), tiles...), n: n, zeroPos: -1}
	for i, t := range b.tiles {
		if t == 0 {
			b.zeroPos = i
		}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewUnvalidated constructs a Board without running Validate. Used
// internally by the PDB generator for its goal board, from which every
// other board it visits is derived by legal moves.
func NewUnvalidated(tiles []uint8, n int) *Board {
	b := &Board{tiles: append([]uint8(nil), tiles...), n: n, zeroPos: -1}
	for i, t := range b.tiles {
		if t == 0 {
			b.zeroPos = i
		}
	}
	return b
}

// ParseTiles parses the ASCII board format into a raw tile slice without
// constructing or validating a Board: tiles in row-major order separated
// by single spaces, e.g. "1 2 3 4 5 6 7 8 0".
func ParseTiles(s string) ([]uint8, error) {
	fields := strings.Fields(s)
	tiles := make([]uint8, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, puzzleerr.Wrap(puzzleerr.WrongLength, fmt.Sprintf("non-numeric tile %q", f), err)
		}
		if v < 0 || v > 255 {
			return nil, puzzleerr.Newf(puzzleerr.NotPermutation, "tile value out of range: %d", v)
		}
		tiles = append(tiles, uint8(v))
	}
	return tiles, nil
}

// ParseBoard parses the ASCII board format and constructs a validated
// Board. See ParseTiles for the format.
func ParseBoard(s string, n int) (*Board, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return nil, err
	}
	return New(tiles, n)
}

// String renders the board back into the ASCII row-major format.
func (b *Board) String() string {
	parts := make([]string, len(b.tiles))
	for i, t := range b.tiles {
		parts[i] = strconv.Itoa(int(t))
	}
	return strings.Join(parts, " ")
}

// N returns the board's side length.
func (b *Board) N() int { return b.n }

// ZeroPos returns the row-major index of the empty cell.
func (b *Board) ZeroPos() int { return b.zeroPos }

// Tiles returns a copy of the row-major tile sequence.
func (b *Board) Tiles() []uint8 { return append([]uint8(nil), b.tiles...) }

// TileAt returns the tile value at row-major index i.
func (b *Board) TileAt(i int) uint8 { return b.tiles[i] }

// Cost is the number of moves in this board's history (one move = one unit).
func (b *Board) Cost() int { return b.moveCount }

// LastMove returns the move that produced this board, valid only when
// Cost() > 0.
func (b *Board) LastMove() Move { return b.lastMove }

// Parent returns the board this one was derived from, or nil for a root.
func (b *Board) Parent() *Board { return b.parent }

// Moves reconstructs the ordered move sequence from the root board to this
// one by walking parent pointers.
func (b *Board) Moves() []Move {
	moves := make([]Move, b.moveCount)
	cur := b
	for i := b.moveCount - 1; i >= 0; i-- {
		moves[i] = cur.lastMove
		cur = cur.parent
	}
	return moves
}

// AvailableMoves returns the legal moves from this state in a fixed order
// (LEFT, RIGHT, UP, DOWN) so search order is deterministic.
func (b *Board) AvailableMoves() []Move {
	row, col := b.zeroPos/b.n, b.zeroPos%b.n
	moves := make([]Move, 0, 4)
	if col > 0 {
		moves = append(moves, Left)
	}
	if col < b.n-1 {
		moves = append(moves, Right)
	}
	if row > 0 {
		moves = append(moves, Up)
	}
	if row < b.n-1 {
		moves = append(moves, Down)
	}
	return moves
}

// neighborIndex returns the row-major index the empty cell moves to when m
// is applied.
func (b *Board) neighborIndex(m Move) int {
	row, col := b.zeroPos/b.n, b.zeroPos%b.n
	return (row+m.rowDelta())*b.n + (col + m.colDelta())
}

// TileMoving returns the value of the tile that slides into the empty cell
// when m is applied, without constructing a new board. Used by the PDB
// generator to decide whether a move should be charged to a tile group.
func (b *Board) TileMoving(m Move) uint8 {
	return b.tiles[b.neighborIndex(m)]
}

// PerformMove produces a new Board with m applied: the tile adjacent to the
// empty cell in direction m swaps into the empty cell's slot. Behaviour is
// undefined if m is not in AvailableMoves().
func (b *Board) PerformMove(m Move) *Board {
	ni := b.neighborIndex(m)

	tiles := append([]uint8(nil), b.tiles...)
	tiles[b.zeroPos], tiles[ni] = tiles[ni], tiles[b.zeroPos]

	return &Board{
		tiles:     tiles,
		n:         b.n,
		zeroPos:   ni,
		parent:    b,
		lastMove:  m,
		moveCount: b.moveCount + 1,
	}
}

// CheckSolved reports whether the board is in the goal configuration:
// tile i+1 at index i for every index but the last, and 0 at the last.
func (b *Board) CheckSolved() bool {
	last := len(b.tiles) - 1
	for i := 0; i < last; i++ {
		if b.tiles[i] != uint8(i+1) {
			return false
		}
	}
	return b.tiles[last] == 0
}

// Validate checks the structural and solvability invariants from spec §4.1.
func (b *Board) Validate() error {
	if b.n < MinSize || b.n > MaxSize {
		return puzzleerr.Newf(puzzleerr.InvalidSize, "board size %d outside [%d,%d]", b.n, MinSize, MaxSize)
	}
	want := b.n * b.n
	if len(b.tiles) != want {
		return puzzleerr.Newf(puzzleerr.WrongLength, "got %d tiles, want %d", len(b.tiles), want)
	}

	seen := make([]bool, want)
	for _, t := range b.tiles {
		if int(t) >= want || seen[t] {
			for _, u := range b.tiles {
				if int(u) < want {
					seen[u] = true
				}
			}
			missing := firstMissing(seen)
			return puzzleerr.Newf(puzzleerr.NotPermutation, "not a permutation of [0,%d], first missing value %d", want-1, missing)
		}
		seen[t] = true
	}

	solvable, err := CheckSolvable(b.tiles, b.n)
	if err != nil {
		return err
	}
	if !solvable {
		return puzzleerr.New(puzzleerr.Unsolvable, "board state fails the parity check")
	}
	return nil
}

func firstMissing(seen []bool) int {
	for i, s := range seen {
		if !s {
			return i
		}
	}
	return len(seen)
}
