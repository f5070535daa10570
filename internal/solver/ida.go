// Package solver implements the IDA* search that produces optimal move
// sequences for a validated board.
package solver

import (
	"sort"

	"go.uber.org/zap"

	"github.com/vxmppz/taquin/internal/heuristic"
	"github.com/vxmppz/taquin/internal/pdb"
	"github.com/vxmppz/taquin/internal/puzzle"
	"github.com/vxmppz/taquin/internal/puzzleerr"
)

// infinity stands in for "no child stayed within bound"; any real f-value
// for a board in [2,4] is far below this.
const infinity = 1 << 30

// Solver runs IDA* against a shared, read-only pattern-database store. The
// core search is single-threaded and synchronous: no timeouts, no
// cancellation points, identical input always yields identical output.
type Solver struct {
	store *pdb.Store
	log   *zap.Logger
}

// New returns a Solver. store may be nil, in which case the heuristic
// falls back to Manhattan distance alone.
func New(store *pdb.Store, log *zap.Logger) *Solver {
	return &Solver{store: store, log: log}
}

// searchResult is the outcome of one bounded DFS pass: either a solved
// board, or the lowest f-value observed that exceeded the bound.
type searchResult struct {
	solved bool
	cost   int
	board  *puzzle.Board
}

// Solve runs IDA* from board, raising the bound to the minimum f that
// exceeded it each pass, until a solution is found. board must already be
// Validate()'d; Solve does not re-check solvability.
func (s *Solver) Solve(board *puzzle.Board) ([]puzzle.Move, error) {
	bound := s.heuristic(board)

	for {
		result := s.dfs(board, bound)
		if result.solved {
			return result.board.Moves(), nil
		}
		if result.cost >= infinity {
			return nil, puzzleerr.New(puzzleerr.Unsolvable, "IDA* exhausted the search space without finding a solution")
		}
		if s.log != nil {
			s.log.Debug("raising IDA* bound", zap.Int("from", bound), zap.Int("to", result.cost))
		}
		bound = result.cost
	}
}

// heuristic returns b's heuristic value, computing it at most once per
// board: Value/ValueWithStore sum a Manhattan pass plus three PDB lookups,
// and dfs's sort comparator would otherwise redo that work for every child
// on every bound pass.
func (s *Solver) heuristic(b *puzzle.Board) int {
	return b.Heuristic(func() int { return heuristic.ValueWithStore(b, s.store) })
}

// dfs explores board's subtree up to bound, pruning the move that would
// immediately undo the one that produced board.
func (s *Solver) dfs(board *puzzle.Board, bound int) searchResult {
	f := board.Cost() + s.heuristic(board)
	if f > bound {
		return searchResult{solved: false, cost: f, board: board}
	}
	if board.CheckSolved() {
		return searchResult{solved: true, cost: f, board: board}
	}

	children := s.successors(board)

	minCost := infinity
	for _, child := range children {
		result := s.dfs(child, bound)
		if result.solved {
			return result
		}
		if result.cost < minCost {
			minCost = result.cost
		}
	}

	return searchResult{solved: false, cost: minCost, board: board}
}

// successors generates the legal children of board, skipping the move
// that would undo board's own last move, and orders them ascending by
// their own f-value so the first branch explored tends to tighten the
// bound fastest.
func (s *Solver) successors(board *puzzle.Board) []*puzzle.Board {
	moves := board.AvailableMoves()
	children := make([]*puzzle.Board, 0, len(moves))

	hasParent := board.Cost() > 0
	var skip puzzle.Move
	if hasParent {
		skip = board.LastMove().Inverse()
	}

	for _, m := range moves {
		if hasParent && m == skip {
			continue
		}
		children = append(children, board.PerformMove(m))
	}

	sort.SliceStable(children, func(i, j int) bool {
		return children[i].Cost()+s.heuristic(children[i]) < children[j].Cost()+s.heuristic(children[j])
	})

	return children
}
