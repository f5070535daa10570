package pdb

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vxmppz/taquin/internal/puzzle"
	"github.com/vxmppz/taquin/internal/puzzleerr"
)

// node is one frontier entry in the generator's BFS. groupCost is the
// value that will be stored in the database for this state's G-projection
// — it only advances when a move displaces a tile that belongs to the
// group, never on moves of tiles outside it (see Generate's doc comment).
type node struct {
	board     *puzzle.Board
	groupCost byte
}

// Generate runs the BFS pattern-database construction for group over a
// goal board of side n, and writes the result to outputPath.
//
// Two structures are kept distinct, per spec:
//   - visited, keyed by the partial hash under group⁺ (group plus the
//     empty cell), distinguishes configurations that differ only in where
//     the empty cell sits — without it BFS would stop expanding the moment
//     the group's tiles first reach a given arrangement, missing the
//     cheaper paths that pass through different blank positions.
//   - database, keyed by the partial hash under group alone, holds the
//     minimum cost to reach each projected configuration.
//
// Cost accounting is the detail that makes the three standard databases
// additive: a move only increments groupCost when the tile it displaces is
// itself a member of group. Moves of tiles outside the group reposition
// the blank for free as far as this database is concerned, exactly as
// Korf's disjoint-PDB technique requires — summing databases that instead
// counted every move would double- and triple-charge the non-group moves.
//
// Generation is idempotent: if outputPath already exists, Generate is a
// no-op. Output is written to a temp file and renamed into place so a
// reader never observes a partially written database; a file lock on
// outputPath+".lock" prevents two processes from racing the same build.
func Generate(goal []uint8, n int, group puzzle.Group, outputPath string, log *zap.Logger) error {
	if _, err := os.Stat(outputPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return puzzleerr.WrapIO("stat "+outputPath, err)
	}

	lock := flock.New(outputPath + ".lock")
	if err := lock.Lock(); err != nil {
		return puzzleerr.WrapIO("locking "+outputPath, err)
	}
	defer lock.Unlock()

	// Re-check after acquiring the lock: another process may have finished
	// the build while we were waiting.
	if _, err := os.Stat(outputPath); err == nil {
		return nil
	}

	groupPlus := group.Plus()
	goalBoard := puzzle.NewUnvalidated(goal, n)

	visited := make(map[uint64]bool)
	database := make(map[uint64]byte)

	visited[goalBoard.PartialStateHash(groupPlus)] = true
	database[goalBoard.PartialStateHash(group)] = 0

	queue := []node{{board: goalBoard, groupCost: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, m := range current.board.AvailableMoves() {
			movingTile := current.board.TileMoving(m)
			child := current.board.PerformMove(m)

			plusKey := child.PartialStateHash(groupPlus)
			if visited[plusKey] {
				continue
			}
			visited[plusKey] = true

			cost := current.groupCost
			if group[movingTile] {
				cost++
			}

			key := child.PartialStateHash(group)
			if existing, ok := database[key]; !ok || cost < existing {
				database[key] = cost
			}

			queue = append(queue, node{board: child, groupCost: cost})
		}
	}

	if err := writeAtomic(outputPath, database); err != nil {
		return err
	}
	if log != nil {
		log.Info("generated pattern database",
			zap.String("path", outputPath),
			zap.String("entries", humanize.Comma(int64(len(database)))),
		)
	}
	return nil
}

// writeAtomic serializes table sorted ascending by key to a temp file in
// outputPath's directory, then renames it into place.
func writeAtomic(outputPath string, table map[uint64]byte) error {
	keys := make([]uint64, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	dir := filepath.Dir(outputPath)
	tmpPath := filepath.Join(dir, "."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmpPath, encodeRecords(keys, table), 0o644); err != nil {
		return puzzleerr.WrapIO("writing temp pattern database", err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return puzzleerr.WrapIO("renaming pattern database into place", err)
	}
	return nil
}
