// Package pdb implements the additive pattern-database store and the BFS
// generator that produces one database per disjoint tile group.
package pdb

import (
	"os"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/vxmppz/taquin/internal/puzzle"
	"github.com/vxmppz/taquin/internal/puzzleerr"
)

// Standard install paths for the canonical N=4 partition (spec §6). Order
// matches heuristic.StandardGroups.
const (
	FileGroup234        = "234.db.bin"
	FileGroup15691013   = "15691013.db.bin"
	FileGroup7811121415 = "7811121415.db.bin"
)

// Store is an in-memory collection of pattern databases, one per tile
// group, loaded once and shared read-only by every solver that consults
// it. Boards hold no reference to it.
type Store struct {
	tables map[string]map[uint64]byte
}

// NewStore returns an empty store. Boards and Values default to a miss (0)
// for any group with no loaded table.
func NewStore() *Store {
	return &Store{tables: make(map[string]map[uint64]byte)}
}

// Load reads a binary PDB file and registers it under group.
func (s *Store) Load(group puzzle.Group, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return puzzleerr.Wrap(puzzleerr.MissingPdb, "pattern database not found: "+path, err)
		}
		return puzzleerr.WrapIO("reading pattern database "+path, err)
	}
	table, err := decodeRecords(data)
	if err != nil {
		return err
	}
	s.tables[groupKey(group)] = table
	return nil
}

// Lookup returns the stored cost for key under group, or 0 on a miss. A
// miss means the BFS proved that projection unreachable from the goal,
// which does not occur for correctly generated databases; 0 keeps the sum
// admissible regardless.
func (s *Store) Lookup(group puzzle.Group, key uint64) byte {
	table, ok := s.tables[groupKey(group)]
	if !ok {
		return 0
	}
	return table[key]
}

// Len reports how many entries are loaded for group (0 if absent).
func (s *Store) Len(group puzzle.Group) int {
	return len(s.tables[groupKey(group)])
}

// LoadStandard loads the three canonical N=4 databases from prefix using
// the install paths in spec §6, logging entry counts as it goes.
func LoadStandard(prefix string, groups []puzzle.Group, log *zap.Logger) (*Store, error) {
	files := []string{FileGroup234, FileGroup15691013, FileGroup7811121415}
	if len(groups) != len(files) {
		return nil, puzzleerr.Newf(puzzleerr.MissingPdb, "expected %d standard groups, got %d", len(files), len(groups))
	}

	store := NewStore()
	for i, g := range groups {
		path := prefix + string(os.PathSeparator) + files[i]
		if err := store.Load(g, path); err != nil {
			return nil, err
		}
		if log != nil {
			log.Info("loaded pattern database",
				zap.String("path", path),
				zap.String("entries", humanize.Comma(int64(store.Len(g)))),
			)
		}
	}
	return store, nil
}

// groupKey builds a stable string key for a tile group, independent of Go's
// random map iteration order.
func groupKey(g puzzle.Group) string {
	values := make([]int, 0, len(g))
	for v := range g {
		values = append(values, int(v))
	}
	sort.Ints(values)
	key := make([]byte, 0, len(values)*3)
	for i, v := range values {
		if i > 0 {
			key = append(key, ',')
		}
		key = append(key, []byte(strconv.Itoa(v))...)
	}
	return string(key)
}
