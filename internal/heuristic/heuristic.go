// Package heuristic combines Manhattan distance with additive pattern
// database lookups into the admissible function that guides IDA*.
package heuristic

import (
	"github.com/vxmppz/taquin/internal/pdb"
	"github.com/vxmppz/taquin/internal/puzzle"
)

// StandardGroups is the canonical N=4 disjoint partition used by
// GenerateStandardPatternDatabases and consulted by ValueWithStore: {2,3,4},
// {1,5,6,9,10,13}, {7,8,11,12,14,15}.
var StandardGroups = []puzzle.Group{
	puzzle.NewGroup(2, 3, 4),
	puzzle.NewGroup(1, 5, 6, 9, 10, 13),
	puzzle.NewGroup(7, 8, 11, 12, 14, 15),
}

// Value returns the Manhattan distance of b alone: it is ValueWithStore
// with a nil store, so no PDB term is ever consulted.
func Value(b *puzzle.Board) int {
	return ValueWithStore(b, nil)
}

// ValueWithStore returns max(manhattan, pdbSum): the larger of two
// admissible heuristics is itself admissible. The PDB term is only
// consulted when b.N() == 4 and store is non-nil; otherwise the result is
// Manhattan distance alone.
func ValueWithStore(b *puzzle.Board, store *pdb.Store) int {
	m := manhattan(b)
	if b.N() != 4 || store == nil {
		return m
	}
	if p := pdbSum(b, store); p > m {
		return p
	}
	return m
}

func manhattan(b *puzzle.Board) int {
	n := b.N()
	tiles := b.Tiles()
	sum := 0
	for i, t := range tiles {
		if t == 0 {
			continue
		}
		goal := int(t) - 1
		sum += abs(i/n-goal/n) + abs(i%n-goal%n)
	}
	return sum
}

func pdbSum(b *puzzle.Board, store *pdb.Store) int {
	sum := 0
	for _, g := range StandardGroups {
		sum += int(store.Lookup(g, b.PartialStateHash(g)))
	}
	return sum
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
