package puzzle

// Group is a set of tile values used for partial hashing and PDB keys.
type Group map[uint8]bool

// NewGroup builds a Group from the given tile values.
func NewGroup(values ...uint8) Group {
	g := make(Group, len(values))
	for _, v := range values {
		g[v] = true
	}
	return g
}

// Plus returns a new group with 0 (the empty cell) added, used to build the
// G⁺ projection the PDB generator's visited set is keyed on.
func (g Group) Plus() Group {
	out := make(Group, len(g)+1)
	for v := range g {
		out[v] = true
	}
	out[0] = true
	return out
}

// sentinel returns the smallest tile value in [0,15] not in g: the stand-in
// used for every cell whose tile falls outside the group when computing a
// partial hash.
func (g Group) sentinel() uint8 {
	for v := uint8(0); v <= 15; v++ {
		if !g[v] {
			return v
		}
	}
	return 15
}

// StateHash packs the board into a 64-bit integer: four bits per cell,
// row-major, little-endian nibble order (cell i occupies nibble i). For
// N=4 this uses the full 64 bits; for N<4 the high nibbles stay zero.
// Collision-free for N<=4 since sixteen values each fit in a nibble.
func (b *Board) StateHash() uint64 {
	if b.hash != nil {
		return *b.hash
	}
	h := packHash(b.tiles, nil)
	b.hash = &h
	return h
}

// PartialStateHash packs the board the same way as StateHash, but replaces
// every cell whose tile is not in group with group's sentinel value. Two
// full states that agree on the positions of group's tiles map to the same
// partial hash regardless of how the other tiles are arranged — this is
// the projection a pattern database is indexed on.
func (b *Board) PartialStateHash(group Group) uint64 {
	return packHash(b.tiles, group)
}

func packHash(tiles []uint8, group Group) uint64 {
	var sentinel uint8
	if group != nil {
		sentinel = group.sentinel()
	}
	var h uint64
	for i, t := range tiles {
		v := t
		if group != nil && !group[t] {
			v = sentinel
		}
		h |= uint64(v) << (4 * uint(i))
	}
	return h
}
