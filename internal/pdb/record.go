package pdb

import (
	"encoding/binary"

	"github.com/vxmppz/taquin/internal/puzzleerr"
)

// recordSize is the on-disk size of one (key, cost) record: an 8-byte
// little-endian key followed by a 1-byte cost. Files have no header, no
// trailer and no length prefix — file size / recordSize gives the entry
// count.
const recordSize = 9

// decodeRecords parses a PDB binary blob into key->cost pairs.
func decodeRecords(data []byte) (map[uint64]byte, error) {
	if len(data)%recordSize != 0 {
		return nil, puzzleerr.Newf(puzzleerr.CorruptPdb, "file length %d is not a multiple of %d", len(data), recordSize)
	}
	n := len(data) / recordSize
	out := make(map[uint64]byte, n)
	for i := 0; i < n; i++ {
		off := i * recordSize
		key := binary.LittleEndian.Uint64(data[off : off+8])
		cost := data[off+8]
		out[key] = cost
	}
	return out, nil
}

// encodeRecords serializes table in ascending key order, matching the
// natural iteration order of an ordered map and making generator output
// deterministic and byte-identical across runs.
func encodeRecords(keys []uint64, table map[uint64]byte) []byte {
	out := make([]byte, 0, len(keys)*recordSize)
	buf := make([]byte, 8)
	for _, k := range keys {
		binary.LittleEndian.PutUint64(buf, k)
		out = append(out, buf...)
		out = append(out, table[k])
	}
	return out
}
