package puzzle

import "github.com/vxmppz/taquin/internal/puzzleerr"

// InversionCount counts pairs (i, j), i<j, of non-zero tiles where
// tiles[i] > tiles[j].
func InversionCount(tiles []uint8, n int) (int, error) {
	want := n * n
	if len(tiles) != want {
		return 0, puzzleerr.Newf(puzzleerr.WrongLength, "got %d tiles, want %d", len(tiles), want)
	}
	count := 0
	for i := 0; i < len(tiles); i++ {
		if tiles[i] == 0 {
			continue
		}
		for j := i + 1; j < len(tiles); j++ {
			if tiles[j] == 0 {
				continue
			}
			if tiles[i] > tiles[j] {
				count++
			}
		}
	}
	return count, nil
}

// CheckSolvable applies the standard 15-puzzle parity test: for odd N the
// state is solvable iff the inversion count is even; for even N it depends
// additionally on the (0-indexed from the top) row of the empty cell.
func CheckSolvable(tiles []uint8, n int) (bool, error) {
	inversions, err := InversionCount(tiles, n)
	if err != nil {
		return false, err
	}

	zeroPos := -1
	for i, t := range tiles {
		if t == 0 {
			zeroPos = i
			break
		}
	}
	if zeroPos < 0 {
		return false, puzzleerr.New(puzzleerr.NotPermutation, "no empty cell (tile 0) found")
	}
	zeroRow := zeroPos / n

	if n%2 == 1 {
		return inversions%2 == 0, nil
	}
	return (inversions+zeroRow)%2 == 1, nil
}
