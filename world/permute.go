package world

import "github.com/katalvlaran/polesim/pole"

// maxPositions bounds the 2^n direction ensemble; beyond it the permutation
// table alone would not fit in memory.
const maxPositions = 24

// DirectionPermutations enumerates every assignment of a travel direction to
// n particle slots — 2^n permutations in total. The order is fixed and
// reproducible: the first slot varies slowest, Right sorts before Left, so
// permutation 0 is all-Right and permutation 2^n−1 is all-Left.
//
// Returns ErrNoPositions when n < 1, ErrTooManyPositions when n exceeds the
// enumeration bound. Complexity: O(n·2^n) time and memory.
func DirectionPermutations(n int) ([][]pole.Direction, error) {
	if n < 1 {
		return nil, ErrNoPositions
	}
	if n > maxPositions {
		return nil, ErrTooManyPositions
	}

	total := 1 << n
	perms := make([][]pole.Direction, total)
	for mask := 0; mask < total; mask++ {
		dirs := make([]pole.Direction, n)
		for i := 0; i < n; i++ {
			// Slot 0 sits in the most significant bit; a set bit means Left.
			if mask&(1<<(n-1-i)) != 0 {
				dirs[i] = pole.Left
			}
		}
		perms[mask] = dirs
	}

	return perms, nil
}

// PermutationString renders one direction assignment as the compact letter
// string used in sweep reports, e.g. "RRLRLLR".
func PermutationString(dirs []pole.Direction) string {
	buf := make([]byte, len(dirs))
	for i, d := range dirs {
		buf[i] = d.String()[0]
	}

	return string(buf)
}
