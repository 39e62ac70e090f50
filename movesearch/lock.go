package movesearch

import "math/bits"

// findLockRow returns the lowest row (highest row number) the piece can settle to in a
// given column before its foot cell meets an obstruction (the next
// occupied — i.e. not-free — row) or the floor.
//
// Precondition: bit startRow is set in col (the piece currently sits on a
// free cell). Given that, col ^ (col + (1<<startRow)) flips every bit from
// startRow up to and including the first non-free bit above it; the
// highest set bit of that XOR, minus one, is the last free row in the run.
func findLockRow(col Column, startRow int) int {
	flipped := col ^ (col + (1 << uint(startRow)))
	return 31 - bits.LeadingZeros32(flipped) - 1
}

// trailingZeros32 returns the index of the lowest set bit of x. Used to walk
// a row bitmask bit by bit without a branch-per-bit loop over all 20 rows.
func trailingZeros32(x uint32) int {
	return bits.TrailingZeros32(x)
}
