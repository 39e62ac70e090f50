package movesearch

import "testing"

func TestFindLockRowFloor(t *testing.T) {
	// All rows free: piece starting at row 0 should fall all the way to 19.
	col := Column(0xFFFFF) // bits 0..19 set
	if got := findLockRow(col, 0); got != 19 {
		t.Fatalf("findLockRow = %d, want 19", got)
	}
}

func TestFindLockRowObstruction(t *testing.T) {
	// Rows 0..4 free, row 5 occupied (bit clear).
	col := Column(0b011111)
	if got := findLockRow(col, 2); got != 4 {
		t.Fatalf("findLockRow = %d, want 4", got)
	}
}

func TestFindLockRowImmediateObstruction(t *testing.T) {
	// Only the start row itself is free.
	col := Column(1 << 7)
	if got := findLockRow(col, 7); got != 7 {
		t.Fatalf("findLockRow = %d, want 7", got)
	}
}
