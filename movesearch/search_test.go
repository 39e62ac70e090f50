package movesearch

import "testing"

func TestNormalizeSortsAndDedupes(t *testing.T) {
	pm := PossibleMoves{
		NonAdj: []Position{
			{Rot: 0, Row: 19, Col: 3},
			{Rot: 0, Row: 19, Col: 3},
			{Rot: 0, Row: 18, Col: 1},
		},
	}
	pm.Normalize()
	if len(pm.NonAdj) != 2 {
		t.Fatalf("len(NonAdj) = %d, want 2", len(pm.NonAdj))
	}
	if pm.NonAdj[0] != (Position{Rot: 0, Row: 18, Col: 1}) {
		t.Fatalf("NonAdj[0] = %+v, want (0,18,1)", pm.NonAdj[0])
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	pm := PossibleMoves{
		NonAdj: []Position{{0, 19, 3}, {1, 5, 2}, {0, 19, 3}},
		Adj: []AdjEntry{
			{State: Position{0, 2, 5}, Positions: []Position{{0, 19, 5}, {0, 19, 5}}},
		},
	}
	pm.Normalize()
	first := append([]Position(nil), pm.NonAdj...)
	pm.Normalize()
	if len(first) != len(pm.NonAdj) {
		t.Fatalf("Normalize not idempotent: %v vs %v", first, pm.NonAdj)
	}
	for i := range first {
		if first[i] != pm.NonAdj[i] {
			t.Fatalf("Normalize not idempotent at %d: %+v vs %+v", i, first[i], pm.NonAdj[i])
		}
	}
}

func TestFrameRangeMask(t *testing.T) {
	m := frameRangeMask(2, 5)
	want := Frames(0b11100)
	if m != want {
		t.Fatalf("frameRangeMask(2,5) = %#x, want %#x", m, want)
	}
	if frameRangeMask(5, 5) != 0 {
		t.Fatal("frameRangeMask(5,5) should be empty")
	}
	if frameRangeMask(5, 2) != 0 {
		t.Fatal("frameRangeMask with hi < lo should be empty")
	}
}
