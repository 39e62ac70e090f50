package movesearch

import "testing"

func TestPhase1TableGenBounds(t *testing.T) {
	for _, r := range []int{1, 2, 4} {
		entries := make([]TableEntry, 10*r)
		n := phase1TableGen(Level18, r, Tap30Hz, 0, 0, 5, entries)
		if n == 0 {
			t.Fatalf("r=%d: expected at least the root entry", r)
		}
		if n > 10*r {
			t.Fatalf("r=%d: got %d entries, want <= %d", r, n, 10*r)
		}
		for i := 1; i < n; i++ {
			if int(entries[i].Prev) >= i {
				t.Fatalf("r=%d: entry %d has prev %d, want < %d", r, i, entries[i].Prev, i)
			}
		}
		if entries[0].Rot != 0 || int(entries[0].Col) != 5 || entries[0].NumTaps != 0 {
			t.Fatalf("r=%d: root entry = %+v, want (rot=0,col=5,numTaps=0)", r, entries[0])
		}
	}
}

func TestPhase1TableGenMasksNodropSubsetMasks(t *testing.T) {
	entries := make([]TableEntry, 40)
	n := phase1TableGen(Level18, 4, Tap30Hz, 0, 0, 5, entries)
	for i := 0; i < n; i++ {
		e := entries[i]
		if e.CannotFinish {
			continue
		}
		for rot := 0; rot < 4; rot++ {
			for col := 0; col < numCols; col++ {
				if e.MasksNodrop[rot][col]&^e.Masks[rot][col] != 0 {
					t.Fatalf("entry %d: masks_nodrop not a subset of masks at (%d,%d)", i, rot, col)
				}
			}
		}
	}
}

func TestGetPhase1TableMemoizes(t *testing.T) {
	a := getPhase1Table(Level18, 4, 0, Tap30Hz, 5)
	b := getPhase1Table(Level18, 4, 0, Tap30Hz, 5)
	if a != b {
		t.Fatal("expected the same key to return the same cached table")
	}
	c := getPhase1Table(Level29, 4, 0, Tap30Hz, 5)
	if a == c {
		t.Fatal("expected a different key to return a distinct table")
	}
}
