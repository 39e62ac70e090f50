package movesearch

import "testing"

func TestFrameCodecRoundTrip(t *testing.T) {
	for _, level := range []Level{Level18, Level19, Level29, Level39} {
		for c := 0; c < (1 << 16); c += 37 { // sample across the 20-bit space
			col := Column(c)
			got := FramesToColumn(ColumnToNormalFrameMask(col, level), level)
			if got != col {
				t.Fatalf("level %d: round trip failed for col %#x: got %#x", level, col, got)
			}
		}
	}
}

func TestDropFrameMaskMatchesDefinition(t *testing.T) {
	for _, level := range []Level{Level18, Level19, Level29} {
		col := Column(0b10110101111)
		normal := ColumnToNormalFrameMask(col, level)
		drop := ColumnToDropFrameMask(col, level)
		want := normal & (normal >> 1)
		if drop != want {
			t.Fatalf("level %d: drop mask = %#x, want %#x", level, drop, want)
		}
	}
}

func TestPextPdepInverse(t *testing.T) {
	const mask = 0x249249249249249 // 21 set bits, well above the 10-bit samples below
	for x := uint64(0); x < 1<<10; x += 3 {
		if got := pext64(pdep64(x, mask), mask); got != x {
			t.Fatalf("pext64(pdep64(%#x)) = %#x, want %#x", x, got, x)
		}
	}
}
