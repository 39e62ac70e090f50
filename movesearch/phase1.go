package movesearch

import "sync"

// TableEntry is one reachable (rotation, column) vertex in the phase-1 tap
// graph: a column/rotation pair reachable from the table's start state by a
// disciplined (non-reversing, non-repeating) tap sequence.
type TableEntry struct {
	Rot, Col, Prev, NumTaps uint8
	// CannotFinish marks an entry whose end frame would place the piece at
	// row >= 20: no subsequent input is possible, and Masks is undefined.
	CannotFinish bool
	// Masks must be empty (the predecessor's Masks and this entry's
	// MasksNodrop) for a further tap to continue past this entry.
	// MasksNodrop must be empty for the entry to be reachable at all.
	Masks, MasksNodrop Board
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sgn(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

const (
	tapA = 0x1
	tapB = 0x2
	tapL = 0x4
	tapR = 0x8
)

// phase1TableGen enumerates every (rotation, column) reachable from
// (initialRot, initialCol) at initialFrame by a disciplined input sequence
// — never reversing a lateral direction, never repeating a rotation once
// used without an intervening different rotation — writing entries in
// ascending-tap-count order into entries (which must have length >= 10*r)
// and returning the number written.
func phase1TableGen(level Level, r int, taps TapTable, initialFrame, initialRot, initialCol int, entries []TableEntry) int {
	sz := 0

	var masks, masksNodrop [4][10]Board
	var lastTap [4][10]uint8
	var cannotReach, cannotFinish [4][10]bool

	for col := 0; col < numCols; col++ {
		for deltaRot := 0; deltaRot < 4; deltaRot++ {
			// piece ends up at column col and rotation (initialRot + deltaRot)
			if r == 1 && deltaRot != 0 {
				continue
			}
			if r == 2 && deltaRot >= 2 {
				continue
			}
			rot := (initialRot + deltaRot) % r
			numLRTap := absInt(col - initialCol)
			numABTap := deltaRot
			if deltaRot == 3 {
				numABTap = 1 // delta_rot in {0,1,2,3} costs {0,1,2,1} taps
			}
			numTap := numLRTap
			if numABTap > numTap {
				numTap = numABTap
			}
			// the frame this tap occurred on; initialFrame if no input at all
			startFrame := initialFrame
			if numTap != 0 {
				startFrame += taps[numTap-1]
			}
			// the frame the next input is allowed
			endFrame := taps[numTap] + initialFrame
			if numTap != 0 {
				if numTap == numLRTap {
					if col > initialCol {
						lastTap[rot][col] |= tapR
					} else {
						lastTap[rot][col] |= tapL
					}
				}
				if numTap == numABTap {
					if deltaRot == 3 {
						lastTap[rot][col] |= tapB
					} else {
						lastTap[rot][col] |= tapA
					}
				}
			}
			// the position before this tap
			startRow := Row(startFrame, level)
			if startRow >= 20 {
				cannotReach[rot][col] = true
				continue
			}
			startCol := col
			if numTap == numLRTap {
				startCol = col - sgn(col-initialCol)
			}
			startRot := rot
			if numTap == numABTap {
				add := 0
				if deltaRot == 2 {
					add = 1
				}
				startRot = (add + initialRot) % r
			}
			cur := &masks[rot][col]
			cur[startRot].Set(startRow, startCol)
			cur[startRot].Set(startRow, col) // first shift
			cur[rot].Set(startRow, col)       // then rotate
			masksNodrop[rot][col] = *cur
			if Row(endFrame, level) >= 20 {
				cannotFinish[rot][col] = true
				continue
			}
			for frame := startFrame; frame < endFrame; frame++ {
				row := Row(frame, level)
				cur[rot].Set(row, col)
				if IsDropFrame(frame, level) {
					cur[rot].Set(row+1, col)
					if level == Level39 {
						cur[rot].Set(row+2, col)
					}
				}
			}
		}
	}

	// Starting from (initialRot, initialCol), build entries in ascending
	// tap count (a BFS using the growing entries slice itself as the queue:
	// the entries array is a DAG by construction since every push's prev
	// index is strictly less than its own index).
	push := func(rot, col, prev, numTaps int) {
		if cannotReach[rot][col] {
			return
		}
		entries[sz] = TableEntry{
			Rot: uint8(rot), Col: uint8(col), Prev: uint8(prev), NumTaps: uint8(numTaps),
			CannotFinish: cannotFinish[rot][col],
			Masks:        masks[rot][col],
			MasksNodrop:  masksNodrop[rot][col],
		}
		sz++
	}
	push(initialRot, initialCol, 0, 0)
	for cur := 0; cur < sz; cur++ {
		rot, col, numTaps := int(entries[cur].Rot), int(entries[cur].Col), int(entries[cur].NumTaps)
		last := lastTap[rot][col]
		shouldL := col > 0 && (numTaps == 0 || last&tapL != 0)
		shouldR := col < 9 && (numTaps == 0 || last&tapR != 0)
		shouldA := (r > 1 && numTaps == 0) || (r == 4 && numTaps == 1 && last&tapA != 0)
		shouldB := r == 4 && numTaps == 0
		if shouldL {
			push(rot, col-1, cur, numTaps+1)
		}
		if shouldR {
			push(rot, col+1, cur, numTaps+1)
		}
		if shouldA {
			nrot := (rot + 1) % r
			push(nrot, col, cur, numTaps+1)
			if shouldL {
				push(nrot, col-1, cur, numTaps+1)
			}
			if shouldR {
				push(nrot, col+1, cur, numTaps+1)
			}
		}
		if shouldB {
			nrot := (rot + 3) % r
			push(nrot, col, cur, numTaps+1)
			if shouldL {
				push(nrot, col-1, cur, numTaps+1)
			}
			if shouldR {
				push(nrot, col+1, cur, numTaps+1)
			}
		}
	}
	return sz
}

// phase1Table holds the initial phase-1 table plus one adjustment phase-1
// table per initial entry. Purely a function of (level, R, adjFrame, taps,
// spawnCol); built once and read-only thereafter.
type phase1Table struct {
	Initial []TableEntry
	Adj     [][]TableEntry // Adj[i] is the adjustment table rooted at Initial[i]
}

func buildPhase1Table(level Level, r int, adjFrame int, taps TapTable, spawnCol int) *phase1Table {
	maxEntries := 10 * r
	initialBuf := make([]TableEntry, maxEntries)
	initialN := phase1TableGen(level, r, taps, 0, 0, spawnCol, initialBuf)
	initial := initialBuf[:initialN]

	adj := make([][]TableEntry, initialN)
	for i, e := range initial {
		frameStart := adjFrame
		if want := taps[e.NumTaps]; want > frameStart {
			frameStart = want
		}
		buf := make([]TableEntry, maxEntries)
		n := phase1TableGen(level, r, taps, frameStart, int(e.Rot), int(e.Col), buf)
		adj[i] = buf[:n]
	}
	return &phase1Table{Initial: initial, Adj: adj}
}

// phase1TableKey identifies a memoized phase1Table: the tables are pure
// functions of these five values and nothing else, so they are safe to
// build lazily on first use and share across calls.
type phase1TableKey struct {
	level     Level
	r         int
	adjFrame  int
	taps      TapTable
	spawnCol  int
}

var phase1Cache sync.Map // phase1TableKey -> *phase1Table

func getPhase1Table(level Level, r int, adjFrame int, taps TapTable, spawnCol int) *phase1Table {
	key := phase1TableKey{level: level, r: r, adjFrame: adjFrame, taps: taps, spawnCol: spawnCol}
	if v, ok := phase1Cache.Load(key); ok {
		return v.(*phase1Table)
	}
	built := buildPhase1Table(level, r, adjFrame, taps, spawnCol)
	v, _ := phase1Cache.LoadOrStore(key, built)
	return v.(*phase1Table)
}
