package movesearch

import "slices"

// Position is one grid cell where a piece can come to rest: a rotation, a
// row and a column.
type Position struct {
	Rot, Row, Col int
}

func comparePosition(a, b Position) int {
	if a.Rot != b.Rot {
		return a.Rot - b.Rot
	}
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

// AdjEntry is one committable intermediate state and the lock positions
// reachable by redirecting input from it.
type AdjEntry struct {
	State     Position
	Positions []Position
}

// PossibleMoves is the result of one MoveSearch call: every lock position
// reachable without redirecting strategy, plus, for every state at which the
// player could redirect before the adjustment frame, the positions reachable
// from there.
type PossibleMoves struct {
	NonAdj []Position
	Adj    []AdjEntry
}

// Normalize sorts NonAdj and every Adj entry's Positions and removes
// duplicates. Idempotent: calling it twice yields the same result as once.
func (pm *PossibleMoves) Normalize() {
	pm.NonAdj = normalizePositions(pm.NonAdj)
	for i := range pm.Adj {
		pm.Adj[i].Positions = normalizePositions(pm.Adj[i].Positions)
	}
	slices.SortFunc(pm.Adj, func(a, b AdjEntry) int { return comparePosition(a.State, b.State) })
}

func normalizePositions(p []Position) []Position {
	slices.SortFunc(p, comparePosition)
	return slices.CompactFunc(p, func(a, b Position) bool { return a == b })
}

// frameRangeMask returns a mask with bits [lo, hi) set, clamped to the
// 64-bit frame mask's domain.
func frameRangeMask(lo, hi int) Frames {
	if lo < 0 {
		lo = 0
	}
	if hi > 64 {
		hi = 64
	}
	if hi <= lo {
		return 0
	}
	var hiMask Frames
	if hi == 64 {
		hiMask = ^Frames(0)
	} else {
		hiMask = Frames(1)<<uint(hi) - 1
	}
	loMask := Frames(1)<<uint(lo) - 1
	return hiMask &^ loMask
}

// searchContext bundles the per-query scratch state built once per
// MoveSearch call; it is the only heap-ish state besides the final result,
// and is scoped to a single call.
type searchContext struct {
	board    Board
	r        int
	level    Level
	taps     TapTable
	fm       frameMaskSet
	types    []tuckType
	tuckMask [][4][10]Frames
}

func newSearchContext(board Board, r int, level Level, taps TapTable, doubleTuckAllowed bool) *searchContext {
	fm := buildFrameMasks(board, r, level)
	types := tuckTypeTable(r, doubleTuckAllowed)
	return &searchContext{
		board:    board,
		r:        r,
		level:    level,
		taps:     taps,
		fm:       fm,
		types:    types,
		tuckMask: tuckFrameMasks(fm, r, types),
	}
}

// doOneSearch runs phase-1 (scanning entries in table order, honoring the
// can_continue dependency chain) then phase-2 (tuck/spin) over one phase-1
// table rooted at a call starting at frame initialFrame. adjDeadline is the
// frame beyond which a surviving entry becomes an adjustment-committable
// state instead of a direct lock; pass a value >= any reachable lock frame
// (e.g. the adjustment table's own run, which never recurses further) to
// disable that behavior.
func (sc *searchContext) doOneSearch(entries []TableEntry, initialFrame, adjDeadline int) (locked []Position, canAdj []bool) {
	n := len(entries)
	canContinue := make([]bool, n)
	canAdj = make([]bool, n)

	var canTuck [4][10]Frames
	var lockedNoTuck [4][10]Column

	for i, e := range entries {
		if i > 0 && !canContinue[e.Prev] {
			continue
		}
		if !contains(sc.board, e.MasksNodrop, sc.r) {
			continue
		}
		if !e.CannotFinish && contains(sc.board, e.Masks, sc.r) {
			canContinue[i] = true
		}

		rot, col := int(e.Rot), int(e.Col)
		// firstTuckFrame is the earliest frame a further, off-schedule input
		// (a tuck) could land at this entry's (rot, col) — right after its
		// own last scheduled tap.
		firstTuckFrame := initialFrame + sc.taps[e.NumTaps]
		startFrame := initialFrame
		if e.NumTaps != 0 {
			startFrame = initialFrame + sc.taps[e.NumTaps-1]
		}
		startRow := Row(startFrame, sc.level)
		colBits := sc.board[rot].Column(col)
		lockRow := findLockRow(colBits, startRow)
		lockFrame := LastFrameOnRow(lockRow, sc.level) + 1

		if lockFrame > adjDeadline {
			canAdj[i] = true
		} else {
			locked = append(locked, Position{Rot: rot, Row: lockRow, Col: col})
			lockedNoTuck[rot][col] |= 1 << uint(lockRow)
		}

		// The tuck window runs from firstTuckFrame up to whichever comes
		// first: the piece locking, or the adjustment deadline (the adj-pass
		// call disables the latter by passing a deadline past any possible
		// lock frame, so there the window always runs to lockFrame).
		endFrame := adjDeadline
		if firstTuckFrame > endFrame {
			endFrame = firstTuckFrame
		}
		windowEnd := lockFrame
		if endFrame < windowEnd {
			windowEnd = endFrame
		}
		canTuck[rot][col] |= frameRangeMask(firstTuckFrame, windowEnd)
	}

	locked = append(locked, sc.phase2(canTuck, lockedNoTuck)...)
	return locked, canAdj
}

// phase2 shifts every tuck type's frame mask, restricted to the frames a
// tuck is actually allowed (canTuck), into its target (rot, col) and derives
// the additional lock positions reachable only by performing that tuck.
func (sc *searchContext) phase2(canTuck [4][10]Frames, lockedNoTuck [4][10]Column) []Position {
	var perTarget [4][10]Frames
	for ti, t := range sc.types {
		for rot := 0; rot < sc.r; rot++ {
			targetRot := ((rot+t.deltaRot)%sc.r + sc.r) % sc.r
			for col := 0; col < numCols; col++ {
				targetCol := col + t.deltaCol
				if targetCol < 0 || targetCol >= numCols {
					continue
				}
				combined := sc.tuckMask[ti][rot][col] & canTuck[rot][col]
				if combined == 0 {
					continue
				}
				perTarget[targetRot][targetCol] |= combined << uint(t.deltaFrame)
			}
		}
	}

	var out []Position
	for rot := 0; rot < sc.r; rot++ {
		for col := 0; col < numCols; col++ {
			if perTarget[rot][col] == 0 {
				continue
			}
			colFree := sc.board[rot].Column(col)
			afterTuck := FramesToColumn(perTarget[rot][col], sc.level)
			candidate := (afterTuck + colFree) >> 1
			ceiling := colFree &^ (colFree >> 1)
			newRows := candidate & ceiling &^ lockedNoTuck[rot][col]
			for newRows != 0 {
				row := trailingZeros32(newRows)
				out = append(out, Position{Rot: rot, Row: row, Col: col})
				newRows &= newRows - 1
			}
		}
	}
	return out
}
