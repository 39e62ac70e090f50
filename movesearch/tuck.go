package movesearch

// tuckKind groups tuck types by how their frame mask is built.
type tuckKind int

const (
	kindShift       tuckKind = iota // L, R
	kindDoubleShift                 // LL, RR
	kindSpin                        // A, B (rotate only, no lateral shift)
	kindSimul                       // LA, RA, LB, RB (rotate and shift, same frame)
	kindStaggered                   // AL, AR, BL, BR (rotate then shift, one frame apart)
)

// tuckType is one entry of the up-to-fourteen-entry catalogue of late
// single-frame directional adjustments.
type tuckType struct {
	name                     string
	kind                     tuckKind
	deltaRot, deltaCol       int
	deltaFrame               int
}

// tuckTypeTable lists the tuck types legal for a piece with r rotations,
// optionally including the double-shift (double-tap) types.
func tuckTypeTable(r int, doubleTuckAllowed bool) []tuckType {
	types := []tuckType{
		{name: "L", kind: kindShift, deltaCol: -1},
		{name: "R", kind: kindShift, deltaCol: 1},
	}
	if doubleTuckAllowed {
		types = append(types,
			tuckType{name: "LL", kind: kindDoubleShift, deltaCol: -2, deltaFrame: 2},
			tuckType{name: "RR", kind: kindDoubleShift, deltaCol: 2, deltaFrame: 2},
		)
	}
	if r > 1 {
		types = append(types,
			tuckType{name: "A", kind: kindSpin, deltaRot: 1},
			tuckType{name: "LA", kind: kindSimul, deltaRot: 1, deltaCol: -1},
			tuckType{name: "RA", kind: kindSimul, deltaRot: 1, deltaCol: 1},
			tuckType{name: "AL", kind: kindStaggered, deltaRot: 1, deltaCol: -1, deltaFrame: 1},
			tuckType{name: "AR", kind: kindStaggered, deltaRot: 1, deltaCol: 1, deltaFrame: 1},
		)
	}
	if r == 4 {
		// B rotates one step the other way; with r==2 that's the same
		// transition as A, so B-variants are only distinct for r==4.
		types = append(types,
			tuckType{name: "B", kind: kindSpin, deltaRot: r - 1},
			tuckType{name: "LB", kind: kindSimul, deltaRot: r - 1, deltaCol: -1},
			tuckType{name: "RB", kind: kindSimul, deltaRot: r - 1, deltaCol: 1},
			tuckType{name: "BL", kind: kindStaggered, deltaRot: r - 1, deltaCol: -1, deltaFrame: 1},
			tuckType{name: "BR", kind: kindStaggered, deltaRot: r - 1, deltaCol: 1, deltaFrame: 1},
		)
	}
	return types
}

// frameMaskSet holds the per-(rotation, column) normal and drop frame masks
// derived once from a board.
type frameMaskSet struct {
	normal, drop [4][10]Frames
}

func buildFrameMasks(board Board, r int, level Level) frameMaskSet {
	var fm frameMaskSet
	for rot := 0; rot < r; rot++ {
		for col := 0; col < numCols; col++ {
			c := board[rot].Column(col)
			fm.normal[rot][col] = ColumnToNormalFrameMask(c, level)
			fm.drop[rot][col] = ColumnToDropFrameMask(c, level)
		}
	}
	return fm
}

// tuckFrameMasks computes, for every tuck type and every (rot, col), a frame
// mask whose bit f is set iff at frame f the piece can execute that tuck:
// it is not blocked at its current position and would not be blocked at
// (rot+deltaRot, col+deltaCol) at frame f+deltaFrame.
func tuckFrameMasks(fm frameMaskSet, r int, types []tuckType) [][4][10]Frames {
	out := make([][4][10]Frames, len(types))
	for ti, t := range types {
		for rot := 0; rot < r; rot++ {
			targetRot := ((rot+t.deltaRot)%r + r) % r
			for col := 0; col < numCols; col++ {
				out[ti][rot][col] = tuckMaskAt(fm, t, rot, targetRot, col)
			}
		}
	}
	return out
}

func tuckMaskAt(fm frameMaskSet, t tuckType, rot, targetRot, col int) Frames {
	targetCol := col + t.deltaCol
	switch t.kind {
	case kindShift:
		if targetCol < 0 || targetCol >= numCols {
			return 0
		}
		return fm.normal[rot][col] & fm.normal[rot][targetCol]
	case kindDoubleShift:
		midCol := col + sgn(t.deltaCol)
		if targetCol < 0 || targetCol >= numCols {
			return 0
		}
		mid := fm.drop[rot][midCol] & (fm.drop[rot][midCol] >> 1)
		return fm.normal[rot][col] & mid & (fm.normal[rot][targetCol] >> 2)
	case kindSpin:
		return fm.normal[rot][col] & fm.normal[targetRot][col]
	case kindSimul:
		if targetCol < 0 || targetCol >= numCols {
			return 0
		}
		shift := fm.normal[rot][col] & fm.normal[rot][targetCol]
		return shift & fm.normal[targetRot][targetCol]
	case kindStaggered:
		if targetCol < 0 || targetCol >= numCols {
			return 0
		}
		drop := fm.drop[targetRot][col] | fm.drop[rot][col]
		return fm.normal[rot][col] & drop & (fm.normal[targetRot][targetCol] >> 1)
	}
	panic("movesearch: unknown tuck kind")
}
