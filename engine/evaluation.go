package engine

import "tetrisearch/movesearch"

// Weights for the board-shape evaluation. Negative weights penalize a
// feature, positive weights reward it. Tuned by feel, not by a gradient
// search (see DESIGN.md on why tuner/ did not carry over to this domain).
const (
	weightAggregateHeight = -1
	weightHoles           = -8
	weightBumpiness       = -1
	weightLinesCleared    = 4
)

// FieldFeatures summarizes a resulting field's shape after a piece locks,
// the inputs to the evaluation function.
type FieldFeatures struct {
	AggregateHeight int
	Holes           int
	Bumpiness       int
	LinesCleared    int
}

// ExtractFeatures scans f column by column, finding each column's height
// (distance from the floor to the top of its highest filled cell) and counting holes
// (empty cells with a filled cell somewhere above them in the same column).
func ExtractFeatures(f movesearch.Field, linesCleared int) FieldFeatures {
	var heights [10]int
	var holes int
	for col := 0; col < 10; col++ {
		seenFilled := false
		for row := 0; row < 20; row++ {
			filled := f.Filled(row, col)
			if filled && !seenFilled {
				heights[col] = 20 - row
				seenFilled = true
			}
			if !filled && seenFilled {
				holes++
			}
		}
	}
	var aggregate, bumpiness int
	for col, h := range heights {
		aggregate += h
		if col > 0 {
			d := h - heights[col-1]
			if d < 0 {
				d = -d
			}
			bumpiness += d
		}
	}
	return FieldFeatures{
		AggregateHeight: aggregate,
		Holes:           holes,
		Bumpiness:       bumpiness,
		LinesCleared:    linesCleared,
	}
}

// Score combines a feature set into a single expected-value signal: higher
// is better. BestPosition ranks candidate placements by it.
func (ff FieldFeatures) Score() int {
	return weightAggregateHeight*ff.AggregateHeight +
		weightHoles*ff.Holes +
		weightBumpiness*ff.Bumpiness +
		weightLinesCleared*ff.LinesCleared
}

// LockField applies a single piece lock (at the given rotation's footprint)
// to f, returning the resulting field and the number of fully-filled rows
// it clears. cells are the piece's occupied offsets in the locking rotation,
// relative to (row, col).
func LockField(f movesearch.Field, row, col int, cells []movesearch.Offset) (movesearch.Field, int) {
	for _, off := range cells {
		r, c := row+off.DRow, col+off.DCol
		if r < 0 || r >= 20 || c < 0 || c >= 10 {
			continue
		}
		f[r] |= 1 << uint(c)
	}
	cleared := 0
	out := f
	writeRow := 19
	for r := 19; r >= 0; r-- {
		if out[r] == 0x3FF { // all ten columns filled
			cleared++
			continue
		}
		f[writeRow] = out[r]
		writeRow--
	}
	for r := writeRow; r >= 0; r-- {
		f[r] = 0
	}
	return f, cleared
}

// BestPosition evaluates every non-adjustment lock position in moves against
// field and piece, returning the highest-scoring one. Returns false if moves
// has no non-adjustment positions.
func BestPosition(field movesearch.Field, piece movesearch.PieceKind, moves movesearch.PossibleMoves) (movesearch.Position, int, bool) {
	best := movesearch.Position{}
	bestScore := 0
	found := false
	for _, p := range moves.NonAdj {
		resultField, cleared := LockField(field, p.Row, p.Col, piece.Cells[p.Rot])
		score := ExtractFeatures(resultField, cleared).Score()
		if !found || score > bestScore {
			best, bestScore, found = p, score, true
		}
	}
	return best, bestScore, found
}
