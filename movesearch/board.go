package movesearch

import (
	"errors"
	"fmt"
)

// Column is a 20-bit bitmap of one column of one rotation layer. Bit r (LSB
// is row 0, the top of the board) is set iff the cell is free for a piece
// reference point to occupy — not whether the physical cell is filled. See
// DESIGN.md "Frame-mask bit polarity" for why the internal representation
// stores free cells rather than occupied cells.
type Column = uint32

const numRows = 20
const numCols = 10

// Layer is one rotation's 20x10 occupancy grid, stored column-major.
type Layer [numCols]Column

// Column returns the 20-bit free-cell bitmap for the given column.
func (l Layer) Column(col int) Column { return l[col] }

// Set marks (row, col) as a required-free cell.
func (l *Layer) Set(row, col int) { l[col] |= 1 << uint(row) }

// Board is the per-rotation set of occupancy layers a search operates over.
// Only the first R layers (R the piece's rotation count) are meaningful;
// the rest are the zero value and never read.
type Board [4]Layer

// contains reports whether every required-free bit in mask is also free in
// board, across the first r rotation layers. This is the core's only
// collision test: TableEntry.masks/masks_nodrop are built by Set calls
// marking cells that must be free, and contains verifies they are.
func contains(board, mask Board, r int) bool {
	for i := 0; i < r; i++ {
		for c := 0; c < numCols; c++ {
			if board[i][c]&mask[i][c] != mask[i][c] {
				return false
			}
		}
	}
	return true
}

// Field is a single raw 20x10 filled-cell grid (1 = filled), independent of
// any piece or rotation — the thing a game would naturally store as "the
// board". BuildFootprint turns a Field plus a piece's per-rotation cell
// offsets into the per-rotation free-cell Board the core search consumes.
type Field [numRows]uint16

// ParseField decodes a 20-row text grid ('#' = filled, '.' = empty, row 0
// first / top of the board) into a Field.
func ParseField(rows []string) (Field, error) {
	var f Field
	if len(rows) != numRows {
		return f, fmt.Errorf("movesearch: expected %d rows, got %d", numRows, len(rows))
	}
	for r, line := range rows {
		if len(line) != numCols {
			return f, fmt.Errorf("movesearch: row %d: expected %d columns, got %d", r, numCols, len(line))
		}
		var bits uint16
		for c := 0; c < numCols; c++ {
			switch line[c] {
			case '#':
				bits |= 1 << uint(c)
			case '.':
				// empty, leave bit clear
			default:
				return f, fmt.Errorf("movesearch: row %d col %d: unrecognized cell %q", r, c, line[c])
			}
		}
		f[r] = bits
	}
	return f, nil
}

// Filled reports whether (row, col) is occupied in the raw field.
func (f Field) Filled(row, col int) bool {
	if row < 0 || row >= numRows || col < 0 || col >= numCols {
		return true // out of bounds counts as blocked
	}
	return f[row]&(1<<uint(col)) != 0
}

var errNoRotations = errors.New("movesearch: piece has no rotation cell offsets")

// Offset is a cell occupied by a piece, relative to its reference point.
type Offset struct{ DRow, DCol int }

// BuildFootprint precomputes, for each of the piece's R rotations, a free-
// cell layer where bit (row, col) is set iff placing the piece's reference
// point at (row, col) in that rotation does not overlap any filled cell of
// field and stays in bounds. This is the per-rotation Board that MoveSearch
// consumes, derived from a raw field the way a caller assembling that input
// would.
func BuildFootprint(field Field, cells [][]Offset) (Board, error) {
	var b Board
	if len(cells) == 0 {
		return b, errNoRotations
	}
	for rot, offsets := range cells {
		if rot >= 4 {
			break
		}
		var layer Layer
		for row := 0; row < numRows; row++ {
			for col := 0; col < numCols; col++ {
				ok := true
				for _, off := range offsets {
					if field.Filled(row+off.DRow, col+off.DCol) {
						ok = false
						break
					}
				}
				if ok {
					layer.Set(row, col)
				}
			}
		}
		b[rot] = layer
	}
	return b, nil
}
