package movesearch

// PieceKind names one of the seven tetrominoes and carries the concrete
// per-rotation cell table the search dispatches over.
type PieceKind struct {
	Name string
	// R is the number of distinct rotations: 1 (O), 2 (I, S, Z) or 4 (T, J, L).
	R int
	// Cells[rot] is the set of cell offsets, relative to the piece's
	// reference point, occupied by the piece in that rotation.
	Cells [][]Offset
	// SpawnCol is the column a caller should pass to MoveSearch absent a
	// more specific spawn rule; it centers the piece's rotation-0 footprint
	// over the board's ten columns.
	SpawnCol int
}

// Reference point for every piece below is its top-left bounding-box cell.
var (
	PieceO = PieceKind{Name: "O", R: 1, SpawnCol: 4, Cells: [][]Offset{
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	}}
	PieceI = PieceKind{Name: "I", R: 2, SpawnCol: 3, Cells: [][]Offset{
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	}}
	PieceS = PieceKind{Name: "S", R: 2, SpawnCol: 3, Cells: [][]Offset{
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	}}
	PieceZ = PieceKind{Name: "Z", R: 2, SpawnCol: 3, Cells: [][]Offset{
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	}}
	PieceT = PieceKind{Name: "T", R: 4, SpawnCol: 3, Cells: [][]Offset{
		{{0, 0}, {0, 1}, {0, 2}, {1, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {0, 1}},
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
	}}
	PieceJ = PieceKind{Name: "J", R: 4, SpawnCol: 3, Cells: [][]Offset{
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 0}, {2, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	}}
	PieceL = PieceKind{Name: "L", R: 4, SpawnCol: 3, Cells: [][]Offset{
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	}}
)

// Pieces indexes every supported piece by name for lookup-table-style dispatch.
var Pieces = map[string]PieceKind{
	"O": PieceO, "I": PieceI, "S": PieceS, "Z": PieceZ,
	"T": PieceT, "J": PieceJ, "L": PieceL,
}
