// Package bench holds MoveSearch benchmarks. Run them with:
//
//	go test ./bench -run ^$ -bench . -benchmem
package bench

import (
	"testing"

	"tetrisearch/movesearch"
)

func emptyField() movesearch.Field {
	rows := make([]string, 20)
	for i := range rows {
		rows[i] = ".........."
	}
	f, err := movesearch.ParseField(rows)
	if err != nil {
		panic(err)
	}
	return f
}

func benchMoveSearch(b *testing.B, piece movesearch.PieceKind, level movesearch.Level) {
	field := emptyField()
	board, err := movesearch.BuildFootprint(field, piece.Cells)
	if err != nil {
		b.Fatalf("BuildFootprint: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		movesearch.MoveSearch(board, piece, level, movesearch.Tap30Hz, 0, piece.SpawnCol, true)
	}
}

func BenchmarkMoveSearch_J_Level18(b *testing.B) {
	benchMoveSearch(b, movesearch.PieceJ, movesearch.Level18)
}

func BenchmarkMoveSearch_J_Level29(b *testing.B) {
	benchMoveSearch(b, movesearch.PieceJ, movesearch.Level29)
}

func BenchmarkMoveSearch_I_Level18(b *testing.B) {
	benchMoveSearch(b, movesearch.PieceI, movesearch.Level18)
}

func BenchmarkMoveSearch_O_Level39(b *testing.B) {
	benchMoveSearch(b, movesearch.PieceO, movesearch.Level39)
}
