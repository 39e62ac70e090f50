package engine

import (
	"sync"

	"tetrisearch/movesearch"
)

// Query is one independent MoveSearch call to fan out across workers.
type Query struct {
	Board             movesearch.Board
	Piece             movesearch.PieceKind
	Level             movesearch.Level
	Taps              movesearch.TapTable
	AdjFrame          int
	SpawnCol          int
	DoubleTuckAllowed bool
}

// Result pairs a Query's index (so callers can match results back to
// queries after concurrent completion) with its PossibleMoves.
type Result struct {
	Index int
	Moves movesearch.PossibleMoves
}

// RunBatch fans queries out across workers goroutines. MoveSearch is a pure
// function of its inputs and the shared, read-only phase-1 tables, so queries
// share no mutable state and need no locking between them. workers <= 0 means
// one worker per query.
func RunBatch(queries []Query, workers int) []Result {
	if workers <= 0 || workers > len(queries) {
		workers = len(queries)
	}
	if workers == 0 {
		return nil
	}

	jobs := make(chan int)
	results := make([]Result, len(queries))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				q := queries[i]
				moves := movesearch.MoveSearch(q.Board, q.Piece, q.Level, q.Taps, q.AdjFrame, q.SpawnCol, q.DoubleTuckAllowed)
				results[i] = Result{Index: i, Moves: moves}
			}
		}()
	}
	for i := range queries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
