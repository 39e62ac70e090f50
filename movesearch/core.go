package movesearch

// MoveSearch is the dispatch surface collaborators call: it switches on
// piece (fixing R and the rotation layout) and level, builds the per-query
// scratch state, and runs the search to completion.
//
// When doubleTuckAllowed is false, the LL/RR tuck types are omitted from the
// catalogue entirely.
func MoveSearch(board Board, piece PieceKind, level Level, taps TapTable, adjFrame, spawnCol int, doubleTuckAllowed bool) PossibleMoves {
	r := piece.R
	if r != 1 && r != 2 && r != 4 {
		panic("movesearch: piece rotation count must be 1, 2 or 4")
	}
	sc :=newSearchContext(board, r, level, taps, doubleTuckAllowed)
	table := getPhase1Table(level, r, adjFrame, taps, spawnCol)

	nonAdj, canAdj := sc.doOneSearch(table.Initial, 0, adjFrame)

	const noDeadline = 1 << 30
	var adj []AdjEntry
	for i, e := range table.Initial {
		if !canAdj[i] {
			continue
		}
		frameStart := adjFrame
		if want := taps[e.NumTaps]; want > frameStart {
			frameStart = want
		}
		positions, _ := sc.doOneSearch(table.Adj[i], frameStart, noDeadline)
		if len(positions) == 0 {
			continue
		}
		state := Position{Rot: int(e.Rot), Row: Row(frameStart, level), Col: int(e.Col)}
		adj = append(adj, AdjEntry{State: state, Positions: positions})
	}

	pm := PossibleMoves{NonAdj: nonAdj, Adj: adj}
	pm.Normalize()
	return pm
}
