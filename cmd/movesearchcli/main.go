package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"tetrisearch/engine"
	"tetrisearch/movesearch"
)

func main() {
	replLoop()
}

// replState holds the query parameters a line-oriented session builds up
// before issuing "search" or "count".
type replState struct {
	piece             movesearch.PieceKind
	level             movesearch.Level
	taps              movesearch.TapTable
	adjFrame          int
	spawnCol          int
	doubleTuckAllowed bool
	field             movesearch.Field
	fieldSet          bool
}

func newReplState() replState {
	return replState{
		piece:             movesearch.PieceJ,
		level:             movesearch.Level18,
		taps:              movesearch.Tap30Hz,
		adjFrame:          0,
		spawnCol:          movesearch.PieceJ.SpawnCol,
		doubleTuckAllowed: true,
	}
}

func replLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	state := newReplState()
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "piece":
			if len(tokens) < 2 {
				fmt.Println("usage: piece <O|I|S|Z|T|J|L>")
				continue
			}
			p, ok := movesearch.Pieces[strings.ToUpper(tokens[1])]
			if !ok {
				fmt.Printf("unknown piece %q\n", tokens[1])
				continue
			}
			state.piece = p
			state.spawnCol = p.SpawnCol
		case "level":
			n, err := strconv.Atoi(arg(tokens, 1))
			if err != nil {
				fmt.Println("usage: level <18|19|29|39>")
				continue
			}
			state.level = movesearch.Level(n)
		case "taps":
			switch arg(tokens, 1) {
			case "30":
				state.taps = movesearch.Tap30Hz
			case "20":
				state.taps = movesearch.Tap20Hz
			case "15":
				state.taps = movesearch.Tap15Hz
			case "12":
				state.taps = movesearch.Tap12Hz
			default:
				fmt.Println("usage: taps <30|20|15|12>")
			}
		case "adjframe":
			n, err := strconv.Atoi(arg(tokens, 1))
			if err != nil {
				fmt.Println("usage: adjframe <n>")
				continue
			}
			state.adjFrame = n
		case "spawncol":
			n, err := strconv.Atoi(arg(tokens, 1))
			if err != nil {
				fmt.Println("usage: spawncol <n>")
				continue
			}
			state.spawnCol = n
		case "doubletuck":
			state.doubleTuckAllowed = arg(tokens, 1) != "off"
		case "field":
			f, err := readField(scanner)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			state.field = f
			state.fieldSet = true
		case "search":
			runSearch(state, false)
		case "count":
			runSearch(state, true)
		case "quit", "exit":
			return
		default:
			fmt.Printf("unrecognized command %q\n", tokens[0])
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("movesearchcli: reading stdin: %v", err)
	}
}

func arg(tokens []string, i int) string {
	if i >= len(tokens) {
		return ""
	}
	return tokens[i]
}

// readField consumes exactly 20 lines of board text ('#'/'.') from scanner,
// terminated implicitly after the 20th line.
func readField(scanner *bufio.Scanner) (movesearch.Field, error) {
	rows := make([]string, 0, 20)
	for len(rows) < 20 && scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	return movesearch.ParseField(rows)
}

func runSearch(state replState, countOnly bool) {
	if !state.fieldSet {
		fmt.Println("error: no field loaded, use \"field\" first")
		return
	}
	board, err := movesearch.BuildFootprint(state.field, state.piece.Cells)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	moves := movesearch.MoveSearch(board, state.piece, state.level, state.taps, state.adjFrame, state.spawnCol, state.doubleTuckAllowed)
	if countOnly {
		total := len(moves.NonAdj)
		for _, a := range moves.Adj {
			total += len(a.Positions)
		}
		fmt.Printf("non_adj=%d adj_states=%d total_positions=%d\n", len(moves.NonAdj), len(moves.Adj), total)
		return
	}
	for _, p := range moves.NonAdj {
		fmt.Printf("non_adj rot=%d row=%d col=%d\n", p.Rot, p.Row, p.Col)
	}
	for _, a := range moves.Adj {
		fmt.Printf("adj state rot=%d row=%d col=%d\n", a.State.Rot, a.State.Row, a.State.Col)
		for _, p := range a.Positions {
			fmt.Printf("  -> rot=%d row=%d col=%d\n", p.Rot, p.Row, p.Col)
		}
	}
	best, score, ok := engine.BestPosition(state.field, state.piece, moves)
	if ok {
		fmt.Printf("best rot=%d row=%d col=%d score=%d\n", best.Rot, best.Row, best.Col, score)
	}
}
