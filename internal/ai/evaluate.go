// Package ai selects moves for a computer player: a static positional
// evaluator, a single-ply greedy selector and a depth-bounded alpha-beta
// search.
package ai

import (
	"sync"

	"github.com/mwestlind/othello/internal/othello"
)

// Relative weights of the evaluation terms.
const (
	discWeight     = 1.0
	positionWeight = 1.0
	mobilityWeight = 8.0
)

var (
	tablesMu sync.Mutex
	tables   = make(map[int][]float64)
)

// cellWeight returns the positional weight of cell (x, y). Corners are prime
// real estate, the cells next to a corner hand the corner to the opponent,
// edges are mildly favorable.
func cellWeight(x, y, size int) float64 {
	dx := min(x, size-1-x)
	dy := min(y, size-1-y)

	switch {
	case dx == 0 && dy == 0:
		return 100
	case dx == 1 && dy == 1:
		return -50
	case dx <= 1 && dy <= 1:
		return -20
	case dx == 0 || dy == 0:
		if max(dx, dy) == 2 {
			return 10
		}
		return 5
	case dx == 1 || dy == 1:
		return -2
	case dx == 2 && dy == 2:
		return 5
	default:
		return 1
	}
}

// weightTable returns the positional weight table for the given board size.
// Tables are cached since search evaluates many positions of the same size.
func weightTable(size int) []float64 {
	tablesMu.Lock()
	defer tablesMu.Unlock()

	if table, ok := tables[size]; ok {
		return table
	}

	table := make([]float64, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			table[y*size+x] = cellWeight(x, y, size)
		}
	}

	tables[size] = table
	return table
}

// Evaluate scores a board from the given side's perspective, higher being
// better. It combines disc differential, positional weights and mobility
// differential. The result is antisymmetric:
// Evaluate(b, side) == -Evaluate(b, side.Opponent()).
func Evaluate(b othello.Board, perspective othello.Disc) float64 {
	table := weightTable(b.Size())
	opponent := perspective.Opponent()

	var discs, position float64
	for i := 0; i < b.Size()*b.Size(); i++ {
		switch b.GetSquare(i) {
		case perspective:
			discs++
			position += table[i]
		case opponent:
			discs--
			position -= table[i]
		}
	}

	mobility := float64(b.CountMoves(perspective) - b.CountMoves(opponent))

	return discWeight*discs + positionWeight*position + mobilityWeight*mobility
}
