package ai

import (
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/mwestlind/othello/internal/othello"
)

// NoMove is returned by the move selectors when the side to move has no
// valid cell move. The caller is expected to treat it as a pass trigger.
const NoMove = -1

// ErrInvalidDepth is returned when a search depth is below 1.
var ErrInvalidDepth = errors.New("search depth must be at least 1")

// SelectMoveGreedy returns the move whose resulting board evaluates best for
// the side to move, looking a single ply ahead. Ties resolve to the lowest
// cell index.
func SelectMoveGreedy(b othello.Board) int {
	bestMove := NoMove
	bestScore := math.Inf(-1)

	for _, move := range b.Moves() {
		score := Evaluate(b.DoMove(move), b.Turn())
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove
}

// SelectMoveAlphaBeta runs an alpha-beta search of exactly depth plies and
// returns the best root move. Ties resolve to the lowest cell index and
// NoMove is returned when the side to move cannot play.
func SelectMoveAlphaBeta(b othello.Board, depth int) (int, error) {
	if depth < 1 {
		return NoMove, ErrInvalidDepth
	}

	moves := b.Moves()
	if len(moves) == 0 {
		return NoMove, nil
	}

	searcher := &bot{startTime: time.Now()}

	bestMove := NoMove
	alpha := math.Inf(-1)
	beta := math.Inf(1)

	for _, move := range moves {
		score := -searcher.alphaBeta(b.DoMove(move), depth-1, -beta, -alpha)
		if score > alpha {
			alpha = score
			bestMove = move
		}
	}

	searcher.logStats(depth)
	return bestMove, nil
}

// bot tracks node statistics for a single root search.
type bot struct {
	startTime time.Time
	nodes     uint64
}

// alphaBeta searches the position in negamax form: the returned score is from
// the perspective of the side to move at this node. A node whose mover cannot
// play recurses through a pass at the same remaining depth; a position dead
// for both sides is evaluated immediately.
func (s *bot) alphaBeta(b othello.Board, depth int, alpha, beta float64) float64 {
	s.nodes++

	if depth == 0 || b.IsForcedEnd() {
		return Evaluate(b, b.Turn())
	}

	moves := b.Moves()

	if len(moves) == 0 {
		passed := b.DoPass()

		if !passed.HasMoves(passed.Turn()) {
			return Evaluate(b, b.Turn())
		}

		return -s.alphaBeta(passed, depth, -beta, -alpha)
	}

	for _, move := range moves {
		score := -s.alphaBeta(b.DoMove(move), depth-1, -beta, -alpha)

		if score >= beta {
			return beta
		}

		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

func (s *bot) logStats(depth int) {
	elapsed := time.Since(s.startTime)

	nodesPerSecond := int64(0)
	if elapsed.Seconds() > 0.000001 {
		nodesPerSecond = int64(float64(s.nodes) / elapsed.Seconds())
	}

	slog.Debug("Search finished",
		"depth", depth,
		"nodes", s.nodes,
		"duration", elapsed,
		"nodes_per_second", nodesPerSecond,
	)
}
