// Package game orchestrates a single human-versus-computer Othello game:
// turn alternation, automatic passing and end-of-game detection.
package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mwestlind/othello/internal/ai"
	"github.com/mwestlind/othello/internal/othello"
)

// State is the lifecycle state of a session.
type State int

const (
	Setup State = iota
	InProgress
	Ended
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Setup:
		return "setup"
	case InProgress:
		return "in_progress"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Difficulty selects the computer player's strategy.
type Difficulty int

const (
	Easy   Difficulty = iota // single-ply greedy
	Medium                   // alpha-beta, 3 plies
	Hard                     // alpha-beta, 5 plies
)

// searchDepth returns the alpha-beta depth, or 0 for the greedy strategy.
func (d Difficulty) searchDepth() int {
	switch d {
	case Medium:
		return 3
	case Hard:
		return 5
	default:
		return 0
	}
}

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// ParseDifficulty parses a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("invalid difficulty: %q", s)
	}
}

var (
	ErrWrongState  = errors.New("operation not allowed in this session state")
	ErrWrongTurn   = errors.New("not this player's turn")
	ErrIllegalMove = errors.New("illegal move")
)

// Session is a single game owned by its caller. It holds the authoritative
// board and encodes Othello's turn/pass/termination state machine; the
// rendering host only ever observes it through the accessors.
type Session struct {
	id         uuid.UUID
	state      State
	start      othello.Board
	board      othello.Board
	human      othello.Disc
	difficulty Difficulty
	winner     othello.Disc
	moves      []int
}

// NewSession creates a session in Setup state playing on a fresh board of the
// given size, with the human playing the given color.
func NewSession(size int, human othello.Disc, difficulty Difficulty) (*Session, error) {
	start, err := othello.NewBoard(size)
	if err != nil {
		return nil, err
	}
	return NewSessionWithStart(start, human, difficulty)
}

// NewSessionWithStart creates a session with a custom start board. This
// allows non-standard openings and is used by tests to reach endgame
// scenarios directly.
func NewSessionWithStart(start othello.Board, human othello.Disc, difficulty Difficulty) (*Session, error) {
	if human != othello.BLACK && human != othello.WHITE {
		return nil, fmt.Errorf("human color must be black or white, got %s", human)
	}
	if difficulty != Easy && difficulty != Medium && difficulty != Hard {
		return nil, fmt.Errorf("invalid difficulty: %d", int(difficulty))
	}

	return &Session{
		id:         uuid.New(),
		state:      Setup,
		start:      start,
		board:      start,
		human:      human,
		difficulty: difficulty,
		winner:     othello.EMPTY,
		moves:      make([]int, 0),
	}, nil
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// Board returns the current board.
func (s *Session) Board() othello.Board {
	return s.board
}

// HumanDisc returns the color the human plays.
func (s *Session) HumanDisc() othello.Disc {
	return s.human
}

// ComputerDisc returns the color the computer plays.
func (s *Session) ComputerDisc() othello.Disc {
	return s.human.Opponent()
}

// Winner returns the winning color, or DRAW. Only meaningful once the
// session has Ended.
func (s *Session) Winner() othello.Disc {
	return s.winner
}

// Moves returns the moves played so far, including automatic passes.
func (s *Session) Moves() []int {
	moves := make([]int, len(s.moves))
	copy(moves, s.moves)
	return moves
}

// Start moves the session from Setup to InProgress on a fresh start board.
// Degenerate starts that are already over (e.g. a 2×2 board) end immediately.
func (s *Session) Start() error {
	if s.state != Setup {
		return fmt.Errorf("%w: cannot start in state %s", ErrWrongState, s.state)
	}

	s.board = s.start
	s.moves = s.moves[:0]
	s.state = InProgress

	slog.Debug("Game started",
		"session", s.id,
		"size", s.board.Size(),
		"human", s.human,
		"difficulty", s.difficulty,
	)

	s.advance()
	return nil
}

// PlayHuman applies the human's move. An index that is not a valid move for
// the current board is rejected with ErrIllegalMove and leaves the session
// unchanged.
func (s *Session) PlayHuman(move int) error {
	if s.state != InProgress {
		return fmt.Errorf("%w: session is %s", ErrWrongState, s.state)
	}
	if s.board.Turn() != s.human {
		return ErrWrongTurn
	}
	if move == othello.PassMove {
		// Passes are applied automatically, never requested.
		return ErrIllegalMove
	}

	next := s.board.DoMove(move)
	if next.Equal(s.board) {
		return ErrIllegalMove
	}

	s.board = next
	s.moves = append(s.moves, move)
	s.advance()
	return nil
}

// PlayComputer selects and applies the computer's move and returns it. While
// the session is InProgress the side to move always has a valid move, so the
// selectors never report NoMove here.
func (s *Session) PlayComputer() (int, error) {
	if s.state != InProgress {
		return ai.NoMove, fmt.Errorf("%w: session is %s", ErrWrongState, s.state)
	}
	if s.board.Turn() == s.human {
		return ai.NoMove, ErrWrongTurn
	}

	var move int
	if depth := s.difficulty.searchDepth(); depth == 0 {
		move = ai.SelectMoveGreedy(s.board)
	} else {
		var err error
		move, err = ai.SelectMoveAlphaBeta(s.board, depth)
		if err != nil {
			return ai.NoMove, err
		}
	}

	s.board = s.board.DoMove(move)
	s.moves = append(s.moves, move)
	s.advance()
	return move, nil
}

// Reset returns an ended session to Setup, keeping its id and settings.
func (s *Session) Reset() error {
	if s.state != Ended {
		return fmt.Errorf("%w: cannot reset in state %s", ErrWrongState, s.state)
	}

	s.state = Setup
	s.board = s.start
	s.winner = othello.EMPTY
	s.moves = s.moves[:0]

	slog.Debug("Session reset", "session", s.id)
	return nil
}

// advance runs after every board change: it detects forced ends, applies
// automatic passes, and detects the double-pass termination where neither
// side can play.
func (s *Session) advance() {
	for {
		if s.board.IsForcedEnd() {
			s.end()
			return
		}

		if s.board.HasMoves(s.board.Turn()) {
			return
		}

		if !s.board.HasMoves(s.board.Turn().Opponent()) {
			// Neither side can play: double-pass termination.
			s.end()
			return
		}

		s.board = s.board.DoPass()
		s.moves = append(s.moves, othello.PassMove)
		slog.Debug("Forced pass", "session", s.id, "turn", s.board.Turn())
	}
}

func (s *Session) end() {
	s.state = Ended
	s.winner = s.board.Winner()

	black, white := s.board.Score()
	slog.Debug("Game ended",
		"session", s.id,
		"winner", s.winner,
		"black", black,
		"white", white,
	)
}
