package othello

import (
	"errors"
	"fmt"
)

// Disc is the content of a single board cell.
type Disc int

const (
	BLACK Disc = iota
	WHITE
	EMPTY
	DRAW = EMPTY
)

const (
	PassMove = -1
)

// ErrInvalidSize is returned when a board size is not an even number of at least 2.
var ErrInvalidSize = errors.New("board size must be an even number of at least 2")

// Opponent returns the opposite color. Only meaningful for BLACK and WHITE.
func (d Disc) Opponent() Disc {
	return BLACK + WHITE - d
}

// String returns the color name.
func (d Disc) String() string {
	switch d {
	case BLACK:
		return "black"
	case WHITE:
		return "white"
	default:
		return "empty"
	}
}

// Board represents an Othello board of size×size cells with turn information.
// It is an immutable value: DoMove and DoPass return new boards and the cell
// slice behind a board is never written to after construction.
type Board struct {
	size  int
	cells []Disc
	turn  Disc
}

// NewBoard creates a new board of the given size with the standard starting
// cross in the center and BLACK to move. The size must be even and at least 2,
// otherwise ErrInvalidSize is returned.
func NewBoard(size int) (Board, error) {
	if size < 2 || size%2 != 0 {
		return Board{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	cells := make([]Disc, size*size)
	for i := range cells {
		cells[i] = EMPTY
	}

	mid := size / 2
	cells[(mid-1)*size+(mid-1)] = WHITE
	cells[mid*size+mid] = WHITE
	cells[(mid-1)*size+mid] = BLACK
	cells[mid*size+(mid-1)] = BLACK

	return Board{
		size:  size,
		cells: cells,
		turn:  BLACK,
	}, nil
}

// NewBoardMust creates a new board and panics if the size is invalid.
func NewBoardMust(size int) Board {
	board, err := NewBoard(size)
	if err != nil {
		panic(err)
	}
	return board
}

// Size returns the board size.
func (b Board) Size() int {
	return b.size
}

// Turn returns the side to move.
func (b Board) Turn() Disc {
	return b.turn
}

// GetSquare returns the disc at the given cell index.
func (b Board) GetSquare(index int) Disc {
	return b.cells[index]
}

// Score returns the number of black and white discs on the board.
func (b Board) Score() (black, white int) {
	for _, cell := range b.cells {
		switch cell {
		case BLACK:
			black++
		case WHITE:
			white++
		}
	}
	return black, white
}

// CountEmpties returns the number of empty cells.
func (b Board) CountEmpties() int {
	empties := 0
	for _, cell := range b.cells {
		if cell == EMPTY {
			empties++
		}
	}
	return empties
}

// IsForcedEnd reports whether the game is over regardless of mobility:
// the board is full or one side has no discs left.
func (b Board) IsForcedEnd() bool {
	black, white := b.Score()
	return black+white == len(b.cells) || black == 0 || white == 0
}

// Winner returns the color with the higher disc count, or DRAW on equal counts.
func (b Board) Winner() Disc {
	black, white := b.Score()
	switch {
	case black > white:
		return BLACK
	case white > black:
		return WHITE
	default:
		return DRAW
	}
}

// Equal checks if two boards are equal.
func (b Board) Equal(other Board) bool {
	if b.size != other.size || b.turn != other.turn {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
