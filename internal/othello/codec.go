package othello

import (
	"fmt"
	"strconv"
	"strings"
)

const cellChars = "xo."

// String returns the string representation of the board: one character per
// cell in row-major order ('x' black, 'o' white, '.' empty) followed by "-b"
// or "-w" for the side to move.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + 2)

	for _, cell := range b.cells {
		sb.WriteByte(cellChars[cell])
	}

	if b.turn == WHITE {
		sb.WriteString("-w")
	} else {
		sb.WriteString("-b")
	}

	return sb.String()
}

// NewBoardFromString creates a board from its string representation. The
// board size is derived from the number of cell characters.
func NewBoardFromString(s string) (Board, error) {
	if len(s) < 3 {
		return Board{}, fmt.Errorf("board string too short: %q", s)
	}

	var turn Disc
	switch s[len(s)-2:] {
	case "-b":
		turn = BLACK
	case "-w":
		turn = WHITE
	default:
		return Board{}, fmt.Errorf("invalid turn suffix: %q", s[len(s)-2:])
	}

	cellString := s[:len(s)-2]

	size := 1
	for size*size < len(cellString) {
		size++
	}
	if size*size != len(cellString) {
		return Board{}, fmt.Errorf("cell count %d is not a square", len(cellString))
	}
	if size < 2 || size%2 != 0 {
		return Board{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	cells := make([]Disc, len(cellString))
	for i := range cellString {
		switch cellString[i] {
		case 'x':
			cells[i] = BLACK
		case 'o':
			cells[i] = WHITE
		case '.':
			cells[i] = EMPTY
		default:
			return Board{}, fmt.Errorf("invalid cell character %q at index %d", cellString[i], i)
		}
	}

	return Board{
		size:  size,
		cells: cells,
		turn:  turn,
	}, nil
}

// FieldToIndex converts a field notation (e.g. "a1", "h8") to a cell index
// for a board of the given size. "--" is the pass token.
func FieldToIndex(field string, size int) (int, error) {
	field = strings.ToLower(strings.TrimSpace(field))

	if field == "--" {
		return PassMove, nil
	}

	if len(field) < 2 {
		return 0, fmt.Errorf("invalid field: %q", field)
	}

	col := int(field[0] - 'a')
	if col < 0 || col >= size {
		return 0, fmt.Errorf("invalid column in field: %q", field)
	}

	row, err := strconv.Atoi(field[1:])
	if err != nil || row < 1 || row > size {
		return 0, fmt.Errorf("invalid row in field: %q", field)
	}

	return (row-1)*size + col, nil
}

// IndexToField converts a cell index to field notation. PassMove becomes "--".
func IndexToField(index, size int) string {
	if index == PassMove {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+byte(index%size), index/size+1)
}

// ASCIIArtLines returns the ascii art lines for the board. Valid moves for
// the side to move are marked with a dot.
func (b Board) ASCIIArtLines() []string {
	valid := make(map[int]bool)
	for _, move := range b.Moves() {
		valid[move] = true
	}

	lines := make([]string, b.size+2)

	var header strings.Builder
	header.WriteByte('+')
	for x := 0; x < b.size; x++ {
		header.WriteByte('-')
		header.WriteByte(byte('a' + x))
	}
	header.WriteString("-+")
	lines[0] = header.String()

	for y := 0; y < b.size; y++ {
		line := fmt.Sprintf("%d ", y+1)

		for x := 0; x < b.size; x++ {
			index := y*b.size + x

			switch {
			case b.cells[index] == WHITE:
				line += "○ "
			case b.cells[index] == BLACK:
				line += "● "
			case valid[index]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[y+1] = line + "|"
	}

	lines[b.size+1] = "+" + strings.Repeat("-", 2*b.size+1) + "+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print() {
	for _, line := range b.ASCIIArtLines() {
		fmt.Println(line)
	}
}
