package othello

// directions covers horizontal, vertical and both diagonals.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// flipsAny reports whether playing side on the given empty cell would flip
// at least one disc. Cheaper than Flips since it stops at the first capture.
func (b Board) flipsAny(move int, side Disc) bool {
	opponent := side.Opponent()
	x0, y0 := move%b.size, move/b.size

	for _, dir := range directions {
		dx, dy := dir[0], dir[1]
		run := 0

		x, y := x0+dx, y0+dy
		for x >= 0 && x < b.size && y >= 0 && y < b.size {
			switch b.cells[y*b.size+x] {
			case opponent:
				run++
				x += dx
				y += dy
				continue
			case side:
				if run > 0 {
					return true
				}
			}
			break
		}
	}

	return false
}

// IsValidMove checks if a move is valid for the side to move. PassMove is
// valid exactly when no cell move is.
func (b Board) IsValidMove(move int) bool {
	if move == PassMove {
		return !b.HasMoves(b.turn)
	}
	if move < 0 || move >= len(b.cells) || b.cells[move] != EMPTY {
		return false
	}
	return b.flipsAny(move, b.turn)
}

// Flips returns the indices of all opponent discs that playing the given cell
// would flip. The result is empty when the move is invalid; the moved-into
// cell itself is not included.
func (b Board) Flips(move int) []int {
	if move < 0 || move >= len(b.cells) || b.cells[move] != EMPTY {
		return nil
	}

	opponent := b.turn.Opponent()
	x0, y0 := move%b.size, move/b.size

	var flipped []int
	for _, dir := range directions {
		dx, dy := dir[0], dir[1]
		var run []int

		x, y := x0+dx, y0+dy
		for x >= 0 && x < b.size && y >= 0 && y < b.size {
			cell := y*b.size + x
			switch b.cells[cell] {
			case opponent:
				run = append(run, cell)
				x += dx
				y += dy
				continue
			case b.turn:
				if len(run) > 0 {
					flipped = append(flipped, run...)
				}
			}
			break
		}
	}

	return flipped
}

// HasMoves reports whether the given side has at least one valid cell move.
func (b Board) HasMoves(side Disc) bool {
	for move, cell := range b.cells {
		if cell == EMPTY && b.flipsAny(move, side) {
			return true
		}
	}
	return false
}

// Moves returns all valid cell moves for the side to move in ascending order.
func (b Board) Moves() []int {
	moves := make([]int, 0)
	for move, cell := range b.cells {
		if cell == EMPTY && b.flipsAny(move, b.turn) {
			moves = append(moves, move)
		}
	}
	return moves
}

// CountMoves returns the number of valid cell moves for the given side.
func (b Board) CountMoves(side Disc) int {
	count := 0
	for move, cell := range b.cells {
		if cell == EMPTY && b.flipsAny(move, side) {
			count++
		}
	}
	return count
}

// DoMove performs a move and returns the new board. An invalid move is a
// no-op: the same board is returned unchanged, which is how callers detect
// rejected input. PassMove is forwarded to DoPass.
func (b Board) DoMove(move int) Board {
	if move == PassMove {
		return b.DoPass()
	}

	flipped := b.Flips(move)
	if len(flipped) == 0 {
		return b
	}

	cells := make([]Disc, len(b.cells))
	copy(cells, b.cells)
	cells[move] = b.turn
	for _, cell := range flipped {
		cells[cell] = b.turn
	}

	return Board{
		size:  b.size,
		cells: cells,
		turn:  b.turn.Opponent(),
	}
}

// DoPass returns the same position with the turn flipped. Callers should only
// pass when the side to move has no valid cell move.
func (b Board) DoPass() Board {
	return Board{
		size:  b.size,
		cells: b.cells,
		turn:  b.turn.Opponent(),
	}
}

// Children returns all boards reachable with one move, in ascending move order.
func (b Board) Children() []Board {
	moves := b.Moves()
	children := make([]Board, len(moves))
	for i, move := range moves {
		children[i] = b.DoMove(move)
	}
	return children
}
