package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "standard board", size: 8, wantErr: false},
		{name: "minimal board", size: 2, wantErr: false},
		{name: "large board", size: 10, wantErr: false},
		{name: "odd size", size: 7, wantErr: true},
		{name: "too small", size: 0, wantErr: true},
		{name: "negative", size: -2, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, err := NewBoard(test.size)
			if test.wantErr {
				require.ErrorIs(t, err, ErrInvalidSize)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.size, board.Size())
			require.Equal(t, BLACK, board.Turn())

			black, white := board.Score()
			require.Equal(t, 2, black)
			require.Equal(t, 2, white)
		})
	}
}

func TestNewBoard_InitialPosition(t *testing.T) {
	board := NewBoardMust(8)

	// Standard diagonal cross in the four center cells.
	require.Equal(t, WHITE, board.GetSquare(27)) // d4
	require.Equal(t, BLACK, board.GetSquare(28)) // e4
	require.Equal(t, BLACK, board.GetSquare(35)) // d5
	require.Equal(t, WHITE, board.GetSquare(36)) // e5

	for i := 0; i < 64; i++ {
		if i == 27 || i == 28 || i == 35 || i == 36 {
			continue
		}
		require.Equal(t, EMPTY, board.GetSquare(i), "cell %d should be empty", i)
	}

	// Black opens with exactly four choices.
	require.Equal(t, []int{19, 26, 37, 44}, board.Moves())
}

func TestNewBoardMust_Panics(t *testing.T) {
	require.Panics(t, func() {
		NewBoardMust(5)
	})
}

func TestDisc_Opponent(t *testing.T) {
	require.Equal(t, WHITE, BLACK.Opponent())
	require.Equal(t, BLACK, WHITE.Opponent())
}

func TestDisc_String(t *testing.T) {
	require.Equal(t, "black", BLACK.String())
	require.Equal(t, "white", WHITE.String())
	require.Equal(t, "empty", EMPTY.String())
}

func TestBoard_Score(t *testing.T) {
	tests := []struct {
		name      string
		board     string
		wantBlack int
		wantWhite int
	}{
		{
			name:      "single black disc",
			board:     "x" + empties(63) + "-b",
			wantBlack: 1,
			wantWhite: 0,
		},
		{
			name:      "mixed row",
			board:     "xxoo" + empties(60) + "-w",
			wantBlack: 2,
			wantWhite: 2,
		},
		{
			name:      "empty board",
			board:     empties(64) + "-b",
			wantBlack: 0,
			wantWhite: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, err := NewBoardFromString(test.board)
			require.NoError(t, err)

			black, white := board.Score()
			require.Equal(t, test.wantBlack, black)
			require.Equal(t, test.wantWhite, white)
		})
	}
}

func TestBoard_CountEmpties(t *testing.T) {
	require.Equal(t, 60, NewBoardMust(8).CountEmpties())
	require.Equal(t, 0, NewBoardMust(2).CountEmpties())
}

func TestBoard_IsForcedEnd(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  bool
	}{
		{
			name:  "initial position",
			board: NewBoardMust(8).String(),
			want:  false,
		},
		{
			name:  "full board",
			board: fullBoard(32, 32) + "-b",
			want:  true,
		},
		{
			name:  "white eliminated",
			board: "xxxx" + empties(60) + "-w",
			want:  true,
		},
		{
			name:  "black eliminated",
			board: "oo" + empties(62) + "-b",
			want:  true,
		},
		{
			name:  "one empty cell left",
			board: "." + fullBoard(32, 31) + "-b",
			want:  false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, err := NewBoardFromString(test.board)
			require.NoError(t, err)
			require.Equal(t, test.want, board.IsForcedEnd())
		})
	}
}

func TestBoard_Winner(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  Disc
	}{
		{name: "black ahead", board: fullBoard(40, 24) + "-b", want: BLACK},
		{name: "white ahead", board: fullBoard(24, 40) + "-w", want: WHITE},
		{name: "equal counts", board: fullBoard(32, 32) + "-b", want: DRAW},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, err := NewBoardFromString(test.board)
			require.NoError(t, err)
			require.Equal(t, test.want, board.Winner())
		})
	}
}

func TestBoard_Equal(t *testing.T) {
	board := NewBoardMust(8)

	require.True(t, board.Equal(NewBoardMust(8)))
	require.False(t, board.Equal(NewBoardMust(10)))
	require.False(t, board.Equal(board.DoPass()))
	require.False(t, board.Equal(board.DoMove(19)))
}

// empties returns a run of empty cell characters.
func empties(n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = '.'
	}
	return string(s)
}

// fullBoard returns the cell characters of a full 8×8 board with the given
// disc counts, black cells first.
func fullBoard(black, white int) string {
	s := make([]byte, black+white)
	for i := range s {
		if i < black {
			s[i] = 'x'
		} else {
			s[i] = 'o'
		}
	}
	return string(s)
}
