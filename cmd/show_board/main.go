package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mwestlind/othello/internal/othello"
)

func main() {
	boardString := flag.String("board", "", "the board to show")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	board.Print()

	black, white := board.Score()
	fmt.Printf("%s to move, black %d - white %d\n", board.Turn(), black, white)
}
