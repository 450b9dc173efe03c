package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/mwestlind/othello/internal/config"
	"github.com/mwestlind/othello/internal/game"
	"github.com/mwestlind/othello/internal/othello"
)

func main() {
	config.SetLogLevel()
	cfg := config.LoadPlayConfig()

	size := flag.Int("size", cfg.BoardSize, "board size (even, at least 2)")
	color := flag.String("color", cfg.HumanColor, "human color: black or white")
	difficulty := flag.String("difficulty", cfg.Difficulty, "difficulty: easy, medium or hard")
	flag.Parse()

	if err := run(*size, *color, *difficulty); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(size int, color, difficultyName string) error {
	var human othello.Disc
	switch color {
	case "black":
		human = othello.BLACK
	case "white":
		human = othello.WHITE
	default:
		return fmt.Errorf("invalid color: %q", color)
	}

	difficulty, err := game.ParseDifficulty(difficultyName)
	if err != nil {
		return err
	}

	session, err := game.NewSession(size, human, difficulty)
	if err != nil {
		return err
	}

	if err := session.Start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)

	for session.State() == game.InProgress {
		board := session.Board()
		board.Print()

		if board.Turn() == human {
			fmt.Printf("Your move (%s): ", human)

			if !scanner.Scan() {
				return scanner.Err()
			}

			move, err := othello.FieldToIndex(scanner.Text(), size)
			if err != nil {
				fmt.Println(err)
				continue
			}

			if err := session.PlayHuman(move); err != nil {
				fmt.Println(err)
				continue
			}
		} else {
			move, err := session.PlayComputer()
			if err != nil {
				return err
			}
			fmt.Printf("Computer plays %s\n", othello.IndexToField(move, size))
		}
	}

	board := session.Board()
	board.Print()

	black, white := board.Score()
	fmt.Printf("Final score: black %d - white %d\n", black, white)

	switch winner := session.Winner(); winner {
	case othello.DRAW:
		fmt.Println("Draw")
	case human:
		fmt.Printf("You win as %s\n", winner)
	default:
		fmt.Printf("Computer wins as %s\n", winner)
	}

	return nil
}
