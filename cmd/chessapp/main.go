package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/escobar-west/chessapp/board"
	"github.com/escobar-west/chessapp/game"
	"github.com/escobar-west/chessapp/position"
	"github.com/escobar-west/chessapp/render"
)

const (
	exitOK = iota
	exitErr
)

var (
	fen     = flag.String("fen", game.DefaultStartingPositionFEN, "starting position in FEN")
	svgPath = flag.String("svg", "", "write an SVG snapshot of the position after every move")
)

func main() {
	flag.Parse()

	if err := realMain(); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	gs, err := game.NewGameState(game.WithFEN(*fen))
	if err != nil {
		return err
	}

	fmt.Println(gs.Draw())
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit":
			return nil
		case "fen":
			fmt.Println(gs.FEN())
			continue
		}

		captured, err := applyMove(gs, line)
		if err != nil {
			fmt.Println(feedback(err))
			continue
		}
		if captured != board.PieceNone {
			fmt.Printf("captured %s\n", captured)
		}
		if gs.InCheck() {
			fmt.Println("check!")
		}
		fmt.Println(gs.Draw())

		if *svgPath != "" {
			if err := writeSVG(*svgPath, gs); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

// applyMove parses long-algebraic input ("e2e4", "e7e8q") and applies it.
func applyMove(gs *game.GameState, line string) (board.Piece, error) {
	if len(line) != 4 && len(line) != 5 {
		return board.PieceNone, fmt.Errorf("cannot parse move %q", line)
	}
	from, err := position.NewSquareFromNotation(line[:2])
	if err != nil {
		return board.PieceNone, fmt.Errorf("cannot parse move %q: %w", line, err)
	}
	to, err := position.NewSquareFromNotation(line[2:4])
	if err != nil {
		return board.PieceNone, fmt.Errorf("cannot parse move %q: %w", line, err)
	}
	if len(line) == 5 {
		var figure board.Figure
		switch line[4] {
		case 'q':
			figure = board.FigureQueen
		case 'r':
			figure = board.FigureRook
		case 'n':
			figure = board.FigureKnight
		case 'b':
			figure = board.FigureBishop
		default:
			return board.PieceNone, fmt.Errorf("cannot parse promotion %q", line)
		}
		return gs.MakePromotion(from, to, board.NewPiece(gs.Turn(), figure))
	}
	return gs.MakeMove(from, to)
}

// feedback maps each rejection kind to a distinct message.
func feedback(err error) string {
	switch {
	case errors.Is(err, game.ErrEmptySquare):
		return "no piece on that square"
	case errors.Is(err, game.ErrWrongTurn):
		return "it is not that side's turn"
	case errors.Is(err, game.ErrKingInCheck):
		return "that would leave your king in check"
	case errors.Is(err, game.ErrPromoting):
		return "promotion required: append a piece letter, e.g. e7e8q"
	case errors.Is(err, game.ErrIllegalMove):
		return "illegal move"
	default:
		return err.Error()
	}
}

func writeSVG(path string, gs *game.GameState) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	render.SVG(f, gs)
	return f.Close()
}
