package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/escobar-west/chessapp/board"
	"github.com/escobar-west/chessapp/position"
)

// parseFEN reads all six space-separated FEN fields:
// <placement> <turn> <castle-rights> <en-passant> <half-move> <full-move>.
func parseFEN(fen string) (*GameState, error) {
	if fen == "" {
		return nil, fmt.Errorf("%w: empty input", board.ErrInvalidFEN)
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return nil, fmt.Errorf("%w: incorrect number of segments", board.ErrInvalidFEN)
	}

	b, err := board.ParsePlacement(segments[0])
	if err != nil {
		return nil, err
	}
	if b.Count(board.WhiteKing) != 1 || b.Count(board.BlackKing) != 1 {
		return nil, fmt.Errorf("%w: exactly one king per side required", board.ErrInvalidFEN)
	}

	var turn board.Color
	switch segments[1] {
	case "w":
		turn = board.ColorWhite
	case "b":
		turn = board.ColorBlack
	default:
		return nil, fmt.Errorf("%w: invalid turn", board.ErrInvalidFEN)
	}

	castleRights, err := ParseCastleRights(segments[2])
	if err != nil {
		return nil, err
	}

	enPassant := noEnPassant
	if segments[3] != "-" {
		sq, err := position.NewSquareFromNotation(segments[3])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid enpassant square", board.ErrInvalidFEN)
		}
		if r := sq.Rank(); r != position.Rank3 && r != position.Rank6 {
			return nil, fmt.Errorf("%w: invalid enpassant square", board.ErrInvalidFEN)
		}
		enPassant = sq
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid half move clock", board.ErrInvalidFEN)
	}

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid full move clock", board.ErrInvalidFEN)
	}

	return &GameState{
		board:         b,
		turn:          turn,
		castleRights:  castleRights,
		enPassant:     enPassant,
		halfMoveClock: halfMoveClock,
		fullMoveClock: fullMoveClock,
	}, nil
}

// FEN marshals the full position back into a FEN string.
func (gs *GameState) FEN() string {
	turn := "w"
	if gs.turn == board.ColorBlack {
		turn = "b"
	}
	enPassant := "-"
	if gs.enPassant != noEnPassant {
		enPassant = gs.enPassant.Notation()
	}
	return fmt.Sprintf("%s %s %s %s %d %d",
		gs.board.Placement(), turn, gs.castleRights, enPassant, gs.halfMoveClock, gs.fullMoveClock)
}
