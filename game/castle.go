package game

import (
	"fmt"
	"strings"

	"github.com/escobar-west/chessapp/board"
)

// Wing selects a castling side.
type Wing uint8

const (
	WingKing Wing = iota
	WingQueen
)

func (w Wing) String() string {
	switch w {
	case WingKing:
		return "0-0"
	case WingQueen:
		return "0-0-0"
	default:
		return ""
	}
}

// CastleRights packs the four independent castling flags into one byte.
// All 16 subsets are valid states, so plain bit arithmetic is safe here.
type CastleRights uint8

const (
	CastleWhiteKing CastleRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen

	CastleNone CastleRights = 0
	CastleAll               = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

func castleFlag(c board.Color, w Wing) CastleRights {
	return 1 << (2*uint8(c) + uint8(w))
}

func (cr CastleRights) Can(c board.Color, w Wing) bool {
	return cr&castleFlag(c, w) != 0
}

func (cr *CastleRights) Remove(c board.Color, w Wing) {
	*cr &^= castleFlag(c, w)
}

func (cr *CastleRights) RemoveAll(c board.Color) {
	*cr &^= castleFlag(c, WingKing) | castleFlag(c, WingQueen)
}

func (cr *CastleRights) Set(c board.Color, w Wing) {
	*cr |= castleFlag(c, w)
}

// String renders the FEN castling field in canonical KQkq order, "-" if none.
func (cr CastleRights) String() string {
	if cr == CastleNone {
		return "-"
	}
	builder := strings.Builder{}
	if cr.Can(board.ColorWhite, WingKing) {
		_, _ = builder.WriteRune('K')
	}
	if cr.Can(board.ColorWhite, WingQueen) {
		_, _ = builder.WriteRune('Q')
	}
	if cr.Can(board.ColorBlack, WingKing) {
		_, _ = builder.WriteRune('k')
	}
	if cr.Can(board.ColorBlack, WingQueen) {
		_, _ = builder.WriteRune('q')
	}
	return builder.String()
}

// ParseCastleRights parses the FEN castling field. Flags must appear in
// canonical KQkq order without repeats.
func ParseCastleRights(s string) (CastleRights, error) {
	if s == "-" {
		return CastleNone, nil
	}
	if s == "" || len(s) > 4 {
		return CastleNone, fmt.Errorf("%w: invalid castling rights", board.ErrInvalidFEN)
	}
	cr := CastleNone
	last := -1
	for _, e := range s {
		i := strings.IndexRune("KQkq", e)
		if i < 0 || i <= last {
			return CastleNone, fmt.Errorf("%w: invalid castling rights", board.ErrInvalidFEN)
		}
		last = i
		cr |= 1 << i
	}
	return cr, nil
}
