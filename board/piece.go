package board

import (
	"fmt"
)

type Color uint8

const (
	ColorWhite Color = iota
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "White"
	case ColorBlack:
		return "Black"
	default:
		return ""
	}
}

func (c Color) Opposite() Color {
	return c ^ ColorBlack
}

type Figure uint8

const (
	FigurePawn Figure = iota
	FigureRook
	FigureKnight
	FigureBishop
	FigureQueen
	FigureKing
)

func (f Figure) String() string {
	switch f {
	case FigurePawn:
		return "Pawn"
	case FigureRook:
		return "Rook"
	case FigureKnight:
		return "Knight"
	case FigureBishop:
		return "Bishop"
	case FigureQueen:
		return "Queen"
	case FigureKing:
		return "King"
	default:
		return ""
	}
}

// Piece is a (Color, Figure) pair packed into one byte. The zero value
// PieceNone marks an empty square; the 12 concrete constants are the only
// other values ever stored on a board.
type Piece uint8

const (
	PieceNone Piece = iota
	WhitePawn
	WhiteRook
	WhiteKnight
	WhiteBishop
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackRook
	BlackKnight
	BlackBishop
	BlackQueen
	BlackKing
)

const pieceKinds = 12

func NewPiece(c Color, f Figure) Piece {
	return Piece(1 + uint8(c)*6 + uint8(f))
}

func (p Piece) Color() Color {
	return Color((p - 1) / 6)
}

func (p Piece) Figure() Figure {
	return Figure((p - 1) % 6)
}

// index maps the 12 concrete pieces onto [0, 12) for bitmap-array lookups.
func (p Piece) index() int {
	return int(p) - 1
}

func (p Piece) String() string {
	if p == PieceNone {
		return ""
	}
	return fmt.Sprintf("%s %s", p.Color(), p.Figure())
}

// SymbolFEN returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) SymbolFEN() string {
	var sym rune
	switch p.Figure() {
	case FigurePawn:
		sym = 'P'
	case FigureRook:
		sym = 'R'
	case FigureKnight:
		sym = 'N'
	case FigureBishop:
		sym = 'B'
	case FigureQueen:
		sym = 'Q'
	case FigureKing:
		sym = 'K'
	default:
		return ""
	}
	if p.Color() == ColorBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode() string {
	switch p {
	case WhitePawn:
		return "♙"
	case WhiteRook:
		return "♖"
	case WhiteKnight:
		return "♘"
	case WhiteBishop:
		return "♗"
	case WhiteQueen:
		return "♕"
	case WhiteKing:
		return "♔"
	case BlackPawn:
		return "♟"
	case BlackRook:
		return "♜"
	case BlackKnight:
		return "♞"
	case BlackBishop:
		return "♝"
	case BlackQueen:
		return "♛"
	case BlackKing:
		return "♚"
	default:
		return ""
	}
}

// NewPieceFromFEN maps a FEN letter to its piece.
func NewPieceFromFEN(sym rune) (Piece, error) {
	switch sym {
	case 'P':
		return WhitePawn, nil
	case 'R':
		return WhiteRook, nil
	case 'N':
		return WhiteKnight, nil
	case 'B':
		return WhiteBishop, nil
	case 'Q':
		return WhiteQueen, nil
	case 'K':
		return WhiteKing, nil
	case 'p':
		return BlackPawn, nil
	case 'r':
		return BlackRook, nil
	case 'n':
		return BlackKnight, nil
	case 'b':
		return BlackBishop, nil
	case 'q':
		return BlackQueen, nil
	case 'k':
		return BlackKing, nil
	default:
		return PieceNone, fmt.Errorf("%w: unknown symbol %q", ErrInvalidFEN, sym)
	}
}
