package board

import (
	"errors"
	"testing"
)

func TestNewPiece(t *testing.T) {
	t.Parallel()
	for _, c := range []Color{ColorWhite, ColorBlack} {
		for f := FigurePawn; f <= FigureKing; f++ {
			p := NewPiece(c, f)
			if p == PieceNone {
				t.Fatalf("NewPiece(%s, %s) returned PieceNone", c, f)
			}
			if p.Color() != c || p.Figure() != f {
				t.Errorf("piece %s: decomposed to (%s, %s), want (%s, %s)",
					p, p.Color(), p.Figure(), c, f)
			}
		}
	}
	if got := NewPiece(ColorBlack, FigureQueen); got != BlackQueen {
		t.Errorf("unexpected piece: got=%s want=%s", got, BlackQueen)
	}
}

func TestColorOpposite(t *testing.T) {
	t.Parallel()
	if ColorWhite.Opposite() != ColorBlack || ColorBlack.Opposite() != ColorWhite {
		t.Error("Opposite is not an involution over the two colors")
	}
}

func TestPieceSymbols(t *testing.T) {
	t.Parallel()
	tests := []struct {
		p           Piece
		fen, glyph  string
		description string
	}{
		{WhitePawn, "P", "♙", "White Pawn"},
		{WhiteKing, "K", "♔", "White King"},
		{BlackKnight, "n", "♞", "Black Knight"},
		{BlackQueen, "q", "♛", "Black Queen"},
	}
	for _, tt := range tests {
		if got := tt.p.SymbolFEN(); got != tt.fen {
			t.Errorf("%s: unexpected FEN symbol: got=%q want=%q", tt.p, got, tt.fen)
		}
		if got := tt.p.SymbolUnicode(); got != tt.glyph {
			t.Errorf("%s: unexpected glyph: got=%q want=%q", tt.p, got, tt.glyph)
		}
		if got := tt.p.String(); got != tt.description {
			t.Errorf("unexpected description: got=%q want=%q", got, tt.description)
		}
	}
}

func TestNewPieceFromFEN(t *testing.T) {
	t.Parallel()
	for p := WhitePawn; p <= BlackKing; p++ {
		got, err := NewPieceFromFEN(rune(p.SymbolFEN()[0]))
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", p, err)
		}
		if got != p {
			t.Errorf("symbol %q: got=%s want=%s", p.SymbolFEN(), got, p)
		}
	}
	if _, err := NewPieceFromFEN('x'); !errors.Is(err, ErrInvalidFEN) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidFEN)
	}
}
