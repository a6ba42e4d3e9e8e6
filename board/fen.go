package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/escobar-west/chessapp/position"
)

var ErrInvalidFEN = errors.New("invalid fen")

// ParsePlacement builds a board from the piece-placement segment of a FEN
// string: 8 slash-separated ranks, rank 8 first, piece letters and digit
// run-lengths for empty squares. Every rank must account for exactly 8 files.
func ParsePlacement(placement string) (*Board, error) {
	if placement == "" {
		return nil, fmt.Errorf("%w: empty placement", ErrInvalidFEN)
	}
	rows := strings.Split(placement, "/")
	if len(rows) != Height {
		return nil, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	b := NewBoard()
	for i, row := range rows {
		r := position.Rank(Height - 1 - i)
		f := position.FileA
		for _, cell := range row {
			if unicode.IsDigit(cell) {
				skip := position.File(cell - '0')
				if skip == 0 || f+skip > Width {
					return nil, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				f += skip
				continue
			}
			if f >= Width {
				return nil, fmt.Errorf("%w: too many cells", ErrInvalidFEN)
			}
			p, err := NewPieceFromFEN(cell)
			if err != nil {
				return nil, err
			}
			sq, err := position.NewSquare(f, r)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
			}
			b.Set(sq, p)
			f++
		}
		if f != Width {
			return nil, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}
	return b, nil
}

// Placement marshals the board back into the piece-placement FEN segment.
func (b *Board) Placement() string {
	builder := strings.Builder{}
	for r := position.Rank8; r >= position.Rank1; r-- {
		skip := 0
		for f := position.FileA; f <= position.FileH; f++ {
			p := b.mailbox[int8(r)*Width+int8(f)]
			if p == PieceNone {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune('0' + skip))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN())
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune('0' + skip))
		}
		if r > position.Rank1 {
			_, _ = builder.WriteRune('/')
		}
	}
	return builder.String()
}
