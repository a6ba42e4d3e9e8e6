package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the number of files and ranks on the board.
	MaxComponentScalar = 8

	// TotalSquares is the number of squares on the board.
	TotalSquares = MaxComponentScalar * MaxComponentScalar
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrInvalidSquare represents an out-of-range square index error.
	ErrInvalidSquare = errors.New("invalid square")
)

// File is a board column in [0, 8), FileA being the queen-side edge.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is a board row in [0, 8), Rank1 being White's home rank.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Square is a board cell index in [0, 64), row-major from A1.
type Square int8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a Square from file and rank components. Components coming
// from the File/Rank constants or Square decomposition are always in range;
// anything else is validated.
func NewSquare(f File, r Rank) (Square, error) {
	if f < FileA || f > FileH || r < Rank1 || r > Rank8 {
		return 0, fmt.Errorf("%w: file=%d rank=%d", ErrInvalidSquare, f, r)
	}
	return Square(MaxComponentScalar*int8(r) + int8(f)), nil
}

// NewSquareFromIndex validates a raw square index.
func NewSquareFromIndex(i int) (Square, error) {
	if i < 0 || i >= TotalSquares {
		return 0, fmt.Errorf("%w: index=%d", ErrInvalidSquare, i)
	}
	return Square(i), nil
}

// NewSquareFromNotation parses file-letter+rank-digit notation, e.g. "e4".
func NewSquareFromNotation(n string) (Square, error) {
	if len(n) != 2 {
		return 0, ErrInvalidNotation
	}
	f := File(n[0] - 'a')
	if f < FileA || f > FileH {
		return 0, ErrInvalidNotation
	}
	r := Rank(n[1] - '1')
	if r < Rank1 || r > Rank8 {
		return 0, ErrInvalidNotation
	}
	return Square(MaxComponentScalar*int8(r) + int8(f)), nil
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) Notation() string {
	if s < A1 || s > H8 {
		return ""
	}
	return string(rune('a'+int8(s.File()))) + string(rune('1'+int8(s.Rank())))
}

func (s Square) File() File {
	return File(s % MaxComponentScalar)
}

func (s Square) Rank() Rank {
	return Rank(s / MaxComponentScalar)
}

func (f File) Notation() string {
	if f < FileA || f > FileH {
		return ""
	}
	return string(rune('a' + f))
}

func (r Rank) Notation() string {
	if r < Rank1 || r > Rank8 {
		return ""
	}
	return string(rune('1' + r))
}
