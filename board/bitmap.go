package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/escobar-west/chessapp/position"
)

// Bitmap is a set of squares packed into a uint64, bit i marking square i
// in little-endian rank-file order (A1 = bit 0).
type Bitmap uint64

func SquareMask(sq position.Square) Bitmap {
	return maskCell[sq]
}

func FileMask(f position.File) Bitmap {
	return maskCol[f]
}

func RankMask(r position.Rank) Bitmap {
	return maskRow[r]
}

// KingMoves returns the precomputed king attack mask for the square.
func KingMoves(sq position.Square) Bitmap {
	return maskKing[sq]
}

// KnightMoves returns the precomputed knight attack mask for the square.
func KnightMoves(sq position.Square) Bitmap {
	return maskKnight[sq]
}

// PawnAttacks returns the diagonal capture mask of a pawn of the given color.
func PawnAttacks(sq position.Square, c Color) Bitmap {
	return maskPawnAttacks[c][sq]
}

// StraightRay returns the squares from `from` up to but excluding `to` along
// a shared rank or file, `from` included. Zero if the squares share neither.
// A move from `from` to `to` is unobstructed exactly when the ray intersected
// with the occupancy equals the origin square alone.
func StraightRay(from, to position.Square) Bitmap {
	return maskStraightRay[from][to]
}

// DiagonalRay is StraightRay along a shared diagonal or anti-diagonal.
func DiagonalRay(from, to position.Square) Bitmap {
	return maskDiagonalRay[from][to]
}

func Union(bms ...Bitmap) Bitmap {
	var u Bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func Intersect(bms ...Bitmap) Bitmap {
	u := ^Bitmap(0)
	for _, bm := range bms {
		u &= bm
	}
	return u
}

func ShiftNW(bm Bitmap) Bitmap {
	return bm << 7
}

func ShiftN(bm Bitmap) Bitmap {
	return bm << 8
}

func ShiftNE(bm Bitmap) Bitmap {
	return bm << 9
}

func ShiftE(bm Bitmap) Bitmap {
	return bm << 1
}

func ShiftSE(bm Bitmap) Bitmap {
	return bm >> 7
}

func ShiftS(bm Bitmap) Bitmap {
	return bm >> 8
}

func ShiftSW(bm Bitmap) Bitmap {
	return bm >> 9
}

func ShiftW(bm Bitmap) Bitmap {
	return bm >> 1
}

func (bm Bitmap) Contains(sq position.Square) bool {
	return bm&maskCell[sq] != 0
}

func (bm *Bitmap) Set(sq position.Square) {
	*bm |= maskCell[sq]
}

func (bm *Bitmap) Unset(sq position.Square) {
	*bm &^= maskCell[sq]
}

// LS1B returns the lowest set square. Undefined on an empty bitmap.
func (bm Bitmap) LS1B() position.Square {
	return position.Square(bits.TrailingZeros64(uint64(bm)))
}

func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Iter returns an iterator over the set squares in ascending index order.
// The iterator consumes its own copy of the bitmap; calling Iter again
// restarts from the full set.
func (bm Bitmap) Iter() BitmapIterator {
	return BitmapIterator{rem: bm}
}

type BitmapIterator struct {
	rem Bitmap
}

func (it *BitmapIterator) Next() (position.Square, bool) {
	if it.rem == 0 {
		return 0, false
	}
	sq := it.rem.LS1B()
	it.rem &= it.rem - 1
	return sq, true
}

func (bm Bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for r := position.Rank8; r >= position.Rank1; r-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", r.Notation()))
		for f := position.FileA; f <= position.FileH; f++ {
			if bm&maskCol[f]&maskRow[r] != 0 {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for f := position.FileA; f <= position.FileH; f++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", f.Notation()))
	}
	return builder.String()
}
