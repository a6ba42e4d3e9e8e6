package board

import (
	"fmt"
	"strings"

	"github.com/escobar-west/chessapp/position"
)

// Board holds one bitmap per concrete piece, aggregate occupancy per side,
// and a mailbox table for point lookups. Every mutation keeps the three
// representations synchronized: a square holds piece P in the mailbox exactly
// when P's bitmap has that bit set and no other piece bitmap does.
type Board struct {
	pieces   [pieceKinds]Bitmap
	sides    [2]Bitmap
	occupied Bitmap
	mailbox  [TotalCells]Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece on the square, PieceNone if empty.
func (b *Board) Get(sq position.Square) Piece {
	return b.mailbox[sq]
}

// Set places a piece on the square and returns any displaced piece.
func (b *Board) Set(sq position.Square, p Piece) Piece {
	displaced := b.Clear(sq)
	b.mailbox[sq] = p
	b.pieces[p.index()] |= maskCell[sq]
	b.sides[p.Color()] |= maskCell[sq]
	b.occupied |= maskCell[sq]
	return displaced
}

// Clear empties the square and returns the removed piece, if any.
func (b *Board) Clear(sq position.Square) Piece {
	p := b.mailbox[sq]
	if p == PieceNone {
		return PieceNone
	}
	b.mailbox[sq] = PieceNone
	b.pieces[p.index()] &^= maskCell[sq]
	b.sides[p.Color()] &^= maskCell[sq]
	b.occupied &^= maskCell[sq]
	return p
}

// MovePiece moves whatever sits on from onto to, returning any captured
// piece. A move from an empty square is a no-op.
func (b *Board) MovePiece(from, to position.Square) Piece {
	p := b.Clear(from)
	if p == PieceNone {
		return PieceNone
	}
	return b.Set(to, p)
}

// UnmovePiece is the exact inverse of MovePiece: the piece on to returns to
// from, and captured (possibly PieceNone) is restored onto to. Used to roll
// back speculative applications during check probing.
func (b *Board) UnmovePiece(from, to position.Square, captured Piece) {
	p := b.Clear(to)
	if p != PieceNone {
		b.Set(from, p)
	}
	if captured != PieceNone {
		b.Set(to, captured)
	}
}

// Count returns the number of squares occupied by that exact piece.
func (b *Board) Count(p Piece) int {
	return int(b.pieces[p.index()].BitCount())
}

func (b *Board) Occupied() Bitmap {
	return b.occupied
}

func (b *Board) SideOccupancy(c Color) Bitmap {
	return b.sides[c]
}

func (b *Board) PieceMask(p Piece) Bitmap {
	return b.pieces[p.index()]
}

// IsSquareAttacked reports whether any piece of color by attacks the square.
// All six figure types are checked: king, knight and pawn by pattern lookup,
// sliders by unblocked-ray probing.
func (b *Board) IsSquareAttacked(sq position.Square, by Color) bool {
	if maskKnight[sq]&b.pieces[NewPiece(by, FigureKnight).index()] != 0 {
		return true
	}
	if maskKing[sq]&b.pieces[NewPiece(by, FigureKing).index()] != 0 {
		return true
	}
	// a pawn of color by attacks sq exactly when a pawn of the opposite
	// color on sq would attack the pawn's square
	if maskPawnAttacks[by.Opposite()][sq]&b.pieces[NewPiece(by, FigurePawn).index()] != 0 {
		return true
	}

	straight := b.pieces[NewPiece(by, FigureRook).index()] | b.pieces[NewPiece(by, FigureQueen).index()]
	straight &= maskRow[sq.Rank()] | maskCol[sq.File()]
	for it := straight.Iter(); ; {
		attacker, ok := it.Next()
		if !ok {
			break
		}
		if b.rayUnobstructed(maskStraightRay[attacker][sq], attacker) {
			return true
		}
	}

	diagonal := b.pieces[NewPiece(by, FigureBishop).index()] | b.pieces[NewPiece(by, FigureQueen).index()]
	diagonal &= maskDia[sq] | maskADia[sq]
	for it := diagonal.Iter(); ; {
		attacker, ok := it.Next()
		if !ok {
			break
		}
		if b.rayUnobstructed(maskDiagonalRay[attacker][sq], attacker) {
			return true
		}
	}
	return false
}

// IsInCheck reports whether the king of the given color is attacked.
func (b *Board) IsInCheck(c Color) bool {
	kings := b.pieces[NewPiece(c, FigureKing).index()]
	if kings == 0 {
		return false
	}
	return b.IsSquareAttacked(kings.LS1B(), c.Opposite())
}

// PseudoLegal tests movement geometry and occupancy only: the destination
// must not hold a piece of the mover's color, the attack pattern must reach
// it, and sliding paths must be unobstructed. Check exposure, en passant and
// castling are the caller's concern.
func (b *Board) PseudoLegal(p Piece, from, to position.Square) bool {
	if from == to {
		return false
	}
	if b.sides[p.Color()].Contains(to) {
		return false
	}
	switch p.Figure() {
	case FigurePawn:
		return b.PawnMoves(from, p.Color()).Contains(to)
	case FigureRook:
		return b.rayUnobstructed(maskStraightRay[from][to], from)
	case FigureKnight:
		return maskKnight[from].Contains(to)
	case FigureBishop:
		return b.rayUnobstructed(maskDiagonalRay[from][to], from)
	case FigureQueen:
		return b.rayUnobstructed(maskStraightRay[from][to], from) ||
			b.rayUnobstructed(maskDiagonalRay[from][to], from)
	case FigureKing:
		return maskKing[from].Contains(to)
	default:
		return false
	}
}

// rayUnobstructed reports whether a ray (origin included, destination
// excluded) holds no piece other than the origin itself. A zero ray means
// the squares share no line.
func (b *Board) rayUnobstructed(ray Bitmap, origin position.Square) bool {
	return ray != 0 && ray&b.occupied == maskCell[origin]
}

// PawnMoves returns the destinations of a pawn on from: single push, double
// push from the home rank when both squares are free, and diagonal captures
// onto enemy-occupied squares. En passant is excluded; the game layer adds it.
func (b *Board) PawnMoves(from position.Square, c Color) Bitmap {
	cell := maskCell[from]
	if c == ColorWhite {
		moveN1 := ShiftN(cell&^maskRow[position.Rank8]) &^ b.occupied
		moveN2 := ShiftN(moveN1&maskRow[position.Rank3]) &^ b.occupied
		captures := maskPawnAttacks[ColorWhite][from] & b.sides[ColorBlack]
		return moveN1 | moveN2 | captures
	}
	moveS1 := ShiftS(cell&^maskRow[position.Rank1]) &^ b.occupied
	moveS2 := ShiftS(moveS1&maskRow[position.Rank6]) &^ b.occupied
	captures := maskPawnAttacks[ColorBlack][from] & b.sides[ColorWhite]
	return moveS1 | moveS2 | captures
}

// Iter returns an iterator over all occupied squares and their pieces,
// white pieces first, figures in declaration order, squares ascending within
// each figure. It reads the bitmaps live; restart by calling Iter again.
func (b *Board) Iter() *PieceIterator {
	return &PieceIterator{b: b}
}

type PieceIterator struct {
	b    *Board
	next int
	cur  Piece
	it   BitmapIterator
}

func (it *PieceIterator) Next() (position.Square, Piece, bool) {
	for {
		if sq, ok := it.it.Next(); ok {
			return sq, it.cur, true
		}
		if it.next >= pieceKinds {
			return 0, PieceNone, false
		}
		it.cur = Piece(it.next + 1)
		it.it = it.b.pieces[it.next].Iter()
		it.next++
	}
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for r := position.Rank8; r >= position.Rank1; r-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", r.Notation()))
		for f := position.FileA; f <= position.FileH; f++ {
			sym := " "
			if p := b.mailbox[int8(r)*Width+int8(f)]; p != PieceNone {
				sym = p.SymbolFEN()
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for f := position.FileA; f <= position.FileH; f++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", f.Notation()))
	}
	return builder.String()
}
