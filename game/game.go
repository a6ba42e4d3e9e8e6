package game

import (
	"github.com/escobar-west/chessapp/board"
	"github.com/escobar-west/chessapp/position"
)

const DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const noEnPassant position.Square = -1

// castlePos maps (color, wing) to the king and rook hops of that castle.
var castlePos = [2][2]struct {
	kingFrom, kingTo, rookFrom, rookTo position.Square
}{
	board.ColorWhite: {
		WingKing:  {position.E1, position.G1, position.H1, position.F1},
		WingQueen: {position.E1, position.C1, position.A1, position.D1},
	},
	board.ColorBlack: {
		WingKing:  {position.E8, position.G8, position.H8, position.F8},
		WingQueen: {position.E8, position.C8, position.A8, position.D8},
	},
}

// maskCastleEmpty holds the squares between king and rook that must be
// unoccupied. The queen-side B file is required empty but the king never
// crosses it, so it is absent from castleKingPath.
var maskCastleEmpty = [2][2]board.Bitmap{
	board.ColorWhite: {
		WingKing: board.Union(
			board.SquareMask(position.F1), board.SquareMask(position.G1)),
		WingQueen: board.Union(
			board.SquareMask(position.B1), board.SquareMask(position.C1), board.SquareMask(position.D1)),
	},
	board.ColorBlack: {
		WingKing: board.Union(
			board.SquareMask(position.F8), board.SquareMask(position.G8)),
		WingQueen: board.Union(
			board.SquareMask(position.B8), board.SquareMask(position.C8), board.SquareMask(position.D8)),
	},
}

// castleKingPath lists every square the king occupies during the castle,
// origin through destination; none may be attacked.
var castleKingPath = [2][2][3]position.Square{
	board.ColorWhite: {
		WingKing:  {position.E1, position.F1, position.G1},
		WingQueen: {position.E1, position.D1, position.C1},
	},
	board.ColorBlack: {
		WingKing:  {position.E8, position.F8, position.G8},
		WingQueen: {position.E8, position.D8, position.C8},
	},
}

// GameState is the move-legality state machine: a board plus turn, castling
// rights, en passant target and move counters. Move application is
// all-or-nothing; a rejected move leaves every field untouched. A GameState
// is not safe for concurrent use; callers embedding it in a multi-threaded
// host must serialize access per instance.
type GameState struct {
	board         *board.Board
	turn          board.Color
	castleRights  CastleRights
	enPassant     position.Square
	halfMoveClock uint64
	fullMoveClock uint64
}

type gameConfig struct {
	fen string
}

type Option func(*gameConfig)

func WithFEN(fen string) Option {
	return func(cfg *gameConfig) {
		cfg.fen = fen
	}
}

// NewGameState builds a game from a FEN position, the standard starting
// position by default.
func NewGameState(opts ...Option) (*GameState, error) {
	cfg := &gameConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	return parseFEN(cfg.fen)
}

func (gs *GameState) Turn() board.Color {
	return gs.turn
}

// Get returns the piece on the square, board.PieceNone if empty.
func (gs *GameState) Get(sq position.Square) board.Piece {
	return gs.board.Get(sq)
}

func (gs *GameState) CastleRights() CastleRights {
	return gs.castleRights
}

// EnPassantTarget returns the capture square opened by the last double pawn
// push, if any.
func (gs *GameState) EnPassantTarget() (position.Square, bool) {
	return gs.enPassant, gs.enPassant != noEnPassant
}

func (gs *GameState) HalfMoveClock() uint64 {
	return gs.halfMoveClock
}

func (gs *GameState) FullMoveClock() uint64 {
	return gs.fullMoveClock
}

// InCheck reports whether the side to move is in check.
func (gs *GameState) InCheck() bool {
	return gs.board.IsInCheck(gs.turn)
}

// Iter iterates over all occupied squares and their pieces.
func (gs *GameState) Iter() *board.PieceIterator {
	return gs.board.Iter()
}

// MakeMove validates and applies a move of the side to move. It returns the
// captured piece (board.PieceNone for quiet moves) or an error naming the
// rejection reason; on rejection the position is unchanged. A pawn reaching
// the promotion rank is rejected with ErrPromoting and must be replayed via
// MakePromotion.
func (gs *GameState) MakeMove(from, to position.Square) (board.Piece, error) {
	piece := gs.board.Get(from)
	if piece == board.PieceNone {
		return board.PieceNone, ErrEmptySquare
	}
	if piece.Color() != gs.turn {
		return board.PieceNone, ErrWrongTurn
	}

	switch piece.Figure() {
	case board.FigurePawn:
		return gs.makePawnMove(piece, from, to)
	case board.FigureKing:
		return gs.makeKingMove(piece, from, to)
	default:
		if !gs.board.PseudoLegal(piece, from, to) {
			return board.PieceNone, ErrIllegalMove
		}
		captured, err := gs.testMove(from, to)
		if err != nil {
			return board.PieceNone, err
		}
		gs.commit(piece, from, to, captured)
		return captured, nil
	}
}

// MakePromotion applies a pawn move onto the promotion rank, replacing the
// pawn with the given promotion piece. The promotion piece must belong to
// the side to move and must not be a pawn or king.
func (gs *GameState) MakePromotion(from, to position.Square, promotion board.Piece) (board.Piece, error) {
	piece := gs.board.Get(from)
	if piece == board.PieceNone {
		return board.PieceNone, ErrEmptySquare
	}
	if piece.Color() != gs.turn {
		return board.PieceNone, ErrWrongTurn
	}
	if piece.Figure() != board.FigurePawn {
		return board.PieceNone, ErrIllegalMove
	}
	if promotion == board.PieceNone || promotion.Color() != gs.turn {
		return board.PieceNone, ErrIllegalMove
	}
	if f := promotion.Figure(); f == board.FigurePawn || f == board.FigureKing {
		return board.PieceNone, ErrIllegalMove
	}
	if to.Rank() != promotionRank(gs.turn) {
		return board.PieceNone, ErrIllegalMove
	}
	if !gs.board.PawnMoves(from, gs.turn).Contains(to) {
		return board.PieceNone, ErrIllegalMove
	}

	captured := gs.board.MovePiece(from, to)
	if gs.board.IsInCheck(gs.turn) {
		gs.board.UnmovePiece(from, to, captured)
		return board.PieceNone, ErrKingInCheck
	}
	gs.board.Set(to, promotion)
	gs.commit(piece, from, to, captured)
	return captured, nil
}

func (gs *GameState) makePawnMove(piece board.Piece, from, to position.Square) (board.Piece, error) {
	if gs.enPassant != noEnPassant && to == gs.enPassant &&
		board.PawnAttacks(from, gs.turn).Contains(to) {
		captured, err := gs.testEnPassant(from, to)
		if err != nil {
			return board.PieceNone, err
		}
		gs.commit(piece, from, to, captured)
		return captured, nil
	}
	if !gs.board.PawnMoves(from, gs.turn).Contains(to) {
		return board.PieceNone, ErrIllegalMove
	}
	captured, err := gs.testMove(from, to)
	if err != nil {
		return board.PieceNone, err
	}
	gs.commit(piece, from, to, captured)
	return captured, nil
}

func (gs *GameState) makeKingMove(piece board.Piece, from, to position.Square) (board.Piece, error) {
	if board.KingMoves(from).Contains(to) {
		if gs.board.SideOccupancy(gs.turn).Contains(to) {
			return board.PieceNone, ErrIllegalMove
		}
		captured, err := gs.testMove(from, to)
		if err != nil {
			return board.PieceNone, err
		}
		gs.commit(piece, from, to, captured)
		return captured, nil
	}
	w, ok := gs.castleWing(from, to)
	if !ok {
		return board.PieceNone, ErrIllegalMove
	}
	if err := gs.makeCastle(w); err != nil {
		return board.PieceNone, err
	}
	gs.commit(piece, from, to, board.PieceNone)
	return board.PieceNone, nil
}

func (gs *GameState) castleWing(from, to position.Square) (Wing, bool) {
	for _, w := range []Wing{WingKing, WingQueen} {
		if from == castlePos[gs.turn][w].kingFrom && to == castlePos[gs.turn][w].kingTo {
			return w, true
		}
	}
	return 0, false
}

// makeCastle moves king and rook atomically once the right is held, the
// intervening squares are empty, and no square on the king's path is
// attacked.
func (gs *GameState) makeCastle(w Wing) error {
	if !gs.castleRights.Can(gs.turn, w) {
		return ErrIllegalMove
	}
	if maskCastleEmpty[gs.turn][w]&gs.board.Occupied() != 0 {
		return ErrIllegalMove
	}
	opp := gs.turn.Opposite()
	for _, sq := range castleKingPath[gs.turn][w] {
		if gs.board.IsSquareAttacked(sq, opp) {
			return ErrKingInCheck
		}
	}
	hops := castlePos[gs.turn][w]
	gs.board.MovePiece(hops.kingFrom, hops.kingTo)
	gs.board.MovePiece(hops.rookFrom, hops.rookTo)
	return nil
}

// testMove speculatively applies the move and rolls back if it leaves the
// mover in check or completes an unannounced promotion.
func (gs *GameState) testMove(from, to position.Square) (board.Piece, error) {
	captured := gs.board.MovePiece(from, to)
	if gs.board.IsInCheck(gs.turn) {
		gs.board.UnmovePiece(from, to, captured)
		return board.PieceNone, ErrKingInCheck
	}
	if moved := gs.board.Get(to); moved.Figure() == board.FigurePawn && to.Rank() == promotionRank(gs.turn) {
		gs.board.UnmovePiece(from, to, captured)
		return board.PieceNone, ErrPromoting
	}
	return captured, nil
}

// testEnPassant removes the passed pawn before the check probe: the capture
// can expose a lateral check invisible while both pawns stand on the rank.
func (gs *GameState) testEnPassant(from, to position.Square) (board.Piece, error) {
	passedSq := to - position.MaxComponentScalar
	if gs.turn == board.ColorBlack {
		passedSq = to + position.MaxComponentScalar
	}
	captured := gs.board.Clear(passedSq)
	gs.board.MovePiece(from, to)
	if gs.board.IsInCheck(gs.turn) {
		gs.board.UnmovePiece(from, to, board.PieceNone)
		if captured != board.PieceNone {
			gs.board.Set(passedSq, captured)
		}
		return board.PieceNone, ErrKingInCheck
	}
	return captured, nil
}

// commit updates the derived state after a move has been applied to the
// board: en passant window, clocks, castling rights and turn.
func (gs *GameState) commit(piece board.Piece, from, to position.Square, captured board.Piece) {
	gs.enPassant = noEnPassant
	if piece.Figure() == board.FigurePawn {
		switch {
		case gs.turn == board.ColorWhite && from.Rank() == position.Rank2 && to.Rank() == position.Rank4:
			gs.enPassant = from + position.MaxComponentScalar
		case gs.turn == board.ColorBlack && from.Rank() == position.Rank7 && to.Rank() == position.Rank5:
			gs.enPassant = from - position.MaxComponentScalar
		}
	}

	if captured != board.PieceNone || piece.Figure() == board.FigurePawn {
		gs.halfMoveClock = 0
	} else {
		gs.halfMoveClock++
	}

	switch piece.Figure() {
	case board.FigureKing:
		gs.castleRights.RemoveAll(gs.turn)
	case board.FigureRook:
		for _, w := range []Wing{WingKing, WingQueen} {
			if from == castlePos[gs.turn][w].rookFrom {
				gs.castleRights.Remove(gs.turn, w)
			}
		}
	}
	if captured != board.PieceNone && captured.Figure() == board.FigureRook {
		opp := gs.turn.Opposite()
		for _, w := range []Wing{WingKing, WingQueen} {
			if to == castlePos[opp][w].rookFrom {
				gs.castleRights.Remove(opp, w)
			}
		}
	}

	if gs.turn == board.ColorBlack {
		gs.fullMoveClock++
	}
	gs.turn = gs.turn.Opposite()
}

func promotionRank(c board.Color) position.Rank {
	if c == board.ColorWhite {
		return position.Rank8
	}
	return position.Rank1
}
