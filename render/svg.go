// Package render draws positions as SVG images for consumers that want a
// snapshot of the board without a live UI.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/escobar-west/chessapp/game"
	"github.com/escobar-west/chessapp/position"
)

const (
	cellSize  = 64
	boardSize = cellSize * position.MaxComponentScalar

	lightStyle = "fill:rgb(240,217,181)"
	darkStyle  = "fill:rgb(181,136,99)"
	pieceStyle = "font-size:48px;text-anchor:middle;dominant-baseline:central"
)

// SVG writes the position as an 8x8 checkered board with Unicode piece
// glyphs, rank 8 on top, to w.
func SVG(w io.Writer, gs *game.GameState) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)
	for r := position.Rank1; r <= position.Rank8; r++ {
		for f := position.FileA; f <= position.FileH; f++ {
			style := darkStyle
			if (int8(f)+int8(r))%2 != 0 {
				style = lightStyle
			}
			canvas.Rect(cellX(f), cellY(r), cellSize, cellSize, style)
		}
	}
	for it := gs.Iter(); ; {
		sq, p, ok := it.Next()
		if !ok {
			break
		}
		canvas.Text(
			cellX(sq.File())+cellSize/2,
			cellY(sq.Rank())+cellSize/2,
			p.SymbolUnicode(),
			pieceStyle,
		)
	}
	canvas.End()
}

func cellX(f position.File) int {
	return int(f) * cellSize
}

// cellY flips the rank axis: SVG y grows downward, ranks grow upward.
func cellY(r position.Rank) int {
	return (position.MaxComponentScalar - 1 - int(r)) * cellSize
}
