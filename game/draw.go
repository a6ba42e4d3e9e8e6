package game

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/escobar-west/chessapp/board"
	"github.com/escobar-west/chessapp/position"
)

var (
	lightCell = color.New(color.FgBlack, color.BgHiWhite)
	darkCell  = color.New(color.FgBlack, color.BgHiGreen)
	boardEdge = color.New(color.Bold)
)

// Draw renders the position as a checkered terminal board with Unicode
// piece glyphs, rank 8 on top.
func (gs *GameState) Draw() string {
	builder := strings.Builder{}
	for r := position.Rank8; r >= position.Rank1; r-- {
		_, _ = builder.WriteString(boardEdge.Sprintf(" %s ", r.Notation()))
		for f := position.FileA; f <= position.FileH; f++ {
			sq := position.Square(int8(r)*position.MaxComponentScalar + int8(f))
			sym := " "
			if p := gs.board.Get(sq); p != board.PieceNone {
				sym = p.SymbolUnicode()
			}
			cell := darkCell
			if (int8(f)+int8(r))%2 != 0 {
				cell = lightCell
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for f := position.FileA; f <= position.FileH; f++ {
		_, _ = builder.WriteString(boardEdge.Sprintf(" %s ", f.Notation()))
	}
	_, _ = builder.WriteString(fmt.Sprintf("\n %s to move\n", gs.turn))
	return builder.String()
}
