package board

import (
	"github.com/escobar-west/chessapp/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalSquares
)

var (
	maskCol = [Width]Bitmap{
		position.FileA: 0x_01_01_01_01_01_01_01_01,
		position.FileB: 0x_02_02_02_02_02_02_02_02,
		position.FileC: 0x_04_04_04_04_04_04_04_04,
		position.FileD: 0x_08_08_08_08_08_08_08_08,
		position.FileE: 0x_10_10_10_10_10_10_10_10,
		position.FileF: 0x_20_20_20_20_20_20_20_20,
		position.FileG: 0x_40_40_40_40_40_40_40_40,
		position.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]Bitmap{
		position.Rank1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
	maskCell        [TotalCells]Bitmap
	maskDia         [TotalCells]Bitmap
	maskADia        [TotalCells]Bitmap
	maskKnight      [TotalCells]Bitmap
	maskKing        [TotalCells]Bitmap
	maskPawnAttacks [2][TotalCells]Bitmap

	maskStraightRay [TotalCells][TotalCells]Bitmap
	maskDiagonalRay [TotalCells][TotalCells]Bitmap
)

func init() {
	initMask()
	initRays()
}

func initMask() {
	for pos := 0; pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}

	for pos := position.Square(0); pos < TotalCells; pos++ {
		mask := Bitmap(0)
		x, y := int8(pos.File()), int8(pos.Rank())
		x, y = x-min(x, y), y-min(x, y)
		for x < Width && y < Height {
			mask |= Bitmap(1) << (y*Width + x)
			x++
			y++
		}
		maskDia[pos] = mask
	}

	for pos := position.Square(0); pos < TotalCells; pos++ {
		mask := Bitmap(0)
		x, y := int8(pos.File()), int8(pos.Rank())
		x, y = x-min(x, Height-y-1), y+min(x, Height-y-1)
		for x < Width && y >= 0 {
			mask |= Bitmap(1) << (y*Width + x)
			x++
			y--
		}
		maskADia[pos] = mask
	}

	for pos := 0; pos < TotalCells; pos++ {
		cell := maskCell[pos]
		mask := Bitmap(0)
		mask |= ShiftN(ShiftN(ShiftE(cell &^ maskRow[position.Rank8] &^ maskRow[position.Rank7] &^ maskCol[position.FileH])))
		mask |= ShiftN(ShiftN(ShiftW(cell &^ maskRow[position.Rank8] &^ maskRow[position.Rank7] &^ maskCol[position.FileA])))
		mask |= ShiftS(ShiftS(ShiftE(cell &^ maskRow[position.Rank1] &^ maskRow[position.Rank2] &^ maskCol[position.FileH])))
		mask |= ShiftS(ShiftS(ShiftW(cell &^ maskRow[position.Rank1] &^ maskRow[position.Rank2] &^ maskCol[position.FileA])))
		mask |= ShiftE(ShiftE(ShiftN(cell &^ maskCol[position.FileH] &^ maskCol[position.FileG] &^ maskRow[position.Rank8])))
		mask |= ShiftE(ShiftE(ShiftS(cell &^ maskCol[position.FileH] &^ maskCol[position.FileG] &^ maskRow[position.Rank1])))
		mask |= ShiftW(ShiftW(ShiftN(cell &^ maskCol[position.FileA] &^ maskCol[position.FileB] &^ maskRow[position.Rank8])))
		mask |= ShiftW(ShiftW(ShiftS(cell &^ maskCol[position.FileA] &^ maskCol[position.FileB] &^ maskRow[position.Rank1])))
		maskKnight[pos] = mask
	}

	for pos := 0; pos < TotalCells; pos++ {
		cell := maskCell[pos]
		mask := Bitmap(0)
		mask |= ShiftN(cell &^ maskRow[position.Rank8])
		mask |= ShiftNE(cell &^ maskRow[position.Rank8] &^ maskCol[position.FileH])
		mask |= ShiftE(cell &^ maskCol[position.FileH])
		mask |= ShiftSE(cell &^ maskRow[position.Rank1] &^ maskCol[position.FileH])
		mask |= ShiftS(cell &^ maskRow[position.Rank1])
		mask |= ShiftSW(cell &^ maskRow[position.Rank1] &^ maskCol[position.FileA])
		mask |= ShiftW(cell &^ maskCol[position.FileA])
		mask |= ShiftNW(cell &^ maskRow[position.Rank8] &^ maskCol[position.FileA])
		maskKing[pos] = mask
	}

	for pos := 0; pos < TotalCells; pos++ {
		cell := maskCell[pos]
		maskPawnAttacks[ColorWhite][pos] = ShiftNW(cell&^maskCol[position.FileA]) | ShiftNE(cell&^maskCol[position.FileH])
		maskPawnAttacks[ColorBlack][pos] = ShiftSW(cell&^maskCol[position.FileA]) | ShiftSE(cell&^maskCol[position.FileH])
	}
}

var (
	straightDirections = [4][2]int8{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirections = [4][2]int8{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func initRays() {
	walk := func(table *[TotalCells][TotalCells]Bitmap, dirs [4][2]int8) {
		for from := position.Square(0); from < TotalCells; from++ {
			for _, d := range dirs {
				between := Bitmap(0)
				x, y := int8(from.File())+d[0], int8(from.Rank())+d[1]
				for 0 <= x && x < Width && 0 <= y && y < Height {
					to := position.Square(y*Width + x)
					table[from][to] = maskCell[from] | between
					between |= maskCell[to]
					x += d[0]
					y += d[1]
				}
			}
		}
	}
	walk(&maskStraightRay, straightDirections)
	walk(&maskDiagonalRay, diagonalDirections)
}
