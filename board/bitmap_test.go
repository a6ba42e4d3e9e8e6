package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/escobar-west/chessapp/position"
)

func squareSet(sqs ...position.Square) Bitmap {
	var bm Bitmap
	for _, sq := range sqs {
		bm.Set(sq)
	}
	return bm
}

func TestKingMoves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		from position.Square
		want Bitmap
	}{
		{
			name: "corner a1",
			from: position.A1,
			want: squareSet(position.B1, position.A2, position.B2),
		},
		{
			name: "corner h8",
			from: position.H8,
			want: squareSet(position.G8, position.G7, position.H7),
		},
		{
			name: "near corner g7",
			from: position.G7,
			want: squareSet(
				position.F6, position.F7, position.F8,
				position.G6, position.G8,
				position.H6, position.H7, position.H8,
			),
		},
		{
			name: "center e4",
			from: position.E4,
			want: squareSet(
				position.D3, position.D4, position.D5,
				position.E3, position.E5,
				position.F3, position.F4, position.F5,
			),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := KingMoves(tt.from); got != tt.want {
				t.Errorf("unexpected mask:\ngot:\n%s\nwant:\n%s", got.Dump(), tt.want.Dump())
			}
		})
	}
}

func TestKnightMoves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		from position.Square
		want Bitmap
	}{
		{
			name: "corner a1",
			from: position.A1,
			want: squareSet(position.B3, position.C2),
		},
		{
			name: "f6",
			from: position.F6,
			want: squareSet(
				position.D5, position.D7,
				position.E4, position.E8,
				position.G4, position.G8,
				position.H5, position.H7,
			),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := KnightMoves(tt.from); got != tt.want {
				t.Errorf("unexpected mask:\ngot:\n%s\nwant:\n%s", got.Dump(), tt.want.Dump())
			}
		})
	}
}

func TestPawnAttacks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		from  position.Square
		color Color
		want  Bitmap
	}{
		{
			name:  "white a1",
			from:  position.A1,
			color: ColorWhite,
			want:  squareSet(position.B2),
		},
		{
			name:  "white h2",
			from:  position.H2,
			color: ColorWhite,
			want:  squareSet(position.G3),
		},
		{
			name:  "white e4",
			from:  position.E4,
			color: ColorWhite,
			want:  squareSet(position.D5, position.F5),
		},
		{
			name:  "black b8",
			from:  position.B8,
			color: ColorBlack,
			want:  squareSet(position.A7, position.C7),
		},
		{
			name:  "black a5",
			from:  position.A5,
			color: ColorBlack,
			want:  squareSet(position.B4),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PawnAttacks(tt.from, tt.color); got != tt.want {
				t.Errorf("unexpected mask:\ngot:\n%s\nwant:\n%s", got.Dump(), tt.want.Dump())
			}
		})
	}
}

// Attack patterns generated near a board edge must never wrap onto the
// opposite edge.
func TestMaskEdgeWraparound(t *testing.T) {
	t.Parallel()
	for r := position.Rank1; r <= position.Rank8; r++ {
		onA, err := position.NewSquare(position.FileA, r)
		if err != nil {
			t.Fatal(err)
		}
		onH, err := position.NewSquare(position.FileH, r)
		if err != nil {
			t.Fatal(err)
		}

		farFromA := FileMask(position.FileH)
		if KingMoves(onA)&farFromA != 0 {
			t.Errorf("king mask from %s wraps onto file h", onA)
		}
		if KnightMoves(onA)&(FileMask(position.FileG)|FileMask(position.FileH)) != 0 {
			t.Errorf("knight mask from %s wraps onto files g/h", onA)
		}
		if PawnAttacks(onA, ColorWhite)&farFromA != 0 || PawnAttacks(onA, ColorBlack)&farFromA != 0 {
			t.Errorf("pawn mask from %s wraps onto file h", onA)
		}

		farFromH := FileMask(position.FileA)
		if KingMoves(onH)&farFromH != 0 {
			t.Errorf("king mask from %s wraps onto file a", onH)
		}
		if KnightMoves(onH)&(FileMask(position.FileA)|FileMask(position.FileB)) != 0 {
			t.Errorf("knight mask from %s wraps onto files a/b", onH)
		}
		if PawnAttacks(onH, ColorWhite)&farFromH != 0 || PawnAttacks(onH, ColorBlack)&farFromH != 0 {
			t.Errorf("pawn mask from %s wraps onto file a", onH)
		}
	}

	// top and bottom edges fall off the board entirely
	if PawnAttacks(position.E8, ColorWhite) != 0 {
		t.Error("white pawn attack mask from rank 8 should be empty")
	}
	if PawnAttacks(position.E1, ColorBlack) != 0 {
		t.Error("black pawn attack mask from rank 1 should be empty")
	}
}

func TestStraightRay(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		from, to position.Square
		want     Bitmap
	}{
		{
			name: "file a1 to a8",
			from: position.A1,
			to:   position.A8,
			want: squareSet(
				position.A1, position.A2, position.A3, position.A4,
				position.A5, position.A6, position.A7,
			),
		},
		{
			name: "rank e4 to h4",
			from: position.E4,
			to:   position.H4,
			want: squareSet(position.E4, position.F4, position.G4),
		},
		{
			name: "adjacent e4 to e5",
			from: position.E4,
			to:   position.E5,
			want: squareSet(position.E4),
		},
		{
			name: "diagonal is not straight",
			from: position.A1,
			to:   position.H8,
			want: 0,
		},
		{
			name: "unaligned",
			from: position.E4,
			to:   position.D6,
			want: 0,
		},
		{
			name: "same square",
			from: position.E4,
			to:   position.E4,
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StraightRay(tt.from, tt.to); got != tt.want {
				t.Errorf("unexpected ray:\ngot:\n%s\nwant:\n%s", got.Dump(), tt.want.Dump())
			}
		})
	}
}

func TestDiagonalRay(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		from, to position.Square
		want     Bitmap
	}{
		{
			name: "long diagonal a1 to h8",
			from: position.A1,
			to:   position.H8,
			want: squareSet(
				position.A1, position.B2, position.C3, position.D4,
				position.E5, position.F6, position.G7,
			),
		},
		{
			name: "anti-diagonal e4 to b7",
			from: position.E4,
			to:   position.B7,
			want: squareSet(position.E4, position.D5, position.C6),
		},
		{
			name: "down e4 to b1",
			from: position.E4,
			to:   position.B1,
			want: squareSet(position.E4, position.D3, position.C2),
		},
		{
			name: "file is not diagonal",
			from: position.A1,
			to:   position.A8,
			want: 0,
		},
		{
			name: "unaligned",
			from: position.E4,
			to:   position.D6,
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DiagonalRay(tt.from, tt.to); got != tt.want {
				t.Errorf("unexpected ray:\ngot:\n%s\nwant:\n%s", got.Dump(), tt.want.Dump())
			}
		})
	}
}

func TestBitmapIter(t *testing.T) {
	t.Parallel()
	bm := squareSet(position.H8, position.A3, position.B1, position.E4)

	var got []position.Square
	for it := bm.Iter(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, sq)
	}

	want := []position.Square{position.B1, position.A3, position.E4, position.H8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected iteration order (-want +got):\n%s", diff)
	}

	// the source bitmap is consumed by value and restartable
	it := bm.Iter()
	if sq, ok := it.Next(); !ok || sq != position.B1 {
		t.Errorf("restarted iterator should yield B1 again, got=%v ok=%v", sq, ok)
	}
}

func TestBitmapOps(t *testing.T) {
	t.Parallel()
	bm := squareSet(position.A1, position.H8)
	if got := bm.BitCount(); got != 2 {
		t.Errorf("unexpected count: got=%d want=2", got)
	}
	if !bm.Contains(position.A1) || !bm.Contains(position.H8) {
		t.Error("expected membership for a1 and h8")
	}
	if bm.Contains(position.E4) {
		t.Error("unexpected membership for e4")
	}
	if got := bm.LS1B(); got != position.A1 {
		t.Errorf("unexpected LS1B: got=%v want=a1", got)
	}

	bm.Unset(position.A1)
	if bm.Contains(position.A1) {
		t.Error("unset square still present")
	}
	if got := Union(squareSet(position.A1), squareSet(position.B1)); got != squareSet(position.A1, position.B1) {
		t.Errorf("unexpected union: got=%v", got)
	}
	if got := Intersect(squareSet(position.A1, position.B1), squareSet(position.B1, position.C1)); got != squareSet(position.B1) {
		t.Errorf("unexpected intersection: got=%v", got)
	}
}
