package game

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/escobar-west/chessapp/internal/testutil"
	"github.com/escobar-west/chessapp/position"
)

func TestDraw(t *testing.T) {
	color.NoColor = true

	gs := mustGameState(t, DefaultStartingPositionFEN)
	out := gs.Draw()

	if !strings.Contains(out, "White to move") {
		t.Error("output should name the side to move")
	}
	for _, glyph := range []string{"♔", "♕", "♚", "♛", "♙", "♟"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("output is missing piece glyph %q", glyph)
		}
	}
	for _, label := range []string{"1", "8", "a", "h"} {
		if !strings.Contains(out, label) {
			t.Errorf("output is missing edge label %q", label)
		}
	}
	if got := strings.Count(out, "\n"); got != 10 {
		t.Errorf("unexpected line count: got=%d want=10", got)
	}

	_, err := gs.MakeMove(position.E2, position.E4)
	testutil.AssertNoError(t, err)
	if !strings.Contains(gs.Draw(), "Black to move") {
		t.Error("output should follow the turn")
	}
}
