package ui

import (
	"strings"
	"testing"
	"time"

	"snake-grid/game"
	"snake-grid/game/manager"
	"snake-grid/game/types"
)

func TestLayoutGridCentersBoard(t *testing.T) {
	r := &Renderer{screenWidth: 1000, screenHeight: 600}
	r.layoutPanels()
	r.layoutGrid(20, 20)

	if r.cellSize != 29 {
		t.Fatalf("cellSize = %d, want 29", r.cellSize)
	}
	if r.totalGridWidth != 580 || r.totalGridHeight != 580 {
		t.Errorf("grid %dx%d", r.totalGridWidth, r.totalGridHeight)
	}
	if r.offsetX != (750-580)/2 || r.offsetY != 10 {
		t.Errorf("offset (%d,%d)", r.offsetX, r.offsetY)
	}
	x, y := r.cellRect(types.Position{Row: 1, Col: 2})
	if x != r.offsetX+58 || y != r.offsetY+29 {
		t.Errorf("cellRect = (%d,%d)", x, y)
	}
}

func TestLayoutGridTinyWindow(t *testing.T) {
	r := &Renderer{screenWidth: 40, screenHeight: 30}
	r.layoutPanels()
	r.layoutGrid(20, 20)
	if r.cellSize != 1 {
		t.Errorf("cellSize = %d, want floor of 1", r.cellSize)
	}

	r.layoutGrid(0, 0)
	if r.cellSize != 0 || r.totalGridWidth != 0 {
		t.Errorf("empty board should take no space")
	}
}

func TestGraphPoints(t *testing.T) {
	sm := manager.NewScoreManager()
	now := time.Now()
	for _, s := range []int{4, 8, 6} {
		sm.Record(s, now, now)
	}

	points := GraphPoints(sm.Rounds(), 4, 100, 80)
	want := []GraphPoint{{0, 40}, {25, 0}, {50, 20}}
	if len(points) != len(want) {
		t.Fatalf("got %d points", len(points))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, points[i], want[i])
		}
	}

	if got := GraphPoints(sm.Rounds(), 2, 100, 80); len(got) != 2 || got[0].Y != 0 {
		t.Errorf("limited points = %v", got)
	}
}

func TestTexts(t *testing.T) {
	lines := StatusLines(game.View{State: types.Running, Score: 5, HighScore: 11, Steps: 3})
	joined := strings.Join(lines, "|")
	for _, want := range []string{"running", "Score: 5", "Best: 11", "Steps: 3"} {
		if !strings.Contains(joined, want) {
			t.Errorf("status %q missing %q", joined, want)
		}
	}
	if got := GameOverText(game.Result{Score: 9}); got != "Game Over! Score 9" {
		t.Errorf("GameOverText = %q", got)
	}
}
