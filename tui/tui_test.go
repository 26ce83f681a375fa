package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-grid/game"
	"snake-grid/game/types"
)

func newController(t *testing.T) *game.Controller {
	t.Helper()
	e, err := game.NewEngine(game.Config{Rows: 20, Cols: 20, SnakeLength: 4, Heading: types.Left, Seed: 1})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	c := game.NewController(e, time.Hour, time.Hour)
	t.Cleanup(c.Close)
	return c
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		key  string
		quit bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "ArrowUp", false},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), "ArrowDown", false},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "ArrowLeft", false},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), "ArrowRight", false},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space", false},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "w", false},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), "r", false},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), "", true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "", true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "", true},
	}
	for _, tt := range tests {
		key, quit := KeyName(tt.ev)
		if key != tt.key || quit != tt.quit {
			t.Errorf("%s: got (%q, %v), want (%q, %v)", tt.ev.Name(), key, quit, tt.key, tt.quit)
		}
	}
}

func TestDrawBoard(t *testing.T) {
	screen := newScreen(t)
	v := newController(t).Snapshot()

	Draw(screen, v)

	if r, _, _, _ := screen.GetContent(0, 0); r != '┌' {
		t.Errorf("corner = %q", r)
	}
	if r, _, _, _ := screen.GetContent(1+v.Head.Col*2, 1+v.Head.Row); r != '█' {
		t.Errorf("head cell = %q", r)
	}
	if !v.HasFruit {
		t.Fatal("no fruit on a fresh board")
	}
	if r, _, _, _ := screen.GetContent(1+v.Fruit.Col*2, 1+v.Fruit.Row); r != '●' {
		t.Errorf("fruit cell = %q", r)
	}

	var status strings.Builder
	for x := 0; x < 10; x++ {
		r, _, _, _ := screen.GetContent(x, len(v.Cells)+2)
		status.WriteRune(r)
	}
	if !strings.HasPrefix(status.String(), "idle") {
		t.Errorf("status line = %q", status.String())
	}
}

func TestStatusAndGameOverText(t *testing.T) {
	v := game.View{State: types.Paused, Score: 7, HighScore: 9}
	if got := StatusLine(v); !strings.Contains(got, "score 7") || !strings.Contains(got, "best 9") {
		t.Errorf("StatusLine = %q", got)
	}
	if got := GameOverText(game.Result{Score: 12}); !strings.Contains(got, "final score 12") {
		t.Errorf("GameOverText = %q", got)
	}
	if got := GameOverText(game.Result{Score: 400, Full: true}); !strings.Contains(got, "Board full") {
		t.Errorf("GameOverText full = %q", got)
	}
}

func TestRunOnHandlesKeysUntilQuit(t *testing.T) {
	screen := newScreen(t)
	c := newController(t)

	screen.PostEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

	finished := make(chan struct{})
	go func() {
		RunOn(screen, c)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("RunOn did not return after q")
	}
	v := c.Snapshot()
	if v.State != types.Running {
		t.Errorf("state = %v, want running", v.State)
	}
	if v.Direction != types.Up {
		t.Errorf("direction = %v, want up", v.Direction)
	}
}
