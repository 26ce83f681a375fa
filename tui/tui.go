// Package tui runs the game in a terminal with tcell.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-grid/game"
	"snake-grid/game/types"
)

const frameInterval = 33 * time.Millisecond

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSnake  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleFruit  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBox    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
)

// Run opens the terminal and plays until the user quits
func Run(c *game.Controller) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	RunOn(screen, c)
	return nil
}

// RunOn drives an initialized screen until q, Esc or Ctrl-C. The caller
// owns the screen.
func RunOn(screen tcell.Screen, c *game.Controller) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	Draw(screen, c.Snapshot())
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				key, quit := KeyName(ev)
				if quit {
					return
				}
				if key != "" {
					c.HandleKey(key)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			Draw(screen, c.Snapshot())
		case <-ticker.C:
			Draw(screen, c.Snapshot())
		}
	}
}

// KeyName translates a terminal key into a controller key name. quit is
// set for q, Esc and Ctrl-C.
func KeyName(ev *tcell.EventKey) (key string, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "", true
	case tcell.KeyUp:
		return "ArrowUp", false
	case tcell.KeyDown:
		return "ArrowDown", false
	case tcell.KeyLeft:
		return "ArrowLeft", false
	case tcell.KeyRight:
		return "ArrowRight", false
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			return "", true
		case ' ':
			return "space", false
		default:
			return string(r), false
		}
	}
	return "", false
}

// Draw paints one frame. Each board cell is two terminal columns wide so
// the grid looks square.
func Draw(screen tcell.Screen, v game.View) {
	screen.Clear()

	rows := len(v.Cells)
	cols := 0
	if rows > 0 {
		cols = len(v.Cells[0])
	}
	width := cols*2 + 2

	for x := 0; x < width; x++ {
		screen.SetContent(x, 0, '─', nil, styleBorder)
		screen.SetContent(x, rows+1, '─', nil, styleBorder)
	}
	for y := 0; y < rows+2; y++ {
		screen.SetContent(0, y, '│', nil, styleBorder)
		screen.SetContent(width-1, y, '│', nil, styleBorder)
	}
	screen.SetContent(0, 0, '┌', nil, styleBorder)
	screen.SetContent(width-1, 0, '┐', nil, styleBorder)
	screen.SetContent(0, rows+1, '└', nil, styleBorder)
	screen.SetContent(width-1, rows+1, '┘', nil, styleBorder)

	for r, line := range v.Cells {
		for col, cell := range line {
			x, y := 1+col*2, 1+r
			switch {
			case cell == types.Snake && r == v.Head.Row && col == v.Head.Col:
				screen.SetContent(x, y, '█', nil, styleHead)
				screen.SetContent(x+1, y, '█', nil, styleHead)
			case cell == types.Snake:
				screen.SetContent(x, y, '█', nil, styleSnake)
				screen.SetContent(x+1, y, '█', nil, styleSnake)
			case cell == types.Fruit:
				screen.SetContent(x, y, '●', nil, styleFruit)
			}
		}
	}

	drawText(screen, 0, rows+2, styleStatus, StatusLine(v))

	if v.State == types.Over && v.HasResult {
		drawBox(screen, width, rows, GameOverText(v.Result))
	}
	screen.Show()
}

// StatusLine describes the round for the line under the board
func StatusLine(v game.View) string {
	var hint string
	switch v.State {
	case types.Idle:
		hint = "space or ← to start"
	case types.Paused:
		hint = "paused, space to resume"
	case types.Running:
		hint = "space to pause"
	case types.Over:
		hint = "r to play again"
	}
	return fmt.Sprintf("%s  score %d  best %d  %s", v.State, v.Score, v.HighScore, hint)
}

func GameOverText(r game.Result) string {
	if r.Full {
		return fmt.Sprintf(" Board full! Final score %d ", r.Score)
	}
	return fmt.Sprintf(" Game over: final score %d ", r.Score)
}

func drawBox(screen tcell.Screen, width, rows int, text string) {
	w := len([]rune(text)) + 2
	x := (width - w) / 2
	if x < 0 {
		x = 0
	}
	y := rows/2 + 1
	for dy := -1; dy <= 1; dy++ {
		for dx := 0; dx < w; dx++ {
			screen.SetContent(x+dx, y+dy, ' ', nil, styleBox)
		}
	}
	drawText(screen, x+1, y, styleBox, text)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
