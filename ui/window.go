// Package ui runs the game in a raylib window.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-grid/game"
)

const (
	windowWidth  = 1024
	windowHeight = 720
	windowTitle  = "Snake"
)

// keyBindings maps raylib keys to controller key names
var keyBindings = []struct {
	key  int32
	name string
}{
	{rl.KeyUp, "ArrowUp"},
	{rl.KeyDown, "ArrowDown"},
	{rl.KeyLeft, "ArrowLeft"},
	{rl.KeyRight, "ArrowRight"},
	{rl.KeyW, "w"},
	{rl.KeyA, "a"},
	{rl.KeyS, "s"},
	{rl.KeyD, "d"},
	{rl.KeySpace, "space"},
	{rl.KeyR, "r"},
}

// Run opens a window and plays until it is closed or Q is pressed
func Run(c *game.Controller) error {
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyEscape)

	renderer := NewRenderer()
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		for _, b := range keyBindings {
			if rl.IsKeyPressed(b.key) {
				c.HandleKey(b.name)
			}
		}
		renderer.Draw(c.Snapshot(), c.Scores())
	}
	return nil
}
