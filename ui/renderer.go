package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-grid/game"
	"snake-grid/game/manager"
	"snake-grid/game/types"
)

const (
	maxScores     = 50 // Maximum number of rounds to show in graph
	borderPadding = 10
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
	started         time.Time
}

func NewRenderer() *Renderer {
	r := &Renderer{started: time.Now()}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.layoutPanels()
}

// layoutPanels splits the window into the board area and a stats panel
// on the right.
func (r *Renderer) layoutPanels() {
	r.statsPanel = r.screenWidth / 4
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight
	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

// layoutGrid fits a rows x cols board into the game area and centers it
func (r *Renderer) layoutGrid(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		r.cellSize, r.totalGridWidth, r.totalGridHeight = 0, 0, 0
		return
	}
	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)
	r.cellSize = min(availableWidth/int32(cols), availableHeight/int32(rows))
	if r.cellSize < 1 {
		r.cellSize = 1
	}
	r.totalGridWidth = r.cellSize * int32(cols)
	r.totalGridHeight = r.cellSize * int32(rows)
	r.offsetX = (r.gameWidth - r.totalGridWidth) / 2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// cellRect is the pixel origin of a board cell
func (r *Renderer) cellRect(p types.Position) (x, y int32) {
	return r.offsetX + int32(p.Col)*r.cellSize, r.offsetY + int32(p.Row)*r.cellSize
}

func (r *Renderer) Draw(v game.View, scores *manager.ScoreManager) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/40, r.statsPanel/12)
	lineHeight := fontSize + fontSize/2

	rows := len(v.Cells)
	cols := 0
	if rows > 0 {
		cols = len(v.Cells[0])
	}
	r.layoutGrid(rows, cols)

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	for row, line := range v.Cells {
		for col, cell := range line {
			x, y := r.cellRect(types.Position{Row: row, Col: col})
			switch cell {
			case types.Snake:
				rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Green)
			case types.Fruit:
				rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Red)
			default:
				rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Black)
			}
			rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.Color{R: 40, G: 40, B: 40, A: 255})
		}
	}
	if rows > 0 {
		r.drawHead(v.Head, v.Direction)
	}

	r.drawStatsPanel(v, scores, fontSize, lineHeight)

	if v.State == types.Over && v.HasResult {
		r.drawGameOver(v.Result, fontSize*2)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawHead(head types.Position, dir types.Direction) {
	headX, headY := r.cellRect(head)
	rl.DrawRectangle(headX, headY, r.cellSize, r.cellSize, rl.Lime)

	halfCell := r.cellSize / 2
	fx, fy := float32(headX), float32(headY)
	size, half := float32(r.cellSize), float32(halfCell)
	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: fx + size, Y: fy + half},
			rl.Vector2{X: fx + half, Y: fy},
			rl.Vector2{X: fx + half, Y: fy + size},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: fx, Y: fy + half},
			rl.Vector2{X: fx + half, Y: fy + size},
			rl.Vector2{X: fx + half, Y: fy},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: fx + half, Y: fy + size},
			rl.Vector2{X: fx + size, Y: fy + half},
			rl.Vector2{X: fx, Y: fy + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: fx + half, Y: fy},
			rl.Vector2{X: fx, Y: fy + half},
			rl.Vector2{X: fx + size, Y: fy + half},
			rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(v game.View, scores *manager.ScoreManager, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	for _, line := range StatusLines(v) {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	statsY += lineHeight / 2
	rl.DrawText(fmt.Sprintf("Rounds: %d", scores.RoundsPlayed()), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Average: %.1f", scores.AverageScore()), statsX, statsY, fontSize, rl.White)

	r.drawPerformanceGraph(scores, statsX, fontSize)
}

// drawPerformanceGraph plots the final score of the recent rounds
func (r *Renderer) drawPerformanceGraph(scores *manager.ScoreManager, statsX, fontSize int32) {
	graphX := statsX
	graphHeight := r.graphHeight
	graphY := r.screenHeight - graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	duration := time.Since(r.started)
	timeText := fmt.Sprintf("%02d:%02d:%02d", int(duration.Hours()), int(duration.Minutes())%60, int(duration.Seconds())%60)
	rl.DrawText(timeText, graphX, r.screenHeight-fontSize-5, fontSize, rl.White)

	points := GraphPoints(scores.Rounds(), maxScores, r.graphWidth, graphHeight)
	for i := 1; i < len(points); i++ {
		rl.DrawLine(graphX+points[i-1].X, graphY+points[i-1].Y, graphX+points[i].X, graphY+points[i].Y, rl.Green)
	}

	if len(points) > 1 {
		maxScore := max(1, scores.HighScore())
		avgY := graphY + graphHeight - int32(float64(graphHeight)*scores.AverageScore()/float64(maxScore))
		for x := graphX; x < graphX+r.graphWidth; x += 5 {
			rl.DrawLine(x, avgY, x+2, avgY, rl.Yellow)
		}
	}
}

func (r *Renderer) drawGameOver(res game.Result, fontSize int32) {
	text := GameOverText(res)
	textWidth := rl.MeasureText(text, fontSize)
	boxW := textWidth + fontSize*2
	boxH := fontSize * 4
	boxX := r.offsetX + (r.totalGridWidth-boxW)/2
	boxY := r.offsetY + (r.totalGridHeight-boxH)/2

	rl.DrawRectangle(boxX, boxY, boxW, boxH, rl.Color{R: 0, G: 0, B: 0, A: 200})
	rl.DrawRectangleLines(boxX, boxY, boxW, boxH, rl.Red)
	rl.DrawText(text, boxX+fontSize, boxY+fontSize/2, fontSize, rl.Red)

	hint := "press R to play again"
	hintSize := fontSize / 2
	rl.DrawText(hint, boxX+(boxW-rl.MeasureText(hint, hintSize))/2, boxY+fontSize*2+fontSize/2, hintSize, rl.White)
}

// StatusLines are the text rows at the top of the stats panel
func StatusLines(v game.View) []string {
	return []string{
		fmt.Sprintf("State: %s", v.State),
		fmt.Sprintf("Score: %d", v.Score),
		fmt.Sprintf("Best: %d", v.HighScore),
		fmt.Sprintf("Steps: %d", v.Steps),
	}
}

func GameOverText(res game.Result) string {
	if res.Full {
		return fmt.Sprintf("Board full! Score %d", res.Score)
	}
	return fmt.Sprintf("Game Over! Score %d", res.Score)
}

// GraphPoint is a vertex of the score graph relative to its top-left corner
type GraphPoint struct {
	X, Y int32
}

// GraphPoints scales the last limit rounds into a width x height box,
// higher scores closer to the top.
func GraphPoints(rounds []manager.RoundRecord, limit int, width, height int32) []GraphPoint {
	if len(rounds) > limit {
		rounds = rounds[len(rounds)-limit:]
	}
	maxScore := 1
	for _, round := range rounds {
		if round.Score > maxScore {
			maxScore = round.Score
		}
	}
	points := make([]GraphPoint, len(rounds))
	for i, round := range rounds {
		points[i] = GraphPoint{
			X: int32(float32(width) * float32(i) / float32(limit)),
			Y: height - int32(float32(height)*float32(round.Score)/float32(maxScore)),
		}
	}
	return points
}
