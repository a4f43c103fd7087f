package ui

import (
	"fmt"

	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores     = 200 // Maximum number of scores to show in graph
	borderPadding = 10
	cellSize      = 20 // Pixels per grid cell at the default window size
	statsWidth    = 180
)

// Body and head colors. The player is green, AI snakes cycle through the
// rest in ID order.
var (
	playerColors = [2]rl.Color{{R: 0, G: 255, B: 0, A: 255}, {R: 0, G: 200, B: 0, A: 255}}
	aiColors     = [][2]rl.Color{
		{{R: 0, G: 0, B: 255, A: 255}, {R: 0, G: 0, B: 200, A: 255}},
		{{R: 255, G: 255, B: 0, A: 255}, {R: 200, G: 200, B: 0, A: 255}},
		{{R: 255, G: 0, B: 255, A: 255}, {R: 200, G: 0, B: 200, A: 255}},
	}
)

// WindowSize returns the window dimensions for an n by n grid
func WindowSize(n int) (int32, int32) {
	side := int32(n*cellSize) + borderPadding*2
	return side + statsWidth, side
}

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gameWidth    int32
	statsPanel   int32
	gridPixels   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.statsPanel = min(statsWidth, r.screenWidth/3)
	r.gameWidth = r.screenWidth - r.statsPanel
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// AgentColors returns body and head colors for an agent
func AgentColors(agent game.AgentView) (rl.Color, rl.Color) {
	if agent.Role == types.RolePlayer {
		return playerColors[0], playerColors[1]
	}
	c := aiColors[(agent.ID-1+len(aiColors))%len(aiColors)]
	return c[0], c[1]
}

// DrawMenu shows the mode picker
func (r *Renderer) DrawMenu(highScore int) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := r.screenHeight / 18
	lines := []struct {
		text  string
		size  int32
		color rl.Color
		y     int32
	}{
		{"Snake Game", fontSize * 2, rl.White, r.screenHeight / 5},
		{"Choose Game Mode", fontSize + fontSize/2, rl.White, r.screenHeight * 36 / 100},
		{"1 - Single Player (Classic)", fontSize, playerColors[0], r.screenHeight / 2},
		{"2 - Play Against Computer", fontSize, aiColors[0][0], r.screenHeight * 58 / 100},
		{"Q - Quit", fontSize, rl.Gray, r.screenHeight * 70 / 100},
		{fmt.Sprintf("High Score: %d", highScore), fontSize, rl.Gray, r.screenHeight * 80 / 100},
	}
	for _, l := range lines {
		w := rl.MeasureText(l.text, l.size)
		rl.DrawText(l.text, (r.screenWidth-w)/2, l.y, l.size, l.color)
	}

	rl.EndDrawing()
}

// Draw renders one frame of a run, including pause and game over overlays
func (r *Renderer) Draw(snap game.Snapshot, history []int, summary manager.Summary) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/28, r.statsPanel/9)
	lineHeight := fontSize + fontSize/3

	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	r.cellSize = min(availableWidth, availableHeight) / int32(snap.GridCount)
	r.gridPixels = r.cellSize * int32(snap.GridCount)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.gridPixels) / 2

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.gridPixels+2, r.gridPixels+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.gridPixels, r.gridPixels, rl.Black)

	for _, agent := range snap.Agents {
		if !agent.Alive && agent.Role != types.RolePlayer {
			continue
		}
		body, head := AgentColors(agent)
		// Tail first so the head is drawn on top
		for j := len(agent.Body) - 1; j >= 0; j-- {
			color := body
			if j == 0 {
				color = head
			}
			r.drawCell(agent.Body[j], color)
		}
		r.drawDirection(agent.Head(), agent.Direction)
	}

	r.drawCell(snap.Food, rl.Red)

	r.drawStatsPanel(snap, history, summary, fontSize, lineHeight)

	switch snap.State {
	case manager.Paused:
		r.drawOverlay("PAUSED", "Press P to continue", fontSize)
	case manager.Over:
		r.drawOverlay("Game Over!", fmt.Sprintf("Final Score: %d - Press SPACE to restart", snap.Score), fontSize)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	x := r.offsetX + int32(p.X)*r.cellSize
	y := r.offsetY + int32(p.Y)*r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.White)
}

func (r *Renderer) drawDirection(head types.Point, direction types.Direction) {
	headX := float32(r.offsetX + int32(head.X)*r.cellSize)
	headY := float32(r.offsetY + int32(head.Y)*r.cellSize)
	cell := float32(r.cellSize)
	half := cell / 2
	quarter := cell / 4

	// Triangles are listed counter-clockwise
	switch direction {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: headX + cell - quarter, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY + quarter},
			rl.Vector2{X: headX + half, Y: headY + cell - quarter},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: headX + quarter, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY + cell - quarter},
			rl.Vector2{X: headX + half, Y: headY + quarter},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY + cell - quarter},
			rl.Vector2{X: headX + cell - quarter, Y: headY + half},
			rl.Vector2{X: headX + quarter, Y: headY + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY + quarter},
			rl.Vector2{X: headX + quarter, Y: headY + half},
			rl.Vector2{X: headX + cell - quarter, Y: headY + half},
			rl.Yellow)
	}
}

func (r *Renderer) drawOverlay(title, subtitle string, fontSize int32) {
	rl.DrawRectangle(r.offsetX, r.offsetY, r.gridPixels, r.gridPixels, rl.Color{R: 0, G: 0, B: 0, A: 160})

	titleSize := fontSize * 2
	w := rl.MeasureText(title, titleSize)
	centerY := r.offsetY + r.gridPixels/2
	rl.DrawText(title, r.offsetX+(r.gridPixels-w)/2, centerY-titleSize, titleSize, rl.White)

	w = rl.MeasureText(subtitle, fontSize)
	rl.DrawText(subtitle, r.offsetX+(r.gridPixels-w)/2, centerY+fontSize/2, fontSize, rl.Gray)
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, history []int, summary manager.Summary, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("High: %d", snap.HighScore), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Mode: %s", snap.Mode), statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight * 3 / 2

	rl.DrawText(fmt.Sprintf("Games: %d", summary.GamesPlayed), statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Avg: %.2f", summary.AverageScore), statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Median: %.1f", summary.MedianScore), statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight * 3 / 2

	rl.DrawText("Agents:", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	for _, agent := range snap.Agents {
		body, _ := AgentColors(agent)
		label := fmt.Sprintf("%s %d: len %d", agent.Role, agent.ID, agent.Length)
		rl.DrawText(label, statsX+5, statsY, fontSize, body)
		statsY += lineHeight
	}

	footer := "P:Pause ESC:Menu"
	rl.DrawText(footer, statsX, r.screenHeight-fontSize-5, fontSize, rl.Gray)

	r.drawScoreGraph(history, summary.AverageScore, statsX, fontSize)
}

// drawScoreGraph plots the final score of every finished run
func (r *Renderer) drawScoreGraph(history []int, average float64, graphX, fontSize int32) {
	graphWidth := r.statsPanel - 20
	graphHeight := r.screenHeight / 5
	graphY := r.screenHeight - graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, graphWidth, graphHeight, rl.White)
	rl.DrawText("History", graphX, graphY-fontSize-5, fontSize, rl.White)

	if len(history) < 2 {
		return
	}
	if len(history) > maxScores {
		history = history[len(history)-maxScores:]
	}

	maxScore := 1
	for _, score := range history {
		if score > maxScore {
			maxScore = score
		}
	}

	for j := 1; j < len(history); j++ {
		x1 := graphX + int32(float32(graphWidth)*float32(j-1)/float32(maxScores))
		y1 := graphY + graphHeight - int32(float32(graphHeight)*float32(history[j-1])/float32(maxScore))
		x2 := graphX + int32(float32(graphWidth)*float32(j)/float32(maxScores))
		y2 := graphY + graphHeight - int32(float32(graphHeight)*float32(history[j])/float32(maxScore))
		rl.DrawLine(x1, y1, x2, y2, playerColors[0])
	}

	// Dashed average line
	avgY := graphY + graphHeight - int32(float32(graphHeight)*float32(average)/float32(maxScore))
	for x := graphX; x < graphX+graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, rl.Gray)
	}
}
