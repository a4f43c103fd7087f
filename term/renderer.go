// Package term hosts the game in a terminal through tcell.
package term

import (
	"fmt"

	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two columns wide so cells look square
const cellWidth = 2

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFood    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	playerStyles = [2]tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorLime),
		tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	}
	aiStyles = [][2]tcell.Style{
		{tcell.StyleDefault.Foreground(tcell.ColorBlue), tcell.StyleDefault.Foreground(tcell.ColorNavy).Bold(true)},
		{tcell.StyleDefault.Foreground(tcell.ColorYellow), tcell.StyleDefault.Foreground(tcell.ColorOlive).Bold(true)},
		{tcell.StyleDefault.Foreground(tcell.ColorFuchsia), tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)},
	}
)

const (
	bodyRune = 'o'
	deadRune = 'x'
)

var headRunes = map[types.Direction]rune{
	types.Up:    '^',
	types.Down:  'v',
	types.Left:  '<',
	types.Right: '>',
}

// Renderer draws snapshots onto a tcell screen. The grid sits at the top
// left inside a one-cell border, with a status line beneath it.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellOrigin returns the screen column and row of grid cell p
func CellOrigin(p types.Point) (int, int) {
	return 1 + p.X*cellWidth, 1 + p.Y
}

func agentStyles(agent game.AgentView) (tcell.Style, tcell.Style) {
	if agent.Role == types.RolePlayer {
		return playerStyles[0], playerStyles[1]
	}
	s := aiStyles[(agent.ID-1+len(aiStyles))%len(aiStyles)]
	return s[0], s[1]
}

func (r *Renderer) setCell(p types.Point, ch rune, style tcell.Style) {
	x, y := CellOrigin(p)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawCentered(width, y int, text string, style tcell.Style) {
	x := (width - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}

func (r *Renderer) drawBorder(n int) {
	right := 1 + n*cellWidth
	bottom := 1 + n
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, styleBorder)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, styleBorder)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, styleBorder)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, styleBorder)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, styleBorder)
	r.screen.SetContent(right, 0, tcell.RuneURCorner, nil, styleBorder)
	r.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, styleBorder)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, styleBorder)
}

// Draw renders one frame of a run
func (r *Renderer) Draw(snap game.Snapshot, summary manager.Summary) {
	r.screen.Clear()
	n := snap.GridCount
	r.drawBorder(n)

	r.setCell(snap.Food, snap.FoodMarker, styleFood)

	for _, agent := range snap.Agents {
		body, head := agentStyles(agent)
		for j := len(agent.Body) - 1; j >= 1; j-- {
			r.setCell(agent.Body[j], bodyRune, body)
		}
		ch, ok := headRunes[agent.Direction]
		if !ok || !agent.Alive {
			ch = deadRune
		}
		r.setCell(agent.Head(), ch, head)
	}

	width := 2 + n*cellWidth
	status := fmt.Sprintf("Score: %d  High: %d  AI: %d  [%s]", snap.Score, snap.HighScore, snap.AICount, snap.Mode)
	r.drawText(0, n+2, status, styleDefault)
	r.drawText(0, n+3, fmt.Sprintf("Games: %d  Avg: %.1f  Best: %d", summary.GamesPlayed, summary.AverageScore, summary.MaxScore), styleDim)
	r.drawText(0, n+4, "Arrows/WASD move  P pause  Esc menu", styleDim)

	mid := (n + 2) / 2
	switch snap.State {
	case manager.Paused:
		r.drawCentered(width, mid, " PAUSED ", styleTitle)
		r.drawCentered(width, mid+1, " Press P to continue ", styleDim)
	case manager.Over:
		r.drawCentered(width, mid-1, " Game Over! ", styleTitle)
		r.drawCentered(width, mid, fmt.Sprintf(" Final Score: %d ", snap.Score), styleDefault)
		r.drawCentered(width, mid+1, " Press SPACE to restart ", styleDim)
	}

	r.screen.Show()
}

// DrawMenu renders the mode picker
func (r *Renderer) DrawMenu(highScore int) {
	r.screen.Clear()
	width, height := r.screen.Size()
	top := height/2 - 4
	if top < 0 {
		top = 0
	}

	r.drawCentered(width, top, "Snake Game", styleTitle)
	r.drawCentered(width, top+2, "Choose Game Mode", styleDefault)
	r.drawCentered(width, top+4, "1 - Single Player (Classic)", playerStyles[0])
	r.drawCentered(width, top+5, "2 - Play Against Computer", aiStyles[0][0])
	r.drawCentered(width, top+7, "Q - Quit", styleDim)
	if highScore > 0 {
		r.drawCentered(width, top+9, fmt.Sprintf("High Score: %d", highScore), styleDim)
	}

	r.screen.Show()
}
