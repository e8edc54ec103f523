package entity

import (
	"fmt"

	"turtle-snake/game/config"
	"turtle-snake/game/draw"
	"turtle-snake/game/types"
)

const GameOverText = "GAME OVER"

// Scoreboard keeps the score and writes it above the playing field.
type Scoreboard struct {
	score int
	style draw.TextStyle
	pen   draw.Pen
}

// NewScoreboard places the score line just below the top boundary and writes
// the initial score.
func NewScoreboard(cfg config.ScoreboardConfig, bounds types.Bounds, surface draw.Surface) *Scoreboard {
	sb := &Scoreboard{
		style: draw.TextStyle{
			Align: cfg.Align,
			Font:  cfg.Font,
			Size:  cfg.FontSize,
			Style: cfg.FontStyle,
		},
		pen: surface.NewPen(cfg.Color),
	}
	sb.pen.Goto(types.Point{Y: float64(bounds.Height - types.ScoreOffset)})
	sb.update()
	return sb
}

func (sb *Scoreboard) Score() int {
	return sb.score
}

func (sb *Scoreboard) IncreaseScore() {
	sb.score++
	sb.update()
}

// GameOver writes the game over banner in the middle of the screen.
func (sb *Scoreboard) GameOver() {
	sb.pen.Goto(types.Point{})
	sb.pen.Write(GameOverText, sb.style)
}

func (sb *Scoreboard) update() {
	sb.pen.Clear()
	sb.pen.Write(fmt.Sprintf("Score: %d", sb.score), sb.style)
}
