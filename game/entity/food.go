package entity

import (
	"turtle-snake/game/config"
	"turtle-snake/game/draw"
	"turtle-snake/game/types"
)

// Food is the single piece of food on the board. It is moved, never recreated.
type Food struct {
	Position types.Point
	shape    draw.Shape
}

func NewFood(cfg config.FoodConfig, surface draw.Surface) *Food {
	return &Food{shape: surface.NewShape(cfg.Shape, cfg.Color)}
}

func (f *Food) Goto(p types.Point) {
	f.Position = p
	f.shape.Goto(p)
}
