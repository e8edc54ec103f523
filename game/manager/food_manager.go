package manager

import (
	"turtle-snake/game/entity"
	"turtle-snake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	bounds types.Bounds
	food   *entity.Food
	rng    *rand.Rand
}

// NewFoodManager takes ownership of food and drops it somewhere on the board.
func NewFoodManager(bounds types.Bounds, food *entity.Food, rng *rand.Rand) *FoodManager {
	fm := &FoodManager{
		bounds: bounds,
		food:   food,
		rng:    rng,
	}
	fm.Refresh()
	return fm
}

// Refresh moves the food to a random integer position inside the boundary.
func (fm *FoodManager) Refresh() {
	fm.food.Goto(types.Point{
		X: float64(fm.randomCoord(fm.bounds.Width)),
		Y: float64(fm.randomCoord(fm.bounds.Height)),
	})
}

func (fm *FoodManager) Food() *entity.Food {
	return fm.food
}

// randomCoord returns an integer in [-limit, limit].
func (fm *FoodManager) randomCoord(limit int) int {
	if limit <= 0 {
		return 0
	}
	return fm.rng.Intn(2*limit+1) - limit
}
