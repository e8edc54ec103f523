package manager

import (
	"math"

	"turtle-snake/game/entity"
	"turtle-snake/game/types"
)

type CollisionManager struct {
	bounds types.Bounds
}

func NewCollisionManager(bounds types.Bounds) *CollisionManager {
	return &CollisionManager{
		bounds: bounds,
	}
}

// IsFoodCollision checks if the head is close enough to eat the food
func (cm *CollisionManager) IsFoodCollision(head, food types.Point) bool {
	return types.Distance(head, food) < types.FoodRadius
}

// IsWallCollision checks if a position is past the boundary
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return math.Abs(pos.X) > float64(cm.bounds.Width) || math.Abs(pos.Y) > float64(cm.bounds.Height)
}

// SelfCollisions returns the index of every body segment the head overlaps.
// The head itself is skipped.
func (cm *CollisionManager) SelfCollisions(snake *entity.Snake) []int {
	var hits []int
	head := snake.Head().Position
	for i := 1; i < len(snake.Segments); i++ {
		if types.Distance(head, snake.Segments[i].Position) < types.BodyRadius {
			hits = append(hits, i)
		}
	}
	return hits
}

// CheckCollisions runs the wall and self checks without short-circuiting and
// returns one entry per condition that fired.
func (cm *CollisionManager) CheckCollisions(snake *entity.Snake) []types.CollisionType {
	var fired []types.CollisionType
	if cm.IsWallCollision(snake.Head().Position) {
		fired = append(fired, types.WallCollision)
	}
	for range cm.SelfCollisions(snake) {
		fired = append(fired, types.SelfCollision)
	}
	return fired
}
