package game

import (
	"log"
	"time"

	"turtle-snake/game/config"
	"turtle-snake/game/draw"
	"turtle-snake/game/entity"
	"turtle-snake/game/manager"
	"turtle-snake/game/types"

	"golang.org/x/exp/rand"
)

// Game wires the snake, the food and the scoreboard together and runs one
// simulation tick at a time.
type Game struct {
	UUID       string
	Config     config.Config
	Bounds     types.Bounds
	Snake      *entity.Snake
	Food       *entity.Food
	Scoreboard *entity.Scoreboard

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame builds every entity on surface and binds the arrow keys.
func NewGame(cfg config.Config, surface draw.Surface, rng *rand.Rand) *Game {
	bounds := types.NewBounds(cfg.Screen.Width, cfg.Screen.Height)
	stateMgr := manager.NewStateManager()

	g := &Game{
		UUID:         stateMgr.Session().UUID,
		Config:       cfg,
		Bounds:       bounds,
		Snake:        entity.NewSnake(cfg.Snake, surface),
		Scoreboard:   entity.NewScoreboard(cfg.Scoreboard, bounds, surface),
		Food:         entity.NewFood(cfg.Food, surface),
		collisionMgr: manager.NewCollisionManager(bounds),
		stateMgr:     stateMgr,
	}
	g.foodMgr = manager.NewFoodManager(bounds, g.Food, rng)
	g.bindControls(surface)

	log.Printf("game %s started: boundary %dx%d, %d segments", g.UUID, bounds.Width, bounds.Height, g.Snake.Len())
	return g
}

func (g *Game) bindControls(surface draw.Surface) {
	surface.OnKey(draw.KeyUp, g.Snake.Up)
	surface.OnKey(draw.KeyDown, g.Snake.Down)
	surface.OnKey(draw.KeyLeft, g.Snake.Left)
	surface.OnKey(draw.KeyRight, g.Snake.Right)
	surface.Listen()
}

// Play runs a single tick: move, eat, then check the walls and the body.
// Both collision checks always run, and every one that fires writes the
// game over banner. Play does nothing once the game is over.
func (g *Game) Play() {
	if !g.stateMgr.Running() {
		return
	}
	g.stateMgr.Tick()

	g.Snake.Move()

	if g.collisionMgr.IsFoodCollision(g.Snake.Head().Position, g.Food.Position) {
		g.foodMgr.Refresh()
		g.Snake.Extend()
		g.Scoreboard.IncreaseScore()
		g.stateMgr.UpdateScore(g.Scoreboard.Score())
	}

	for _, cause := range g.collisionMgr.CheckCollisions(g.Snake) {
		g.stateMgr.GameOver(cause)
		g.Scoreboard.GameOver()
	}

	if !g.stateMgr.Running() {
		s := g.stateMgr.Session()
		log.Printf("game %s over after %d ticks (%s): score %d, causes %v",
			s.UUID, s.Ticks, s.Duration().Round(time.Millisecond), s.Score, s.Causes)
	}
}

func (g *Game) Running() bool {
	return g.stateMgr.Running()
}

func (g *Game) State() manager.State {
	return g.stateMgr.State()
}

func (g *Game) Score() int {
	return g.Scoreboard.Score()
}

func (g *Game) Session() manager.Session {
	return g.stateMgr.Session()
}
