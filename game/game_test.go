package game

import (
	"testing"

	"turtle-snake/game/config"
	"turtle-snake/game/draw"
	"turtle-snake/game/entity"
	"turtle-snake/game/manager"
	"turtle-snake/game/types"

	"golang.org/x/exp/rand"
)

func newTestGame(t *testing.T, segments int) (*Game, *draw.Recorder) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Snake.Segments = segments
	rec := draw.NewRecorder()
	g := NewGame(cfg, rec, rand.New(rand.NewSource(12345)))
	// Keep the food out of the way unless a test needs it.
	g.Food.Goto(types.Point{X: -200, Y: -200})
	return g, rec
}

func gameOverRenders(rec *draw.Recorder) int {
	n := 0
	for _, text := range rec.Pens[0].Written {
		if text == entity.GameOverText {
			n++
		}
	}
	return n
}

func TestNewGame(t *testing.T) {
	g, rec := newTestGame(t, 3)

	if g.Bounds != (types.Bounds{Width: 280, Height: 280}) {
		t.Errorf("Unexpected bounds %+v", g.Bounds)
	}
	if !g.Running() || g.State() != manager.StateRunning {
		t.Error("New game should be running")
	}
	if g.Score() != 0 {
		t.Errorf("Expected score 0, got %d", g.Score())
	}
	if g.UUID == "" || g.UUID != g.Session().UUID {
		t.Errorf("Game id %q doesn't match session %q", g.UUID, g.Session().UUID)
	}
	// three segments and the food
	if len(rec.Shapes) != 4 {
		t.Fatalf("Expected 4 shapes, got %d", len(rec.Shapes))
	}
	food := rec.Shapes[3]
	if food.Kind != "circle" || food.Color != "red" {
		t.Errorf("Food drawn as %s %s", food.Color, food.Kind)
	}
}

func TestInitialFoodIsInBounds(t *testing.T) {
	cfg := config.DefaultConfig()
	for seed := uint64(1); seed <= 20; seed++ {
		g := NewGame(cfg, draw.NewRecorder(), rand.New(rand.NewSource(seed)))
		if !g.Bounds.Contains(g.Food.Position) {
			t.Errorf("Seed %d: food at %+v", seed, g.Food.Position)
		}
	}
}

func TestPlayEatsFood(t *testing.T) {
	g, rec := newTestGame(t, 3)
	g.Food.Goto(types.Point{X: 10, Y: 0})

	g.Play()

	if g.Score() != 1 {
		t.Errorf("Expected score 1, got %d", g.Score())
	}
	if g.Snake.Len() != 4 {
		t.Errorf("Expected 4 segments, got %d", g.Snake.Len())
	}
	if g.Food.Position == (types.Point{X: 10, Y: 0}) {
		t.Error("Food should have been moved")
	}
	if !g.Bounds.Contains(g.Food.Position) {
		t.Errorf("Food moved out of bounds to %+v", g.Food.Position)
	}
	if g.Snake.Tail().Position != g.Snake.Segments[2].Position {
		t.Error("New tail should sit on the old tail")
	}
	if !g.Running() {
		t.Error("Eating should not end the game")
	}
	if got := rec.Pens[0].Visible; len(got) != 1 || got[0] != "Score: 1" {
		t.Errorf("Scoreboard shows %q", got)
	}
	if g.Session().Score != 1 {
		t.Errorf("Session score %d, want 1", g.Session().Score)
	}
}

func TestPlayWallCollision(t *testing.T) {
	g, rec := newTestGame(t, 3)
	g.Snake.Head().Goto(types.Point{X: float64(g.Bounds.Width + 1)})

	g.Play()

	if g.Running() {
		t.Fatal("Game should be over after leaving the boundary")
	}
	if n := gameOverRenders(rec); n != 1 {
		t.Errorf("Expected one game over render, got %d", n)
	}
	causes := g.Session().Causes
	if len(causes) != 1 || causes[0] != types.WallCollision {
		t.Errorf("Expected [wall], got %v", causes)
	}
}

func TestPlaySelfCollision(t *testing.T) {
	g, rec := newTestGame(t, 4)
	// After the move segment 3 takes segment 2's spot, where the head lands.
	g.Snake.Segments[2].Goto(types.Point{X: 20})

	g.Play()

	if g.Running() {
		t.Fatal("Game should be over after biting the body")
	}
	if n := gameOverRenders(rec); n != 1 {
		t.Errorf("Expected one game over render, got %d", n)
	}
	causes := g.Session().Causes
	if len(causes) != 1 || causes[0] != types.SelfCollision {
		t.Errorf("Expected [self], got %v", causes)
	}
}

func TestPlayWallAndSelfCollision(t *testing.T) {
	g, rec := newTestGame(t, 4)
	w := float64(g.Bounds.Width)
	g.Snake.Head().Goto(types.Point{X: w})
	g.Snake.Segments[2].Goto(types.Point{X: w + 20})

	g.Play()

	if g.Running() {
		t.Fatal("Game should be over")
	}
	if n := gameOverRenders(rec); n != 2 {
		t.Errorf("Expected two game over renders, got %d", n)
	}
	causes := g.Session().Causes
	if len(causes) != 2 || causes[0] != types.WallCollision || causes[1] != types.SelfCollision {
		t.Errorf("Expected [wall self], got %v", causes)
	}
}

func TestPlayAfterGameOver(t *testing.T) {
	g, rec := newTestGame(t, 3)
	g.Snake.Head().Goto(types.Point{X: 1000})
	g.Play()

	head := g.Snake.Head().Position
	ticks := g.Session().Ticks
	g.Food.Goto(types.Point{X: head.X + 20})
	g.Play()

	if g.Snake.Head().Position != head {
		t.Error("Snake moved after the game ended")
	}
	if g.Score() != 0 {
		t.Errorf("Score changed to %d after the game ended", g.Score())
	}
	if g.Session().Ticks != ticks {
		t.Error("Tick counted after the game ended")
	}
	if n := gameOverRenders(rec); n != 1 {
		t.Errorf("Expected one game over render, got %d", n)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g, _ := newTestGame(t, 3)

	last := 0
	for i := 0; i < 10 && g.Running(); i++ {
		head := g.Snake.Head().Position
		g.Food.Goto(types.Forward(head, g.Snake.Head().Heading, g.Snake.Distance))
		g.Play()
		if g.Score() != last+1 {
			t.Fatalf("Tick %d: score %d, want %d", i, g.Score(), last+1)
		}
		last = g.Score()
		if i%2 == 0 {
			g.Snake.Up()
		} else {
			g.Snake.Right()
		}
	}
}

func TestArrowKeysSteerTheSnake(t *testing.T) {
	g, rec := newTestGame(t, 3)

	rec.Press(draw.KeyUp)
	rec.Update()
	if g.Snake.Head().Heading != types.Up {
		t.Fatalf("Expected Up, got %v", g.Snake.Head().Heading)
	}

	rec.Press(draw.KeyDown)
	rec.Update()
	if g.Snake.Head().Heading != types.Up {
		t.Errorf("Reversal should be ignored, got %v", g.Snake.Head().Heading)
	}

	rec.Press(draw.KeyLeft)
	rec.Press(draw.KeyDown)
	rec.Update()
	if g.Snake.Head().Heading != types.Down {
		t.Errorf("Expected Down after Left then Down, got %v", g.Snake.Head().Heading)
	}
}
