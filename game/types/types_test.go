package types

import (
	"math"
	"testing"
)

func TestNewBounds(t *testing.T) {
	tests := []struct {
		width, height int
		want          Bounds
	}{
		{600, 600, Bounds{Width: 280, Height: 280}},
		{601, 599, Bounds{Width: 280, Height: 279}},
		{800, 400, Bounds{Width: 380, Height: 180}},
	}

	for _, tt := range tests {
		if got := NewBounds(tt.width, tt.height); got != tt.want {
			t.Errorf("NewBounds(%d, %d) = %+v, want %+v", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Width: 280, Height: 100}

	if !b.Contains(Point{X: 280, Y: -100}) {
		t.Error("Corner of the boundary should be inside")
	}
	if b.Contains(Point{X: 280.5, Y: 0}) {
		t.Error("Point past the width boundary should be outside")
	}
	if b.Contains(Point{X: 0, Y: -101}) {
		t.Error("Point past the height boundary should be outside")
	}
}

func TestForwardCardinals(t *testing.T) {
	start := Point{X: 10, Y: -10}
	tests := []struct {
		heading Heading
		want    Point
	}{
		{Right, Point{X: 30, Y: -10}},
		{Up, Point{X: 10, Y: 10}},
		{Left, Point{X: -10, Y: -10}},
		{Down, Point{X: 10, Y: -30}},
		{-90, Point{X: 10, Y: -30}},
		{450, Point{X: 10, Y: 10}},
	}

	for _, tt := range tests {
		if got := Forward(start, tt.heading, 20); got != tt.want {
			t.Errorf("Forward(%v, %v, 20) = %+v, want %+v", start, tt.heading, got, tt.want)
		}
	}
}

func TestForwardDiagonal(t *testing.T) {
	got := Forward(Point{}, 45, math.Sqrt2)
	if math.Abs(got.X-1) > 1e-9 || math.Abs(got.Y-1) > 1e-9 {
		t.Errorf("Expected (1, 1), got %+v", got)
	}
}

func TestHeadingOpposite(t *testing.T) {
	pairs := map[Heading]Heading{
		Right: Left,
		Left:  Right,
		Up:    Down,
		Down:  Up,
	}
	for h, want := range pairs {
		if got := h.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", h, got, want)
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}); d != 5 {
		t.Errorf("Expected distance 5, got %v", d)
	}
}

func TestCollisionTypeString(t *testing.T) {
	if WallCollision.String() != "wall" || SelfCollision.String() != "self" || NoCollision.String() != "none" {
		t.Error("Unexpected collision type names")
	}
}
