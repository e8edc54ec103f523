package types

import "math"

// Point is a position on the turtle plane: origin at the screen centre, y up.
type Point struct {
	X, Y float64
}

// Heading is an angle in degrees, 0 pointing right and growing counter-clockwise.
type Heading float64

const (
	Right Heading = 0
	Up    Heading = 90
	Left  Heading = 180
	Down  Heading = 270
)

// Game constants
const (
	BoundaryMargin = 20 // Gap between the screen edge and the playable area
	SegmentSpacing = 20 // Gap between segments of a freshly built snake
	FoodRadius     = 15 // Head closer than this eats the food
	BodyRadius     = 10 // Head closer than this to a segment bites it
	ScoreOffset    = 40 // Scoreboard sits this far below the top boundary
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Bounds is the playable rectangle, symmetric around the origin.
type Bounds struct {
	Width  int
	Height int
}

// NewBounds derives the boundary from the configured screen size.
func NewBounds(screenWidth, screenHeight int) Bounds {
	return Bounds{
		Width:  screenWidth/2 - BoundaryMargin,
		Height: screenHeight/2 - BoundaryMargin,
	}
}

// Contains reports whether p lies on or inside the boundary.
func (b Bounds) Contains(p Point) bool {
	return math.Abs(p.X) <= float64(b.Width) && math.Abs(p.Y) <= float64(b.Height)
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Normalize folds h into [0, 360).
func (h Heading) Normalize() Heading {
	d := math.Mod(float64(h), 360)
	if d < 0 {
		d += 360
	}
	return Heading(d)
}

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	return (h + 180).Normalize()
}

// Forward returns p moved distance units along h. The four cardinal headings
// use exact unit vectors so positions stay on the integer grid.
func Forward(p Point, h Heading, distance float64) Point {
	switch h.Normalize() {
	case Right:
		return Point{X: p.X + distance, Y: p.Y}
	case Up:
		return Point{X: p.X, Y: p.Y + distance}
	case Left:
		return Point{X: p.X - distance, Y: p.Y}
	case Down:
		return Point{X: p.X, Y: p.Y - distance}
	}
	rad := float64(h) * math.Pi / 180
	return Point{
		X: p.X + distance*math.Cos(rad),
		Y: p.Y + distance*math.Sin(rad),
	}
}
