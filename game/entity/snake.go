package entity

import (
	"time"

	"turtle-snake/game/config"
	"turtle-snake/game/draw"
	"turtle-snake/game/types"
)

// Segment is one square of the snake's body.
type Segment struct {
	Position types.Point
	Heading  types.Heading
	shape    draw.Shape
}

func newSegment(surface draw.Surface, shape, color string, pos types.Point) *Segment {
	s := &Segment{shape: surface.NewShape(shape, color)}
	s.Goto(pos)
	s.SetHeading(types.Right)
	return s
}

func (s *Segment) Goto(p types.Point) {
	s.Position = p
	s.shape.Goto(p)
}

func (s *Segment) SetHeading(h types.Heading) {
	s.Heading = h.Normalize()
	s.shape.SetHeading(s.Heading)
}

// Snake is an ordered chain of segments. Segments[0] is the head and the last
// one is the tail; the chain is never empty and never shrinks.
type Snake struct {
	Segments []*Segment
	Speed    time.Duration
	Distance float64

	color   string
	shape   string
	surface draw.Surface
}

func NewSnake(cfg config.SnakeConfig, surface draw.Surface) *Snake {
	s := &Snake{
		Speed:    cfg.Speed,
		Distance: cfg.Distance,
		color:    cfg.Color,
		shape:    cfg.SegmentShape,
		surface:  surface,
	}

	n := cfg.Segments
	if n < 1 {
		n = 1
	}
	x := 0.0
	for i := 0; i < n; i++ {
		s.Segments = append(s.Segments, newSegment(surface, s.shape, s.color, types.Point{X: x}))
		x -= types.SegmentSpacing
	}
	return s
}

func (s *Snake) Head() *Segment {
	return s.Segments[0]
}

func (s *Snake) Tail() *Segment {
	return s.Segments[len(s.Segments)-1]
}

func (s *Snake) Len() int {
	return len(s.Segments)
}

// Extend grows the snake by one segment placed on top of the current tail.
func (s *Snake) Extend() {
	s.Segments = append(s.Segments, newSegment(s.surface, s.shape, s.color, s.Tail().Position))
}

// Move advances the snake one step. Every body segment takes the place of the
// one in front of it before the head moves, so the body follows the head's path.
func (s *Snake) Move() {
	for i := len(s.Segments) - 1; i > 0; i-- {
		s.Segments[i].Goto(s.Segments[i-1].Position)
	}

	for i := 1; i < len(s.Segments); i++ {
		s.Segments[i].SetHeading(s.Segments[i-1].Heading)
	}

	head := s.Head()
	head.Goto(types.Forward(head.Position, head.Heading, s.Distance))
}

func (s *Snake) Up() {
	s.turn(types.Up)
}

func (s *Snake) Down() {
	s.turn(types.Down)
}

func (s *Snake) Left() {
	s.turn(types.Left)
}

func (s *Snake) Right() {
	s.turn(types.Right)
}

// Turn points the head along h. Only the four cardinal headings are accepted.
func (s *Snake) Turn(h types.Heading) {
	switch h.Normalize() {
	case types.Up:
		s.Up()
	case types.Down:
		s.Down()
	case types.Left:
		s.Left()
	case types.Right:
		s.Right()
	}
}

// turn refuses 180 degree turns so the head can't run straight into the neck.
func (s *Snake) turn(h types.Heading) {
	head := s.Head()
	if head.Heading == h.Opposite() {
		return
	}
	head.SetHeading(h)
}
