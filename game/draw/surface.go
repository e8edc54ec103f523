// Package draw describes the drawing surface the game renders onto.
//
// The simulation never talks to a graphics library directly. Each entity
// holds the handle it was given by a Surface and pushes its state through it.
package draw

import "turtle-snake/game/types"

// Key identifies a bindable key.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyQuit:
		return "Quit"
	}
	return "Unknown"
}

// Shape is a drawable entity that can be moved and turned.
type Shape interface {
	Goto(p types.Point)
	SetHeading(h types.Heading)
}

// TextStyle controls how a Pen writes.
type TextStyle struct {
	Align string // left, center or right
	Font  string
	Size  int
	Style string // normal, bold or italic
}

// Pen writes text at its position. Clear removes everything it wrote.
type Pen interface {
	Goto(p types.Point)
	Clear()
	Write(text string, style TextStyle)
}

// Surface is the screen the game is played on.
type Surface interface {
	NewShape(kind, color string) Shape
	NewPen(color string) Pen

	// Update redraws the frame and runs callbacks for keys pressed since the last call.
	Update()
	OnKey(k Key, fn func())
	Listen()

	// Closed reports whether the player closed the window or asked to quit.
	Closed() bool
	// ExitOnClick blocks until the player clicks, then tears the surface down.
	ExitOnClick()
}
