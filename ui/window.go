package ui

import (
	"image/color"
	"math"

	"turtle-snake/game/config"
	"turtle-snake/game/draw"
	"turtle-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	shapeSize = 20 // Turtle shapes are drawn 20 pixels across
	exitFPS   = 30 // Frame rate while waiting for the closing click
)

// Window is a raylib window that draws in turtle coordinates.
type Window struct {
	width      int32
	height     int32
	background color.RGBA
	shapes     []*windowShape
	pens       []*windowPen
	keys       map[draw.Key]func()
	listening  bool
	quit       bool
}

type windowShape struct {
	kind    string
	color   color.RGBA
	pos     types.Point
	heading types.Heading
}

type windowText struct {
	text  string
	pos   types.Point
	style draw.TextStyle
}

type windowPen struct {
	color color.RGBA
	pos   types.Point
	texts []windowText
}

// NewWindow opens the game window.
func NewWindow(cfg config.ScreenConfig) *Window {
	w := &Window{
		width:      int32(cfg.Width),
		height:     int32(cfg.Height),
		background: parseColor(cfg.Color, black),
		keys:       make(map[draw.Key]func()),
	}

	rl.InitWindow(w.width, w.height, cfg.Title)
	// Escape is dispatched as KeyQuit
	rl.SetExitKey(0)
	return w
}

func (w *Window) NewShape(kind, c string) draw.Shape {
	s := &windowShape{kind: kind, color: parseColor(c, white)}
	w.shapes = append(w.shapes, s)
	return s
}

func (w *Window) NewPen(c string) draw.Pen {
	p := &windowPen{color: parseColor(c, white)}
	w.pens = append(w.pens, p)
	return p
}

func (w *Window) OnKey(k draw.Key, fn func()) {
	w.keys[k] = fn
}

func (w *Window) Listen() {
	w.listening = true
}

func (w *Window) Closed() bool {
	return w.quit || rl.WindowShouldClose()
}

// Update draws a frame. Input is polled when the frame ends, so the key
// presses collected there are dispatched right after.
func (w *Window) Update() {
	w.drawFrame()

	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if key, ok := windowKey(k); ok {
			w.dispatch(key)
		}
	}
}

// dispatch handles one key. Quit works even before Listen.
func (w *Window) dispatch(key draw.Key) {
	if key == draw.KeyQuit {
		w.quit = true
	}
	if !w.listening {
		return
	}
	if fn, ok := w.keys[key]; ok {
		fn()
	}
}

func (w *Window) ExitOnClick() {
	rl.SetTargetFPS(exitFPS)
	for !w.quit && !rl.WindowShouldClose() {
		w.drawFrame()
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			break
		}
	}
	rl.CloseWindow()
}

func windowKey(k int32) (draw.Key, bool) {
	switch k {
	case rl.KeyUp:
		return draw.KeyUp, true
	case rl.KeyDown:
		return draw.KeyDown, true
	case rl.KeyLeft:
		return draw.KeyLeft, true
	case rl.KeyRight:
		return draw.KeyRight, true
	case rl.KeyEscape, rl.KeyQ:
		return draw.KeyQuit, true
	}
	return 0, false
}

func (w *Window) drawFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(w.background)

	for _, s := range w.shapes {
		w.drawShape(s)
	}
	for _, p := range w.pens {
		for _, t := range p.texts {
			w.drawText(t, p.color)
		}
	}

	rl.EndDrawing()
}

// toScreen maps turtle coordinates (origin in the centre, y up) to window
// pixels (origin top left, y down).
func toScreen(p types.Point, width, height int32) rl.Vector2 {
	return rl.Vector2{
		X: float32(float64(width)/2 + p.X),
		Y: float32(float64(height)/2 - p.Y),
	}
}

// trianglePoints returns the corners of a shape pointing along h, in the
// counter-clockwise order raylib expects.
func trianglePoints(center types.Point, h types.Heading, size float64) [3]types.Point {
	half := size / 2
	tip := types.Forward(center, h, half)
	back := types.Forward(center, h, -half)
	return [3]types.Point{
		tip,
		types.Forward(back, h+90, half),
		types.Forward(back, h-90, half),
	}
}

func (w *Window) drawShape(s *windowShape) {
	c := toScreen(s.pos, w.width, w.height)

	switch s.kind {
	case "circle":
		rl.DrawCircle(int32(math.Round(float64(c.X))), int32(math.Round(float64(c.Y))), shapeSize/2, s.color)
	case "triangle", "arrow", "classic", "turtle":
		size := float64(shapeSize)
		if s.kind != "triangle" {
			size = shapeSize * 0.75
		}
		pts := trianglePoints(s.pos, s.heading, size)
		rl.DrawTriangle(
			toScreen(pts[0], w.width, w.height),
			toScreen(pts[1], w.width, w.height),
			toScreen(pts[2], w.width, w.height),
			s.color)
	default:
		rl.DrawRectanglePro(
			rl.Rectangle{X: c.X, Y: c.Y, Width: shapeSize, Height: shapeSize},
			rl.Vector2{X: shapeSize / 2, Y: shapeSize / 2},
			-float32(s.heading),
			s.color)
	}
}

func (w *Window) drawText(t windowText, c color.RGBA) {
	size := int32(t.style.Size)
	if size <= 0 {
		size = 16
	}
	pos := toScreen(t.pos, w.width, w.height)
	x := int32(pos.X)
	// turtle writes text above its position
	y := int32(pos.Y) - size

	width := rl.MeasureText(t.text, size)
	switch t.style.Align {
	case "center":
		x -= width / 2
	case "right":
		x -= width
	}

	rl.DrawText(t.text, x, y, size, c)
	if t.style.Style == "bold" {
		rl.DrawText(t.text, x+1, y, size, c)
	}
}

func (s *windowShape) Goto(p types.Point) {
	s.pos = p
}

func (s *windowShape) SetHeading(h types.Heading) {
	s.heading = h
}

func (p *windowPen) Goto(pos types.Point) {
	p.pos = pos
}

func (p *windowPen) Clear() {
	p.texts = nil
}

func (p *windowPen) Write(text string, style draw.TextStyle) {
	p.texts = append(p.texts, windowText{text: text, pos: p.pos, style: style})
}
