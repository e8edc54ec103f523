package ui

import (
	"fmt"
	"image/color"
	"math"

	"turtle-snake/game/config"
	"turtle-snake/game/draw"
	"turtle-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// A terminal cell is about twice as tall as it is wide.
const (
	unitsPerColumn = 10
	unitsPerRow    = 20
)

// Terminal draws the game with tcell. Events are read on a background
// goroutine and handed to the game from Update, so key callbacks still run
// between ticks.
type Terminal struct {
	screen     tcell.Screen
	background tcell.Style
	events     chan tcell.Event
	done       chan struct{}
	shapes     []*terminalShape
	pens       []*terminalPen
	keys       map[draw.Key]func()
	listening  bool
	quit       bool
}

type terminalShape struct {
	kind    string
	style   tcell.Style
	pos     types.Point
	heading types.Heading
}

type terminalText struct {
	text  string
	pos   types.Point
	style draw.TextStyle
}

type terminalPen struct {
	style tcell.Style
	pos   types.Point
	texts []terminalText
}

// NewTerminal takes over the terminal until ExitOnClick.
func NewTerminal(cfg config.ScreenConfig) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	s.EnableMouse()
	s.HideCursor()

	bg := tcellColor(parseColor(cfg.Color, black))
	t := &Terminal{
		screen:     s,
		background: tcell.StyleDefault.Background(bg),
		events:     make(chan tcell.Event, 32),
		done:       make(chan struct{}),
		keys:       make(map[draw.Key]func()),
	}
	s.SetStyle(t.background)

	go t.poll()
	return t, nil
}

func (t *Terminal) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) NewShape(kind, c string) draw.Shape {
	s := &terminalShape{
		kind:  kind,
		style: t.background.Foreground(tcellColor(parseColor(c, white))),
	}
	t.shapes = append(t.shapes, s)
	return s
}

func (t *Terminal) NewPen(c string) draw.Pen {
	p := &terminalPen{style: t.background.Foreground(tcellColor(parseColor(c, white)))}
	t.pens = append(t.pens, p)
	return p
}

func (t *Terminal) OnKey(k draw.Key, fn func()) {
	t.keys[k] = fn
}

func (t *Terminal) Listen() {
	t.listening = true
}

func (t *Terminal) Closed() bool {
	return t.quit
}

// Update handles every pending event, then redraws.
func (t *Terminal) Update() {
	for drained := false; !drained; {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			drained = true
		}
	}
	t.drawFrame()
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		key, ok := terminalKey(ev)
		if !ok {
			return
		}
		if key == draw.KeyQuit {
			t.quit = true
		}
		if !t.listening {
			return
		}
		if fn, ok := t.keys[key]; ok {
			fn()
		}
	}
}

func terminalKey(ev *tcell.EventKey) (draw.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return draw.KeyUp, true
	case tcell.KeyDown:
		return draw.KeyDown, true
	case tcell.KeyLeft:
		return draw.KeyLeft, true
	case tcell.KeyRight:
		return draw.KeyRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return draw.KeyQuit, true
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return draw.KeyQuit, true
		}
	}
	return 0, false
}

// ExitOnClick keeps the last frame on screen until a click or a key press,
// then gives the terminal back.
func (t *Terminal) ExitOnClick() {
	t.drawFrame()
	for !t.quit {
		ev := <-t.events
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
			t.drawFrame()
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 != 0 {
				t.quit = true
			}
		case *tcell.EventKey:
			t.quit = true
		}
	}
	close(t.done)
	t.screen.Fini()
}

// toCell maps turtle coordinates to a terminal cell, the origin sitting in
// the middle of a cols x rows screen.
func toCell(p types.Point, cols, rows int) (col, row int) {
	col = cols/2 + int(math.Round(p.X/unitsPerColumn))
	row = rows/2 - int(math.Round(p.Y/unitsPerRow))
	return col, row
}

// glyphs returns what a shape looks like and the column it starts at
// relative to its centre. Squares are two columns wide so a body of
// segments 20 units apart reads as a solid line.
func glyphs(kind string, h types.Heading) (string, int) {
	switch kind {
	case "circle":
		return "●", 0
	case "triangle", "arrow", "classic", "turtle":
		switch h.Normalize() {
		case types.Up:
			return "▲", 0
		case types.Left:
			return "◀", 0
		case types.Down:
			return "▼", 0
		}
		return "▶", 0
	}
	return "██", -1
}

func (t *Terminal) drawFrame() {
	t.screen.Clear()
	cols, rows := t.screen.Size()

	for _, s := range t.shapes {
		col, row := toCell(s.pos, cols, rows)
		g, offset := glyphs(s.kind, s.heading)
		t.put(col+offset, row, g, s.style, cols, rows)
	}

	for _, p := range t.pens {
		for _, txt := range p.texts {
			col, row := toCell(txt.pos, cols, rows)
			// turtle writes above its position
			row--
			n := len([]rune(txt.text))
			switch txt.style.Align {
			case "center":
				col -= n / 2
			case "right":
				col -= n
			}
			style := p.style
			if txt.style.Style == "bold" {
				style = style.Bold(true)
			} else if txt.style.Style == "italic" {
				style = style.Italic(true)
			}
			t.put(col, row, txt.text, style, cols, rows)
		}
	}

	t.screen.Show()
}

func (t *Terminal) put(col, row int, text string, style tcell.Style, cols, rows int) {
	if row < 0 || row >= rows {
		return
	}
	for _, r := range text {
		if col >= 0 && col < cols {
			t.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *terminalShape) Goto(p types.Point) {
	s.pos = p
}

func (s *terminalShape) SetHeading(h types.Heading) {
	s.heading = h
}

func (p *terminalPen) Goto(pos types.Point) {
	p.pos = pos
}

func (p *terminalPen) Clear() {
	p.texts = nil
}

func (p *terminalPen) Write(text string, style draw.TextStyle) {
	p.texts = append(p.texts, terminalText{text: text, pos: p.pos, style: style})
}
