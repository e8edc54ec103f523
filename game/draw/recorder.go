package draw

import "turtle-snake/game/types"

// Recorder is a headless Surface. It keeps every shape and pen it hands out
// and lets callers inject key presses.
type Recorder struct {
	Shapes  []*RecordedShape
	Pens    []*RecordedPen
	Frames  int
	closed  bool
	exited  bool
	listen  bool
	pending []Key
	keys    map[Key]func()
}

// RecordedShape is the state of a shape created by a Recorder.
type RecordedShape struct {
	Kind     string
	Color    string
	Position types.Point
	Heading  types.Heading
	Moves    int
}

// RecordedPen is the state of a pen created by a Recorder.
type RecordedPen struct {
	Color    string
	Position types.Point
	Visible  []string // text currently on screen
	Written  []string // everything ever written, in order
	Style    TextStyle
}

func NewRecorder() *Recorder {
	return &Recorder{keys: make(map[Key]func())}
}

func (r *Recorder) NewShape(kind, color string) Shape {
	s := &RecordedShape{Kind: kind, Color: color}
	r.Shapes = append(r.Shapes, s)
	return s
}

func (r *Recorder) NewPen(color string) Pen {
	p := &RecordedPen{Color: color}
	r.Pens = append(r.Pens, p)
	return p
}

// Press queues a key press that the next Update delivers.
func (r *Recorder) Press(k Key) {
	r.pending = append(r.pending, k)
}

func (r *Recorder) Update() {
	r.Frames++
	pending := r.pending
	r.pending = nil
	for _, k := range pending {
		if k == KeyQuit {
			r.closed = true
		}
		if !r.listen {
			continue
		}
		if fn, ok := r.keys[k]; ok {
			fn()
		}
	}
}

func (r *Recorder) OnKey(k Key, fn func()) {
	r.keys[k] = fn
}

func (r *Recorder) Listen() {
	r.listen = true
}

// Close marks the surface as closed, as if the window was shut.
func (r *Recorder) Close() {
	r.closed = true
}

func (r *Recorder) Closed() bool {
	return r.closed
}

func (r *Recorder) ExitOnClick() {
	r.exited = true
	r.closed = true
}

// Exited reports whether ExitOnClick ran.
func (r *Recorder) Exited() bool {
	return r.exited
}

func (s *RecordedShape) Goto(p types.Point) {
	s.Position = p
	s.Moves++
}

func (s *RecordedShape) SetHeading(h types.Heading) {
	s.Heading = h
}

func (p *RecordedPen) Goto(pos types.Point) {
	p.Position = pos
}

func (p *RecordedPen) Clear() {
	p.Visible = nil
}

func (p *RecordedPen) Write(text string, style TextStyle) {
	p.Style = style
	p.Visible = append(p.Visible, text)
	p.Written = append(p.Written, text)
}
