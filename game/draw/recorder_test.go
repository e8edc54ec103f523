package draw

import (
	"testing"

	"turtle-snake/game/types"
)

func TestRecorderDispatchesAfterListen(t *testing.T) {
	rec := NewRecorder()
	calls := 0
	rec.OnKey(KeyUp, func() { calls++ })

	rec.Press(KeyUp)
	rec.Update()
	if calls != 0 {
		t.Errorf("Key delivered before Listen")
	}

	rec.Listen()
	rec.Press(KeyUp)
	rec.Press(KeyDown)
	rec.Update()
	if calls != 1 {
		t.Errorf("Expected one call, got %d", calls)
	}
	if rec.Frames != 2 {
		t.Errorf("Expected 2 frames, got %d", rec.Frames)
	}
}

func TestRecorderQuit(t *testing.T) {
	rec := NewRecorder()
	rec.Press(KeyQuit)
	if rec.Closed() {
		t.Fatal("Closed before the key was delivered")
	}
	rec.Update()
	if !rec.Closed() {
		t.Error("Quit key should close the surface")
	}

	rec.ExitOnClick()
	if !rec.Exited() {
		t.Error("ExitOnClick not recorded")
	}
}

func TestRecordedPen(t *testing.T) {
	rec := NewRecorder()
	pen := rec.NewPen("white")
	pen.Goto(types.Point{X: 1, Y: 2})
	pen.Write("a", TextStyle{Align: "left"})
	pen.Clear()
	pen.Write("b", TextStyle{Align: "center"})

	p := rec.Pens[0]
	if len(p.Visible) != 1 || p.Visible[0] != "b" {
		t.Errorf("Visible text %q", p.Visible)
	}
	if len(p.Written) != 2 {
		t.Errorf("Written text %q", p.Written)
	}
	if p.Position != (types.Point{X: 1, Y: 2}) || p.Style.Align != "center" {
		t.Errorf("Unexpected pen state %+v", p)
	}
}

func TestKeyString(t *testing.T) {
	if KeyLeft.String() != "Left" || Key(42).String() != "Unknown" {
		t.Error("Unexpected key names")
	}
}
