package demos

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/canopy"
)

// Text measures 9x18 per glyph at the default size without a font, so
// widget positions below follow from padding 16, spacing and button padding.

func clickAt[T canopy.Data[T]](w *canopy.Window[T], x, y float64) {
	pos := canopy.Point{X: x, Y: y}
	ev := canopy.MouseEvent{Pos: pos, WindowPos: pos, Button: canopy.MouseButtonLeft}
	w.Event(canopy.MouseMove{MouseEvent: ev})
	w.Event(canopy.MouseDown{MouseEvent: ev})
	w.Event(canopy.MouseUp{MouseEvent: ev})
}

func TestRegistry(t *testing.T) {
	all := All()
	if len(all) != 2 {
		t.Fatalf("expected 2 demos, got %d", len(all))
	}
	if all[0].Name != "counter" || all[1].Name != "form" {
		t.Errorf("expected sorted [counter form], got [%s %s]", all[0].Name, all[1].Name)
	}
	for _, d := range all {
		if d.Description == "" || d.Run == nil {
			t.Errorf("demo %s is incomplete", d.Name)
		}
	}

	if _, err := Find("form"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := Find("missing"); err == nil {
		t.Error("expected error for an unknown demo")
	}
}

func TestCounter(t *testing.T) {
	w := NewCounter(canopy.Env{})
	w.Layout(canopy.Size{Width: 400, Height: 400})

	// Buttons sit on one row at y 46..76: "-1" at x 16..58, "+1" at
	// 66..108 and "Reset" at 116..185.
	clickAt(w, 80, 60)
	clickAt(w, 80, 60)
	clickAt(w, 30, 60)
	if got := w.Data().Count; got != 1 {
		t.Fatalf("expected count 1, got %d", got)
	}

	for range 4 {
		clickAt(w, 80, 60)
	}
	clickAt(w, 150, 60)
	s := w.Data()
	if s.Count != 0 {
		t.Errorf("expected reset to 0, got %d", s.Count)
	}
	if len(s.History) != maxHistory {
		t.Fatalf("expected history capped at %d, got %d", maxHistory, len(s.History))
	}
	if s.History[maxHistory-1] != "reset" || s.History[0] != "increment" {
		t.Errorf("unexpected history %v", s.History)
	}
	if w.Title() != "canopy counter" {
		t.Errorf("expected title set by reset, got %q", w.Title())
	}
}

func TestCounterStateClone(t *testing.T) {
	s := CounterState{History: []string{"a"}}
	c := s.Clone()
	c.History[0] = "b"
	if s.History[0] != "a" {
		t.Error("expected clone not to alias history")
	}
	if !s.Same(CounterState{History: []string{"a"}}) {
		t.Error("expected equal states to be Same")
	}
}

func TestForm(t *testing.T) {
	w := NewForm(canopy.Env{})
	w.Layout(canopy.Size{Width: 400, Height: 400})

	if w.Focus() != NameFieldID {
		t.Fatalf("expected name field focused, got %d", w.Focus())
	}
	typeText := func(s string) {
		w.Event(canopy.KeyDown{KeyEvent: canopy.KeyEvent{Key: canopy.KeyNone, Text: s}})
	}

	typeText("Ada")
	w.Event(canopy.KeyDown{KeyEvent: canopy.KeyEvent{Key: ebiten.KeyTab}})
	typeText("ada@example.com")

	s := w.Data()
	if s.Name != "Ada" || s.Email != "ada@example.com" {
		t.Fatalf("unexpected fields %+v", s)
	}

	// Actions row at y 152..182: Submit at x 16..94, Quit at 102..162.
	clickAt(w, 40, 165)
	if w.Data().Submitted != 1 {
		t.Fatalf("expected 1 submit, got %d", w.Data().Submitted)
	}
	if want := "Ada <ada@example.com>"; w.Title() != want {
		t.Errorf("expected title %q, got %q", want, w.Title())
	}

	clickAt(w, 120, 165)
	if !w.Quit() {
		t.Error("expected Quit to stop the window")
	}
}
