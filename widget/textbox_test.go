package widget

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/canopy"
)

func newNameBox() *TextBox[form] {
	return NewTextBox(
		func(f form) string { return f.Name },
		func(f *form, s string) { f.Name = s },
	)
}

func typeText(w *canopy.Window[form], s string) {
	w.Event(canopy.KeyDown{KeyEvent: canopy.KeyEvent{Key: canopy.KeyNone, Text: s}})
}

func pressKey(w *canopy.Window[form], k ebiten.Key, mods canopy.KeyModifiers) {
	w.Event(canopy.KeyDown{KeyEvent: canopy.KeyEvent{Key: k, Mods: mods}})
}

func TestTextBoxClickFocuses(t *testing.T) {
	tb := newNameBox()
	w, p := newTestWindow(tb, canopy.Size{Width: 200, Height: 30})

	w.Event(canopy.MouseDown{MouseEvent: at(5, 5)})
	if w.Focus() != w.Root().ID() {
		t.Fatalf("expected focus on the text box, got %d", w.Focus())
	}
	if !tb.Focused() || !tb.CaretVisible() {
		t.Error("expected focused box with visible caret")
	}
	if len(p.timers) == 0 {
		t.Error("expected a blink timer")
	}
}

func TestTextBoxTypingAndBackspace(t *testing.T) {
	tb := newNameBox()
	w, _ := newTestWindow(tb, canopy.Size{Width: 200, Height: 30})
	w.SetFocus(w.Root().ID())

	typeText(w, "hé")
	typeText(w, "y\tx")
	if got := w.Data().Name; got != "héyx" {
		t.Fatalf("expected héyx, got %q", got)
	}

	pressKey(w, ebiten.KeyBackspace, 0)
	pressKey(w, ebiten.KeyBackspace, 0)
	if got := w.Data().Name; got != "hé" {
		t.Fatalf("expected hé, got %q", got)
	}
}

func TestTextBoxIgnoresKeysWithoutFocus(t *testing.T) {
	tb := newNameBox()
	w, _ := newTestWindow(tb, canopy.Size{Width: 200, Height: 30})

	typeText(w, "nope")
	if w.Data().Name != "" {
		t.Errorf("expected no edit without focus, got %q", w.Data().Name)
	}
}

func TestTextBoxPasteFirstLine(t *testing.T) {
	tb := newNameBox()
	w, _ := newTestWindow(tb, canopy.Size{Width: 200, Height: 30})
	w.SetFocus(w.Root().ID())

	w.Event(canopy.Paste{Text: "line one\nline two"})
	if got := w.Data().Name; got != "line one" {
		t.Errorf("expected first line only, got %q", got)
	}
}

func TestTextBoxBlink(t *testing.T) {
	tb := newNameBox()
	w, p := newTestWindow(tb, canopy.Size{Width: 200, Height: 30})
	w.SetFocus(w.Root().ID())

	tok := p.lastTimer()
	if tok == 0 {
		t.Fatal("expected focus to start the blink timer")
	}
	if !tb.CaretVisible() {
		t.Fatal("expected caret visible after focus")
	}

	w.Event(canopy.TimerEvent{Token: canopy.NextTimerToken()})
	if !tb.CaretVisible() {
		t.Fatal("a foreign timer token should not toggle the caret")
	}

	w.Event(canopy.TimerEvent{Token: tok})
	if tb.CaretVisible() {
		t.Fatal("expected caret hidden after one blink")
	}
	next := p.lastTimer()
	if next == tok {
		t.Fatal("expected the blink to reschedule")
	}

	w.Event(canopy.TimerEvent{Token: next})
	if !tb.CaretVisible() {
		t.Error("expected caret visible after two blinks")
	}
}

func TestTextBoxEscapeResignsFocus(t *testing.T) {
	tb := newNameBox()
	w, _ := newTestWindow(tb, canopy.Size{Width: 200, Height: 30})
	w.SetFocus(w.Root().ID())

	pressKey(w, ebiten.KeyEscape, 0)
	if !w.Focus().IsZero() {
		t.Fatalf("expected no focus, got %d", w.Focus())
	}
	if tb.Focused() || tb.CaretVisible() {
		t.Error("expected box to know it lost focus")
	}
}

func TestTextBoxTabTraversal(t *testing.T) {
	first, second := newNameBox(), newNameBox()
	col := NewColumn[form]().With(first, 0).With(second, 0)
	w, _ := newTestWindow(col, canopy.Size{Width: 300, Height: 200})

	if len(w.FocusChain()) != 2 {
		t.Fatalf("expected 2 focusable widgets, got %d", len(w.FocusChain()))
	}

	w.Event(canopy.MouseDown{MouseEvent: at(5, 5)})
	if w.Focus() != col.Child(0).ID() {
		t.Fatalf("expected first box focused, got %d", w.Focus())
	}

	pressKey(w, ebiten.KeyTab, 0)
	if w.Focus() != col.Child(1).ID() {
		t.Fatalf("expected Tab to focus the second box, got %d", w.Focus())
	}
	if first.Focused() || !second.Focused() {
		t.Error("expected focus flags to follow")
	}

	pressKey(w, ebiten.KeyTab, canopy.ModShift)
	if w.Focus() != col.Child(0).ID() {
		t.Errorf("expected Shift+Tab back to the first box, got %d", w.Focus())
	}
}

func TestTextBoxLayout(t *testing.T) {
	tb := newNameBox().WithPlaceholder("name")
	row := NewRow[form]().With(tb, 0)
	w, _ := newTestWindow(row, canopy.Size{Width: 400, Height: 100})

	want := canopy.Rect{Width: 160, Height: 27}
	if got := row.Child(0).LayoutRect(); got != want {
		t.Fatalf("expected minimum width box %v, got %v", want, got)
	}

	w.SetData(form{Name: "a rather long name indeed"})
	w.Layout(canopy.Size{Width: 400, Height: 100})
	if got := row.Child(0).LayoutRect().Width; got != 25*8+12+1 {
		t.Errorf("expected box to grow with text, got %v", got)
	}
}

func TestTextBoxCursor(t *testing.T) {
	tb := newNameBox()
	w, p := newTestWindow(tb, canopy.Size{Width: 200, Height: 30})
	w.Event(canopy.MouseMove{MouseEvent: at(5, 5)})
	if len(p.cursors) != 1 || p.cursors[0] != canopy.CursorText {
		t.Errorf("expected text cursor, got %v", p.cursors)
	}
}

func TestDropLastGrapheme(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a", ""},
		{"abc", "ab"},
		{"café", "caf"},
		{"hi👍🏽", "hi"},
	}
	for _, tt := range tests {
		if got := dropLastGrapheme(tt.in); got != tt.want {
			t.Errorf("dropLastGrapheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
