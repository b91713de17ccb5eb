package widget

import (
	"testing"

	"github.com/phanxgames/canopy"
)

func TestPaddingInsetsChild(t *testing.T) {
	inner := &box{size: canopy.Size{Width: 10, Height: 10}}
	pad := NewPadding[form](8, inner)
	row := NewRow[form]().With(pad, 0)
	newTestWindow(row, canopy.Size{Width: 100, Height: 100})

	if got := pad.Child().LayoutRect(); got != (canopy.Rect{X: 8, Y: 8, Width: 10, Height: 10}) {
		t.Errorf("unexpected child rect %v", got)
	}
	if got := row.Child(0).LayoutRect(); got != (canopy.Rect{Width: 26, Height: 26}) {
		t.Errorf("unexpected padded rect %v", got)
	}
}

func TestPaddingTranslatesEvents(t *testing.T) {
	b := newCountingButton()
	pad := NewPadding[form](20, b)
	w, _ := newTestWindow(pad, canopy.Size{Width: 100, Height: 100})

	click(w, 10, 10)
	if b.Clicks() != 0 {
		t.Fatal("expected a click in the inset to miss the button")
	}
	click(w, 30, 30)
	if b.Clicks() != 1 {
		t.Errorf("expected 1 click, got %d", b.Clicks())
	}
}

func TestIdentityWrapper(t *testing.T) {
	id := canopy.NextWidgetID()
	inner := &box{size: canopy.Size{Width: 10, Height: 10}}
	wrapped := WithID[form](id, inner)
	if wrapped.Inner() != canopy.Widget[form](inner) {
		t.Fatal("expected the inner widget")
	}

	col := NewColumn[form]().With(wrapped, 0)
	w, _ := newTestWindow(col, canopy.Size{Width: 100, Height: 100})
	if col.Child(0).ID() != id {
		t.Fatalf("expected pod id %d, got %d", id, col.Child(0).ID())
	}
	if !w.HasWidget(id) {
		t.Error("expected declared id registered")
	}
	if inner.added != 1 {
		t.Errorf("expected lifecycle forwarded, got %d WidgetAdded", inner.added)
	}

	minted := WithID[form](0, inner)
	if gotID, ok := minted.ID(); !ok || gotID.IsZero() || gotID == id {
		t.Errorf("expected a fresh id, got %d", gotID)
	}
}

func TestIdentityTargetedCommand(t *testing.T) {
	id := canopy.NextWidgetID()
	tb := newNameBox()
	col := NewColumn[form]().
		With(newNameBox(), 0).
		With(WithID[form](id, tb), 0)
	w, _ := newTestWindow(col, canopy.Size{Width: 300, Height: 200})

	w.SubmitCommand(canopy.NewCommand(selectorResetBlink, nil), canopy.WidgetTarget(id))
	if !tb.caretOn {
		t.Error("expected the command to reach the wrapped box")
	}
}
