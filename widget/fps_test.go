package widget

import (
	"testing"
	"time"

	"github.com/phanxgames/canopy"
)

func TestFPSRefresh(t *testing.T) {
	f := NewFPS[form]()
	f.fps = func() float64 { return 59.94 }
	f.tps = func() float64 { return 60 }
	w, _ := newTestWindow(f, canopy.Size{Width: 200, Height: 20})

	if !w.WantsAnimFrame() {
		t.Fatal("expected FPS to request frames once added")
	}
	w.AnimFrame(uint64(300 * time.Millisecond))
	if f.Text() != "FPS: -" {
		t.Fatalf("expected no refresh before 500ms, got %q", f.Text())
	}
	if !w.WantsAnimFrame() {
		t.Fatal("expected FPS to keep requesting frames")
	}

	w.Paint(canopy.NewDisplayList())
	w.AnimFrame(uint64(300 * time.Millisecond))
	if want := "FPS: 59.9  TPS: 60.0"; f.Text() != want {
		t.Errorf("expected %q, got %q", want, f.Text())
	}
	if f.label.Text() != f.Text() {
		t.Errorf("expected label %q, got %q", f.Text(), f.label.Text())
	}
	if !w.NeedsPaint() {
		t.Error("expected refresh to invalidate")
	}
}
