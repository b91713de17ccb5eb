package widget

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/canopy"
)

const fpsRefresh = 500 * time.Millisecond

// FPS shows the current frame and tick rates, refreshed about twice a
// second. It keeps requesting animation frames for as long as it is in the
// tree.
type FPS[T any] struct {
	label   *Label[T]
	text    string
	elapsed time.Duration
	fps     func() float64
	tps     func() float64
}

// NewFPS creates an FPS readout.
func NewFPS[T any]() *FPS[T] {
	f := &FPS[T]{fps: ebiten.ActualFPS, tps: ebiten.ActualTPS, text: "FPS: -"}
	f.label = NewLabel(func(T, canopy.Env) string { return f.text })
	return f
}

// Text returns the readout as last refreshed.
func (f *FPS[T]) Text() string { return f.text }

func (f *FPS[T]) Event(*canopy.EventCtx, canopy.Event, *T, canopy.Env) {}

func (f *FPS[T]) Lifecycle(ctx *canopy.LifeCycleCtx, ev canopy.LifeCycle, data T, env canopy.Env) {
	switch e := ev.(type) {
	case canopy.WidgetAdded:
		ctx.RequestAnimFrame()
	case canopy.AnimFrame:
		f.elapsed += time.Duration(e.Nanos)
		if f.elapsed >= fpsRefresh {
			f.elapsed = 0
			f.text = fmt.Sprintf("FPS: %.1f  TPS: %.1f", f.fps(), f.tps())
			f.label.current = f.text
			f.label.layout = nil
			ctx.Invalidate()
		}
		ctx.RequestAnimFrame()
	}
	f.label.Lifecycle(ctx, ev, data, env)
}

func (f *FPS[T]) Update(ctx *canopy.UpdateCtx, old, data T, env canopy.Env) {
	f.label.Update(ctx, old, data, env)
}

func (f *FPS[T]) Layout(ctx *canopy.LayoutCtx, bc canopy.BoxConstraints, data T, env canopy.Env) canopy.Size {
	return f.label.Layout(ctx, bc, data, env)
}

func (f *FPS[T]) Paint(ctx *canopy.PaintCtx, data T, env canopy.Env) {
	// Semi-transparent background for readability.
	ctx.FillRect(canopy.RectFromOriginSize(canopy.Point{}, ctx.Size()), color.RGBA{0, 0, 0, 128})
	f.label.Paint(ctx, data, env)
}
