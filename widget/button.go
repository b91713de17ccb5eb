package widget

import (
	"image/color"
	"time"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/phanxgames/canopy"
)

// Button is a clickable label. It captures the pointer on press and fires
// onClick when the left button is released inside it. Hovering fades the
// background toward the hot color.
type Button[T any] struct {
	label   *Label[T]
	onClick func(ctx *canopy.EventCtx, data *T, env canopy.Env)
	fade    *canopy.Tween
	clicks  int
}

// NewButton creates a button with fixed text.
func NewButton[T any](text string, onClick func(ctx *canopy.EventCtx, data *T, env canopy.Env)) *Button[T] {
	return &Button[T]{label: NewStaticLabel[T](text), onClick: onClick}
}

// NewDynamicButton creates a button whose text is computed from the data.
func NewDynamicButton[T any](text func(T, canopy.Env) string, onClick func(ctx *canopy.EventCtx, data *T, env canopy.Env)) *Button[T] {
	return &Button[T]{label: NewLabel(text), onClick: onClick}
}

// Clicks returns how many clicks the button has fired.
func (b *Button[T]) Clicks() int { return b.clicks }

// Hover returns the hover fade progress in [0, 1].
func (b *Button[T]) Hover() float64 {
	if b.fade == nil {
		return 0
	}
	return b.fade.Value()
}

func (b *Button[T]) Event(ctx *canopy.EventCtx, ev canopy.Event, data *T, env canopy.Env) {
	switch e := ev.(type) {
	case canopy.MouseDown:
		if e.Button != canopy.MouseButtonLeft {
			return
		}
		ctx.SetActive(true)
		ctx.Invalidate()
		ctx.SetHandled()
	case canopy.MouseUp:
		if e.Button != canopy.MouseButtonLeft || !ctx.IsActive() {
			return
		}
		ctx.SetActive(false)
		ctx.Invalidate()
		ctx.SetHandled()
		bounds := canopy.RectFromOriginSize(canopy.Point{}, ctx.Size())
		if bounds.Contains(e.Pos) {
			b.clicks++
			if b.onClick != nil {
				b.onClick(ctx, data, env)
			}
		}
	case canopy.MouseMove:
		if ctx.IsHot() {
			ctx.SetCursor(canopy.CursorPointer)
		} else if !ctx.IsActive() {
			ctx.SetCursor(canopy.CursorDefault)
		}
	}
}

func (b *Button[T]) Lifecycle(ctx *canopy.LifeCycleCtx, ev canopy.LifeCycle, data T, env canopy.Env) {
	switch e := ev.(type) {
	case canopy.WidgetAdded:
		b.ensureFade(env)
	case canopy.HotChanged:
		b.ensureFade(env)
		target := 0.0
		if e.Hot {
			target = 1
		}
		b.fade.Retarget(target)
		ctx.RequestAnimFrame()
		ctx.Invalidate()
	case canopy.AnimFrame:
		b.ensureFade(env)
		b.fade.Advance(e.Nanos)
		ctx.Invalidate()
		if !b.fade.Done {
			ctx.RequestAnimFrame()
		}
	}
	b.label.Lifecycle(ctx, ev, data, env)
}

func (b *Button[T]) ensureFade(env canopy.Env) {
	if b.fade == nil {
		d := time.Duration(canopy.EnvValue(env, canopy.KeyHoverFadeMs)) * time.Millisecond
		b.fade = canopy.NewTween(0, 0, d, ease.OutQuad)
	}
}

func (b *Button[T]) Update(ctx *canopy.UpdateCtx, old, data T, env canopy.Env) {
	b.label.Update(ctx, old, data, env)
}

func (b *Button[T]) Layout(ctx *canopy.LayoutCtx, bc canopy.BoxConstraints, data T, env canopy.Env) canopy.Size {
	pad := canopy.EnvValue(env, canopy.KeyWidgetPadding)
	inner := b.label.Layout(ctx, bc.Loosen().Shrink(canopy.Size{Width: 4 * pad, Height: 2 * pad}), data, env)
	return bc.Constrain(canopy.Size{Width: inner.Width + 4*pad, Height: inner.Height + 2*pad})
}

func (b *Button[T]) Paint(ctx *canopy.PaintCtx, data T, env canopy.Env) {
	bounds := canopy.RectFromOriginSize(canopy.Point{}, ctx.Size())
	bg := lerpColor(canopy.EnvValue(env, canopy.KeyButtonColor), canopy.EnvValue(env, canopy.KeyButtonHotColor), b.Hover())
	if ctx.IsActive() {
		bg = canopy.EnvValue(env, canopy.KeyButtonActive)
	}
	ctx.FillRect(bounds, bg)
	ctx.StrokeRect(bounds, canopy.EnvValue(env, canopy.KeyBorderColor), canopy.EnvValue(env, canopy.KeyBorderWidth))

	pad := canopy.EnvValue(env, canopy.KeyWidgetPadding)
	paintInset(ctx, canopy.Vec2{X: 2 * pad, Y: pad}, func() {
		b.label.Paint(ctx, data, env)
	})
}

// lerpColor blends a toward b by t in [0, 1].
func lerpColor(a, b color.Color, t float64) color.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	mix := func(x, y uint32) uint8 {
		return uint8((float64(x) + (float64(y)-float64(x))*t) / 257)
	}
	return color.RGBA{R: mix(ar, br), G: mix(ag, bg), B: mix(ab, bb), A: mix(aa, ba)}
}

// paintInset runs f with the surface translated by offset.
func paintInset(ctx *canopy.PaintCtx, offset canopy.Vec2, f func()) {
	if err := ctx.Save(); err != nil {
		canopy.Logger().Error("saving render context failed", zap.Error(err))
		return
	}
	defer func() {
		if err := ctx.Restore(); err != nil {
			canopy.Logger().Error("restoring render context failed", zap.Error(err))
		}
	}()
	ctx.Translate(offset)
	f()
}
