package widget

import "github.com/phanxgames/canopy"

// IdentityWrapper gives a widget a known id, so other widgets can target it
// with commands or request focus for it.
type IdentityWrapper[T any] struct {
	id    canopy.WidgetID
	inner canopy.Widget[T]
}

// WithID wraps inner under id. A zero id mints a fresh one.
func WithID[T any](id canopy.WidgetID, inner canopy.Widget[T]) *IdentityWrapper[T] {
	if id.IsZero() {
		id = canopy.NextWidgetID()
	}
	return &IdentityWrapper[T]{id: id, inner: inner}
}

// ID implements canopy.Identified.
func (w *IdentityWrapper[T]) ID() (canopy.WidgetID, bool) { return w.id, true }

// Inner returns the wrapped widget.
func (w *IdentityWrapper[T]) Inner() canopy.Widget[T] { return w.inner }

func (w *IdentityWrapper[T]) Event(ctx *canopy.EventCtx, ev canopy.Event, data *T, env canopy.Env) {
	w.inner.Event(ctx, ev, data, env)
}

func (w *IdentityWrapper[T]) Lifecycle(ctx *canopy.LifeCycleCtx, ev canopy.LifeCycle, data T, env canopy.Env) {
	w.inner.Lifecycle(ctx, ev, data, env)
}

func (w *IdentityWrapper[T]) Update(ctx *canopy.UpdateCtx, old, data T, env canopy.Env) {
	w.inner.Update(ctx, old, data, env)
}

func (w *IdentityWrapper[T]) Layout(ctx *canopy.LayoutCtx, bc canopy.BoxConstraints, data T, env canopy.Env) canopy.Size {
	return w.inner.Layout(ctx, bc, data, env)
}

func (w *IdentityWrapper[T]) Paint(ctx *canopy.PaintCtx, data T, env canopy.Env) {
	w.inner.Paint(ctx, data, env)
}
