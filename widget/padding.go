package widget

import "github.com/phanxgames/canopy"

// Padding insets a single child.
type Padding[T canopy.Data[T]] struct {
	insets float64
	child  *canopy.WidgetPod[T]
}

// NewPadding wraps child with insets on every side.
func NewPadding[T canopy.Data[T]](insets float64, child canopy.Widget[T]) *Padding[T] {
	return &Padding[T]{insets: insets, child: canopy.NewWidgetPod(child)}
}

// Child returns the wrapped pod.
func (p *Padding[T]) Child() *canopy.WidgetPod[T] { return p.child }

func (p *Padding[T]) Event(ctx *canopy.EventCtx, ev canopy.Event, data *T, env canopy.Env) {
	p.child.Event(ctx, ev, data, env)
}

func (p *Padding[T]) Lifecycle(ctx *canopy.LifeCycleCtx, ev canopy.LifeCycle, data T, env canopy.Env) {
	p.child.Lifecycle(ctx, ev, data, env)
}

func (p *Padding[T]) Update(ctx *canopy.UpdateCtx, _, data T, env canopy.Env) {
	p.child.Update(ctx, data, env)
}

func (p *Padding[T]) Layout(ctx *canopy.LayoutCtx, bc canopy.BoxConstraints, data T, env canopy.Env) canopy.Size {
	d := 2 * p.insets
	size := p.child.Layout(ctx, bc.Shrink(canopy.Size{Width: d, Height: d}), data, env)
	p.child.SetLayoutRect(canopy.RectFromOriginSize(canopy.Point{X: p.insets, Y: p.insets}, size))
	return bc.Constrain(canopy.Size{Width: size.Width + d, Height: size.Height + d})
}

func (p *Padding[T]) Paint(ctx *canopy.PaintCtx, data T, env canopy.Env) {
	p.child.PaintWithOffset(ctx, data, env)
}
