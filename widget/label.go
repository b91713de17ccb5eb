package widget

import "github.com/phanxgames/canopy"

// Label displays a single line of text computed from the data.
type Label[T any] struct {
	text    func(T, canopy.Env) string
	current string
	layout  canopy.TextLayout
}

// NewLabel creates a label whose text is recomputed on every update.
func NewLabel[T any](text func(T, canopy.Env) string) *Label[T] {
	return &Label[T]{text: text}
}

// NewStaticLabel creates a label with fixed text.
func NewStaticLabel[T any](s string) *Label[T] {
	return &Label[T]{text: func(T, canopy.Env) string { return s }, current: s}
}

// Text returns the text currently displayed.
func (l *Label[T]) Text() string { return l.current }

func (l *Label[T]) Event(*canopy.EventCtx, canopy.Event, *T, canopy.Env) {}

func (l *Label[T]) Lifecycle(_ *canopy.LifeCycleCtx, ev canopy.LifeCycle, data T, env canopy.Env) {
	if _, ok := ev.(canopy.WidgetAdded); ok {
		l.current = l.text(data, env)
	}
}

func (l *Label[T]) Update(ctx *canopy.UpdateCtx, _, data T, env canopy.Env) {
	if s := l.text(data, env); s != l.current {
		l.current = s
		l.layout = nil
	}
	// The text size or color may come from a changed env.
	ctx.Invalidate()
}

func (l *Label[T]) Layout(ctx *canopy.LayoutCtx, bc canopy.BoxConstraints, _ T, env canopy.Env) canopy.Size {
	l.layout = ctx.Text().NewLayout(l.current, canopy.EnvValue(env, canopy.KeyTextSize))
	return bc.Constrain(l.layout.Size())
}

func (l *Label[T]) Paint(ctx *canopy.PaintCtx, _ T, env canopy.Env) {
	if l.layout == nil || l.layout.Text() != l.current {
		l.layout = ctx.Text().NewLayout(l.current, canopy.EnvValue(env, canopy.KeyTextSize))
	}
	ctx.DrawText(l.layout, canopy.Point{}, canopy.EnvValue(env, canopy.KeyTextColor))
}
