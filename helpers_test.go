package canopy

import (
	"image/color"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testData struct{ N int }

func (d testData) Same(o testData) bool { return d.N == o.N }

// probe is a leaf widget that records everything it receives.
type probe struct {
	size      Size
	focusable bool

	events     []Event
	lifecycles []LifeCycle
	updates    int
	paints     int

	onEvent     func(ctx *EventCtx, ev Event, data *testData)
	onLifecycle func(ctx *LifeCycleCtx, ev LifeCycle)
	onPaint     func(ctx *PaintCtx)
}

func (p *probe) Event(ctx *EventCtx, ev Event, data *testData, _ Env) {
	p.events = append(p.events, ev)
	if p.onEvent != nil {
		p.onEvent(ctx, ev, data)
	}
}

func (p *probe) Lifecycle(ctx *LifeCycleCtx, ev LifeCycle, _ testData, _ Env) {
	p.lifecycles = append(p.lifecycles, ev)
	if _, ok := ev.(Register); ok && p.focusable {
		ctx.RegisterForFocus()
	}
	if p.onLifecycle != nil {
		p.onLifecycle(ctx, ev)
	}
}

func (p *probe) Update(*UpdateCtx, testData, testData, Env) { p.updates++ }

func (p *probe) Layout(_ *LayoutCtx, bc BoxConstraints, _ testData, _ Env) Size {
	return bc.Constrain(p.size)
}

func (p *probe) Paint(ctx *PaintCtx, _ testData, _ Env) {
	p.paints++
	ctx.FillRect(RectFromOriginSize(Point{}, ctx.Size()), color.White)
	if p.onPaint != nil {
		p.onPaint(ctx)
	}
}

func (p *probe) reset() {
	p.events = nil
	p.lifecycles = nil
}

func eventsOf[E Event](p *probe) []E {
	var out []E
	for _, ev := range p.events {
		if e, ok := ev.(E); ok {
			out = append(out, e)
		}
	}
	return out
}

func lifecyclesOf[L LifeCycle](p *probe) []L {
	var out []L
	for _, ev := range p.lifecycles {
		if e, ok := ev.(L); ok {
			out = append(out, e)
		}
	}
	return out
}

// group places children at fixed rectangles.
type group struct {
	children []*WidgetPod[testData]
	rects    []Rect
	events   []Event
}

func (g *group) add(w Widget[testData], r Rect) *WidgetPod[testData] {
	pod := NewWidgetPod(w)
	g.children = append(g.children, pod)
	g.rects = append(g.rects, r)
	return pod
}

// remove drops child i without touching the backing array the event pass
// may still be ranging over.
func (g *group) remove(i int) {
	children := make([]*WidgetPod[testData], 0, len(g.children)-1)
	children = append(children, g.children[:i]...)
	g.children = append(children, g.children[i+1:]...)
	rects := make([]Rect, 0, len(g.rects)-1)
	rects = append(rects, g.rects[:i]...)
	g.rects = append(rects, g.rects[i+1:]...)
}

func (g *group) Event(ctx *EventCtx, ev Event, data *testData, env Env) {
	g.events = append(g.events, ev)
	for _, c := range g.children {
		c.Event(ctx, ev, data, env)
	}
}

func (g *group) Lifecycle(ctx *LifeCycleCtx, ev LifeCycle, data testData, env Env) {
	for _, c := range g.children {
		c.Lifecycle(ctx, ev, data, env)
	}
}

func (g *group) Update(ctx *UpdateCtx, _, data testData, env Env) {
	for _, c := range g.children {
		c.Update(ctx, data, env)
	}
}

func (g *group) Layout(ctx *LayoutCtx, bc BoxConstraints, data testData, env Env) Size {
	for i, c := range g.children {
		c.Layout(ctx, Tight(g.rects[i].Size()), data, env)
		c.SetLayoutRect(g.rects[i])
	}
	return bc.Max
}

func (g *group) Paint(ctx *PaintCtx, data testData, env Env) {
	for _, c := range g.children {
		c.PaintWithOffset(ctx, data, env)
	}
}

type fakePlatform struct {
	titles        []string
	cursors       []Cursor
	deadlines     []time.Time
	invalidations int
}

func (p *fakePlatform) SetTitle(title string) { p.titles = append(p.titles, title) }

func (p *fakePlatform) Invalidate() { p.invalidations++ }

func (p *fakePlatform) Text() TextFactory { return monoTextFactory{} }

func (p *fakePlatform) SetCursor(c Cursor) { p.cursors = append(p.cursors, c) }

func (p *fakePlatform) RequestTimer(deadline time.Time) TimerToken {
	p.deadlines = append(p.deadlines, deadline)
	return NextTimerToken()
}

type recordingSink struct{ got []QueuedCommand }

func (s *recordingSink) EmitCommand(qc QueuedCommand) { s.got = append(s.got, qc) }

func (s *recordingSink) selectors() []Selector {
	out := make([]Selector, len(s.got))
	for i, qc := range s.got {
		out[i] = qc.Command.Selector
	}
	return out
}

// fixture is a window over three focusable 10x10 leaves in a row at x=0,
// x=20 and x=40.
type fixture struct {
	w       *Window[testData]
	g       *group
	a, b, c *probe
	plat    *fakePlatform
}

func newFixture() *fixture {
	f := &fixture{
		g:    &group{},
		a:    &probe{focusable: true},
		b:    &probe{focusable: true},
		c:    &probe{focusable: true},
		plat: &fakePlatform{},
	}
	f.g.add(f.a, Rect{X: 0, Y: 0, Width: 10, Height: 10})
	f.g.add(f.b, Rect{X: 20, Y: 0, Width: 10, Height: 10})
	f.g.add(f.c, Rect{X: 40, Y: 0, Width: 10, Height: 10})
	f.w = NewWindow[testData](f.g, testData{}, Env{})
	f.w.SetPlatform(f.plat)
	f.w.Layout(Size{Width: 100, Height: 100})
	return f
}

func (f *fixture) pod(i int) *WidgetPod[testData] { return f.g.children[i] }

func (f *fixture) resetProbes() {
	f.a.reset()
	f.b.reset()
	f.c.reset()
}

func mouse(x, y float64) MouseEvent {
	return MouseEvent{Pos: Point{X: x, Y: y}, WindowPos: Point{X: x, Y: y}, Button: MouseButtonLeft}
}

// observeLogs routes canopy logging to an observer for the rest of the test.
func observeLogs(t interface{ Cleanup(func()) }, level zapcore.Level) *observer.ObservedLogs {
	core, logs := observer.New(level)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}
