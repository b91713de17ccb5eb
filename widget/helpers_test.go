package widget

import (
	"image/color"
	"time"

	"github.com/phanxgames/canopy"
)

type form struct {
	Name  string
	Count int
}

func (f form) Same(o form) bool { return f == o }

// fixedText measures every rune as 8px wide and size px tall.
type fixedText struct{}

type fixedLayout struct {
	text string
	size canopy.Size
}

func (fixedText) NewLayout(text string, size float64) canopy.TextLayout {
	return fixedLayout{text: text, size: canopy.Size{Width: 8 * float64(len([]rune(text))), Height: size}}
}

func (l fixedLayout) Text() string { return l.text }

func (l fixedLayout) Size() canopy.Size { return l.size }

func (l fixedLayout) Baseline() float64 { return l.size.Height }

type testPlatform struct {
	cursors []canopy.Cursor
	timers  []canopy.TimerToken
}

func (p *testPlatform) SetTitle(string) {}

func (p *testPlatform) Invalidate() {}

func (p *testPlatform) Text() canopy.TextFactory { return fixedText{} }

func (p *testPlatform) SetCursor(c canopy.Cursor) { p.cursors = append(p.cursors, c) }

func (p *testPlatform) RequestTimer(time.Time) canopy.TimerToken {
	tok := canopy.NextTimerToken()
	p.timers = append(p.timers, tok)
	return tok
}

func (p *testPlatform) lastTimer() canopy.TimerToken {
	if len(p.timers) == 0 {
		return 0
	}
	return p.timers[len(p.timers)-1]
}

// box is a fixed-size leaf that records lifecycle events.
type box struct {
	size  canopy.Size
	added int
}

func (b *box) Event(*canopy.EventCtx, canopy.Event, *form, canopy.Env) {}

func (b *box) Lifecycle(_ *canopy.LifeCycleCtx, ev canopy.LifeCycle, _ form, _ canopy.Env) {
	if _, ok := ev.(canopy.WidgetAdded); ok {
		b.added++
	}
}

func (b *box) Update(*canopy.UpdateCtx, form, form, canopy.Env) {}

func (b *box) Layout(_ *canopy.LayoutCtx, bc canopy.BoxConstraints, _ form, _ canopy.Env) canopy.Size {
	return bc.Constrain(b.size)
}

func (b *box) Paint(ctx *canopy.PaintCtx, _ form, _ canopy.Env) {
	ctx.FillRect(canopy.RectFromOriginSize(canopy.Point{}, ctx.Size()), color.White)
}

func newTestWindow(root canopy.Widget[form], size canopy.Size) (*canopy.Window[form], *testPlatform) {
	w := canopy.NewWindow[form](root, form{}, canopy.Env{})
	p := &testPlatform{}
	w.SetPlatform(p)
	w.Layout(size)
	return w, p
}

func at(x, y float64) canopy.MouseEvent {
	pos := canopy.Point{X: x, Y: y}
	return canopy.MouseEvent{Pos: pos, WindowPos: pos, Button: canopy.MouseButtonLeft}
}

func click(w *canopy.Window[form], x, y float64) {
	w.Event(canopy.MouseMove{MouseEvent: at(x, y)})
	w.Event(canopy.MouseDown{MouseEvent: at(x, y)})
	w.Event(canopy.MouseUp{MouseEvent: at(x, y)})
}
