package widget

import (
	"strings"
	"time"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rivo/uniseg"

	"github.com/phanxgames/canopy"
)

// selectorResetBlink is sent by a TextBox to itself when it gains focus from
// a lifecycle event, where timers cannot be requested.
const selectorResetBlink canopy.Selector = "canopy.textbox.reset-blink"

// TextBox edits one line of text held in the data. It takes part in focus
// traversal: Tab and Shift+Tab move focus, Escape resigns it.
type TextBox[T any] struct {
	get         func(T) string
	set         func(*T, string)
	placeholder string
	now         func() time.Time

	focused    bool
	caretOn    bool
	blinkToken canopy.TimerToken
	layout     canopy.TextLayout
}

// NewTextBox creates a text box reading its text with get and writing edits
// back with set.
func NewTextBox[T any](get func(T) string, set func(*T, string)) *TextBox[T] {
	return &TextBox[T]{get: get, set: set, now: time.Now}
}

// WithPlaceholder sets the text shown while the box is empty.
func (t *TextBox[T]) WithPlaceholder(s string) *TextBox[T] {
	t.placeholder = s
	return t
}

// Focused reports whether the box holds keyboard focus.
func (t *TextBox[T]) Focused() bool { return t.focused }

// CaretVisible reports whether the caret is in the visible half of its blink.
func (t *TextBox[T]) CaretVisible() bool { return t.focused && t.caretOn }

func (t *TextBox[T]) Event(ctx *canopy.EventCtx, ev canopy.Event, data *T, env canopy.Env) {
	switch e := ev.(type) {
	case canopy.MouseDown:
		if e.Button != canopy.MouseButtonLeft {
			return
		}
		ctx.RequestFocus()
		t.resetBlink(ctx, env)
		ctx.SetHandled()
	case canopy.MouseMove:
		if ctx.IsHot() {
			ctx.SetCursor(canopy.CursorText)
		}
	case canopy.KeyDown:
		t.keyDown(ctx, e.KeyEvent, data, env)
	case canopy.Paste:
		t.insert(ctx, data, firstLine(e.Text))
		t.resetBlink(ctx, env)
		ctx.SetHandled()
	case canopy.TimerEvent:
		if e.Token != t.blinkToken || !t.focused {
			return
		}
		t.caretOn = !t.caretOn
		t.blinkToken = ctx.RequestTimer(t.now().Add(blinkInterval(env)))
		ctx.Invalidate()
	case canopy.CommandEvent:
		if e.Command.Is(selectorResetBlink) {
			t.resetBlink(ctx, env)
		}
	}
}

func (t *TextBox[T]) keyDown(ctx *canopy.EventCtx, e canopy.KeyEvent, data *T, env canopy.Env) {
	switch e.Key {
	case ebiten.KeyTab:
		if e.Mods.Has(canopy.ModShift) {
			ctx.FocusPrev()
		} else {
			ctx.FocusNext()
		}
	case ebiten.KeyEscape:
		ctx.ResignFocus()
	case ebiten.KeyBackspace:
		s := t.get(*data)
		if s == "" {
			return
		}
		t.set(data, dropLastGrapheme(s))
		ctx.Invalidate()
	case canopy.KeyNone:
		t.insert(ctx, data, e.Text)
	default:
		return
	}
	t.resetBlink(ctx, env)
	ctx.SetHandled()
}

func (t *TextBox[T]) insert(ctx *canopy.EventCtx, data *T, s string) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return
	}
	t.set(data, t.get(*data)+s)
	ctx.Invalidate()
}

func (t *TextBox[T]) resetBlink(ctx *canopy.EventCtx, env canopy.Env) {
	t.caretOn = true
	t.blinkToken = ctx.RequestTimer(t.now().Add(blinkInterval(env)))
	ctx.Invalidate()
}

func (t *TextBox[T]) Lifecycle(ctx *canopy.LifeCycleCtx, ev canopy.LifeCycle, _ T, _ canopy.Env) {
	switch e := ev.(type) {
	case canopy.Register:
		ctx.RegisterForFocus()
	case canopy.FocusChanged:
		t.focused = e.Focused
		t.caretOn = e.Focused
		if e.Focused {
			ctx.SubmitCommand(canopy.NewCommand(selectorResetBlink, nil), canopy.WidgetTarget(ctx.WidgetID()))
		}
		ctx.Invalidate()
	}
}

func (t *TextBox[T]) Update(ctx *canopy.UpdateCtx, old, data T, _ canopy.Env) {
	if t.get(old) != t.get(data) {
		t.layout = nil
	}
	ctx.Invalidate()
}

func (t *TextBox[T]) display(data T) (string, bool) {
	if s := t.get(data); s != "" {
		return s, false
	}
	return t.placeholder, true
}

func (t *TextBox[T]) Layout(ctx *canopy.LayoutCtx, bc canopy.BoxConstraints, data T, env canopy.Env) canopy.Size {
	s, _ := t.display(data)
	pad := canopy.EnvValue(env, canopy.KeyWidgetPadding)
	t.layout = ctx.Text().NewLayout(s, canopy.EnvValue(env, canopy.KeyTextSize))
	ts := t.layout.Size()
	width := max(canopy.EnvValue(env, canopy.KeyTextBoxMinWidth), ts.Width+2*pad+1)
	return bc.Constrain(canopy.Size{Width: width, Height: ts.Height + 2*pad})
}

func (t *TextBox[T]) Paint(ctx *canopy.PaintCtx, data T, env canopy.Env) {
	s, placeholder := t.display(data)
	size := canopy.EnvValue(env, canopy.KeyTextSize)
	if t.layout == nil || t.layout.Text() != s {
		t.layout = ctx.Text().NewLayout(s, size)
	}
	bounds := canopy.RectFromOriginSize(canopy.Point{}, ctx.Size())
	ctx.FillRect(bounds, canopy.EnvValue(env, canopy.KeyBackground))
	border := canopy.EnvValue(env, canopy.KeyBorderColor)
	if ctx.HasFocus() {
		border = canopy.EnvValue(env, canopy.KeyFocusColor)
	}
	ctx.StrokeRect(bounds, border, canopy.EnvValue(env, canopy.KeyBorderWidth))

	pad := canopy.EnvValue(env, canopy.KeyWidgetPadding)
	textColor := canopy.EnvValue(env, canopy.KeyTextColor)
	if placeholder {
		textColor = lerpColor(textColor, canopy.EnvValue(env, canopy.KeyBackground), 0.5)
	}
	ctx.DrawText(t.layout, canopy.Point{X: pad, Y: pad}, textColor)

	if t.CaretVisible() {
		x := pad
		if !placeholder {
			x += t.layout.Size().Width
		}
		ctx.FillRect(canopy.Rect{X: x, Y: pad, Width: 1, Height: t.layout.Size().Height}, textColor)
	}
}

func blinkInterval(env canopy.Env) time.Duration {
	return time.Duration(canopy.EnvValue(env, canopy.KeyCaretBlinkMs)) * time.Millisecond
}

// dropLastGrapheme removes the last user-perceived character of s.
func dropLastGrapheme(s string) string {
	last := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last, _ = g.Positions()
	}
	return s[:last]
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}
