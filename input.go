package canopy

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyNone is the Key of a KeyDown that only carries text input.
const KeyNone ebiten.Key = -1

const (
	keyRepeatDelay    = 30 // ticks before a held key starts repeating
	keyRepeatInterval = 3  // ticks between repeats
)

// InputFrame is one tick's worth of raw input.
type InputFrame struct {
	CursorX, CursorY float64
	Buttons          MouseButtons
	Mods             KeyModifiers
	Pressed          []ebiten.Key // keys that went down this tick
	Repeated         []ebiten.Key // held keys due for an auto-repeat
	Released         []ebiten.Key
	Chars            []rune
	Wheel            Vec2
}

func (f *InputFrame) reset() {
	*f = InputFrame{
		Pressed:  f.Pressed[:0],
		Repeated: f.Repeated[:0],
		Released: f.Released[:0],
		Chars:    f.Chars[:0],
	}
}

// InputSource fills an InputFrame once per tick.
type InputSource interface {
	Poll(f *InputFrame)
}

// EbitenInput polls Ebitengine's input state.
type EbitenInput struct {
	held []ebiten.Key
}

// Poll implements InputSource.
func (in *EbitenInput) Poll(f *InputFrame) {
	mx, my := ebiten.CursorPosition()
	f.CursorX, f.CursorY = float64(mx), float64(my)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		f.Buttons = f.Buttons.With(MouseButtonLeft)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		f.Buttons = f.Buttons.With(MouseButtonRight)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		f.Buttons = f.Buttons.With(MouseButtonMiddle)
	}
	f.Mods = readModifiers()
	f.Pressed = inpututil.AppendJustPressedKeys(f.Pressed)
	f.Released = inpututil.AppendJustReleasedKeys(f.Released)
	in.held = inpututil.AppendPressedKeys(in.held[:0])
	for _, k := range in.held {
		if d := inpututil.KeyPressDuration(k); d > keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0 {
			f.Repeated = append(f.Repeated, k)
		}
	}
	f.Chars = ebiten.AppendInputChars(f.Chars)
	wx, wy := ebiten.Wheel()
	f.Wheel = Vec2{X: wx, Y: wy}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

var pointerButtons = [...]MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle}

// inputTranslator turns successive InputFrames into events. It remembers
// the previous cursor position and buttons, and counts clicks.
type inputTranslator struct {
	doubleClickTime time.Duration
	doubleClickDist float64
	// paste reads the clipboard; nil disables Paste events.
	paste func() (string, bool)

	started    bool
	lastPos    Point
	buttons    MouseButtons
	clickCount int
	clickAt    time.Time
	clickPos   Point
	clickBtn   MouseButton
}

func (t *inputTranslator) translate(f *InputFrame, now time.Time, emit func(Event)) {
	pos := Point{X: f.CursorX, Y: f.CursorY}
	mouse := func(b MouseButton, count int) MouseEvent {
		return MouseEvent{Pos: pos, WindowPos: pos, Button: b, Buttons: f.Buttons, Mods: f.Mods, Count: count}
	}

	if !t.started || pos != t.lastPos {
		t.started = true
		t.lastPos = pos
		emit(MouseMove{mouse(MouseButtonNone, 0)})
	}

	for _, b := range pointerButtons {
		was, is := t.buttons.Has(b), f.Buttons.Has(b)
		switch {
		case !was && is:
			emit(MouseDown{mouse(b, t.countClick(b, pos, now))})
		case was && !is:
			emit(MouseUp{mouse(b, 0)})
		}
	}
	t.buttons = f.Buttons

	for _, k := range f.Pressed {
		emit(KeyDown{KeyEvent{Key: k, Mods: f.Mods}})
		if k == ebiten.KeyV && (f.Mods.Has(ModCtrl) || f.Mods.Has(ModMeta)) && t.paste != nil {
			if text, ok := t.paste(); ok {
				emit(Paste{Text: text})
			}
		}
	}
	for _, k := range f.Repeated {
		emit(KeyDown{KeyEvent{Key: k, Mods: f.Mods, Repeat: true}})
	}
	if len(f.Chars) > 0 && !f.Mods.Has(ModCtrl) && !f.Mods.Has(ModMeta) {
		emit(KeyDown{KeyEvent{Key: KeyNone, Text: string(f.Chars), Mods: f.Mods}})
	}
	for _, k := range f.Released {
		emit(KeyUp{KeyEvent{Key: k, Mods: f.Mods}})
	}

	if f.Wheel != (Vec2{}) {
		if f.Mods.Has(ModCtrl) {
			emit(Zoom{Delta: f.Wheel.Y})
		} else {
			emit(Wheel{Delta: f.Wheel, Mods: f.Mods})
		}
	}
}

// countClick returns the click count for a press of b at pos.
func (t *inputTranslator) countClick(b MouseButton, pos Point, now time.Time) int {
	dx, dy := pos.X-t.clickPos.X, pos.Y-t.clickPos.Y
	near := dx*dx+dy*dy <= t.doubleClickDist*t.doubleClickDist
	if t.clickCount > 0 && b == t.clickBtn && near && now.Sub(t.clickAt) <= t.doubleClickTime {
		t.clickCount++
	} else {
		t.clickCount = 1
	}
	t.clickAt = now
	t.clickPos = pos
	t.clickBtn = b
	return t.clickCount
}
