package canopy

import "github.com/hajimehoshi/ebiten/v2"

// syntheticInput is one injected tick of input. Window coordinates are used,
// matching what a screenshot shows.
type syntheticInput struct {
	x, y     float64
	buttons  MouseButtons
	mods     KeyModifiers
	pressed  []ebiten.Key
	released []ebiten.Key
	chars    []rune
	wheel    Vec2
}

func (h *Host[T]) inject(in syntheticInput) {
	h.injectPos = Point{X: in.x, Y: in.y}
	h.injectQueue = append(h.injectQueue, in)
}

// InjectPress queues a left button press at the given window coordinates.
// The event is consumed on the next tick instead of real input.
func (h *Host[T]) InjectPress(x, y float64) {
	h.inject(syntheticInput{x: x, y: y, buttons: MouseButtons(0).With(MouseButtonLeft)})
}

// InjectMove queues a pointer move with the left button held. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (h *Host[T]) InjectMove(x, y float64) {
	h.inject(syntheticInput{x: x, y: y, buttons: MouseButtons(0).With(MouseButtonLeft)})
}

// InjectHover queues a pointer move with no button held.
func (h *Host[T]) InjectHover(x, y float64) {
	h.inject(syntheticInput{x: x, y: y})
}

// InjectRelease queues a left button release at the given window coordinates.
func (h *Host[T]) InjectRelease(x, y float64) {
	h.inject(syntheticInput{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two ticks.
func (h *Host[T]) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate ticks, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (h *Host[T]) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		h.InjectMove(x, y)
	}
	h.InjectRelease(toX, toY)
}

// InjectKey queues a key press and its release with the given modifiers, at
// the last injected pointer position. Consumes two ticks.
func (h *Host[T]) InjectKey(key ebiten.Key, mods KeyModifiers) {
	at := h.injectPos
	h.inject(syntheticInput{x: at.X, y: at.Y, mods: mods, pressed: []ebiten.Key{key}})
	h.inject(syntheticInput{x: at.X, y: at.Y, mods: mods, released: []ebiten.Key{key}})
}

// InjectText queues typed characters. Consumes one tick.
func (h *Host[T]) InjectText(s string) {
	at := h.injectPos
	h.inject(syntheticInput{x: at.X, y: at.Y, chars: []rune(s)})
}

// InjectWheel queues a scroll at the last injected pointer position.
func (h *Host[T]) InjectWheel(dx, dy float64) {
	at := h.injectPos
	h.inject(syntheticInput{x: at.X, y: at.Y, wheel: Vec2{X: dx, Y: dy}})
}

// popInjected moves the next injected tick into f. It reports false when the
// queue is empty and real input should be polled instead.
func (h *Host[T]) popInjected(f *InputFrame) bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	in := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	f.CursorX, f.CursorY = in.x, in.y
	f.Buttons = in.buttons
	f.Mods = in.mods
	f.Pressed = append(f.Pressed, in.pressed...)
	f.Released = append(f.Released, in.released...)
	f.Chars = append(f.Chars, in.chars...)
	f.Wheel = in.wheel
	return true
}

// Pending reports how many injected ticks have not been consumed yet.
func (h *Host[T]) Pending() int { return len(h.injectQueue) }
