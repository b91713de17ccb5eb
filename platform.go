package canopy

import "time"

// Cursor is a pointer shape a widget may ask for while handling events.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorText
	CursorPointer
	CursorCrosshair
	CursorMove
	CursorNotAllowed
	CursorEWResize
	CursorNSResize
)

// TextLayout is a measured, ready-to-draw run of text.
type TextLayout interface {
	Text() string
	Size() Size
	// Baseline is the distance from the top of the layout to the baseline.
	Baseline() float64
}

// TextFactory creates text layouts.
type TextFactory interface {
	NewLayout(text string, size float64) TextLayout
}

// WindowHandle is the part of the platform window widgets may talk to
// directly.
type WindowHandle interface {
	SetTitle(title string)
	// Invalidate asks for a repaint of the whole window.
	Invalidate()
}

// Platform is the windowing layer a Window runs on. Implementations must not
// block.
type Platform interface {
	WindowHandle
	Text() TextFactory
	// RequestTimer schedules a TimerEvent carrying the returned token at or
	// after deadline.
	RequestTimer(deadline time.Time) TimerToken
	SetCursor(c Cursor)
}

// nopPlatform is used when a Window is created without a platform. Timers
// are minted but never fire.
type nopPlatform struct {
	text TextFactory
}

func (p *nopPlatform) SetTitle(string)  {}
func (p *nopPlatform) Invalidate()      {}
func (p *nopPlatform) SetCursor(Cursor) {}

func (p *nopPlatform) Text() TextFactory {
	if p.text == nil {
		p.text = monoTextFactory{}
	}
	return p.text
}

func (p *nopPlatform) RequestTimer(time.Time) TimerToken {
	return NextTimerToken()
}

// monoTextFactory measures text as fixed-width glyphs. It needs no font data,
// which keeps headless windows usable.
type monoTextFactory struct{}

type monoLayout struct {
	text string
	size Size
	base float64
}

func (monoTextFactory) NewLayout(text string, size float64) TextLayout {
	n := 0
	for range text {
		n++
	}
	return monoLayout{
		text: text,
		size: Size{Width: float64(n) * size * 0.6, Height: size * 1.2},
		base: size,
	}
}

func (l monoLayout) Text() string      { return l.text }
func (l monoLayout) Size() Size        { return l.size }
func (l monoLayout) Baseline() float64 { return l.base }
