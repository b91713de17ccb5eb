package canopy

import "github.com/hajimehoshi/ebiten/v2"

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonNone   MouseButton = iota // no button (moves)
	MouseButtonLeft                      // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// MouseButtons is a bitmask of the buttons held during a mouse event.
type MouseButtons uint8

// Has reports whether b is held.
func (bs MouseButtons) Has(b MouseButton) bool {
	return b != MouseButtonNone && bs&(1<<b) != 0
}

// With returns bs with b added.
func (bs MouseButtons) With(b MouseButton) MouseButtons {
	if b == MouseButtonNone {
		return bs
	}
	return bs | 1<<b
}

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether m is held.
func (mods KeyModifiers) Has(m KeyModifiers) bool { return mods&m == m }

// MouseEvent is the payload of pointer events. Pos is relative to the widget
// receiving the event; WindowPos is relative to the window.
type MouseEvent struct {
	Pos       Point
	WindowPos Point
	Button    MouseButton
	Buttons   MouseButtons
	Mods      KeyModifiers
	Count     int // click count for down events
}

// KeyEvent is the payload of keyboard events. Text holds the characters the
// key produced, if any.
type KeyEvent struct {
	Key    ebiten.Key
	Text   string
	Mods   KeyModifiers
	Repeat bool
}

// Event is an input or command event propagated by the event pass.
type Event interface {
	isEvent()
}

type (
	// SizeEvent reports the window size. Only the root widget receives it.
	SizeEvent struct{ Size Size }
	// MouseDown is a pointer press.
	MouseDown struct{ MouseEvent }
	// MouseUp is a pointer release.
	MouseUp struct{ MouseEvent }
	// MouseMove is a pointer motion.
	MouseMove struct{ MouseEvent }
	// KeyDown is a key press. Delivered along the focus path.
	KeyDown struct{ KeyEvent }
	// KeyUp is a key release. Delivered along the focus path.
	KeyUp struct{ KeyEvent }
	// Paste carries clipboard text. Delivered along the focus path.
	Paste struct{ Text string }
	// Wheel is a scroll wheel or trackpad scroll.
	Wheel struct {
		Delta Vec2
		Mods  KeyModifiers
	}
	// Zoom is a pinch or ctrl-wheel zoom delta.
	Zoom struct{ Delta float64 }
	// TimerEvent fires when a timer requested with RequestTimer expires.
	TimerEvent struct{ Token TimerToken }
	// CommandEvent is a command addressed to every widget that receives it.
	CommandEvent struct{ Command Command }
	// TargetedCommand is a command on its way to a specific target.
	TargetedCommand struct {
		Target  Target
		Command Command
	}
)

func (SizeEvent) isEvent()       {}
func (MouseDown) isEvent()       {}
func (MouseUp) isEvent()         {}
func (MouseMove) isEvent()       {}
func (KeyDown) isEvent()         {}
func (KeyUp) isEvent()           {}
func (Paste) isEvent()           {}
func (Wheel) isEvent()           {}
func (Zoom) isEvent()            {}
func (TimerEvent) isEvent()      {}
func (CommandEvent) isEvent()    {}
func (TargetedCommand) isEvent() {}

// LifeCycle is a notification propagated by the lifecycle pass.
type LifeCycle interface {
	isLifeCycle()
}

type (
	// WidgetAdded is sent once, the first time a widget sees data.
	WidgetAdded struct{}
	// HotChanged is sent directly to a widget whose hot state flipped.
	HotChanged struct{ Hot bool }
	// Register rebuilds descendant membership and the focus chain.
	Register struct{}
	// AnimFrame is sent to subtrees that requested an animation frame.
	// Nanos is the time since the previous frame.
	AnimFrame struct{ Nanos uint64 }
	// RouteFocusChanged travels toward the old and new focus holders.
	// Either id may be zero.
	RouteFocusChanged struct{ Old, New WidgetID }
	// FocusChanged tells a widget it gained or lost focus.
	FocusChanged struct{ Focused bool }
)

func (WidgetAdded) isLifeCycle()       {}
func (HotChanged) isLifeCycle()        {}
func (Register) isLifeCycle()          {}
func (AnimFrame) isLifeCycle()         {}
func (RouteFocusChanged) isLifeCycle() {}
func (FocusChanged) isLifeCycle()      {}
