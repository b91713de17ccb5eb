package canopy

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// WidgetID identifies a widget. IDs are stable across data updates and are
// the key for focus, command targeting and descendant membership tests.
// The zero value is never minted and means "no widget".
type WidgetID uint64

var widgetIDCounter atomic.Uint64

// NextWidgetID mints a fresh WidgetID. IDs are never reused.
func NextWidgetID() WidgetID {
	return WidgetID(widgetIDCounter.Add(1))
}

// IsZero reports whether id is the "no widget" value.
func (id WidgetID) IsZero() bool { return id == 0 }

func (id WidgetID) String() string {
	if id == 0 {
		return "WidgetID(none)"
	}
	return fmt.Sprintf("WidgetID(%d)", uint64(id))
}

// WindowID identifies a Window.
type WindowID uuid.UUID

// NewWindowID mints a random WindowID.
func NewWindowID() WindowID {
	return WindowID(uuid.New())
}

func (id WindowID) String() string {
	return uuid.UUID(id).String()
}

// TimerToken identifies an outstanding timer request. Widgets compare the
// token of a TimerEvent against the ones they requested and ignore others.
type TimerToken uint64

// TimerTokenInvalid is never returned by RequestTimer.
const TimerTokenInvalid TimerToken = 0

var timerTokenCounter atomic.Uint64

// NextTimerToken mints a TimerToken. Tokens are unique across platforms, so
// a token handed out before a window moves to a new platform can never match
// one the new platform hands out.
func NextTimerToken() TimerToken {
	return TimerToken(timerTokenCounter.Add(1))
}
