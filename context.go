package canopy

import (
	"time"

	"go.uber.org/zap"
)

// EventCtx is passed to Widget.Event. It is only valid for the duration of
// the call and must not be retained.
type EventCtx struct {
	platform    Platform
	cursor      *Cursor
	queue       *CommandQueue
	windowID    WindowID
	state       *baseState
	focusWidget WidgetID
	hadActive   bool
	isHandled   bool
	isRoot      bool
}

// Invalidate schedules a repaint.
func (c *EventCtx) Invalidate() { c.state.needsInval = true }

// ChildrenChanged must be called after a container adds or removes children.
// It triggers a Register pass once the event completes.
func (c *EventCtx) ChildrenChanged() { c.state.childrenChanged = true }

// Text returns the platform's text factory.
func (c *EventCtx) Text() TextFactory { return c.platform.Text() }

// SetCursor sets the pointer shape. Within one event only the last call wins.
func (c *EventCtx) SetCursor(cur Cursor) { *c.cursor = cur }

// SetActive sets the widget's active (pointer capture) state. An active
// widget keeps receiving pointer events outside its bounds.
func (c *EventCtx) SetActive(active bool) { c.state.isActive = active }

// IsHot reports whether the pointer is over the widget or a descendant.
func (c *EventCtx) IsHot() bool { return c.state.isHot }

// IsActive reports whether this widget holds pointer capture.
func (c *EventCtx) IsActive() bool { return c.state.isActive }

// HasActive reports whether this widget or a descendant is active.
func (c *EventCtx) HasActive() bool { return c.state.hasActive }

// Window returns the platform window handle.
func (c *EventCtx) Window() WindowHandle { return c.platform }

// SetHandled stops propagation of the event to further widgets.
func (c *EventCtx) SetHandled() { c.isHandled = true }

// IsHandled reports whether some widget has handled the event.
func (c *EventCtx) IsHandled() bool { return c.isHandled }

// HasFocus reports whether this widget or one of its descendants holds
// keyboard focus.
func (c *EventCtx) HasFocus() bool {
	if c.focusWidget.IsZero() {
		return false
	}
	return c.focusWidget == c.state.id || c.state.children.Contains(c.focusWidget)
}

// IsFocused reports whether this exact widget holds keyboard focus.
func (c *EventCtx) IsFocused() bool {
	return !c.focusWidget.IsZero() && c.focusWidget == c.state.id
}

// RequestFocus asks for keyboard focus. The change is resolved after the
// event pass.
func (c *EventCtx) RequestFocus() {
	c.state.requestFocus = &FocusChange{Kind: FocusTo, ID: c.state.id}
}

// FocusNext moves focus to the next focusable widget. Only the focused
// widget may call it.
func (c *EventCtx) FocusNext() { c.focusMove(FocusNext, "FocusNext") }

// FocusPrev moves focus to the previous focusable widget. Only the focused
// widget may call it.
func (c *EventCtx) FocusPrev() { c.focusMove(FocusPrevious, "FocusPrev") }

// ResignFocus gives up focus. Only the focused widget may call it.
func (c *EventCtx) ResignFocus() { c.focusMove(FocusResign, "ResignFocus") }

func (c *EventCtx) focusMove(kind FocusChangeKind, op string) {
	if !c.IsFocused() {
		logger().Warn("focus change requested by a widget without focus",
			zap.String("op", op), widgetField(c.state.id))
		return
	}
	c.state.requestFocus = &FocusChange{Kind: kind}
}

// RequestAnimFrame asks for an AnimFrame lifecycle event before the next
// paint, and schedules a repaint.
func (c *EventCtx) RequestAnimFrame() {
	c.state.requestAnim = true
	c.state.needsInval = true
}

// RequestTimer schedules a TimerEvent at or after deadline. Widgets must
// compare tokens: timer events are delivered to every widget on the path to
// any widget that ever requested a timer.
func (c *EventCtx) RequestTimer(deadline time.Time) TimerToken {
	c.state.requestTimer = true
	return c.platform.RequestTimer(deadline)
}

// Size returns the layout size granted on the previous layout pass.
func (c *EventCtx) Size() Size { return c.state.size() }

// SubmitCommand queues cmd for delivery after the current pass. A zero
// target addresses the window.
func (c *EventCtx) SubmitCommand(cmd Command, target Target) {
	if _, ok := target.Widget(); !ok {
		target = WindowTarget(c.windowID)
	}
	c.queue.Push(target, cmd)
}

// WindowID returns the id of the window the pass runs in.
func (c *EventCtx) WindowID() WindowID { return c.windowID }

// WidgetID returns the id of the current widget.
func (c *EventCtx) WidgetID() WidgetID { return c.state.id }

func (c *EventCtx) makeLifeCycleCtx() *LifeCycleCtx {
	return &LifeCycleCtx{
		queue:    c.queue,
		windowID: c.windowID,
		widgetID: c.state.id,
	}
}

// LifeCycleCtx is passed to Widget.Lifecycle.
//
// RegisterChild and RegisterForFocus are only meaningful while handling
// Register.
type LifeCycleCtx struct {
	queue *CommandQueue
	// Registry of the current widget's descendants. Only meaningful during
	// Register.
	children     Bloom
	focusWidgets *[]WidgetID
	registry     map[WidgetID]struct{}

	childrenChanged bool
	needsInval      bool
	requestAnim     bool
	windowID        WindowID
	widgetID        WidgetID
}

// Invalidate schedules a repaint.
func (c *LifeCycleCtx) Invalidate() { c.needsInval = true }

// WidgetID returns the id of the current widget.
func (c *LifeCycleCtx) WidgetID() WidgetID { return c.widgetID }

// RegisterChild records a descendant. WidgetPod calls this; widgets rarely
// need to.
func (c *LifeCycleCtx) RegisterChild(id WidgetID) {
	c.children.Add(id)
	if c.registry != nil {
		c.registry[id] = struct{}{}
	}
}

// RegisterForFocus makes the current widget part of the focus chain used by
// FocusNext and FocusPrev.
func (c *LifeCycleCtx) RegisterForFocus() {
	if c.focusWidgets != nil {
		*c.focusWidgets = append(*c.focusWidgets, c.widgetID)
	}
}

// ChildrenChanged must be called after a container adds or removes children.
func (c *LifeCycleCtx) ChildrenChanged() { c.childrenChanged = true }

// RequestAnimFrame asks for an AnimFrame lifecycle event.
func (c *LifeCycleCtx) RequestAnimFrame() { c.requestAnim = true }

// SubmitCommand queues cmd for delivery after the current pass. A zero
// target addresses the window.
func (c *LifeCycleCtx) SubmitCommand(cmd Command, target Target) {
	if _, ok := target.Widget(); !ok {
		target = WindowTarget(c.windowID)
	}
	c.queue.Push(target, cmd)
}

// WindowID returns the id of the window the pass runs in.
func (c *LifeCycleCtx) WindowID() WindowID { return c.windowID }

// LayoutCtx is passed to Widget.Layout.
type LayoutCtx struct {
	text     TextFactory
	windowID WindowID
}

// Text returns the platform's text factory.
func (c *LayoutCtx) Text() TextFactory { return c.text }

// WindowID returns the id of the window the pass runs in.
func (c *LayoutCtx) WindowID() WindowID { return c.windowID }

// UpdateCtx is passed to Widget.Update.
type UpdateCtx struct {
	platform        Platform
	needsInval      bool
	childrenChanged bool
	windowID        WindowID
	widgetID        WidgetID
}

// Invalidate schedules a repaint.
func (c *UpdateCtx) Invalidate() { c.needsInval = true }

// ChildrenChanged must be called after a container adds or removes children.
func (c *UpdateCtx) ChildrenChanged() { c.childrenChanged = true }

// Text returns the platform's text factory.
func (c *UpdateCtx) Text() TextFactory { return c.platform.Text() }

// Window returns the platform window handle.
func (c *UpdateCtx) Window() WindowHandle { return c.platform }

// WindowID returns the id of the window the pass runs in.
func (c *UpdateCtx) WindowID() WindowID { return c.windowID }

// WidgetID returns the id of the current widget.
func (c *UpdateCtx) WidgetID() WidgetID { return c.widgetID }

// PaintCtx is passed to Widget.Paint. Drawing methods are those of the
// embedded Surface.
type PaintCtx struct {
	Surface
	text        TextFactory
	windowID    WindowID
	region      Region
	state       *baseState
	focusWidget WidgetID
}

// IsHot reports whether the pointer is over the widget.
func (c *PaintCtx) IsHot() bool { return c.state.isHot }

// IsActive reports whether the widget holds pointer capture.
func (c *PaintCtx) IsActive() bool { return c.state.isActive }

// Size returns the layout size of the widget.
func (c *PaintCtx) Size() Size { return c.state.size() }

// HasFocus reports whether this exact widget holds focus.
func (c *PaintCtx) HasFocus() bool {
	return !c.focusWidget.IsZero() && c.focusWidget == c.state.id
}

// Region returns the currently visible region in local coordinates.
func (c *PaintCtx) Region() Region { return c.region }

// Text returns the platform's text factory.
func (c *PaintCtx) Text() TextFactory { return c.text }

// WindowID returns the id of the window the pass runs in.
func (c *PaintCtx) WindowID() WindowID { return c.windowID }

// WithChildCtx calls f with a context whose visible region is region.
// Containers use it to give children a correct visible region.
func (c *PaintCtx) WithChildCtx(region Region, f func(*PaintCtx)) {
	child := *c
	child.region = region
	f(&child)
}
