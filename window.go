package canopy

import (
	"time"

	"go.uber.org/zap"
)

// maxCommandRounds bounds how many times commands submitted while handling
// commands are drained before the rest are dropped.
const maxCommandRounds = 64

// Window drives passes over one widget tree. It owns the root pod, the
// application data, the environment, the command queue and the focus state.
// A Window is not safe for concurrent use; all passes run on one goroutine.
type Window[T Data[T]] struct {
	id       WindowID
	root     *WidgetPod[T]
	data     T
	env      Env
	platform Platform
	queue    CommandQueue
	sinks    []CommandSink

	focus        WidgetID
	focusChain   []WidgetID
	pendingFocus *FocusChange
	widgets      map[WidgetID]struct{}

	size            Size
	cursor          Cursor
	title           string
	needsPaint      bool
	wantsAnim       bool
	childrenChanged bool
	quit            bool
	debug           bool
}

// NewWindow creates a window around root. The tree is registered and every
// widget receives WidgetAdded before NewWindow returns.
func NewWindow[T Data[T]](root Widget[T], data T, env Env) *Window[T] {
	w := &Window[T]{
		id:         NewWindowID(),
		root:       NewWidgetPod(root),
		data:       data,
		env:        env,
		platform:   &nopPlatform{},
		needsPaint: true,
	}
	w.Register()
	return w
}

// ID returns the window id.
func (w *Window[T]) ID() WindowID { return w.id }

// Root returns the root pod.
func (w *Window[T]) Root() *WidgetPod[T] { return w.root }

// Data returns the current application data.
func (w *Window[T]) Data() T { return w.data }

// Env returns the current environment.
func (w *Window[T]) Env() Env { return w.env }

// Focus returns the focused widget, or zero.
func (w *Window[T]) Focus() WidgetID { return w.focus }

// FocusChain returns the focusable widgets in traversal order, as collected
// by the last Register pass. The returned slice MUST NOT be mutated.
func (w *Window[T]) FocusChain() []WidgetID { return w.focusChain }

// HasWidget reports whether id was in the tree at the last Register pass.
func (w *Window[T]) HasWidget(id WidgetID) bool {
	_, ok := w.widgets[id]
	return ok
}

// Size returns the size of the last SizeEvent.
func (w *Window[T]) Size() Size { return w.size }

// Title returns the title last set through SelectorSetTitle.
func (w *Window[T]) Title() string { return w.title }

// Quit reports whether SelectorQuit has been received.
func (w *Window[T]) Quit() bool { return w.quit }

// NeedsPaint reports whether something invalidated the window since the
// last Paint.
func (w *Window[T]) NeedsPaint() bool { return w.needsPaint }

// WantsAnimFrame reports whether some widget requested an animation frame.
func (w *Window[T]) WantsAnimFrame() bool { return w.wantsAnim }

// SetPlatform attaches the window to a platform. A nil platform detaches it.
func (w *Window[T]) SetPlatform(p Platform) {
	if p == nil {
		p = &nopPlatform{}
	}
	w.platform = p
}

// AddSink registers an observer for every dispatched command.
func (w *Window[T]) AddSink(s CommandSink) {
	w.sinks = append(w.sinks, s)
}

// SetData replaces the application data and runs an update pass.
func (w *Window[T]) SetData(data T) {
	w.data = data
	w.Update()
}

// SetEnv replaces the environment and runs an update pass.
func (w *Window[T]) SetEnv(env Env) {
	w.env = env
	w.Update()
}

// SubmitCommand queues a command from outside the tree and dispatches it.
func (w *Window[T]) SubmitCommand(cmd Command, target Target) {
	if _, ok := target.Widget(); !ok {
		target = WindowTarget(w.id)
	}
	w.queue.Push(target, cmd)
	w.processCommands()
	w.Update()
}

// Event runs an event pass, then resolves focus changes, drains the command
// queue and runs an update pass. It reports whether a widget handled ev.
func (w *Window[T]) Event(ev Event) bool {
	if se, ok := ev.(SizeEvent); ok {
		w.size = se.Size
	}
	handled := w.dispatch(ev)
	w.processCommands()
	w.Update()
	return handled
}

// dispatch runs one event pass from the root and applies its results.
func (w *Window[T]) dispatch(ev Event) bool {
	var start time.Time
	if w.debug {
		start = time.Now()
	}

	state := newBaseState(0)
	cursor := w.cursor
	ctx := &EventCtx{
		platform:    w.platform,
		cursor:      &cursor,
		queue:       &w.queue,
		windowID:    w.id,
		state:       &state,
		focusWidget: w.focus,
		hadActive:   w.root.HasActive(),
		isRoot:      true,
	}
	w.root.Event(ctx, ev, &w.data, w.env)

	if cursor != w.cursor {
		w.cursor = cursor
		w.platform.SetCursor(cursor)
	}
	if state.needsInval {
		w.invalidate()
	}
	w.wantsAnim = w.wantsAnim || state.requestAnim
	w.childrenChanged = w.childrenChanged || state.childrenChanged
	if state.requestFocus != nil && w.pendingFocus == nil {
		fc := *state.requestFocus
		w.pendingFocus = &fc
	}

	if w.debug {
		w.debugPass("event", time.Since(start), zap.String("event", eventName(ev)))
	}

	if w.childrenChanged {
		w.Register()
	}
	if w.pendingFocus != nil {
		fc := *w.pendingFocus
		w.pendingFocus = nil
		w.setFocus(resolveFocus(w.focusChain, w.focus, fc))
	}
	return ctx.isHandled
}

func (w *Window[T]) processCommands() {
	for round := 0; w.queue.Len() > 0; round++ {
		if round >= maxCommandRounds {
			dropped := w.queue.Drain()
			logger().Warn("command loop did not settle, dropping commands",
				zap.Int("dropped", len(dropped)))
			return
		}
		for _, qc := range w.queue.Drain() {
			w.runCommand(qc)
		}
	}
}

func (w *Window[T]) runCommand(qc QueuedCommand) {
	for _, s := range w.sinks {
		s.EmitCommand(qc)
	}
	if _, ok := qc.Target.Widget(); !ok {
		switch qc.Command.Selector {
		case SelectorSetTitle:
			if title, ok := qc.Command.Object.(string); ok {
				w.title = title
				w.platform.SetTitle(title)
			}
		case SelectorQuit:
			w.quit = true
		}
	}
	w.dispatch(TargetedCommand{Target: qc.Target, Command: qc.Command})
}

// setFocus moves focus to id and routes the change through the tree.
func (w *Window[T]) setFocus(id WidgetID) {
	if id == w.focus {
		return
	}
	old := w.focus
	w.focus = id
	logger().Debug("focus changed",
		zap.Uint64("old", uint64(old)), zap.Uint64("new", uint64(id)))
	w.Lifecycle(RouteFocusChanged{Old: old, New: id})
	w.invalidate()
}

// SetFocus moves keyboard focus directly, as if the widget had called
// RequestFocus. Zero clears focus.
func (w *Window[T]) SetFocus(id WidgetID) {
	w.setFocus(id)
	w.processCommands()
}

// Lifecycle runs a lifecycle pass over the tree.
func (w *Window[T]) Lifecycle(ev LifeCycle) {
	var start time.Time
	if w.debug {
		start = time.Now()
	}
	ctx := &LifeCycleCtx{queue: &w.queue, windowID: w.id}
	w.root.Lifecycle(ctx, ev, w.data, w.env)
	w.absorbLifecycle(ctx)
	if w.debug {
		w.debugPass("lifecycle", time.Since(start), zap.String("event", lifecycleName(ev)))
	}
}

// Register rebuilds descendant membership sets and the focus chain.
func (w *Window[T]) Register() {
	chain := make([]WidgetID, 0, len(w.focusChain))
	widgets := make(map[WidgetID]struct{}, len(w.widgets))
	ctx := &LifeCycleCtx{queue: &w.queue, windowID: w.id, focusWidgets: &chain, registry: widgets}
	w.root.Lifecycle(ctx, Register{}, w.data, w.env)
	w.focusChain = chain
	w.widgets = widgets
	w.childrenChanged = false
	w.absorbLifecycle(ctx)
	if w.debug {
		debugCheckFocusChain(chain)
	}
	// Registration may have been triggered by a focused widget leaving the tree.
	if !w.focus.IsZero() && !w.HasWidget(w.focus) {
		w.setFocus(0)
	}
}

func (w *Window[T]) absorbLifecycle(ctx *LifeCycleCtx) {
	if ctx.needsInval {
		w.invalidate()
	}
	w.wantsAnim = w.wantsAnim || ctx.requestAnim
	if ctx.childrenChanged {
		w.childrenChanged = true
	}
}

// AnimFrame delivers an animation frame to every subtree that asked for one.
func (w *Window[T]) AnimFrame(nanos uint64) {
	if !w.wantsAnim {
		return
	}
	w.wantsAnim = false
	w.Lifecycle(AnimFrame{Nanos: nanos})
	w.processCommands()
	if w.childrenChanged {
		w.Register()
	}
}

// Update runs an update pass with the current data and environment.
func (w *Window[T]) Update() {
	var start time.Time
	if w.debug {
		start = time.Now()
	}
	ctx := &UpdateCtx{platform: w.platform, windowID: w.id}
	w.root.Update(ctx, w.data, w.env)
	if ctx.needsInval {
		w.invalidate()
	}
	if ctx.childrenChanged || w.childrenChanged {
		w.Register()
	}
	if w.debug {
		w.debugPass("update", time.Since(start))
	}
}

// Layout lays the tree out to fill size and returns the size the root chose.
func (w *Window[T]) Layout(size Size) Size {
	var start time.Time
	if w.debug {
		start = time.Now()
	}
	w.size = size
	ctx := &LayoutCtx{text: w.platform.Text(), windowID: w.id}
	got := w.root.Layout(ctx, Tight(size), w.data, w.env)
	w.root.SetLayoutRect(RectFromOriginSize(Point{}, got))
	if w.debug {
		w.debugPass("layout", time.Since(start))
	}
	return got
}

// Paint paints the tree onto s.
func (w *Window[T]) Paint(s Surface) {
	var start time.Time
	if w.debug {
		start = time.Now()
	}
	state := newBaseState(0)
	ctx := &PaintCtx{
		Surface:     s,
		text:        w.platform.Text(),
		windowID:    w.id,
		region:      NewRegion(RectFromOriginSize(Point{}, w.size)),
		state:       &state,
		focusWidget: w.focus,
	}
	w.root.PaintWithOffsetAlways(ctx, w.data, w.env)
	w.needsPaint = false
	if w.debug {
		w.debugPass("paint", time.Since(start))
	}
}

func (w *Window[T]) invalidate() {
	w.needsPaint = true
	w.platform.Invalidate()
}
