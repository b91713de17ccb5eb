package canopy

import (
	"fmt"

	"go.uber.org/zap"
)

// WidgetPod wraps one widget in the hierarchy.
//
// Container widgets do not hold children directly; they hold WidgetPods,
// which carry the layout rect, hot/active/focus bookkeeping and the last data
// snapshot, and which decide how each pass propagates into the child.
type WidgetPod[T Data[T]] struct {
	state   baseState
	oldData T
	env     Env
	hasData bool
	inner   Widget[T]
}

// NewWidgetPod wraps inner. The pod takes the widget's declared id if it has
// one and mints a fresh id otherwise.
func NewWidgetPod[T Data[T]](inner Widget[T]) *WidgetPod[T] {
	id := NextWidgetID()
	if idw, ok := inner.(Identified); ok {
		if declared, ok := idw.ID(); ok {
			id = declared
		}
	}
	return &WidgetPod[T]{state: newBaseState(id), inner: inner}
}

// ID returns the widget's identity.
func (p *WidgetPod[T]) ID() WidgetID { return p.state.id }

// IsActive reports whether the widget holds pointer capture.
func (p *WidgetPod[T]) IsActive() bool { return p.state.isActive }

// HasActive reports whether the widget or any descendant is active.
func (p *WidgetPod[T]) HasActive() bool { return p.state.hasActive }

// IsHot reports whether the pointer is over the widget.
func (p *WidgetPod[T]) IsHot() bool { return p.state.isHot }

// Widget returns the wrapped widget.
func (p *WidgetPod[T]) Widget() Widget[T] { return p.inner }

// Initialized reports whether the pod has seen data (and sent WidgetAdded).
func (p *WidgetPod[T]) Initialized() bool { return p.hasData }

// SetLayoutRect records the rectangle the parent granted this child, in the
// parent's coordinates. Containers call it from their Layout.
func (p *WidgetPod[T]) SetLayoutRect(r Rect) { p.state.layoutRect = r }

// LayoutRect returns the rectangle set by SetLayoutRect.
func (p *WidgetPod[T]) LayoutRect() Rect { return p.state.layoutRect }

func (p *WidgetPod[T]) String() string {
	return fmt.Sprintf("WidgetPod(%d %T)", uint64(p.state.id), p.inner)
}

func (p *WidgetPod[T]) snapshot(data T, env Env) {
	p.oldData = cloneData(data)
	p.env = env
	p.hasData = true
}

// Paint paints the widget without applying its layout offset.
func (p *WidgetPod[T]) Paint(ctx *PaintCtx, data T, env Env) {
	child := &PaintCtx{
		Surface:     ctx.Surface,
		text:        ctx.text,
		windowID:    ctx.windowID,
		region:      ctx.region,
		state:       &p.state,
		focusWidget: ctx.focusWidget,
	}
	p.inner.Paint(child, data, env)
}

// PaintWithOffset paints the widget translated by its layout origin, and
// skips it entirely when its layout rect is outside the visible region. The
// child sees the visible region clipped to its layout rect. A panic in the
// child's Paint propagates to the caller once the surface is restored, so
// later siblings are not painted.
func (p *WidgetPod[T]) PaintWithOffset(ctx *PaintCtx, data T, env Env) {
	p.paintWithOffset(ctx, data, env, false)
}

// PaintWithOffsetAlways is PaintWithOffset without the visibility check. The
// child's region is its whole layout rect.
func (p *WidgetPod[T]) PaintWithOffsetAlways(ctx *PaintCtx, data T, env Env) {
	p.paintWithOffset(ctx, data, env, true)
}

func (p *WidgetPod[T]) paintWithOffset(ctx *PaintCtx, data T, env Env, always bool) {
	if !always && !ctx.region.Intersects(p.state.layoutRect) {
		return
	}

	if err := ctx.Save(); err != nil {
		logger().Error("saving render context failed", widgetField(p.state.id), zap.Error(err))
		return
	}
	// Restore runs on every exit path, panics included, so siblings paint
	// onto an intact surface.
	defer func() {
		if err := ctx.Restore(); err != nil {
			logger().Error("restoring render context failed", widgetField(p.state.id), zap.Error(err))
		}
	}()

	origin := p.state.layoutRect.Origin().ToVec2()
	ctx.Translate(origin)
	visible := p.state.layoutRect
	if !always {
		visible = ctx.region.Rect().Intersect(visible)
	}
	visible = visible.Translate(origin.Neg())
	ctx.WithChildCtx(NewRegion(visible), func(c *PaintCtx) {
		p.Paint(c, data, env)
	})
}

// Layout asks the widget for its size under bc. The caller must follow up
// with SetLayoutRect; placement is decided by the parent.
func (p *WidgetPod[T]) Layout(ctx *LayoutCtx, bc BoxConstraints, data T, env Env) Size {
	return p.inner.Layout(ctx, bc, data, env)
}

// Event propagates an event into the widget. Containers call it for each
// child; here is where most of the event-flow rules live.
func (p *WidgetPod[T]) Event(ctx *EventCtx, ev Event, data *T, env Env) {
	if !p.hasData {
		lc := ctx.makeLifeCycleCtx()
		lc.widgetID = p.state.id
		p.inner.Lifecycle(lc, WidgetAdded{}, *data, env)
		p.state.needsInval = p.state.needsInval || lc.needsInval
		p.state.requestAnim = p.state.requestAnim || lc.requestAnim
		p.snapshot(*data, env)
	}

	if ctx.isHandled {
		return
	}

	hadActive := p.state.hasActive
	child := &EventCtx{
		platform:    ctx.platform,
		cursor:      ctx.cursor,
		queue:       ctx.queue,
		windowID:    ctx.windowID,
		state:       &p.state,
		focusWidget: ctx.focusWidget,
		hadActive:   hadActive,
	}
	rect := p.state.layoutRect
	recurse := true
	var hotChanged *bool
	childEvent := ev

	switch e := ev.(type) {
	case SizeEvent:
		recurse = ctx.isRoot
	case MouseDown:
		hadHot := p.state.isHot
		nowHot := rect.Winding(e.Pos) != 0
		if !hadHot && nowHot {
			p.state.isHot = true
			hot := true
			hotChanged = &hot
		}
		recurse = hadActive || !ctx.hadActive && nowHot
		e.Pos = e.Pos.Sub(rect.Origin().ToVec2())
		childEvent = e
	case MouseUp:
		recurse = hadActive || !ctx.hadActive && rect.Winding(e.Pos) != 0
		e.Pos = e.Pos.Sub(rect.Origin().ToVec2())
		childEvent = e
	case MouseMove:
		hadHot := p.state.isHot
		p.state.isHot = rect.Winding(e.Pos) != 0
		if hadHot != p.state.isHot {
			hot := p.state.isHot
			hotChanged = &hot
		}
		recurse = hadActive || hadHot || p.state.isHot
		e.Pos = e.Pos.Sub(rect.Origin().ToVec2())
		childEvent = e
	case KeyDown, KeyUp, Paste:
		recurse = child.HasFocus()
	case Wheel, Zoom:
		recurse = hadActive || p.state.isHot
	case TimerEvent:
		recurse = p.state.requestTimer
	case CommandEvent:
	case TargetedCommand:
		if id, ok := e.Target.Widget(); !ok {
			childEvent = CommandEvent{Command: e.Command}
		} else if id == p.state.id {
			childEvent = CommandEvent{Command: e.Command}
		} else {
			recurse = p.state.children.Contains(id)
		}
	}

	p.state.needsInval = false
	if hotChanged != nil {
		lc := child.makeLifeCycleCtx()
		p.inner.Lifecycle(lc, HotChanged{Hot: *hotChanged}, *data, env)
		ctx.state.needsInval = ctx.state.needsInval || lc.needsInval
		p.state.requestAnim = p.state.requestAnim || lc.requestAnim
	}
	if recurse {
		p.state.hasActive = false
		p.inner.Event(child, childEvent, data, env)
		p.state.hasActive = p.state.hasActive || p.state.isActive
	}

	ctx.state.mergeUp(&p.state)
	ctx.isHandled = ctx.isHandled || child.isHandled
}

// Lifecycle propagates a lifecycle event into the widget.
func (p *WidgetPod[T]) Lifecycle(ctx *LifeCycleCtx, ev LifeCycle, data T, env Env) {
	preWidget := ctx.widgetID
	preChildren := ctx.children
	preChildrenChanged := ctx.childrenChanged
	preInval := ctx.needsInval
	preRequestAnim := ctx.requestAnim

	ctx.widgetID = p.state.id
	ctx.children = Bloom{}
	ctx.childrenChanged = false
	ctx.needsInval = false
	ctx.requestAnim = false

	_, isAnim := ev.(AnimFrame)
	recurse := true
	switch e := ev.(type) {
	case AnimFrame:
		recurse = p.state.requestAnim
		p.state.requestAnim = false
	case WidgetAdded:
		// A container forwards WidgetAdded to children it received along
		// with itself; those already added are skipped.
		if p.hasData {
			recurse = false
		} else {
			p.snapshot(data, env)
		}
	case Register:
		if !p.hasData {
			p.inner.Lifecycle(ctx, WidgetAdded{}, data, env)
			p.snapshot(data, env)
		}
	case HotChanged:
		recurse = false
	case RouteFocusChanged:
		p.state.requestFocus = nil
		self := p.state.id
		if e.Old == self || e.New == self {
			p.inner.Lifecycle(ctx, FocusChanged{Focused: e.New == self}, data, env)
			recurse = false
		} else {
			recurse = (!e.Old.IsZero() && p.state.children.Contains(e.Old)) ||
				(!e.New.IsZero() && p.state.children.Contains(e.New))
		}
	case FocusChanged:
		p.state.requestFocus = nil
	}

	if recurse {
		p.inner.Lifecycle(ctx, ev, data, env)
	}

	if isAnim {
		p.state.requestAnim = ctx.requestAnim
	} else {
		p.state.requestAnim = p.state.requestAnim || ctx.requestAnim
	}
	p.state.needsInval = p.state.needsInval || ctx.needsInval
	p.state.childrenChanged = p.state.childrenChanged || ctx.childrenChanged

	ctx.requestAnim = p.state.requestAnim || preRequestAnim
	ctx.childrenChanged = ctx.childrenChanged || preChildrenChanged
	ctx.needsInval = ctx.needsInval || preInval

	if _, ok := ev.(Register); ok {
		p.state.children = ctx.children
		p.state.childrenChanged = false
		ctx.children = ctx.children.Union(preChildren)
		ctx.RegisterChild(p.state.id)
	} else {
		ctx.children = preChildren
	}
	ctx.widgetID = preWidget
}

// Update propagates new data into the widget. It does nothing when both
// data and env are Same as the last snapshot.
func (p *WidgetPod[T]) Update(ctx *UpdateCtx, data T, env Env) {
	if !p.hasData {
		logger().Warn("old data missing, skipping update", widgetField(p.state.id))
		p.snapshot(data, env)
		return
	}
	if p.oldData.Same(data) && p.env.Same(env) {
		return
	}

	preWidget := ctx.widgetID
	preChildrenChanged := ctx.childrenChanged
	preInval := ctx.needsInval
	ctx.widgetID = p.state.id
	ctx.childrenChanged = false
	ctx.needsInval = false

	p.inner.Update(ctx, p.oldData, data, env)
	p.snapshot(data, env)

	p.state.childrenChanged = p.state.childrenChanged || ctx.childrenChanged
	p.state.needsInval = p.state.needsInval || ctx.needsInval
	ctx.childrenChanged = ctx.childrenChanged || preChildrenChanged
	ctx.needsInval = ctx.needsInval || preInval
	ctx.widgetID = preWidget
}
