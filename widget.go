package canopy

// Widget is the capability set every widget implements. Container widgets
// hold their children as *WidgetPod values and forward each pass to them.
//
// Event may mutate data. The other methods see a read-only copy.
type Widget[T any] interface {
	Event(ctx *EventCtx, ev Event, data *T, env Env)
	Lifecycle(ctx *LifeCycleCtx, ev LifeCycle, data T, env Env)
	Layout(ctx *LayoutCtx, bc BoxConstraints, data T, env Env) Size
	Paint(ctx *PaintCtx, data T, env Env)
	Update(ctx *UpdateCtx, old, data T, env Env)
}

// Identified is implemented by widgets that declare their own identity.
// NewWidgetPod uses it instead of minting a fresh id.
type Identified interface {
	ID() (WidgetID, bool)
}
