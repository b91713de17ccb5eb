package canopy

// baseState is the bookkeeping a WidgetPod keeps on behalf of its widget.
// Widgets never touch it directly; contexts read and write it.
type baseState struct {
	id         WidgetID
	layoutRect Rect

	// Set by handlers during a pass; cleared at the start of the next one.
	needsInval bool

	isHot    bool
	isActive bool
	// This widget or any descendant is active.
	hasActive bool

	// Some descendant wants an animation frame. Cleared once delivered.
	requestAnim bool
	// Some descendant has an outstanding timer. Never cleared; widgets
	// ignore timer tokens they did not request.
	requestTimer bool

	requestFocus    *FocusChange
	children        Bloom
	childrenChanged bool
}

func newBaseState(id WidgetID) baseState {
	return baseState{id: id}
}

// mergeUp folds a child's state into its parent's. A pending focus request
// moves to the parent; the first one seen wins.
func (s *baseState) mergeUp(child *baseState) {
	s.needsInval = s.needsInval || child.needsInval
	s.requestAnim = s.requestAnim || child.requestAnim
	s.requestTimer = s.requestTimer || child.requestTimer
	s.isHot = s.isHot || child.isHot
	s.hasActive = s.hasActive || child.hasActive
	s.childrenChanged = s.childrenChanged || child.childrenChanged
	if s.requestFocus == nil {
		s.requestFocus = child.requestFocus
	}
	child.requestFocus = nil
}

func (s *baseState) size() Size {
	return s.layoutRect.Size()
}
