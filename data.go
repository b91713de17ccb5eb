package canopy

// Data is the capability application state must provide to live in a widget
// tree. Same reports whether two values are equivalent for the purpose of
// skipping an update pass; it need not be structural equality.
type Data[T any] interface {
	Same(other T) bool
}

// Cloner is optionally implemented by data types whose plain Go copy would
// alias mutable state. WidgetPod snapshots through Clone when available.
type Cloner[T any] interface {
	Clone() T
}

func cloneData[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
