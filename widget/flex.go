package widget

import (
	"math"

	"github.com/phanxgames/canopy"
)

// Axis is the main axis of a Flex.
type Axis uint8

const (
	Row    Axis = iota // children laid out left to right
	Column             // children laid out top to bottom
)

func (a Axis) major(s canopy.Size) float64 {
	if a == Row {
		return s.Width
	}
	return s.Height
}

func (a Axis) minor(s canopy.Size) float64 {
	if a == Row {
		return s.Height
	}
	return s.Width
}

func (a Axis) pack(major, minor float64) canopy.Size {
	if a == Row {
		return canopy.Size{Width: major, Height: minor}
	}
	return canopy.Size{Width: minor, Height: major}
}

// ChildrenChanger is implemented by every context that may add or remove
// children.
type ChildrenChanger interface {
	ChildrenChanged()
}

type flexChild[T canopy.Data[T]] struct {
	pod  *canopy.WidgetPod[T]
	flex float64
}

// Flex lays children out along one axis. Children with a zero flex factor
// get their natural size; the remaining space is split between the others
// in proportion to their factors.
type Flex[T canopy.Data[T]] struct {
	axis     Axis
	spacing  float64
	children []flexChild[T]
}

// NewFlex creates an empty Flex.
func NewFlex[T canopy.Data[T]](axis Axis) *Flex[T] {
	return &Flex[T]{axis: axis}
}

// NewRow creates an empty horizontal Flex.
func NewRow[T canopy.Data[T]]() *Flex[T] { return NewFlex[T](Row) }

// NewColumn creates an empty vertical Flex.
func NewColumn[T canopy.Data[T]]() *Flex[T] { return NewFlex[T](Column) }

// With appends a child while building the tree. Use Add once the tree is
// running.
func (f *Flex[T]) With(w canopy.Widget[T], flex float64) *Flex[T] {
	f.children = append(f.children, flexChild[T]{pod: canopy.NewWidgetPod(w), flex: flex})
	return f
}

// WithSpacing sets the gap between children.
func (f *Flex[T]) WithSpacing(spacing float64) *Flex[T] {
	f.spacing = spacing
	return f
}

// Add appends a child to a live tree and tells ctx the children changed.
func (f *Flex[T]) Add(ctx ChildrenChanger, w canopy.Widget[T], flex float64) *canopy.WidgetPod[T] {
	pod := canopy.NewWidgetPod(w)
	f.children = append(f.children, flexChild[T]{pod: pod, flex: flex})
	ctx.ChildrenChanged()
	return pod
}

// Remove drops the child at index i from a live tree.
func (f *Flex[T]) Remove(ctx ChildrenChanger, i int) {
	if i < 0 || i >= len(f.children) {
		return
	}
	f.children = append(f.children[:i], f.children[i+1:]...)
	ctx.ChildrenChanged()
}

// Len returns the number of children.
func (f *Flex[T]) Len() int { return len(f.children) }

// Child returns the pod at index i.
func (f *Flex[T]) Child(i int) *canopy.WidgetPod[T] { return f.children[i].pod }

func (f *Flex[T]) Event(ctx *canopy.EventCtx, ev canopy.Event, data *T, env canopy.Env) {
	for _, c := range f.children {
		c.pod.Event(ctx, ev, data, env)
	}
}

func (f *Flex[T]) Lifecycle(ctx *canopy.LifeCycleCtx, ev canopy.LifeCycle, data T, env canopy.Env) {
	for _, c := range f.children {
		c.pod.Lifecycle(ctx, ev, data, env)
	}
}

func (f *Flex[T]) Update(ctx *canopy.UpdateCtx, _, data T, env canopy.Env) {
	for _, c := range f.children {
		c.pod.Update(ctx, data, env)
	}
}

func (f *Flex[T]) Layout(ctx *canopy.LayoutCtx, bc canopy.BoxConstraints, data T, env canopy.Env) canopy.Size {
	maxMajor := f.axis.major(bc.Max)
	maxMinor := f.axis.minor(bc.Max)
	sizes := make([]canopy.Size, len(f.children))

	// Natural size for inflexible children.
	used := f.spacing * math.Max(0, float64(len(f.children)-1))
	totalFlex := 0.0
	for i, c := range f.children {
		if c.flex > 0 {
			totalFlex += c.flex
			continue
		}
		childBC := canopy.BoxConstraints{Max: f.axis.pack(math.Inf(1), maxMinor)}
		sizes[i] = c.pod.Layout(ctx, childBC, data, env)
		used += f.axis.major(sizes[i])
	}

	// Remaining space for flexible children.
	remaining := 0.0
	if !math.IsInf(maxMajor, 1) {
		remaining = math.Max(0, maxMajor-used)
	}
	for i, c := range f.children {
		if c.flex <= 0 {
			continue
		}
		share := remaining * c.flex / totalFlex
		childBC := canopy.BoxConstraints{
			Min: f.axis.pack(share, 0),
			Max: f.axis.pack(share, maxMinor),
		}
		sizes[i] = c.pod.Layout(ctx, childBC, data, env)
		used += f.axis.major(sizes[i])
	}

	minor := 0.0
	for _, s := range sizes {
		minor = math.Max(minor, f.axis.minor(s))
	}

	pos := 0.0
	for i, c := range f.children {
		origin := f.axis.pack(pos, 0)
		c.pod.SetLayoutRect(canopy.Rect{X: origin.Width, Y: origin.Height, Width: sizes[i].Width, Height: sizes[i].Height})
		pos += f.axis.major(sizes[i]) + f.spacing
	}

	major := used
	if totalFlex > 0 && !math.IsInf(maxMajor, 1) {
		major = math.Max(used, maxMajor)
	}
	return bc.Constrain(f.axis.pack(major, minor))
}

func (f *Flex[T]) Paint(ctx *canopy.PaintCtx, data T, env canopy.Env) {
	for _, c := range f.children {
		c.pod.PaintWithOffset(ctx, data, env)
	}
}
