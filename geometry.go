package canopy

import "math"

// Vec2 is a 2D vector used for offsets, translations and scroll deltas.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Point is a position. Inside the tree, points are relative to the origin of
// the widget receiving them.
type Point struct {
	X, Y float64
}

// Sub returns the point translated by -v.
func (p Point) Sub(v Vec2) Point { return Point{p.X - v.X, p.Y - v.Y} }

// Add returns the point translated by v.
func (p Point) Add(v Vec2) Point { return Point{p.X + v.X, p.Y + v.Y} }

// ToVec2 returns the vector from the origin to p.
func (p Point) ToVec2() Vec2 { return Vec2{p.X, p.Y} }

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Clamp returns s clamped component-wise between min and max.
func (s Size) Clamp(min, max Size) Size {
	return Size{
		Width:  math.Max(min.Width, math.Min(max.Width, s.Width)),
		Height: math.Max(min.Height, math.Min(max.Height, s.Height)),
	}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromOriginSize builds a Rect from an origin and a size.
func RectFromOriginSize(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{r.X, r.Y} }

// Size returns the rectangle's size.
func (r Rect) Size() Size { return Size{r.Width, r.Height} }

// Area returns Width*Height. Degenerate rectangles have zero area.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Winding returns a non-zero winding number when p lies inside r, and 0
// otherwise. The left and top edges are inside; the right and bottom edges
// are not, so adjacent rectangles never both contain the same point.
func (r Rect) Winding(p Point) int {
	x0, x1 := math.Min(r.X, r.X+r.Width), math.Max(r.X, r.X+r.Width)
	y0, y1 := math.Min(r.Y, r.Y+r.Height), math.Max(r.Y, r.Y+r.Height)
	if p.X >= x0 && p.X < x1 && p.Y >= y0 && p.Y < y1 {
		if (r.Width < 0) != (r.Height < 0) {
			return -1
		}
		return 1
	}
	return 0
}

// Contains reports whether p lies inside r (see Winding).
func (r Rect) Contains(p Point) bool {
	return r.Winding(p) != 0
}

// Intersect returns the overlap of r and other. When they do not overlap the
// result has zero width or height.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.Width, other.X+other.Width)
	y1 := math.Min(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x0, Y: y0, Width: math.Max(0, x1-x0), Height: math.Max(0, y1-y0)}
}

// Translate returns r moved by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, Width: r.Width, Height: r.Height}
}

// Inset shrinks r by d on every side. Negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// BoxConstraints is the range of sizes a parent allows a child during layout.
type BoxConstraints struct {
	Min, Max Size
}

// Tight returns constraints that only allow size.
func Tight(size Size) BoxConstraints {
	return BoxConstraints{Min: size, Max: size}
}

// Loose returns constraints from zero up to size.
func Loose(size Size) BoxConstraints {
	return BoxConstraints{Max: size}
}

// Constrain clamps size into the allowed range.
func (bc BoxConstraints) Constrain(size Size) Size {
	return size.Clamp(bc.Min, bc.Max)
}

// Loosen drops the minimum.
func (bc BoxConstraints) Loosen() BoxConstraints {
	return BoxConstraints{Max: bc.Max}
}

// Shrink removes diff from both bounds, never going below zero.
func (bc BoxConstraints) Shrink(diff Size) BoxConstraints {
	shrink := func(v, d float64) float64 { return math.Max(0, v-d) }
	return BoxConstraints{
		Min: Size{shrink(bc.Min.Width, diff.Width), shrink(bc.Min.Height, diff.Height)},
		Max: Size{shrink(bc.Max.Width, diff.Width), shrink(bc.Max.Height, diff.Height)},
	}
}

// IsWidthBounded reports whether the maximum width is finite.
func (bc BoxConstraints) IsWidthBounded() bool { return !math.IsInf(bc.Max.Width, 1) }

// IsHeightBounded reports whether the maximum height is finite.
func (bc BoxConstraints) IsHeightBounded() bool { return !math.IsInf(bc.Max.Height, 1) }

// Region describes the currently visible area during painting.
type Region struct {
	rect Rect
}

// NewRegion wraps a rectangle.
func NewRegion(r Rect) Region { return Region{rect: r} }

// Rect returns the smallest rectangle enclosing the region.
func (g Region) Rect() Rect { return g.rect }

// Intersects reports whether r overlaps the region with a non-zero area.
func (g Region) Intersects(r Rect) bool {
	return g.rect.Intersect(r).Area() > 0
}
