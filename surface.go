package canopy

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the render target widgets paint onto. Save and Restore bracket
// temporary transforms and clips; every Save must be matched by a Restore on
// every exit path.
type Surface interface {
	Save() error
	Restore() error
	Translate(v Vec2)
	Transform(m ebiten.GeoM)
	// Clip intersects the current clip with r, given in local coordinates.
	Clip(r Rect)
	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, c color.Color, width float64)
	DrawText(layout TextLayout, at Point, c color.Color)
	DrawImage(img *ebiten.Image, at Point)
}

var (
	// ErrSaveOverflow is returned by Save when the state stack is full.
	ErrSaveOverflow = errors.New("canopy: surface save stack overflow")
	// ErrRestoreUnderflow is returned by Restore without a matching Save.
	ErrRestoreUnderflow = errors.New("canopy: surface restore without save")
)

// DrawKind identifies the kind of a DrawCommand.
type DrawKind uint8

const (
	DrawKindFill   DrawKind = iota // solid rectangle
	DrawKindStroke                 // rectangle outline
	DrawKindText                   // text layout
	DrawKindImage                  // ebiten image
)

// DrawCommand is a single draw instruction recorded by a DisplayList. Rect
// and At are in the local coordinates of the widget that issued it;
// Transform maps them to window coordinates.
type DrawCommand struct {
	Kind        DrawKind
	Rect        Rect
	At          Point
	Color       color.Color
	StrokeWidth float64
	Text        TextLayout
	Image       *ebiten.Image
	Transform   ebiten.GeoM
	Clip        Rect
	Clipped     bool
}

// WindowRect returns the command's rectangle mapped to window coordinates.
// Only translation and scale are honored.
func (c DrawCommand) WindowRect() Rect {
	x0, y0 := c.Transform.Apply(c.Rect.X, c.Rect.Y)
	x1, y1 := c.Transform.Apply(c.Rect.X+c.Rect.Width, c.Rect.Y+c.Rect.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

type surfaceState struct {
	geom    ebiten.GeoM
	clip    Rect
	clipped bool
}

const defaultMaxSaveDepth = 64

// DisplayList is a Surface that records draw commands so a frame can be
// painted without touching the GPU, then replayed with Submit.
type DisplayList struct {
	commands []DrawCommand
	cur      surfaceState
	stack    []surfaceState

	// MaxDepth bounds the save stack. Zero means the default of 64.
	MaxDepth int
}

// NewDisplayList returns an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{commands: make([]DrawCommand, 0, 256)}
}

// Reset clears recorded commands and the transform stack.
func (d *DisplayList) Reset() {
	d.commands = d.commands[:0]
	d.stack = d.stack[:0]
	d.cur = surfaceState{}
}

// Commands returns the recorded commands. The slice MUST NOT be mutated.
func (d *DisplayList) Commands() []DrawCommand { return d.commands }

// Depth returns the number of unmatched Save calls.
func (d *DisplayList) Depth() int { return len(d.stack) }

// CurrentTransform returns the active transform.
func (d *DisplayList) CurrentTransform() ebiten.GeoM { return d.cur.geom }

func (d *DisplayList) Save() error {
	limit := d.MaxDepth
	if limit <= 0 {
		limit = defaultMaxSaveDepth
	}
	if len(d.stack) >= limit {
		return ErrSaveOverflow
	}
	d.stack = append(d.stack, d.cur)
	return nil
}

func (d *DisplayList) Restore() error {
	if len(d.stack) == 0 {
		return ErrRestoreUnderflow
	}
	d.cur = d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return nil
}

func (d *DisplayList) Translate(v Vec2) {
	var m ebiten.GeoM
	m.Translate(v.X, v.Y)
	d.Transform(m)
}

// Transform applies m before the current transform, in local coordinates.
func (d *DisplayList) Transform(m ebiten.GeoM) {
	m.Concat(d.cur.geom)
	d.cur.geom = m
}

func (d *DisplayList) Clip(r Rect) {
	x0, y0 := d.cur.geom.Apply(r.X, r.Y)
	x1, y1 := d.cur.geom.Apply(r.X+r.Width, r.Y+r.Height)
	wr := Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
	if d.cur.clipped {
		wr = d.cur.clip.Intersect(wr)
	}
	d.cur.clip = wr
	d.cur.clipped = true
}

func (d *DisplayList) push(cmd DrawCommand) {
	cmd.Transform = d.cur.geom
	cmd.Clip = d.cur.clip
	cmd.Clipped = d.cur.clipped
	d.commands = append(d.commands, cmd)
}

func (d *DisplayList) FillRect(r Rect, c color.Color) {
	d.push(DrawCommand{Kind: DrawKindFill, Rect: r, Color: c})
}

func (d *DisplayList) StrokeRect(r Rect, c color.Color, width float64) {
	d.push(DrawCommand{Kind: DrawKindStroke, Rect: r, Color: c, StrokeWidth: width})
}

func (d *DisplayList) DrawText(layout TextLayout, at Point, c color.Color) {
	if layout == nil {
		return
	}
	d.push(DrawCommand{Kind: DrawKindText, Text: layout, At: at, Color: c,
		Rect: RectFromOriginSize(at, layout.Size())})
}

func (d *DisplayList) DrawImage(img *ebiten.Image, at Point) {
	if img == nil {
		return
	}
	b := img.Bounds()
	d.push(DrawCommand{Kind: DrawKindImage, Image: img, At: at,
		Rect: Rect{X: at.X, Y: at.Y, Width: float64(b.Dx()), Height: float64(b.Dy())}})
}

// clipTarget returns the sub-image of dst the command may draw into, or nil
// when the clip is empty.
func clipTarget(dst *ebiten.Image, cmd *DrawCommand) *ebiten.Image {
	if !cmd.Clipped {
		return dst
	}
	r := image.Rect(int(cmd.Clip.X), int(cmd.Clip.Y),
		int(cmd.Clip.X+cmd.Clip.Width), int(cmd.Clip.Y+cmd.Clip.Height))
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return nil
	}
	return dst.SubImage(r).(*ebiten.Image)
}

var _ Surface = (*DisplayList)(nil)
