package canopy

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

// Submit replays the recorded commands onto dst in recording order.
func (d *DisplayList) Submit(dst *ebiten.Image) {
	for i := range d.commands {
		cmd := &d.commands[i]
		target := clipTarget(dst, cmd)
		if target == nil {
			continue
		}
		switch cmd.Kind {
		case DrawKindFill:
			r := cmd.WindowRect()
			vector.DrawFilledRect(target, float32(r.X), float32(r.Y),
				float32(r.Width), float32(r.Height), colorOrBlack(cmd.Color), true)
		case DrawKindStroke:
			r := cmd.WindowRect()
			vector.StrokeRect(target, float32(r.X), float32(r.Y),
				float32(r.Width), float32(r.Height), float32(cmd.StrokeWidth),
				colorOrBlack(cmd.Color), true)
		case DrawKindText:
			submitText(target, cmd)
		case DrawKindImage:
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(cmd.At.X, cmd.At.Y)
			op.GeoM.Concat(cmd.Transform)
			target.DrawImage(cmd.Image, op)
		}
	}
}

func submitText(dst *ebiten.Image, cmd *DrawCommand) {
	layout, ok := cmd.Text.(*GoTextLayout)
	if !ok {
		logger().Debug("skipping text layout without a face",
			zap.String("text", cmd.Text.Text()))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.At.X, cmd.At.Y)
	op.GeoM.Concat(cmd.Transform)
	op.ColorScale.ScaleWithColor(colorOrBlack(cmd.Color))
	op.LineSpacing = layout.lh
	text.Draw(dst, layout.text, layout.face, op)
}

func colorOrBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}
