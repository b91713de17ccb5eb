package canopy

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Screenshot asks for the next drawn frame to be saved as a PNG in
// ScreenshotDir. The file name combines the host clock and label.
func (h *Host[T]) Screenshot(label string) {
	h.screenshotQueue = append(h.screenshotQueue, label)
}

// flushScreenshots writes the queued screenshots of screen. The queue is
// emptied even when writing fails.
func (h *Host[T]) flushScreenshots(screen *ebiten.Image) {
	if len(h.screenshotQueue) == 0 {
		return
	}
	labels := h.screenshotQueue
	h.screenshotQueue = h.screenshotQueue[:0]

	if err := os.MkdirAll(h.ScreenshotDir, 0o755); err != nil {
		logger().Error("screenshot directory unavailable",
			zap.String("dir", h.ScreenshotDir), zap.Error(err))
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())
	prefix := h.now().Format("20060102_150405.000")

	for _, label := range labels {
		path := filepath.Join(h.ScreenshotDir, prefix+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			logger().Error("screenshot failed", zap.String("label", label), zap.Error(err))
			continue
		}
		logger().Info("screenshot written", zap.String("path", path))
	}
}

// unpremultiply converts the premultiplied RGBA bytes read back from the GPU
// into a straight-alpha image. Missing trailing bytes read as transparent.
func unpremultiply(pixels []byte, width, height int) *image.NRGBA {
	bounds := image.Rect(0, 0, width, height)
	if n := 4 * width * height; len(pixels) < n {
		padded := make([]byte, n)
		copy(padded, pixels)
		pixels = padded
	}
	src := &image.RGBA{Pix: pixels, Stride: 4 * width, Rect: bounds}
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, image.Point{}, draw.Src)
	return dst
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// writePNG encodes img in memory and writes it to path in one call, so a
// failed encode leaves no partial file behind.
func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := pngEncoder.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.' and turns every
// other rune into '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, label)
}
