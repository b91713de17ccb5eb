package canopy

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GoTextFactory creates text layouts with Ebitengine's text/v2, caching one
// face per requested size.
type GoTextFactory struct {
	source *text.GoTextFaceSource

	mu    sync.Mutex
	faces map[float64]*text.GoTextFace
}

// NewGoTextFactory parses TrueType/OpenType font data.
func NewGoTextFactory(ttfData []byte) (*GoTextFactory, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("canopy: failed to parse TTF data: %w", err)
	}
	return &GoTextFactory{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

var (
	defaultTextOnce    sync.Once
	defaultTextFactory *GoTextFactory
	defaultTextErr     error
)

// DefaultTextFactory returns a factory backed by the Go Regular font.
func DefaultTextFactory() (*GoTextFactory, error) {
	defaultTextOnce.Do(func() {
		defaultTextFactory, defaultTextErr = NewGoTextFactory(goregular.TTF)
	})
	return defaultTextFactory, defaultTextErr
}

func (f *GoTextFactory) face(size float64) *text.GoTextFace {
	f.mu.Lock()
	defer f.mu.Unlock()
	face, ok := f.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: f.source, Size: size}
		f.faces[size] = face
	}
	return face
}

// NewLayout measures s at the given pixel size.
func (f *GoTextFactory) NewLayout(s string, size float64) TextLayout {
	face := f.face(size)
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap
	w, h := text.Measure(s, face, lh)
	return &GoTextLayout{
		text:     s,
		face:     face,
		size:     Size{Width: w, Height: h},
		baseline: m.HAscent,
		lh:       lh,
	}
}

// GoTextLayout is the TextLayout produced by GoTextFactory.
type GoTextLayout struct {
	text     string
	face     *text.GoTextFace
	size     Size
	baseline float64
	lh       float64
}

func (l *GoTextLayout) Text() string      { return l.text }
func (l *GoTextLayout) Size() Size        { return l.size }
func (l *GoTextLayout) Baseline() float64 { return l.baseline }

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (l *GoTextLayout) Face() *text.GoTextFace { return l.face }
