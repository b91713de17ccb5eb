package canopy

import (
	"fmt"
	"image/color"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

type pendingTimer struct {
	token    TimerToken
	deadline time.Time
}

// Host runs a Window inside Ebitengine. It implements ebiten.Game for the
// frame loop and Platform for the widgets: input is polled and translated
// into events, timers fire as TimerEvents, AnimFrame is sent when
// requested, and the tree is painted through a DisplayList.
type Host[T Data[T]] struct {
	window *Window[T]
	cfg    RunConfig

	input      InputSource
	frame      InputFrame
	translator inputTranslator
	now        func() time.Time
	lastTick   time.Time

	text       TextFactory
	list       *DisplayList
	size       Size
	sizeDirty  bool
	invalid    bool
	timers     []pendingTimer
	title      string
	cursor     Cursor
	setCursor  func(ebiten.CursorShapeType)
	setTitle   func(string)
	background color.RGBA

	injectQueue []syntheticInput
	injectPos   Point
	testRunner  *TestRunner

	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewHost creates a host for w and attaches itself as w's platform. Text is
// measured with the default Go font; if it cannot be loaded the host falls
// back to fixed-width measurement.
func NewHost[T Data[T]](w *Window[T], cfg RunConfig) *Host[T] {
	h := &Host[T]{
		window:        w,
		cfg:           cfg,
		input:         &EbitenInput{},
		now:           time.Now,
		list:          NewDisplayList(),
		size:          Size{Width: float64(cfg.Width), Height: float64(cfg.Height)},
		sizeDirty:     true,
		invalid:       true,
		setCursor:     ebiten.SetCursorShape,
		setTitle:      ebiten.SetWindowTitle,
		ScreenshotDir: cfg.ScreenshotDir,
		background:    cfg.BackgroundColor(),
	}
	h.translator = inputTranslator{
		doubleClickTime: cfg.DoubleClickTime(),
		doubleClickDist: cfg.DoubleClickDistance,
		paste:           readClipboard,
	}
	if f, err := DefaultTextFactory(); err == nil {
		h.text = f
	} else {
		logger().Warn("default font unavailable, measuring text as fixed width", zap.Error(err))
		h.text = monoTextFactory{}
	}
	w.SetPlatform(h)
	return h
}

// SetInputSource replaces the input source. Tests use it to feed frames
// without a running game.
func (h *Host[T]) SetInputSource(in InputSource) { h.input = in }

// SetClock replaces the time source used for timers, click counting and
// animation frames.
func (h *Host[T]) SetClock(now func() time.Time) { h.now = now }

// Window returns the hosted window.
func (h *Host[T]) Window() *Window[T] { return h.window }

// Title returns the current window title.
func (h *Host[T]) Title() string { return h.title }

// Cursor returns the current cursor.
func (h *Host[T]) Cursor() Cursor { return h.cursor }

// SetTitle implements WindowHandle.
func (h *Host[T]) SetTitle(title string) {
	h.title = title
	if h.setTitle != nil {
		h.setTitle(title)
	}
}

// Invalidate implements WindowHandle.
func (h *Host[T]) Invalidate() { h.invalid = true }

// Text implements Platform.
func (h *Host[T]) Text() TextFactory { return h.text }

// RequestTimer implements Platform.
func (h *Host[T]) RequestTimer(deadline time.Time) TimerToken {
	token := NextTimerToken()
	h.timers = append(h.timers, pendingTimer{token: token, deadline: deadline})
	return token
}

// SetCursor implements Platform.
func (h *Host[T]) SetCursor(c Cursor) {
	if c == h.cursor {
		return
	}
	h.cursor = c
	if h.setCursor != nil {
		h.setCursor(cursorShape(c))
	}
}

func cursorShape(c Cursor) ebiten.CursorShapeType {
	switch c {
	case CursorText:
		return ebiten.CursorShapeText
	case CursorPointer:
		return ebiten.CursorShapePointer
	case CursorCrosshair:
		return ebiten.CursorShapeCrosshair
	case CursorMove:
		return ebiten.CursorShapeMove
	case CursorNotAllowed:
		return ebiten.CursorShapeNotAllowed
	case CursorEWResize:
		return ebiten.CursorShapeEWResize
	case CursorNSResize:
		return ebiten.CursorShapeNSResize
	}
	return ebiten.CursorShapeDefault
}

// Update implements ebiten.Game. It runs once per tick: the test runner,
// pending resizes, input, due timers and then the animation frame.
func (h *Host[T]) Update() error {
	now := h.now()
	if h.lastTick.IsZero() {
		h.lastTick = now
	}

	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	if h.sizeDirty {
		h.sizeDirty = false
		h.window.Event(SizeEvent{Size: h.size})
		h.window.Layout(h.size)
	}

	h.frame.reset()
	if !h.popInjected(&h.frame) && h.input != nil {
		h.input.Poll(&h.frame)
	}
	h.translator.translate(&h.frame, now, func(ev Event) {
		h.window.Event(ev)
	})

	h.fireTimers(now)

	if h.window.WantsAnimFrame() {
		h.window.AnimFrame(frameNanos(h.lastTick, now))
	}
	h.lastTick = now

	if h.window.Quit() {
		return ebiten.Termination
	}
	return nil
}

// frameNanos is the time between two ticks. A clock that stepped backwards
// yields zero.
func frameNanos(last, now time.Time) uint64 {
	return uint64(max(now.Sub(last), 0))
}

// fireTimers delivers every timer whose deadline has passed, earliest first.
func (h *Host[T]) fireTimers(now time.Time) {
	if len(h.timers) == 0 {
		return
	}
	var due []pendingTimer
	kept := h.timers[:0]
	for _, t := range h.timers {
		if now.Before(t.deadline) {
			kept = append(kept, t)
		} else {
			due = append(due, t)
		}
	}
	h.timers = kept
	slices.SortStableFunc(due, func(a, b pendingTimer) int {
		return a.deadline.Compare(b.deadline)
	})
	for _, t := range due {
		h.window.Event(TimerEvent{Token: t.token})
	}
}

// Draw implements ebiten.Game. The tree is laid out and repainted into the
// display list only when something invalidated it; the list is replayed
// every frame.
func (h *Host[T]) Draw(screen *ebiten.Image) {
	if h.invalid || h.window.NeedsPaint() {
		h.invalid = false
		h.window.Layout(h.size)
		h.list.Reset()
		h.window.Paint(h.list)
	}
	screen.Fill(h.background)
	h.list.Submit(screen)
	h.flushScreenshots(screen)
}

// Layout implements ebiten.Game. A size change is delivered as a SizeEvent on
// the next Update.
func (h *Host[T]) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := Size{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if s != h.size {
		h.size = s
		h.sizeDirty = true
		h.invalid = true
	}
	return outsideWidth, outsideHeight
}

var (
	clipboardOnce sync.Once
	clipboardOK   bool
)

// readClipboard returns the clipboard text. When the system clipboard is
// unavailable (headless Linux without X11, for instance) it reports false
// and Paste events are never produced.
func readClipboard() (string, bool) {
	clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger().Warn("clipboard unavailable, paste disabled", zap.Error(err))
			return
		}
		clipboardOK = true
	})
	if !clipboardOK {
		return "", false
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// Run opens a window for w and blocks until it is closed or receives
// SelectorQuit.
func Run[T Data[T]](w *Window[T], cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.LogLevel != "" {
		if err := InitLogging(cfg.LogLevel); err != nil {
			return err
		}
	}
	w.SetDebugMode(cfg.Debug)

	h := NewHost(w, cfg)
	if cfg.TestScript != "" {
		data, err := os.ReadFile(cfg.TestScript)
		if err != nil {
			return fmt.Errorf("canopy: read test script: %w", err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return err
		}
		h.SetTestRunner(runner)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	title := cfg.Title
	if w.Title() != "" {
		title = w.Title()
	}
	h.SetTitle(title)

	logger().Info("starting window",
		zap.String("window", w.ID().String()),
		zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("canopy: run: %w", err)
	}
	return nil
}
