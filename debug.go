package canopy

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// debugSlowPass is the pass duration above which debug mode logs at warn
// level instead of debug.
const debugSlowPass = 4 * time.Millisecond

// SetDebugMode enables or disables debug mode. When enabled, every pass the
// window runs is timed and logged, and passes slower than a frame budget
// slice are reported as warnings.
func (w *Window[T]) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (w *Window[T]) DebugMode() bool { return w.debug }

// debugPass logs one pass timing.
func (w *Window[T]) debugPass(pass string, took time.Duration, fields ...zap.Field) {
	fields = append(fields,
		zap.String("pass", pass),
		zap.Duration("took", took),
		zap.String("window", w.id.String()))
	if took > debugSlowPass {
		logger().Warn("slow pass", fields...)
		return
	}
	logger().Debug("pass", fields...)
}

// eventName returns a short name for ev used in debug output.
func eventName(ev Event) string {
	switch e := ev.(type) {
	case TargetedCommand:
		return "TargetedCommand(" + string(e.Command.Selector) + ")"
	case CommandEvent:
		return "CommandEvent(" + string(e.Command.Selector) + ")"
	}
	return typeName(ev)
}

// lifecycleName returns a short name for ev used in debug output.
func lifecycleName(ev LifeCycle) string {
	return typeName(ev)
}

func typeName(v any) string {
	s := fmt.Sprintf("%T", v)
	return s[strings.LastIndexByte(s, '.')+1:]
}

// debugMaxFocusChain is the focus chain length above which debug mode warns.
const debugMaxFocusChain = 1024

// debugCheckFocusChain warns about widgets that registered for focus more
// than once in a single Register pass, which makes traversal skip entries.
func debugCheckFocusChain(chain []WidgetID) {
	seen := make(map[WidgetID]struct{}, len(chain))
	for _, id := range chain {
		if _, dup := seen[id]; dup {
			logger().Warn("widget registered for focus twice", widgetField(id))
			continue
		}
		seen[id] = struct{}{}
	}
	if len(chain) > debugMaxFocusChain {
		logger().Warn("focus chain is unusually long", zap.Int("len", len(chain)))
	}
}
