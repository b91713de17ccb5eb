package canopy

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates one float64 value between two endpoints. Widgets drive it
// from their AnimFrame handler and keep requesting frames until Done.
//
// There is no global animation manager; each widget owns its tweens.
type Tween struct {
	tw       *gween.Tween
	fn       ease.TweenFunc
	duration float32
	from     float64
	to       float64
	value    float64
	Done     bool
}

// NewTween creates a tween from one value to another over duration.
func NewTween(from, to float64, duration time.Duration, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	d := float32(duration.Seconds())
	return &Tween{
		tw:       gween.New(float32(from), float32(to), d, fn),
		fn:       fn,
		duration: d,
		from:     from,
		to:       to,
		value:    from,
		Done:     d <= 0,
	}
}

// Advance moves the tween forward by the nanoseconds reported in an
// AnimFrame and returns the new value. A zero-length tween jumps to its end.
func (t *Tween) Advance(nanos uint64) float64 {
	if t.Done {
		if t.duration <= 0 {
			t.value = t.to
		}
		return t.value
	}
	val, finished := t.tw.Update(float32(float64(nanos) / float64(time.Second)))
	t.value = float64(val)
	if finished {
		t.value = t.to
		t.Done = true
	}
	return t.value
}

// Value returns the current value.
func (t *Tween) Value() float64 { return t.value }

// Target returns the value the tween is heading to.
func (t *Tween) Target() float64 { return t.to }

// Retarget restarts the tween from its current value toward to, keeping the
// duration and easing. It is a no-op when to is already the target.
func (t *Tween) Retarget(to float64) {
	if to == t.to {
		return
	}
	t.from = t.value
	t.to = to
	t.tw = gween.New(float32(t.from), float32(to), t.duration, t.fn)
	t.Done = t.duration <= 0
	if t.Done {
		t.value = to
	}
}

// Reset rewinds the tween to its start value.
func (t *Tween) Reset() {
	t.tw.Reset()
	t.value = t.from
	t.Done = t.duration <= 0
}
