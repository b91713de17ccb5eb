package canopy

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep is one entry of a JSON test script. Which fields apply depends
// on Action.
type scriptStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Frames int      `json:"frames,omitempty"`
	Key    string   `json:"key,omitempty"`
	Mods   []string `json:"mods,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// scriptAction performs a compiled step and returns how many further ticks
// to idle before the next one.
type scriptAction func(h injector) (idle int)

// TestRunner plays a script of injected input and screenshots against a
// Host, one step per tick. A step only runs once the input queued by the
// previous one has been consumed.
type TestRunner struct {
	actions []scriptAction
	next    int
	idle    int
	done    bool
}

// LoadTestScript parses a JSON test script of the form
// {"steps": [{"action": "click", "x": 10, "y": 20}, ...]}. Every step is
// checked up front, so a bad key name fails here rather than mid-run.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	r := &TestRunner{actions: make([]scriptAction, 0, len(script.Steps))}
	for i, st := range script.Steps {
		act, err := compileStep(st)
		if err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
		r.actions = append(r.actions, act)
	}
	return r, nil
}

func compileStep(st scriptStep) (scriptAction, error) {
	switch st.Action {
	case "screenshot":
		return func(h injector) int {
			h.Screenshot(st.Label)
			return 0
		}, nil
	case "click":
		return func(h injector) int {
			h.InjectClick(st.X, st.Y)
			return 0
		}, nil
	case "move":
		return func(h injector) int {
			h.InjectHover(st.X, st.Y)
			return 0
		}, nil
	case "drag":
		frames := max(st.Frames, 2)
		return func(h injector) int {
			h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
			return 0
		}, nil
	case "key":
		key, err := parseKey(st.Key)
		if err != nil {
			return nil, err
		}
		mods := parseMods(st.Mods)
		return func(h injector) int {
			h.InjectKey(key, mods)
			return 0
		}, nil
	case "type":
		return func(h injector) int {
			h.InjectText(st.Text)
			return 0
		}, nil
	case "wait":
		// The tick the wait step runs on counts as the first one.
		idle := max(st.Frames-1, 0)
		return func(injector) int { return idle }, nil
	}
	return nil, fmt.Errorf("unknown action %q", st.Action)
}

// SetTestRunner attaches a TestRunner. It is stepped at the start of every
// Host.Update.
func (h *Host[T]) SetTestRunner(runner *TestRunner) {
	h.testRunner = runner
}

// Done reports whether every step has run and its input has been consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Len returns the number of steps in the script.
func (r *TestRunner) Len() int { return len(r.actions) }

func (r *TestRunner) step(h injector) {
	switch {
	case r.done, h.Pending() > 0:
		return
	case r.idle > 0:
		r.idle--
		return
	case r.next == len(r.actions):
		r.done = true
		return
	}

	r.idle = r.actions[r.next](h)
	r.next++
	if r.next == len(r.actions) && r.idle == 0 && h.Pending() == 0 {
		r.done = true
	}
}

// injector is the part of Host a TestRunner drives.
type injector interface {
	Pending() int
	Screenshot(label string)
	InjectClick(x, y float64)
	InjectHover(x, y float64)
	InjectDrag(fromX, fromY, toX, toY float64, frames int)
	InjectKey(key ebiten.Key, mods KeyModifiers)
	InjectText(s string)
}

// parseKey resolves an Ebitengine key name such as "Tab", "Enter" or "A".
func parseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

func parseMods(names []string) KeyModifiers {
	var mods KeyModifiers
	for _, n := range names {
		switch strings.ToLower(n) {
		case "shift":
			mods |= ModShift
		case "ctrl", "control":
			mods |= ModCtrl
		case "alt", "option":
			mods |= ModAlt
		case "meta", "cmd", "super":
			mods |= ModMeta
		}
	}
	return mods
}
