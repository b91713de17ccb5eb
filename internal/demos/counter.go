package demos

import (
	"fmt"
	"slices"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/widget"
)

// CounterState is the data of the counter demo.
type CounterState struct {
	Count   int
	History []string
}

// Same reports whether two states display the same thing.
func (s CounterState) Same(o CounterState) bool {
	return s.Count == o.Count && slices.Equal(s.History, o.History)
}

// Clone deep-copies the history so snapshots are not aliased.
func (s CounterState) Clone() CounterState {
	s.History = slices.Clone(s.History)
	return s
}

const maxHistory = 5

func (s *CounterState) record(msg string) {
	s.History = append(s.History, msg)
	if len(s.History) > maxHistory {
		s.History = s.History[len(s.History)-maxHistory:]
	}
}

// NewCounter builds the counter demo window.
func NewCounter(env canopy.Env) *canopy.Window[CounterState] {
	buttons := widget.NewRow[CounterState]().WithSpacing(8).
		With(widget.NewButton("-1", func(_ *canopy.EventCtx, s *CounterState, _ canopy.Env) {
			s.Count--
			s.record("decrement")
		}), 0).
		With(widget.NewButton("+1", func(_ *canopy.EventCtx, s *CounterState, _ canopy.Env) {
			s.Count++
			s.record("increment")
		}), 0).
		With(widget.NewButton("Reset", func(ctx *canopy.EventCtx, s *CounterState, _ canopy.Env) {
			s.Count = 0
			s.record("reset")
			ctx.SubmitCommand(canopy.NewCommand(canopy.SelectorSetTitle, "canopy counter"), canopy.Target{})
		}), 0)

	history := widget.NewColumn[CounterState]().WithSpacing(2)
	for i := 0; i < maxHistory; i++ {
		history.With(widget.NewLabel(func(s CounterState, _ canopy.Env) string {
			if i < len(s.History) {
				return fmt.Sprintf("%d. %s", i+1, s.History[i])
			}
			return ""
		}), 0)
	}

	root := widget.NewPadding[CounterState](16, widget.NewColumn[CounterState]().WithSpacing(12).
		With(widget.NewLabel(func(s CounterState, _ canopy.Env) string {
			return fmt.Sprintf("Count: %d", s.Count)
		}), 0).
		With(buttons, 0).
		With(history, 1).
		With(widget.NewFPS[CounterState](), 0))

	return canopy.NewWindow[CounterState](root, CounterState{}, env)
}

func init() {
	register(Demo{
		Name:        "counter",
		Description: "buttons, hover fades, commands and an FPS readout",
		Run: func(cfg canopy.RunConfig, env canopy.Env) error {
			return canopy.Run(NewCounter(env), cfg)
		},
	})
}
