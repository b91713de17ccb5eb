package demos

import (
	"fmt"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/widget"
)

// FormState is the data of the form demo.
type FormState struct {
	Name      string
	Email     string
	Submitted int
}

// Same reports whether two states are equal.
func (s FormState) Same(o FormState) bool { return s == o }

// NameFieldID is the id of the name field, focused on start.
var NameFieldID = canopy.NextWidgetID()

// NewForm builds the form demo window. Tab and Shift+Tab move focus between
// the fields; Submit sets the window title; Quit closes the window.
func NewForm(env canopy.Env) *canopy.Window[FormState] {
	name := widget.NewTextBox(
		func(s FormState) string { return s.Name },
		func(s *FormState, v string) { s.Name = v },
	).WithPlaceholder("name")
	email := widget.NewTextBox(
		func(s FormState) string { return s.Email },
		func(s *FormState, v string) { s.Email = v },
	).WithPlaceholder("email")

	actions := widget.NewRow[FormState]().WithSpacing(8).
		With(widget.NewButton("Submit", func(ctx *canopy.EventCtx, s *FormState, _ canopy.Env) {
			s.Submitted++
			title := fmt.Sprintf("%s <%s>", s.Name, s.Email)
			ctx.SubmitCommand(canopy.NewCommand(canopy.SelectorSetTitle, title), canopy.Target{})
		}), 0).
		With(widget.NewButton("Quit", func(ctx *canopy.EventCtx, _ *FormState, _ canopy.Env) {
			ctx.SubmitCommand(canopy.NewCommand(canopy.SelectorQuit, nil), canopy.Target{})
		}), 0)

	root := widget.NewPadding[FormState](16, widget.NewColumn[FormState]().WithSpacing(10).
		With(widget.NewStaticLabel[FormState]("Name"), 0).
		With(widget.WithID[FormState](NameFieldID, name), 0).
		With(widget.NewStaticLabel[FormState]("Email"), 0).
		With(email, 0).
		With(actions, 0).
		With(widget.NewLabel(func(s FormState, _ canopy.Env) string {
			return fmt.Sprintf("submitted %d times", s.Submitted)
		}), 0))

	w := canopy.NewWindow[FormState](root, FormState{}, env)
	w.SetFocus(NameFieldID)
	return w
}

func init() {
	register(Demo{
		Name:        "form",
		Description: "text boxes, focus traversal, paste and caret blink timers",
		Run: func(cfg canopy.RunConfig, env canopy.Env) error {
			return canopy.Run(NewForm(env), cfg)
		},
	})
}
