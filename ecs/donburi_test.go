package ecs

import (
	"testing"

	"github.com/phanxgames/canopy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type counter int

func (c counter) Same(o counter) bool { return c == o }

// emitter submits a command on every mouse press.
type emitter struct{ sel canopy.Selector }

func (e emitter) Event(ctx *canopy.EventCtx, ev canopy.Event, _ *counter, _ canopy.Env) {
	if _, ok := ev.(canopy.MouseDown); ok {
		ctx.SubmitCommand(canopy.NewCommand(e.sel, 7), canopy.Target{})
	}
}

func (emitter) Lifecycle(*canopy.LifeCycleCtx, canopy.LifeCycle, counter, canopy.Env) {}

func (emitter) Update(*canopy.UpdateCtx, counter, counter, canopy.Env) {}

func (emitter) Layout(_ *canopy.LayoutCtx, bc canopy.BoxConstraints, _ counter, _ canopy.Env) canopy.Size {
	return bc.Max
}

func (emitter) Paint(*canopy.PaintCtx, counter, canopy.Env) {}

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitCommand(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []canopy.QueuedCommand
	CommandEventType.Subscribe(world, func(w donburi.World, qc canopy.QueuedCommand) {
		received = append(received, qc)
	})

	sink.EmitCommand(canopy.QueuedCommand{
		Target:  canopy.WidgetTarget(42),
		Command: canopy.NewCommand("app.select", "row-3"),
	})
	sink.EmitCommand(canopy.QueuedCommand{Command: canopy.NewCommand(canopy.SelectorQuit, nil)})

	// Events are queued; process them.
	CommandEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(received))
	}
	if id, ok := received[0].Target.Widget(); !ok || id != 42 {
		t.Errorf("command 0 target: %v", received[0].Target)
	}
	if received[0].Command.Object != "row-3" {
		t.Errorf("command 0 object: %v", received[0].Command.Object)
	}
	if !received[1].Command.Is(canopy.SelectorQuit) {
		t.Errorf("command 1: %v", received[1].Command)
	}
}

func TestDonburiSink_SelectorFilter(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world, "app.keep")

	var got []canopy.Selector
	CommandEventType.Subscribe(world, func(w donburi.World, qc canopy.QueuedCommand) {
		got = append(got, qc.Command.Selector)
	})

	sink.EmitCommand(canopy.QueuedCommand{Command: canopy.NewCommand("app.drop", nil)})
	sink.EmitCommand(canopy.QueuedCommand{Command: canopy.NewCommand("app.keep", nil)})
	events.ProcessAllEvents(world)

	if len(got) != 1 || got[0] != "app.keep" {
		t.Errorf("got %v, want [app.keep]", got)
	}
}

func TestDonburiSink_WindowDispatch(t *testing.T) {
	world := donburi.NewWorld()
	w := canopy.NewWindow[counter](emitter{sel: "app.ping"}, 0, canopy.Env{})
	w.AddSink(NewDonburiSink(world))
	w.Layout(canopy.Size{Width: 100, Height: 100})

	var count int
	CommandEventType.Subscribe(world, func(_ donburi.World, qc canopy.QueuedCommand) {
		if qc.Command.Is("app.ping") && qc.Target.Window() == w.ID() {
			count++
		}
	})

	w.Event(canopy.MouseDown{MouseEvent: canopy.MouseEvent{
		Pos:    canopy.Point{X: 10, Y: 10},
		Button: canopy.MouseButtonLeft,
	}})
	events.ProcessAllEvents(world)

	if count != 1 {
		t.Errorf("expected the window to publish one command, got %d", count)
	}
}
