package ecs

import (
	"github.com/phanxgames/canopy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CommandEventType is the Donburi event type for dispatched canopy commands.
// Subscribe to this in your ECS systems to react to UI commands.
var CommandEventType = events.NewEventType[canopy.QueuedCommand]()

type donburiSink struct {
	world     donburi.World
	selectors map[canopy.Selector]struct{}
}

// NewDonburiSink creates a CommandSink backed by a Donburi world. Commands
// are published to CommandEventType and can be consumed with
// events.Subscribe and ProcessEvents. When selectors are given, only
// commands with one of those selectors are published.
func NewDonburiSink(world donburi.World, selectors ...canopy.Selector) canopy.CommandSink {
	s := &donburiSink{world: world}
	if len(selectors) > 0 {
		s.selectors = make(map[canopy.Selector]struct{}, len(selectors))
		for _, sel := range selectors {
			s.selectors[sel] = struct{}{}
		}
	}
	return s
}

func (s *donburiSink) EmitCommand(qc canopy.QueuedCommand) {
	if s.selectors != nil {
		if _, ok := s.selectors[qc.Command.Selector]; !ok {
			return
		}
	}
	CommandEventType.Publish(s.world, qc)
}
