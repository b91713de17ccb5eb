// Package ecs lets ECS systems observe canopy commands.
//
// [NewDonburiSink] returns a canopy.CommandSink that republishes each
// command a window dispatches as a [CommandEventType] event in a [Donburi]
// world. Systems subscribe to that event type and process the queue once per
// frame:
//
//	window.AddSink(ecs.NewDonburiSink(world))
//	ecs.CommandEventType.Subscribe(world, onCommand)
//	// every tick
//	ecs.CommandEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
