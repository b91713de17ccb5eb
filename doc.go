// Package canopy is a retained-mode widget-tree runtime for [Ebitengine].
//
// Widgets form a tree. Each widget is wrapped in a [WidgetPod], which owns
// its layout rectangle, its hot/active/focus bookkeeping and its last data
// snapshot, and decides how each pass reaches the widget:
//
//   - the event pass delivers input and commands, mutating application data;
//   - the lifecycle pass delivers notifications (WidgetAdded, Register,
//     AnimFrame, focus changes);
//   - the update pass tells widgets their data or [Env] changed;
//   - the layout pass sizes widgets under [BoxConstraints];
//   - the paint pass records drawing onto a [Surface].
//
// A [Window] drives those passes over one tree and resolves focus changes
// and queued commands between them. A [Host] runs a Window inside the
// Ebitengine game loop:
//
//	root := widget.NewFlex[AppState](widget.Column).
//		With(widget.NewLabel(func(s AppState, _ canopy.Env) string { return s.Title }), 0).
//		With(widget.NewButton[AppState]("Add", onAdd), 0)
//	win := canopy.NewWindow(root, AppState{}, canopy.DefaultTheme())
//	if err := canopy.Run(win, canopy.DefaultRunConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// # Data
//
// Application data must implement [Data]: Same reports whether two values
// are observably identical, and is what lets the update pass skip unchanged
// subtrees. Values implementing [Cloner] are deep-copied when a pod takes
// its snapshot.
//
// # Focus
//
// Widgets opt into keyboard traversal with [LifeCycleCtx.RegisterForFocus]
// while handling Register. Focus requests made during an event are resolved
// after the pass, and the tree is told with RouteFocusChanged and
// FocusChanged.
//
// # Commands
//
// [EventCtx.SubmitCommand] queues a [Command] for a window or a widget. The
// window delivers queued commands after the current pass, in submission
// order. The ecs module mirrors dispatched commands into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package canopy
