package canopy

import "fmt"

// Selector names a command.
type Selector string

// Built-in selectors handled by Window before the command reaches the tree.
const (
	// SelectorSetTitle sets the window title. Object is a string.
	SelectorSetTitle Selector = "canopy.set-title"
	// SelectorQuit asks the host to stop the loop.
	SelectorQuit Selector = "canopy.quit"
)

// Command is a message submitted during a pass and delivered after it.
type Command struct {
	Selector Selector
	Object   any
}

// NewCommand builds a command.
func NewCommand(sel Selector, obj any) Command {
	return Command{Selector: sel, Object: obj}
}

// Is reports whether c has selector sel.
func (c Command) Is(sel Selector) bool { return c.Selector == sel }

func (c Command) String() string {
	if c.Object == nil {
		return string(c.Selector)
	}
	return fmt.Sprintf("%s(%v)", c.Selector, c.Object)
}

// Target is the destination of a command: a window or a single widget.
type Target struct {
	widget WidgetID
	window WindowID
}

// WindowTarget addresses the window itself.
func WindowTarget(id WindowID) Target { return Target{window: id} }

// WidgetTarget addresses one widget.
func WidgetTarget(id WidgetID) Target { return Target{widget: id} }

// Widget returns the targeted widget, if any.
func (t Target) Widget() (WidgetID, bool) { return t.widget, !t.widget.IsZero() }

// Window returns the targeted window. Only meaningful when Widget reports false.
func (t Target) Window() WindowID { return t.window }

func (t Target) String() string {
	if id, ok := t.Widget(); ok {
		return id.String()
	}
	return "Window(" + t.window.String() + ")"
}

// QueuedCommand is one entry of a CommandQueue.
type QueuedCommand struct {
	Target  Target
	Command Command
}

// CommandQueue collects commands submitted during a pass, in call order. The
// window drains it once the pass has fully completed.
type CommandQueue struct {
	items []QueuedCommand
}

// Push appends a command.
func (q *CommandQueue) Push(target Target, cmd Command) {
	q.items = append(q.items, QueuedCommand{Target: target, Command: cmd})
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int { return len(q.items) }

// Drain returns the pending commands in submission order and empties the queue.
func (q *CommandQueue) Drain() []QueuedCommand {
	out := q.items
	q.items = nil
	return out
}

// CommandSink observes every command the window dispatches, before the tree
// sees it. Used for ECS bridges and tracing.
type CommandSink interface {
	EmitCommand(QueuedCommand)
}
