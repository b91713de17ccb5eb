package canopy

import "fmt"

// FocusChangeKind enumerates the ways a widget can ask to move focus.
type FocusChangeKind uint8

const (
	FocusTo       FocusChangeKind = iota // a specific widget wants focus
	FocusResign                          // the focused widget gives focus up
	FocusNext                            // move to the next focusable widget
	FocusPrevious                        // move to the previous focusable widget
)

// FocusChange is a pending focus request recorded during an event pass and
// resolved by the Window once the pass completes.
type FocusChange struct {
	Kind FocusChangeKind
	ID   WidgetID // only for FocusTo
}

func (fc FocusChange) String() string {
	switch fc.Kind {
	case FocusTo:
		return fmt.Sprintf("FocusTo(%s)", fc.ID)
	case FocusResign:
		return "Resign"
	case FocusNext:
		return "Next"
	case FocusPrevious:
		return "Previous"
	}
	return "FocusChange(?)"
}

// resolveFocus computes the new focus holder for change, given the focus
// chain in traversal order and the current holder.
func resolveFocus(chain []WidgetID, current WidgetID, change FocusChange) WidgetID {
	switch change.Kind {
	case FocusTo:
		return change.ID
	case FocusResign:
		return 0
	case FocusNext, FocusPrevious:
		if len(chain) == 0 {
			return current
		}
		idx := -1
		for i, id := range chain {
			if id == current {
				idx = i
				break
			}
		}
		if idx < 0 {
			if change.Kind == FocusNext {
				return chain[0]
			}
			return chain[len(chain)-1]
		}
		step := 1
		if change.Kind == FocusPrevious {
			step = -1
		}
		return chain[(idx+step+len(chain))%len(chain)]
	}
	return current
}
