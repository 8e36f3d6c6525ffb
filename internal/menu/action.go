package menu

import (
	"fmt"

	"github.com/nvasko/sysforge/internal/task"
)

// ActionKind discriminates the closed set of operations a menu entry can bind.
type ActionKind int

const (
	// ActionQuit terminates the session.
	ActionQuit ActionKind = iota
	// ActionSetView switches the primary view synchronously.
	ActionSetView
	// ActionExecute runs a registered asynchronous operation.
	ActionExecute
)

// Action is the tagged operation bound to a menu entry. Navigation travels
// only through Quit/SetView; the Execute result channel carries success or
// failure text and nothing else.
type Action struct {
	Kind ActionKind
	View View    // SetView target
	Task task.ID // Execute operation
}

// Quit builds the session-terminating action.
func Quit() Action {
	return Action{Kind: ActionQuit}
}

// SetView builds a synchronous view transition.
func SetView(v View) Action {
	return Action{Kind: ActionSetView, View: v}
}

// Execute builds an asynchronous operation dispatch.
func Execute(id task.ID) Action {
	return Action{Kind: ActionExecute, Task: id}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionQuit:
		return "quit"
	case ActionSetView:
		return fmt.Sprintf("set-view:%s", a.View)
	case ActionExecute:
		return fmt.Sprintf("execute:%s", a.Task)
	default:
		return fmt.Sprintf("unknown(%d)", int(a.Kind))
	}
}
