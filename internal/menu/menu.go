// Package menu defines the static catalog of views and entries the engine
// navigates. Catalog data is built once at startup and never mutated.
package menu

import "context"

// View identifies the primary full-screen view.
type View int

const (
	MainMenu View = iota
	HelpManual
	Replicator
	Cloner
	Utilities
	ManualInstaller
)

var viewNames = map[View]string{
	MainMenu:        "main",
	HelpManual:      "help",
	Replicator:      "replicator",
	Cloner:          "cloner",
	Utilities:       "utilities",
	ManualInstaller: "installer",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return "unknown"
}

// ViewByName resolves a view from its configuration name.
func ViewByName(name string) (View, bool) {
	for v, n := range viewNames {
		if n == name {
			return v, true
		}
	}
	return MainMenu, false
}

// Gate describes the popup that must resolve before an Execute action runs.
type Gate int

const (
	// GateNone dispatches immediately.
	GateNone Gate = iota
	// GateConfirm requires a yes/no acknowledgement.
	GateConfirm
	// GateInput collects free text passed to the operation.
	GateInput
	// GateSelect picks one item from a loaded choice list.
	GateSelect
)

// ChoiceLoader produces the options for a GateSelect entry.
type ChoiceLoader func(ctx context.Context) ([]string, error)

// Entry is one selectable row of a view. Immutable after construction.
type Entry struct {
	Icon   string
	Label  string
	Help   string
	Action Action

	Gate        Gate
	Prompt      string       // confirm question, input title, or select title
	Placeholder string       // input hint
	Choices     ChoiceLoader // GateSelect options
}

// Definition is a named ordered list of entries backing one view.
type Definition struct {
	View    View
	Title   string
	Entries []Entry
}
