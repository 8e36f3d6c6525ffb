package menu

import (
	"testing"

	"github.com/nvasko/sysforge/internal/task"
)

func TestCatalogEntriesAreComplete(t *testing.T) {
	registry := task.DefaultRegistry(t.TempDir())
	seen := map[View]bool{}
	for _, def := range Catalog() {
		if seen[def.View] {
			t.Fatalf("view %s defined twice", def.View)
		}
		seen[def.View] = true
		if def.Title == "" {
			t.Fatalf("view %s has no title", def.View)
		}
		if len(def.Entries) == 0 {
			t.Fatalf("view %s has no entries", def.View)
		}
		for _, entry := range def.Entries {
			if entry.Label == "" || entry.Help == "" {
				t.Fatalf("view %s: entry %q missing label or help", def.View, entry.Label)
			}
			if entry.Action.Kind == ActionExecute {
				if _, ok := registry.Lookup(entry.Action.Task); !ok {
					t.Fatalf("view %s: entry %q references unregistered task %s", def.View, entry.Label, entry.Action.Task)
				}
			}
			if entry.Gate == GateSelect && entry.Choices == nil {
				t.Fatalf("view %s: entry %q has a select gate but no choice loader", def.View, entry.Label)
			}
			if entry.Gate != GateNone && entry.Action.Kind != ActionExecute {
				t.Fatalf("view %s: entry %q gates a non-execute action", def.View, entry.Label)
			}
		}
	}
	if !seen[MainMenu] {
		t.Fatalf("catalog must define the main menu")
	}
}

func TestCatalogSubViewsReachableFromMain(t *testing.T) {
	targets := map[View]bool{}
	defs := Catalog()
	var main *Definition
	for i := range defs {
		if defs[i].View == MainMenu {
			main = &defs[i]
		}
	}
	if main == nil {
		t.Fatalf("main menu missing")
	}
	for _, entry := range main.Entries {
		if entry.Action.Kind == ActionSetView {
			targets[entry.Action.View] = true
		}
	}
	for _, def := range Catalog() {
		if def.View == MainMenu {
			continue
		}
		if !targets[def.View] {
			t.Fatalf("view %s is not reachable from the main menu", def.View)
		}
	}
	if !targets[HelpManual] {
		t.Fatalf("help manual must be reachable from the main menu")
	}
}

func TestSubViewsCarryBackEntry(t *testing.T) {
	for _, def := range Catalog() {
		if def.View == MainMenu {
			continue
		}
		last := def.Entries[len(def.Entries)-1]
		if last.Action.Kind != ActionSetView || last.Action.View != MainMenu {
			t.Fatalf("view %s: expected final entry to return to the main menu, got %s", def.View, last.Action)
		}
	}
}

func TestViewByName(t *testing.T) {
	cases := []struct {
		name string
		want View
		ok   bool
	}{
		{"main", MainMenu, true},
		{"replicator", Replicator, true},
		{"installer", ManualInstaller, true},
		{"bogus", MainMenu, false},
	}
	for _, tc := range cases {
		got, ok := ViewByName(tc.name)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("ViewByName(%q) = %v, %v; want %v, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestActionString(t *testing.T) {
	if got := Quit().String(); got != "quit" {
		t.Fatalf("unexpected quit string %q", got)
	}
	if got := SetView(Cloner).String(); got != "set-view:cloner" {
		t.Fatalf("unexpected set-view string %q", got)
	}
	if got := Execute(task.DiskUsage).String(); got != "execute:util:disk-usage" {
		t.Fatalf("unexpected execute string %q", got)
	}
}
