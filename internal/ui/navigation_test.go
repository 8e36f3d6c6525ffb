package ui

import (
	"testing"

	"github.com/nvasko/sysforge/internal/menu"
)

func TestCursorWrapsAround(t *testing.T) {
	h, _ := newTestHarness(t)
	list := h.Model().currentList()
	n := list.Len()
	if n == 0 {
		t.Fatal("main menu has no entries")
	}
	for i := 0; i < n-1; i++ {
		h.Key("down")
	}
	if got := list.Index(); got != n-1 {
		t.Fatalf("expected cursor %d, got %d", n-1, got)
	}
	h.Key("down")
	if got := list.Index(); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	h.Key("up")
	if got := list.Index(); got != n-1 {
		t.Fatalf("expected wrap to %d, got %d", n-1, got)
	}
}

func TestVimKeysMoveCursor(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Key("j")
	if got := h.Model().currentList().Index(); got != 1 {
		t.Fatalf("j did not move cursor: %d", got)
	}
	h.Key("k")
	if got := h.Model().currentList().Index(); got != 0 {
		t.Fatalf("k did not move cursor: %d", got)
	}
}

func TestEnterSwitchesView(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Key("enter")
	if got := h.Model().CurrentView(); got != menu.Replicator {
		t.Fatalf("expected replicator view, got %s", got)
	}
}

func TestEscReturnsToMainMenu(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Key("down")
	h.Key("down")
	h.Key("enter")
	if got := h.Model().CurrentView(); got != menu.Utilities {
		t.Fatalf("expected utilities view, got %s", got)
	}
	h.Key("esc")
	if got := h.Model().CurrentView(); got != menu.MainMenu {
		t.Fatalf("expected main menu after esc, got %s", got)
	}
}

func TestQuitKeyOnMainMenu(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Key("q")
	if !h.Quit() {
		t.Fatal("expected quit from main menu q")
	}
}

func TestQuitKeyOnSubViewReturnsToMain(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Key("enter")
	h.Key("q")
	if h.Quit() {
		t.Fatal("q on a sub view must not quit")
	}
	if got := h.Model().CurrentView(); got != menu.MainMenu {
		t.Fatalf("expected main menu, got %s", got)
	}
}

func TestForceQuitAlwaysQuits(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Key("enter")
	h.Key("ctrl+c")
	if !h.Quit() {
		t.Fatal("ctrl+c must quit from any view")
	}
}

func TestHelpPopupDismissesOnAnyKey(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Key("?")
	if !h.Model().popup.active() {
		t.Fatal("expected help popup")
	}
	h.Key("down")
	if h.Model().popup.active() {
		t.Fatal("any key must dismiss the help popup")
	}
	if got := h.Model().currentList().Index(); got != 0 {
		t.Fatalf("popup key must not move the menu cursor, got %d", got)
	}
	if got := h.Model().CurrentView(); got != menu.MainMenu {
		t.Fatalf("view changed across popup: %s", got)
	}
}

func TestManualViewRoundTrip(t *testing.T) {
	h, _ := newTestHarness(t)
	for i := 0; i < 4; i++ {
		h.Key("down")
	}
	h.Key("enter")
	if got := h.Model().CurrentView(); got != menu.HelpManual {
		t.Fatalf("expected help manual, got %s", got)
	}
	h.Key("esc")
	if got := h.Model().CurrentView(); got != menu.MainMenu {
		t.Fatalf("expected main menu after esc, got %s", got)
	}
}

func TestSetViewClearsPopup(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Key("?")
	if !h.Model().popup.active() {
		t.Fatal("expected help popup")
	}
	h.Model().setView(menu.Utilities)
	if h.Model().popup.active() {
		t.Fatal("no popup may survive a view change")
	}
}

func TestSelectionPreservedAcrossViewChange(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Key("down")
	h.Key("enter")
	if got := h.Model().CurrentView(); got != menu.Cloner {
		t.Fatalf("expected cloner view, got %s", got)
	}
	h.Key("esc")
	if got := h.Model().currentList().Index(); got != 1 {
		t.Fatalf("main menu cursor not preserved: %d", got)
	}
}
