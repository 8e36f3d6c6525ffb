package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvasko/sysforge/internal/logging/events"
	"github.com/nvasko/sysforge/internal/menu"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	if key.Matches(keyMsg, keys.ForceQuit) {
		events.App.Exit("force-quit")
		return tea.Quit
	}
	if m.popup.active() {
		return m.handlePopupKey(keyMsg)
	}
	if m.view == menu.HelpManual {
		return m.handleManualKey(keyMsg)
	}
	return m.handleMenuKey(keyMsg)
}

// handleManualKey drives the full-screen help view. Any navigation key
// returns to the main menu.
func (m *Model) handleManualKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Confirm), key.Matches(msg, keys.Quit):
		m.setView(menu.MainMenu)
	}
	return nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	list := m.currentList()
	switch {
	case key.Matches(msg, keys.Up):
		if list != nil {
			list.Previous()
			events.UI.MenuCursor(m.view.String(), list.Index())
		}
	case key.Matches(msg, keys.Down):
		if list != nil {
			list.Next()
			events.UI.MenuCursor(m.view.String(), list.Index())
		}
	case key.Matches(msg, keys.Confirm):
		if list == nil {
			return nil
		}
		entry, ok := list.Selected()
		if !ok {
			return nil
		}
		return m.dispatch(entry)
	case key.Matches(msg, keys.Back):
		if m.view != menu.MainMenu {
			m.setView(menu.MainMenu)
		}
	case key.Matches(msg, keys.Quit):
		if m.view == menu.MainMenu {
			events.App.Exit("quit-key")
			return tea.Quit
		}
		m.setView(menu.MainMenu)
	case key.Matches(msg, keys.Help):
		m.openHelpPopup()
	}
	return nil
}
