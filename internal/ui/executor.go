package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvasko/sysforge/internal/logging"
	"github.com/nvasko/sysforge/internal/logging/events"
	"github.com/nvasko/sysforge/internal/menu"
	"github.com/nvasko/sysforge/internal/task"
	"github.com/nvasko/sysforge/internal/ui/command"
)

// dispatch runs the entry's action, opening a gate popup first when the entry
// declares one. Returns the command for asynchronous work, nil otherwise.
func (m *Model) dispatch(entry menu.Entry) tea.Cmd {
	events.UI.MenuEnter(m.view.String(), entry.Label, entry.Action.String())
	switch entry.Action.Kind {
	case menu.ActionQuit:
		events.App.Exit("menu")
		return tea.Quit
	case menu.ActionSetView:
		m.setView(entry.Action.View)
		return nil
	case menu.ActionExecute:
		switch entry.Gate {
		case menu.GateConfirm:
			m.openConfirmPopup(entry)
			return nil
		case menu.GateInput:
			m.openInputPopup(entry)
			return nil
		case menu.GateSelect:
			return m.loadChoices(entry)
		default:
			return m.startTask(entry, "")
		}
	}
	return nil
}

// setView switches the primary view. Any live popup is discarded; no popup
// survives a view transition.
func (m *Model) setView(v menu.View) {
	if m.popup.active() {
		m.closePopup("view-change")
	}
	if v == m.view {
		return
	}
	events.UI.ViewChange(m.view.String(), v.String())
	m.view = v
}

// loadChoices fetches the options for a select gate off the Update loop. The
// working popup holds the screen until the loader resolves.
func (m *Model) loadChoices(entry menu.Entry) tea.Cmd {
	if entry.Choices == nil {
		m.openActionPopup(entry.Label)
		m.finishAction(entry.Action.Task, "", fmt.Errorf("%s: no choices available", entry.Label))
		return nil
	}
	m.openActionPopup(entry.Label)
	ctx := m.ctx
	return func() tea.Msg {
		choices, err := entry.Choices(ctx)
		return choicesLoadedMsg{entry: entry, choices: choices, err: err}
	}
}

func (m *Model) handleChoicesLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded := msg.(choicesLoadedMsg)
	if loaded.err != nil {
		m.finishAction(loaded.entry.Action.Task, "", loaded.err)
		return nil
	}
	if len(loaded.choices) == 0 {
		m.finishAction(loaded.entry.Action.Task, "", fmt.Errorf("%s: nothing to select", loaded.entry.Label))
		return nil
	}
	m.closePopup("choices-loaded")
	m.openSelectPopup(loaded.entry, loaded.choices)
	return nil
}

// startTask installs the working popup and returns the command that runs the
// operation. One operation is in flight at a time; the popup blocks further
// dispatch until the result lands.
func (m *Model) startTask(entry menu.Entry, arg string) tea.Cmd {
	id := entry.Action.Task
	fn, ok := m.registry.Lookup(id)
	if !ok {
		m.openActionPopup(entry.Label)
		m.finishAction(id, "", fmt.Errorf("unknown operation %q", id))
		return nil
	}
	m.openActionPopup(entry.Label)
	return m.bus.Execute(m.ctx, command.Request{ID: id, Arg: arg, Fn: fn})
}

func (m *Model) handleTaskResultMsg(msg tea.Msg) tea.Cmd {
	result := msg.(command.Result)
	m.finishAction(result.ID, result.Info, result.Err)
	return nil
}

// finishAction resolves the working popup with the operation outcome. Errors
// keep the session alive; the popup shows the failure and waits for a
// dismissal key.
func (m *Model) finishAction(id task.ID, info string, err error) {
	if m.popup.kind != popupAction {
		return
	}
	m.popup.working = false
	if err != nil {
		m.popup.failed = true
		m.popup.body = err.Error()
		events.Task.Error(string(id), err)
		logging.Error(err)
		return
	}
	if info == "" {
		info = "Done."
	}
	m.popup.body = info
	events.Task.Success(string(id), info)
}
