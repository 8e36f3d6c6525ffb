package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvasko/sysforge/internal/logging/events"
	"github.com/nvasko/sysforge/internal/menu"
	uistate "github.com/nvasko/sysforge/internal/ui/state"
)

type popupKind int

const (
	popupNone popupKind = iota
	popupHelp
	popupAction
	popupConfirm
	popupInput
	popupSelect
)

var popupKindNames = map[popupKind]string{
	popupNone:    "none",
	popupHelp:    "help",
	popupAction:  "action",
	popupConfirm: "confirm",
	popupInput:   "input",
	popupSelect:  "select",
}

func (k popupKind) String() string {
	if name, ok := popupKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// popup is the modal layered over the active view. Exactly one popup is
// visible at a time; while one is up all keys route here.
type popup struct {
	kind    popupKind
	title   string
	body    string
	working bool
	failed  bool

	input textinput.Model

	allChoices []string
	query      string
	choices    *uistate.List[string]
}

func (p *popup) active() bool {
	return p.kind != popupNone
}

// openHelpPopup shows contextual help for the selected entry, falling back
// to the key overview when the view has no selection.
func (m *Model) openHelpPopup() {
	title := "Help"
	body := helpPopupBody
	if list := m.currentList(); list != nil {
		if entry, ok := list.Selected(); ok && entry.Help != "" {
			title = entry.Label
			body = entry.Help + "\n\n" + helpPopupBody
		}
	}
	m.popup = popup{kind: popupHelp, title: title, body: body}
	events.Popup.Open(popupHelp.String(), title)
}

func (m *Model) openActionPopup(title string) {
	m.popup = popup{kind: popupAction, title: title, body: "Working…", working: true}
	events.Popup.Open(popupAction.String(), title)
}

func (m *Model) openConfirmPopup(entry menu.Entry) {
	prompt := entry.Prompt
	if prompt == "" {
		prompt = "Proceed?"
	}
	m.pending = &entry
	m.popup = popup{kind: popupConfirm, title: entry.Label, body: prompt}
	events.Popup.Open(popupConfirm.String(), entry.Label)
}

func (m *Model) openInputPopup(entry menu.Entry) {
	in := textinput.New()
	in.Placeholder = entry.Placeholder
	if styles.InputPrompt != nil {
		in.PromptStyle = *styles.InputPrompt
	}
	if styles.InputPlaceholder != nil {
		in.PlaceholderStyle = *styles.InputPlaceholder
	}
	in.Focus()
	m.pending = &entry
	m.popup = popup{kind: popupInput, title: popupTitle(entry), body: "", input: in}
	events.Popup.Open(popupInput.String(), entry.Label)
}

func (m *Model) openSelectPopup(entry menu.Entry, choices []string) {
	m.pending = &entry
	m.popup = popup{
		kind:       popupSelect,
		title:      popupTitle(entry),
		allChoices: choices,
		choices:    uistate.WithItems(choices),
	}
	events.Popup.Open(popupSelect.String(), entry.Label)
}

func popupTitle(entry menu.Entry) string {
	if entry.Prompt != "" {
		return entry.Prompt
	}
	return entry.Label
}

func (m *Model) closePopup(reason string) {
	kind := m.popup.kind
	m.popup = popup{}
	m.pending = nil
	events.Popup.Close(kind.String(), reason)
}

// handlePopupKey routes a key press to the active popup. The view beneath
// never sees keys while a popup is up.
func (m *Model) handlePopupKey(msg tea.KeyMsg) tea.Cmd {
	switch m.popup.kind {
	case popupHelp:
		return m.handleHelpPopupKey(msg)
	case popupAction:
		return m.handleActionPopupKey(msg)
	case popupConfirm:
		return m.handleConfirmPopupKey(msg)
	case popupInput:
		return m.handleInputPopupKey(msg)
	case popupSelect:
		return m.handleSelectPopupKey(msg)
	}
	return nil
}

func (m *Model) handleHelpPopupKey(tea.KeyMsg) tea.Cmd {
	m.closePopup("dismiss")
	return nil
}

func (m *Model) handleActionPopupKey(tea.KeyMsg) tea.Cmd {
	if m.popup.working {
		// The in-flight operation must resolve before the popup closes.
		return nil
	}
	m.closePopup("dismiss")
	return nil
}

func (m *Model) handleConfirmPopupKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter":
		entry := m.pending
		m.closePopup("accept")
		if entry != nil {
			return m.startTask(*entry, "")
		}
		return nil
	case "n", "N", "esc", "q":
		m.closePopup("decline")
	}
	return nil
}

func (m *Model) handleInputPopupKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		value := m.popup.input.Value()
		entry := m.pending
		m.closePopup("submit")
		if entry != nil {
			return m.startTask(*entry, value)
		}
		return nil
	case tea.KeyEsc:
		m.closePopup("cancel")
		return nil
	}
	var cmd tea.Cmd
	m.popup.input, cmd = m.popup.input.Update(msg)
	return cmd
}

func (m *Model) handleSelectPopupKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		m.closePopup("cancel")
		return nil
	case key.Matches(msg, keys.Up):
		m.popup.choices.Previous()
		return nil
	case key.Matches(msg, keys.Down):
		m.popup.choices.Next()
		return nil
	case key.Matches(msg, keys.Confirm):
		choice, ok := m.popup.choices.Selected()
		entry := m.pending
		m.closePopup("submit")
		if ok && entry != nil {
			return m.startTask(*entry, choice)
		}
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.popup.query == "" {
			return nil
		}
		runes := []rune(m.popup.query)
		m.setSelectQuery(string(runes[:len(runes)-1]))
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		m.setSelectQuery(m.popup.query + string(msg.Runes))
	case tea.KeySpace:
		m.setSelectQuery(m.popup.query + " ")
	}
	return nil
}

// setSelectQuery refilters the choice list and resets the selection to the
// first match.
func (m *Model) setSelectQuery(query string) {
	m.popup.query = query
	m.popup.choices = uistate.WithItems(uistate.FilterChoices(m.popup.allChoices, query))
}

const helpPopupBody = `↑/k   move up
↓/j   move down
enter select entry
esc   back to main menu
q     quit (main menu)
?     this overview`
