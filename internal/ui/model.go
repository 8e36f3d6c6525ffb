package ui

import (
	"context"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvasko/sysforge/internal/menu"
	"github.com/nvasko/sysforge/internal/task"
	"github.com/nvasko/sysforge/internal/theme"
	"github.com/nvasko/sysforge/internal/ui/command"
	uistate "github.com/nvasko/sysforge/internal/ui/state"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// choicesLoadedMsg delivers the options for a select popup.
type choicesLoadedMsg struct {
	entry   menu.Entry
	choices []string
	err     error
}

// Model implements the Bubble Tea model for the menu engine. All state is
// mutated only inside Update; View is a pure function of this struct.
type Model struct {
	views   map[menu.View]*uistate.List[menu.Entry]
	titles  map[menu.View]string
	view    menu.View
	popup   popup
	pending *menu.Entry

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	registry *task.Registry
	bus      *command.Bus
	ctx      context.Context
	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with the menu catalog and configuration.
func NewModel(registry *task.Registry, width, height int, showFooter, verbose bool, rootView menu.View) *Model {
	views := make(map[menu.View]*uistate.List[menu.Entry])
	titles := make(map[menu.View]string)
	for _, def := range menu.Catalog() {
		views[def.View] = uistate.WithItems(def.Entries)
		titles[def.View] = def.Title
	}
	m := &Model{
		views:    views,
		titles:   titles,
		view:     rootView,
		registry: registry,
		bus:      command.New(),
		ctx:      context.Background(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.showFooter = showFooter
	m.verbose = verbose
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleTaskResultMsg,
		reflect.TypeOf(choicesLoadedMsg{}):  m.handleChoicesLoadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth && size.Width > 0 {
		m.width = size.Width
	}
	if !m.fixedHeight && size.Height > 0 {
		m.height = size.Height
	}
	return nil
}

// currentList returns the selectable list backing the active view, nil for
// views without entries (the help manual).
func (m *Model) currentList() *uistate.List[menu.Entry] {
	return m.views[m.view]
}

func (m *Model) effectiveWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) effectiveHeight() int {
	if m.height > 0 {
		return m.height
	}
	return defaultHeight
}

// CurrentView reports the active primary view. Used by tests and tracing.
func (m *Model) CurrentView() menu.View {
	return m.view
}
