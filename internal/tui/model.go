// Package tui renders the custom shortcuts page in the terminal.
//
// The Model is a bubbletea program over a custom.Page: a listing of the
// custom shortcuts, the add-shortcut drawer, and the replace dialog shown
// while submitted keys wait for a decision.
package tui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/shortcuts/internal/config/watcher"
	"github.com/dshills/shortcuts/internal/logging"
	"github.com/dshills/shortcuts/internal/settings/custom"
	"github.com/dshills/shortcuts/internal/settings/page"
	"github.com/dshills/shortcuts/internal/shortcut"
	"github.com/dshills/shortcuts/internal/shortcut/draft"
)

// ConfigChangedMsg is sent when the configuration file changed on disk.
type ConfigChangedMsg struct {
	Event watcher.Event
}

// item is one row of the listing.
type item struct {
	model   shortcut.Model
	binding shortcut.Binding
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(log *logging.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.log = log.WithComponent("tui")
		}
	}
}

// WithWatcher reloads the configuration with reload whenever events
// delivers a change.
func WithWatcher(events <-chan watcher.Event, reload func() error) Option {
	return func(m *Model) {
		m.events = events
		m.reload = reload
	}
}

// Model is the bubbletea model of the custom shortcuts page.
type Model struct {
	registry *page.Registry
	handle   page.Handle[*custom.Page]
	log      *logging.Logger

	events <-chan watcher.Event
	reload func() error

	name    textinput.Model
	command textinput.Model
	row     textinput.Model
	focus   draft.Field
	rowID   draft.RowID

	// rowSelected marks the row text as selected: the next character
	// replaces it and a deletion clears it.
	rowSelected bool

	items  []item
	cursor int

	help   help.Model
	width  int
	height int
	status string
	err    error
}

// New registers p and enters it.
func New(p *custom.Page, opts ...Option) (*Model, error) {
	m := &Model{
		registry: page.NewRegistry(),
		log:      logging.Nop(),
		name:     newInput("Lock screen", 64),
		command:  newInput("loginctl lock-session", 256),
		row:      newInput("Super+L", 64),
		help:     help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}

	h, err := page.Register(m.registry, p)
	if err != nil {
		return nil, err
	}
	m.handle = h
	if err := m.registry.Activate(h.Entity()); err != nil {
		return nil, err
	}
	m.refresh()
	return m, nil
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.PlaceholderStyle = placeholderStyle
	in.CharLimit = limit
	in.Width = 40
	in.Prompt = ""
	return in
}

func (m *Model) page() *custom.Page {
	return m.handle.Page()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return ConfigChangedMsg{Event: ev}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ConfigChangedMsg:
		m.configChanged(msg.Event)
		return m, m.waitForChange()

	case tea.KeyMsg:
		p := m.page()
		switch {
		case p.PendingCount() > 0:
			return m, m.updateReplace(msg)
		case p.DrawerOpen():
			return m, m.updateForm(msg)
		default:
			return m, m.updateList(msg)
		}
	}

	return m, m.updateInput(msg)
}

func (m *Model) configChanged(ev watcher.Event) {
	m.log.Debug("config changed", "path", ev.Path, "op", ev.Op.String())
	if m.reload != nil {
		if err := m.reload(); err != nil {
			m.log.Warn("reloading config failed", "path", ev.Path, "error", err)
			m.err = err
			return
		}
	}
	if err := m.page().OnEnter(); err != nil {
		m.err = err
		return
	}
	m.status = "Reloaded " + filepath.Base(ev.Path)
	m.refresh()
}

// refresh rebuilds the listing from the page models.
func (m *Model) refresh() {
	m.items = m.items[:0]
	for _, model := range m.page().Models() {
		for _, b := range model.Bindings {
			m.items = append(m.items, item{model: model, binding: b})
		}
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() (item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return item{}, false
	}
	return m.items[m.cursor], true
}

// afterChange picks up persistence failures and closes the inputs once
// the drawer is gone.
func (m *Model) afterChange() {
	p := m.page()
	if err := p.LastError(); err != nil {
		m.err = err
	}
	if !p.DrawerOpen() {
		m.blur()
		m.focus = draft.FieldNone
	}
	m.refresh()
}
