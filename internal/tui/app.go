package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/contact-manager/internal/contact"
	"github.com/pdxmph/contact-manager/internal/export"
	"github.com/pdxmph/contact-manager/internal/form"
	"github.com/pdxmph/contact-manager/internal/query"
	"github.com/pdxmph/contact-manager/internal/store"
)

// Options configures the UI.
type Options struct {
	// ExportDir is where `w` writes session snapshots. Empty disables export.
	ExportDir string
	Logger    *slog.Logger
}

// Model represents the main application state.
type Model struct {
	store     *store.Store
	results   *query.Cache
	log       *slog.Logger
	exportDir string

	cursor int
	width  int
	height int

	// Search
	searchMode bool
	search     textinput.Model

	// Add/edit modal
	modal  form.Mode
	draft  form.Draft
	errors contact.Errors
	field  int // index into form.Fields
	inputs []textinput.Model

	// Delete confirmation
	pending form.PendingDelete

	status string
}

// exportDoneMsg reports the result of a snapshot write.
type exportDoneMsg struct {
	path  string
	count int
	err   error
}

// New creates a new application model over s.
func New(s *store.Store, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Setup search input
	ti := textinput.New()
	ti.Placeholder = "Search by Name, Contact, Email, State..."
	ti.Width = 40
	ti.CharLimit = 50
	ti.Prompt = "> "
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	// Setup form inputs; the state field is a selector and never focused
	inputs := make([]textinput.Model, len(form.Fields))
	for i, f := range form.Fields {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 200
		inputs[i].Prompt = ""
		label, _ := form.Label(f)
		inputs[i].Placeholder = label
	}

	return Model{
		store:     s,
		results:   query.NewCache(s),
		log:       log,
		exportDir: opts.ExportDir,
		search:    ti,
		modal:     form.Closed{},
		draft:     form.NewDraft(),
		inputs:    inputs,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 0 {
			m.search.Width = m.width / 2
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.log.Error("export failed", "path", msg.path, "err", msg.err)
			m.status = fmt.Sprintf("Export failed: %v", msg.err)
		} else {
			m.log.Info("session exported", "path", msg.path, "count", msg.count)
			m.status = fmt.Sprintf("Exported %d contacts to %s", msg.count, msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		if m.pending.Open() {
			return m.updateConfirm(msg)
		}
		if form.IsOpen(m.modal) {
			return m.updateForm(msg)
		}
		if m.searchMode {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "/":
		m.searchMode = true
		cmd := m.search.Focus()
		return m, tea.Batch(cmd, textinput.Blink)

	case "esc":
		// Clear search and return to full list
		if m.search.Value() != "" {
			m.search.Reset()
			m.cursor = m.ensureValidCursor()
		}

	case " ", "x":
		if c, ok := m.current(); ok {
			m.store.ToggleSelect(c.ID)
		}

	case "c":
		m.store.ClearSelection()

	case "a":
		return m.openForm(form.Add{}, form.NewDraft())

	case "e":
		if c, ok := m.current(); ok {
			return m.openForm(form.Edit{Target: c.ID}, form.DraftFrom(c))
		}

	case "d":
		if c, ok := m.current(); ok {
			m.pending = form.NewPendingDelete([]string{c.ID})
		}

	case "D":
		if ids := m.store.SelectedIDs(); len(ids) > 0 {
			m.pending = form.NewPendingDelete(ids)
		}

	case "w":
		return m, m.exportCmd()
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchMode = false
		m.search.Blur()
		m.search.Reset()
		m.cursor = m.ensureValidCursor()
		return m, nil
	case "enter":
		m.searchMode = false
		m.search.Blur()
		m.cursor = m.ensureValidCursor()
		return m, nil
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = m.ensureValidCursor()
	return m, cmd
}

// openForm shows the modal in mode with draft loaded into the inputs.
func (m Model) openForm(mode form.Mode, draft form.Draft) (tea.Model, tea.Cmd) {
	m.modal = mode
	m.draft = draft
	m.errors = nil
	m.field = 0

	inputs := make([]textinput.Model, len(m.inputs))
	copy(inputs, m.inputs)
	for i, f := range form.Fields {
		inputs[i].Blur()
		inputs[i].SetValue(draft.Get(f))
		inputs[i].CursorEnd()
	}
	m.inputs = inputs

	cmd := m.inputs[m.field].Focus()
	return m, tea.Batch(cmd, textinput.Blink)
}

func (m Model) closeForm() Model {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.modal = form.Closed{}
	m.draft = form.NewDraft()
	m.errors = nil
	m.field = 0
	return m
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focused := form.Fields[m.field]

	switch msg.String() {
	case "esc":
		return m.closeForm(), nil

	case "enter":
		return m.submitForm()

	case "tab", "down":
		return m.focusField(m.field + 1)

	case "shift+tab", "up":
		return m.focusField(m.field - 1)

	case "left", "right":
		if focused == contact.FieldState {
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			m.draft.Set(contact.FieldState, form.CycleState(m.draft.Get(contact.FieldState), step))
			return m, nil
		}
	}

	if focused == contact.FieldState {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	value := m.inputs[m.field].Value()
	if shaped := m.draft.Set(focused, value); shaped != value {
		m.inputs[m.field].SetValue(shaped)
	}
	return m, cmd
}

func (m Model) focusField(next int) (tea.Model, tea.Cmd) {
	if next < 0 || next >= len(form.Fields) {
		return m, nil
	}
	m.inputs[m.field].Blur()
	m.field = next
	if form.Fields[m.field] == contact.FieldState {
		return m, nil
	}
	cmd := m.inputs[m.field].Focus()
	return m, tea.Batch(cmd, textinput.Blink)
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	errs := contact.Validate(m.draft.Raw())
	if !errs.Valid() {
		m.errors = errs
		m.log.Debug("contact form rejected", "fields", len(errs))
		return m, nil
	}

	in := m.draft.Input()
	switch mode := m.modal.(type) {
	case form.Edit:
		if m.store.Update(mode.Target, contact.ChangesFrom(in)) {
			m.status = fmt.Sprintf("Saved %s", in.Name)
		} else {
			m.status = "Contact no longer exists"
		}
	default:
		c := m.store.Add(in)
		m.status = fmt.Sprintf("Added %s", c.Name)
	}

	m = m.closeForm()
	m.cursor = m.ensureValidCursor()
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		// IDs removed since the dialog opened are ignored by the store
		removed := m.store.RemoveMany(m.pending.IDs())
		m.store.ClearSelection()
		m.pending = form.PendingDelete{}
		m.cursor = m.ensureValidCursor()
		m.status = fmt.Sprintf("Deleted %d contact(s)", removed)
		return m, nil
	case "n", "N", "esc":
		m.pending = form.PendingDelete{}
		return m, nil
	}
	return m, nil
}

// exportCmd writes a snapshot of the current contacts off the update loop.
func (m Model) exportCmd() tea.Cmd {
	if m.exportDir == "" {
		return func() tea.Msg {
			return exportDoneMsg{err: fmt.Errorf("no export directory configured")}
		}
	}
	items := m.store.Items()
	dir := m.exportDir
	now := time.Now()
	return func() tea.Msg {
		path, err := export.WriteSnapshot(context.Background(), dir, now, items)
		return exportDoneMsg{path: path, count: len(items), err: err}
	}
}

// visible returns the contacts matching the current search.
func (m Model) visible() []contact.Contact {
	return m.results.Results(m.search.Value())
}

// current returns the contact under the cursor.
func (m Model) current() (contact.Contact, bool) {
	contacts := m.visible()
	if len(contacts) == 0 || m.cursor >= len(contacts) {
		return contact.Contact{}, false
	}
	return contacts[m.cursor], true
}

// ensureValidCursor keeps the cursor within the visible list.
func (m Model) ensureValidCursor() int {
	contacts := m.visible()
	if len(contacts) == 0 {
		return 0
	}
	if m.cursor >= len(contacts) {
		return len(contacts) - 1
	}
	if m.cursor < 0 {
		return 0
	}
	return m.cursor
}
