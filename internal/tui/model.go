// Package tui is the interactive list view over one session's tasks.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/taskquare/internal/task"
	"github.com/idilsaglam/taskquare/internal/tasklist"
	"github.com/idilsaglam/taskquare/internal/ui"
)

type mode int

const (
	browsing mode = iota
	adding
	editing
)

// Model implements tea.Model.
type Model struct {
	tasks *tasklist.List
	list  list.Model
	input textinput.Model

	mode     mode
	target   uuid.UUID // row being edited, or the row an add goes below
	inputErr string
	changed  bool

	width, height int

	now func() time.Time
	log *zap.Logger
}

type Option func(*Model)

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

// New builds the model; tasks is mutated in place as the user edits.
func New(tasks *tasklist.List, opts ...Option) Model {
	m := Model{
		tasks:  tasks,
		now:    time.Now,
		log:    zap.NewNop(),
		width:  80,
		height: 24,
	}
	for _, o := range opts {
		o(&m)
	}

	l := list.New(nil, itemDelegate{now: m.now}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	extra := func() []key.Binding { return []key.Binding{toggleBind, addBind, editBind, delBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra
	m.list = l

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.CharLimit = 200

	m.sync()
	m.resize()
	return m
}

// Changed reports whether the session was edited.
func (m Model) Changed() bool { return m.changed }

// Tasks is the list the model edits.
func (m Model) Tasks() *tasklist.List { return m.tasks }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case adding, editing:
		return m.updateInput(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.SettingFilter() {
		return m.forward(msg)
	}

	switch km.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.list.FilterState() == list.Unfiltered {
			return m, tea.Quit
		}
	case " ":
		it, i := m.selected()
		if it == nil {
			return m, nil
		}
		if done, err := m.tasks.Toggle(i); err == nil {
			m.log.Debug("toggled", zap.String("id", it.ID().String()), zap.Bool("completed", done))
			m.changed = true
			return m, m.sync()
		}
		return m, nil
	case "d":
		it, i := m.selected()
		if it == nil {
			return m, nil
		}
		if _, err := m.tasks.Remove(i); err == nil {
			m.log.Debug("removed", zap.String("id", it.ID().String()))
			m.changed = true
			return m, m.sync()
		}
		return m, nil
	case "a":
		m.mode = adding
		m.target = uuid.Nil
		if it, _ := m.selected(); it != nil {
			m.target = it.ID()
		}
		m.inputErr = ""
		m.input.SetValue("")
		m.input.Placeholder = "New task name..."
		m.resize()
		return m, m.input.Focus()
	case "e":
		it, _ := m.selected()
		if it == nil {
			return m, nil
		}
		m.mode = editing
		m.target = it.ID()
		m.inputErr = ""
		m.input.SetValue(it.Name())
		m.input.CursorEnd()
		m.input.Placeholder = "Edit task name..."
		m.resize()
		return m, m.input.Focus()
	}
	return m.forward(msg)
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			return m.commitInput()
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) commitInput() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	var err error
	switch m.mode {
	case adding:
		// Below the anchor row, or at the end when nothing was selected.
		pos := m.tasks.Len()
		if i := m.tasks.IndexOf(m.target); i >= 0 {
			pos = i + 1
		}
		var it *task.Item
		it, err = m.tasks.Insert(pos, value)
		if err == nil {
			m.log.Debug("added", zap.String("id", it.ID().String()), zap.Int("index", pos))
			m.closeInput()
			m.changed = true
			// The new row must be visible to be selected.
			m.list.ResetFilter()
			cmd := m.sync()
			m.list.Select(pos)
			return m, cmd
		}
	case editing:
		i := m.tasks.IndexOf(m.target)
		if i < 0 {
			m.closeInput()
			return m, nil
		}
		err = m.tasks.Rename(i, value)
		if err == nil {
			m.log.Debug("renamed", zap.String("id", m.target.String()))
			m.closeInput()
			m.changed = true
			return m, m.sync()
		}
	}

	if errors.Is(err, tasklist.ErrEmptyName) {
		m.inputErr = "Name cannot be empty"
	} else {
		m.inputErr = err.Error()
	}
	return m, nil
}

// selected is the task under the cursor among the visible rows, with its
// position in the task list. It is nil when no row is visible.
func (m Model) selected() (*task.Item, int) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil, -1
	}
	i := m.tasks.IndexOf(li.item.ID())
	if i < 0 {
		return nil, -1
	}
	return li.item, i
}

func (m *Model) closeInput() {
	m.mode = browsing
	m.target = uuid.Nil
	m.inputErr = ""
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// sync rebuilds the list rows and header from the task list.
func (m *Model) sync() tea.Cmd {
	items := make([]list.Item, 0, m.tasks.Len())
	for _, it := range m.tasks.Items() {
		items = append(items, listItem{item: it})
	}
	m.list.Title = ui.Header(m.tasks.Stats())
	return m.list.SetItems(items)
}

func (m *Model) resize() {
	h := m.height - 4
	if m.mode != browsing {
		h = m.height - 7
	}
	if h < 1 {
		h = 1
	}
	m.list.SetSize(max(m.width-4, 10), h)
}

func (m Model) View() string {
	content := m.list.View()
	if m.mode != browsing {
		t := ui.Current()
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Add new task"
		if m.mode == editing {
			title = "Edit task"
		}
		if m.inputErr != "" {
			title += ": " + t.Error.Render(m.inputErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.input.View())
	}
	return ui.PanelString(strings.Split(content, "\n"))
}

// Run starts the program and returns the final model once the user quits.
func Run(ctx context.Context, tasks *tasklist.List, opts ...Option) (Model, error) {
	p := tea.NewProgram(New(tasks, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("tui: unexpected model %T", final)
	}
	return fm, nil
}
