package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/taskquare/internal/task"
	"github.com/idilsaglam/taskquare/internal/ui"
)

// listItem adapts a task to bubbles/list.Item
type listItem struct {
	item *task.Item
}

func (i listItem) Title() string       { return i.item.Name() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Name() }

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	now func() time.Time
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	name := ui.Truncate(it.item.Name(), ui.MaxNameWidth)
	if it.item.Completed() {
		box = t.Success.Render(t.BoxChecked)
		name = t.DoneText.Render(name)
	}
	age := t.Muted.Render(ui.Age(it.item, d.now()))

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprintln(w, strings.Join([]string{prefix + box, name, " " + age}, " "))
}
