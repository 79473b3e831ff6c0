package ui

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idilsaglam/taskquare/internal/task"
	"github.com/idilsaglam/taskquare/internal/tasklist"
)

// MaxNameWidth is where item names get cut with an ellipsis.
const MaxNameWidth = 80

// Header is the title line with live counts.
func Header(s tasklist.Stats) string {
	t := Current()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Tasks"),
		t.Success.Render(t.SymDone), s.Done,
		t.Pending.Render(t.SymPending), s.Pending,
		t.Accent.Render("Total"), s.Total,
	)
}

// Age renders "3 minutes ago" style text.
func Age(it *task.Item, now time.Time) string {
	return humanize.RelTime(it.CreatedAt(), now, "ago", "from now")
}

// Truncate shortens s to max runes, ending in "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// Row renders one item; index is 1-based.
func Row(index int, it *task.Item, now time.Time) string {
	t := Current()
	box, style := t.BoxUnchecked, t.Muted
	name := Truncate(it.Name(), MaxNameWidth)
	if it.Completed() {
		box, style = t.BoxChecked, t.Success
		name = t.DoneText.Render(name)
	}
	return fmt.Sprintf("%s %s %s  %s",
		t.Muted.Render(fmt.Sprintf("%2d.", index)),
		style.Render(box),
		name,
		t.Muted.Render(Age(it, now)),
	)
}

// Lines renders the whole list in order.
func Lines(l *tasklist.List, now time.Time) []string {
	t := Current()
	if l.Len() == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, l.Len())
	for i, it := range l.Items() {
		out = append(out, Row(i+1, it, now))
	}
	return out
}

// GroupLines renders Pending then Done. Row numbers stay the list positions.
func GroupLines(l *tasklist.List, now time.Time) []string {
	t := Current()
	pos := make(map[*task.Item]int, l.Len())
	for i, it := range l.Items() {
		pos[it] = i + 1
	}
	section := func(title string, items []*task.Item) []string {
		lines := []string{t.Accent.Render(title)}
		if len(items) == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		for _, it := range items {
			lines = append(lines, Row(pos[it], it, now))
		}
		return lines
	}

	pending, done := l.Partition()
	lines := section("Pending", pending)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}

// Summary is the full non-interactive panel body.
func Summary(l *tasklist.List, now time.Time, group bool) []string {
	t := Current()
	s := l.Stats()
	lines := []string{
		Header(s),
		t.Muted.Render(ProgressBar(s.Done, s.Total, 28)),
		"",
	}
	if group {
		lines = append(lines, GroupLines(l, now)...)
	} else {
		lines = append(lines, Lines(l, now)...)
	}
	return lines
}
