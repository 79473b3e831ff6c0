// Package tasklist holds the items of one session in display order.
// Nothing here is persisted; a List lives as long as the process.
package tasklist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/taskquare/internal/task"
)

var (
	ErrEmptyName       = errors.New("empty name")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError reports a bad 0-based position.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: have %d, got %d", e.Len, e.Index)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Stats are the header counts.
type Stats struct {
	Done, Pending, Total int
}

type List struct {
	items []*task.Item
	opts  []task.Option
}

type Option func(*List)

// WithClock is forwarded to every item the list creates.
func WithClock(now func() time.Time) Option {
	return func(l *List) { l.opts = append(l.opts, task.WithClock(now)) }
}

func New(opts ...Option) *List {
	l := &List{}
	for _, o := range opts {
		o(l)
	}
	return l
}

// FromNames builds a list from names, skipping blank ones.
func FromNames(names []string, opts ...Option) (*List, error) {
	l := New(opts...)
	for i, n := range names {
		if _, err := l.Add(n); err != nil {
			if errors.Is(err, ErrEmptyName) {
				continue
			}
			return nil, fmt.Errorf("name %d: %w", i, err)
		}
	}
	return l, nil
}

func (l *List) Len() int { return len(l.items) }

// Items returns a copy of the slice; the items themselves are shared.
func (l *List) Items() []*task.Item {
	out := make([]*task.Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Snapshots() []task.Snapshot {
	out := make([]task.Snapshot, 0, len(l.items))
	for _, it := range l.items {
		out = append(out, it.Snapshot())
	}
	return out
}

// IndexOf returns the position of the item with id, or -1.
func (l *List) IndexOf(id uuid.UUID) int {
	for i, it := range l.items {
		if it.ID() == id {
			return i
		}
	}
	return -1
}

func (l *List) Get(i int) (*task.Item, error) {
	if err := l.check(i); err != nil {
		return nil, err
	}
	return l.items[i], nil
}

// Add appends a new item.
func (l *List) Add(name string) (*task.Item, error) {
	return l.Insert(len(l.items), name)
}

// Insert places a new item at pos, clamped to [0, Len].
func (l *List) Insert(pos int, name string) (*task.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(l.items) {
		pos = len(l.items)
	}
	it := task.New(name, l.opts...)
	l.items = append(l.items, nil)
	copy(l.items[pos+1:], l.items[pos:])
	l.items[pos] = it
	return it, nil
}

func (l *List) Rename(i int, name string) error {
	if err := l.check(i); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	l.items[i].SetName(name)
	return nil
}

// Toggle flips item i and returns its new completed state.
func (l *List) Toggle(i int) (bool, error) {
	if err := l.check(i); err != nil {
		return false, err
	}
	return l.items[i].Toggle(), nil
}

// Remove releases item i and returns it.
func (l *List) Remove(i int) (*task.Item, error) {
	if err := l.check(i); err != nil {
		return nil, err
	}
	it := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return it, nil
}

func (l *List) Stats() Stats {
	var s Stats
	for _, it := range l.items {
		if it.Completed() {
			s.Done++
		} else {
			s.Pending++
		}
	}
	s.Total = len(l.items)
	return s
}

// Partition splits the list into pending and done, keeping order.
func (l *List) Partition() (pending, done []*task.Item) {
	for _, it := range l.items {
		if it.Completed() {
			done = append(done, it)
		} else {
			pending = append(pending, it)
		}
	}
	return
}

func (l *List) check(i int) error {
	if i < 0 || i >= len(l.items) {
		return &IndexError{Index: i, Len: len(l.items)}
	}
	return nil
}
