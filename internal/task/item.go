package task

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Item is the domain model for a todo entry.
// Name and the completed flag belong to whoever owns the item; the creation
// time is fixed by New and has no setter.
type Item struct {
	id        uuid.UUID
	name      string
	completed bool
	createdAt time.Time
}

// Option configures New.
type Option func(*config)

type config struct {
	now func() time.Time
	id  func() uuid.UUID
}

// WithClock replaces time.Now as the source of the creation timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithIDSource replaces uuid.New for item identities.
func WithIDSource(id func() uuid.UUID) Option {
	return func(c *config) {
		if id != nil {
			c.id = id
		}
	}
}

// New creates a pending item stamped with the current time.
func New(name string, opts ...Option) *Item {
	c := config{now: time.Now, id: uuid.New}
	for _, o := range opts {
		o(&c)
	}
	return &Item{
		id:        c.id(),
		name:      name,
		createdAt: c.now(),
	}
}

func (it *Item) ID() uuid.UUID { return it.id }

func (it *Item) Name() string { return it.name }

func (it *Item) SetName(name string) { it.name = name }

func (it *Item) Completed() bool { return it.completed }

func (it *Item) SetCompleted(done bool) { it.completed = done }

// Toggle flips the completed flag and returns the new value.
func (it *Item) Toggle() bool {
	it.completed = !it.completed
	return it.completed
}

// CreatedAt is the instant the item was constructed.
func (it *Item) CreatedAt() time.Time { return it.createdAt }

// Age is the time elapsed between creation and now, never negative.
func (it *Item) Age(now time.Time) time.Duration {
	d := now.Sub(it.createdAt)
	if d < 0 {
		return 0
	}
	return d
}

// Snapshot is a detached copy of an item's state.
type Snapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

func (it *Item) Snapshot() Snapshot {
	return Snapshot{
		ID:        it.id.String(),
		Name:      it.name,
		Completed: it.completed,
		CreatedAt: it.createdAt,
	}
}

func (it *Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(it.Snapshot())
}
