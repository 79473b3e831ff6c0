package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNew(t *testing.T) {
	at := time.Date(2013, 11, 10, 9, 30, 0, 0, time.UTC)
	it := New("Buy milk", WithClock(fixedClock(at)))

	assert.Equal(t, "Buy milk", it.Name())
	assert.False(t, it.Completed())
	assert.Equal(t, at, it.CreatedAt())
	assert.NotEqual(t, uuid.Nil, it.ID())
}

func TestCreatedAtSurvivesMutation(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	it := New("first", WithClock(fixedClock(at)))

	for i := 0; i < 50; i++ {
		it.SetName(string(rune('a' + i%26)))
		it.Toggle()
		it.SetCompleted(i%3 == 0)
		require.Equal(t, at, it.CreatedAt())
	}
}

func TestSetNameRoundTrip(t *testing.T) {
	tests := []string{"", "x", "Walk the dog", "  padded  ", "ünïcödé ✔", "line\nbreak"}
	it := New("seed")
	for _, v := range tests {
		t.Run(v, func(t *testing.T) {
			it.SetName(v)
			assert.Equal(t, v, it.Name())
		})
	}
}

func TestCompletedIndependentOfName(t *testing.T) {
	it := New("a")

	it.SetCompleted(true)
	it.SetName("b")
	assert.True(t, it.Completed())

	it.SetCompleted(false)
	it.SetName("c")
	assert.False(t, it.Completed())
	assert.Equal(t, "c", it.Name())

	assert.True(t, it.Toggle())
	assert.False(t, it.Toggle())
}

func TestDistinctClockReadings(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := New("a", WithClock(fixedClock(t0)))
	b := New("b", WithClock(fixedClock(t0.Add(time.Minute))))

	assert.NotEqual(t, a.CreatedAt(), b.CreatedAt())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestAge(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	it := New("a", WithClock(fixedClock(t0)))

	assert.Equal(t, 90*time.Second, it.Age(t0.Add(90*time.Second)))
	assert.Zero(t, it.Age(t0.Add(-time.Hour)))
}

func TestMarshalJSON(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	at := time.Date(2013, 11, 10, 9, 30, 0, 0, time.UTC)
	it := New("Buy milk", WithClock(fixedClock(at)), WithIDSource(func() uuid.UUID { return id }))
	it.SetCompleted(true)

	b, err := json.Marshal(it)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"name": "Buy milk",
		"completed": true,
		"created_at": "2013-11-10T09:30:00Z"
	}`, string(b))
}
