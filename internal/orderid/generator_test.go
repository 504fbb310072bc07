package orderid

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// memCounter is an in-memory CounterStore.
type memCounter struct {
	date    string
	counter int
}

func (m *memCounter) Load() (string, int) { return m.date, m.counter }

func (m *memCounter) Save(date string, counter int) {
	m.date, m.counter = date, counter
}

// brokenCounter never persists anything, as if every write failed.
type brokenCounter struct{}

func (brokenCounter) Load() (string, int) { return "", 0 }
func (brokenCounter) Save(string, int)    {}

func atTime(g *Generator, t time.Time) *Generator {
	g.now = func() time.Time { return t }
	return g
}

func TestGenerator_SameDaySequence(t *testing.T) {
	g := New("FL", time.UTC, &memCounter{})
	atTime(g, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))

	for i := 1; i <= 12; i++ {
		assert.Equal(t, fmt.Sprintf("FL-20260828-%04d", i), g.Next())
	}
}

func TestGenerator_NewDayResetsSequence(t *testing.T) {
	g := New("FL", time.UTC, &memCounter{})

	atTime(g, time.Date(2026, 8, 28, 23, 50, 0, 0, time.UTC))
	assert.Equal(t, "FL-20260828-0001", g.Next())
	assert.Equal(t, "FL-20260828-0002", g.Next())

	atTime(g, time.Date(2026, 8, 29, 0, 5, 0, 0, time.UTC))
	assert.Equal(t, "FL-20260829-0001", g.Next())
}

func TestGenerator_SurvivesRestart(t *testing.T) {
	counter := &memCounter{}
	day := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	g := atTime(New("FL", time.UTC, counter), day)
	g.Next()
	g.Next()

	// a new generator over the same counter store continues the sequence
	g = atTime(New("FL", time.UTC, counter), day)
	assert.Equal(t, "FL-20260828-0003", g.Next())
}

func TestGenerator_DayBoundaryFollowsShopTimezone(t *testing.T) {
	loc := time.FixedZone("UZT", 5*60*60)
	g := New("FL", loc, &memCounter{})

	// 21:00 UTC on the 27th is already the 28th in the shop timezone
	atTime(g, time.Date(2026, 8, 27, 21, 0, 0, 0, time.UTC))
	assert.Equal(t, "FL-20260828-0001", g.Next())
}

func TestGenerator_PersistFailureDoesNotBlockIssuance(t *testing.T) {
	g := New("FL", time.UTC, brokenCounter{})
	atTime(g, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))

	// every call sees a fresh counter; issuance itself never fails
	assert.Equal(t, "FL-20260828-0001", g.Next())
	assert.Equal(t, "FL-20260828-0001", g.Next())
}
