// Package orderid issues sequential order identifiers of the form
// PREFIX-YYYYMMDD-NNNN. The sequence is scoped to a calendar day in the
// shop's timezone and survives restarts through a persisted counter.
package orderid

import (
	"fmt"
	"sync"
	"time"
)

const dateLayout = "20060102"

// CounterStore persists the day-scoped sequence state. Save is best-effort:
// implementations must not fail the caller.
type CounterStore interface {
	Load() (date string, counter int)
	Save(date string, counter int)
}

// Generator issues order IDs. The mutex serializes issuance within the
// process; the load-increment-save cycle is still racy across processes,
// which matches the single-process deployment model.
type Generator struct {
	mu      sync.Mutex
	prefix  string
	loc     *time.Location
	now     func() time.Time
	counter CounterStore
}

// New creates new Generator instance.
func New(prefix string, loc *time.Location, counter CounterStore) *Generator {
	return &Generator{
		prefix:  prefix,
		loc:     loc,
		now:     time.Now,
		counter: counter,
	}
}

// Next returns the next order ID. The first ID of every day ends in 0001.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	today := g.now().In(g.loc).Format(dateLayout)

	date, counter := g.counter.Load()
	if date != today {
		counter = 0
	}
	counter++

	g.counter.Save(today, counter)

	return fmt.Sprintf("%s-%s-%04d", g.prefix, today, counter)
}
