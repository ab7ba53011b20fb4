package domain

import (
	"fmt"
	"sync"
	"time"
)

// IDLayout is the time layout of the leading part of a task ID.
// Six digits of microseconds follow it.
const IDLayout = "20060102150405"

// TimestampIDGenerator derives task IDs from the clock at microsecond resolution.
// IDs are strictly increasing within one generator: when the clock has not
// advanced since the last call the previous value is bumped by one microsecond.
type TimestampIDGenerator struct {
	clock Clock
	mu    sync.Mutex
	last  int64
}

// NewTimestampIDGenerator creates a generator reading the given clock.
func NewTimestampIDGenerator(clock Clock) *TimestampIDGenerator {
	return &TimestampIDGenerator{clock: clock}
}

// NewID returns the next task ID.
func (g *TimestampIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	micros := now.UnixMicro()
	if micros <= g.last {
		micros = g.last + 1
	}
	g.last = micros

	ts := time.UnixMicro(micros).In(now.Location())
	return ts.Format(IDLayout) + fmt.Sprintf("%06d", ts.Nanosecond()/int(time.Microsecond))
}

var _ IDGenerator = (*TimestampIDGenerator)(nil)
