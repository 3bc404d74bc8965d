// internal/sched/tickclock.go

package sched

// Clock counts simulated work units. It has no relation to wall time and
// only ever moves forward.
type Clock struct {
	now uint64
}

// Advance moves the clock forward by d units and returns the new reading.
func (c *Clock) Advance(d uint64) uint64 {
	c.now += d
	return c.now
}

// Now returns the current reading.
func (c *Clock) Now() uint64 {
	return c.now
}
