package drawer

import (
	"sync"
	"time"
)

// ManualClock provides a controllable time source for testing
type ManualClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualClock creates a manual clock starting at the given time
func NewManualClock(startTime time.Time) *ManualClock {
	return &ManualClock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

// SetTime sets the current time
func (c *ManualClock) SetTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

// Advance moves the current time forward by the given duration
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}

// ManualScheduler records the pending deadline without arming a timer.
// Tests drive ticks themselves: advance the clock to Deadline, mark the
// tick consumed with Consume, then call Controller.Tick.
type ManualScheduler struct {
	Deadline time.Time
	Pending  bool

	// Call counters for asserting scheduling discipline
	Arms    int
	Cancels int
}

// NewManualScheduler creates an idle manual scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// ScheduleAt records the deadline as the single pending tick
func (s *ManualScheduler) ScheduleAt(deadline time.Time) {
	s.Deadline = deadline
	s.Pending = true
	s.Arms++
}

// Cancel drops the pending tick
func (s *ManualScheduler) Cancel() {
	if s.Pending {
		s.Cancels++
	}
	s.Pending = false
}

// Consume marks the pending tick as delivered, as a firing timer would
func (s *ManualScheduler) Consume() {
	s.Pending = false
}
