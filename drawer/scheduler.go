package drawer

import (
	"sync"
	"time"
)

// Clock supplies the current time. Inject a ManualClock in tests for
// deterministic stepping.
type Clock interface {
	Now() time.Time
}

// SystemClock provides real time with monotonic clock readings
type SystemClock struct{}

// NewSystemClock creates a monotonic wall-clock time source
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// Scheduler delivers a single pending animation tick at an absolute
// deadline. ScheduleAt replaces any pending tick; Cancel must be a no-op
// when nothing is pending. The controller always cancels before seeding a
// new trajectory, so implementations never hold more than one live tick.
type Scheduler interface {
	ScheduleAt(deadline time.Time)
	Cancel()
}

// TimerScheduler arms a one-shot time.Timer for each deadline. The fire
// callback runs on the timer goroutine; single-threaded hosts should pass
// a callback that posts back into their event loop rather than calling
// Controller.Tick directly.
type TimerScheduler struct {
	clock Clock
	fire  func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewTimerScheduler creates a scheduler invoking fire at each deadline
func NewTimerScheduler(clock Clock, fire func()) *TimerScheduler {
	return &TimerScheduler{
		clock: clock,
		fire:  fire,
	}
}

// ScheduleAt replaces any pending tick with one at the given deadline
func (s *TimerScheduler) ScheduleAt(deadline time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	d := deadline.Sub(s.clock.Now())
	if d < 0 {
		d = 0
	}
	s.timer = time.AfterFunc(d, s.fire)
}

// Cancel drops the pending tick, if any
func (s *TimerScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
