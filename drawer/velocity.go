package drawer

import "time"

// velocityWindow bounds how far back samples contribute to the estimate.
// Older movement within the same gesture is stale by the time of release.
const velocityWindow = 100 * time.Millisecond

const velocityTrackerCap = 32

type motionSample struct {
	t    time.Time
	x, y int
}

// VelocityTracker accumulates the touch samples of a single gesture and
// produces an axis velocity pair at release. It is acquired at touch-down
// and released unconditionally when the gesture ends.
type VelocityTracker struct {
	samples []motionSample
}

func newVelocityTracker() *VelocityTracker {
	return &VelocityTracker{
		samples: make([]motionSample, 0, velocityTrackerCap),
	}
}

// AddMovement records one touch sample
func (vt *VelocityTracker) AddMovement(ev TouchEvent) {
	if len(vt.samples) == velocityTrackerCap {
		copy(vt.samples, vt.samples[1:])
		vt.samples = vt.samples[:velocityTrackerCap-1]
	}
	vt.samples = append(vt.samples, motionSample{t: ev.Time, x: ev.X, y: ev.Y})
}

// Velocity estimates the gesture velocity in px per units milliseconds,
// from the oldest in-window sample to the newest. Fewer than two usable
// samples reads as zero.
func (vt *VelocityTracker) Velocity(units int) (vx, vy float64) {
	n := len(vt.samples)
	if n < 2 {
		return 0, 0
	}

	newest := vt.samples[n-1]
	var oldest motionSample
	found := false
	for i := 0; i < n-1; i++ {
		if newest.t.Sub(vt.samples[i].t) <= velocityWindow {
			oldest = vt.samples[i]
			found = true
			break
		}
	}
	if !found {
		return 0, 0
	}

	dt := newest.t.Sub(oldest.t)
	if dt <= 0 {
		return 0, 0
	}

	scale := float64(units) / (dt.Seconds() * 1000)
	vx = float64(newest.x-oldest.x) * scale
	vy = float64(newest.y-oldest.y) * scale
	return vx, vy
}

// Clear discards all samples, keeping capacity
func (vt *VelocityTracker) Clear() {
	vt.samples = vt.samples[:0]
}
