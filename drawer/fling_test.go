package drawer

import (
	"math"
	"testing"
)

// The fling decision's velocity thresholds are asymmetric: the
// closing-side comparison (c1) is strict-exceed, so exactly
// ±MaximumMajorVelocity does not count as a closing fling, while the
// opening-side comparison (c3) is strict-non-exceed, so exactly the
// threshold does count as an opening fling. Pinned here rather than
// normalized.
func TestFlingBoundaryVelocity(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		expanded  bool
		velocity  float64
		// Sign of the seeded acceleration: positive drives toward
		// larger positions
		wantAccelPositive bool
	}{
		// Open BottomToTop drawer at its open rest (position plays no
		// part): closing velocity must strictly exceed the threshold
		{"BottomToTop open at threshold snaps back", BottomToTop, true, 200, false},
		{"BottomToTop open above threshold closes", BottomToTop, true, 201, true},
		{"BottomToTop open below threshold snaps back", BottomToTop, true, 199, false},

		// Inverted direction: the comparison flips to < but stays strict
		{"LeftToRight open at threshold snaps back", LeftToRight, true, 200, true},
		{"LeftToRight open below threshold closes", LeftToRight, true, 199, false},

		// Closed drawer at its rest position (which sits past the
		// midpoint, so the decision reduces to the opening-side c3):
		// exactly the threshold already opens
		{"BottomToTop closed below threshold stays closed", BottomToTop, false, -199, true},
		{"BottomToTop closed at threshold opens", BottomToTop, false, -200, false},
		{"BottomToTop closed above threshold opens", BottomToTop, false, -201, false},
		{"LeftToRight closed below threshold stays closed", LeftToRight, false, 199, false},
		{"LeftToRight closed at threshold opens", LeftToRight, false, 200, true},
		{"LeftToRight closed above threshold opens", LeftToRight, false, 201, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, fl, _, _ := newTestDrawer(t, Config{Direction: tt.direction})
			ctrl.expanded = tt.expanded

			tr := ctrl.travel()
			if tt.expanded {
				ctrl.moveHandle(tr.openPosition(ctrl.invert))
			} else {
				ctrl.moveHandle(tr.closedPosition(ctrl.invert))
			}

			ctrl.performFling(handleMajor(ctrl, fl), tt.velocity, false)

			if gotPositive := ctrl.animAccel > 0; gotPositive != tt.wantAccelPositive {
				t.Errorf("animAccel = %v, want positive=%v", ctrl.animAccel, tt.wantAccelPositive)
			}
		})
	}
}

// A velocity already headed toward the target is kept; one pointing away
// is zeroed rather than reversed instantaneously.
func TestFlingVelocitySeed(t *testing.T) {
	tests := []struct {
		name         string
		direction    Direction
		expanded     bool
		position     int
		velocity     float64
		wantVelocity float64
	}{
		{"Kept when closing downward", BottomToTop, true, 400, 1000, 1000},
		{"Zeroed when pointing away from closed", BottomToTop, false, 600, -100, 0},
		{"Kept when opening upward", BottomToTop, false, 300, -1000, -1000},
		{"Inverted kept when opening rightward", LeftToRight, false, 378, 1000, 1000},
		{"Inverted zeroed when pointing away from closed", LeftToRight, false, 100, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, fl, _, _ := newTestDrawer(t, Config{Direction: tt.direction})
			ctrl.expanded = tt.expanded
			ctrl.moveHandle(tt.position)

			ctrl.performFling(handleMajor(ctrl, fl), tt.velocity, false)

			if ctrl.animVelocity != tt.wantVelocity {
				t.Errorf("animVelocity = %v, want %v", ctrl.animVelocity, tt.wantVelocity)
			}
		})
	}
}

// Minor-axis handling is asymmetric across directions:
// RightToLeft/BottomToTop clamp the orthogonal velocity down to the
// bound, LeftToRight/TopToBottom raise it up to the bound.
func TestCombineVelocityMinorAxis(t *testing.T) {
	tests := []struct {
		name       string
		direction  Direction
		vx, vy     float64
		wantResult float64
	}{
		{"BottomToTop small minor kept", BottomToTop, 30, -500, -math.Hypot(30, 500)},
		{"BottomToTop large minor clamped", BottomToTop, 400, -500, -math.Hypot(150, 500)},
		{"RightToLeft large minor clamped", RightToLeft, -500, 400, -math.Hypot(500, 150)},
		{"LeftToRight small minor raised", LeftToRight, 500, 30, math.Hypot(500, 150)},
		{"TopToBottom small minor raised", TopToBottom, 30, 500, math.Hypot(150, 500)},
		{"TopToBottom negative major keeps sign", TopToBottom, 0, -500, -math.Hypot(150, 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, _, _, _ := newTestDrawer(t, Config{Direction: tt.direction})

			got := ctrl.combineVelocity(tt.vx, tt.vy)
			if math.Abs(got-tt.wantResult) > 1e-9 {
				t.Errorf("combineVelocity(%v, %v) = %v, want %v", tt.vx, tt.vy, got, tt.wantResult)
			}
		})
	}
}

// Opening from rest pre-positions the handle at the closed rest point
// and seeds trajectory state without scheduling; the first tick is armed
// by performFling only.
func TestPrepareTrackingOpening(t *testing.T) {
	ctrl, fl, _, sched := newTestDrawer(t, Config{Direction: BottomToTop})

	ctrl.moveHandle(300)
	ctrl.prepareTracking(300)

	tr := ctrl.travel()
	if got, want := handleMajor(ctrl, fl), tr.closedPosition(ctrl.invert); got != want {
		t.Errorf("handle at %d after prepareTracking from closed, want rest %d", got, want)
	}
	if !ctrl.tracking {
		t.Error("not tracking after prepareTracking")
	}
	if ctrl.velocityTracker == nil {
		t.Error("velocity tracker not acquired")
	}
	if sched.Pending {
		t.Error("prepareTracking scheduled a tick; only performFling may")
	}
}
