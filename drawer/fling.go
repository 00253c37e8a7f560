package drawer

// animateOpenAt seeds an opening trajectory from the given major-axis
// position. The velocity seed reuses the acceleration magnitude so the
// forced fling clears the decision thresholds regardless of tuning.
func (c *Controller) animateOpenAt(position int) {
	c.prepareTracking(position)
	c.performFling(position, -float64(c.params.MaximumAcceleration), true)
}

// animateCloseAt seeds a closing trajectory from the given position
func (c *Controller) animateCloseAt(position int) {
	c.prepareTracking(position)
	c.performFling(position, float64(c.params.MaximumAcceleration), true)
}

// prepareTracking enters the tracking state and acquires a fresh velocity
// tracker. Opening from rest pre-positions the handle at its closed rest
// point; otherwise any running animation is cancelled and the handle
// moves directly.
func (c *Controller) prepareTracking(position int) {
	c.tracking = true
	c.velocityTracker = newVelocityTracker()

	opening := !c.expanded
	if opening {
		c.animAccel = float64(c.params.MaximumAcceleration)
		c.animVelocity = float64(c.params.MaximumMajorVelocity)

		tr := c.travel()
		c.animPosition = float64(tr.closedPosition(c.invert))
		c.moveHandle(int(c.animPosition))

		// Seeded but not yet scheduled: the first tick is armed by
		// performFling
		c.scheduler.Cancel()
		now := c.clock.Now()
		c.animLastTime = now
		c.animDeadline = now.Add(c.params.FrameDuration)
		c.animating = true
	} else {
		if c.animating {
			c.animating = false
			c.scheduler.Cancel()
		}
		c.moveHandle(position)
	}
}

// performFling decides the settle target and seeds the trajectory.
// forceToggle comes from tap handling and programmatic animation; it
// overrides the velocity/position decision.
//
// The decision thresholds use strict comparisons, so a velocity of
// exactly ±MaximumMajorVelocity never counts as a closing fling while
// it does count as an opening one. Deliberately not normalized.
func (c *Controller) performFling(position int, velocity float64, forceToggle bool) {
	c.animPosition = float64(position)
	c.animVelocity = velocity

	maxMajor := float64(c.params.MaximumMajorVelocity)
	accel := float64(c.params.MaximumAcceleration)
	tr := c.travel()

	// Acceleration signs that drive the handle toward each endpoint
	closeAccel, openAccel := accel, -accel
	if c.invert {
		closeAccel, openAccel = -accel, accel
	}

	var c1, c2, c3 bool
	if c.expanded {
		// Open: close on a fast closing fling, or when dragged past the
		// open rest point by more than a handle extent without a fast
		// opening fling
		if c.invert {
			c1 = velocity < maxMajor
			c2 = (tr.containerExtent-(position+tr.handleExtent))+tr.bottomOffset > tr.handleExtent
			c3 = velocity < -maxMajor
		} else {
			c1 = velocity > maxMajor
			c2 = position > tr.topOffset+tr.handleExtent
			c3 = velocity > -maxMajor
		}

		if forceToggle || c1 || (c2 && c3) {
			c.animAccel = closeAccel
			c.zeroVelocityAwayFromClosed(velocity)
		} else {
			// Didn't move far or fast enough to retract; snap back open
			c.animAccel = openAccel
			c.zeroVelocityAwayFromOpen(velocity)
		}
	} else {
		// Closed: open only on a fast opening fling, or when dragged
		// past the midpoint of travel
		if c.invert {
			c1 = velocity < maxMajor
			c2 = position < tr.containerExtent/2
			c3 = velocity < -maxMajor
		} else {
			c1 = velocity > maxMajor
			c2 = position > tr.containerExtent/2
			c3 = velocity > -maxMajor
		}

		if !forceToggle && (c1 || (c2 && c3)) {
			c.animAccel = closeAccel
			c.zeroVelocityAwayFromClosed(velocity)
		} else {
			c.animAccel = openAccel
			c.zeroVelocityAwayFromOpen(velocity)
		}
	}

	now := c.clock.Now()
	c.animLastTime = now
	c.animDeadline = now.Add(c.params.FrameDuration)
	c.animating = true
	c.scheduler.Cancel()
	c.scheduler.ScheduleAt(c.animDeadline)
	c.stopTracking()
}

// The trajectory never reverses an incoming velocity instantaneously:
// velocity already headed toward the target is kept, velocity pointing
// away is zeroed so the fling accelerates cleanly from rest.

func (c *Controller) zeroVelocityAwayFromClosed(velocity float64) {
	if c.invert {
		if velocity > 0 {
			c.animVelocity = 0
		}
	} else {
		if velocity < 0 {
			c.animVelocity = 0
		}
	}
}

func (c *Controller) zeroVelocityAwayFromOpen(velocity float64) {
	if c.invert {
		if velocity < 0 {
			c.animVelocity = 0
		}
	} else {
		if velocity > 0 {
			c.animVelocity = 0
		}
	}
}
