package drawer

// Tick advances the animation by one frame. Hosts invoke it when the
// scheduler deadline fires; a stale tick after the animation stopped is
// ignored.
func (c *Controller) Tick() {
	if !c.animating {
		return
	}

	c.incrementAnimation()
	tr := c.travel()

	// The settle test is direction-aware: inverted drawers open toward
	// the far edge, the others toward topOffset
	if c.invert {
		switch {
		case c.animPosition < float64(tr.topOffset):
			c.animating = false
			c.closeDrawer()
		case c.animPosition >= float64(tr.topOffset+tr.containerExtent-1):
			c.animating = false
			c.openDrawer()
		default:
			c.stepAndReschedule()
		}
	} else {
		switch {
		case c.animPosition >= float64(tr.bottomOffset+tr.containerExtent-1):
			c.animating = false
			c.closeDrawer()
		case c.animPosition < float64(tr.topOffset):
			c.animating = false
			c.openDrawer()
		default:
			c.stepAndReschedule()
		}
	}
}

// stepAndReschedule applies the integrated position and arms the next
// tick one frame after the previous deadline, not after now, so cadence
// drift never accumulates across ticks
func (c *Controller) stepAndReschedule() {
	c.moveHandle(int(c.animPosition))
	c.animDeadline = c.animDeadline.Add(c.params.FrameDuration)
	c.scheduler.ScheduleAt(c.animDeadline)
}

// incrementAnimation integrates one constant-acceleration step:
// p' = p + v·t + a·t²/2, v' = v + a·t
func (c *Controller) incrementAnimation() {
	now := c.clock.Now()
	t := now.Sub(c.animLastTime).Seconds()

	position := c.animPosition
	v := c.animVelocity // px/s
	a := c.animAccel    // px/s²

	c.animPosition = position + (v * t) + (0.5 * a * t * t) // px
	c.animVelocity = v + (a * t)                            // px/s
	c.animLastTime = now
}
