package drawer

import "math"

// ProcessTouch feeds one touch sample into the controller and reports
// whether the event was consumed. A locked drawer consumes nothing; a
// down outside the handle's hit rectangle passes through.
func (c *Controller) ProcessTouch(ev TouchEvent) bool {
	if c.locked {
		return false
	}

	switch ev.Action {
	case TouchDown:
		if c.tracking {
			return true
		}
		if !c.layout.HandleBounds().Contains(ev.X, ev.Y) {
			return false
		}
		c.startTracking(ev)
		return true

	case TouchMove:
		if !c.tracking {
			return false
		}
		c.velocityTracker.AddMovement(ev)
		if c.vertical {
			c.moveHandle(ev.Y - c.touchDelta)
		} else {
			c.moveHandle(ev.X - c.touchDelta)
		}
		return true

	case TouchUp, TouchCancel:
		if !c.tracking {
			return false
		}
		c.velocityTracker.AddMovement(ev)
		c.endGesture()
		return true
	}

	return false
}

// startTracking begins direct handle dragging. Entering a drag cancels
// any running animation (via prepareTracking).
func (c *Controller) startTracking(ev TouchEvent) {
	c.tracking = true
	c.layout.SetHandlePressed(true)

	// Must precede the scroll notification: listeners may read geometry
	c.prepareContent()

	if c.onScrollStarted != nil {
		c.onScrollStarted()
	}

	hb := c.layout.HandleBounds()
	if c.vertical {
		c.touchDelta = ev.Y - hb.Top
		c.prepareTracking(hb.Top)
	} else {
		c.touchDelta = ev.X - hb.Left
		c.prepareTracking(hb.Left)
	}
	c.velocityTracker.AddMovement(ev)
}

// endGesture classifies the release as tap or fling and hands off to the
// matching trajectory. Every path below runs through performFling, which
// releases the velocity tracker.
func (c *Controller) endGesture() {
	var xVelocity, yVelocity float64
	if c.velocityTracker != nil {
		xVelocity, yVelocity = c.velocityTracker.Velocity(c.params.VelocityUnits)
	}
	velocity := c.combineVelocity(xVelocity, yVelocity)

	hb := c.layout.HandleBounds()
	var position int
	if c.vertical {
		position = hb.Top
	} else {
		position = hb.Left
	}

	if math.Abs(velocity) < float64(c.params.MaximumTapVelocity) && c.nearRestEdge(hb) {
		if c.allowSingleTap {
			c.playClick()
			if c.expanded {
				c.animateCloseAt(position)
			} else {
				c.animateOpenAt(position)
			}
			return
		}
	}

	c.performFling(position, velocity, false)
}

// combineVelocity folds the raw axis velocities into one signed scalar.
// The minor axis is bounded by MaximumMinorVelocity before the Euclidean
// combination; the sign comes from the major axis. The inverted
// directions raise the minor axis to at least the bound where the others
// clamp it down. The asymmetry is intentional and pinned by tests.
func (c *Controller) combineVelocity(xVelocity, yVelocity float64) float64 {
	maxMinor := float64(c.params.MaximumMinorVelocity)
	var negative bool

	switch c.direction {
	case BottomToTop:
		negative = yVelocity < 0
		if xVelocity < 0 {
			xVelocity = -xVelocity
		}
		if xVelocity > maxMinor {
			xVelocity = maxMinor
		}
	case RightToLeft:
		negative = xVelocity < 0
		if yVelocity < 0 {
			yVelocity = -yVelocity
		}
		if yVelocity > maxMinor {
			yVelocity = maxMinor
		}
	case LeftToRight:
		negative = xVelocity < 0
		if yVelocity < 0 {
			yVelocity = -yVelocity
		}
		if yVelocity < maxMinor {
			yVelocity = maxMinor
		}
	case TopToBottom:
		negative = yVelocity < 0
		if xVelocity < 0 {
			xVelocity = -xVelocity
		}
		if xVelocity < maxMinor {
			xVelocity = maxMinor
		}
	}

	velocity := math.Hypot(xVelocity, yVelocity)
	if negative {
		velocity = -velocity
	}
	return velocity
}

// nearRestEdge reports whether the handle sits within TapThreshold of
// the rest edge matching its current logical state. Each direction gets
// its own proximity arithmetic; the four formulas do not collapse into
// one because the offsets apply to different edges per direction.
func (c *Controller) nearRestEdge(hb Rect) bool {
	cb := c.layout.ContainerBounds()
	tap := c.params.TapThreshold

	var c1, c2, c3, c4 bool
	if c.invert {
		// TopToBottom: open rest at the bottom edge
		c1 = c.expanded && (cb.Bottom-hb.Bottom) < tap+c.bottomOffset
		// TopToBottom: closed rest at topOffset
		c2 = !c.expanded && hb.Top < c.topOffset+hb.Height()-tap
		// LeftToRight: open rest at the right edge
		c3 = c.expanded && (cb.Right-hb.Right) < tap+c.bottomOffset
		// LeftToRight: closed rest at topOffset
		c4 = !c.expanded && hb.Left > c.topOffset+hb.Width()+tap
	} else {
		// BottomToTop: open rest at topOffset
		c1 = c.expanded && hb.Top < tap+c.topOffset
		// BottomToTop: closed rest at the bottom edge
		c2 = !c.expanded && hb.Top > c.bottomOffset+cb.Height()-hb.Height()-tap
		// RightToLeft: open rest at topOffset
		c3 = c.expanded && hb.Left < tap+c.topOffset
		// RightToLeft: closed rest at the right edge
		c4 = !c.expanded && hb.Left > c.bottomOffset+cb.Width()-hb.Width()-tap
	}

	if c.vertical {
		return c1 || c2
	}
	return c3 || c4
}

// stopTracking ends the gesture: clear pressed state, fire the scroll-
// ended notification, and release the velocity samples. Runs on every
// gesture exit path.
func (c *Controller) stopTracking() {
	c.layout.SetHandlePressed(false)
	c.tracking = false

	if c.onScrollEnded != nil {
		c.onScrollEnded()
	}

	if c.velocityTracker != nil {
		c.velocityTracker.Clear()
		c.velocityTracker = nil
	}
}
