package drawer

// moveHandle is the single chokepoint that changes the handle's on-screen
// coordinate outside of full layout passes. Sentinel positions snap to
// the resolved geometric endpoint and invalidate everything; ordinary
// positions are clamped to the travel range and invalidate only the
// swept region.
func (c *Controller) moveHandle(position int) {
	hb := c.layout.HandleBounds()
	tr := c.travel()

	var current int
	if c.vertical {
		current = hb.Top
	} else {
		current = hb.Left
	}

	// Endpoint targets anchor to opposite container edges depending on
	// direction inversion
	openTarget := tr.openPosition(c.invert)
	closedTarget := tr.closedPosition(c.invert)

	switch position {
	case expandedFullOpen:
		c.offsetHandleMajor(openTarget - current)
		c.layout.RedrawAll()
	case collapsedFullClosed:
		c.offsetHandleMajor(closedTarget - current)
		c.layout.RedrawAll()
	default:
		lo := tr.topOffset
		hi := tr.bottomOffset + tr.containerExtent - tr.handleExtent

		delta := position - current
		if position < lo {
			delta = lo - current
		} else if delta > hi-current {
			delta = hi - current
		}
		c.offsetHandleMajor(delta)
		c.invalidateSwept(delta)
	}
}

// offsetHandleMajor shifts the handle along the movement axis
func (c *Controller) offsetHandleMajor(delta int) {
	if c.vertical {
		c.layout.OffsetHandle(0, delta)
	} else {
		c.layout.OffsetHandle(delta, 0)
	}
}

// invalidateSwept requests a redraw of the minimal region affected by a
// handle move: the handle's new rectangle, its pre-move rectangle, and
// the content band the move exposed or covered. Redraw cost stays
// proportional to the swept region, not the container.
func (c *Controller) invalidateSwept(delta int) {
	frame := c.layout.HandleBounds()
	cb := c.layout.ContainerBounds()
	contentW, contentH := c.layout.ContentSize()

	region := frame
	if c.vertical {
		region = region.Union(frame.Offset(0, -delta))
		region = region.Union(Rect{
			Left:   0,
			Top:    frame.Bottom - delta,
			Right:  cb.Width(),
			Bottom: frame.Bottom - delta + contentH,
		})
	} else {
		region = region.Union(frame.Offset(-delta, 0))
		region = region.Union(Rect{
			Left:   frame.Right - delta,
			Top:    0,
			Right:  frame.Right - delta + contentW,
			Bottom: cb.Height(),
		})
	}

	c.layout.RequestRedraw(region)
}
