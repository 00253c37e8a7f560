package drawer

// Rect is a rectangle in container coordinates, edges half-open like
// image.Rectangle: Left/Top inclusive, Right/Bottom exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Offset returns the rectangle translated by dx, dy
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

// Union returns the smallest rectangle covering both r and o
func (r Rect) Union(o Rect) Rect {
	if o.Left < r.Left {
		r.Left = o.Left
	}
	if o.Top < r.Top {
		r.Top = o.Top
	}
	if o.Right > r.Right {
		r.Right = o.Right
	}
	if o.Bottom > r.Bottom {
		r.Bottom = o.Bottom
	}
	return r
}

// Layout is the measurement/render collaborator. The controller reads
// geometry from it on demand, never caching across calls, so a resize is
// picked up by the next operation. All methods are invoked from the
// controller's goroutine.
type Layout interface {
	// HandleBounds returns the handle's current hit rectangle
	HandleBounds() Rect

	// ContentSize returns the content pane's measured size
	ContentSize() (w, h int)

	// ContainerBounds returns the drawer container's bounds
	ContainerBounds() Rect

	// OffsetHandle shifts the handle's on-screen position
	OffsetHandle(dx, dy int)

	// SetHandlePressed toggles the handle's pressed visual state
	SetHandlePressed(pressed bool)

	// SetContentVisible shows or hides the content pane
	SetContentVisible(visible bool)

	// RequestRedraw invalidates only the given region
	RequestRedraw(region Rect)

	// RedrawAll invalidates the whole container
	RedrawAll()

	// RequestLayout asks the host for a full layout pass
	RequestLayout()

	// CancelPendingLayout freezes layout while a gesture is in flight
	CancelPendingLayout()

	// BuildContentCache snapshots the content pane so it can be blitted
	// during tracking/animation; hosts without caching may no-op and
	// draw live instead
	BuildContentCache()

	// DestroyContentCache releases the snapshot
	DestroyContentCache()
}

// travelRange is the drawer's derived movement geometry along its major
// axis. Resolved from the Layout at each use.
type travelRange struct {
	topOffset       int
	bottomOffset    int
	handleExtent    int
	containerExtent int
}

// closedPosition returns the handle rest position for the closed state
func (tr travelRange) closedPosition(invert bool) int {
	if invert {
		return tr.topOffset
	}
	return tr.bottomOffset + tr.containerExtent - tr.handleExtent
}

// openPosition returns the handle rest position for the open state
func (tr travelRange) openPosition(invert bool) int {
	if invert {
		return tr.bottomOffset + tr.containerExtent - tr.handleExtent
	}
	return tr.topOffset
}

// travel resolves the current travel range from live geometry
func (c *Controller) travel() travelRange {
	hb := c.layout.HandleBounds()
	cb := c.layout.ContainerBounds()

	tr := travelRange{
		topOffset:    c.topOffset,
		bottomOffset: c.bottomOffset,
	}
	if c.vertical {
		tr.handleExtent = hb.Height()
		tr.containerExtent = cb.Height()
	} else {
		tr.handleExtent = hb.Width()
		tr.containerExtent = cb.Width()
	}
	return tr
}
