package drawer

import (
	"fmt"
	"time"
)

// Sentinel positions understood by moveHandle. Resolved against live
// geometry at use time, never stored as handle coordinates.
const (
	expandedFullOpen    = -10001
	collapsedFullClosed = -10002
)

// SoundPlayer provides audible feedback for tap toggles. Optional.
type SoundPlayer interface {
	PlayClick()
}

// Config fixes the drawer's construction parameters. All fields are
// immutable after NewController.
type Config struct {
	Direction Direction

	// Offsets shrink the travel range at the open and closed rest
	// edges, in density-independent pixels
	TopOffset    int
	BottomOffset int

	// AllowSingleTap lets a low-velocity release near a rest edge
	// toggle the drawer
	AllowSingleTap bool

	// AnimateOnClick selects animated vs immediate toggling for Click
	AnimateOnClick bool

	// HandleClickEnabled enables Click at all
	HandleClickEnabled bool

	// Density is the display density scale factor; 0 means 1.0
	Density float64

	// Params overrides the motion tunables before density scaling;
	// nil means DefaultParams
	Params *Params
}

// Controller drives a drawer's handle from touch samples and scheduler
// ticks. Not safe for concurrent use; all entry points must run on the
// host's single UI goroutine.
type Controller struct {
	direction Direction
	vertical  bool
	invert    bool

	layout    Layout
	clock     Clock
	scheduler Scheduler
	sound     SoundPlayer

	params       Params
	topOffset    int
	bottomOffset int

	allowSingleTap bool
	animateOnClick bool
	clickEnabled   bool

	// Persistent logical state and transient activity flags
	expanded  bool
	tracking  bool
	animating bool
	locked    bool

	touchDelta      int
	velocityTracker *VelocityTracker

	// Trajectory state, meaningful only while animating
	animPosition float64 // px
	animVelocity float64 // px/s
	animAccel    float64 // px/s²
	animLastTime time.Time
	animDeadline time.Time

	onOpened        func()
	onClosed        func()
	onScrollStarted func()
	onScrollEnded   func()
}

// NewController creates a drawer motion controller. The layout, clock
// and scheduler collaborators are required; their absence is a fatal
// configuration error.
func NewController(cfg Config, layout Layout, clock Clock, scheduler Scheduler) (*Controller, error) {
	if layout == nil {
		return nil, fmt.Errorf("drawer: layout collaborator is required")
	}
	if clock == nil {
		return nil, fmt.Errorf("drawer: clock is required")
	}
	if scheduler == nil {
		return nil, fmt.Errorf("drawer: scheduler is required")
	}

	density := cfg.Density
	if density == 0 {
		density = 1.0
	}

	params := DefaultParams()
	if cfg.Params != nil {
		params = *cfg.Params
	}

	c := &Controller{
		direction:      cfg.Direction,
		vertical:       cfg.Direction.vertical(),
		invert:         cfg.Direction.inverted(),
		layout:         layout,
		clock:          clock,
		scheduler:      scheduler,
		params:         params.Scaled(density),
		topOffset:      scaleDim(cfg.TopOffset, density),
		bottomOffset:   scaleDim(cfg.BottomOffset, density),
		allowSingleTap: cfg.AllowSingleTap,
		animateOnClick: cfg.AnimateOnClick,
		clickEnabled:   cfg.HandleClickEnabled,
	}
	return c, nil
}

// --- Listener registration ---

// SetOpenedHandler registers a callback fired when the drawer settles
// fully open, once per Closed→Open transition
func (c *Controller) SetOpenedHandler(fn func()) {
	c.onOpened = fn
}

// SetClosedHandler registers a callback fired when the drawer settles
// fully closed, once per Open→Closed transition
func (c *Controller) SetClosedHandler(fn func()) {
	c.onClosed = fn
}

// SetScrollHandlers registers callbacks fired once around each gesture,
// whether it ends in a drag, a fling, or a tap
func (c *Controller) SetScrollHandlers(started, ended func()) {
	c.onScrollStarted = started
	c.onScrollEnded = ended
}

// SetSoundPlayer wires the optional tap feedback collaborator
func (c *Controller) SetSoundPlayer(sound SoundPlayer) {
	c.sound = sound
}

// --- Queries ---

// Direction returns the construction-time direction
func (c *Controller) Direction() Direction {
	return c.direction
}

// IsOpened reports whether the drawer's logical state is Open
func (c *Controller) IsOpened() bool {
	return c.expanded
}

// IsMoving reports whether the drawer is being dragged or animated
func (c *Controller) IsMoving() bool {
	return c.tracking || c.animating
}

// --- Locking ---

// Lock suppresses all touch handling. An in-progress animation keeps
// running.
func (c *Controller) Lock() {
	c.locked = true
}

// Unlock re-enables touch handling
func (c *Controller) Unlock() {
	c.locked = false
}

// --- Immediate transitions ---

// Open opens the drawer immediately, without animation
func (c *Controller) Open() {
	c.openDrawer()
	c.layout.RedrawAll()
	c.layout.RequestLayout()
}

// Close closes the drawer immediately, without animation
func (c *Controller) Close() {
	c.closeDrawer()
	c.layout.RedrawAll()
	c.layout.RequestLayout()
}

// Toggle flips the drawer state immediately, without animation
func (c *Controller) Toggle() {
	if !c.expanded {
		c.openDrawer()
	} else {
		c.closeDrawer()
	}
	c.layout.RedrawAll()
	c.layout.RequestLayout()
}

// --- Animated transitions ---

// AnimateOpen opens the drawer with a flung trajectory
func (c *Controller) AnimateOpen() {
	c.prepareContent()
	if c.onScrollStarted != nil {
		c.onScrollStarted()
	}
	c.animateOpenAt(c.referencePosition())
}

// AnimateClose closes the drawer with a flung trajectory
func (c *Controller) AnimateClose() {
	c.prepareContent()
	if c.onScrollStarted != nil {
		c.onScrollStarted()
	}
	c.animateCloseAt(c.referencePosition())
}

// AnimateToggle flips the drawer state with a flung trajectory
func (c *Controller) AnimateToggle() {
	if !c.expanded {
		c.AnimateOpen()
	} else {
		c.AnimateClose()
	}
}

// Click toggles the drawer in response to a handle activation from a
// non-touch source (keyboard, trackball). Gated by HandleClickEnabled.
func (c *Controller) Click() {
	if c.locked || !c.clickEnabled {
		return
	}
	if c.animateOnClick {
		c.AnimateToggle()
	} else {
		c.Toggle()
	}
}

// referencePosition is the handle's major-axis coordinate used to seed
// programmatic animations. The far-edge coordinate is used for
// non-inverted directions; moveHandle clamps either way.
func (c *Controller) referencePosition() int {
	hb := c.layout.HandleBounds()
	if c.vertical {
		if c.invert {
			return hb.Top
		}
		return hb.Bottom
	}
	if c.invert {
		return hb.Left
	}
	return hb.Right
}

// --- Settle transitions ---

// closeDrawer snaps fully closed and fires the closed notification on an
// Open→Closed transition only
func (c *Controller) closeDrawer() {
	c.moveHandle(collapsedFullClosed)
	c.layout.SetContentVisible(false)
	c.layout.DestroyContentCache()

	if !c.expanded {
		return
	}

	c.expanded = false
	if c.onClosed != nil {
		c.onClosed()
	}
}

// openDrawer snaps fully open and fires the opened notification on a
// Closed→Open transition only
func (c *Controller) openDrawer() {
	c.moveHandle(expandedFullOpen)
	c.layout.SetContentVisible(true)

	if c.expanded {
		return
	}

	c.expanded = true
	if c.onOpened != nil {
		c.onOpened()
	}
}

// prepareContent readies the content pane for a gesture: freeze layout,
// snapshot content, keep it hidden until the drawer settles open
func (c *Controller) prepareContent() {
	if c.animating {
		return
	}

	c.layout.CancelPendingLayout()
	c.layout.BuildContentCache()
	c.layout.SetContentVisible(false)
}

func (c *Controller) playClick() {
	if c.sound != nil {
		c.sound.PlayClick()
	}
}
