package drawer

// Direction specifies which way the drawer slides open
type Direction uint8

const (
	LeftToRight Direction = iota // Closed at left edge, opens rightward
	RightToLeft                  // Closed at right edge, opens leftward
	TopToBottom                  // Closed at top edge, opens downward
	BottomToTop                  // Closed at bottom edge, opens upward
)

// Orientation is the drawer's movement axis
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Orientation returns the movement axis implied by the direction
func (d Direction) Orientation() Orientation {
	if d.vertical() {
		return Vertical
	}
	return Horizontal
}

func (d Direction) vertical() bool {
	return d == TopToBottom || d == BottomToTop
}

// inverted reports whether opening moves the handle toward the far
// container edge. For inverted directions the closed rest position is
// topOffset; for the others it is bottomOffset + containerExtent - handleExtent.
func (d Direction) inverted() bool {
	return d == LeftToRight || d == TopToBottom
}

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	case TopToBottom:
		return "TopToBottom"
	case BottomToTop:
		return "BottomToTop"
	}
	return "Unknown"
}
