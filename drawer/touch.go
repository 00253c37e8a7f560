package drawer

import "time"

// TouchAction identifies a touch sample's role within a gesture
type TouchAction uint8

const (
	TouchDown TouchAction = iota
	TouchMove
	TouchUp
	TouchCancel
)

// TouchEvent is one sample from the host's touch source, in container
// coordinates. Time must come from the same clock the controller was
// constructed with.
type TouchEvent struct {
	Action TouchAction
	X, Y   int
	Time   time.Time
}
