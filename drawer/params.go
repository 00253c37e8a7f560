package drawer

import "time"

// Base tunables in density-independent pixels. Scaled() converts them to
// physical pixels for the host display.
const (
	defaultTapThreshold         = 6
	defaultMaximumTapVelocity   = 100
	defaultMaximumMinorVelocity = 150
	defaultMaximumMajorVelocity = 200
	defaultMaximumAcceleration  = 2000
	defaultVelocityUnits        = 1000

	defaultFrameDuration = time.Second / 60
)

// Params holds the motion tunables. Velocities are px per VelocityUnits
// milliseconds, acceleration px/s².
type Params struct {
	TapThreshold         int // Max distance from a rest edge for tap classification
	MaximumTapVelocity   int // Below this combined speed a release may be a tap
	MaximumMinorVelocity int // Cap on the orthogonal axis contribution
	MaximumMajorVelocity int // Fling decision threshold on the movement axis
	MaximumAcceleration  int // Magnitude of the constant trajectory acceleration
	VelocityUnits        int // Milliseconds over which velocities are expressed
	FrameDuration        time.Duration
}

// DefaultParams returns the unscaled base tunables
func DefaultParams() Params {
	return Params{
		TapThreshold:         defaultTapThreshold,
		MaximumTapVelocity:   defaultMaximumTapVelocity,
		MaximumMinorVelocity: defaultMaximumMinorVelocity,
		MaximumMajorVelocity: defaultMaximumMajorVelocity,
		MaximumAcceleration:  defaultMaximumAcceleration,
		VelocityUnits:        defaultVelocityUnits,
		FrameDuration:        defaultFrameDuration,
	}
}

// Scaled converts the tunables to physical pixels for the given display
// density. FrameDuration is time-based and left untouched.
func (p Params) Scaled(density float64) Params {
	return Params{
		TapThreshold:         scaleDim(p.TapThreshold, density),
		MaximumTapVelocity:   scaleDim(p.MaximumTapVelocity, density),
		MaximumMinorVelocity: scaleDim(p.MaximumMinorVelocity, density),
		MaximumMajorVelocity: scaleDim(p.MaximumMajorVelocity, density),
		MaximumAcceleration:  scaleDim(p.MaximumAcceleration, density),
		VelocityUnits:        scaleDim(p.VelocityUnits, density),
		FrameDuration:        p.FrameDuration,
	}
}

// scaleDim rounds a density-independent dimension to physical pixels
func scaleDim(v int, density float64) int {
	return int(float64(v)*density + 0.5)
}
