package drawer

import "testing"

func TestDirectionProperties(t *testing.T) {
	tests := []struct {
		direction   Direction
		orientation Orientation
		inverted    bool
		str         string
	}{
		{LeftToRight, Horizontal, true, "LeftToRight"},
		{RightToLeft, Horizontal, false, "RightToLeft"},
		{TopToBottom, Vertical, true, "TopToBottom"},
		{BottomToTop, Vertical, false, "BottomToTop"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.direction.Orientation(); got != tt.orientation {
				t.Errorf("Orientation() = %v, want %v", got, tt.orientation)
			}
			if got := tt.direction.inverted(); got != tt.inverted {
				t.Errorf("inverted() = %v, want %v", got, tt.inverted)
			}
			if got := tt.direction.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}

	if got := Direction(99).String(); got != "Unknown" {
		t.Errorf("out-of-range String() = %q, want %q", got, "Unknown")
	}
}

func TestParamsScaled(t *testing.T) {
	tests := []struct {
		name        string
		density     float64
		wantTap     int
		wantMajor   int
		wantAccel   int
		wantUnits   int
	}{
		{"Baseline density", 1.0, 6, 200, 2000, 1000},
		{"Double density", 2.0, 12, 400, 4000, 2000},
		{"Fractional rounds half up", 1.5, 9, 300, 3000, 1500},
		{"Low density", 0.75, 5, 150, 1500, 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams().Scaled(tt.density)
			if p.TapThreshold != tt.wantTap {
				t.Errorf("TapThreshold = %d, want %d", p.TapThreshold, tt.wantTap)
			}
			if p.MaximumMajorVelocity != tt.wantMajor {
				t.Errorf("MaximumMajorVelocity = %d, want %d", p.MaximumMajorVelocity, tt.wantMajor)
			}
			if p.MaximumAcceleration != tt.wantAccel {
				t.Errorf("MaximumAcceleration = %d, want %d", p.MaximumAcceleration, tt.wantAccel)
			}
			if p.VelocityUnits != tt.wantUnits {
				t.Errorf("VelocityUnits = %d, want %d", p.VelocityUnits, tt.wantUnits)
			}
			if p.FrameDuration != defaultFrameDuration {
				t.Errorf("FrameDuration changed by scaling: %v", p.FrameDuration)
			}
		})
	}
}

func TestRectOps(t *testing.T) {
	a := Rect{Left: 10, Top: 20, Right: 30, Bottom: 50}

	if a.Width() != 20 || a.Height() != 30 {
		t.Errorf("size = %dx%d, want 20x30", a.Width(), a.Height())
	}
	if !a.Contains(10, 20) || !a.Contains(29, 49) {
		t.Error("Contains rejected interior points")
	}
	if a.Contains(30, 20) || a.Contains(10, 50) {
		t.Error("Contains accepted exclusive edge points")
	}

	b := a.Offset(5, -10)
	if b != (Rect{Left: 15, Top: 10, Right: 35, Bottom: 40}) {
		t.Errorf("Offset = %+v", b)
	}

	u := a.Union(Rect{Left: 0, Top: 40, Right: 25, Bottom: 60})
	if u != (Rect{Left: 0, Top: 20, Right: 30, Bottom: 60}) {
		t.Errorf("Union = %+v", u)
	}
}
