package trajectory

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestRegistryComplete(t *testing.T) {
	keys := []string{"horizontal", "circular", "jump", "random"}
	if len(Modes) != len(keys) {
		t.Errorf("len(Modes) = %d, want %d", len(Modes), len(keys))
	}
	for _, key := range keys {
		m, ok := Lookup(key)
		if !ok {
			t.Fatalf("Lookup(%q) not found", key)
		}
		if m.Name == "" {
			t.Errorf("mode %q has empty name", key)
		}
		if m.Duration == 0 {
			t.Errorf("mode %q has zero duration", key)
		}
		if m.GetPos == nil {
			t.Errorf("mode %q has nil GetPos", key)
		}
	}
}

func TestLookupUnknownKey(t *testing.T) {
	if _, ok := Lookup("spiral"); ok {
		t.Error(`Lookup("spiral") = ok, want not found`)
	}
}

func TestDeterministic(t *testing.T) {
	for key, m := range Modes {
		for _, progress := range []float64{0, 0.1, 0.33, 0.5, 0.77, 1} {
			a := m.GetPos(progress, 1920, 1080)
			b := m.GetPos(progress, 1920, 1080)
			if a != b {
				t.Errorf("%s: GetPos(%v) not deterministic: %+v vs %+v", key, progress, a, b)
			}
		}
	}
}

func TestHorizontal(t *testing.T) {
	m := Modes["horizontal"]
	tests := []struct {
		progress float64
		wantX    float64
	}{
		{0, 500},
		{0.125, 900}, // phase pi/2, peak amplitude
		{0.25, 500},  // phase pi
		{0.5, 500},   // phase 2pi
		{1.0, 500},   // phase 4pi
	}
	for _, tt := range tests {
		p := m.GetPos(tt.progress, 1000, 800)
		if !almostEqual(p.X, tt.wantX) {
			t.Errorf("progress %v: x = %v, want %v", tt.progress, p.X, tt.wantX)
		}
		if !almostEqual(p.Y, 400) {
			t.Errorf("progress %v: y = %v, want 400", tt.progress, p.Y)
		}
	}
}

func TestCircular(t *testing.T) {
	m := Modes["circular"]
	const w, h = 1000.0, 1000.0
	radius := 0.35 * h

	p := m.GetPos(0, w, h)
	if !almostEqual(p.X, w/2+radius) || !almostEqual(p.Y, h/2) {
		t.Errorf("progress 0: (%v, %v), want (%v, %v)", p.X, p.Y, w/2+radius, h/2)
	}

	// phase pi: opposite side of the circle
	p = m.GetPos(0.25, w, h)
	if !almostEqual(p.X, w/2-radius) || !almostEqual(p.Y, h/2) {
		t.Errorf("progress 0.25: (%v, %v), want (%v, %v)", p.X, p.Y, w/2-radius, h/2)
	}
}

func TestJump(t *testing.T) {
	m := Modes["jump"]
	tests := []struct {
		progress float64
		wantX    float64
		wantY    float64
	}{
		{0, 500, 500},    // center
		{0.13, 200, 200}, // step 1, first corner
		{0.99, 500, 500}, // step 7, back to center
		{1.0, 500, 500},  // index clamp, not step 8
	}
	for _, tt := range tests {
		p := m.GetPos(tt.progress, 1000, 1000)
		if !almostEqual(p.X, tt.wantX) || !almostEqual(p.Y, tt.wantY) {
			t.Errorf("progress %v: (%v, %v), want (%v, %v)", tt.progress, p.X, p.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestJumpDiscrete(t *testing.T) {
	m := Modes["jump"]
	// Within one step the position must not move.
	a := m.GetPos(0.125, 1000, 1000)
	b := m.GetPos(0.24, 1000, 1000)
	if a != b {
		t.Errorf("positions within step 1 differ: %+v vs %+v", a, b)
	}
}

func TestRandomBounds(t *testing.T) {
	m := Modes["random"]
	const w, h = 1920.0, 1080.0
	for i := 0; i <= 2000; i++ {
		progress := float64(i) / 2000
		p := m.GetPos(progress, w, h)
		if p.X < 0.1*w-eps || p.X > 0.9*w+eps {
			t.Fatalf("progress %v: x = %v outside [%v, %v]", progress, p.X, 0.1*w, 0.9*w)
		}
		if p.Y < 0.1*h-eps || p.Y > 0.9*h+eps {
			t.Fatalf("progress %v: y = %v outside [%v, %v]", progress, p.Y, 0.1*h, 0.9*h)
		}
	}
}

func TestRandomMoves(t *testing.T) {
	m := Modes["random"]
	a := m.GetPos(0.1, 1000, 1000)
	b := m.GetPos(0.2, 1000, 1000)
	if a == b {
		t.Error("random path did not move between samples")
	}
}
