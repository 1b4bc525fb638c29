package input

import (
	"math"
	"testing"
)

const frame = 1.0 / 60

func TestOppositeKeysCancel(t *testing.T) {
	tests := []struct {
		name  string
		press []Key
	}{
		{"left then right", []Key{KeyLeft, KeyRight}},
		{"right then left", []Key{KeyRight, KeyLeft}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKeys(0.2)
			for _, key := range tt.press {
				k.Set(key, true)
			}
			a, mask := k.Read()
			if mask&DriveSteer == 0 {
				t.Fatal("keyboard should always drive steer")
			}
			if a.Steer != 0 {
				t.Fatalf("opposite keys held: steer target = %v, want 0", a.Steer)
			}
		})
	}
}

func TestKeyboardSmoothingConverges(t *testing.T) {
	k := NewKeys(0.2)
	g := New(k)

	k.Set(KeyThrottle, true)
	var sig Signal
	for i := 0; i < 120; i++ {
		sig = g.Sample(frame)
		if sig.Throttle < 0 || sig.Throttle > 1 {
			t.Fatalf("frame %d: throttle %v out of range", i, sig.Throttle)
		}
	}
	if sig.Throttle < 0.99 {
		t.Fatalf("throttle %v did not converge toward 1", sig.Throttle)
	}

	k.Set(KeyThrottle, false)
	for i := 0; i < 120; i++ {
		sig = g.Sample(frame)
	}
	if sig.Throttle > 0.01 {
		t.Fatalf("throttle %v did not decay toward 0 after release", sig.Throttle)
	}
}

func fixedGeom(cx, cy, r float64) func() PadGeometry {
	return func() PadGeometry { return PadGeometry{CX: cx, CY: cy, Radius: r} }
}

func TestPadOffsetAndClamping(t *testing.T) {
	p := NewPad(PadSteer, 0.3, fixedGeom(100, 100, 50))

	p.PointerDown(1, 125, 100) // half right
	a, mask := p.Read()
	if mask != DriveSteer {
		t.Fatalf("steer pad mask = %v, want DriveSteer", mask)
	}
	if math.Abs(a.Steer-0.5) > 1e-9 {
		t.Fatalf("steer target = %v, want 0.5", a.Steer)
	}

	// Way outside the pad circle: clamp to unit magnitude, never beyond.
	p.PointerMove(1, 100+5000, 100)
	if a, _ = p.Read(); a.Steer != 1 {
		t.Fatalf("out-of-range pointer gave steer %v, want 1", a.Steer)
	}
	p.PointerMove(1, 100+300, 100+400) // 3-4-5 diagonal, length > 1
	ox, oy := p.Offset()
	if l := math.Hypot(ox, oy); math.Abs(l-1) > 1e-9 {
		t.Fatalf("diagonal offset length = %v, want 1", l)
	}
}

func TestPadReleaseSnapsToZero(t *testing.T) {
	p := NewPad(PadThrust, 0.3, fixedGeom(100, 100, 50))

	p.PointerDown(7, 100, 60) // pushed up: throttle
	if a, _ := p.Read(); a.Throttle <= 0 {
		t.Fatalf("pushed-up thrust pad throttle = %v, want > 0", a.Throttle)
	}

	p.PointerUp(7)
	a, mask := p.Read()
	if mask != 0 {
		t.Fatalf("released pad still drives axes: mask %v", mask)
	}
	if a != (Axes{}) {
		t.Fatalf("released pad reports non-zero axes: %+v", a)
	}
	if ox, oy := p.Offset(); ox != 0 || oy != 0 {
		t.Fatalf("released pad offset = (%v, %v), want (0, 0)", ox, oy)
	}
}

func TestPadIgnoresForeignPointers(t *testing.T) {
	p := NewPad(PadSteer, 0.3, fixedGeom(100, 100, 50))
	p.PointerDown(1, 150, 100)
	p.PointerMove(2, 50, 100) // different pointer: ignored
	if a, _ := p.Read(); a.Steer != 1 {
		t.Fatalf("foreign pointer moved the pad: steer %v", a.Steer)
	}
	p.PointerUp(2) // foreign release: still captured
	if !p.Active() {
		t.Fatal("foreign pointer-up released the pad")
	}
}

func TestPadGeometryInvalidation(t *testing.T) {
	calls := 0
	p := NewPad(PadSteer, 0.3, func() PadGeometry {
		calls++
		return PadGeometry{CX: float64(100 * calls), CY: 100, Radius: 50}
	})

	p.PointerDown(1, 100, 100)
	if calls != 1 {
		t.Fatalf("resolver called %d times, want 1", calls)
	}
	p.PointerMove(1, 120, 100)
	if calls != 1 {
		t.Fatalf("cached geometry was recomputed without invalidation (%d calls)", calls)
	}

	p.PointerUp(1)
	p.Invalidate()
	p.PointerDown(1, 200, 100) // new centre after resize
	if calls != 2 {
		t.Fatalf("resolver called %d times after invalidation, want 2", calls)
	}
	if ox, _ := p.Offset(); ox != 0 {
		t.Fatalf("offset from recomputed centre = %v, want 0", ox)
	}
}

func TestPadWinsOverKeyboardWhileTouched(t *testing.T) {
	k := NewKeys(0.2)
	p := NewPad(PadSteer, 0.35, fixedGeom(100, 100, 50))
	g := New(k, p) // pad registered last

	k.Set(KeyRight, true)     // keyboard wants +1
	p.PointerDown(1, 50, 100) // pad wants -1
	var sig Signal
	for i := 0; i < 200; i++ {
		sig = g.Sample(frame)
	}
	// Both sources keep smoothing the shared axis, so the steady state is a
	// tug-of-war; the pad runs last each frame and pulls the result negative.
	if sig.Steer >= -0.3 {
		t.Fatalf("steer %v: touched pad should out-pull the keyboard", sig.Steer)
	}

	// Release: keyboard takes the axis back next frame.
	p.PointerUp(1)
	for i := 0; i < 200; i++ {
		sig = g.Sample(frame)
	}
	if sig.Steer < 0.8 {
		t.Fatalf("steer %v: keyboard should reclaim the axis after pad release", sig.Steer)
	}
}

func TestSampleOutputAlwaysInRange(t *testing.T) {
	k := NewKeys(1.0) // blend 1: raw targets pass straight through
	g := New(k)
	keys := []Key{KeyLeft, KeyRight, KeyThrottle, KeyBrake}
	for i := 0; i < 64; i++ {
		for bit, key := range keys {
			k.Set(key, i&(1<<bit) != 0)
		}
		sig := g.Sample(frame)
		if sig.Steer < -1 || sig.Steer > 1 || sig.Throttle < 0 || sig.Throttle > 1 || sig.Brake < 0 || sig.Brake > 1 {
			t.Fatalf("combination %d produced out-of-range signal %+v", i, sig)
		}
	}
}

func TestTimeScaledSamplingMatchesRateAcrossFrameRates(t *testing.T) {
	run := func(dt float64, frames int) float64 {
		k := NewKeys(0.2)
		g := New(k)
		g.SetTimeScaled(true)
		k.Set(KeyThrottle, true)
		var sig Signal
		for i := 0; i < frames; i++ {
			sig = g.Sample(dt)
		}
		return sig.Throttle
	}
	// One simulated second at 60 Hz vs 120 Hz should land in the same place.
	at60 := run(1.0/60, 60)
	at120 := run(1.0/120, 120)
	if math.Abs(at60-at120) > 1e-6 {
		t.Fatalf("time-scaled smoothing diverged across frame rates: %v vs %v", at60, at120)
	}
}
