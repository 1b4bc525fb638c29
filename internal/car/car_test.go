package car

import (
	"math"
	"testing"
)

func testParams() Params {
	return Params{
		MaxSpeed:           60,
		Accel:              35,
		BrakeRate:          45,
		Drag:               4.5,
		SteerRateLow:       2.4,
		SteerRateHigh:      0.7,
		Grip:               9.0,
		LaneHalfWidth:      9.0,
		BodyHalfWidth:      1.1,
		WheelCircumference: 2.0,
	}
}

func mustNew(t *testing.T, p Params) *Simulator {
	t.Helper()
	s, err := New(p)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func finiteState(st State) bool {
	for _, v := range []float64{
		st.Speed, st.Heading, st.Pos.X, st.Pos.Y, st.Pos.Z,
		st.Pitch, st.Roll, st.Distance, st.WheelSpin,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func TestNewRejectsBadParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero max speed", func(p *Params) { p.MaxSpeed = 0 }},
		{"negative max speed", func(p *Params) { p.MaxSpeed = -1 }},
		{"zero wheel circumference", func(p *Params) { p.WheelCircumference = 0 }},
		{"negative wheel circumference", func(p *Params) { p.WheelCircumference = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.mutate(&p)
			if _, err := New(p); err == nil {
				t.Fatalf("New() accepted invalid params %+v", p)
			}
		})
	}
}

func TestStepNeverProducesNaN(t *testing.T) {
	controls := []Controls{
		{},
		{Steer: 1, Throttle: 1},
		{Steer: -1, Brake: 1},
		{Steer: 5, Throttle: 12, Brake: -3}, // out of range on purpose
		{Steer: math.Inf(1), Throttle: math.Inf(1)},
		{Steer: math.NaN(), Throttle: math.NaN(), Brake: math.NaN()},
		{Steer: math.NaN(), Throttle: 1},
	}
	dts := []float64{0, 1e-12, 1.0 / 60, MaxStep, 10, math.NaN()}

	s := mustNew(t, testParams())
	for _, c := range controls {
		for _, dt := range dts {
			for i := 0; i < 50; i++ {
				st := s.Step(c, dt)
				if !finiteState(st) {
					t.Fatalf("non-finite state %+v after Step(%+v, %v)", st, c, dt)
				}
			}
		}
	}
}

func TestNaNControlFrameDoesNotPoisonState(t *testing.T) {
	s := mustNew(t, testParams())
	for i := 0; i < 60; i++ {
		s.Step(Controls{Throttle: 1, Steer: 0.5}, 1.0/60)
	}

	// One corrupt frame from a broken source, then clean driving again.
	st := s.Step(Controls{Steer: math.NaN(), Throttle: math.NaN(), Brake: math.NaN()}, 1.0/60)
	if !finiteState(st) {
		t.Fatalf("NaN controls leaked into the state: %+v", st)
	}

	limit := s.Params().LaneHalfWidth - s.Params().BodyHalfWidth
	for i := 0; i < 120; i++ {
		st = s.Step(Controls{Throttle: 1, Steer: 1}, 1.0/60)
		if !finiteState(st) {
			t.Fatalf("frame %d after NaN controls: state %+v", i, st)
		}
		if math.Abs(st.Pos.X) > limit+1e-9 {
			t.Fatalf("frame %d after NaN controls: lateral position %v outside ±%v", i, st.Pos.X, limit)
		}
	}
}

func TestSpeedStaysInRange(t *testing.T) {
	s := mustNew(t, testParams())
	// Deterministic thrash: alternate hard throttle and hard brake with
	// full steer both ways.
	for i := 0; i < 5000; i++ {
		c := Controls{Steer: 1, Throttle: 1}
		if i%3 == 0 {
			c = Controls{Steer: -1, Brake: 1}
		}
		st := s.Step(c, 1.0/60)
		if st.Speed < 0 || st.Speed > s.Params().MaxSpeed {
			t.Fatalf("frame %d: speed %v outside [0, %v]", i, st.Speed, s.Params().MaxSpeed)
		}
	}
}

func TestFullThrottleConvergesToAccelOverDrag(t *testing.T) {
	s := mustNew(t, testParams())
	want := 35.0 / 4.5

	prev := 0.0
	var last State
	for i := 0; i < 600; i++ {
		last = s.Step(Controls{Throttle: 1}, 1.0/60)
		// Strictly increasing until the increment falls below float64
		// resolution near the fixed point.
		if last.Speed <= prev && want-prev > 1e-9 {
			t.Fatalf("frame %d: speed %v did not increase from %v", i, last.Speed, prev)
		}
		if last.Speed > want {
			t.Fatalf("frame %d: speed %v overshot fixed point %v", i, last.Speed, want)
		}
		prev = last.Speed
	}
	if diff := math.Abs(last.Speed - want); diff > 0.01 {
		t.Fatalf("after 600 frames speed = %v, want ~%v (diff %v)", last.Speed, want, diff)
	}
}

func TestCoastingDecaysToZero(t *testing.T) {
	s := mustNew(t, testParams())
	for i := 0; i < 300; i++ {
		s.Step(Controls{Throttle: 1}, 1.0/60)
	}

	prev := s.State().Speed
	for i := 0; i < 1200; i++ {
		st := s.Step(Controls{}, 1.0/60)
		if st.Speed > prev {
			t.Fatalf("frame %d: coasting speed rose from %v to %v", i, prev, st.Speed)
		}
		if st.Speed < 0 {
			t.Fatalf("frame %d: coasting speed went negative: %v", i, st.Speed)
		}
		prev = st.Speed
	}
	if prev > 0.01 {
		t.Fatalf("speed %v did not decay toward zero", prev)
	}
}

func TestLateralPositionStaysInCorridor(t *testing.T) {
	p := testParams()
	s := mustNew(t, p)
	limit := p.LaneHalfWidth - p.BodyHalfWidth

	steer := func(i int) float64 {
		// Hold left for a while, then hard right, then oscillate.
		switch {
		case i < 2000:
			return 1
		case i < 4000:
			return -1
		default:
			return math.Sin(float64(i) * 0.05)
		}
	}
	for i := 0; i < 8000; i++ {
		st := s.Step(Controls{Steer: steer(i), Throttle: 1}, 1.0/60)
		if math.Abs(st.Pos.X) > limit+1e-9 {
			t.Fatalf("frame %d: lateral position %v outside ±%v", i, st.Pos.X, limit)
		}
	}
}

func TestControlClampingMatchesSaturatedInput(t *testing.T) {
	a := mustNew(t, testParams())
	b := mustNew(t, testParams())
	for i := 0; i < 200; i++ {
		sa := a.Step(Controls{Steer: 7, Throttle: 3, Brake: -2}, 1.0/60)
		sb := b.Step(Controls{Steer: 1, Throttle: 1, Brake: 0}, 1.0/60)
		if sa != sb {
			t.Fatalf("frame %d: out-of-range controls diverged: %+v vs %+v", i, sa, sb)
		}
	}
}

func TestOversizedDtIsClamped(t *testing.T) {
	a := mustNew(t, testParams())
	b := mustNew(t, testParams())
	sa := a.Step(Controls{Throttle: 1}, 5.0)
	sb := b.Step(Controls{Throttle: 1}, MaxStep)
	if sa != sb {
		t.Fatalf("dt=5 result %+v differs from dt=MaxStep result %+v", sa, sb)
	}
}

func TestZeroDtFreezesMotion(t *testing.T) {
	s := mustNew(t, testParams())
	for i := 0; i < 120; i++ {
		s.Step(Controls{Throttle: 1, Steer: 0.5}, 1.0/60)
	}
	before := s.State()
	st := s.Step(Controls{Throttle: 1, Steer: 0.5}, 0)
	if st.Speed != before.Speed || st.Pos != before.Pos || st.Distance != before.Distance || st.Heading != before.Heading {
		t.Fatalf("dt=0 moved the car: before %+v after %+v", before, st)
	}
	if st.WheelSpin != 0 {
		t.Fatalf("dt=0 spun the wheels: %v", st.WheelSpin)
	}
}

func TestOdometerAndWheelSpin(t *testing.T) {
	s := mustNew(t, testParams())
	prevDist := 0.0
	for i := 0; i < 600; i++ {
		c := Controls{Throttle: 1}
		if i%2 == 1 {
			c = Controls{Brake: 1}
		}
		st := s.Step(c, 1.0/60)
		if st.Distance < prevDist {
			t.Fatalf("frame %d: odometer went backwards: %v -> %v", i, prevDist, st.Distance)
		}
		wantSpin := st.Speed * (1.0 / 60) / s.Params().WheelCircumference * 2 * math.Pi
		if math.Abs(st.WheelSpin-wantSpin) > 1e-12 {
			t.Fatalf("frame %d: wheel spin %v, want %v", i, st.WheelSpin, wantSpin)
		}
		prevDist = st.Distance
	}
}

func TestLeanDirections(t *testing.T) {
	s := mustNew(t, testParams())
	for i := 0; i < 300; i++ {
		s.Step(Controls{Throttle: 1, Steer: 1}, 1.0/60)
	}
	st := s.State()
	if st.Pitch >= 0 {
		t.Fatalf("full throttle should pitch nose-down, got pitch %v", st.Pitch)
	}
	if st.Roll >= 0 {
		t.Fatalf("steering right at speed should bank negative, got roll %v", st.Roll)
	}

	for i := 0; i < 300; i++ {
		s.Step(Controls{Brake: 1}, 1.0/60)
	}
	if st = s.State(); st.Pitch <= 0 {
		t.Fatalf("full brake should pitch nose-up, got pitch %v", st.Pitch)
	}
}
