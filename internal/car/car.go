package car

import "math"

// MaxStep caps dt so frame hitches (window drags, debugger pauses) don't blow
// up the integration.
const MaxStep = 0.1

// Visual lean tuning. Blend factors are applied once per Step call,
// independent of dt, so lean speed tracks the frame rate like the input
// smoothing does.
const (
	pitchThrottle = 0.030 // nose-down at full throttle, rad
	pitchBrake    = 0.055 // nose-up at full brake, rad
	rollMax       = 0.10  // bank at full steer and full speed, rad
	leanBlend     = 0.12
)

// Vec3 is a world-space point. X is lateral (across the track), Y is up,
// Z runs along the track's long axis.
type Vec3 struct {
	X, Y, Z float64
}

// Controls is one frame's worth of driver intent, already smoothed by the
// input aggregator. Step re-clamps every field anyway.
type Controls struct {
	Steer    float64 // -1 (full left) .. 1 (full right)
	Throttle float64 // 0..1
	Brake    float64 // 0..1
}

// State is the vehicle pose after a step. WheelSpin is the wheel rotation
// covered during the step, not an accumulated angle.
type State struct {
	Speed     float64 // m/s, always in [0, MaxSpeed]
	Heading   float64 // radians, 0 = straight down +Z
	Pos       Vec3
	Pitch     float64 // radians, negative = nose down
	Roll      float64 // radians
	Distance  float64 // odometer, m, monotonically non-decreasing
	WheelSpin float64 // radians of wheel rotation this step
}

// Simulator integrates the vehicle model one frame at a time. Not safe for
// concurrent use; the frame loop owns it.
type Simulator struct {
	p  Params
	st State
}

// New validates the tuning and returns a simulator at rest at the origin.
func New(p Params) (*Simulator, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Simulator{p: p}, nil
}

// Params returns the session tuning.
func (s *Simulator) Params() Params { return s.p }

// State returns the pose from the most recent step.
func (s *Simulator) State() State { return s.st }

// Step advances the simulation by dt seconds and returns the new pose.
// dt is clamped to [0, MaxStep]; a zero dt leaves speed, position and the
// odometer untouched but still eases the visual lean.
func (s *Simulator) Step(c Controls, dt float64) State {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	if dt > MaxStep {
		dt = MaxStep
	}

	// The aggregator already clamps, but a misbehaving source must not be
	// able to push the model out of range or feed NaN into the pose.
	steer := sanitize(c.Steer, -1, 1)
	throttle := sanitize(c.Throttle, 0, 1)
	brake := sanitize(c.Brake, 0, 1)

	// Longitudinal: throttle and brake fight linear drag, so coasting decays
	// exponentially toward zero and full throttle settles at Accel/Drag.
	speed := s.st.Speed
	speed += throttle*s.p.Accel*dt - brake*s.p.BrakeRate*dt - s.p.Drag*speed*dt
	speed = clampF(speed, 0, s.p.MaxSpeed)
	s.st.Speed = speed

	// Steering authority fades with speed: responsive when crawling, damped
	// near top speed so the car can't snap-turn.
	ratio := clampF(speed/s.p.MaxSpeed, 0, 1)
	steerRate := s.p.SteerRateLow + (s.p.SteerRateHigh-s.p.SteerRateLow)*ratio
	s.st.Heading += steer * steerRate * dt

	// Candidate position from the forward vector, lateral axis clamped to
	// the drivable corridor.
	cand := s.st.Pos
	cand.X += math.Sin(s.st.Heading) * speed * dt
	cand.Z += math.Cos(s.st.Heading) * speed * dt
	limit := s.p.LaneHalfWidth - s.p.BodyHalfWidth
	if limit < 0 {
		limit = 0
	}
	cand.X = clampF(cand.X, -limit, limit)

	// Grip: ease toward the candidate instead of teleporting to it. Both
	// endpoints are inside the corridor, so the blend stays inside too.
	g := 1 - math.Exp(-s.p.Grip*dt)
	s.st.Pos.X += (cand.X - s.st.Pos.X) * g
	s.st.Pos.Y += (cand.Y - s.st.Pos.Y) * g
	s.st.Pos.Z += (cand.Z - s.st.Pos.Z) * g

	// Cosmetic lean, frame-coupled like the input smoothing.
	pitchTarget := brake*pitchBrake - throttle*pitchThrottle
	rollTarget := -steer * ratio * rollMax
	s.st.Pitch += (pitchTarget - s.st.Pitch) * leanBlend
	s.st.Roll += (rollTarget - s.st.Roll) * leanBlend

	s.st.Distance += speed * dt
	s.st.WheelSpin = speed * dt / s.p.WheelCircumference * 2 * math.Pi

	return s.st
}

// sanitize clamps a control input, treating NaN as neutral. clampF alone
// would pass NaN through (both comparisons are false) and poison the pose.
func sanitize(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clampF(v, lo, hi)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
