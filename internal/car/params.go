package car

import "fmt"

// Params is the immutable tuning for one driving session. Units are metres,
// seconds and radians.
type Params struct {
	MaxSpeed           float64 // top speed, m/s
	Accel              float64 // full-throttle acceleration, m/s^2
	BrakeRate          float64 // full-brake deceleration, m/s^2
	Drag               float64 // rolling drag, 1/s (deceleration = Drag*speed)
	SteerRateLow       float64 // steering angular rate at standstill, rad/s
	SteerRateHigh      float64 // steering angular rate at MaxSpeed, rad/s
	Grip               float64 // position follow rate, 1/s (traction lag)
	LaneHalfWidth      float64 // drivable corridor half-width, m
	BodyHalfWidth      float64 // car half-width, m
	WheelCircumference float64 // m, for wheel spin animation
}

// DefaultParams returns the stock arcade tuning.
func DefaultParams() Params {
	return Params{
		MaxSpeed:           60.0,
		Accel:              35.0,
		BrakeRate:          45.0,
		Drag:               4.5,
		SteerRateLow:       2.4,
		SteerRateHigh:      0.7,
		Grip:               9.0,
		LaneHalfWidth:      9.0,
		BodyHalfWidth:      1.1,
		WheelCircumference: 2.0,
	}
}

// validate rejects tunings that would divide by zero or run the integrator
// backwards. MaxSpeed and WheelCircumference appear as divisors and must be
// strictly positive; the remaining rates are floored at zero.
func (p *Params) validate() error {
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("car: max speed must be positive, got %v", p.MaxSpeed)
	}
	if p.WheelCircumference <= 0 {
		return fmt.Errorf("car: wheel circumference must be positive, got %v", p.WheelCircumference)
	}
	if p.Accel < 0 {
		p.Accel = 0
	}
	if p.BrakeRate < 0 {
		p.BrakeRate = 0
	}
	if p.Drag < 0 {
		p.Drag = 0
	}
	if p.SteerRateLow < 0 {
		p.SteerRateLow = 0
	}
	if p.SteerRateHigh < 0 {
		p.SteerRateHigh = 0
	}
	if p.Grip < 0 {
		p.Grip = 0
	}
	if p.LaneHalfWidth < 0 {
		p.LaneHalfWidth = 0
	}
	if p.BodyHalfWidth < 0 {
		p.BodyHalfWidth = 0
	}
	return nil
}
