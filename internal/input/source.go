// Package input turns discrete key and pointer events into the three smoothed
// control signals the vehicle model consumes.
package input

// Signal is the smoothed per-frame control output.
type Signal struct {
	Steer    float64 // -1 (full left) .. 1 (full right)
	Throttle float64 // 0..1
	Brake    float64 // 0..1
}

// AxisMask marks which axes a source is driving this frame.
type AxisMask uint8

const (
	DriveSteer AxisMask = 1 << iota
	DriveThrottle
	DriveBrake
)

// Axes is one source's instantaneous (unsmoothed) targets. Fields whose bit
// is absent from the mask are meaningless.
type Axes struct {
	Steer    float64
	Throttle float64
	Brake    float64
}

// Source is anything that can report raw control targets: a keyboard key-set,
// an on-screen pad, a gamepad. Sources later in the aggregator's list win the
// frame on any axis they share with an earlier one.
type Source interface {
	// Read returns the instantaneous targets and which axes the source is
	// currently driving. A released pad drives nothing.
	Read() (Axes, AxisMask)
	// Blend is the per-frame smoothing factor in (0,1] used for this
	// source's axes. Applied once per Sample call, independent of dt.
	Blend() float64
}
