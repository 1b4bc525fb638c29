package input

import "math"

// refFrame is the frame time the blend constants were tuned at, used only by
// the optional dt-scaled sampling mode.
const refFrame = 1.0 / 60

// Aggregator owns the smoothed control signal and eases it toward the raw
// targets of its sources once per frame. Registration order matters: when two
// sources drive the same axis in the same frame, the later one's smoothing
// runs last and wins the frame.
type Aggregator struct {
	sources []Source
	sig     Signal

	timeScaled bool
}

// New returns an aggregator over the given sources. Register pads after the
// keyboard so a touched pad takes priority on shared axes.
func New(sources ...Source) *Aggregator {
	return &Aggregator{sources: sources}
}

// SetTimeScaled switches smoothing from the default fixed-blend-per-call
// behavior to a dt-normalized variant where each source's blend factor is
// rescaled so the decay rate matches a 60 Hz frame. The fixed mode is the
// faithful default: it couples smoothing speed to frame rate.
func (g *Aggregator) SetTimeScaled(on bool) { g.timeScaled = on }

// Signal returns the most recently sampled signal without re-sampling.
func (g *Aggregator) Signal() Signal { return g.sig }

// Sample reads every source and returns the updated smoothed signal. Call it
// exactly once per frame, before the simulator step. dt is only consulted in
// time-scaled mode.
func (g *Aggregator) Sample(dt float64) Signal {
	for _, src := range g.sources {
		a, mask := src.Read()
		if mask == 0 {
			continue
		}
		b := src.Blend()
		if g.timeScaled {
			b = scaleBlend(b, dt)
		}
		if mask&DriveSteer != 0 {
			g.sig.Steer += (a.Steer - g.sig.Steer) * b
		}
		if mask&DriveThrottle != 0 {
			g.sig.Throttle += (a.Throttle - g.sig.Throttle) * b
		}
		if mask&DriveBrake != 0 {
			g.sig.Brake += (a.Brake - g.sig.Brake) * b
		}
	}
	g.sig.Steer = clampF(g.sig.Steer, -1, 1)
	g.sig.Throttle = clampF(g.sig.Throttle, 0, 1)
	g.sig.Brake = clampF(g.sig.Brake, 0, 1)
	return g.sig
}

// scaleBlend converts a per-60Hz-frame blend factor into one with the same
// decay rate over dt seconds.
func scaleBlend(b, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	if b >= 1 {
		return 1
	}
	return 1 - math.Pow(1-b, dt/refFrame)
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
