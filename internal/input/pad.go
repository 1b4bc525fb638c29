package input

import "math"

// PadRole selects which control axes a pad drives.
type PadRole int

const (
	// PadSteer maps the pad's horizontal offset to the steer axis.
	PadSteer PadRole = iota
	// PadThrust maps the pad's vertical offset to throttle (pushed up)
	// and brake (pulled down).
	PadThrust
)

// PadGeometry is a pad's hit circle in control-surface pixels.
type PadGeometry struct {
	CX, CY float64 // centre
	Radius float64
}

// Pad is an on-screen directional pad driven by pointer events. It owns one
// captured pointer at a time; while captured it reports a unit-clamped 2D
// offset from its centre, and releasing the pointer snaps the offset to zero
// immediately so letting off the gas doesn't linger.
//
// Geometry is computed lazily through the resolve callback and cached until
// Invalidate is called (the shell calls it on window resize).
type Pad struct {
	role    PadRole
	blend   float64
	resolve func() PadGeometry

	geom      PadGeometry
	geomValid bool

	pointer    int // captured pointer id, -1 when none
	offX, offY float64
}

// NewPad returns a pad with the given role, per-frame blend factor and
// geometry resolver.
func NewPad(role PadRole, blend float64, resolve func() PadGeometry) *Pad {
	return &Pad{
		role:    role,
		blend:   clampF(blend, 0, 1),
		resolve: resolve,
		pointer: -1,
	}
}

// Geometry returns the current hit circle, recomputing it if a resize
// invalidated the cache.
func (p *Pad) Geometry() PadGeometry {
	if !p.geomValid {
		p.geom = p.resolve()
		p.geomValid = true
	}
	return p.geom
}

// Invalidate drops the cached geometry; the next touch recomputes it.
func (p *Pad) Invalidate() { p.geomValid = false }

// Hit reports whether the point lies inside the pad's circle.
func (p *Pad) Hit(x, y float64) bool {
	g := p.Geometry()
	return math.Hypot(x-g.CX, y-g.CY) <= g.Radius
}

// PointerDown captures the pointer and sets the offset. A pad tracks one
// pointer; further downs while captured are ignored.
func (p *Pad) PointerDown(id int, x, y float64) {
	if p.pointer >= 0 {
		return
	}
	p.pointer = id
	p.setOffset(x, y)
}

// PointerMove updates the offset while the matching pointer is captured.
func (p *Pad) PointerMove(id int, x, y float64) {
	if p.pointer != id {
		return
	}
	p.setOffset(x, y)
}

// PointerUp releases the pointer and zeroes the offset immediately,
// bypassing smoothing. Also used for pointer-cancel.
func (p *Pad) PointerUp(id int) {
	if p.pointer != id {
		return
	}
	p.pointer = -1
	p.offX = 0
	p.offY = 0
}

// Active reports whether a pointer is captured.
func (p *Pad) Active() bool { return p.pointer >= 0 }

// Offset returns the current unit-clamped offset from the pad centre.
// +X is right, +Y is down (screen convention).
func (p *Pad) Offset() (float64, float64) { return p.offX, p.offY }

func (p *Pad) setOffset(x, y float64) {
	g := p.Geometry()
	if g.Radius <= 0 {
		p.offX, p.offY = 0, 0
		return
	}
	ox := (x - g.CX) / g.Radius
	oy := (y - g.CY) / g.Radius
	// Out-of-range pointer coordinates clamp to the unit circle instead of
	// producing oversized signals.
	if l := math.Hypot(ox, oy); l > 1 {
		ox /= l
		oy /= l
	}
	p.offX, p.offY = ox, oy
}

// Read implements Source. An untouched pad drives no axes at all, so it
// never drags a signal another source is holding.
func (p *Pad) Read() (Axes, AxisMask) {
	if p.pointer < 0 {
		return Axes{}, 0
	}
	switch p.role {
	case PadThrust:
		a := Axes{}
		if p.offY < 0 {
			a.Throttle = -p.offY
		} else {
			a.Brake = p.offY
		}
		return a, DriveThrottle | DriveBrake
	default:
		return Axes{Steer: p.offX}, DriveSteer
	}
}

func (p *Pad) Blend() float64 { return p.blend }
