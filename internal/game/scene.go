package game

import (
	"math"

	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/car"
	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/input"
)

// Scene colors.
var (
	roadCol   = [4]float32{0.16, 0.16, 0.18, 1}
	dashCol   = [4]float32{0.85, 0.85, 0.80, 1}
	kerbRed   = [4]float32{0.80, 0.15, 0.12, 1}
	kerbWhite = [4]float32{0.92, 0.92, 0.88, 1}
	postCol   = [4]float32{0.55, 0.55, 0.58, 1}
	bodyCol   = [4]float32{0.82, 0.10, 0.08, 1}
	cabCol    = [4]float32{0.20, 0.55, 0.95, 1}
	wheelCol  = [4]float32{0.08, 0.08, 0.08, 1}
	wheelAlt  = [4]float32{0.22, 0.22, 0.22, 1}
)

func appendSprite(buf []float32, x, y, size float64, col [4]float32, rot float64) []float32 {
	return append(buf,
		float32(x), float32(y), float32(size),
		col[0], col[1], col[2], col[3],
		float32(rot))
}

func floorTo(v, step float64) float64 {
	return math.Floor(v/step) * step
}

// TrackSprites appends the road dressing visible around the camera: surface
// tiles, centre-line dashes, alternating kerb blocks and roadside posts. The
// track is an endless straight along +Z, so everything repeats on fixed steps
// and only the window around the camera is emitted.
func TrackSprites(buf []float32, cam Camera, laneHalfWidth float64) []float32 {
	zMin := -cam.Y - DrawBehind
	zMax := -cam.Y + DrawAhead

	// Surface tiles across the corridor.
	for z := floorTo(zMin, RoadTileSize); z <= zMax; z += RoadTileSize {
		for x := -laneHalfWidth + RoadTileSize/2; x <= laneHalfWidth-RoadTileSize/2+1e-9; x += RoadTileSize {
			buf = appendSprite(buf, x, WorldY(z), RoadTileSize, roadCol, 0)
		}
	}

	for z := floorTo(zMin, StripeStep); z <= zMax; z += StripeStep {
		// Dashed centre line: every other step.
		if math.Mod(math.Abs(z), 2*StripeStep) < StripeStep {
			buf = appendSprite(buf, 0, WorldY(z), 0.5, dashCol, 0)
		}
		// Kerbs alternate red/white.
		kerb := kerbRed
		if math.Mod(math.Abs(z), 2*StripeStep) < StripeStep {
			kerb = kerbWhite
		}
		buf = appendSprite(buf, -laneHalfWidth-0.5, WorldY(z), 1.0, kerb, 0)
		buf = appendSprite(buf, laneHalfWidth+0.5, WorldY(z), 1.0, kerb, 0)
	}

	postX := laneHalfWidth + ShoulderPad + 1.0
	for z := floorTo(zMin, PostStep); z <= zMax; z += PostStep {
		buf = appendSprite(buf, -postX, WorldY(z), 0.7, postCol, 0)
		buf = appendSprite(buf, postX, WorldY(z), 0.7, postCol, 0)
	}
	return buf
}

// CarSprites appends the car: body, cab and four wheels, all placed in the
// car's local frame and rotated with its heading. Pitch slides the cab along
// the body, roll slides it across, and wheelPhase flickers the wheel shade
// so the spin reads at speed.
func CarSprites(buf []float32, st car.State, wheelPhase float64) []float32 {
	fx, fz := math.Sin(st.Heading), math.Cos(st.Heading)
	rx, rz := fz, -fx // right vector in the XZ plane

	// local (side, fwd) -> render plane
	at := func(side, fwd float64) (float64, float64) {
		x := st.Pos.X + rx*side + fx*fwd
		z := st.Pos.Z + rz*side + fz*fwd
		return x, WorldY(z)
	}
	rot := -st.Heading

	wheel := wheelCol
	if math.Mod(wheelPhase, 2*math.Pi) < math.Pi {
		wheel = wheelAlt
	}
	for _, w := range [4][2]float64{{-1.0, 1.4}, {1.0, 1.4}, {-1.0, -1.4}, {1.0, -1.4}} {
		x, y := at(w[0], w[1])
		buf = appendSprite(buf, x, y, 0.6, wheel, rot)
	}

	bx, by := at(0, 0)
	buf = appendSprite(buf, bx, by, 2.3, bodyCol, rot)

	// Cab rides the lean: nose-down pitch pushes it forward, roll hangs it
	// into the turn.
	cx, cy := at(-st.Roll*8, -st.Pitch*20)
	buf = appendSprite(buf, cx, cy, 1.3, cabCol, rot)

	return buf
}

// PadOverlay appends the on-screen pads in framebuffer pixels: a soft ring
// per pad plus a knob that tracks the captured pointer. scale converts the
// pads' window-space geometry to framebuffer pixels.
func PadOverlay(buf []float32, pads []*input.Pad, scale float64) []float32 {
	for _, p := range pads {
		g := p.Geometry()
		cx, cy, r := g.CX*scale, g.CY*scale, g.Radius*scale

		ring := [4]float32{0.10, 0.12, 0.14, 1}
		knob := [4]float32{0.18, 0.22, 0.26, 1}
		if p.Active() {
			ring = [4]float32{0.14, 0.18, 0.22, 1}
			knob = [4]float32{0.30, 0.45, 0.60, 1}
		}
		buf = appendSprite(buf, cx, cy, r*2.2, ring, 0)

		ox, oy := p.Offset()
		buf = appendSprite(buf, cx+ox*r, cy+oy*r, r*0.55, knob, 0)
	}
	return buf
}

// PadMarkers appends a solid centre dot on each captured pad's knob so the
// grab point stays visible inside the additive glow. Untouched pads emit
// nothing.
func PadMarkers(buf []float32, pads []*input.Pad, scale float64) []float32 {
	marker := [4]float32{0.90, 0.95, 1.0, 0.9}
	for _, p := range pads {
		if !p.Active() {
			continue
		}
		g := p.Geometry()
		cx, cy, r := g.CX*scale, g.CY*scale, g.Radius*scale
		ox, oy := p.Offset()
		buf = appendSprite(buf, cx+ox*r, cy+oy*r, r*0.18, marker, 0)
	}
	return buf
}
