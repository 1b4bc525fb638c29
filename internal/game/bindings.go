package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/config"
	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/input"
)

// mousePointer is the pointer id used for the single GLFW cursor. Real touch
// input would hand out one id per contact.
const mousePointer = 0

// Controls owns the raw input state for one window: the logical key set, the
// two on-screen pads and the aggregator that smooths them. Key state is
// polled from GLFW once per frame rather than accumulated from callbacks.
type Controls struct {
	Keys      *input.Keys
	SteerPad  *input.Pad
	ThrustPad *input.Pad
	Agg       *input.Aggregator

	prevKeys  map[glfw.Key]bool
	mouseDown bool
}

// NewControls builds the input stack for a window. Pads are registered after
// the keyboard so a touched pad wins shared axes; their geometry is resolved
// from the current window size and recomputed after resizes.
func NewControls(cfg config.InputConfig, window *glfw.Window) *Controls {
	keys := input.NewKeys(cfg.KeyBlend)

	steerPad := input.NewPad(input.PadSteer, cfg.PadBlend, func() input.PadGeometry {
		_, h := window.GetSize()
		r := float64(h) * PadRadiusFrac
		m := float64(h) * PadMarginFrac
		return input.PadGeometry{CX: m + r, CY: float64(h) - m - r, Radius: r}
	})
	thrustPad := input.NewPad(input.PadThrust, cfg.PadBlend, func() input.PadGeometry {
		w, h := window.GetSize()
		r := float64(h) * PadRadiusFrac
		m := float64(h) * PadMarginFrac
		return input.PadGeometry{CX: float64(w) - m - r, CY: float64(h) - m - r, Radius: r}
	})

	agg := input.New(keys, steerPad, thrustPad)
	agg.SetTimeScaled(cfg.TimeScaled)

	return &Controls{
		Keys:      keys,
		SteerPad:  steerPad,
		ThrustPad: thrustPad,
		Agg:       agg,
		prevKeys:  make(map[glfw.Key]bool),
	}
}

// Pads returns both pads for overlay drawing and resize invalidation.
func (c *Controls) Pads() []*input.Pad {
	return []*input.Pad{c.SteerPad, c.ThrustPad}
}

// InvalidatePads drops cached pad geometry after a resize.
func (c *Controls) InvalidatePads() {
	c.SteerPad.Invalidate()
	c.ThrustPad.Invalidate()
}

// Poll samples GLFW key and mouse state into the logical input state. Call
// once per frame after glfw.PollEvents and before Agg.Sample.
func (c *Controls) Poll(window *glfw.Window) {
	pressed := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if window.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	c.Keys.Set(input.KeyLeft, pressed(glfw.KeyA, glfw.KeyLeft))
	c.Keys.Set(input.KeyRight, pressed(glfw.KeyD, glfw.KeyRight))
	c.Keys.Set(input.KeyThrottle, pressed(glfw.KeyW, glfw.KeyUp))
	c.Keys.Set(input.KeyBrake, pressed(glfw.KeyS, glfw.KeyDown))

	// The cursor plays the part of a single touch pointer for the pads.
	down := window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	x, y := window.GetCursorPos()
	switch {
	case down && !c.mouseDown:
		if c.SteerPad.Hit(x, y) {
			c.SteerPad.PointerDown(mousePointer, x, y)
		} else if c.ThrustPad.Hit(x, y) {
			c.ThrustPad.PointerDown(mousePointer, x, y)
		}
	case down:
		c.SteerPad.PointerMove(mousePointer, x, y)
		c.ThrustPad.PointerMove(mousePointer, x, y)
	case c.mouseDown:
		c.SteerPad.PointerUp(mousePointer)
		c.ThrustPad.PointerUp(mousePointer)
	}
	c.mouseDown = down
}

// JustPressed reports a key-down edge since the previous call.
func (c *Controls) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !c.prevKeys[key]
	c.prevKeys[key] = down
	return jp
}
