package input

// Key is a logical control key, already mapped from whatever physical keys
// the shell binds (WASD, arrows, ...).
type Key string

const (
	KeyLeft     Key = "left"
	KeyRight    Key = "right"
	KeyThrottle Key = "throttle"
	KeyBrake    Key = "brake"
)

// Keys is a keyboard-style source: a set of currently-pressed logical keys,
// updated by the shell's event handlers and sampled once per frame. Owned
// state rather than package globals so independent sessions don't share a
// keyboard.
type Keys struct {
	down  map[Key]bool
	blend float64
}

// NewKeys returns a keyboard source with the given per-frame blend factor.
func NewKeys(blend float64) *Keys {
	return &Keys{
		down:  make(map[Key]bool),
		blend: clampF(blend, 0, 1),
	}
}

// Set records a key transition. Idempotent for key-repeat events.
func (k *Keys) Set(key Key, pressed bool) {
	if pressed {
		k.down[key] = true
	} else {
		delete(k.down, key)
	}
}

// Pressed reports whether the logical key is currently held.
func (k *Keys) Pressed(key Key) bool { return k.down[key] }

// Read implements Source. A keyboard always drives all three axes; opposite
// steer keys cancel to zero.
func (k *Keys) Read() (Axes, AxisMask) {
	var a Axes
	if k.down[KeyRight] {
		a.Steer += 1
	}
	if k.down[KeyLeft] {
		a.Steer -= 1
	}
	if k.down[KeyThrottle] {
		a.Throttle = 1
	}
	if k.down[KeyBrake] {
		a.Brake = 1
	}
	return a, DriveSteer | DriveThrottle | DriveBrake
}

func (k *Keys) Blend() float64 { return k.blend }
