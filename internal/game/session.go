package game

type SessionState int

const (
	StateDriving SessionState = iota
	StatePaused
)

// Session tracks the pause state and the wall-clock driving time.
type Session struct {
	State   SessionState
	Elapsed float64
}

func NewSession() *Session {
	return &Session{State: StateDriving}
}

func (s *Session) TogglePause() {
	if s.State == StatePaused {
		s.State = StateDriving
	} else {
		s.State = StatePaused
	}
}

func (s *Session) Paused() bool { return s.State == StatePaused }

// StepDT returns the dt the simulator should integrate this frame: zero
// while paused, so the car freezes without special-casing the step order.
func (s *Session) StepDT(dt float64) float64 {
	if s.State == StatePaused {
		return 0
	}
	s.Elapsed += dt
	return dt
}
