package screens

import "time"

// State is where a screen is in its lifecycle.
type State int

const (
	TransitionOn State = iota
	Active
	TransitionOff
	Hidden
)

func (s State) String() string {
	switch s {
	case TransitionOn:
		return "transition-on"
	case Active:
		return "active"
	case TransitionOff:
		return "transition-off"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Direction is the way a screen's transition is heading.
type Direction int

const (
	Entering Direction = iota
	Exiting
)

// Status is the per-frame view of one screen handed to Screen.Frame.
type Status struct {
	State     State
	Progress  float64 // 0 fully on screen, 1 fully off
	Direction Direction
	Active    bool // Holds input focus and is transitioning on or active
	Elapsed   time.Duration
}

// Visible reports whether the screen should be drawn this frame.
func (s Status) Visible() bool {
	return s.State != Hidden
}

type transition struct {
	position float64
	state    State
}

// advance moves the position by elapsed/duration in direction (-1 toward
// on, +1 toward off). A zero duration completes in one step. It reports
// false once the position reaches its end.
func (t *transition) advance(elapsed, duration time.Duration, direction float64) bool {
	delta := 1.0
	if duration > 0 {
		delta = float64(elapsed) / float64(duration)
	}

	t.position += delta * direction

	if (direction < 0 && t.position <= 0) || (direction > 0 && t.position >= 1) {
		t.position = min(max(t.position, 0), 1)
		return false
	}
	return true
}

func (t *transition) direction() Direction {
	if t.state == TransitionOn || t.state == Active {
		return Entering
	}
	return Exiting
}
