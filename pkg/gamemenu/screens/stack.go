package screens

import "time"

// Screen is anything the Manager can stack. Frame is called once per
// frame for every screen on the stack, top-most first.
type Screen interface {
	Frame(status Status)
}

// layer is one entry of the screen stack.
type layer struct {
	screen     Screen
	opts       Options
	transition transition
	exiting    bool
	active     bool
}

func (l *layer) status(elapsed time.Duration) Status {
	return Status{
		State:     l.transition.state,
		Progress:  l.transition.position,
		Direction: l.transition.direction(),
		Active:    l.active,
		Elapsed:   elapsed,
	}
}

// stack holds layers bottom-most first.
type stack struct {
	layers []*layer
}

func (s *stack) push(l *layer) {
	s.layers = append(s.layers, l)
}

func (s *stack) indexOf(screen Screen) int {
	for i, l := range s.layers {
		if l.screen == screen {
			return i
		}
	}
	return -1
}

func (s *stack) find(screen Screen) *layer {
	if i := s.indexOf(screen); i >= 0 {
		return s.layers[i]
	}
	return nil
}

func (s *stack) remove(screen Screen) bool {
	i := s.indexOf(screen)
	if i < 0 {
		return false
	}
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	return true
}

func (s *stack) top() *layer {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1]
}

// snapshot copies the layer list so screens may push or exit while the
// manager walks it.
func (s *stack) snapshot() []*layer {
	out := make([]*layer, len(s.layers))
	copy(out, s.layers)
	return out
}
