package screens

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
)

// Options configures how a screen transitions.
type Options struct {
	OnTime  time.Duration // Time to slide fully on; zero is instant
	OffTime time.Duration // Time to slide fully off; zero is instant
	Popup   bool          // Popups do not cover the screens below them
}

// Manager owns the screen stack. Like the menus it hosts it is driven from
// a single frame loop and is not safe for concurrent use.
type Manager struct {
	stack  stack
	logger *slog.Logger
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{logger: logging.GetInternalLogger()}
}

// Push adds a screen on top of the stack. It starts fully off screen and
// transitions on from the next Update.
func (m *Manager) Push(screen Screen, opts Options) error {
	if m.stack.indexOf(screen) >= 0 {
		return fmt.Errorf("screens: screen %T already on the stack", screen)
	}
	m.stack.push(&layer{
		screen:     screen,
		opts:       opts,
		transition: transition{position: 1, state: TransitionOn},
	})
	m.logger.Debug("Screen pushed", "screen", fmt.Sprintf("%T", screen), "depth", len(m.stack.layers))
	return nil
}

// Exit starts the screen's off transition; it is removed once the
// transition completes, or immediately when OffTime is zero. Exit reports
// false if the screen is not on the stack.
func (m *Manager) Exit(screen Screen) bool {
	l := m.stack.find(screen)
	if l == nil {
		return false
	}
	if l.opts.OffTime == 0 {
		return m.Remove(screen)
	}
	l.exiting = true
	l.active = false
	return true
}

// Remove drops a screen from the stack without any transition.
func (m *Manager) Remove(screen Screen) bool {
	if !m.stack.remove(screen) {
		return false
	}
	m.logger.Debug("Screen removed", "screen", fmt.Sprintf("%T", screen), "depth", len(m.stack.layers))
	return true
}

// Contains reports whether screen is still on the stack, including while
// it transitions off.
func (m *Manager) Contains(screen Screen) bool {
	return m.stack.indexOf(screen) >= 0
}

// Top returns the top-most screen, or nil when the stack is empty.
func (m *Manager) Top() Screen {
	if l := m.stack.top(); l != nil {
		return l.screen
	}
	return nil
}

func (m *Manager) Len() int { return len(m.stack.layers) }

func (m *Manager) IsEmpty() bool { return len(m.stack.layers) == 0 }

// StatusOf returns the status computed for screen by the last Update.
func (m *Manager) StatusOf(screen Screen) (Status, bool) {
	l := m.stack.find(screen)
	if l == nil {
		return Status{}, false
	}
	return l.status(0), true
}

// Update advances every transition by elapsed, assigns focus and calls
// Frame on each screen from the top of the stack down. windowFocused false
// withholds focus from every screen.
func (m *Manager) Update(elapsed time.Duration, windowFocused bool) {
	otherHasFocus := !windowFocused
	covered := false

	layers := m.stack.snapshot()
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		if m.stack.indexOf(l.screen) < 0 {
			// Removed by a screen above during this pass.
			continue
		}

		if done := m.advance(l, elapsed, covered); done {
			m.Remove(l.screen)
			continue
		}

		state := l.transition.state
		l.active = !otherHasFocus && (state == TransitionOn || state == Active)
		if state == TransitionOn || state == Active {
			otherHasFocus = true
			if !l.opts.Popup {
				covered = true
			}
		}

		l.screen.Frame(l.status(elapsed))
	}
}

// advance moves one layer's transition and reports whether an exiting
// layer has finished and should be removed.
func (m *Manager) advance(l *layer, elapsed time.Duration, covered bool) bool {
	t := &l.transition
	switch {
	case l.exiting:
		t.state = TransitionOff
		if !t.advance(elapsed, l.opts.OffTime, 1) {
			return true
		}
	case covered:
		if t.advance(elapsed, l.opts.OffTime, 1) {
			t.state = TransitionOff
		} else {
			t.state = Hidden
		}
	default:
		if t.advance(elapsed, l.opts.OnTime, -1) {
			t.state = TransitionOn
		} else {
			t.state = Active
		}
	}
	return false
}

// Each visits visible screens bottom-most first, the order they are drawn in.
func (m *Manager) Each(fn func(screen Screen, status Status)) {
	for _, l := range m.stack.snapshot() {
		st := l.status(0)
		if st.Visible() {
			fn(l.screen, st)
		}
	}
}
