package gamemenu

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/menu"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/screens"
)

// Host drives a stack of menu screens from one frame loop: it polls input,
// advances transitions, updates the focused menu and draws every visible
// screen bottom-up.
type Host struct {
	Manager *screens.Manager

	input  menu.FrameInput
	opened map[*menu.Menu]*MenuScreen
}

func NewHost() *Host {
	return &Host{
		Manager: screens.NewManager(),
		opened:  make(map[*menu.Menu]*MenuScreen),
	}
}

// PushMenu wraps m in a MenuScreen and stacks it on top.
func (h *Host) PushMenu(m *menu.Menu, opts screens.Options) (*MenuScreen, error) {
	s := &MenuScreen{Menu: m, host: h}
	if err := h.Manager.Push(s, opts); err != nil {
		return nil, err
	}
	h.opened[m] = s
	return s, nil
}

// OpenMenu is PushMenu for menus that may already be on the stack. An open
// screen for m is returned as is. One still transitioning off is removed
// and m is pushed again, so the menu never updates twice in a frame.
func (h *Host) OpenMenu(m *menu.Menu, opts screens.Options) (*MenuScreen, error) {
	logger := logging.GetInternalLogger()

	if s, ok := h.opened[m]; ok && h.Manager.Contains(s) {
		if !s.exiting {
			logger.Debug("Menu already open", "menu", m.Title())
			return s, nil
		}
		h.Manager.Remove(s)
		logger.Debug("Reopening menu during its exit transition", "menu", m.Title())
	}
	return h.PushMenu(m, opts)
}

// Frame runs one frame and reports whether the window asked to quit.
func (h *Host) Frame(elapsed time.Duration) bool {
	window := internal.GetWindow()
	w, hgt := window.Viewport()
	viewport := menu.Size{Width: w, Height: hgt}

	in, quit := internal.GetInputProcessor().Poll(viewport)
	in.Elapsed = elapsed
	h.input = in

	h.Manager.Update(elapsed, window.Focused())

	r := getRenderer()
	r.clear()
	h.Manager.Each(func(screen screens.Screen, status screens.Status) {
		if s, ok := screen.(*MenuScreen); ok {
			r.draw(s.Menu.Frame())
		}
	})
	window.Present()

	return quit
}

// Run calls Frame until done reports true, the stack empties or the window
// quits. A quit returns ErrCancelled.
func (h *Host) Run(done func() bool) error {
	last := time.Now()
	for !h.Manager.IsEmpty() {
		now := time.Now()
		if h.Frame(now.Sub(last)) {
			return ErrCancelled
		}
		last = now
		if done != nil && done() {
			return nil
		}
	}
	return nil
}

// MenuScreen adapts a menu to the screen stack. Only the screen holding
// input focus receives device events; every visible screen is laid out
// with its own transition each frame.
type MenuScreen struct {
	Menu *menu.Menu

	host       *Host
	lastIntent menu.Intent
	exiting    bool
	closed     bool
}

// Frame implements screens.Screen.
func (s *MenuScreen) Frame(status screens.Status) {
	in := s.host.input
	if !status.Active {
		in = in.WithoutDeviceInput()
	}
	in.Elapsed = status.Elapsed
	in.Active = status.Active
	in.Transition = menuTransition(status)

	s.lastIntent = s.Menu.Update(in)

	if s.Menu.ExitRequested() {
		s.Menu.ResetExit()
		s.Exit()
	}
}

// LastIntent is the intent applied during the most recent frame.
func (s *MenuScreen) LastIntent() menu.Intent {
	return s.lastIntent
}

// Exit starts the screen's off transition.
func (s *MenuScreen) Exit() {
	s.exiting = true
	s.host.Manager.Exit(s)
}

// Close exits the screen and makes a running Show return MenuActionClosed.
func (s *MenuScreen) Close() {
	s.closed = true
	s.Exit()
}

func (s *MenuScreen) String() string {
	return fmt.Sprintf("MenuScreen(%s)", s.Menu.Title())
}

func menuTransition(status screens.Status) menu.Transition {
	direction := menu.Entering
	if status.Direction == screens.Exiting {
		direction = menu.Exiting
	}
	return menu.Transition{Progress: status.Progress, Direction: direction}
}
