package menu

import (
	"time"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota + 1
	MouseButtonMiddle
	MouseButtonRight
)

// PointerEvent is one mouse button transition. Position must already be in
// menu screen-space.
type PointerEvent struct {
	Button   MouseButton
	Pressed  bool
	Position Point
}

// Tap is one discrete tap gesture in menu screen-space.
type Tap struct {
	Position Point
}

// GamepadPress is one button-down edge from the controller in slot Player.
type GamepadPress struct {
	Player int
	Button constants.VirtualButton
}

// FrameInput is everything a Menu consumes in one frame. Device events are
// edge-triggered: the polling layer reports each physical press exactly once.
type FrameInput struct {
	Keys             []constants.VirtualButton // Keyboard buttons that went down this frame
	Gamepad          []GamepadPress
	GamepadConnected bool
	Pointer          []PointerEvent
	Taps             []Tap

	Viewport   Size
	Transition Transition
	Active     bool
	Elapsed    time.Duration
}

// HasDeviceInput reports whether any device event arrived this frame.
func (in FrameInput) HasDeviceInput() bool {
	return len(in.Keys) > 0 || len(in.Gamepad) > 0 || len(in.Pointer) > 0 || len(in.Taps) > 0
}

// WithoutDeviceInput returns a copy carrying only the frame state, for
// screens that do not hold input focus.
func (in FrameInput) WithoutDeviceInput() FrameInput {
	in.Keys = nil
	in.Gamepad = nil
	in.Pointer = nil
	in.Taps = nil
	return in
}
