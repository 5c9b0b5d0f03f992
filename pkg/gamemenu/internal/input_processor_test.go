package internal

import (
	"testing"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/menu"
	"github.com/google/go-cmp/cmp"
	"github.com/veandco/go-sdl2/sdl"
)

func TestProcessorKeyboardDiscardsRepeat(t *testing.T) {
	ip := NewInputProcessor(nil)
	var in menu.FrameInput

	ip.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_DOWN}}, &in)
	ip.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_DOWN}}, &in)
	ip.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_F13}}, &in)

	if diff := cmp.Diff([]constants.VirtualButton{constants.VirtualButtonDown}, in.Keys); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}

	ip.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_DOWN}}, &in)
	if len(in.Keys) != 1 {
		t.Errorf("key release produced input: %v", in.Keys)
	}
}

func TestProcessorControllerPlayers(t *testing.T) {
	ip := NewInputProcessor(nil)
	var in menu.FrameInput

	ip.ProcessSDLEvent(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Which: 7, Button: uint8(sdl.CONTROLLER_BUTTON_A)}, &in)
	ip.ProcessSDLEvent(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONUP, Which: 7, Button: uint8(sdl.CONTROLLER_BUTTON_A)}, &in)
	ip.ProcessSDLEvent(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Which: 9, Button: uint8(sdl.CONTROLLER_BUTTON_B)}, &in)

	want := []menu.GamepadPress{
		{Player: 0, Button: constants.VirtualButtonA},
		{Player: 1, Button: constants.VirtualButtonB},
	}
	if diff := cmp.Diff(want, in.Gamepad); diff != "" {
		t.Errorf("Gamepad mismatch (-want +got):\n%s", diff)
	}
	if !ip.gamepadConnected() {
		t.Error("gamepadConnected() = false after controller input")
	}
}

func TestProcessorAxisEdges(t *testing.T) {
	ip := NewInputProcessor(nil)
	axis := uint8(sdl.CONTROLLER_AXIS_LEFTY)

	steps := []struct {
		value int16
		want  constants.VirtualButton
		ok    bool
	}{
		{-20000, constants.VirtualButtonUp, true},
		{-30000, constants.VirtualButtonUnassigned, false}, // still deflected
		{0, constants.VirtualButtonUnassigned, false},      // back to centre
		{20000, constants.VirtualButtonDown, true},
		{-20000, constants.VirtualButtonUp, true}, // flipped through centre in one event
		{15999, constants.VirtualButtonDown, true},
	}

	ip.mapping.AxisThreshold = 15000
	for i, step := range steps {
		got, ok := ip.axisEdge(1, axis, step.value)
		if got != step.want || ok != step.ok {
			t.Errorf("step %d value %d: got (%s, %v), want (%s, %v)", i, step.value, got.GetName(), ok, step.want.GetName(), step.ok)
		}
	}
}

func TestProcessorPointerAndTouch(t *testing.T) {
	ip := NewInputProcessor(nil)
	in := menu.FrameInput{Viewport: menu.Size{Width: 800, Height: 600}}

	ip.ProcessSDLEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 120, Y: 330}, &in)
	ip.ProcessSDLEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: 120, Y: 330}, &in)
	ip.ProcessSDLEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Which: sdl.TOUCH_MOUSEID, Button: sdl.BUTTON_LEFT, X: 1, Y: 1}, &in)
	ip.ProcessSDLEvent(&sdl.TouchFingerEvent{Type: sdl.FINGERDOWN, X: 0.5, Y: 0.25}, &in)
	ip.ProcessSDLEvent(&sdl.TouchFingerEvent{Type: sdl.FINGERUP, X: 0.5, Y: 0.25}, &in)

	wantPointer := []menu.PointerEvent{{Button: menu.MouseButtonLeft, Pressed: true, Position: menu.Point{X: 120, Y: 330}}}
	if diff := cmp.Diff(wantPointer, in.Pointer); diff != "" {
		t.Errorf("Pointer mismatch (-want +got):\n%s", diff)
	}
	wantTaps := []menu.Tap{{Position: menu.Point{X: 400, Y: 150}}}
	if diff := cmp.Diff(wantTaps, in.Taps); diff != "" {
		t.Errorf("Taps mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessorQuitAndEvdevMerge(t *testing.T) {
	ip := NewInputProcessor(nil)
	var in menu.FrameInput

	if !ip.ProcessSDLEvent(&sdl.QuitEvent{Type: sdl.QUIT}, &in) {
		t.Error("QuitEvent should request quit")
	}

	src := newEvdevSource(nil)
	src.pending = []constants.VirtualButton{constants.VirtualButtonB}
	ip.evdev = src
	ip.drainEvdev(&in)

	want := []menu.GamepadPress{{Player: 0, Button: constants.VirtualButtonB}}
	if diff := cmp.Diff(want, in.Gamepad); diff != "" {
		t.Errorf("Gamepad mismatch (-want +got):\n%s", diff)
	}
	if !ip.gamepadConnected() {
		t.Error("running evdev source should count as a connected gamepad")
	}
}
