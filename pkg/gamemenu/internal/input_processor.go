package internal

import (
	"fmt"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/menu"
	"github.com/veandco/go-sdl2/sdl"
)

var globalInputProcessor *Processor

// InitInputProcessor creates the process-wide processor and opens every
// controller already attached. A nil mapping uses DefaultInputMapping.
func InitInputProcessor(mapping *InputMapping) {
	globalInputProcessor = NewInputProcessor(mapping)

	numJoysticks := sdl.NumJoysticks()
	logging.GetInternalLogger().Debug("Detecting controllers", "joystick_count", numJoysticks)

	for i := 0; i < numJoysticks; i++ {
		if sdl.IsGameController(i) {
			globalInputProcessor.openController(i)
		}
	}
}

func GetInputProcessor() *Processor {
	return globalInputProcessor
}

// CloseAllControllers releases every controller and the evdev source.
func CloseAllControllers() {
	if globalInputProcessor == nil {
		return
	}
	globalInputProcessor.close()
}

type axisKey struct {
	controller sdl.JoystickID
	axis       uint8
}

// Processor turns SDL events into the per-frame menu input.
type Processor struct {
	mapping     *InputMapping
	controllers map[sdl.JoystickID]*sdl.GameController
	players     map[sdl.JoystickID]int
	axisStates  map[axisKey]int8 // -1 negative, 0 centred, 1 positive
	evdev       *EvdevSource
}

func NewInputProcessor(mapping *InputMapping) *Processor {
	if mapping == nil {
		mapping = DefaultInputMapping()
	}
	return &Processor{
		mapping:     mapping,
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		players:     make(map[sdl.JoystickID]int),
		axisStates:  make(map[axisKey]int8),
	}
}

func (ip *Processor) Mapping() *InputMapping {
	return ip.mapping
}

// AttachEvdev merges presses from src into the gamepad stream as player 0.
func (ip *Processor) AttachEvdev(src *EvdevSource) {
	if ip.evdev != nil {
		_ = ip.evdev.Close()
	}
	ip.evdev = src
}

// Poll drains the SDL event queue into one FrameInput. The caller fills in
// the transition fields. quit reports a window close request.
func (ip *Processor) Poll(viewport menu.Size) (in menu.FrameInput, quit bool) {
	in.Viewport = viewport
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ip.ProcessSDLEvent(event, &in) {
			quit = true
		}
	}
	ip.drainEvdev(&in)
	in.GamepadConnected = ip.gamepadConnected()
	return in, quit
}

// ProcessSDLEvent folds one event into in and reports whether it asks to quit.
func (ip *Processor) ProcessSDLEvent(event sdl.Event, in *menu.FrameInput) bool {
	logger := logging.GetInternalLogger()

	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			if window != nil {
				window.setFocused(true)
			}
		case sdl.WINDOWEVENT_FOCUS_LOST:
			if window != nil {
				window.setFocused(false)
			}
		}

	case *sdl.KeyboardEvent:
		keyCode := e.Keysym.Sym
		button, exists := ip.mapping.KeyboardMap[keyCode]
		if !exists {
			logger.Debug("Keyboard input not mapped", "key_code", fmt.Sprintf("%s (%d)", sdl.GetKeyName(keyCode), keyCode))
			return false
		}
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return false
		}
		logger.Debug("Keyboard input mapped", "physical", sdl.GetKeyName(keyCode), "virtualButton", button.GetName())
		in.Keys = append(in.Keys, button)

	case *sdl.ControllerButtonEvent:
		if e.Type != sdl.CONTROLLERBUTTONDOWN {
			return false
		}
		cb := sdl.GameControllerButton(e.Button)
		button, exists := ip.mapping.ControllerButtonMap[cb]
		if !exists {
			logger.Debug("Controller button not mapped", "button", sdl.GameControllerGetStringForButton(cb))
			return false
		}
		in.Gamepad = append(in.Gamepad, menu.GamepadPress{Player: ip.playerFor(e.Which), Button: button})

	case *sdl.ControllerAxisEvent:
		if button, ok := ip.axisEdge(e.Which, e.Axis, e.Value); ok {
			in.Gamepad = append(in.Gamepad, menu.GamepadPress{Player: ip.playerFor(e.Which), Button: button})
		}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			ip.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			ip.closeController(e.Which)
		}

	case *sdl.MouseButtonEvent:
		// Touches are reported separately as finger events.
		if e.Which == sdl.TOUCH_MOUSEID || e.Type != sdl.MOUSEBUTTONDOWN {
			return false
		}
		in.Pointer = append(in.Pointer, menu.PointerEvent{
			Button:   mouseButton(e.Button),
			Pressed:  true,
			Position: menu.Point{X: float64(e.X), Y: float64(e.Y)},
		})

	case *sdl.TouchFingerEvent:
		if e.Type != sdl.FINGERDOWN {
			return false
		}
		p := menu.ScaleToViewport(menu.Point{X: float64(e.X), Y: float64(e.Y)}, in.Viewport)
		in.Taps = append(in.Taps, menu.Tap{Position: p})
	}
	return false
}

// axisEdge reports the virtual button for a stick crossing the threshold
// away from centre. Returning to centre and staying deflected yield nothing.
func (ip *Processor) axisEdge(which sdl.JoystickID, axis uint8, value int16) (constants.VirtualButton, bool) {
	threshold := ip.mapping.AxisThreshold
	var state int8
	switch {
	case value > threshold:
		state = 1
	case value < -threshold:
		state = -1
	}

	key := axisKey{controller: which, axis: axis}
	previous := ip.axisStates[key]
	if state == previous {
		return constants.VirtualButtonUnassigned, false
	}
	ip.axisStates[key] = state
	if state == 0 {
		return constants.VirtualButtonUnassigned, false
	}

	switch sdl.GameControllerAxis(axis) {
	case sdl.CONTROLLER_AXIS_LEFTY:
		if state < 0 {
			return constants.VirtualButtonUp, true
		}
		return constants.VirtualButtonDown, true
	case sdl.CONTROLLER_AXIS_LEFTX:
		if state < 0 {
			return constants.VirtualButtonLeft, true
		}
		return constants.VirtualButtonRight, true
	}
	return constants.VirtualButtonUnassigned, false
}

func (ip *Processor) drainEvdev(in *menu.FrameInput) {
	if ip.evdev == nil {
		return
	}
	for _, button := range ip.evdev.Drain() {
		in.Gamepad = append(in.Gamepad, menu.GamepadPress{Player: 0, Button: button})
	}
}

func (ip *Processor) gamepadConnected() bool {
	return len(ip.players) > 0 || (ip.evdev != nil && ip.evdev.Running())
}

// playerFor returns the player slot of a controller, assigning the lowest
// free slot the first time an instance is seen.
func (ip *Processor) playerFor(which sdl.JoystickID) int {
	if slot, ok := ip.players[which]; ok {
		return slot
	}
	taken := make(map[int]bool, len(ip.players))
	for _, slot := range ip.players {
		taken[slot] = true
	}
	slot := 0
	for taken[slot] {
		slot++
	}
	ip.players[which] = slot
	return slot
}

func (ip *Processor) openController(index int) {
	logger := logging.GetInternalLogger()

	instance := sdl.JoystickGetDeviceInstanceID(index)
	if _, open := ip.controllers[instance]; open {
		return
	}

	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		logger.Error("Failed to open game controller", "index", index)
		return
	}
	ip.controllers[instance] = controller
	player := ip.playerFor(instance)
	logger.Debug("Opened game controller", "index", index, "name", controller.Name(), "player", player)
}

func (ip *Processor) closeController(instance sdl.JoystickID) {
	if controller, ok := ip.controllers[instance]; ok {
		controller.Close()
		delete(ip.controllers, instance)
	}
	delete(ip.players, instance)
	for key := range ip.axisStates {
		if key.controller == instance {
			delete(ip.axisStates, key)
		}
	}
	logging.GetInternalLogger().Debug("Game controller removed", "instance", instance)
}

func (ip *Processor) close() {
	for instance := range ip.controllers {
		ip.closeController(instance)
	}
	if ip.evdev != nil {
		_ = ip.evdev.Close()
		ip.evdev = nil
	}
}

func mouseButton(b uint8) menu.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return menu.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		return menu.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		return menu.MouseButtonRight
	}
	return 0
}
