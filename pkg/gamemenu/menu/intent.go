package menu

import (
	"fmt"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
)

// IntentKind is the device-agnostic action vocabulary.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentMoveUp
	IntentMoveDown
	IntentConfirm
	IntentCancel
)

func (k IntentKind) String() string {
	switch k {
	case IntentMoveUp:
		return "move-up"
	case IntentMoveDown:
		return "move-down"
	case IntentConfirm:
		return "confirm"
	case IntentCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Intent is a discrete action derived from one device event.
// Index is only meaningful for IntentConfirm.
type Intent struct {
	Kind   IntentKind
	Index  int
	Device Device
}

func (i Intent) String() string {
	if i.Kind == IntentConfirm {
		return fmt.Sprintf("%s(%d) via %s", i.Kind, i.Index, i.Device)
	}
	return fmt.Sprintf("%s via %s", i.Kind, i.Device)
}

// Bindings maps virtual buttons to the intent they produce on keyboards and gamepads.
type Bindings map[constants.VirtualButton]IntentKind

func DefaultBindings() Bindings {
	return Bindings{
		constants.VirtualButtonUp:    IntentMoveUp,
		constants.VirtualButtonDown:  IntentMoveDown,
		constants.VirtualButtonA:     IntentConfirm,
		constants.VirtualButtonStart: IntentConfirm,
		constants.VirtualButtonB:     IntentCancel,
	}
}

// Locator resolves a screen-space point to an entry index.
type Locator func(p Point) (int, bool)

func (b Bindings) intentFor(button constants.VirtualButton, selected int, device Device) (Intent, bool) {
	kind, ok := b[button]
	if !ok || kind == IntentNone {
		return Intent{}, false
	}
	intent := Intent{Kind: kind, Device: device}
	if kind == IntentConfirm {
		intent.Index = selected
	}
	return intent, true
}

func keyboardIntent(keys []constants.VirtualButton, b Bindings, selected int) (Intent, bool) {
	for _, key := range keys {
		if intent, ok := b.intentFor(key, selected, Device{Kind: DeviceKeyboard}); ok {
			return intent, true
		}
	}
	return Intent{}, false
}

func gamepadIntent(presses []GamepadPress, connected bool, b Bindings, selected int) (Intent, bool) {
	if !connected {
		return Intent{}, false
	}
	for _, press := range presses {
		device := Device{Kind: DeviceGamepad, Index: press.Player}
		if intent, ok := b.intentFor(press.Button, selected, device); ok {
			return intent, true
		}
	}
	return Intent{}, false
}

func pointerIntent(events []PointerEvent, locate Locator) (Intent, bool) {
	for _, ev := range events {
		if !ev.Pressed || ev.Button != MouseButtonLeft {
			continue
		}
		if index, ok := locate(ev.Position); ok {
			return Intent{Kind: IntentConfirm, Index: index, Device: Device{Kind: DeviceMouse}}, true
		}
	}
	return Intent{}, false
}

func touchIntent(taps []Tap, locate Locator) (Intent, bool) {
	for _, tap := range taps {
		if index, ok := locate(tap.Position); ok {
			return Intent{Kind: IntentConfirm, Index: index, Device: Device{Kind: DeviceTouch}}, true
		}
	}
	return Intent{}, false
}
