package menu

import (
	"fmt"
	"strings"
)

// DeviceKind identifies the class of input device an intent came from.
type DeviceKind int

const (
	DeviceKeyboard DeviceKind = iota
	DeviceGamepad
	DeviceMouse
	DeviceTouch
)

var deviceKindNames = [...]string{
	DeviceKeyboard: "keyboard",
	DeviceGamepad:  "gamepad",
	DeviceMouse:    "mouse",
	DeviceTouch:    "touch",
}

func (k DeviceKind) String() string {
	if k < 0 || int(k) >= len(deviceKindNames) {
		return "unknown"
	}
	return deviceKindNames[k]
}

// ParseDeviceKind resolves a device class name such as "gamepad".
func ParseDeviceKind(name string) (DeviceKind, bool) {
	for k, n := range deviceKindNames {
		if strings.EqualFold(n, name) {
			return DeviceKind(k), true
		}
	}
	return 0, false
}

// Device is the identity passed to selection and cancel callbacks so hosts
// can give device-specific feedback. Index is the player slot for gamepads
// and zero for every other kind.
type Device struct {
	Kind  DeviceKind
	Index int
}

func (d Device) String() string {
	if d.Kind == DeviceGamepad {
		return fmt.Sprintf("gamepad#%d", d.Index)
	}
	return d.Kind.String()
}
