package menu

import "fmt"

// DefaultPrecedence resolves simultaneous input as gamepad, then keyboard,
// then mouse, then touch.
func DefaultPrecedence() []DeviceKind {
	return []DeviceKind{DeviceGamepad, DeviceKeyboard, DeviceMouse, DeviceTouch}
}

// ValidatePrecedence checks that p names every device kind exactly once.
func ValidatePrecedence(p []DeviceKind) error {
	seen := make(map[DeviceKind]bool, len(p))
	for _, k := range p {
		if k < DeviceKeyboard || k > DeviceTouch {
			return fmt.Errorf("unknown device kind %d", int(k))
		}
		if seen[k] {
			return fmt.Errorf("device kind %s listed twice", k)
		}
		seen[k] = true
	}
	if len(seen) != len(deviceKindNames) {
		return fmt.Errorf("precedence names %d of %d device kinds", len(seen), len(deviceKindNames))
	}
	return nil
}

// Reconciler merges the per-device input streams of one frame into at most
// one intent. Each device is translated independently; the first device in
// Precedence that produced an intent wins and the rest are discarded.
type Reconciler struct {
	Precedence []DeviceKind
	Bindings   Bindings
}

func NewReconciler() Reconciler {
	return Reconciler{
		Precedence: DefaultPrecedence(),
		Bindings:   DefaultBindings(),
	}
}

// Reconcile returns the winning intent for the frame, or an IntentNone
// intent when no device produced one. selected is the current selection
// index (-1 when undefined) and becomes the target of keyboard and gamepad
// confirms; pointer and touch confirms target whatever locate returns.
func (r Reconciler) Reconcile(in FrameInput, selected int, locate Locator) Intent {
	for _, kind := range r.Precedence {
		var (
			intent Intent
			ok     bool
		)
		switch kind {
		case DeviceGamepad:
			intent, ok = gamepadIntent(in.Gamepad, in.GamepadConnected, r.Bindings, selected)
		case DeviceKeyboard:
			intent, ok = keyboardIntent(in.Keys, r.Bindings, selected)
		case DeviceMouse:
			intent, ok = pointerIntent(in.Pointer, locate)
		case DeviceTouch:
			intent, ok = touchIntent(in.Taps, locate)
		}
		if ok {
			return intent
		}
	}
	return Intent{Kind: IntentNone, Index: -1}
}
