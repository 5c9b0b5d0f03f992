package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
	"github.com/BurntSushi/toml"
	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"
)

// InputMapping translates physical keys and buttons into virtual buttons.
type InputMapping struct {
	KeyboardMap         map[sdl.Keycode]constants.VirtualButton
	ControllerButtonMap map[sdl.GameControllerButton]constants.VirtualButton
	EvdevMap            map[evdev.EvCode]constants.VirtualButton

	// AxisThreshold is the analog stick deflection that counts as a press.
	AxisThreshold int16
}

// MappingFile is the TOML form of an InputMapping. Keys are SDL key names,
// SDL controller button names and evdev key names or codes. Values are
// virtual button names.
type MappingFile struct {
	Keyboard      map[string]string `toml:"keyboard"`
	Controller    map[string]string `toml:"controller"`
	Evdev         map[string]string `toml:"evdev"`
	AxisThreshold int16             `toml:"axis_threshold"`
}

func DefaultInputMapping() *InputMapping {
	return &InputMapping{
		KeyboardMap: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:        constants.VirtualButtonUp,
			sdl.K_DOWN:      constants.VirtualButtonDown,
			sdl.K_LEFT:      constants.VirtualButtonLeft,
			sdl.K_RIGHT:     constants.VirtualButtonRight,
			sdl.K_RETURN:    constants.VirtualButtonA,
			sdl.K_KP_ENTER:  constants.VirtualButtonA,
			sdl.K_SPACE:     constants.VirtualButtonA,
			sdl.K_ESCAPE:    constants.VirtualButtonB,
			sdl.K_BACKSPACE: constants.VirtualButtonB,
			sdl.K_TAB:       constants.VirtualButtonSelect,
		},
		ControllerButtonMap: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonA,
			sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
			sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonX,
			sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonY,
			sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
			sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
			sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
			sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
		},
		EvdevMap: map[evdev.EvCode]constants.VirtualButton{
			evdev.KEY_UP:     constants.VirtualButtonUp,
			evdev.KEY_DOWN:   constants.VirtualButtonDown,
			evdev.KEY_LEFT:   constants.VirtualButtonLeft,
			evdev.KEY_RIGHT:  constants.VirtualButtonRight,
			evdev.KEY_ENTER:  constants.VirtualButtonA,
			evdev.KEY_ESC:    constants.VirtualButtonB,
			evdev.BTN_SOUTH:  constants.VirtualButtonA,
			evdev.BTN_EAST:   constants.VirtualButtonB,
			evdev.BTN_START:  constants.VirtualButtonStart,
			evdev.BTN_SELECT: constants.VirtualButtonSelect,
		},
		AxisThreshold: constants.DefaultAxisThreshold,
	}
}

// ResolveInputMapping picks the mapping for this run. An explicit path wins,
// then INPUT_MAPPING_PATH, then the inline tables from the config file.
// Failures are logged and fall back to the next source.
func ResolveInputMapping(path string, inline *MappingFile) *InputMapping {
	logger := logging.GetInternalLogger()

	if path == "" {
		path = os.Getenv(constants.MappingPathEnvVar)
	}

	if path != "" {
		mapping, err := LoadInputMappingFromTOML(path)
		if err == nil {
			logger.Info("Loaded custom input mapping", "path", path)
			return mapping
		}
		logger.Warn("Failed to load custom input mapping, using default", "path", path, "error", err)
	}

	if inline != nil {
		mapping, err := inline.Resolve()
		if err == nil {
			return mapping
		}
		logger.Warn("Invalid inline input mapping, using default", "error", err)
	}

	return DefaultInputMapping()
}

func LoadInputMappingFromTOML(filePath string) (*InputMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}
	return LoadInputMappingFromBytes(data)
}

func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var file MappingFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("failed to decode mapping: %w", err)
	}
	return file.Resolve()
}

// Resolve converts names into an InputMapping. Tables that are absent keep
// the default bindings for that device class.
func (f MappingFile) Resolve() (*InputMapping, error) {
	mapping := DefaultInputMapping()

	if len(f.Keyboard) > 0 {
		mapping.KeyboardMap = make(map[sdl.Keycode]constants.VirtualButton, len(f.Keyboard))
		for name, buttonName := range f.Keyboard {
			key := sdl.GetKeyFromName(name)
			if key == sdl.K_UNKNOWN {
				return nil, fmt.Errorf("unknown key %q", name)
			}
			button, err := parseButton(buttonName)
			if err != nil {
				return nil, err
			}
			mapping.KeyboardMap[key] = button
		}
	}

	if len(f.Controller) > 0 {
		mapping.ControllerButtonMap = make(map[sdl.GameControllerButton]constants.VirtualButton, len(f.Controller))
		for name, buttonName := range f.Controller {
			cb := sdl.GameControllerGetButtonFromString(name)
			if cb == sdl.CONTROLLER_BUTTON_INVALID {
				return nil, fmt.Errorf("unknown controller button %q", name)
			}
			button, err := parseButton(buttonName)
			if err != nil {
				return nil, err
			}
			mapping.ControllerButtonMap[cb] = button
		}
	}

	if len(f.Evdev) > 0 {
		mapping.EvdevMap = make(map[evdev.EvCode]constants.VirtualButton, len(f.Evdev))
		for name, buttonName := range f.Evdev {
			code, err := parseEvdevCode(name)
			if err != nil {
				return nil, err
			}
			button, err := parseButton(buttonName)
			if err != nil {
				return nil, err
			}
			mapping.EvdevMap[code] = button
		}
	}

	if f.AxisThreshold != 0 {
		if f.AxisThreshold < 0 {
			return nil, fmt.Errorf("axis_threshold must be positive, got %d", f.AxisThreshold)
		}
		mapping.AxisThreshold = f.AxisThreshold
	}

	return mapping, nil
}

func parseButton(name string) (constants.VirtualButton, error) {
	button, ok := constants.ParseVirtualButton(name)
	if !ok {
		return constants.VirtualButtonUnassigned, fmt.Errorf("unknown virtual button %q", name)
	}
	return button, nil
}

// parseEvdevCode accepts either a numeric code ("103") or a name ("KEY_UP").
func parseEvdevCode(name string) (evdev.EvCode, error) {
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("invalid evdev code %d", n)
		}
		return evdev.EvCode(n), nil
	}
	if code, ok := evdev.KEYFromString[strings.ToUpper(name)]; ok {
		return code, nil
	}
	return 0, fmt.Errorf("unknown evdev key %q", name)
}
