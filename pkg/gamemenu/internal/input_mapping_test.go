package internal

import (
	"testing"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"
)

func TestLoadInputMappingFromBytes(t *testing.T) {
	data := []byte(`
axis_threshold = 20000

[keyboard]
W = "up"
S = "down"
Return = "a"

[controller]
dpup = "Up"
a = "A"

[evdev]
103 = "up"
KEY_ESC = "b"
`)

	mapping, err := LoadInputMappingFromBytes(data)
	if err != nil {
		t.Fatalf("LoadInputMappingFromBytes() error = %v", err)
	}

	if got := mapping.KeyboardMap[sdl.K_w]; got != constants.VirtualButtonUp {
		t.Errorf("keyboard W = %v, want Up", got.GetName())
	}
	if _, ok := mapping.KeyboardMap[sdl.K_UP]; ok {
		t.Error("keyboard table should replace the defaults")
	}
	if got := mapping.ControllerButtonMap[sdl.CONTROLLER_BUTTON_A]; got != constants.VirtualButtonA {
		t.Errorf("controller a = %v, want A", got.GetName())
	}
	if got := mapping.EvdevMap[evdev.KEY_UP]; got != constants.VirtualButtonUp {
		t.Errorf("evdev 103 = %v, want Up", got.GetName())
	}
	if got := mapping.EvdevMap[evdev.KEY_ESC]; got != constants.VirtualButtonB {
		t.Errorf("evdev KEY_ESC = %v, want B", got.GetName())
	}
	if mapping.AxisThreshold != 20000 {
		t.Errorf("AxisThreshold = %d, want 20000", mapping.AxisThreshold)
	}
}

func TestLoadInputMappingKeepsDefaultsForMissingTables(t *testing.T) {
	mapping, err := LoadInputMappingFromBytes([]byte(`[keyboard]
Q = "b"
`))
	if err != nil {
		t.Fatalf("LoadInputMappingFromBytes() error = %v", err)
	}
	if len(mapping.ControllerButtonMap) != len(DefaultInputMapping().ControllerButtonMap) {
		t.Error("controller defaults were not kept")
	}
	if mapping.AxisThreshold != constants.DefaultAxisThreshold {
		t.Errorf("AxisThreshold = %d, want default", mapping.AxisThreshold)
	}
}

func TestLoadInputMappingErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "[keyboard]\nNotAKey = \"up\"\n"},
		{"unknown controller button", "[controller]\nbogus = \"up\"\n"},
		{"unknown virtual button", "[keyboard]\nW = \"jump\"\n"},
		{"unknown evdev name", "[evdev]\nKEY_NOPE = \"up\"\n"},
		{"negative threshold", "axis_threshold = -5\n"},
		{"malformed toml", "[keyboard\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadInputMappingFromBytes([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestResolveInputMappingFallsBackToDefault(t *testing.T) {
	t.Setenv(constants.MappingPathEnvVar, "")

	mapping := ResolveInputMapping("/nonexistent/mapping.toml", nil)
	if mapping.KeyboardMap[sdl.K_UP] != constants.VirtualButtonUp {
		t.Error("expected default mapping after load failure")
	}

	inline := &MappingFile{Keyboard: map[string]string{"K": "up"}}
	mapping = ResolveInputMapping("", inline)
	if mapping.KeyboardMap[sdl.K_k] != constants.VirtualButtonUp {
		t.Error("expected inline mapping to be used")
	}
}
