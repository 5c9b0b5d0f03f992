package gamemenu

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/menu"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/screens"
	"github.com/google/go-cmp/cmp"
)

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig(`
[window]
title = "Arcade"
width = 640
height = 480

[layout]
padding = 10

[transition]
on_time = "250ms"
off_time = "0s"

[input]
precedence = ["touch", "mouse", "keyboard", "gamepad"]
evdev_device = "/dev/input/event3"

[input.keyboard]
W = "up"

[log]
level = "debug"
`)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.Window.Title != "Arcade" || cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.FontSize != DefaultConfig().Window.FontSize {
		t.Errorf("FontSize = %d, want default", cfg.Window.FontSize)
	}

	wantScreen := screens.Options{OnTime: 250 * time.Millisecond, OffTime: 0}
	if diff := cmp.Diff(wantScreen, cfg.ScreenOptions()); diff != "" {
		t.Errorf("ScreenOptions() mismatch (-want +got):\n%s", diff)
	}

	opts := cfg.MenuOptions("Main")
	wantPrecedence := []menu.DeviceKind{menu.DeviceTouch, menu.DeviceMouse, menu.DeviceKeyboard, menu.DeviceGamepad}
	if diff := cmp.Diff(wantPrecedence, opts.Precedence); diff != "" {
		t.Errorf("Precedence mismatch (-want +got):\n%s", diff)
	}
	if opts.Layout.Padding != 10 {
		t.Errorf("Padding = %v, want 10", opts.Layout.Padding)
	}
	if opts.Layout.ExitShift != 512 {
		t.Errorf("ExitShift = %v, want default 512", opts.Layout.ExitShift)
	}
	if opts.Title != "Main" {
		t.Errorf("Title = %q", opts.Title)
	}

	mapping := cfg.inlineMapping()
	if mapping == nil || mapping.Keyboard["W"] != "up" {
		t.Errorf("inlineMapping() = %+v", mapping)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.inlineMapping() != nil {
		t.Error("default config should carry no inline mapping")
	}
	if diff := cmp.Diff(menu.DefaultPrecedence(), cfg.MenuOptions("x").Precedence); diff != "" {
		t.Errorf("default precedence mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"duplicate device", "[input]\nprecedence = [\"gamepad\", \"gamepad\", \"mouse\", \"touch\"]\n"},
		{"missing device", "[input]\nprecedence = [\"gamepad\", \"keyboard\", \"mouse\"]\n"},
		{"unknown device", "[input]\nprecedence = [\"gamepad\", \"keyboard\", \"mouse\", \"wiimote\"]\n"},
		{"bad duration", "[transition]\non_time = \"soon\"\n"},
		{"negative duration", "[transition]\noff_time = \"-1s\"\n"},
		{"zero font size", "[window]\nfont_size = 0\n"},
		{"negative padding", "[layout]\npadding = -1.0\n"},
		{"zero fade rate", "[layout]\nfade_rate = 0.0\n"},
		{"malformed", "[window\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig(tt.data); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if d.Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 1m30s", d.Duration)
	}
	text, err := d.MarshalText()
	if err != nil || string(text) != "1m30s" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
}
