package gamemenu

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/menu"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/screens"
	"github.com/BurntSushi/toml"
)

// Duration is a time.Duration that decodes from strings such as "350ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the TOML configuration file.
type Config struct {
	Window     WindowConfig     `toml:"window"`
	Layout     LayoutConfig     `toml:"layout"`
	Transition TransitionConfig `toml:"transition"`
	Input      InputConfig      `toml:"input"`
	Log        LogConfig        `toml:"log"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`  // Zero uses the display mode
	Height     int32  `toml:"height"` // Zero uses the display mode
	Borderless bool   `toml:"borderless"`
	Resizable  bool   `toml:"resizable"`
	Fullscreen bool   `toml:"fullscreen"`
	FontPath   string `toml:"font_path"`
	FontSize   int    `toml:"font_size"`
}

type LayoutConfig struct {
	Padding    float64 `toml:"padding"`
	EnterShift float64 `toml:"enter_shift"`
	ExitShift  float64 `toml:"exit_shift"`
	TitleTop   float64 `toml:"title_top"`
	TitleShift float64 `toml:"title_shift"`
	FadeRate   float64 `toml:"fade_rate"`
}

type TransitionConfig struct {
	OnTime  Duration `toml:"on_time"`
	OffTime Duration `toml:"off_time"`
}

type InputConfig struct {
	Precedence    []string          `toml:"precedence"`
	EvdevDevice   string            `toml:"evdev_device"` // Empty disables the evdev source
	MappingPath   string            `toml:"mapping_path"` // Separate mapping file, overrides the tables below
	AxisThreshold int16             `toml:"axis_threshold"`
	Keyboard      map[string]string `toml:"keyboard"`
	Controller    map[string]string `toml:"controller"`
	Evdev         map[string]string `toml:"evdev"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:    "gamemenu",
			FontSize: 32,
		},
		Layout: LayoutConfig{
			Padding:    constants.DefaultEntryPadding,
			EnterShift: constants.DefaultEnterShift,
			ExitShift:  constants.DefaultExitShift,
			TitleTop:   constants.DefaultTitleTop,
			TitleShift: constants.DefaultTitleShift,
			FadeRate:   constants.DefaultFadeRate,
		},
		Transition: TransitionConfig{
			OnTime:  Duration{constants.DefaultTransitionOnTime},
			OffTime: Duration{constants.DefaultTransitionOffTime},
		},
		Input: InputConfig{
			Precedence: []string{"gamepad", "keyboard", "mouse", "touch"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	warnUndecoded(md)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig is LoadConfig for in-memory TOML.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	warnUndecoded(md)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func warnUndecoded(md toml.MetaData) {
	for _, key := range md.Undecoded() {
		logging.GetInternalLogger().Warn("Unknown config key ignored", "key", key.String())
	}
}

func (c Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative")
	}
	if c.Window.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %d", c.Window.FontSize)
	}
	if c.Layout.Padding < 0 {
		return fmt.Errorf("layout padding must not be negative")
	}
	if c.Layout.FadeRate <= 0 {
		return fmt.Errorf("fade_rate must be positive")
	}
	if c.Transition.OnTime.Duration < 0 || c.Transition.OffTime.Duration < 0 {
		return fmt.Errorf("transition times must not be negative")
	}
	if c.Input.AxisThreshold < 0 {
		return fmt.Errorf("axis_threshold must not be negative")
	}
	if _, err := c.Precedence(); err != nil {
		return err
	}
	return nil
}

// Precedence resolves the configured device order.
func (c Config) Precedence() ([]menu.DeviceKind, error) {
	kinds := make([]menu.DeviceKind, 0, len(c.Input.Precedence))
	for _, name := range c.Input.Precedence {
		kind, ok := menu.ParseDeviceKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown device %q in input precedence", name)
		}
		kinds = append(kinds, kind)
	}
	if err := menu.ValidatePrecedence(kinds); err != nil {
		return nil, fmt.Errorf("input precedence: %w", err)
	}
	return kinds, nil
}

// MenuOptions returns menu options for a menu titled title.
func (c Config) MenuOptions(title string) menu.Options {
	opts := menu.DefaultOptions(title)
	opts.Layout = menu.LayoutConfig{
		Padding:    c.Layout.Padding,
		EnterShift: c.Layout.EnterShift,
		ExitShift:  c.Layout.ExitShift,
		TitleTop:   c.Layout.TitleTop,
		TitleShift: c.Layout.TitleShift,
	}
	opts.FadeRate = c.Layout.FadeRate
	if p, err := c.Precedence(); err == nil {
		opts.Precedence = p
	}
	return opts
}

func (c Config) ScreenOptions() screens.Options {
	return screens.Options{
		OnTime:  c.Transition.OnTime.Duration,
		OffTime: c.Transition.OffTime.Duration,
	}
}

func (c Config) windowOptions() internal.WindowOptions {
	return internal.WindowOptions{
		Borderless: c.Window.Borderless,
		Resizable:  c.Window.Resizable,
		Fullscreen: c.Window.Fullscreen,
	}
}

// inlineMapping returns the mapping tables from the config, or nil when
// none are set.
func (c Config) inlineMapping() *internal.MappingFile {
	in := c.Input
	if len(in.Keyboard) == 0 && len(in.Controller) == 0 && len(in.Evdev) == 0 && in.AxisThreshold == 0 {
		return nil
	}
	return &internal.MappingFile{
		Keyboard:      in.Keyboard,
		Controller:    in.Controller,
		Evdev:         in.Evdev,
		AxisThreshold: in.AxisThreshold,
	}
}
