// Package gamemenu hosts game menus in an SDL window. It brings up SDL,
// reads keyboards, controllers, mice, touch screens and raw evdev devices,
// stacks menu screens with their transitions and draws the frames computed
// by the menu package.
//
// A typical program calls Init, builds menus with NewMenu and hands them to
// Show, then calls Close before exiting.
package gamemenu

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/menu"
)

// Options configures framework initialization.
type Options struct {
	WindowTitle   string                 // Overrides the config window title when set
	WindowOptions internal.WindowOptions // Merged with the config window flags
	ConfigPath    string                 // TOML config file; empty uses Config or the defaults
	Config        *Config                // Used when ConfigPath is empty
	LogPath       string                 // Full path for log file including filename
}

var activeConfig = DefaultConfig()

// Init initializes SDL, fonts and input handling.
// Must be called before any other gamemenu functions.
func Init(options Options) error {
	if options.LogPath != "" {
		logging.SetLogPath(options.LogPath)
	}

	cfg := DefaultConfig()
	switch {
	case options.ConfigPath != "":
		loaded, err := LoadConfig(options.ConfigPath)
		if err != nil {
			return NewInfrastructureError("load_config", err)
		}
		cfg = loaded
	case options.Config != nil:
		if err := options.Config.Validate(); err != nil {
			return NewInfrastructureError("load_config", err)
		}
		cfg = *options.Config
	}

	if options.LogPath == "" && cfg.Log.Path != "" {
		logging.SetLogPath(cfg.Log.Path)
	}
	logging.SetRawLogLevel(cfg.Log.Level)

	if os.Getenv(constants.DebugEnvVar) != "" {
		logging.SetInternalLogLevel(slog.LevelDebug)
	} else {
		logging.SetInternalLogLevel(slog.LevelError)
	}

	title := cfg.Window.Title
	if options.WindowTitle != "" {
		title = options.WindowTitle
	}
	winOpts := cfg.windowOptions()
	winOpts.Borderless = winOpts.Borderless || options.WindowOptions.Borderless
	winOpts.Resizable = winOpts.Resizable || options.WindowOptions.Resizable
	winOpts.Fullscreen = winOpts.Fullscreen || options.WindowOptions.Fullscreen
	winOpts.Hidden = options.WindowOptions.Hidden

	mapping := internal.ResolveInputMapping(cfg.Input.MappingPath, cfg.inlineMapping())

	err := internal.Init(internal.InitOptions{
		Title:    title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Window:   winOpts,
		FontPath: cfg.Window.FontPath,
		FontSize: cfg.Window.FontSize,
		Mapping:  mapping,
	})
	if err != nil {
		return NewInfrastructureError("init", err)
	}

	if cfg.Input.EvdevDevice != "" {
		src, err := internal.OpenEvdevSource(cfg.Input.EvdevDevice, mapping.EvdevMap)
		if err != nil {
			// Built-in controls are optional; SDL devices still work.
			logging.GetInternalLogger().Warn("Evdev source unavailable", "device", cfg.Input.EvdevDevice, "error", err)
		} else {
			internal.GetInputProcessor().AttachEvdev(src)
		}
	}

	activeConfig = cfg
	return nil
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	destroyRenderer()
	internal.SDLCleanup()
}

// ActiveConfig returns the configuration Init was called with.
func ActiveConfig() Config {
	return activeConfig
}

// NewMenu creates a menu measured with the entry font and configured from
// the active config. Call after Init.
func NewMenu(title string, entries ...menu.Entry) *menu.Menu {
	return menu.New(activeConfig.MenuOptions(title), EntryMeasurer(), entries...)
}

// NewMenuWithOptions is NewMenu with caller-supplied options.
func NewMenuWithOptions(options menu.Options, entries ...menu.Entry) *menu.Menu {
	return menu.New(options, EntryMeasurer(), entries...)
}

// EntryMeasurer measures text with the font entries are drawn in.
func EntryMeasurer() menu.Measurer {
	return internal.FontMeasurer{Font: internal.Fonts.EntryFont}
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	logging.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
