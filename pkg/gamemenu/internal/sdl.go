// Package internal contains the SDL infrastructure behind gamemenu: window
// and renderer setup, fonts, textures, input mapping and polling.
// Types and functions in this package are not part of the public API.
package internal

import (
	"fmt"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// InitOptions carries everything Init needs to bring SDL up.
type InitOptions struct {
	Title         string
	Width, Height int32 // Zero uses the current display mode
	Window        WindowOptions
	FontPath      string
	FontSize      int
	Mapping       *InputMapping
}

// Init brings up SDL, the window and fonts. On failure everything already
// started is shut down again.
func Init(opts InitOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	InitInputProcessor(opts.Mapping)

	w, err := initWindow(opts.Title, opts.Width, opts.Height, opts.Window)
	if err != nil {
		teardown()
		return err
	}
	window = w

	viewportW, _ := w.Viewport()
	if err := initFonts(opts.FontPath, opts.FontSize, viewportW); err != nil {
		teardown()
		return err
	}

	logging.GetInternalLogger().Debug("SDL initialized", "title", opts.Title)
	return nil
}

// SDLCleanup releases everything Init created and closes the log file.
func SDLCleanup() {
	teardown()
	logging.CloseLogger()
}

// teardown releases SDL state in reverse order of Init. It is safe to call
// after a partial Init and more than once.
func teardown() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	globalInputProcessor = nil
	closeFonts()
	ttf.Quit()
	sdl.Quit()
}
