package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects SDL window flags.
type WindowOptions struct {
	Borderless bool
	Resizable  bool
	Fullscreen bool
	Hidden     bool
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32
	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return flags
}

// Window wraps the SDL window and renderer. The renderer uses a fixed
// logical size, which is the viewport menus are laid out in.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	logicalW, logicalH int32
	focused            bool
	hasVSync           bool
	lastPresentTime    uint64
}

func initWindow(title string, width, height int32, winOpts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			logging.GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = 1024, 768
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, 1024)
		height = envDimension(constants.WindowHeightEnvVar, 768)
	}

	logging.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		sdlWindow.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	if err := renderer.SetLogicalSize(width, height); err != nil {
		logging.GetInternalLogger().Warn("Failed to set logical size", "error", err)
	}
	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		logging.GetInternalLogger().Warn("Failed to enable blending", "error", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		logicalW: width,
		logicalH: height,
		focused:  true,
		hasVSync: vsync,
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		logging.GetInternalLogger().Warn("Invalid window dimension; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (window *Window) closeWindow() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// Viewport returns the logical width and height menus are laid out in.
func (window *Window) Viewport() (float64, float64) {
	return float64(window.logicalW), float64(window.logicalH)
}

// Focused reports whether the window had input focus at the last poll.
func (window *Window) Focused() bool {
	return window.focused
}

func (window *Window) setFocused(focused bool) {
	window.focused = focused
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
