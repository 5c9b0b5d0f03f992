package menu_test

import (
	"fmt"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/menu"
)

// Example drives a menu for a few frames the way a game loop would.
func Example() {
	measure := menu.MeasureFunc(func(text string) (float64, float64) {
		return float64(len(text)) * 12, 24
	})

	opts := menu.DefaultOptions("Paused")
	opts.OnCancelled = func(device menu.Device) {
		fmt.Println("cancelled via", device)
	}

	m := menu.New(opts, measure,
		menu.NewEntry("Resume", func(device menu.Device) { fmt.Println("resume via", device) }),
		menu.NewEntry("Quit", func(device menu.Device) { fmt.Println("quit via", device) }),
	)

	viewport := menu.Size{Width: 800, Height: 600}

	m.Update(menu.FrameInput{
		Gamepad:          []menu.GamepadPress{{Player: 1, Button: constants.VirtualButtonDown}},
		GamepadConnected: true,
		Viewport:         viewport,
		Active:           true,
	})
	m.Update(menu.FrameInput{
		Keys:     []constants.VirtualButton{constants.VirtualButtonA},
		Viewport: viewport,
		Active:   true,
	})
	m.Update(menu.FrameInput{
		Taps:     []menu.Tap{{Position: menu.Point{X: 20, Y: 310}}},
		Viewport: viewport,
		Active:   true,
	})
	m.Update(menu.FrameInput{
		Keys:     []constants.VirtualButton{constants.VirtualButtonB},
		Viewport: viewport,
	})

	for _, e := range m.Frame().Entries {
		fmt.Printf("%s at (%.0f, %.0f)\n", e.Text, e.Position.X, e.Position.Y)
	}

	// Output:
	// quit via keyboard
	// resume via touch
	// cancelled via keyboard
	// Resume at (364, 300)
	// Quit at (376, 374)
}
