package gamemenu

import (
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/menu"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/screens"
)

// ShowOptions configures a single Show call.
type ShowOptions struct {
	Screen screens.Options
}

// DefaultShowOptions uses the transition times of the active config.
func DefaultShowOptions() ShowOptions {
	return ShowOptions{Screen: activeConfig.ScreenOptions()}
}

// Show displays m until an entry is confirmed, the menu is cancelled or the
// window is closed. Confirming an OptionEntry cycles its value in place and
// keeps the menu open. The result is returned once the exit transition has
// finished. Cancel and window close return ErrCancelled.
func Show(m *menu.Menu, opts ShowOptions) (*MenuResult, error) {
	host := NewHost()
	screen, err := host.PushMenu(m, opts.Screen)
	if err != nil {
		return nil, NewInfrastructureError("show", err)
	}

	var result *MenuResult
	err = host.Run(func() bool {
		if result == nil {
			result = confirmedResult(m, screen.LastIntent())
			if result != nil {
				screen.Exit()
			}
		}
		return !host.Manager.Contains(screen)
	})
	if err != nil {
		return nil, err
	}

	switch {
	case result != nil:
		logging.GetLogger().Debug("Menu confirmed", "menu", m.Title(), "index", result.Index, "device", result.Device.String())
		return result, nil
	case screen.closed:
		return &MenuResult{Action: MenuActionClosed, Index: -1}, nil
	default:
		return nil, ErrCancelled
	}
}

func confirmedResult(m *menu.Menu, intent menu.Intent) *MenuResult {
	if intent.Kind != menu.IntentConfirm {
		return nil
	}
	entries := m.Entries()
	if intent.Index < 0 || intent.Index >= len(entries) {
		return nil
	}
	entry := entries[intent.Index]
	if _, isOption := entry.(*menu.OptionEntry); isOption {
		return nil
	}
	return &MenuResult{
		Action: MenuActionSelected,
		Index:  intent.Index,
		Label:  entry.Base().Label(),
		Device: intent.Device,
	}
}
