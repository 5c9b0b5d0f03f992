package gamemenu

import "github.com/BrandonKowalski/gamemenu/pkg/gamemenu/menu"

// MenuAction is what ended a Show call successfully.
type MenuAction int

const (
	MenuActionSelected MenuAction = iota // An entry was confirmed
	MenuActionClosed                     // The menu closed itself through Close
)

// MenuResult is returned by Show when the menu ends without being cancelled.
type MenuResult struct {
	Action MenuAction
	Index  int         // Confirmed entry, -1 for MenuActionClosed
	Label  string      // Label of the confirmed entry
	Device menu.Device // Device that confirmed
}
