// Package screens is the screen-transition host for menus and other
// full-screen layers.
//
// A Manager keeps a stack of screens. Every frame it advances each screen's
// transition, works out which screen holds input focus, and hands every
// screen a Status describing where it is in its animation.
//
// # Basic Usage
//
//	m := screens.NewManager()
//	m.Push(mainMenu, screens.Options{OnTime: 500 * time.Millisecond, OffTime: 500 * time.Millisecond})
//
//	for !m.IsEmpty() {
//	    m.Update(elapsed, windowFocused) // calls mainMenu.Frame(status)
//	    m.Each(func(s screens.Screen, st screens.Status) {
//	        // draw bottom-most first
//	    })
//	}
//
// # Transitions
//
// Transition progress runs from 1 (fully off screen) to 0 (fully on
// screen). A pushed screen starts at 1 and moves toward 0 over OnTime. A
// screen that is covered by a newer non-popup screen moves back toward 1
// over OffTime and becomes Hidden. Exit moves a screen toward 1 and removes
// it from the stack once it gets there.
//
// # Focus
//
// The top-most screen that is transitioning on or active receives focus,
// provided the window itself is focused. Only that screen reports Active.
// Popups take focus but leave the screens below them visible.
package screens
