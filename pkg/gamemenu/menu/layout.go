package menu

import "github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"

// TransitionDirection tells the layout which way entries are animating.
type TransitionDirection int

const (
	Entering TransitionDirection = iota
	Exiting
)

func (d TransitionDirection) String() string {
	if d == Exiting {
		return "exiting"
	}
	return "entering"
}

// Transition is the animation state supplied by the screen host.
// Progress 0 means fully at rest on screen, 1 means fully off screen.
type Transition struct {
	Progress  float64
	Direction TransitionDirection
}

// Eased applies quadratic easing to the progress, so motion slows as the
// menu settles into place.
func (t Transition) Eased() float64 {
	p := clamp01(t.Progress)
	return p * p
}

// Alpha is the title opacity: fully opaque at rest, fading out with progress.
func (t Transition) Alpha() float64 {
	return 1 - clamp01(t.Progress)
}

// LayoutConfig holds the constants of the layout algorithm.
type LayoutConfig struct {
	Padding    float64 // Space above and below each entry
	EnterShift float64 // Leftward shift at full progress while entering
	ExitShift  float64 // Rightward shift at full progress while exiting
	TitleTop   float64 // Vertical centre of the title at rest
	TitleShift float64 // Upward title shift at full progress
}

func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Padding:    constants.DefaultEntryPadding,
		EnterShift: constants.DefaultEnterShift,
		ExitShift:  constants.DefaultExitShift,
		TitleTop:   constants.DefaultTitleTop,
		TitleShift: constants.DefaultTitleShift,
	}
}

// HorizontalOffset is the signed x displacement applied to every entry:
// negative (leftward) while entering, positive (rightward) while exiting.
func (c LayoutConfig) HorizontalOffset(t Transition) float64 {
	eased := t.Eased()
	if eased == 0 {
		return 0
	}
	if t.Direction == Exiting {
		return eased * c.ExitShift
	}
	return -eased * c.EnterShift
}

// ComputeLayout stacks entries of the given sizes downward from the vertical
// centre of the viewport, each horizontally centred and then shifted by the
// transition offset. It is a pure function of its arguments.
func ComputeLayout(sizes []Size, viewport Size, t Transition, cfg LayoutConfig) []Point {
	positions := make([]Point, len(sizes))
	offset := cfg.HorizontalOffset(t)

	y := viewport.Height / 2
	for i, s := range sizes {
		positions[i] = Point{
			X: viewport.Width/2 - s.Width/2 + offset,
			Y: y,
		}
		y += s.Height + 2*cfg.Padding
	}
	return positions
}

// TitleLayout is the computed placement of the menu title.
type TitleLayout struct {
	Position Point
	Alpha    float64
}

// ComputeTitle centres the title horizontally around TitleTop and slides it
// upward while transitioning.
func ComputeTitle(size Size, viewport Size, t Transition, cfg LayoutConfig) TitleLayout {
	return TitleLayout{
		Position: Point{
			X: viewport.Width/2 - size.Width/2,
			Y: cfg.TitleTop - size.Height/2 - t.Eased()*cfg.TitleShift,
		},
		Alpha: t.Alpha(),
	}
}
