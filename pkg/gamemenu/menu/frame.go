package menu

// EntryFrame is the per-frame render state of one entry.
type EntryFrame struct {
	Index     int
	Text      string
	Position  Point
	Size      Size
	Selected  bool
	Highlight float64 // Selection fade in [0,1]
	Scale     float64 // Pulsating draw scale, 1 when not highlighted
}

// TitleFrame is the per-frame render state of the title.
type TitleFrame struct {
	Text     string
	Position Point
	Size     Size
	Alpha    float64
}

// Frame is what a renderer needs to draw the menu for one frame.
// It is rebuilt on every update and must not be reused across frames.
type Frame struct {
	Title      TitleFrame
	Entries    []EntryFrame
	Viewport   Size
	Transition Transition
	Active     bool
}
