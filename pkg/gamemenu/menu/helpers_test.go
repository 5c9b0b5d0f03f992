package menu

// charMeasurer sizes text at 10 units per byte and a fixed 20 unit line height.
var charMeasurer = MeasureFunc(func(text string) (float64, float64) {
	return float64(len(text)) * 10, 20
})

func newTestMenu(labels ...string) *Menu {
	entries := make([]Entry, len(labels))
	for i, l := range labels {
		entries[i] = NewEntry(l, nil)
	}
	return New(DefaultOptions("Test"), charMeasurer, entries...)
}

var viewport800x600 = Size{Width: 800, Height: 600}
