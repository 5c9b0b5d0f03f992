package menu

// Point is a position in menu screen-space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in menu screen-space.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. All four edges are inclusive.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside or on the edge of r.
// NaN coordinates never match.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Measurer is the font-measurement service: it reports the rendered size of a string.
type Measurer interface {
	Measure(text string) (width, height float64)
}

// MeasureFunc adapts a plain function to the Measurer interface.
type MeasureFunc func(text string) (width, height float64)

func (f MeasureFunc) Measure(text string) (float64, float64) {
	return f(text)
}

func measureText(m Measurer, text string) Size {
	if m == nil {
		return Size{}
	}
	w, h := m.Measure(text)
	return Size{Width: w, Height: h}
}

// ScaleToViewport maps a normalized [0,1] device coordinate, as reported by
// touch screens, into menu screen-space for the given viewport.
func ScaleToViewport(normalized Point, viewport Size) Point {
	return Point{
		X: normalized.X * viewport.Width,
		Y: normalized.Y * viewport.Height,
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
