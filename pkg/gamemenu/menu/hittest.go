package menu

// HitBounds collects the hit rectangle of every entry, in display order,
// using each entry's most recently computed position.
func HitBounds(entries []Entry, viewport Size, padding float64) []Rect {
	bounds := make([]Rect, len(entries))
	for i, e := range entries {
		bounds[i] = e.HitBounds(viewport, padding)
	}
	return bounds
}

// LocateEntryAt returns the index of the first rectangle containing p.
// Overlapping rectangles resolve to the earliest one, so a point on the
// shared edge of two stacked entries belongs to the upper entry.
func LocateEntryAt(bounds []Rect, p Point) (int, bool) {
	for i, r := range bounds {
		if r.Contains(p) {
			return i, true
		}
	}
	return -1, false
}
