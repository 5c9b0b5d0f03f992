package menu

// selection is the single-cursor state machine. index is -1 while the menu
// has no entries and is otherwise always a valid entry index.
type selection struct {
	index int
}

func (s *selection) valid() bool { return s.index >= 0 }

func (s *selection) moveUp() {
	if !s.valid() {
		return
	}
	s.index = max(0, s.index-1)
}

func (s *selection) moveDown(count int) {
	if !s.valid() {
		return
	}
	s.index = min(count-1, s.index+1)
}

// resize keeps the index valid after the entry list changed length.
// seed is used when the list goes from empty to non-empty.
func (s *selection) resize(count, seed int) {
	switch {
	case count == 0:
		s.index = -1
	case !s.valid():
		s.index = min(max(seed, 0), count-1)
	case s.index >= count:
		s.index = count - 1
	}
}

// removed updates the index after the entry at removed was deleted, leaving
// count entries. Removing an entry above the cursor keeps it on the same entry.
func (s *selection) removed(removed, count int) {
	if s.valid() && removed < s.index {
		s.index--
	}
	s.resize(count, 0)
}
