package menu

import "math"

// Entry is one selectable row of a Menu.
//
// Specialized entries embed *MenuEntry and override whichever capability
// they need: the display text, how the entry is measured, its hit
// rectangle, or what happens when it is confirmed.
type Entry interface {
	Base() *MenuEntry
	Text() string
	Measure(m Measurer) Size
	HitBounds(viewport Size, padding float64) Rect
	Select(device Device)
}

// MenuEntry is a plain text entry. Its position is rewritten on every
// layout pass and is only meaningful for the frame that computed it.
type MenuEntry struct {
	label      string
	OnSelected func(device Device)

	position Point
	size     Size
	fade     float64
}

// NewEntry creates a text entry that calls onSelected when confirmed.
func NewEntry(label string, onSelected func(device Device)) *MenuEntry {
	return &MenuEntry{label: label, OnSelected: onSelected}
}

func (e *MenuEntry) Base() *MenuEntry { return e }

// Label returns the immutable label the entry was created with.
func (e *MenuEntry) Label() string { return e.label }

func (e *MenuEntry) Text() string { return e.label }

func (e *MenuEntry) Measure(m Measurer) Size {
	return measureText(m, e.label)
}

// HitBounds spans the full viewport width so any tap in the entry's row hits it.
func (e *MenuEntry) HitBounds(viewport Size, padding float64) Rect {
	return Rect{
		X:      0,
		Y:      e.position.Y - padding,
		Width:  viewport.Width,
		Height: e.size.Height + 2*padding,
	}
}

func (e *MenuEntry) Select(device Device) {
	if e.OnSelected != nil {
		e.OnSelected(device)
	}
}

// Position returns the top-left corner computed by the last layout pass.
func (e *MenuEntry) Position() Point { return e.position }

// Size returns the measured size of the entry's text.
func (e *MenuEntry) Size() Size { return e.size }

// Fade returns the selection highlight level in [0,1].
func (e *MenuEntry) Fade() float64 { return e.fade }

func (e *MenuEntry) updateFade(selected bool, step float64) {
	if selected {
		e.fade = math.Min(e.fade+step, 1)
	} else {
		e.fade = math.Max(e.fade-step, 0)
	}
}

// OptionEntry cycles through Values each time it is confirmed and renders
// as "label: value".
type OptionEntry struct {
	*MenuEntry
	Values    []string
	OnChanged func(value string, device Device)

	index int
}

// NewOptionEntry creates an option entry showing values[initial].
// An out-of-range initial index starts at the first value.
func NewOptionEntry(label string, values []string, initial int) *OptionEntry {
	if initial < 0 || initial >= len(values) {
		initial = 0
	}
	return &OptionEntry{
		MenuEntry: NewEntry(label, nil),
		Values:    values,
		index:     initial,
	}
}

// Value returns the current value, or "" when there are no values.
func (o *OptionEntry) Value() string {
	if len(o.Values) == 0 {
		return ""
	}
	return o.Values[o.index]
}

// ValueIndex returns the index of the current value.
func (o *OptionEntry) ValueIndex() int { return o.index }

func (o *OptionEntry) Text() string {
	if len(o.Values) == 0 {
		return o.label
	}
	return o.label + ": " + o.Value()
}

func (o *OptionEntry) Measure(m Measurer) Size {
	return measureText(m, o.Text())
}

func (o *OptionEntry) Select(device Device) {
	if len(o.Values) > 0 {
		o.index = (o.index + 1) % len(o.Values)
		if o.OnChanged != nil {
			o.OnChanged(o.Value(), device)
		}
	}
	o.MenuEntry.Select(device)
}
