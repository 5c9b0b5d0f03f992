// Package menu implements the device-independent core of a game menu: a
// vertically stacked list of entries with a single clamping selection
// cursor, transition-aware layout, row hit-testing and the per-frame
// reconciliation of keyboard, gamepad, mouse and touch input.
//
// The package performs no rendering and reads no devices. A host feeds one
// FrameInput per frame to Update and draws the returned Frame.
package menu

import (
	"log/slog"
	"math"
	"slices"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
)

// Options configures a Menu.
type Options struct {
	Title         string
	SelectedIndex int // Initial selection, clamped once entries exist
	Layout        LayoutConfig
	Precedence    []DeviceKind // Device order for simultaneous input, must name every kind once
	Bindings      Bindings
	FadeRate      float64 // Selection highlight change per second

	// OnEntrySelected runs after the confirmed entry's own callback.
	OnEntrySelected func(index int, device Device)
	// OnCancelled replaces the default cancel behaviour, which requests
	// that the host close the menu.
	OnCancelled func(device Device)
}

func DefaultOptions(title string) Options {
	return Options{
		Title:      title,
		Layout:     DefaultLayoutConfig(),
		Precedence: DefaultPrecedence(),
		Bindings:   DefaultBindings(),
		FadeRate:   constants.DefaultFadeRate,
	}
}

// Menu owns its entries and the selection state. It is not safe for
// concurrent use; the host drives it from a single frame loop.
type Menu struct {
	options    Options
	entries    []Entry
	sel        selection
	reconciler Reconciler
	measurer   Measurer
	titleSize  Size

	clock         float64
	frame         Frame
	exitRequested bool

	logger *slog.Logger
}

// New creates a menu. measurer sizes the title and entry text; a nil
// measurer gives every entry a zero size.
func New(options Options, measurer Measurer, entries ...Entry) *Menu {
	logger := logging.GetInternalLogger()

	if options.Precedence == nil {
		options.Precedence = DefaultPrecedence()
	} else if err := ValidatePrecedence(options.Precedence); err != nil {
		logger.Warn("Invalid input precedence; using default", "error", err)
		options.Precedence = DefaultPrecedence()
	}
	if options.Bindings == nil {
		options.Bindings = DefaultBindings()
	}
	if options.FadeRate <= 0 {
		options.FadeRate = constants.DefaultFadeRate
	}

	m := &Menu{
		options: options,
		sel:     selection{index: -1},
		reconciler: Reconciler{
			Precedence: options.Precedence,
			Bindings:   options.Bindings,
		},
		measurer:  measurer,
		titleSize: measureText(measurer, options.Title),
		logger:    logger,
	}

	for _, e := range entries {
		m.AddEntry(e)
	}

	return m
}

func (m *Menu) Title() string { return m.options.Title }

// AddEntry appends an entry at the bottom of the menu.
func (m *Menu) AddEntry(e Entry) {
	e.Base().size = e.Measure(m.measurer)
	m.entries = append(m.entries, e)
	m.sel.resize(len(m.entries), m.options.SelectedIndex)
	m.logger.Debug("Menu entry added", "menu", m.options.Title, "entry", e.Text(), "count", len(m.entries))
}

// RemoveEntry deletes the entry at index. The cursor stays on the entry it
// was on; when that entry is the one removed it moves to the next entry,
// or the previous one at the end of the list.
// It reports false when index is out of range.
func (m *Menu) RemoveEntry(index int) bool {
	if index < 0 || index >= len(m.entries) {
		return false
	}
	m.entries = slices.Delete(m.entries, index, index+1)
	m.sel.removed(index, len(m.entries))
	m.logger.Debug("Menu entry removed", "menu", m.options.Title, "index", index, "count", len(m.entries))
	return true
}

// Entries returns the entries in display order.
func (m *Menu) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// SelectedIndex returns the current selection, or false when the menu is empty.
func (m *Menu) SelectedIndex() (int, bool) {
	return m.sel.index, m.sel.valid()
}

// SetSelectedIndex moves the cursor directly, for restoring a previous position.
func (m *Menu) SetSelectedIndex(index int) bool {
	if index < 0 || index >= len(m.entries) {
		return false
	}
	m.sel.index = index
	return true
}

// ExitRequested reports whether a cancel asked the host to close the menu.
func (m *Menu) ExitRequested() bool { return m.exitRequested }

func (m *Menu) ResetExit() { m.exitRequested = false }

// Update runs one frame: it reconciles the frame's device input into at
// most one intent, applies it, advances selection highlights and then lays
// the entries out for drawing. Hit-testing uses positions computed from this
// frame's viewport and transition. The applied intent is returned.
func (m *Menu) Update(in FrameInput) Intent {
	dt := in.Elapsed.Seconds()
	m.clock += dt

	m.place(in.Viewport, in.Transition)
	bounds := HitBounds(m.entries, in.Viewport, m.options.Layout.Padding)
	intent := m.reconciler.Reconcile(in, m.sel.index, func(p Point) (int, bool) {
		return LocateEntryAt(bounds, p)
	})
	m.Apply(intent)

	step := dt * m.options.FadeRate
	for i, e := range m.entries {
		e.Base().updateFade(in.Active && i == m.sel.index, step)
	}

	m.Layout(in.Viewport, in.Transition, in.Active)
	return intent
}

// Apply runs one intent through the selection state machine.
// Moves clamp at either end and are no-ops on an empty menu. Confirms whose
// index is out of range are dropped. Cancel always reaches the cancel hook.
func (m *Menu) Apply(intent Intent) {
	switch intent.Kind {
	case IntentMoveUp:
		m.sel.moveUp()
	case IntentMoveDown:
		m.sel.moveDown(len(m.entries))
	case IntentConfirm:
		if !m.confirm(intent.Index, intent.Device) {
			return
		}
	case IntentCancel:
		m.cancel(intent.Device)
	default:
		return
	}

	m.logger.Debug("Menu intent applied",
		"menu", m.options.Title,
		"intent", intent.String(),
		"selected", m.sel.index)
}

func (m *Menu) confirm(index int, device Device) bool {
	if index < 0 || index >= len(m.entries) {
		m.logger.Debug("Dropping confirm outside entry range",
			"menu", m.options.Title,
			"index", index,
			"count", len(m.entries))
		return false
	}

	entry := m.entries[index]
	entry.Select(device)
	// The label of specialized entries may change on selection.
	entry.Base().size = entry.Measure(m.measurer)

	if m.options.OnEntrySelected != nil {
		m.options.OnEntrySelected(index, device)
	}
	return true
}

func (m *Menu) cancel(device Device) {
	if m.options.OnCancelled != nil {
		m.options.OnCancelled(device)
		return
	}
	m.exitRequested = true
}

// Layout recomputes entry positions for the given frame state and returns
// the frame to draw. Update calls it; hosts call it directly for frames in
// which the menu receives no input.
func (m *Menu) Layout(viewport Size, t Transition, active bool) Frame {
	m.place(viewport, t)

	title := ComputeTitle(m.titleSize, viewport, t, m.options.Layout)
	frame := Frame{
		Title: TitleFrame{
			Text:     m.options.Title,
			Position: title.Position,
			Size:     m.titleSize,
			Alpha:    title.Alpha,
		},
		Entries:    make([]EntryFrame, len(m.entries)),
		Viewport:   viewport,
		Transition: t,
		Active:     active,
	}

	pulsate := 1 + math.Sin(6*m.clock)
	for i, e := range m.entries {
		base := e.Base()
		frame.Entries[i] = EntryFrame{
			Index:     i,
			Text:      e.Text(),
			Position:  base.position,
			Size:      base.size,
			Selected:  active && i == m.sel.index,
			Highlight: base.fade,
			Scale:     1 + 0.05*base.fade*pulsate,
		}
	}

	m.frame = frame
	return frame
}

// Frame returns the frame computed by the most recent Update or Layout.
func (m *Menu) Frame() Frame { return m.frame }

func (m *Menu) place(viewport Size, t Transition) {
	sizes := make([]Size, len(m.entries))
	for i, e := range m.entries {
		sizes[i] = e.Base().size
	}
	for i, p := range ComputeLayout(sizes, viewport, t, m.options.Layout) {
		m.entries[i].Base().position = p
	}
}
