package internal

import (
	"fmt"
	"sync"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// EvdevSource reads key presses from a raw Linux input device. Handheld
// consoles often expose their built-in controls only this way.
// Presses are queued by a reader goroutine and drained once per frame.
type EvdevSource struct {
	device  *evdev.InputDevice
	mapping map[evdev.EvCode]constants.VirtualButton
	running *atomic.Bool

	mu      sync.Mutex
	pending []constants.VirtualButton
}

// OpenEvdevSource opens the device at path and starts reading it.
func OpenEvdevSource(path string, mapping map[evdev.EvCode]constants.VirtualButton) (*EvdevSource, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open evdev device %s: %w", path, err)
	}

	name, _ := device.Name()
	logging.GetInternalLogger().Debug("Opened evdev device", "path", path, "name", name)

	src := newEvdevSource(mapping)
	src.device = device
	go src.read()
	return src, nil
}

func newEvdevSource(mapping map[evdev.EvCode]constants.VirtualButton) *EvdevSource {
	return &EvdevSource{
		mapping: mapping,
		running: atomic.NewBool(true),
	}
}

func (s *EvdevSource) read() {
	logger := logging.GetInternalLogger()
	for s.running.Load() {
		event, err := s.device.ReadOne()
		if err != nil {
			if s.running.Load() {
				logger.Error("Evdev read failed, stopping source", "error", err)
			}
			s.running.Store(false)
			return
		}
		s.handle(event)
	}
}

// handle queues mapped key-down edges. Releases (0) and autorepeat (2) are dropped.
func (s *EvdevSource) handle(event *evdev.InputEvent) {
	if event.Type != evdev.EV_KEY || event.Value != 1 {
		return
	}
	button, ok := s.mapping[event.Code]
	if !ok {
		logging.GetInternalLogger().Debug("Evdev key not mapped", "code", int(event.Code))
		return
	}

	s.mu.Lock()
	s.pending = append(s.pending, button)
	s.mu.Unlock()
}

// Drain returns and clears the presses queued since the last call.
func (s *EvdevSource) Drain() []constants.VirtualButton {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}

// Running reports whether the reader goroutine is still alive.
func (s *EvdevSource) Running() bool {
	return s.running.Load()
}

func (s *EvdevSource) Close() error {
	s.running.Store(false)
	if s.device == nil {
		return nil
	}
	return s.device.Close()
}
