//go:build !linux

package chord

import (
	"golang.design/x/hotkey"
)

// xSource registers Ctrl+Alt+Space through the platform hotkey API and
// synthesizes modifier press/release pairs for the detector. Raw per-key
// events are not available off Linux, so the chord is effectively fixed to
// what the OS-level registration delivers.
type xSource struct {
	hk     *hotkey.Hotkey
	events chan Event
	stop   chan struct{}
}

func NewSource() Source {
	return &xSource{
		hk:     hotkey.New(chordModifiers(), hotkey.KeySpace),
		events: make(chan Event, 64),
		stop:   make(chan struct{}),
	}
}

func (s *xSource) Open() error {
	if err := s.hk.Register(); err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-s.hk.Keydown():
				s.events <- Event{Code: KeyLeftCtrl, Pressed: true}
				s.events <- Event{Code: KeyLeftAlt, Pressed: true}
			case <-s.stop:
				return
			}
			select {
			case <-s.hk.Keyup():
				s.events <- Event{Code: KeyLeftAlt, Pressed: false}
				s.events <- Event{Code: KeyLeftCtrl, Pressed: false}
			case <-s.stop:
				return
			}
		}
	}()
	return nil
}

func (s *xSource) Events() <-chan Event { return s.events }

func (s *xSource) Close() {
	close(s.stop)
	s.hk.Unregister()
}
