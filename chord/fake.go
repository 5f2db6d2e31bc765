package chord

// FakeSource drives the detector from tests and from the stdin-driven test
// mode without touching real input devices.
type FakeSource struct {
	events chan Event
}

func NewFakeSource() *FakeSource {
	return &FakeSource{events: make(chan Event, 64)}
}

func (f *FakeSource) Open() error          { return nil }
func (f *FakeSource) Events() <-chan Event { return f.events }
func (f *FakeSource) Close()               { close(f.events) }

func (f *FakeSource) Press(code uint16)   { f.events <- Event{Code: code, Pressed: true} }
func (f *FakeSource) Release(code uint16) { f.events <- Event{Code: code, Pressed: false} }

// SimChordDown presses one key from each modifier group.
func (f *FakeSource) SimChordDown() {
	f.Press(KeyLeftCtrl)
	f.Press(KeyLeftAlt)
}

// SimChordUp releases the keys pressed by SimChordDown.
func (f *FakeSource) SimChordUp() {
	f.Release(KeyLeftAlt)
	f.Release(KeyLeftCtrl)
}
