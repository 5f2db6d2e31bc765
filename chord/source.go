package chord

// Event is one raw key transition from an input device. Auto-repeat events
// are filtered out by the source; only genuine presses and releases appear.
type Event struct {
	Code    uint16
	Pressed bool
}

// Source supplies the raw key-event stream that drives the Detector.
type Source interface {
	// Open starts delivering events. It fails when no usable keyboard
	// device can be found or opened.
	Open() error
	Events() <-chan Event
	Close()
}
