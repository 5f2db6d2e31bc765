// Package chord detects the push-to-talk key chord over a raw stream of
// per-key press/release events: the chord is held while at least one Ctrl
// variant and at least one Alt variant are down at the same time.
package chord

// Linux input-event-codes key numbers for the two modifier groups.
const (
	KeyLeftCtrl  = 29
	KeyRightCtrl = 97
	KeyLeftAlt   = 56
	KeyRightAlt  = 100
)

var (
	ctrlCodes = map[uint16]struct{}{KeyLeftCtrl: {}, KeyRightCtrl: {}}
	altCodes  = map[uint16]struct{}{KeyLeftAlt: {}, KeyRightAlt: {}}
)

type Transition int

const (
	BecameHeld Transition = iota
	StoppedBeingHeld
)

// Detector tracks the set of currently-held keys and reports edge
// transitions of the "chord fully held" predicate. It is not safe for
// concurrent use; feed it from a single event loop.
type Detector struct {
	held    map[uint16]struct{}
	wasHeld bool
}

func NewDetector() *Detector {
	return &Detector{held: make(map[uint16]struct{})}
}

// OnKey applies one press/release event and reports whether the chord-held
// predicate changed. Presses of already-held keys (auto-repeat) and releases
// of keys never seen pressed change nothing and emit nothing.
func (d *Detector) OnKey(code uint16, pressed bool) (Transition, bool) {
	if pressed {
		d.held[code] = struct{}{}
	} else {
		delete(d.held, code)
	}

	isHeld := d.anyHeld(ctrlCodes) && d.anyHeld(altCodes)
	switch {
	case isHeld && !d.wasHeld:
		d.wasHeld = true
		return BecameHeld, true
	case !isHeld && d.wasHeld:
		d.wasHeld = false
		return StoppedBeingHeld, true
	}
	return 0, false
}

func (d *Detector) anyHeld(group map[uint16]struct{}) bool {
	for code := range group {
		if _, ok := d.held[code]; ok {
			return true
		}
	}
	return false
}
