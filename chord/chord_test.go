package chord

import "testing"

func press(t *testing.T, d *Detector, code uint16) (Transition, bool) {
	t.Helper()
	return d.OnKey(code, true)
}

func release(t *testing.T, d *Detector, code uint16) (Transition, bool) {
	t.Helper()
	return d.OnKey(code, false)
}

func TestChordBecomesHeldOnce(t *testing.T) {
	d := NewDetector()

	if _, ok := press(t, d, KeyLeftCtrl); ok {
		t.Fatal("ctrl alone should not emit a transition")
	}
	tr, ok := press(t, d, KeyLeftAlt)
	if !ok || tr != BecameHeld {
		t.Fatalf("ctrl+alt should emit BecameHeld, got (%v, %v)", tr, ok)
	}

	// Auto-repeat of an already-held key is silent
	for i := 0; i < 5; i++ {
		if _, ok := press(t, d, KeyLeftAlt); ok {
			t.Fatal("repeated press of held key must not re-trigger")
		}
		if _, ok := press(t, d, KeyLeftCtrl); ok {
			t.Fatal("repeated press of held key must not re-trigger")
		}
	}
}

func TestChordStopsOnEitherGroupEmpty(t *testing.T) {
	d := NewDetector()
	press(t, d, KeyRightCtrl)
	press(t, d, KeyRightAlt)

	tr, ok := release(t, d, KeyRightCtrl)
	if !ok || tr != StoppedBeingHeld {
		t.Fatalf("releasing the only ctrl should stop the chord, got (%v, %v)", tr, ok)
	}
	if _, ok := release(t, d, KeyRightAlt); ok {
		t.Fatal("already stopped; second release must be silent")
	}
}

func TestChordSurvivesRedundantModifier(t *testing.T) {
	d := NewDetector()
	press(t, d, KeyLeftCtrl)
	press(t, d, KeyRightCtrl)
	press(t, d, KeyLeftAlt)

	// One ctrl still held; chord stays up
	if _, ok := release(t, d, KeyLeftCtrl); ok {
		t.Fatal("one ctrl remains, chord should still be held")
	}
	tr, ok := release(t, d, KeyRightCtrl)
	if !ok || tr != StoppedBeingHeld {
		t.Fatalf("last ctrl released, expected StoppedBeingHeld, got (%v, %v)", tr, ok)
	}
}

func TestUnrelatedKeysAbsorbed(t *testing.T) {
	d := NewDetector()
	press(t, d, KeyLeftCtrl)
	press(t, d, KeyLeftAlt)

	if _, ok := press(t, d, 30); ok { // 'a'
		t.Fatal("unrelated key must not emit a transition")
	}
	if _, ok := release(t, d, 30); ok {
		t.Fatal("unrelated key must not emit a transition")
	}
}

func TestReleaseOfUnseenKeyTolerated(t *testing.T) {
	d := NewDetector()
	if _, ok := release(t, d, KeyLeftCtrl); ok {
		t.Fatal("release of never-pressed key must be a silent no-op")
	}
}

func TestFastRePress(t *testing.T) {
	d := NewDetector()
	for i := 0; i < 3; i++ {
		if tr, ok := press(t, d, KeyLeftCtrl); ok {
			t.Fatalf("cycle %d: ctrl alone emitted %v", i, tr)
		}
		tr, ok := press(t, d, KeyLeftAlt)
		if !ok || tr != BecameHeld {
			t.Fatalf("cycle %d: expected BecameHeld", i)
		}
		tr, ok = release(t, d, KeyLeftAlt)
		if !ok || tr != StoppedBeingHeld {
			t.Fatalf("cycle %d: expected StoppedBeingHeld", i)
		}
		release(t, d, KeyLeftCtrl)
	}
}

func TestExactlyOneTransitionPerEdge(t *testing.T) {
	// Scripted interleaving with repeats and stray keys; count edges of the
	// derived predicate and compare against emitted transitions.
	type ev struct {
		code    uint16
		pressed bool
	}
	script := []ev{
		{KeyLeftCtrl, true}, {KeyLeftCtrl, true}, {57, true},
		{KeyRightAlt, true}, {KeyRightAlt, true}, // held from here
		{57, false}, {KeyLeftAlt, true},
		{KeyRightAlt, false}, // still held via left alt
		{KeyLeftAlt, false},  // stopped
		{KeyRightCtrl, true},
		{KeyLeftAlt, true}, // held again
		{KeyLeftCtrl, false},
		{KeyRightCtrl, false}, // stopped
	}

	d := NewDetector()
	var became, stopped int
	for _, e := range script {
		if tr, ok := d.OnKey(e.code, e.pressed); ok {
			switch tr {
			case BecameHeld:
				became++
			case StoppedBeingHeld:
				stopped++
			}
		}
	}
	if became != 2 || stopped != 2 {
		t.Errorf("got %d BecameHeld / %d StoppedBeingHeld, want 2/2", became, stopped)
	}
}
