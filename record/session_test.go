package record

import (
	"encoding/binary"
	"testing"

	"dikt/audio"
)

var testCfg = audio.CaptureConfig{SampleRate: 16000, Channels: 1}

func pcmChunk(values ...int16) []byte {
	b := make([]byte, len(values)*2)
	for i, v := range values {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(v))
	}
	return b
}

func TestCollectConcatenatesInArrivalOrder(t *testing.T) {
	ctx := audio.NewFakeContext(pcmChunk(1, 2), pcmChunk(3), pcmChunk(4, 5, 6))
	sess, err := Open(ctx, nil, testCfg, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	samples, ok := sess.Collect()
	if !ok {
		t.Fatal("expected frames")
	}
	want := []int16{1, 2, 3, 4, 5, 6}
	if len(samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(samples), len(want))
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, samples[i], want[i])
		}
	}
}

func TestCollectEmptyDistinctFromSilent(t *testing.T) {
	// No frames at all: not ok
	ctx := audio.NewFakeContext()
	sess, err := Open(ctx, nil, testCfg, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if samples, ok := sess.Collect(); ok || samples != nil {
		t.Errorf("no frames: got (%v, %v), want (nil, false)", samples, ok)
	}

	// Frames of pure silence: ok, zero-valued samples
	ctx = audio.NewFakeContext(pcmChunk(0, 0, 0))
	sess, err = Open(ctx, nil, testCfg, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	samples, ok := sess.Collect()
	if !ok || len(samples) != 3 {
		t.Errorf("silent frames: got (%d samples, %v), want (3, true)", len(samples), ok)
	}
}

func TestStreamReleasedOnCollect(t *testing.T) {
	ctx := audio.NewFakeContext()
	sess, err := Open(ctx, nil, testCfg, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	sess.Collect()

	captures := ctx.Captures()
	if len(captures) != 1 {
		t.Fatalf("expected 1 capture, got %d", len(captures))
	}
	if !captures[0].Stopped() || !captures[0].Closed() {
		t.Error("capture stream not released after Collect")
	}
}

func TestFramesAfterSealDropped(t *testing.T) {
	ctx := audio.NewFakeContext(pcmChunk(1))
	sess, err := Open(ctx, nil, testCfg, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	samples, ok := sess.Collect()
	if !ok || len(samples) != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", len(samples), ok)
	}

	// A straggler callback after sealing must not resurrect the session
	ctx.Captures()[0].Emit(pcmChunk(9, 9))
	if again, ok := sess.Collect(); ok || again != nil {
		t.Errorf("sealed session accepted frames: (%v, %v)", again, ok)
	}
}

func TestBackToBackSessionsIndependent(t *testing.T) {
	ctx := audio.NewFakeContext()
	first, err := Open(ctx, nil, testCfg, "win-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	captures := ctx.Captures()
	captures[0].Emit(pcmChunk(1, 1))

	// Second session starts before the first is collected
	second, err := Open(ctx, nil, testCfg, "win-2", nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx.Captures()[1].Emit(pcmChunk(2, 2, 2))

	firstSamples, ok := first.Collect()
	if !ok || len(firstSamples) != 2 {
		t.Fatalf("first session: got %d samples, want 2", len(firstSamples))
	}
	secondSamples, ok := second.Collect()
	if !ok || len(secondSamples) != 3 {
		t.Fatalf("second session: got %d samples, want 3", len(secondSamples))
	}
	for _, v := range firstSamples {
		if v != 1 {
			t.Errorf("first session corrupted: sample %d", v)
		}
	}
	for _, v := range secondSamples {
		if v != 2 {
			t.Errorf("second session corrupted: sample %d", v)
		}
	}
	if first.Window != "win-1" || second.Window != "win-2" {
		t.Error("window identity not retained per session")
	}
}

func TestObserverSeesChunks(t *testing.T) {
	var observed int
	obs := func(data []byte, frameCount uint32) { observed += int(frameCount) }

	ctx := audio.NewFakeContext(pcmChunk(1, 2, 3))
	sess, err := Open(ctx, nil, testCfg, "", obs)
	if err != nil {
		t.Fatal(err)
	}
	sess.Collect()
	if observed != 3 {
		t.Errorf("observer saw %d frames, want 3", observed)
	}
}
