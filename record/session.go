// Package record owns the lifecycle of a single recording: open a capture
// stream, accumulate PCM chunks from the driver callback, then seal and
// collect them into one contiguous sample buffer.
package record

import (
	"encoding/binary"
	"sync"

	"dikt/audio"
)

// Session is one press-to-release recording. Each session allocates its own
// chunk list and owns its own capture stream, so a session still being read
// by a transcription worker can never share a buffer with the next one.
type Session struct {
	// Window is the identity of the window focused when recording began;
	// empty when it could not be determined.
	Window string

	SampleRate int

	capture audio.CaptureDevice
	observe audio.DataCallback

	mu     sync.Mutex
	chunks [][]byte
	sealed bool
}

// Open acquires a capture stream on the given device and starts recording
// into a fresh session. The optional observe callback sees every delivered
// chunk after it has been buffered (used for VAD); it must not block.
// The stream is released before returning if it cannot be started.
func Open(ctx audio.Context, device *audio.DeviceInfo, cfg audio.CaptureConfig, window string, observe audio.DataCallback) (*Session, error) {
	s := &Session{
		Window:     window,
		SampleRate: int(cfg.SampleRate),
		observe:    observe,
	}
	capture, err := ctx.NewCapture(device, cfg, s.feed)
	if err != nil {
		return nil, err
	}
	if err := capture.Start(); err != nil {
		capture.Close()
		return nil, err
	}
	s.capture = capture
	return s, nil
}

// feed runs on the audio driver's callback context: copy the chunk, append
// under the lock, get out. Chunks arriving after the session is sealed are
// dropped.
func (s *Session) feed(data []byte, frameCount uint32) {
	if len(data) == 0 {
		return
	}
	chunk := make([]byte, len(data))
	copy(chunk, data)

	s.mu.Lock()
	if !s.sealed {
		s.chunks = append(s.chunks, chunk)
	}
	s.mu.Unlock()

	if s.observe != nil {
		s.observe(data, frameCount)
	}
}

// Collect stops and releases the capture stream, seals the session against
// further frames, and concatenates the accumulated chunks in arrival order.
// ok is false when no frames were ever delivered — distinct from a recording
// of pure silence, which returns zero-valued samples with ok true.
func (s *Session) Collect() (samples []int16, ok bool) {
	s.capture.Stop()
	s.capture.Close()

	s.mu.Lock()
	s.sealed = true
	chunks := s.chunks
	s.chunks = nil
	s.mu.Unlock()

	if len(chunks) == 0 {
		return nil, false
	}

	total := 0
	for _, c := range chunks {
		total += len(c) / 2
	}
	samples = make([]int16, 0, total)
	for _, c := range chunks {
		for i := 0; i+1 < len(c); i += 2 {
			samples = append(samples, int16(binary.LittleEndian.Uint16(c[i:])))
		}
	}
	return samples, true
}

// DeviceName reports which device this session records from.
func (s *Session) DeviceName() string {
	return s.capture.DeviceName()
}
