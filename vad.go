package main

import (
	"sync"

	webrtcvad "github.com/maxhawkins/go-webrtcvad"

	"dikt/encoder"
)

const (
	vadMode       = 3
	vadFrameMs    = 20
	vadFrameBytes = encoder.SampleRate * vadFrameMs / 1000 * 2 // 640 bytes
	vadDebounce   = 3                                          // consecutive speech frames to confirm voice
)

// vadProcessor watches a session's audio for any confirmed speech. The
// verdict is informational: sessions without detected voice are still
// transcribed, but the log explains why they likely come back empty.
type vadProcessor struct {
	vad *webrtcvad.VAD

	mu            sync.Mutex
	buf           []byte
	speechRun     int
	voiceDetected bool
}

func newVADProcessor() (*vadProcessor, error) {
	v, err := webrtcvad.New()
	if err != nil {
		return nil, err
	}
	if err := v.SetMode(vadMode); err != nil {
		return nil, err
	}
	return &vadProcessor{vad: v}, nil
}

// Observe matches audio.DataCallback so it can ride along on the capture
// callback. It must stay cheap: buffer, frame, classify.
func (p *vadProcessor) Observe(data []byte, _ uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.buf = append(p.buf, data...)
	for len(p.buf) >= vadFrameBytes {
		frame := p.buf[:vadFrameBytes]
		p.buf = p.buf[vadFrameBytes:]

		active, err := p.vad.Process(encoder.SampleRate, frame)
		if err != nil {
			continue
		}
		if active {
			p.speechRun++
			if p.speechRun >= vadDebounce {
				p.voiceDetected = true
			}
		} else {
			p.speechRun = 0
		}
	}
}

func (p *vadProcessor) VoiceDetected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.voiceDetected
}
