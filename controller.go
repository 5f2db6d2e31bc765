package main

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"dikt/audio"
	"dikt/beep"
	"dikt/chord"
	"dikt/log"
	"dikt/output"
	"dikt/record"
	"dikt/textclean"
	"dikt/transcriber"
)

// initialPrompt primes the model toward punctuated, conversational output.
const initialPrompt = "Hello, how are you? I'm doing well. Let's discuss the project."

const transcribeTimeout = 2 * time.Minute

// controller ties chord transitions to the record/transcribe/deliver
// pipeline. It has two states: idle (active == nil) and recording. Stopping
// flips back to idle immediately and hands the sealed session to a worker
// goroutine, so a new recording can begin while the previous one is still
// being transcribed.
type controller struct {
	audioCtx   audio.Context
	device     *audio.DeviceInfo
	captureCfg audio.CaptureConfig
	trans      transcriber.Transcriber
	sink       output.Sink
	language   string

	mu     sync.Mutex
	active *record.Session
	vad    *vadProcessor

	wg         sync.WaitGroup
	deliveries atomic.Int64
}

func newController(audioCtx audio.Context, device *audio.DeviceInfo, cfg audio.CaptureConfig,
	trans transcriber.Transcriber, sink output.Sink, language string) *controller {
	return &controller{
		audioCtx:   audioCtx,
		device:     device,
		captureCfg: cfg,
		trans:      trans,
		sink:       sink,
		language:   language,
	}
}

// OnTransition runs on the key-event loop and must not block on audio or
// network work.
func (c *controller) OnTransition(tr chord.Transition) {
	switch tr {
	case chord.BecameHeld:
		c.start()
	case chord.StoppedBeingHeld:
		c.stop()
	}
}

func (c *controller) start() {
	c.mu.Lock()
	if c.active != nil {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	window := c.sink.ActiveWindow()

	var observe audio.DataCallback
	vp, err := newVADProcessor()
	if err != nil {
		log.Warnf("vad unavailable: %v", err)
		vp = nil
	} else {
		observe = vp.Observe
	}

	sess, err := record.Open(c.audioCtx, c.device, c.captureCfg, window, observe)
	if err != nil {
		log.Errorf("recording start failed: %v", err)
		return
	}

	c.mu.Lock()
	c.active = sess
	c.vad = vp
	c.mu.Unlock()

	go beep.PlayStart()
	log.Infof("recording started on %q", sess.DeviceName())
}

func (c *controller) stop() {
	c.mu.Lock()
	sess := c.active
	vp := c.vad
	c.active = nil
	c.vad = nil
	c.mu.Unlock()
	if sess == nil {
		return
	}

	go beep.PlayEnd()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.finish(sess, vp)
	}()
}

func (c *controller) finish(sess *record.Session, vp *vadProcessor) {
	samples, ok := sess.Collect()
	if !ok {
		log.Info("no audio captured, nothing to transcribe")
		return
	}
	if vp != nil && !vp.VoiceDetected() {
		log.Info("no voice detected in recording")
	}

	seconds := float64(len(samples)) / float64(sess.SampleRate)
	log.Infof("transcribing %.1fs of audio", seconds)

	ctx, cancel := context.WithTimeout(context.Background(), transcribeTimeout)
	defer cancel()

	segments, err := c.trans.Transcribe(ctx, transcriber.Request{
		Samples:    samples,
		SampleRate: sess.SampleRate,
		Language:   c.language,
		Prompt:     initialPrompt,
	})
	if err != nil {
		log.Errorf("transcription failed: %v", err)
		return
	}

	text := strings.TrimSpace(strings.Join(segments, " "))
	if text == "" {
		log.Info("no speech detected")
		return
	}
	text = textclean.Clean(text)
	if text == "" {
		log.Info("no speech detected")
		return
	}

	if err := c.sink.Deliver(text, sess.Window); err != nil {
		log.Errorf("delivery failed: %v", err)
		return
	}
	c.deliveries.Add(1)
	log.Delivery(seconds, len(text), sess.Window)
}

// Shutdown seals any open session so its capture stream is released. It does
// not wait for in-flight transcriptions.
func (c *controller) Shutdown() {
	c.mu.Lock()
	sess := c.active
	c.active = nil
	c.vad = nil
	c.mu.Unlock()
	if sess != nil {
		sess.Collect()
	}
}

// Wait blocks until all in-flight transcription workers have finished.
func (c *controller) Wait() {
	c.wg.Wait()
}

func (c *controller) Deliveries() int {
	return int(c.deliveries.Load())
}
