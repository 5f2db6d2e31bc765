package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"dikt/audio"
	"dikt/beep"
	"dikt/chord"
	"dikt/clipboard"
	"dikt/encoder"
	"dikt/log"
	"dikt/output"
	"dikt/transcriber"
)

// echoSink prints every delivery so the test harness can assert on stdout,
// then forwards to the real sink.
type echoSink struct {
	inner output.Sink
}

func (s echoSink) ActiveWindow() string { return s.inner.ActiveWindow() }

func (s echoSink) Deliver(text, windowID string) error {
	fmt.Printf("TRANSCRIPT: %s\n", text)
	return s.inner.Deliver(text, windowID)
}

// testDriver feeds scripted chord events through the real detector into the
// controller. Each key event is acknowledged after the controller has seen
// it, so a WAIT following KEYUP always observes the transcription worker that
// the release spawned.
type testDriver struct {
	source *chord.FakeSource
	ctrl   *controller
	pumped chan struct{}
	quit   func(code int)
}

func newTestDriver(ctrl *controller, quit func(int)) *testDriver {
	d := &testDriver{
		source: chord.NewFakeSource(),
		ctrl:   ctrl,
		pumped: make(chan struct{}, 64),
		quit:   quit,
	}
	detector := chord.NewDetector()
	go func() {
		for ev := range d.source.Events() {
			if tr, ok := detector.OnKey(ev.Code, ev.Pressed); ok {
				d.ctrl.OnTransition(tr)
			}
			d.pumped <- struct{}{}
		}
	}()
	return d
}

func (d *testDriver) chordDown() {
	d.source.SimChordDown()
	d.awaitPump(2)
}

func (d *testDriver) chordUp() {
	d.source.SimChordUp()
	d.awaitPump(2)
}

func (d *testDriver) awaitPump(n int) {
	for i := 0; i < n; i++ {
		<-d.pumped
	}
}

// run executes script commands (KEYDOWN, KEYUP, WAIT, SLEEP <ms>, QUIT) until
// QUIT or end of input.
func (d *testDriver) run(script io.Reader) {
	scanner := bufio.NewScanner(script)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())
		switch cmd {
		case "KEYDOWN":
			d.chordDown()
		case "KEYUP":
			d.chordUp()
		case "WAIT":
			d.ctrl.Wait()
		case "QUIT":
			log.SessionEnd(d.ctrl.Deliveries())
			d.quit(0)
			return
		default:
			if strings.HasPrefix(cmd, "SLEEP ") {
				if ms, err := strconv.Atoi(cmd[6:]); err == nil {
					time.Sleep(time.Duration(ms) * time.Millisecond)
				}
			}
		}
	}
	d.ctrl.Wait()
	log.SessionEnd(d.ctrl.Deliveries())
}

// runTestMode replaces the keyboard and microphone with fakes and drives the
// pipeline from stdin commands.
func runTestMode(wavPath string, trans transcriber.Transcriber, lang string, autoPaste bool) {
	beep.Disable()
	defer log.Close()

	if autoPaste {
		if err := clipboard.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: paste init failed: %v\n", err)
		}
	}

	chunks, err := loadWAVChunks(wavPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading WAV: %v\n", err)
		os.Exit(1)
	}

	audioCtx := audio.NewFakeContext(chunks...)
	captureConfig := audio.CaptureConfig{
		SampleRate: encoder.SampleRate,
		Channels:   encoder.Channels,
	}
	ctrl := newController(audioCtx, nil, captureConfig, trans, echoSink{inner: output.New(autoPaste)}, lang)

	newTestDriver(ctrl, os.Exit).run(os.Stdin)
}

const wavHeaderSize = 44

// loadWAVChunks reads a 16-bit mono WAV file and splits its PCM payload into
// driver-sized blocks.
func loadWAVChunks(path string) ([][]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) < wavHeaderSize || string(raw[:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%s is not a WAV file", path)
	}
	pcm := raw[wavHeaderSize:]

	blockBytes := encoder.BlockSize * 2
	var chunks [][]byte
	for len(pcm) > 0 {
		n := blockBytes
		if n > len(pcm) {
			n = len(pcm)
		}
		chunks = append(chunks, pcm[:n])
		pcm = pcm[n:]
	}
	return chunks, nil
}
