// Package doctor runs interactive system diagnostics: keyboard access,
// microphone capture, transcription and clipboard paste.
package doctor

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"dikt/audio"
	"dikt/chord"
	"dikt/clipboard"
	"dikt/config"
	"dikt/encoder"
	"dikt/record"
	"dikt/transcriber"
)

// Run executes the checks in order and returns an exit code (0 = all pass).
func Run() int {
	fmt.Println("dikt doctor - interactive system diagnostics")
	fmt.Println("============================================")

	allPass := true

	if !checkKeyboard() {
		allPass = false
	}
	if allPass && !checkMicAndTranscription() {
		allPass = false
	}
	if allPass && !checkClipboard() {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkKeyboard() bool {
	fmt.Println()
	fmt.Println("[1/3] Keyboard access")
	fmt.Println("Hold Ctrl+Alt...")

	source := chord.NewSource()
	if err := source.Open(); err != nil {
		fmt.Printf("  FAIL: cannot read keyboard events: %v\n", err)
		fmt.Println("  Fix with: sudo usermod -aG input $USER (then log out and back in)")
		return false
	}
	defer source.Close()

	detector := chord.NewDetector()
	timeout := time.After(10 * time.Second)
	for {
		select {
		case ev, ok := <-source.Events():
			if !ok {
				fmt.Println("  FAIL: keyboard event stream closed")
				return false
			}
			if tr, fired := detector.OnKey(ev.Code, ev.Pressed); fired && tr == chord.BecameHeld {
				fmt.Println("  PASS: chord detected")
				return true
			}
		case <-timeout:
			fmt.Println("  FAIL: timeout waiting for Ctrl+Alt")
			return false
		}
	}
}

func checkMicAndTranscription() bool {
	fmt.Println()
	fmt.Println("[2/3] Microphone and transcription")

	reader := bufio.NewReader(os.Stdin)

	audioCtx, err := audio.NewContext()
	if err != nil {
		fmt.Printf("  FAIL: cannot connect to audio: %v\n", err)
		return false
	}
	defer audioCtx.Close()

	devices, err := audioCtx.Devices()
	if err != nil {
		fmt.Printf("  FAIL: cannot list devices: %v\n", err)
		return false
	}
	if len(devices) == 0 {
		fmt.Println("  FAIL: no capture devices found")
		return false
	}

	var device *audio.DeviceInfo
	if len(devices) == 1 {
		device = &devices[0]
		fmt.Printf("Using device: %s\n", device.Name)
	} else {
		fmt.Println()
		fmt.Println("Select input device:")
		for i, d := range devices {
			fmt.Printf("  %d. %s\n", i+1, d.Name)
		}
		fmt.Printf("Choice [1-%d]: ", len(devices))

		devChoice, _ := reader.ReadString('\n')
		devChoice = strings.TrimSpace(devChoice)
		idx := 0
		if devChoice != "" {
			fmt.Sscanf(devChoice, "%d", &idx)
			idx--
		}
		if idx < 0 || idx >= len(devices) {
			fmt.Println("  FAIL: invalid choice")
			return false
		}
		device = &devices[idx]
		fmt.Printf("Selected: %s\n", device.Name)
	}

	cfg := config.Load()
	trans := transcriber.New(transcriber.Options{
		ServerURL: cfg.ServerURL,
		Model:     cfg.Model,
		Device:    cfg.Device,
		Compute:   cfg.Compute,
		GroqKey:   cfg.GroqKey,
	})
	fmt.Printf("Backend: %s\n", trans.Name())

	fmt.Println()
	fmt.Print("Press Enter and speak for 3 seconds...")
	reader.ReadString('\n')

	captureConfig := audio.CaptureConfig{
		SampleRate: encoder.SampleRate,
		Channels:   encoder.Channels,
	}
	sess, err := record.Open(audioCtx, device, captureConfig, "", nil)
	if err != nil {
		fmt.Printf("  FAIL: recording error: %v\n", err)
		return false
	}

	fmt.Print("  Recording")
	for i := 0; i < 6; i++ {
		time.Sleep(500 * time.Millisecond)
		fmt.Print(".")
	}
	fmt.Println(" done")

	samples, ok := sess.Collect()
	if !ok {
		fmt.Println("  FAIL: no audio captured")
		return false
	}
	fmt.Printf("  Recorded %.1fs, transcribing...\n", float64(len(samples))/float64(encoder.SampleRate))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	segments, err := trans.Transcribe(ctx, transcriber.Request{
		Samples:    samples,
		SampleRate: encoder.SampleRate,
		Language:   cfg.Language,
	})
	if err != nil {
		fmt.Printf("  FAIL: transcription error: %v\n", err)
		return false
	}

	text := strings.TrimSpace(strings.Join(segments, " "))
	if text == "" {
		text = "(no speech detected)"
	}
	fmt.Printf("\n  Transcribed text: %s\n\n", text)

	confirmReader := bufio.NewReader(os.Stdin)
	fmt.Print("Is this correct? [y/n]: ")
	confirm, _ := confirmReader.ReadString('\n')
	confirm = strings.TrimSpace(strings.ToLower(confirm))

	if confirm == "y" || confirm == "yes" {
		fmt.Println("  PASS: transcription verified by user")
		return true
	}
	fmt.Println("  FAIL: transcription not confirmed")
	return false
}

func checkClipboard() bool {
	fmt.Println()
	fmt.Println("[3/3] Clipboard and paste")

	if err := clipboard.Init(); err != nil {
		fmt.Printf("  Warning: paste init: %v\n", err)
	}

	fmt.Println("Focus on a text editor window...")
	for i := 5; i > 0; i-- {
		fmt.Printf("  %d...\n", i)
		time.Sleep(1 * time.Second)
	}

	testStr := "dikt-doctor-test"
	if err := clipboard.Copy(testStr); err != nil {
		fmt.Printf("  FAIL: clipboard copy failed: %v\n", err)
		return false
	}
	if err := clipboard.Paste(false); err != nil {
		fmt.Printf("  FAIL: paste failed: %v\n", err)
		return false
	}

	confirmReader := bufio.NewReader(os.Stdin)
	fmt.Println()
	fmt.Print("Did the text \"dikt-doctor-test\" appear? [y/n]: ")
	confirm, _ := confirmReader.ReadString('\n')
	confirm = strings.TrimSpace(strings.ToLower(confirm))

	if confirm == "y" || confirm == "yes" {
		fmt.Println("  PASS: paste verified by user")
		return true
	}
	fmt.Println("  FAIL: paste not confirmed")
	return false
}
