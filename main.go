package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"dikt/audio"
	"dikt/beep"
	"dikt/chord"
	"dikt/clipboard"
	"dikt/config"
	"dikt/doctor"
	"dikt/encoder"
	"dikt/log"
	"dikt/output"
	"dikt/shutdown"
	"dikt/transcriber"
)

var version = "dev"

func main() {
	setupFlag := flag.Bool("setup", false, "Select microphone device (otherwise uses system default)")
	deviceFlag := flag.String("device", "", "Use named microphone device")
	autoPasteFlag := flag.Bool("autopaste", true, "Auto-paste to focused window after transcription")
	langFlag := flag.String("lang", "", "Language code for transcription (e.g., en, es, fr). Empty = use WHISPER_LANG")
	nobeepFlag := flag.Bool("nobeep", false, "Disable start/stop audio cues")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run system diagnostics and exit")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	testFlag := flag.Bool("test", false, "Test mode (headless, stdin-driven)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("dikt %s\n", version)
		os.Exit(0)
	}

	// Resolve log directory early so crash logging works from the start
	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)
	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	if crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	if *doctorFlag {
		os.Exit(doctor.Run())
	}

	if *nobeepFlag {
		beep.Disable()
	}

	cfg := config.Load()
	lang := cfg.Language
	if *langFlag != "" {
		lang = *langFlag
	}

	trans := transcriber.New(transcriber.Options{
		ServerURL: cfg.ServerURL,
		Model:     cfg.Model,
		Device:    cfg.Device,
		Compute:   cfg.Compute,
		GroqKey:   cfg.GroqKey,
	})

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	log.SessionStart(trans.Name(), cfg.Model, lang)

	if *testFlag {
		args := flag.Args()
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Usage: dikt -test <wav-file>")
			os.Exit(1)
		}
		runTestMode(args[0], trans, lang, *autoPasteFlag)
		return
	}

	if *autoPasteFlag {
		if err := clipboard.Init(); err != nil {
			fmt.Printf("Warning: paste init failed: %v\n", err)
			fmt.Println("Fix with: sudo chmod 660 /dev/uinput && sudo chgrp input /dev/uinput")
		}
	}

	audioCtx, err := audio.NewContext()
	if err != nil {
		log.Errorf("audio context init error: %v", err)
		fmt.Printf("Error initializing audio context: %v\n", err)
		os.Exit(1)
	}
	defer audioCtx.Close()

	var selectedDevice *audio.DeviceInfo
	if *deviceFlag != "" {
		if devices, err := audioCtx.Devices(); err == nil {
			for i := range devices {
				if devices[i].Name == *deviceFlag {
					selectedDevice = &devices[i]
					break
				}
			}
		}
		if selectedDevice == nil {
			fmt.Printf("Warning: device %q not found, using system default\n", *deviceFlag)
		}
	} else if *setupFlag {
		selectedDevice, err = audio.SelectDevice(audioCtx)
		if err != nil {
			log.Warnf("device selection failed: %v", err)
			fmt.Printf("Warning: device selection failed: %v\n", err)
			fmt.Println("Falling back to default device")
			selectedDevice = nil
		}
	}

	captureConfig := audio.CaptureConfig{
		SampleRate: encoder.SampleRate,
		Channels:   encoder.Channels,
	}
	sink := output.New(*autoPasteFlag)
	ctrl := newController(audioCtx, selectedDevice, captureConfig, trans, sink, lang)

	source := chord.NewSource()
	if err := source.Open(); err != nil {
		log.Errorf("keyboard source error: %v", err)
		fmt.Printf("Error: %v\n", err)
		fmt.Println("On Linux this usually means no read access to /dev/input.")
		fmt.Println("Fix with: sudo usermod -aG input $USER (then log out and back in)")
		os.Exit(1)
	}
	defer source.Close()

	printBanner(trans.Name(), cfg.Model, lang, selectedDevice)

	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)

	detector := chord.NewDetector()
	for {
		select {
		case ev, ok := <-source.Events():
			if !ok {
				return
			}
			if tr, ok := detector.OnKey(ev.Code, ev.Pressed); ok {
				ctrl.OnTransition(tr)
			}
		case <-sigChan:
			fmt.Println("\nExiting.")
			ctrl.Shutdown()
			log.SessionEnd(ctrl.Deliveries())
			log.Close()
			return
		}
	}
}

func printBanner(backend, model, lang string, device *audio.DeviceInfo) {
	deviceName := "system default"
	btWarn := ""
	if device != nil {
		deviceName = device.Name
		if audio.IsBluetooth(device.Name) {
			btWarn = " (BT: audio quality may be degraded)"
		}
	}
	fmt.Printf("dikt %s\n", version)
	fmt.Printf("  backend: %s (model=%s, lang=%s)\n", backend, model, lang)
	fmt.Printf("  mic:     %s%s\n", deviceName, btWarn)
	fmt.Println()
	fmt.Println("Hold Ctrl+Alt to record, release to transcribe and paste. Ctrl+C to quit.")
}
