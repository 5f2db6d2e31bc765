// Package log writes diagnostics to a file so the daemon can run detached
// from a terminal. Logging is optional: before Init (or if it fails) every
// call is a no-op and the daemon keeps working.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	dir      string
)

// ResolveDir picks the log directory: the -logpath flag wins, then the
// DIKT_LOG_PATH environment variable, then the OS-specific default.
func ResolveDir(flagPath string) (string, error) {
	for _, p := range []string{flagPath, os.Getenv("DIKT_LOG_PATH")} {
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, p), nil
		}
		return p, nil
	}
	return defaultDir()
}

func SetDir(d string) { dir = d }

func Dir() string { return dir }

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	var err error
	diagFile, err = os.OpenFile(filepath.Join(dir, "diagnostics_log.txt"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", os.Getpid()).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Infof(format string, args ...any) {
	if logReady {
		diagLog.Info().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

// Delivery records one completed dictation: how much audio went in and how
// many characters came out. The text itself is never persisted.
func Delivery(audioSeconds float64, chars int, window string) {
	if !logReady {
		return
	}
	ev := diagLog.Info().
		Float64("audio_s", audioSeconds).
		Int("chars", chars)
	if window != "" {
		ev = ev.Str("window", window)
	}
	ev.Msg("delivery")
}

func SessionStart(provider, model, lang string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("provider", provider).
		Str("model", model).
		Str("lang", lang).
		Msg("session_start")
}

func SessionEnd(count int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("count", count).
		Msg("session_end")
}
