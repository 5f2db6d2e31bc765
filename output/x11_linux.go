//go:build linux

package output

import (
	"fmt"
	"os/exec"
	"strings"

	"dikt/clipboard"
	"dikt/log"
)

// x11Sink delivers via the clipboard plus a synthetic paste keystroke,
// refocusing the captured X11 window first. Window discovery and refocus go
// through xdotool/xprop; failures there are logged and delivery continues.
type x11Sink struct {
	autoPaste bool
}

// New returns the platform delivery sink. With autoPaste disabled the text
// is only placed on the clipboard.
func New(autoPaste bool) Sink {
	return &x11Sink{autoPaste: autoPaste}
}

func (s *x11Sink) ActiveWindow() string {
	out, err := exec.Command("xdotool", "getactivewindow").Output()
	if err != nil {
		log.Warnf("active window query failed: %v", err)
		return ""
	}
	return strings.TrimSpace(string(out))
}

func (s *x11Sink) Deliver(text, windowID string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	// Trailing space so consecutive dictations don't run together
	if err := clipboard.Copy(text + " "); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	if !s.autoPaste {
		return nil
	}
	if windowID != "" {
		if err := exec.Command("xdotool", "windowfocus", "--sync", windowID).Run(); err != nil {
			log.Warnf("window refocus failed: %v", err)
		}
	}
	if err := clipboard.Paste(s.isTerminal(windowID)); err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	return nil
}

func (s *x11Sink) isTerminal(windowID string) bool {
	if windowID == "" {
		return false
	}
	out, err := exec.Command("xprop", "-id", windowID, "WM_CLASS").Output()
	if err != nil {
		return false
	}
	return IsTerminalClass(string(out))
}
