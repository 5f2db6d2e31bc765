//go:build !linux

package output

import (
	"fmt"
	"strings"

	"dikt/clipboard"
)

// defaultSink pastes into whatever window currently has focus; window
// identity capture is an X11 facility and unavailable here.
type defaultSink struct {
	autoPaste bool
}

func New(autoPaste bool) Sink {
	return &defaultSink{autoPaste: autoPaste}
}

func (s *defaultSink) ActiveWindow() string { return "" }

func (s *defaultSink) Deliver(text, _ string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if err := clipboard.Copy(text + " "); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	if !s.autoPaste {
		return nil
	}
	if err := clipboard.Paste(false); err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	return nil
}
