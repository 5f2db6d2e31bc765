// Package output delivers cleaned dictation text to the window that had
// focus when the recording began.
package output

import "strings"

// Sink is the delivery boundary. ActiveWindow is queried at recording start;
// the identity is handed back to Deliver when the transcript is ready, since
// focus may have moved during transcription.
type Sink interface {
	// ActiveWindow returns an opaque identity for the focused window, or ""
	// when it cannot be determined.
	ActiveWindow() string
	// Deliver pushes text into the given window, best-effort.
	Deliver(text, windowID string) error
}

// Window classes of known terminal emulators. Terminals intercept Ctrl+V,
// so pasting into them needs Ctrl+Shift+V instead.
var terminalClasses = []string{
	"gnome-terminal", "gnome-terminal-server", "kitty", "alacritty",
	"konsole", "xterm", "urxvt", "st-256color", "terminator",
	"tilix", "xfce4-terminal", "mate-terminal", "foot",
}

// IsTerminalClass reports whether a WM_CLASS property value names a known
// terminal emulator.
func IsTerminalClass(wmClass string) bool {
	lower := strings.ToLower(wmClass)
	for _, cls := range terminalClasses {
		if strings.Contains(lower, cls) {
			return true
		}
	}
	return false
}
