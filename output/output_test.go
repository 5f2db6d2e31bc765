package output

import "testing"

func TestIsTerminalClass(t *testing.T) {
	tests := []struct {
		wmClass string
		want    bool
	}{
		{`WM_CLASS(STRING) = "Alacritty", "Alacritty"`, true},
		{`WM_CLASS(STRING) = "kitty", "kitty"`, true},
		{`WM_CLASS(STRING) = "gnome-terminal-server", "Gnome-terminal"`, true},
		{`WM_CLASS(STRING) = "st-256color", "st-256color"`, true},
		{`WM_CLASS(STRING) = "firefox", "Firefox"`, false},
		{`WM_CLASS(STRING) = "code", "Code"`, false},
		{``, false},
	}
	for _, tt := range tests {
		if got := IsTerminalClass(tt.wmClass); got != tt.want {
			t.Errorf("IsTerminalClass(%q) = %v, want %v", tt.wmClass, got, tt.want)
		}
	}
}
