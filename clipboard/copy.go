// Package clipboard places text on the system clipboard and injects the
// paste keystroke that pushes it into the focused window.
package clipboard

import cb "github.com/atotto/clipboard"

func Read() (string, error) {
	return cb.ReadAll()
}

func Copy(text string) error {
	return cb.WriteAll(text)
}
