//go:build windows

package chord

import "golang.design/x/hotkey"

func chordModifiers() []hotkey.Modifier {
	return []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModAlt}
}
