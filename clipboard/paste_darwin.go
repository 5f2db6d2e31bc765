//go:build darwin

package clipboard

import (
	"sync"

	"github.com/micmonay/keybd_event"
)

var (
	kb     keybd_event.KeyBonding
	kbOnce sync.Once
	kbErr  error
)

func Init() error {
	kbOnce.Do(func() {
		kb, kbErr = keybd_event.NewKeyBonding()
	})
	return kbErr
}

// Paste sends Cmd+V. macOS terminals do not repurpose the paste shortcut,
// so the terminal flag changes nothing here.
func Paste(_ bool) error {
	if err := Init(); err != nil {
		return err
	}
	kb.Clear()
	kb.SetKeys(keybd_event.VK_V)
	kb.HasSuper(true)
	return kb.Launching()
}
