//go:build windows

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

// Paste sends Ctrl+V, or Ctrl+Shift+V for terminal windows.
func Paste(terminal bool) error {
	if err := Init(); err != nil {
		return err
	}
	kb.Clear()
	kb.SetKeys(keybd_event.VK_V)
	kb.HasCTRL(true)
	kb.HasSHIFT(terminal)
	return kb.Launching()
}
