// Package audio abstracts microphone capture. A Context enumerates devices
// and opens capture streams; each stream delivers 16-bit little-endian mono
// PCM to the callback supplied at creation time.
package audio

import "strings"

// DataCallback receives one block of captured PCM. It runs on the audio
// driver's schedule and must not block.
type DataCallback func(data []byte, frameCount uint32)

type CaptureConfig struct {
	SampleRate uint32
	Channels   uint32
}

type DeviceInfo struct {
	ID   string // opaque platform-specific identifier
	Name string
}

type Context interface {
	Devices() ([]DeviceInfo, error)
	// NewCapture binds a capture stream to the given device (nil = system
	// default). The stream does not run until Start is called.
	NewCapture(device *DeviceInfo, config CaptureConfig, cb DataCallback) (CaptureDevice, error)
	Close()
}

// CaptureDevice is one capture stream. Close releases the underlying driver
// resources and must be called on every exit path.
type CaptureDevice interface {
	Start() error
	Stop()
	Close()
	DeviceName() string
}

var btKeywords = []string{
	"airpods", "beats", "bose", "jabra", "galaxy buds", "pixel buds",
	"sony wh-", "sony wf-", "sennheiser momentum", "skullcandy",
	"bluetooth", " bt ", " bt)", " bt]",
}

// IsBluetooth guesses from the device name whether a microphone is a
// Bluetooth headset, which typically records at degraded quality.
func IsBluetooth(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range btKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
