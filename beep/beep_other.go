//go:build !linux

package beep

// Audio cues are a PulseAudio facility; other platforms stay silent.
func playSamples(_ []int16) {}
