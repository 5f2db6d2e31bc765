// Package encoder wraps sealed PCM sample buffers in the container formats
// the transcription backends accept.
package encoder

const (
	SampleRate    = 16000
	Channels      = 1
	BitsPerSample = 16
	BlockSize     = 4096
)
