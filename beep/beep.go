// Package beep plays short audio cues when recording starts and stops, so
// the user knows the chord registered without looking at a screen.
package beep

import "math"

var disabled bool

// Disable turns all cues into no-ops (test mode).
func Disable() { disabled = true }

const (
	sampleRate = 44100

	// Start cue: high pitch, short
	startFreq   = 1200.0
	startVolume = 0.5
	startDecay  = 60.0

	// End cue: medium pitch, slightly longer
	endFreq   = 900.0
	endVolume = 0.5
	endDecay  = 40.0
)

func generateTick(freq, duration, volume, decay float64) []int16 {
	n := int(sampleRate * duration)
	samples := make([]int16, n*2)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-t * decay)
		s := int16(math.Sin(2*math.Pi*freq*t) * 32767 * volume * envelope)
		samples[i*2] = s
		samples[i*2+1] = s
	}
	return samples
}

func PlayStart() {
	if disabled {
		return
	}
	playSamples(generateTick(startFreq, 0.2, startVolume, startDecay))
}

func PlayEnd() {
	if disabled {
		return
	}
	playSamples(generateTick(endFreq, 0.2, endVolume, endDecay))
}
