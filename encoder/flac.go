package encoder

import (
	"bytes"
	"fmt"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

// FLAC losslessly compresses mono 16-bit samples for upload to hosted
// transcription APIs. Verbatim prediction keeps encoding cheap; speech
// still compresses well enough to cut upload size roughly in half.
func FLAC(samples []int16, sampleRate int) ([]byte, error) {
	var buf bytes.Buffer
	info := &meta.StreamInfo{
		BlockSizeMin:  BlockSize,
		BlockSizeMax:  BlockSize,
		SampleRate:    uint32(sampleRate),
		NChannels:     Channels,
		BitsPerSample: BitsPerSample,
		NSamples:      uint64(len(samples)),
	}
	enc, err := flac.NewEncoder(&buf, info)
	if err != nil {
		return nil, fmt.Errorf("creating flac encoder: %w", err)
	}
	enc.EnablePredictionAnalysis(true)

	for pos := 0; pos < len(samples); pos += BlockSize {
		end := pos + BlockSize
		if end > len(samples) {
			end = len(samples)
		}
		block := samples[pos:end]

		samples32 := make([]int32, len(block))
		for i, s := range block {
			samples32[i] = int32(s)
		}

		subframe := &frame.Subframe{
			SubHeader: frame.SubHeader{
				Pred: frame.PredVerbatim,
			},
			Samples:  samples32,
			NSamples: len(block),
		}
		f := &frame.Frame{
			Header: frame.Header{
				BlockSize:     uint16(len(block)),
				SampleRate:    uint32(sampleRate),
				Channels:      frame.ChannelsMono,
				BitsPerSample: BitsPerSample,
			},
			Subframes: []*frame.Subframe{subframe},
		}
		if err := enc.WriteFrame(f); err != nil {
			return nil, fmt.Errorf("writing flac frame: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing flac encoder: %w", err)
	}
	return buf.Bytes(), nil
}
