// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/audpipe/audio"
)

// GenerateBuffer builds a buffer of frames frames where each sample comes
// from the waveform function, given the frame index and channel.
func GenerateBuffer(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *audio.SampleBuffer {
	buf := audio.NewSampleBuffer(sampleRate, channels, frames)

	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			buf.Data[f*channels+c] = waveform(f, c)
		}
	}

	return buf
}

// NewSilentBuffer builds a buffer of digital silence.
func NewSilentBuffer(sampleRate, channels, frames int) *audio.SampleBuffer {
	return audio.NewSampleBuffer(sampleRate, channels, frames)
}

// NewSineBuffer builds a buffer carrying a sine wave of the given
// frequency and amplitude on every channel.
func NewSineBuffer(sampleRate, channels, frames int, frequency, amplitude float64) *audio.SampleBuffer {
	return GenerateBuffer(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(amplitude * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewConstantBuffer builds a buffer where every sample holds value.
func NewConstantBuffer(sampleRate, channels, frames int, value float32) *audio.SampleBuffer {
	return GenerateBuffer(sampleRate, channels, frames, func(_, _ int) float32 {
		return value
	})
}

// NewBufferWithSilenceSpan builds a tone buffer with one silent span
// covering [silenceStart, silenceEnd) in frames. The tone is a cosine so
// its zero crossings never land on a frame boundary adjacent to the
// span, keeping the span edges exact.
func NewBufferWithSilenceSpan(sampleRate, channels, frames, silenceStart, silenceEnd int) *audio.SampleBuffer {
	return GenerateBuffer(sampleRate, channels, frames, func(frame, _ int) float32 {
		if frame >= silenceStart && frame < silenceEnd {
			return 0
		}
		t := float64(frame) / float64(sampleRate)
		return float32(0.5 * math.Cos(2*math.Pi*440*t))
	})
}
