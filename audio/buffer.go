// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

const (
	// MaxSampleRate is the highest sample rate a buffer may carry, in Hz.
	MaxSampleRate = 192_000
	// MaxChannels is the highest channel count a buffer may carry.
	MaxChannels = 32
)

// SampleFormat records the bit depth the samples were decoded from, or
// will be encoded to. Processing always happens on float32 regardless.
type SampleFormat int

const (
	FormatF32 SampleFormat = iota
	FormatI16
	FormatI24
	FormatI32
	FormatU8
)

func (f SampleFormat) String() string {
	switch f {
	case FormatF32:
		return "f32"
	case FormatI16:
		return "i16"
	case FormatI24:
		return "i24"
	case FormatI32:
		return "i32"
	case FormatU8:
		return "u8"
	default:
		return fmt.Sprintf("SampleFormat(%d)", int(f))
	}
}

// BitDepth returns the number of bits per sample for the format.
func (f SampleFormat) BitDepth() int {
	switch f {
	case FormatU8:
		return 8
	case FormatI16:
		return 16
	case FormatI24:
		return 24
	default:
		return 32
	}
}

// SampleBuffer holds a complete run of interleaved PCM audio. Samples are
// float32 in [-1, 1], frame by frame: for stereo the layout is
// [L0, R0, L1, R1, ...]. Processing stages mutate Data in place and may
// replace it wholesale when the length changes.
type SampleBuffer struct {
	// Data holds the interleaved samples. len(Data) must be a multiple
	// of Channels.
	Data []float32
	// SampleRate of the audio in Hz.
	SampleRate int
	// Channels count (1=mono, 2=stereo).
	Channels int
	// Format the samples originated from. Informational; it does not
	// change how stages treat Data.
	Format SampleFormat
}

// NewSampleBuffer allocates a zeroed buffer holding frames frames.
func NewSampleBuffer(sampleRate, channels, frames int) *SampleBuffer {
	return &SampleBuffer{
		Data:       make([]float32, frames*channels),
		SampleRate: sampleRate,
		Channels:   channels,
		Format:     FormatF32,
	}
}

// Frames returns the number of complete frames in the buffer.
func (b *SampleBuffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}

	return len(b.Data) / b.Channels
}

// Duration returns the playing time of the buffer.
func (b *SampleBuffer) Duration() time.Duration {
	if b.SampleRate <= 0 || b.Channels <= 0 {
		return 0
	}

	secs := float64(b.Frames()) / float64(b.SampleRate)

	return time.Duration(secs * float64(time.Second))
}

// Clone returns a deep copy of the buffer.
func (b *SampleBuffer) Clone() *SampleBuffer {
	data := make([]float32, len(b.Data))
	copy(data, b.Data)

	return &SampleBuffer{
		Data:       data,
		SampleRate: b.SampleRate,
		Channels:   b.Channels,
		Format:     b.Format,
	}
}

// Validate checks the structural invariants: a positive in-range channel
// count, an in-range sample rate, and a data length that is a whole
// number of frames. An empty Data slice is valid; stages treat it as a
// no-op.
func (b *SampleBuffer) Validate() error {
	if b.Channels < 1 || b.Channels > MaxChannels {
		return fmt.Errorf("%w: %d (must be 1..%d)",
			ErrInvalidChannels, b.Channels, MaxChannels)
	}

	if b.SampleRate < 1 || b.SampleRate > MaxSampleRate {
		return fmt.Errorf("%w: %d Hz (must be 1..%d)",
			ErrInvalidSampleRate, b.SampleRate, MaxSampleRate)
	}

	if len(b.Data)%b.Channels != 0 {
		return fmt.Errorf("%w: %d samples across %d channels",
			ErrChannelMismatch, len(b.Data), b.Channels)
	}

	return nil
}

// Frame returns the samples of frame i as a subslice of Data. The slice
// aliases the buffer; writes through it modify the buffer.
func (b *SampleBuffer) Frame(i int) []float32 {
	start := i * b.Channels

	return b.Data[start : start+b.Channels]
}
