// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audpipe/audio"
	"github.com/ik5/audpipe/utils"
)

// Encoder writes a sample buffer as integer PCM WAV at 16, 24 or 32
// bits.
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, buf *audio.SampleBuffer, bitDepth int) error {
	convert, err := sampleConverter(bitDepth)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(w, buf.SampleRate, bitDepth, buf.Channels, 1)

	ib := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels,
			SampleRate:  buf.SampleRate,
		},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(buf.Data)),
	}

	for i, s := range buf.Data {
		ib.Data[i] = convert(s)
	}

	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav file: %w", err)
	}

	return nil
}

// sampleConverter maps a bit depth to the float-to-PCM conversion for
// one sample.
func sampleConverter(bitDepth int) (func(float32) int, error) {
	switch bitDepth {
	case 16:
		return func(s float32) int { return int(utils.Float32ToInt16(s)) }, nil
	case 24:
		return func(s float32) int { return clampScale(s, 8388607) }, nil
	case 32:
		return func(s float32) int { return clampScale(s, 2147483647) }, nil
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}
}

func clampScale(s float32, maxVal int) int {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}

	return int(float64(s) * float64(maxVal))
}
