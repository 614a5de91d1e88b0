// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/audpipe/audio"
)

// Decoder reads a complete WAV file into a sample buffer. Integer PCM
// at 8, 16, 24 and 32 bits is supported.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.SampleBuffer, error) {
	rs, err := seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}
	if ib == nil || ib.Format == nil {
		return nil, ErrUnsupportedWavLayout
	}

	bitDepth := int(dec.BitDepth)
	scale, format, ok := pcmScale(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	data := make([]float32, len(ib.Data))
	if bitDepth == 8 {
		// 8-bit WAV is unsigned, centered on 128.
		for i, s := range ib.Data {
			data[i] = (float32(s) - 128) / scale
		}
	} else {
		for i, s := range ib.Data {
			data[i] = float32(s) / scale
		}
	}

	buf := &audio.SampleBuffer{
		Data:       data,
		SampleRate: ib.Format.SampleRate,
		Channels:   ib.Format.NumChannels,
		Format:     format,
	}

	return buf, nil
}

// pcmScale maps a PCM bit depth to its normalization divisor and the
// matching sample format tag.
func pcmScale(bitDepth int) (float32, audio.SampleFormat, bool) {
	switch bitDepth {
	case 8:
		return 128.0, audio.FormatU8, true
	case 16:
		return 32768.0, audio.FormatI16, true
	case 24:
		return 8388608.0, audio.FormatI24, true
	case 32:
		return 2147483648.0, audio.FormatI32, true
	default:
		return 0, 0, false
	}
}

// seekable adapts any reader to the ReadSeeker the wav decoder needs,
// buffering the whole stream when the source cannot seek.
func seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}
