// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audpipe/audio"
)

// pcmReader is the part of aiff.Decoder the conversion loop consumes,
// split out so tests can drive it directly.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder reads a complete AIFF file into a sample buffer. Integer PCM
// at 8, 16, 24 and 32 bits is supported.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.SampleBuffer, error) {
	rs, err := seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return readPCM(dec, int(dec.BitDepth))
}

// readPCM drains the decoder in fixed-size chunks and normalizes the
// integer samples by the source bit depth. AIFF PCM is signed at every
// depth, 8-bit included.
func readPCM(dec pcmReader, bitDepth int) (*audio.SampleBuffer, error) {
	scale, sampleFormat, ok := pcmScale(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	ib := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: format,
	}

	var data []float32

	for {
		ib.Data = ib.Data[:cap(ib.Data)]

		n, err := dec.PCMBuffer(ib)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading aiff samples: %w", err)
		}

		for i := 0; i < n; i++ {
			data = append(data, float32(ib.Data[i])/scale)
		}

		if err == io.EOF || n == 0 {
			break
		}
	}

	// Guard against a truncated final frame.
	data = data[:len(data)-len(data)%format.NumChannels]

	buf := &audio.SampleBuffer{
		Data:       data,
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		Format:     sampleFormat,
	}

	return buf, nil
}

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

// seekable adapts any reader to the ReadSeeker the aiff decoder needs,
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
