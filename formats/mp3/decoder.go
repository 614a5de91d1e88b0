// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audpipe/audio"
)

// pcmStream is the part of gomp3.Decoder the decoder consumes. The
// stream yields interleaved stereo 16-bit little-endian PCM.
type pcmStream interface {
	io.Reader
	SampleRate() int
}

// Decoder reads a complete MP3 file into a sample buffer. Output is
// always two channels; go-mp3 upmixes mono sources.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.SampleBuffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return decodeStream(dec)
}

func decodeStream(dec pcmStream) (*audio.SampleBuffer, error) {
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 stream: %w", err)
	}

	// Drop a trailing partial sample, then a trailing partial frame.
	samples := len(raw) / 2
	samples -= samples % 2

	data := make([]float32, samples)
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2]))
		data[i] = float32(v) / 32768.0
	}

	buf := &audio.SampleBuffer{
		Data:       data,
		SampleRate: dec.SampleRate(),
		Channels:   2,
		Format:     audio.FormatI16,
	}

	return buf, nil
}
