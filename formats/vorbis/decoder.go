// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audpipe/audio"
)

// Decoder reads a complete Ogg Vorbis file into a sample buffer.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.SampleBuffer, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding ogg vorbis stream: %w", err)
	}

	buf := &audio.SampleBuffer{
		Data:       data,
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
		Format:     audio.FormatF32,
	}

	return buf, nil
}
