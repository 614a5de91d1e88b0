// SPDX-License-Identifier: EPL-2.0

package fileio

import (
	"github.com/ik5/audpipe/formats/aiff"
	"github.com/ik5/audpipe/formats/mp3"
	"github.com/ik5/audpipe/formats/vorbis"
	"github.com/ik5/audpipe/formats/wav"
)

// DefaultRegistry returns a registry with every built-in codec bound:
// WAV, MP3, Ogg Vorbis and AIFF decoding, WAV encoding.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.RegisterDecoder("wav", wav.Decoder{})
	r.RegisterDecoder("mp3", mp3.Decoder{})
	r.RegisterDecoder("ogg", vorbis.Decoder{})
	r.RegisterDecoder("oga", vorbis.Decoder{})
	r.RegisterDecoder("aiff", aiff.Decoder{})
	r.RegisterDecoder("aif", aiff.Decoder{})

	r.RegisterEncoder("wav", wav.Encoder{})

	return r
}

// Default returns an IO over the default registry.
func Default() *IO {
	return New(DefaultRegistry())
}
