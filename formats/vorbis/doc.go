// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files. Decoding loads the complete file into an audio.SampleBuffer.
//
// # Decoding Vorbis Files
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	buf, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Samples come back as float32 values in the range [-1.0, 1.0],
// interleaved by channel:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// # Output Format
//
// Vorbis decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: taken from the file (mono or stereo typically)
//   - Sample rate: taken from the file (commonly 44.1kHz or 48kHz)
//
// Vorbis decodes natively to float, so no quantization is introduced on
// the way in.
//
// # Limitations
//
// Vorbis encoding is not supported (decoding only).
package vorbis
