// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Decoding loads the complete file into an audio.SampleBuffer.
//
// # Supported Formats
//
//   - Integer PCM at 8, 16, 24 and 32 bits
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	buf, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Samples come back as float32 values in the range [-1.0, 1.0],
// interleaved by channel.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
//   - ErrUnsupportedBitDepth: PCM bit depth outside the supported set
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but uses big-endian byte order and stores the
// sample rate as an 80-bit float. The decoder handles the differences
// automatically; unlike WAV, AIFF 8-bit PCM is signed.
//
// # Limitations
//
// AIFF writing is not supported (decoding only). AIFF-C compressed
// variants are rejected by the underlying decoder.
package aiff
