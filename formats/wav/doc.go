// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package reads and writes integer PCM WAV files through
// github.com/go-audio/wav. Decoding loads the complete file into an
// audio.SampleBuffer; encoding writes a buffer back as PCM at a chosen
// bit depth.
//
// # Supported Formats
//
// Decoding:
//   - PCM at 8, 16, 24 and 32 bits
//   - Any channel count and sample rate
//
// Encoding:
//   - PCM at 16, 24 and 32 bits
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	buf, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(buf.SampleRate, buf.Channels, buf.Frames())
//
// Samples come back as float32 values in the range [-1.0, 1.0],
// interleaved by channel.
//
// # Writing WAV Files
//
//	encoder := wav.Encoder{}
//	file, _ := os.Create("output.wav")
//	err := encoder.Encode(file, buf, 16)
//
// Encode needs an io.WriteSeeker because the RIFF header is patched
// with the final sizes on Close; an *os.File qualifies.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
//   - ErrUnsupportedBitDepth: PCM bit depth outside the supported set
//
// Example:
//
//	buf, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
