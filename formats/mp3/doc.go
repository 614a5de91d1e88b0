// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// Decoding loads the complete file into an audio.SampleBuffer.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	buf, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Samples come back as float32 values in the range [-1.0, 1.0].
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2; go-mp3 upmixes mono sources
//   - Sample rate: taken from the file (typically 44.1kHz or 48kHz)
//
// To convert to mono or another rate, run the buffer through the
// processing pipeline:
//
//	p, _ := process.NewPipelineWithSettings(16000, 1, false, false)
//	err := p.ProcessBuffer(buf)
//
// # Limitations
//
// MP3 writing is not supported (decoding only).
package mp3
