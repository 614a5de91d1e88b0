// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory sample representation shared by
// every processing stage.
//
// # Sample Buffers
//
// A SampleBuffer holds interleaved float32 samples in [-1.0, 1.0]
// together with the sample rate, the channel count and the source
// sample format:
//
//	buf := audio.NewSampleBuffer(44100, 2, 44100)
//	fmt.Println(buf.Frames(), buf.Duration())
//
// For stereo audio the layout is:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// The length of Data is always a whole number of frames; Validate
// checks that invariant along with the sample rate and channel bounds
// and returns one of the package's sentinel errors when it does not
// hold:
//
//	if err := buf.Validate(); err != nil {
//	    if errors.Is(err, audio.ErrChannelMismatch) {
//	        // ragged frame
//	    }
//	}
//
// # Limits
//
// Sample rates up to MaxSampleRate (192kHz) and channel counts up to
// MaxChannels (32) are accepted. An empty Data slice is valid; stages
// treat it as a no-op.
package audio
