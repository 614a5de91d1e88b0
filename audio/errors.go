// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrEmptyBuffer reports a buffer with no sample data.
	ErrEmptyBuffer = errors.New("buffer contains no samples")
	// ErrChannelMismatch reports a data length that is not a whole number
	// of frames.
	ErrChannelMismatch = errors.New("data length must be multiple of channels")
	// ErrInvalidChannels reports a channel count outside 1..MaxChannels.
	ErrInvalidChannels = errors.New("invalid channel count")
	// ErrInvalidSampleRate reports a sample rate outside 1..MaxSampleRate.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
)
