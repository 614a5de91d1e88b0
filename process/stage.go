// SPDX-License-Identifier: EPL-2.0

package process

import (
	"errors"

	"github.com/ik5/audpipe/audio"
)

// Stage is one transformation step of the pipeline. Implementations
// mutate the buffer in place and may change its sample rate, channel
// count, or length. On failure the buffer must be left exactly as it was
// before the call; every stage here builds its replacement data first and
// assigns last.
type Stage interface {
	// Name of the stage for logs and error context.
	Name() string
	// Validate checks the stage configuration without touching data.
	Validate() error
	// Process applies the transformation to the buffer in place.
	Process(buf *audio.SampleBuffer) error
	// Reset clears transient state without discarding configuration.
	Reset()
}

// validateBuffer runs the structural buffer checks and maps each failure
// onto its cross-cutting kind.
func validateBuffer(buf *audio.SampleBuffer) error {
	err := buf.Validate()
	if err == nil {
		return nil
	}

	kind := KindBufferValidation
	switch {
	case errors.Is(err, audio.ErrInvalidChannels):
		kind = KindChannelValidation
	case errors.Is(err, audio.ErrInvalidSampleRate):
		kind = KindSampleRateValidation
	}

	return wrapError(kind, err, "invalid buffer")
}
