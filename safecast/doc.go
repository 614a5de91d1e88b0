// SPDX-License-Identifier: EPL-2.0

// Package safecast provides checked numeric conversions for audio
// processing code.
//
// Every conversion that crosses a precision or sign boundary goes through
// an explicit function that returns an error instead of silently
// truncating or wrapping:
//
//	samples, err := safecast.FloatToInt(pos, float64(len(data)))
//	if err != nil {
//	    // handle PrecisionLoss / ValueTooLarge / ...
//	}
//
// # Failure kinds
//
// All failures wrap one of the sentinel errors, so callers can match with
// errors.Is:
//   - ErrNotFinite: NaN or infinity
//   - ErrNegativeValue: negative where non-negative is required
//   - ErrValueTooLarge: exceeds the caller-supplied bound
//   - ErrPrecisionLoss: fractional part or round-trip mismatch
//   - ErrInvalidInput: malformed parameter (zero sample rate etc.)
//
// # Policies
//
// The Caster type makes the checking behavior configurable along four
// independent axes (precision, overflow, rounding, validation). Use the
// presets for common contexts:
//
//	c := safecast.ForAudio() // tolerant, clamping, rounds to nearest
//	frames, err := c.ConvertSampleRate(44100, 48000, frames)
//
// Database-style bookkeeping should use ForDatabase (strict, failing),
// while resampling math uses ForAudio and is allowed to round.
//
// # Duration helpers
//
// DurationToSamples and SamplesToDuration convert between time and sample
// counts. The strict form fails on fractional results; the tolerant form
// (on Caster) rounds according to the configured rounding mode.
package safecast
