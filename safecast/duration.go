// SPDX-License-Identifier: EPL-2.0

package safecast

import (
	"fmt"
	"time"
)

// MaxSampleRate is the highest sample rate accepted by the duration
// helpers, in Hz.
const MaxSampleRate = 192_000

// DurationToSamples converts a duration to an exact sample count at the
// given rate. This is the strict path used for index arithmetic: a
// fractional sample count fails with ErrPrecisionLoss instead of being
// rounded.
func DurationToSamples(d time.Duration, sampleRate int) (int, error) {
	if err := checkSampleRate(sampleRate); err != nil {
		return 0, err
	}

	if d < 0 {
		return 0, fmt.Errorf("%w: duration %v", ErrNegativeValue, d)
	}

	samples := d.Seconds() * float64(sampleRate)

	n, err := FloatToInt(samples, MaxExactFloat64Int)
	if err != nil {
		return 0, fmt.Errorf("duration %v at %d Hz: %w", d, sampleRate, err)
	}

	return int(n), nil
}

// SamplesToDuration converts a sample count back to a duration at the
// given rate.
func SamplesToDuration(samples, sampleRate int) (time.Duration, error) {
	if err := checkSampleRate(sampleRate); err != nil {
		return 0, err
	}

	if samples < 0 {
		return 0, fmt.Errorf("%w: %d samples", ErrNegativeValue, samples)
	}

	secs := float64(samples) / float64(sampleRate)

	return time.Duration(secs * float64(time.Second)), nil
}

// SamplesToFloat converts a sample count to float64 for ratio math. Counts
// beyond 2^53 cannot be represented exactly.
func SamplesToFloat(samples int) (float64, error) {
	if samples < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeValue, samples)
	}

	if samples > MaxExactFloat64Int {
		return 0, fmt.Errorf("%w: %d samples", ErrPrecisionLoss, samples)
	}

	return float64(samples), nil
}

// FloatToSamples converts a float64 to an exact sample index. Fractional
// values fail with ErrPrecisionLoss; this is the strict path.
func FloatToSamples(value float64) (int, error) {
	n, err := FloatToInt(value, MaxExactFloat64Int)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

// SampleCountToFloat32 converts a sample count to float32 for RMS style
// math, failing when the count exceeds exact float32 range.
func SampleCountToFloat32(samples int) (float32, error) {
	if samples < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeValue, samples)
	}

	if samples > MaxExactFloat32Int {
		return 0, fmt.Errorf("%w: %d samples", ErrPrecisionLoss, samples)
	}

	return float32(samples), nil
}

func checkSampleRate(sampleRate int) error {
	if sampleRate <= 0 || sampleRate > MaxSampleRate {
		return fmt.Errorf("%w: sample rate %d Hz (must be 1..%d)",
			ErrInvalidInput, sampleRate, MaxSampleRate)
	}

	return nil
}
