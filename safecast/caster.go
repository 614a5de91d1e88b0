// SPDX-License-Identifier: EPL-2.0

package safecast

import (
	"fmt"
	"math"
)

// PrecisionMode controls how much rounding error a conversion tolerates.
type PrecisionMode int

const (
	// PrecisionStrict rejects any detectable precision loss.
	PrecisionStrict PrecisionMode = iota
	// PrecisionTolerant permits fractional input; values within epsilon
	// of an integer snap to it before the rounding mode applies, so
	// ratio math like 1087.9999999 floors to 1088 rather than 1087.
	PrecisionTolerant
	// PrecisionAdaptive applies the rounding mode directly.
	PrecisionAdaptive
)

// OverflowBehavior controls what happens when a value exceeds the target
// range.
type OverflowBehavior int

const (
	// OverflowFail returns ErrValueTooLarge.
	OverflowFail OverflowBehavior = iota
	// OverflowClamp clamps into the target range.
	OverflowClamp
	// OverflowSaturate pins to the nearer range end.
	OverflowSaturate
)

// RoundingMode selects the rounding applied before integer conversion.
type RoundingMode int

const (
	RoundNearest RoundingMode = iota
	RoundFloor
	RoundCeiling
	RoundTruncate
)

// ValidationLevel controls how much input checking a conversion performs.
type ValidationLevel int

const (
	// ValidationNone skips all input checks.
	ValidationNone ValidationLevel = iota
	// ValidationBasic checks finiteness only.
	ValidationBasic
	// ValidationFull also rejects negative input.
	ValidationFull
)

// Caster is a conversion policy: four independent axes selected by the
// caller and passed explicitly to each conversion. The zero value is not
// useful; construct through NewCaster or a preset.
type Caster struct {
	precision PrecisionMode
	epsilon   float64
	overflow  OverflowBehavior
	rounding  RoundingMode
	level     ValidationLevel
}

// NewCaster returns the default policy: strict precision, failing
// overflow, nearest rounding, full validation.
func NewCaster() Caster {
	return Caster{
		precision: PrecisionStrict,
		overflow:  OverflowFail,
		rounding:  RoundNearest,
		level:     ValidationFull,
	}
}

// ForAudio returns the policy used by resampling math: tolerant precision,
// clamping overflow, nearest rounding, basic validation.
func ForAudio() Caster {
	return Caster{
		precision: PrecisionTolerant,
		epsilon:   1e-6,
		overflow:  OverflowClamp,
		rounding:  RoundNearest,
		level:     ValidationBasic,
	}
}

// ForDatabase returns the policy for count bookkeeping: strict, failing,
// truncating, fully validated.
func ForDatabase() Caster {
	return Caster{
		precision: PrecisionStrict,
		overflow:  OverflowFail,
		rounding:  RoundTruncate,
		level:     ValidationFull,
	}
}

// ForRealtime returns the policy for hot paths where validation cost
// matters: adaptive precision, clamping, truncating, no validation.
func ForRealtime() Caster {
	return Caster{
		precision: PrecisionAdaptive,
		overflow:  OverflowClamp,
		rounding:  RoundTruncate,
		level:     ValidationNone,
	}
}

// WithPrecision returns a copy with the precision mode replaced. epsilon
// is only meaningful for PrecisionTolerant.
func (c Caster) WithPrecision(mode PrecisionMode, epsilon float64) Caster {
	c.precision = mode
	c.epsilon = epsilon
	return c
}

// WithOverflow returns a copy with the overflow behavior replaced.
func (c Caster) WithOverflow(behavior OverflowBehavior) Caster {
	c.overflow = behavior
	return c
}

// WithRounding returns a copy with the rounding mode replaced.
func (c Caster) WithRounding(mode RoundingMode) Caster {
	c.rounding = mode
	return c
}

// WithValidation returns a copy with the validation level replaced.
func (c Caster) WithValidation(level ValidationLevel) Caster {
	c.level = level
	return c
}

// FloatToInt converts value to int64 under the configured policy.
func (c Caster) FloatToInt(value float64) (int64, error) {
	if c.level != ValidationNone && !isFinite(value) {
		return 0, fmt.Errorf("%w: %v", ErrNotFinite, value)
	}

	if c.level == ValidationFull && value < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeValue, value)
	}

	input := value
	if c.precision == PrecisionTolerant {
		if nearest := math.Round(value); math.Abs(nearest-value) <= c.epsilon {
			input = nearest
		}
	}

	var rounded float64
	switch c.rounding {
	case RoundNearest:
		rounded = math.Round(input)
	case RoundFloor:
		rounded = math.Floor(input)
	case RoundCeiling:
		rounded = math.Ceil(input)
	case RoundTruncate:
		rounded = math.Trunc(input)
	}

	if c.precision == PrecisionStrict && math.Abs(rounded-value) > EpsilonFloat64 {
		return 0, fmt.Errorf("%w: %v", ErrPrecisionLoss, value)
	}

	// 2^63 is the first float64 above int64 range.
	const limit = float64(1 << 63)

	if rounded >= limit || rounded < -limit {
		if c.overflow == OverflowFail {
			return 0, fmt.Errorf("%w: %v outside int64 range", ErrValueTooLarge, rounded)
		}

		// Clamp and Saturate both pin to the nearer range end here.
		if rounded > 0 {
			return math.MaxInt64, nil
		}

		return math.MinInt64, nil
	}

	return int64(rounded), nil
}

// IntToInt converts value to a non-negative count bounded by maxAllowed
// under the configured policy. OverflowClamp and OverflowSaturate both pin
// to the bound instead of failing.
func (c Caster) IntToInt(value int64, maxAllowed uint64) (uint64, error) {
	if c.level == ValidationFull && value < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeValue, value)
	}

	if value < 0 {
		return 0, nil
	}

	unsigned := uint64(value)
	if unsigned > maxAllowed {
		if c.overflow == OverflowFail {
			return 0, fmt.Errorf("%w: %d > %d", ErrValueTooLarge, value, maxAllowed)
		}

		return maxAllowed, nil
	}

	return unsigned, nil
}

// ConvertSampleRate scales a sample count from one rate to another. This
// is the tolerant path used by resampling: the fractional result is
// rounded per policy rather than rejected.
func (c Caster) ConvertSampleRate(fromRate, toRate, samples int) (int, error) {
	if fromRate <= 0 || toRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate cannot be zero or negative", ErrInvalidInput)
	}

	count, err := SamplesToFloat(samples)
	if err != nil {
		return 0, err
	}

	ratio := float64(toRate) / float64(fromRate)

	n, err := c.FloatToInt(count * ratio)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

// TimeToSamples converts seconds to a sample count under the configured
// policy.
func (c Caster) TimeToSamples(seconds float64, sampleRate int) (int, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate cannot be zero or negative", ErrInvalidInput)
	}

	n, err := c.FloatToInt(seconds * float64(sampleRate))
	if err != nil {
		return 0, err
	}

	return int(n), nil
}
