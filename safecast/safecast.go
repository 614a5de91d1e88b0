// SPDX-License-Identifier: EPL-2.0

package safecast

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNotFinite     = errors.New("value is not finite")
	ErrNegativeValue = errors.New("negative value not allowed")
	ErrValueTooLarge = errors.New("value exceeds maximum allowed")
	ErrPrecisionLoss = errors.New("precision would be lost in conversion")
	ErrInvalidInput  = errors.New("invalid input")
)

// Precision limits for exact integer representation in floating point.
const (
	// MaxExactFloat32Int is the largest integer exactly representable in
	// a float32 (2^24).
	MaxExactFloat32Int = 1 << 24

	// MaxExactFloat64Int is the largest integer exactly representable in
	// a float64 (2^53).
	MaxExactFloat64Int = 1 << 53

	// EpsilonFloat32 is the comparison epsilon for float32 values.
	EpsilonFloat32 = 1e-6

	// EpsilonFloat64 is the comparison epsilon for float64 values.
	EpsilonFloat64 = 1e-12
)

// IntToInt converts a signed integer to a non-negative integer bounded by
// maxAllowed. It fails with ErrNegativeValue for negative input and
// ErrValueTooLarge when the value exceeds the bound.
func IntToInt(value int64, maxAllowed uint64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeValue, value)
	}

	unsigned := uint64(value)
	if unsigned > maxAllowed {
		return 0, fmt.Errorf("%w: %d > %d", ErrValueTooLarge, value, maxAllowed)
	}

	return unsigned, nil
}

// FloatToInt converts a float64 to a non-negative integer bounded by
// maxAllowed.
//
// It fails with ErrNotFinite for NaN or infinity, ErrNegativeValue for
// negative input, ErrValueTooLarge when the value exceeds the bound, and
// ErrPrecisionLoss when the value has a fractional part or does not
// survive an int64 round trip within double precision.
func FloatToInt(value float64, maxAllowed float64) (int64, error) {
	if !isFinite(value) {
		return 0, fmt.Errorf("%w: %v", ErrNotFinite, value)
	}

	if value < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeValue, value)
	}

	if value > maxAllowed {
		return 0, fmt.Errorf("%w: %v > %v", ErrValueTooLarge, value, maxAllowed)
	}

	if _, frac := math.Modf(value); frac != 0 {
		return 0, fmt.Errorf("%w: %v", ErrPrecisionLoss, value)
	}

	candidate := int64(value)
	if math.Abs(float64(candidate)-value) > EpsilonFloat64 {
		return 0, fmt.Errorf("%w: %v", ErrPrecisionLoss, value)
	}

	return candidate, nil
}

// FloatToFloat32 narrows a float64 to float32 with bounds and precision
// checking. maxAbs bounds the absolute value.
func FloatToFloat32(value float64, maxAbs float64) (float32, error) {
	if !isFinite(value) {
		return 0, fmt.Errorf("%w: %v", ErrNotFinite, value)
	}

	if math.Abs(value) > maxAbs {
		return 0, fmt.Errorf("%w: %v > %v", ErrValueTooLarge, value, maxAbs)
	}

	narrowed := float32(value)
	if math.Abs(float64(narrowed)-value) > EpsilonFloat64 {
		return 0, fmt.Errorf("%w: %v", ErrPrecisionLoss, value)
	}

	return narrowed, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
