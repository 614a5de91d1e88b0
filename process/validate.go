// SPDX-License-Identifier: EPL-2.0

package process

import (
	"cmp"
	"os"
)

// ValidateRange checks that value lies in the inclusive range [min, max].
// name appears in the error message as the field label.
func ValidateRange[T cmp.Ordered](value, min, max T, name string) error {
	if value < min {
		return configError(name, "%s must be at least %v (got %v)", name, min, value)
	}

	if value > max {
		return configError(name, "%s must be at most %v (got %v)", name, max, value)
	}

	return nil
}

// ValidateLessThan checks that value is strictly less than max.
func ValidateLessThan[T cmp.Ordered](value, max T, name string) error {
	if value >= max {
		return configError(name, "%s must be less than %v (got %v)", name, max, value)
	}

	return nil
}

// ValidatePositive checks that value is strictly greater than the zero
// value of its type.
func ValidatePositive[T cmp.Ordered](value T, name string) error {
	var zero T
	if value <= zero {
		return configError(name, "%s must be positive (got %v)", name, value)
	}

	return nil
}

// ValidateNegative checks that value is strictly less than the zero value
// of its type.
func ValidateNegative[T cmp.Ordered](value T, name string) error {
	var zero T
	if value >= zero {
		return configError(name, "%s must be negative (got %v)", name, value)
	}

	return nil
}

// ValidateDirectoryExists checks that path names an existing directory.
func ValidateDirectoryExists(path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return configError(name, "%s does not exist: %s", name, path)
	}

	if !info.IsDir() {
		return configError(name, "%s is not a directory: %s", name, path)
	}

	return nil
}

// ValidateNonEmptyString checks that value is not the empty string.
func ValidateNonEmptyString(value, name string) error {
	if value == "" {
		return configError(name, "%s cannot be empty", name)
	}

	return nil
}
