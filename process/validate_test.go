// SPDX-License-Identifier: EPL-2.0

package process

import (
	"errors"
	"testing"
)

func TestValidateRange(t *testing.T) {
	t.Parallel()

	if err := ValidateRange(5, 1, 32, "Target channels"); err != nil {
		t.Fatalf("ValidateRange(5) error = %v", err)
	}

	err := ValidateRange(0, 1, 32, "Target channels")
	if err == nil {
		t.Fatal("ValidateRange(0) did not fail")
	}
	want := "configuration: Target channels must be at least 1 (got 0)"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}

	err = ValidateRange(33, 1, 32, "Target channels")
	if err == nil {
		t.Fatal("ValidateRange(33) did not fail")
	}
	want = "configuration: Target channels must be at most 32 (got 33)"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}

	var pe *Error
	if !errors.As(err, &pe) || pe.Field != "Target channels" {
		t.Errorf("error field = %+v", err)
	}
}

func TestValidateLessThan(t *testing.T) {
	t.Parallel()

	if err := ValidateLessThan(-1.0, 0.01, "Peak level"); err != nil {
		t.Fatalf("ValidateLessThan(-1.0) error = %v", err)
	}

	err := ValidateLessThan(0.5, 0.01, "Peak level")
	if err == nil {
		t.Fatal("ValidateLessThan(0.5) did not fail")
	}
	want := "configuration: Peak level must be less than 0.01 (got 0.5)"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestValidatePositiveNegative(t *testing.T) {
	t.Parallel()

	if err := ValidatePositive(1.0, "Headroom"); err != nil {
		t.Fatalf("ValidatePositive(1.0) error = %v", err)
	}
	if err := ValidatePositive(0.0, "Headroom"); err == nil {
		t.Error("ValidatePositive(0.0) did not fail")
	}

	if err := ValidateNegative(-16.0, "Target loudness"); err != nil {
		t.Fatalf("ValidateNegative(-16.0) error = %v", err)
	}

	err := ValidateNegative(0.0, "Target loudness")
	if err == nil {
		t.Fatal("ValidateNegative(0.0) did not fail")
	}
	want := "configuration: Target loudness must be negative (got 0)"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestValidateDirectoryExists(t *testing.T) {
	t.Parallel()

	if err := ValidateDirectoryExists(t.TempDir(), "Output directory"); err != nil {
		t.Fatalf("existing directory error = %v", err)
	}

	if err := ValidateDirectoryExists("/nonexistent/nowhere", "Output directory"); err == nil {
		t.Error("missing directory did not fail")
	}
}

func TestValidateNonEmptyString(t *testing.T) {
	t.Parallel()

	if err := ValidateNonEmptyString("_processed", "Filename suffix"); err != nil {
		t.Fatalf("non-empty string error = %v", err)
	}

	err := ValidateNonEmptyString("", "Filename suffix")
	if err == nil {
		t.Fatal("empty string did not fail")
	}
	want := "configuration: Filename suffix cannot be empty"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}
