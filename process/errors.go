// SPDX-License-Identifier: EPL-2.0

package process

import (
	"errors"
	"fmt"
	"time"
)

// Kind identifies the failure class of a processing error. The set is
// closed: every fallible path in this package and in batch maps onto
// exactly one kind.
type Kind int

const (
	KindChannelMixer Kind = iota
	KindResampler
	KindNormalizer
	KindSilenceDetector
	KindConfiguration
	KindBufferValidation
	KindSampleRateValidation
	KindChannelValidation
	KindInvalidInput
	KindFileIO
	KindPipeline
	KindTimeout
	KindMemory
	KindParallel
)

func (k Kind) String() string {
	switch k {
	case KindChannelMixer:
		return "channel mixer"
	case KindResampler:
		return "resampler"
	case KindNormalizer:
		return "normalizer"
	case KindSilenceDetector:
		return "silence detector"
	case KindConfiguration:
		return "configuration"
	case KindBufferValidation:
		return "buffer validation"
	case KindSampleRateValidation:
		return "sample rate validation"
	case KindChannelValidation:
		return "channel validation"
	case KindInvalidInput:
		return "invalid input"
	case KindFileIO:
		return "file I/O"
	case KindPipeline:
		return "pipeline"
	case KindTimeout:
		return "timeout"
	case KindMemory:
		return "memory"
	case KindParallel:
		return "parallel"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type of the processing layer. It carries the
// failure kind, the configuration field involved (when known) and the
// wrapped cause. Timeout errors additionally carry the elapsed time and
// the limit that was exceeded.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Elapsed time.Duration
	Limit   time.Duration
	Err     error
}

func (e *Error) Error() string {
	if e.Kind == KindTimeout {
		return fmt.Sprintf("timeout: operation took %v, limit %v", e.Elapsed, e.Limit)
	}

	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is or wraps an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error

	return errors.As(err, &pe) && pe.Kind == kind
}

// KindOf returns the kind of the Error wrapped in err. The boolean is
// false when err does not carry an Error.
func KindOf(err error) (Kind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}

	return 0, false
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// wrapError attaches a kind and message to an underlying cause. Casting
// failures from safecast come through here so callers see the stage's own
// kind rather than a bare conversion error.
func wrapError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

func configError(field, format string, args ...any) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewTimeoutError builds the timeout failure carrying both the elapsed
// time and the limit that was exceeded.
func NewTimeoutError(elapsed, limit time.Duration) *Error {
	return &Error{
		Kind:    KindTimeout,
		Elapsed: elapsed,
		Limit:   limit,
	}
}
