// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/audpipe/process"
)

// maxDefaultWorkers caps the default pool size; file decoding is
// memory-heavy and more workers than cores buys nothing.
const maxDefaultWorkers = 8

// Options tune a batch run.
type Options struct {
	// Workers bounds concurrent file processing. Zero picks
	// min(NumCPU, 8).
	Workers int

	// FileTimeout is the elapsed-time limit per file. Zero disables the
	// guard. The check is cooperative: a file that overruns is recorded
	// as timed out once its processing returns.
	FileTimeout time.Duration

	// Output controls where and how processed files are written.
	Output process.OutputConfig

	// Logger receives per-file progress. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns a run with automatic worker count, no timeout
// and default output settings.
func DefaultOptions() Options {
	return Options{
		Output: process.DefaultOutputConfig(),
	}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return min(runtime.NumCPU(), maxDefaultWorkers)
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return zap.NewNop()
}
