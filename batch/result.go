// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"strings"
	"time"
)

// Status classifies one file's outcome.
type Status int

const (
	// StatusProcessed means the file was read, processed and written.
	StatusProcessed Status = iota
	// StatusFailed means reading, processing or writing failed.
	StatusFailed
	// StatusCancelled means the run was cancelled before this file
	// started.
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusProcessed:
		return "processed"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// FileOutcome records what happened to a single input file.
type FileOutcome struct {
	// Path of the input file.
	Path string
	// OutputPath the processed file was written to, empty unless
	// processed.
	OutputPath string
	// Status of the file.
	Status Status
	// Err holds the failure, nil unless Status is StatusFailed.
	Err error
	// Elapsed wall time spent on this file.
	Elapsed time.Duration
}

// Result aggregates a whole batch run.
type Result struct {
	// Outcomes in input order, one per requested file.
	Outcomes []FileOutcome
	// Processed, Failed and Cancelled file counts.
	Processed int
	Failed    int
	Cancelled int
	// TotalTime is the wall time of the run.
	TotalTime time.Duration
}

// SuccessRate returns processed files as a fraction of all requested
// files, in [0, 1]. An empty run rates 0.
func (r *Result) SuccessRate() float64 {
	if len(r.Outcomes) == 0 {
		return 0
	}

	return float64(r.Processed) / float64(len(r.Outcomes))
}

// AverageTime returns the mean wall time of the files that actually ran
// (processed or failed). Zero when nothing ran.
func (r *Result) AverageTime() time.Duration {
	ran := 0
	var total time.Duration

	for _, o := range r.Outcomes {
		if o.Status == StatusCancelled {
			continue
		}
		ran++
		total += o.Elapsed
	}

	if ran == 0 {
		return 0
	}

	return total / time.Duration(ran)
}

// Summary renders one human-readable report of the run, naming every
// failed file with its error.
func (r *Result) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "processed %d/%d files in %v",
		r.Processed, len(r.Outcomes), r.TotalTime.Round(time.Millisecond))

	if avg := r.AverageTime(); avg > 0 {
		fmt.Fprintf(&b, " (avg %v/file)", avg.Round(time.Millisecond))
	}

	if r.Failed > 0 {
		fmt.Fprintf(&b, ", %d failed", r.Failed)
	}
	if r.Cancelled > 0 {
		fmt.Fprintf(&b, ", %d cancelled", r.Cancelled)
	}

	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			fmt.Fprintf(&b, "\n  failed: %s: %v", o.Path, o.Err)
		}
	}

	return b.String()
}
