// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/audpipe/audio"
	"github.com/ik5/audpipe/fileio"
	"github.com/ik5/audpipe/process"
)

// Reader loads an audio file into a sample buffer.
type Reader interface {
	ReadAudio(path string) (*audio.SampleBuffer, error)
}

// Writer stores a sample buffer as an audio file.
type Writer interface {
	WriteAudio(path string, buf *audio.SampleBuffer) error
}

// ReadWriter combines both sides of the file collaborator.
type ReadWriter interface {
	Reader
	Writer
}

// Processor drives a pipeline across many files. Each file owns its own
// buffer and a cloned pipeline, so files never share mutable stage
// state; only result aggregation is synchronized.
type Processor struct {
	pipeline *process.Pipeline
	files    ReadWriter
	opts     Options
	logger   *zap.Logger
}

// NewProcessor validates the collaborators and returns the batch
// processor.
func NewProcessor(pipeline *process.Pipeline, files ReadWriter, opts Options) (*Processor, error) {
	if pipeline == nil {
		return nil, &process.Error{
			Kind:    process.KindParallel,
			Message: "batch processor needs a configured pipeline",
		}
	}
	if pipeline.State() == process.StateUnconfigured {
		return nil, &process.Error{
			Kind:    process.KindParallel,
			Message: "batch processor needs a configured pipeline",
		}
	}
	if files == nil {
		return nil, &process.Error{
			Kind:    process.KindParallel,
			Message: "batch processor needs a file reader/writer",
		}
	}
	if err := opts.Output.Validate(); err != nil {
		return nil, err
	}

	return &Processor{
		pipeline: pipeline,
		files:    files,
		opts:     opts,
		logger:   opts.logger(),
	}, nil
}

// Run processes every path with bounded concurrency and returns the
// aggregated result. One file's failure never aborts the batch.
// Cancellation is cooperative: it is checked between files, and files
// that have not started yet are recorded as cancelled.
func (b *Processor) Run(ctx context.Context, paths []string) *Result {
	started := time.Now()

	result := &Result{
		Outcomes: make([]FileOutcome, len(paths)),
	}

	var mu sync.Mutex

	record := func(i int, outcome FileOutcome) {
		mu.Lock()
		defer mu.Unlock()

		result.Outcomes[i] = outcome
		switch outcome.Status {
		case StatusProcessed:
			result.Processed++
		case StatusFailed:
			result.Failed++
		case StatusCancelled:
			result.Cancelled++
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(b.opts.workers())

	b.logger.Info("batch started",
		zap.Int("files", len(paths)),
		zap.Int("workers", b.opts.workers()))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if ctx.Err() != nil {
				record(i, FileOutcome{Path: path, Status: StatusCancelled})
				return nil
			}

			record(i, b.processFile(path))

			return nil
		})
	}

	// Workers only record outcomes, they never return errors.
	_ = g.Wait()

	result.TotalTime = time.Since(started)

	b.logger.Info("batch finished",
		zap.Int("processed", result.Processed),
		zap.Int("failed", result.Failed),
		zap.Int("cancelled", result.Cancelled),
		zap.Duration("elapsed", result.TotalTime))

	return result
}

// processFile runs one file end to end: read, process on a cloned
// pipeline, write to the derived output path.
func (b *Processor) processFile(path string) FileOutcome {
	started := time.Now()

	fail := func(err error) FileOutcome {
		elapsed := time.Since(started)

		b.logger.Warn("file failed",
			zap.String("path", path),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))

		return FileOutcome{
			Path:    path,
			Status:  StatusFailed,
			Err:     err,
			Elapsed: elapsed,
		}
	}

	b.logger.Debug("file started", zap.String("path", path))

	buf, err := b.files.ReadAudio(path)
	if err != nil {
		return fail(&process.Error{
			Kind:    process.KindFileIO,
			Message: "reading input",
			Err:     err,
		})
	}

	if err := b.pipeline.Clone().ProcessBuffer(buf); err != nil {
		return fail(err)
	}

	if err := b.checkTimeout(started); err != nil {
		return fail(err)
	}

	outputPath := fileio.DeriveOutputPath(
		path,
		b.opts.Output.OutputDir,
		b.opts.Output.FilenameSuffix,
		b.opts.Output.Format.Extension(),
	)

	if err := b.files.WriteAudio(outputPath, buf); err != nil {
		return fail(&process.Error{
			Kind:    process.KindFileIO,
			Message: "writing output",
			Err:     err,
		})
	}

	elapsed := time.Since(started)

	b.logger.Debug("file processed",
		zap.String("path", path),
		zap.String("output", outputPath),
		zap.Duration("elapsed", elapsed))

	return FileOutcome{
		Path:       path,
		OutputPath: outputPath,
		Status:     StatusProcessed,
		Elapsed:    elapsed,
	}
}

// checkTimeout applies the per-file elapsed-time guard.
func (b *Processor) checkTimeout(started time.Time) error {
	if b.opts.FileTimeout <= 0 {
		return nil
	}

	if elapsed := time.Since(started); elapsed > b.opts.FileTimeout {
		return process.NewTimeoutError(elapsed, b.opts.FileTimeout)
	}

	return nil
}
