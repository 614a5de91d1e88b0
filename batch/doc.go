// SPDX-License-Identifier: EPL-2.0

// Package batch drives the processing pipeline across many files.
//
// A Processor reads each input through a ReadWriter collaborator, runs
// it through a cloned pipeline, and writes the result to a derived
// output path (input stem plus suffix). Files are independent: each one
// owns its buffer and pipeline clone, failures are recorded per file,
// and one bad input never aborts the run.
//
//	p, _ := process.NewPipelineWithSettings(16000, 1, true, true)
//
//	files := fileio.Default()
//	files.Overwrite = true
//
//	proc, err := batch.NewProcessor(p, files, batch.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//
//	result := proc.Run(ctx, paths)
//	fmt.Println(result.Summary())
//
// Concurrency is bounded by Options.Workers (default min(NumCPU, 8)).
// Cancelling the context is cooperative: files already processing run
// to completion, files not yet started are recorded as cancelled.
// Options.FileTimeout adds an elapsed-time guard per file; an overrun
// is recorded as a timeout failure carrying the elapsed time and the
// limit.
//
// The writer side of the collaborator carries its own policy (bit
// depth, overwrite); configure it to match Options.Output before
// starting the run.
package batch
