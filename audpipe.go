// SPDX-License-Identifier: EPL-2.0

package audpipe

import (
	"context"

	"github.com/ik5/audpipe/audio"
	"github.com/ik5/audpipe/batch"
	"github.com/ik5/audpipe/fileio"
	"github.com/ik5/audpipe/process"
)

// ProcessBuffer runs one sample buffer through a pipeline built from
// cfg. The buffer is modified in place.
//
// This is a convenience wrapper; build a process.Pipeline directly to
// reuse it across buffers or inspect silence segments afterwards.
func ProcessBuffer(cfg process.ProcessingConfig, buf *audio.SampleBuffer) error {
	p, err := process.NewPipeline(cfg)
	if err != nil {
		return err
	}

	return p.ProcessBuffer(buf)
}

// ProcessFile reads one audio file, processes it per cfg, and writes
// the result next to the input (or into cfg.Output.OutputDir) with the
// configured filename suffix. The output path is returned.
func ProcessFile(cfg process.ProcessingConfig, path string) (string, error) {
	p, err := process.NewPipeline(cfg)
	if err != nil {
		return "", err
	}

	files := newIO(cfg.Output)

	buf, err := files.ReadAudio(path)
	if err != nil {
		return "", &process.Error{Kind: process.KindFileIO, Message: "reading input", Err: err}
	}

	if err := p.ProcessBuffer(buf); err != nil {
		return "", err
	}

	outputPath := fileio.DeriveOutputPath(
		path,
		cfg.Output.OutputDir,
		cfg.Output.FilenameSuffix,
		cfg.Output.Format.Extension(),
	)

	if err := files.WriteAudio(outputPath, buf); err != nil {
		return "", &process.Error{Kind: process.KindFileIO, Message: "writing output", Err: err}
	}

	return outputPath, nil
}

// ProcessFiles runs a concurrent batch over paths with the default
// codec registry and default worker settings.
func ProcessFiles(ctx context.Context, cfg process.ProcessingConfig, paths []string) (*batch.Result, error) {
	p, err := process.NewPipeline(cfg)
	if err != nil {
		return nil, err
	}

	opts := batch.DefaultOptions()
	opts.Output = cfg.Output

	proc, err := batch.NewProcessor(p, newIO(cfg.Output), opts)
	if err != nil {
		return nil, err
	}

	return proc.Run(ctx, paths), nil
}

// newIO binds the default registry to the output policy.
func newIO(out process.OutputConfig) *fileio.IO {
	files := fileio.Default()
	files.BitDepth = out.BitDepth
	files.Overwrite = out.Overwrite

	return files
}
