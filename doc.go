// SPDX-License-Identifier: EPL-2.0

// Package audpipe provides an audio processing pipeline for Go
// applications: resampling, channel mixing, loudness normalization and
// silence handling over in-memory sample buffers, plus concurrent
// whole-file batch processing.
//
// # Supported Formats
//
// The package reads the following audio formats:
//   - WAV (integer PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (integer PCM) via formats/aiff
//
// Output is written as PCM WAV at 16, 24 or 32 bits.
//
// # Quick Start
//
// The simplest way to process one file:
//
//	cfg := process.DefaultProcessingConfig()
//	cfg.Resampler = &process.ResamplerConfig{TargetSampleRate: 16000, Quality: process.QualityMedium}
//	cfg.ChannelMixer = &process.ChannelMixerConfig{TargetChannels: 1, Algorithm: process.MixAverage}
//
//	outputPath, err := audpipe.ProcessFile(cfg, "episode.mp3")
//
// ProcessBuffer does the same for an in-memory buffer, and
// ProcessFiles drives a concurrent batch:
//
//	result, err := audpipe.ProcessFiles(ctx, cfg, paths)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Summary())
//
// # Processing Pipeline
//
// For more control, build the pipeline directly from the process
// subpackage:
//
//	p, err := process.NewPipeline(cfg)
//	if err != nil {
//	    return err
//	}
//	err = p.ProcessBuffer(buf)
//
// Stages run in a fixed order (resample, mix, normalize, silence) and
// mutate the buffer in place; a failing stage leaves the buffer
// untouched. See the process package for stage configurations, builders
// and presets.
//
// # File I/O
//
// The fileio package maps file extensions to codecs and validates
// decoded buffers. The batch package adds bounded-concurrency batch
// runs with per-file outcome tracking, cooperative cancellation and an
// elapsed-time guard.
//
// # Numeric Conversions
//
// The safecast package backs all frame-count and duration math with
// checked conversions: strict helpers for exact index math, a tolerant
// policy caster for resampling frame counts.
//
// See the individual subpackages for more detailed documentation.
package audpipe
