// SPDX-License-Identifier: EPL-2.0

// Package process implements the audio processing pipeline: stage
// configurations with builders and validation, the four stage
// processors, and the orchestrator that runs them over a sample buffer.
//
// # Stages
//
// Each stage implements the Stage interface (Validate, Process, Reset)
// and mutates the buffer in place:
//
//   - Resampler converts the sample rate by linear or Catmull-Rom
//     interpolation.
//   - ChannelMixer converts the channel count (any-to-mono downmix,
//     mono-to-many duplication).
//   - Normalizer applies one scalar gain so the measured loudness (peak,
//     RMS, or K-weighted LUFS) lands on the target.
//   - SilenceDetector flags silent runs and reports, trims, or excises
//     them.
//
// A failing stage leaves its buffer untouched: replacement data is built
// first and assigned last.
//
// # Pipeline
//
// The Pipeline runs enabled stages in a fixed order (resample, mix,
// normalize, silence) because later stages depend on the rate and
// channel count established earlier:
//
//	cfg := process.DefaultProcessingConfig()
//	cfg.Resampler = &process.ResamplerConfig{TargetSampleRate: 16000, Quality: process.QualityMedium}
//	cfg.ChannelMixer = &process.ChannelMixerConfig{TargetChannels: 1, Algorithm: process.MixAverage}
//
//	p, err := process.NewPipeline(cfg)
//	if err != nil {
//	    return err
//	}
//	err = p.ProcessBuffer(buf)
//
// Configure validates a candidate snapshot fully before swapping it in;
// a failed validation leaves the previous configuration active. Stages
// already at their target skip themselves, so reprocessing a processed
// buffer is a no-op.
//
// # Configuration
//
// Stage configurations are plain values with Validate methods and
// builders ending in Build or BuildValidated:
//
//	nc, err := process.NewNormalizerBuilder().ForPodcast().BuildValidated()
//
// LoadConfig reads a ProcessingConfig from a YAML file.
//
// # Errors
//
// Every failure is an *Error carrying one of the closed Kind values.
// Use IsKind or errors.As to classify:
//
//	if process.IsKind(err, process.KindConfiguration) {
//	    // reject the settings, keep the old ones
//	}
package process
