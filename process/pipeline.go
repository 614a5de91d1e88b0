// SPDX-License-Identifier: EPL-2.0

package process

import (
	"fmt"

	"github.com/ik5/audpipe/audio"
)

// PipelineState tracks where a Pipeline is in its lifecycle.
type PipelineState int

const (
	// StateUnconfigured means no configuration has passed validation yet.
	StateUnconfigured PipelineState = iota
	// StateConfigured means the pipeline is ready to process buffers.
	StateConfigured
	// StateProcessing means a ProcessBuffer call is in flight.
	StateProcessing
)

func (s PipelineState) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfigured:
		return "configured"
	case StateProcessing:
		return "processing"
	default:
		return fmt.Sprintf("PipelineState(%d)", int(s))
	}
}

// Pipeline runs the enabled stages over one buffer in a fixed order:
// resample, mix channels, normalize, detect silence. Later stages depend
// on the rate and channel count established earlier, so the order is not
// configurable. A Pipeline is single-threaded; concurrent batch workers
// each use their own Clone.
type Pipeline struct {
	state  PipelineState
	config ProcessingConfig

	resampler *Resampler
	mixer     *ChannelMixer
	norm      *Normalizer
	silence   *SilenceDetector
}

// NewPipeline validates the configuration, builds the stages and returns
// a configured pipeline.
func NewPipeline(cfg ProcessingConfig) (*Pipeline, error) {
	p := &Pipeline{}
	if err := p.Configure(cfg); err != nil {
		return nil, err
	}

	return p, nil
}

// NewPipelineWithSettings covers the common cases in one call: a target
// rate and channel count (zero disables either), default normalization
// and default silence trimming.
func NewPipelineWithSettings(targetRate, targetChannels int, normalize, trimSilence bool) (*Pipeline, error) {
	cfg := DefaultProcessingConfig()

	if targetRate != 0 {
		rc := DefaultResamplerConfig()
		rc.TargetSampleRate = targetRate
		cfg.Resampler = &rc
	}

	if targetChannels != 0 {
		mc := DefaultChannelMixerConfig()
		mc.TargetChannels = targetChannels
		cfg.ChannelMixer = &mc
	}

	if normalize {
		nc := DefaultNormalizerConfig()
		cfg.Normalizer = &nc
	}

	if trimSilence {
		sc := DefaultSilenceDetectorConfig()
		cfg.SilenceDetector = &sc
	}

	return NewPipeline(cfg)
}

// State returns the current lifecycle state.
func (p *Pipeline) State() PipelineState { return p.state }

// Config returns the active configuration snapshot.
func (p *Pipeline) Config() ProcessingConfig { return p.config }

// Configure validates the candidate configuration and swaps it in. On
// failure the previous configuration stays active; an unconfigured
// pipeline stays unconfigured.
func (p *Pipeline) Configure(cfg ProcessingConfig) error {
	if p.state == StateProcessing {
		return newError(KindPipeline, "cannot reconfigure while processing")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	var (
		resampler *Resampler
		mixer     *ChannelMixer
		norm      *Normalizer
		silence   *SilenceDetector
		err       error
	)

	if cfg.Resampler != nil {
		if resampler, err = NewResampler(*cfg.Resampler); err != nil {
			return err
		}
	}

	if cfg.ChannelMixer != nil {
		if mixer, err = NewChannelMixer(*cfg.ChannelMixer); err != nil {
			return err
		}
	}

	if cfg.Normalizer != nil {
		if norm, err = NewNormalizer(*cfg.Normalizer); err != nil {
			return err
		}
	}

	if cfg.SilenceDetector != nil {
		if silence, err = NewSilenceDetector(*cfg.SilenceDetector); err != nil {
			return err
		}
	}

	p.config = cfg
	p.resampler = resampler
	p.mixer = mixer
	p.norm = norm
	p.silence = silence
	p.state = StateConfigured

	return nil
}

// stages returns the enabled stages in processing order.
func (p *Pipeline) stages() []Stage {
	out := make([]Stage, 0, 4)

	if p.resampler != nil {
		out = append(out, p.resampler)
	}
	if p.mixer != nil {
		out = append(out, p.mixer)
	}
	if p.norm != nil {
		out = append(out, p.norm)
	}
	if p.silence != nil {
		out = append(out, p.silence)
	}

	return out
}

// ProcessBuffer runs the enabled stages over the buffer in order. A
// failing stage aborts the rest of the chain and the buffer keeps the
// state produced by the last successful stage; callers needing atomicity
// copy the buffer first. Stages already at their target skip themselves,
// so a second run over processed audio is a no-op.
func (p *Pipeline) ProcessBuffer(buf *audio.SampleBuffer) error {
	if p.state == StateUnconfigured {
		return newError(KindPipeline, "pipeline is not configured")
	}

	if p.state == StateProcessing {
		return newError(KindPipeline, "pipeline is already processing")
	}

	if buf == nil {
		return newError(KindInvalidInput, "nil buffer")
	}

	p.state = StateProcessing
	defer func() { p.state = StateConfigured }()

	if err := validateBuffer(buf); err != nil {
		return err
	}

	for _, stage := range p.stages() {
		if err := stage.Process(buf); err != nil {
			return fmt.Errorf("%s stage: %w", stage.Name(), err)
		}
	}

	return nil
}

// Reset clears the transient state of every stage.
func (p *Pipeline) Reset() {
	for _, stage := range p.stages() {
		stage.Reset()
	}
}

// SilenceSegments returns the segments the silence detector recorded
// during the last ProcessBuffer call, or nil when the stage is disabled.
func (p *Pipeline) SilenceSegments() []SilenceSegment {
	if p.silence == nil {
		return nil
	}

	return p.silence.Segments()
}

// Clone returns an independent pipeline with the same configuration but
// its own stage state, for use by a concurrent batch worker.
func (p *Pipeline) Clone() *Pipeline {
	if p.state == StateUnconfigured {
		return &Pipeline{}
	}

	// The configuration already passed validation, so this cannot fail.
	clone, _ := NewPipeline(p.config)

	return clone
}
