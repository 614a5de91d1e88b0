// SPDX-License-Identifier: EPL-2.0

package process

import (
	"github.com/ik5/audpipe/audio"
)

// ChannelMixer converts a buffer to the configured target channel count.
// Supported conversions are any-to-mono, mono-to-many duplication, and
// the identity. Output length is always frame count times target
// channels.
type ChannelMixer struct {
	cfg ChannelMixerConfig
}

// NewChannelMixer validates the configuration and returns the stage.
func NewChannelMixer(cfg ChannelMixerConfig) (*ChannelMixer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ChannelMixer{cfg: cfg}, nil
}

// NewMonoMixer returns an average downmix to mono.
func NewMonoMixer() *ChannelMixer {
	return &ChannelMixer{cfg: DefaultChannelMixerConfig()}
}

func (m *ChannelMixer) Name() string { return "channel mixer" }

// Validate checks the stage configuration without touching data.
func (m *ChannelMixer) Validate() error { return m.cfg.Validate() }

// Reset is a no-op; the mixer holds no transient state.
func (m *ChannelMixer) Reset() {}

// Config returns the active configuration.
func (m *ChannelMixer) Config() ChannelMixerConfig { return m.cfg }

// Process converts the buffer to the target channel count in place. A
// zero target, or a buffer already at the target, is a no-op.
func (m *ChannelMixer) Process(buf *audio.SampleBuffer) error {
	target := m.cfg.TargetChannels
	if target == 0 || target == buf.Channels {
		return nil
	}

	if err := validateBuffer(buf); err != nil {
		return err
	}

	if len(buf.Data) == 0 {
		buf.Channels = target
		return nil
	}

	switch {
	case target == 1:
		return m.mixDown(buf)
	case buf.Channels == 1:
		return m.duplicate(buf, target)
	default:
		return newError(KindChannelMixer,
			"unsupported channel conversion: %d -> %d", buf.Channels, target)
	}
}

// mixDown folds every frame to one sample using the configured
// algorithm.
func (m *ChannelMixer) mixDown(buf *audio.SampleBuffer) error {
	channels := buf.Channels
	frames := buf.Frames()
	out := make([]float32, frames)

	switch m.cfg.Algorithm {
	case MixAverage, "":
		mixAverage(out, buf.Data, channels)
	case MixLeftOnly:
		for f := 0; f < frames; f++ {
			out[f] = buf.Data[f*channels]
		}
	case MixRightOnly:
		if channels < 2 {
			return newError(KindChannelMixer,
				"right-only mixing needs at least 2 channels (got %d)", channels)
		}
		for f := 0; f < frames; f++ {
			out[f] = buf.Data[f*channels+1]
		}
	case MixWeightedSum:
		if channels != 2 {
			return newError(KindChannelMixer,
				"weighted-sum mixing is defined for stereo (got %d channels)", channels)
		}
		lw := float32(m.cfg.LeftWeight)
		rw := float32(m.cfg.RightWeight)
		for f := 0; f < frames; f++ {
			idx := f << 1
			out[f] = buf.Data[idx]*lw + buf.Data[idx+1]*rw
		}
	default:
		return newError(KindChannelMixer, "unknown mixing algorithm %q", m.cfg.Algorithm)
	}

	buf.Data = out
	buf.Channels = 1

	return nil
}

// mixAverage folds frames by arithmetic mean, with unrolled loops for the
// common channel counts.
func mixAverage(out, in []float32, channels int) {
	frames := len(out)

	switch channels {
	case 2:
		for f := 0; f < frames; f++ {
			idx := f << 1
			out[f] = (in[idx] + in[idx+1]) * 0.5
		}
	case 4:
		for f := 0; f < frames; f++ {
			idx := f << 2
			out[f] = (in[idx] + in[idx+1] + in[idx+2] + in[idx+3]) * 0.25
		}
	default:
		inv := float32(1.0) / float32(channels)
		for f := 0; f < frames; f++ {
			sum := float32(0)
			base := f * channels
			for c := 0; c < channels; c++ {
				sum += in[base+c]
			}
			out[f] = sum * inv
		}
	}
}

// duplicate expands mono to target channels by copying each sample into
// every channel of its frame.
func (m *ChannelMixer) duplicate(buf *audio.SampleBuffer, target int) error {
	out := make([]float32, len(buf.Data)*target)

	for i, s := range buf.Data {
		base := i * target
		for c := 0; c < target; c++ {
			out[base+c] = s
		}
	}

	buf.Data = out
	buf.Channels = target

	return nil
}
