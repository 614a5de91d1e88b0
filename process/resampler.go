// SPDX-License-Identifier: EPL-2.0

package process

import (
	"github.com/ik5/audpipe/audio"
	"github.com/ik5/audpipe/safecast"
	"github.com/ik5/audpipe/utils"
)

// Resampler converts a buffer to the configured target sample rate. The
// low and medium quality tiers interpolate linearly between neighbouring
// frames; the high tier uses a Catmull-Rom cubic kernel over four frames.
// Frame count math goes through the tolerant numeric policy so fractional
// ratios round instead of failing.
type Resampler struct {
	cfg    ResamplerConfig
	caster safecast.Caster
}

// NewResampler validates the configuration and returns the stage.
func NewResampler(cfg ResamplerConfig) (*Resampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Resampler{
		cfg:    cfg,
		caster: safecast.ForAudio(),
	}, nil
}

func (r *Resampler) Name() string { return "resampler" }

// Validate checks the stage configuration without touching data.
func (r *Resampler) Validate() error { return r.cfg.Validate() }

// Reset is a no-op; whole-buffer conversion keeps no phase between
// calls.
func (r *Resampler) Reset() {}

// Config returns the active configuration.
func (r *Resampler) Config() ResamplerConfig { return r.cfg }

// Process converts the buffer to the target rate in place. A zero
// target, or a buffer already at the target rate, is a no-op.
func (r *Resampler) Process(buf *audio.SampleBuffer) error {
	target := r.cfg.TargetSampleRate
	if target == 0 || target == buf.SampleRate {
		return nil
	}

	if err := validateBuffer(buf); err != nil {
		return err
	}

	if len(buf.Data) == 0 {
		buf.SampleRate = target
		return nil
	}

	oldFrames := buf.Frames()

	newFrames, err := r.caster.ConvertSampleRate(buf.SampleRate, target, oldFrames)
	if err != nil {
		return wrapError(KindResampler, err,
			"converting %d frames from %d Hz to %d Hz", oldFrames, buf.SampleRate, target)
	}

	if newFrames <= 0 {
		buf.Data = buf.Data[:0]
		buf.SampleRate = target
		return nil
	}

	channels := buf.Channels
	out := make([]float32, newFrames*channels)
	step := float64(buf.SampleRate) / float64(target)
	cubic := r.cfg.Quality == QualityHigh

	for f := 0; f < newFrames; f++ {
		pos := float64(f) * step
		idx := int(pos)
		if idx >= oldFrames-1 {
			idx = oldFrames - 1
		}
		frac := float32(pos - float64(idx))

		for c := 0; c < channels; c++ {
			if cubic {
				out[f*channels+c] = cubicSample(buf.Data, oldFrames, channels, idx, c, frac)
			} else {
				out[f*channels+c] = linearSample(buf.Data, oldFrames, channels, idx, c, frac)
			}
		}
	}

	buf.Data = out
	buf.SampleRate = target

	return nil
}

// linearSample interpolates between frame idx and its successor.
func linearSample(data []float32, frames, channels, idx, ch int, frac float32) float32 {
	s0 := data[idx*channels+ch]
	if idx+1 >= frames {
		return s0
	}

	s1 := data[(idx+1)*channels+ch]

	return s0 + (s1-s0)*frac
}

// cubicSample interpolates with the Catmull-Rom kernel over the frame
// window [idx-1, idx+2], clamping at the buffer edges.
func cubicSample(data []float32, frames, channels, idx, ch int, frac float32) float32 {
	sample := func(i int) float32 {
		if i < 0 {
			i = 0
		}
		if i >= frames {
			i = frames - 1
		}

		return data[i*channels+ch]
	}

	return utils.CubicInterpolate(
		sample(idx-1), sample(idx), sample(idx+1), sample(idx+2), frac)
}
