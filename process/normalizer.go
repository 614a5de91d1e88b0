// SPDX-License-Identifier: EPL-2.0

package process

import (
	"math"

	"github.com/ik5/audpipe/audio"
)

// Normalizer applies one scalar gain so the buffer's measured loudness
// lands on the configured target, backed off by the headroom. With
// limiting enabled, post-gain samples are clamped to the peak ceiling.
type Normalizer struct {
	cfg NormalizerConfig
}

// NewNormalizer validates the configuration and returns the stage.
func NewNormalizer(cfg NormalizerConfig) (*Normalizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Normalizer{cfg: cfg}, nil
}

// NewPeakNormalizer returns a peak normalizer targeting the given level
// in dB.
func NewPeakNormalizer(targetDB float64) (*Normalizer, error) {
	cfg := DefaultNormalizerConfig()
	cfg.TargetLoudness = targetDB
	cfg.Algorithm = NormPeak

	return NewNormalizer(cfg)
}

func (n *Normalizer) Name() string { return "normalizer" }

// Validate checks the stage configuration without touching data.
func (n *Normalizer) Validate() error { return n.cfg.Validate() }

// Reset is a no-op; the normalizer holds no transient state.
func (n *Normalizer) Reset() {}

// Config returns the active configuration.
func (n *Normalizer) Config() NormalizerConfig { return n.cfg }

// Process normalizes the buffer in place. An empty buffer is a no-op.
func (n *Normalizer) Process(buf *audio.SampleBuffer) error {
	if len(buf.Data) == 0 {
		return nil
	}

	if err := validateBuffer(buf); err != nil {
		return err
	}

	gain, err := n.gainFor(buf)
	if err != nil {
		return err
	}

	if gain == 1.0 && !n.cfg.EnableLimiting {
		return nil
	}

	ceiling := float32(dbToLinear(n.cfg.PeakLevel))
	out := make([]float32, len(buf.Data))

	for i, s := range buf.Data {
		v := s * gain
		if n.cfg.EnableLimiting {
			if v > ceiling {
				v = ceiling
			} else if v < -ceiling {
				v = -ceiling
			}
		}
		out[i] = v
	}

	buf.Data = out

	return nil
}

// gainFor derives the scalar gain from the configured loudness measure.
func (n *Normalizer) gainFor(buf *audio.SampleBuffer) (float32, error) {
	headroomFactor := dbToLinear(-n.cfg.HeadroomDB)

	switch n.cfg.Algorithm {
	case NormLUFS:
		measured, err := lufs(buf)
		if err != nil {
			return 0, err
		}
		if math.IsInf(measured, -1) {
			// Digital silence; nothing to scale.
			return 1.0, nil
		}

		return float32(dbToLinear(n.cfg.TargetLoudness-measured) * headroomFactor), nil

	case NormRMS:
		measure := rms(buf.Data)
		if !isFinite(measure) {
			return 0, newError(KindNormalizer, "buffer contains non-finite samples")
		}
		if measure == 0 {
			return 1.0, nil
		}

		return float32(dbToLinear(n.cfg.TargetLoudness) * headroomFactor / measure), nil

	case NormPeak, "":
		measure := peak(buf.Data)
		if !isFinite(measure) {
			return 0, newError(KindNormalizer, "buffer contains non-finite samples")
		}
		if measure == 0 {
			return 1.0, nil
		}

		return float32(dbToLinear(n.cfg.TargetLoudness) * headroomFactor / measure), nil

	default:
		return 0, newError(KindNormalizer, "unknown normalization algorithm %q", n.cfg.Algorithm)
	}
}

// PeakDB measures the maximum absolute sample of the buffer in dB.
// Returns -Inf for digital silence.
func PeakDB(buf *audio.SampleBuffer) float64 {
	return linearToDB(peak(buf.Data))
}

// RMSDB measures the root-mean-square level of the buffer in dB. Returns
// -Inf for digital silence.
func RMSDB(buf *audio.SampleBuffer) float64 {
	return linearToDB(rms(buf.Data))
}

func peak(data []float32) float64 {
	maxAbs := 0.0
	for _, s := range data {
		a := math.Abs(float64(s))
		if math.IsNaN(a) {
			return a
		}
		if a > maxAbs {
			maxAbs = a
		}
	}

	return maxAbs
}

func rms(data []float32) float64 {
	if len(data) == 0 {
		return 0
	}

	sum := 0.0
	for _, s := range data {
		v := float64(s)
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(data)))
}

// lufs measures integrated loudness per ITU-R BS.1770: a two-stage
// K-weighting pre-filter (high shelf, then high pass) applied per
// channel, mean square energy summed across channels, -0.691 dB offset.
// Gating is not applied; the measure covers the whole buffer.
func lufs(buf *audio.SampleBuffer) (float64, error) {
	shelf, highpass := kWeighting(buf.SampleRate)

	channels := buf.Channels
	frames := buf.Frames()
	energy := 0.0

	for c := 0; c < channels; c++ {
		sh := shelf
		hp := highpass
		sum := 0.0

		for f := 0; f < frames; f++ {
			v := float64(buf.Data[f*channels+c])
			v = sh.process(v)
			v = hp.process(v)
			sum += v * v
		}

		energy += sum / float64(frames)
	}

	if !isFinite(energy) {
		return 0, newError(KindNormalizer, "buffer contains non-finite samples")
	}

	if energy <= 0 {
		return math.Inf(-1), nil
	}

	return -0.691 + 10*math.Log10(energy), nil
}

// biquad is a direct form I second-order filter section.
type biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

func (f *biquad) process(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y

	return y
}

// kWeighting derives the two BS.1770 pre-filter stages for the given
// sample rate from the published analog prototypes: a +4 dB high shelf
// around 1681.97 Hz and a high pass at 38.135 Hz.
func kWeighting(sampleRate int) (shelf, highpass biquad) {
	fs := float64(sampleRate)

	// Stage 1: high shelf.
	{
		const (
			f0 = 1681.974450955533
			g  = 3.999843853973347
			q  = 0.7071752369554196
		)

		k := math.Tan(math.Pi * f0 / fs)
		vh := math.Pow(10, g/20)
		vb := math.Pow(vh, 0.4996667741545416)

		a0 := 1 + k/q + k*k
		shelf = biquad{
			b0: (vh + vb*k/q + k*k) / a0,
			b1: 2 * (k*k - vh) / a0,
			b2: (vh - vb*k/q + k*k) / a0,
			a1: 2 * (k*k - 1) / a0,
			a2: (1 - k/q + k*k) / a0,
		}
	}

	// Stage 2: high pass.
	{
		const (
			f0 = 38.13547087602444
			q  = 0.5003270373238773
		)

		k := math.Tan(math.Pi * f0 / fs)
		a0 := 1 + k/q + k*k
		highpass = biquad{
			b0: 1 / a0,
			b1: -2 / a0,
			b2: 1 / a0,
			a1: 2 * (k*k - 1) / a0,
			a2: (1 - k/q + k*k) / a0,
		}
	}

	return shelf, highpass
}

func dbToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

func linearToDB(linear float64) float64 {
	if linear <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
