// SPDX-License-Identifier: EPL-2.0

package process

import (
	"time"

	"gopkg.in/yaml.v3"
)

// MixAlgorithm selects how frames are folded when mixing down to mono.
type MixAlgorithm string

const (
	// MixAverage takes the arithmetic mean of all channels.
	MixAverage MixAlgorithm = "average"
	// MixLeftOnly copies the first channel and discards the rest.
	MixLeftOnly MixAlgorithm = "left-only"
	// MixRightOnly copies the second channel and discards the rest.
	MixRightOnly MixAlgorithm = "right-only"
	// MixWeightedSum computes left*LeftWeight + right*RightWeight. Weights
	// are not renormalized; the caller owns sensible weight sums.
	MixWeightedSum MixAlgorithm = "weighted-sum"
)

// ChannelMixerConfig configures the channel mixing stage. The zero value
// disables the stage; use DefaultChannelMixerConfig or the builder for a
// working mono downmix.
type ChannelMixerConfig struct {
	// TargetChannels is the desired channel count, 1 to 32. Zero means
	// keep the buffer's current channel count (stage disabled).
	TargetChannels int `yaml:"target_channels"`
	// Algorithm used when mixing down to mono.
	Algorithm MixAlgorithm `yaml:"algorithm"`
	// LeftWeight and RightWeight apply to MixWeightedSum only, each in
	// [0, 1].
	LeftWeight  float64 `yaml:"left_weight"`
	RightWeight float64 `yaml:"right_weight"`
}

// DefaultChannelMixerConfig returns a stereo-to-mono average downmix.
func DefaultChannelMixerConfig() ChannelMixerConfig {
	return ChannelMixerConfig{
		TargetChannels: 1,
		Algorithm:      MixAverage,
	}
}

// Validate checks the configuration without touching any audio data.
func (c ChannelMixerConfig) Validate() error {
	if c.TargetChannels != 0 {
		if err := ValidateRange(c.TargetChannels, 1, 32, "Target channels"); err != nil {
			return err
		}
	}

	switch c.Algorithm {
	case MixAverage, MixLeftOnly, MixRightOnly, "":
	case MixWeightedSum:
		if err := ValidateRange(c.LeftWeight, 0.0, 1.0, "Left weight"); err != nil {
			return err
		}
		if err := ValidateRange(c.RightWeight, 0.0, 1.0, "Right weight"); err != nil {
			return err
		}
	default:
		return configError("Algorithm", "unknown mixing algorithm %q", c.Algorithm)
	}

	return nil
}

// NormAlgorithm selects the loudness measure the normalizer drives its
// gain from.
type NormAlgorithm string

const (
	// NormPeak normalizes against the maximum absolute sample.
	NormPeak NormAlgorithm = "peak"
	// NormRMS normalizes against the root-mean-square level.
	NormRMS NormAlgorithm = "rms"
	// NormLUFS normalizes against a K-weighted loudness measure.
	NormLUFS NormAlgorithm = "lufs"
)

// NormalizerConfig configures the loudness normalization stage.
type NormalizerConfig struct {
	// TargetLoudness in LUFS (or dBFS for the peak/RMS measures). Must
	// be strictly negative.
	TargetLoudness float64 `yaml:"target_loudness"`
	// PeakLevel is the output ceiling in dB, at most 0.01. Samples above
	// it are clamped when EnableLimiting is set.
	PeakLevel float64 `yaml:"peak_level"`
	// HeadroomDB backs the gain off the target. Must be strictly
	// positive.
	HeadroomDB float64 `yaml:"headroom_db"`
	// EnableLimiting clamps post-gain samples to the peak ceiling.
	EnableLimiting bool `yaml:"enable_limiting"`
	// Algorithm selects the loudness measure.
	Algorithm NormAlgorithm `yaml:"algorithm"`
}

// DefaultNormalizerConfig returns peak normalization to -16 dB with 1 dB
// headroom and limiting on.
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		TargetLoudness: -16.0,
		PeakLevel:      -1.0,
		HeadroomDB:     1.0,
		EnableLimiting: true,
		Algorithm:      NormPeak,
	}
}

// Validate checks the configuration without touching any audio data.
func (c NormalizerConfig) Validate() error {
	if err := ValidateNegative(c.TargetLoudness, "Target loudness"); err != nil {
		return err
	}

	if err := ValidateLessThan(c.PeakLevel, 0.01, "Peak level"); err != nil {
		return err
	}

	if err := ValidatePositive(c.HeadroomDB, "Headroom"); err != nil {
		return err
	}

	switch c.Algorithm {
	case NormPeak, NormRMS, NormLUFS, "":
	default:
		return configError("Algorithm", "unknown normalization algorithm %q", c.Algorithm)
	}

	return nil
}

// ResampleQuality trades conversion quality against speed.
type ResampleQuality string

const (
	// QualityLow uses linear interpolation.
	QualityLow ResampleQuality = "low"
	// QualityMedium uses linear interpolation.
	QualityMedium ResampleQuality = "medium"
	// QualityHigh uses Catmull-Rom cubic interpolation.
	QualityHigh ResampleQuality = "high"
)

// ResamplerConfig configures the sample rate conversion stage.
type ResamplerConfig struct {
	// TargetSampleRate in Hz, 1 to 192000. Zero means keep the buffer's
	// current rate (stage disabled).
	TargetSampleRate int `yaml:"target_sample_rate"`
	// Quality tier of the interpolation.
	Quality ResampleQuality `yaml:"quality"`
}

// DefaultResamplerConfig returns 44.1 kHz at medium quality.
func DefaultResamplerConfig() ResamplerConfig {
	return ResamplerConfig{
		TargetSampleRate: 44100,
		Quality:          QualityMedium,
	}
}

// Validate checks the configuration without touching any audio data.
func (c ResamplerConfig) Validate() error {
	if c.TargetSampleRate != 0 {
		if err := ValidateRange(c.TargetSampleRate, 1, 192_000, "Target sample rate"); err != nil {
			return err
		}
	}

	switch c.Quality {
	case QualityLow, QualityMedium, QualityHigh, "":
	default:
		return configError("Quality", "unknown resample quality %q", c.Quality)
	}

	return nil
}

// SilenceRemovalMode controls what happens to detected silence.
type SilenceRemovalMode string

const (
	// SilenceReportOnly detects segments without modifying the buffer.
	SilenceReportOnly SilenceRemovalMode = "report"
	// SilenceTrimEdges removes leading and trailing silence.
	SilenceTrimEdges SilenceRemovalMode = "trim-edges"
	// SilenceExciseAll removes every detected segment and repacks the
	// remaining frames contiguously.
	SilenceExciseAll SilenceRemovalMode = "excise-all"
)

// SilenceDetectorConfig configures the silence detection stage.
type SilenceDetectorConfig struct {
	// ThresholdDB is the amplitude below which a frame counts as silent.
	// Must be strictly negative.
	ThresholdDB float64 `yaml:"threshold_db"`
	// MinDuration a silent run must last to count as a segment.
	MinDuration time.Duration `yaml:"min_duration"`
	// RemovalMode selects report, edge trimming, or full excision.
	RemovalMode SilenceRemovalMode `yaml:"removal_mode"`
}

// DefaultSilenceDetectorConfig returns -40 dB, 500 ms minimum, edge
// trimming.
func DefaultSilenceDetectorConfig() SilenceDetectorConfig {
	return SilenceDetectorConfig{
		ThresholdDB: -40.0,
		MinDuration: 500 * time.Millisecond,
		RemovalMode: SilenceTrimEdges,
	}
}

// silenceDetectorYAML carries MinDuration as a string like "500ms", the
// form yaml.v3 cannot decode into a time.Duration on its own.
type silenceDetectorYAML struct {
	ThresholdDB float64            `yaml:"threshold_db"`
	MinDuration string             `yaml:"min_duration"`
	RemovalMode SilenceRemovalMode `yaml:"removal_mode"`
}

func (c SilenceDetectorConfig) MarshalYAML() (any, error) {
	return silenceDetectorYAML{
		ThresholdDB: c.ThresholdDB,
		MinDuration: c.MinDuration.String(),
		RemovalMode: c.RemovalMode,
	}, nil
}

func (c *SilenceDetectorConfig) UnmarshalYAML(value *yaml.Node) error {
	aux := silenceDetectorYAML{
		ThresholdDB: c.ThresholdDB,
		RemovalMode: c.RemovalMode,
	}
	if c.MinDuration != 0 {
		aux.MinDuration = c.MinDuration.String()
	}

	if err := value.Decode(&aux); err != nil {
		return err
	}

	c.ThresholdDB = aux.ThresholdDB
	c.RemovalMode = aux.RemovalMode

	if aux.MinDuration != "" {
		d, err := time.ParseDuration(aux.MinDuration)
		if err != nil {
			return configError("Minimum silence duration",
				"invalid duration %q: %v", aux.MinDuration, err)
		}
		c.MinDuration = d
	}

	return nil
}

// Validate checks the configuration without touching any audio data.
func (c SilenceDetectorConfig) Validate() error {
	if err := ValidateNegative(c.ThresholdDB, "Silence threshold"); err != nil {
		return err
	}

	if c.MinDuration <= 0 {
		return configError("Minimum silence duration",
			"Minimum silence duration must be positive (got %v)", c.MinDuration)
	}

	switch c.RemovalMode {
	case SilenceReportOnly, SilenceTrimEdges, SilenceExciseAll, "":
	default:
		return configError("Removal mode", "unknown silence removal mode %q", c.RemovalMode)
	}

	return nil
}
