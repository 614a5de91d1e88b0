// SPDX-License-Identifier: EPL-2.0

package process

import "time"

// ChannelMixerBuilder assembles a ChannelMixerConfig field by field.
type ChannelMixerBuilder struct {
	cfg ChannelMixerConfig
}

// NewChannelMixerBuilder starts from the default mono average downmix.
func NewChannelMixerBuilder() *ChannelMixerBuilder {
	return &ChannelMixerBuilder{cfg: DefaultChannelMixerConfig()}
}

// TargetChannels sets the desired output channel count.
func (b *ChannelMixerBuilder) TargetChannels(n int) *ChannelMixerBuilder {
	b.cfg.TargetChannels = n
	return b
}

// Average selects arithmetic-mean mixing.
func (b *ChannelMixerBuilder) Average() *ChannelMixerBuilder {
	b.cfg.Algorithm = MixAverage
	return b
}

// LeftOnly keeps the first channel and discards the rest.
func (b *ChannelMixerBuilder) LeftOnly() *ChannelMixerBuilder {
	b.cfg.Algorithm = MixLeftOnly
	return b
}

// RightOnly keeps the second channel and discards the rest.
func (b *ChannelMixerBuilder) RightOnly() *ChannelMixerBuilder {
	b.cfg.Algorithm = MixRightOnly
	return b
}

// WeightedSum selects weighted stereo mixing with the given weights.
func (b *ChannelMixerBuilder) WeightedSum(left, right float64) *ChannelMixerBuilder {
	b.cfg.Algorithm = MixWeightedSum
	b.cfg.LeftWeight = left
	b.cfg.RightWeight = right
	return b
}

// Build returns the configuration without validating it.
func (b *ChannelMixerBuilder) Build() ChannelMixerConfig {
	return b.cfg
}

// BuildValidated validates the configuration and surfaces the first
// failure.
func (b *ChannelMixerBuilder) BuildValidated() (ChannelMixerConfig, error) {
	if err := b.cfg.Validate(); err != nil {
		return ChannelMixerConfig{}, err
	}

	return b.cfg, nil
}

// NormalizerBuilder assembles a NormalizerConfig field by field.
type NormalizerBuilder struct {
	cfg NormalizerConfig
}

// NewNormalizerBuilder starts from the default peak normalization.
func NewNormalizerBuilder() *NormalizerBuilder {
	return &NormalizerBuilder{cfg: DefaultNormalizerConfig()}
}

// TargetLoudness sets the target in LUFS.
func (b *NormalizerBuilder) TargetLoudness(lufs float64) *NormalizerBuilder {
	b.cfg.TargetLoudness = lufs
	return b
}

// PeakLevel sets the output ceiling in dB.
func (b *NormalizerBuilder) PeakLevel(db float64) *NormalizerBuilder {
	b.cfg.PeakLevel = db
	return b
}

// Headroom sets the headroom in dB.
func (b *NormalizerBuilder) Headroom(db float64) *NormalizerBuilder {
	b.cfg.HeadroomDB = db
	return b
}

// Limiting enables or disables the output ceiling clamp.
func (b *NormalizerBuilder) Limiting(enable bool) *NormalizerBuilder {
	b.cfg.EnableLimiting = enable
	return b
}

// Algorithm sets the loudness measure.
func (b *NormalizerBuilder) Algorithm(a NormAlgorithm) *NormalizerBuilder {
	b.cfg.Algorithm = a
	return b
}

// ForPodcast targets -16 LUFS with limiting, the common podcast level.
func (b *NormalizerBuilder) ForPodcast() *NormalizerBuilder {
	b.cfg.TargetLoudness = -16.0
	b.cfg.Algorithm = NormLUFS
	b.cfg.EnableLimiting = true
	return b
}

// ForStreaming targets -14 LUFS, matching music streaming services.
func (b *NormalizerBuilder) ForStreaming() *NormalizerBuilder {
	b.cfg.TargetLoudness = -14.0
	b.cfg.Algorithm = NormLUFS
	b.cfg.EnableLimiting = true
	b.cfg.HeadroomDB = 1.0
	return b
}

// ForBroadcast targets -23 LUFS with 2 dB headroom, the broadcast norm.
func (b *NormalizerBuilder) ForBroadcast() *NormalizerBuilder {
	b.cfg.TargetLoudness = -23.0
	b.cfg.Algorithm = NormLUFS
	b.cfg.EnableLimiting = true
	b.cfg.HeadroomDB = 2.0
	return b
}

// ForAudiobook targets -18 dB RMS, common for audiobook production.
func (b *NormalizerBuilder) ForAudiobook() *NormalizerBuilder {
	b.cfg.TargetLoudness = -18.0
	b.cfg.Algorithm = NormRMS
	b.cfg.EnableLimiting = true
	return b
}

// Build returns the configuration without validating it.
func (b *NormalizerBuilder) Build() NormalizerConfig {
	return b.cfg
}

// BuildValidated validates the configuration and surfaces the first
// failure.
func (b *NormalizerBuilder) BuildValidated() (NormalizerConfig, error) {
	if err := b.cfg.Validate(); err != nil {
		return NormalizerConfig{}, err
	}

	return b.cfg, nil
}

// ResamplerBuilder assembles a ResamplerConfig field by field.
type ResamplerBuilder struct {
	cfg ResamplerConfig
}

// NewResamplerBuilder starts from the default 44.1 kHz medium quality.
func NewResamplerBuilder() *ResamplerBuilder {
	return &ResamplerBuilder{cfg: DefaultResamplerConfig()}
}

// SampleRate sets the target rate in Hz.
func (b *ResamplerBuilder) SampleRate(rate int) *ResamplerBuilder {
	b.cfg.TargetSampleRate = rate
	return b
}

// Quality sets the interpolation tier.
func (b *ResamplerBuilder) Quality(q ResampleQuality) *ResamplerBuilder {
	b.cfg.Quality = q
	return b
}

// ForCDQuality targets 44.1 kHz at high quality.
func (b *ResamplerBuilder) ForCDQuality() *ResamplerBuilder {
	b.cfg.TargetSampleRate = 44100
	b.cfg.Quality = QualityHigh
	return b
}

// ForVoice targets 16 kHz, the usual rate for speech processing.
func (b *ResamplerBuilder) ForVoice() *ResamplerBuilder {
	b.cfg.TargetSampleRate = 16000
	b.cfg.Quality = QualityMedium
	return b
}

// Build returns the configuration without validating it.
func (b *ResamplerBuilder) Build() ResamplerConfig {
	return b.cfg
}

// BuildValidated validates the configuration and surfaces the first
// failure.
func (b *ResamplerBuilder) BuildValidated() (ResamplerConfig, error) {
	if err := b.cfg.Validate(); err != nil {
		return ResamplerConfig{}, err
	}

	return b.cfg, nil
}

// SilenceDetectorBuilder assembles a SilenceDetectorConfig field by field.
type SilenceDetectorBuilder struct {
	cfg SilenceDetectorConfig
}

// NewSilenceDetectorBuilder starts from the default edge-trimming setup.
func NewSilenceDetectorBuilder() *SilenceDetectorBuilder {
	return &SilenceDetectorBuilder{cfg: DefaultSilenceDetectorConfig()}
}

// Threshold sets the silence threshold in dB.
func (b *SilenceDetectorBuilder) Threshold(db float64) *SilenceDetectorBuilder {
	b.cfg.ThresholdDB = db
	return b
}

// MinDuration sets how long a silent run must last to count.
func (b *SilenceDetectorBuilder) MinDuration(d time.Duration) *SilenceDetectorBuilder {
	b.cfg.MinDuration = d
	return b
}

// RemovalMode sets what happens to detected segments.
func (b *SilenceDetectorBuilder) RemovalMode(m SilenceRemovalMode) *SilenceDetectorBuilder {
	b.cfg.RemovalMode = m
	return b
}

// ForPodcast trims leading and trailing silence at -40 dB, 500 ms.
func (b *SilenceDetectorBuilder) ForPodcast() *SilenceDetectorBuilder {
	b.cfg.ThresholdDB = -40.0
	b.cfg.MinDuration = 500 * time.Millisecond
	b.cfg.RemovalMode = SilenceTrimEdges
	return b
}

// ForVoice excises all silence at -30 dB, 300 ms, for speech pipelines.
func (b *SilenceDetectorBuilder) ForVoice() *SilenceDetectorBuilder {
	b.cfg.ThresholdDB = -30.0
	b.cfg.MinDuration = 300 * time.Millisecond
	b.cfg.RemovalMode = SilenceExciseAll
	return b
}

// ForMusic trims only long, very quiet passages from the edges.
func (b *SilenceDetectorBuilder) ForMusic() *SilenceDetectorBuilder {
	b.cfg.ThresholdDB = -60.0
	b.cfg.MinDuration = time.Second
	b.cfg.RemovalMode = SilenceTrimEdges
	return b
}

// Build returns the configuration without validating it.
func (b *SilenceDetectorBuilder) Build() SilenceDetectorConfig {
	return b.cfg
}

// BuildValidated validates the configuration and surfaces the first
// failure.
func (b *SilenceDetectorBuilder) BuildValidated() (SilenceDetectorConfig, error) {
	if err := b.cfg.Validate(); err != nil {
		return SilenceDetectorConfig{}, err
	}

	return b.cfg, nil
}
