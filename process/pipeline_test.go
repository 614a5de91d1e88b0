// SPDX-License-Identifier: EPL-2.0

package process

import (
	"testing"
	"time"

	"github.com/ik5/audpipe/internal/audiotest"
)

func voicePipelineConfig() ProcessingConfig {
	cfg := DefaultProcessingConfig()
	cfg.Resampler = &ResamplerConfig{TargetSampleRate: 16000, Quality: QualityMedium}
	cfg.ChannelMixer = &ChannelMixerConfig{TargetChannels: 1, Algorithm: MixAverage}

	return cfg
}

func TestPipeline_States(t *testing.T) {
	t.Parallel()

	var p Pipeline
	if p.State() != StateUnconfigured {
		t.Errorf("zero value state = %v, want unconfigured", p.State())
	}

	if err := p.Configure(voicePipelineConfig()); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if p.State() != StateConfigured {
		t.Errorf("state after Configure = %v", p.State())
	}

	buf := audiotest.NewSineBuffer(44100, 2, 4410, 440, 0.5)
	if err := p.ProcessBuffer(buf); err != nil {
		t.Fatalf("ProcessBuffer() error = %v", err)
	}
	if p.State() != StateConfigured {
		t.Errorf("state after ProcessBuffer = %v", p.State())
	}
}

func TestPipeline_UnconfiguredFails(t *testing.T) {
	t.Parallel()

	var p Pipeline
	buf := audiotest.NewSineBuffer(44100, 2, 100, 440, 0.5)

	err := p.ProcessBuffer(buf)
	if err == nil {
		t.Fatal("unconfigured ProcessBuffer did not fail")
	}
	if !IsKind(err, KindPipeline) {
		t.Errorf("error kind = %v", err)
	}
}

func TestPipeline_ConfigureKeepsOldOnFailure(t *testing.T) {
	t.Parallel()

	p, err := NewPipeline(voicePipelineConfig())
	if err != nil {
		t.Fatal(err)
	}

	bad := DefaultProcessingConfig()
	bad.Normalizer = &NormalizerConfig{TargetLoudness: 5, PeakLevel: -1, HeadroomDB: 1}

	if err := p.Configure(bad); err == nil {
		t.Fatal("invalid Configure() did not fail")
	}

	// The previous configuration stays active.
	if p.State() != StateConfigured {
		t.Errorf("state = %v, want configured", p.State())
	}
	if p.Config().Resampler == nil || p.Config().Resampler.TargetSampleRate != 16000 {
		t.Errorf("active config = %+v, want previous snapshot", p.Config())
	}
}

func TestPipeline_FixedStageOrder(t *testing.T) {
	t.Parallel()

	p, err := NewPipeline(voicePipelineConfig())
	if err != nil {
		t.Fatal(err)
	}

	buf := audiotest.NewSineBuffer(44100, 2, 44100, 440, 0.5)
	if err := p.ProcessBuffer(buf); err != nil {
		t.Fatalf("ProcessBuffer() error = %v", err)
	}

	if buf.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", buf.SampleRate)
	}
	if buf.Channels != 1 {
		t.Errorf("Channels = %d, want 1", buf.Channels)
	}
	// Resampling ran before mixing, so frame count reflects the new rate.
	if got := buf.Frames(); got != 16000 {
		t.Errorf("Frames() = %d, want 16000", got)
	}
}

func TestPipeline_Idempotence(t *testing.T) {
	t.Parallel()

	p, err := NewPipeline(voicePipelineConfig())
	if err != nil {
		t.Fatal(err)
	}

	buf := audiotest.NewSineBuffer(44100, 2, 44100, 440, 0.5)
	if err := p.ProcessBuffer(buf); err != nil {
		t.Fatalf("first ProcessBuffer() error = %v", err)
	}

	first := append([]float32(nil), buf.Data...)

	// The buffer is already at the target rate and channel count; a
	// second pass must leave it bit-identical.
	if err := p.ProcessBuffer(buf); err != nil {
		t.Fatalf("second ProcessBuffer() error = %v", err)
	}

	if len(buf.Data) != len(first) {
		t.Fatalf("second pass changed length: %d -> %d", len(first), len(buf.Data))
	}
	for i := range first {
		if buf.Data[i] != first[i] {
			t.Fatalf("second pass changed Data[%d]: %v -> %v", i, first[i], buf.Data[i])
		}
	}
}

func TestPipeline_StageFailureAbortsChain(t *testing.T) {
	t.Parallel()

	cfg := DefaultProcessingConfig()
	// 2 -> 4 is unsupported, so the mixer fails after the resampler ran.
	cfg.Resampler = &ResamplerConfig{TargetSampleRate: 16000, Quality: QualityMedium}
	cfg.ChannelMixer = &ChannelMixerConfig{TargetChannels: 4, Algorithm: MixAverage}
	nc := DefaultNormalizerConfig()
	cfg.Normalizer = &nc

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatal(err)
	}

	buf := audiotest.NewSineBuffer(44100, 2, 4410, 440, 0.5)
	err = p.ProcessBuffer(buf)
	if err == nil {
		t.Fatal("ProcessBuffer() did not fail")
	}
	if !IsKind(err, KindChannelMixer) {
		t.Errorf("error kind = %v", err)
	}

	// The buffer keeps the state of the last successful stage: resampled
	// but not mixed or normalized.
	if buf.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000 from the completed stage", buf.SampleRate)
	}
	if buf.Channels != 2 {
		t.Errorf("Channels = %d, want 2 (mixer failed)", buf.Channels)
	}
	if p.State() != StateConfigured {
		t.Errorf("state after failure = %v", p.State())
	}
}

func TestPipeline_WithSettings(t *testing.T) {
	t.Parallel()

	p, err := NewPipelineWithSettings(22050, 1, true, true)
	if err != nil {
		t.Fatalf("NewPipelineWithSettings() error = %v", err)
	}

	cfg := p.Config()
	if cfg.Resampler == nil || cfg.Resampler.TargetSampleRate != 22050 {
		t.Errorf("resampler = %+v", cfg.Resampler)
	}
	if cfg.ChannelMixer == nil || cfg.ChannelMixer.TargetChannels != 1 {
		t.Errorf("channel mixer = %+v", cfg.ChannelMixer)
	}
	if cfg.Normalizer == nil || cfg.SilenceDetector == nil {
		t.Error("normalizer and silence detector should be enabled")
	}

	p, err = NewPipelineWithSettings(0, 0, false, false)
	if err != nil {
		t.Fatalf("NewPipelineWithSettings() error = %v", err)
	}
	cfg = p.Config()
	if cfg.Resampler != nil || cfg.ChannelMixer != nil || cfg.Normalizer != nil || cfg.SilenceDetector != nil {
		t.Errorf("all stages should be disabled, got %+v", cfg)
	}
}

func TestPipeline_Clone(t *testing.T) {
	t.Parallel()

	cfg := DefaultProcessingConfig()
	cfg.SilenceDetector = &SilenceDetectorConfig{
		ThresholdDB: -60.0,
		MinDuration: 100 * time.Millisecond,
		RemovalMode: SilenceReportOnly,
	}

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatal(err)
	}

	clone := p.Clone()
	if clone == p {
		t.Fatal("Clone() returned the same pipeline")
	}
	if clone.State() != StateConfigured {
		t.Errorf("clone state = %v", clone.State())
	}

	// Stage state is independent: segments recorded by the clone do not
	// appear on the original.
	buf := audiotest.NewBufferWithSilenceSpan(8000, 1, 8000, 0, 4000)
	if err := clone.ProcessBuffer(buf); err != nil {
		t.Fatalf("clone ProcessBuffer() error = %v", err)
	}

	if len(clone.SilenceSegments()) != 1 {
		t.Errorf("clone segments = %d, want 1", len(clone.SilenceSegments()))
	}
	if len(p.SilenceSegments()) != 0 {
		t.Errorf("original segments = %d, want 0", len(p.SilenceSegments()))
	}
}

func TestPipeline_NilBuffer(t *testing.T) {
	t.Parallel()

	p, err := NewPipeline(voicePipelineConfig())
	if err != nil {
		t.Fatal(err)
	}

	err = p.ProcessBuffer(nil)
	if err == nil {
		t.Fatal("nil buffer did not fail")
	}
	if !IsKind(err, KindInvalidInput) {
		t.Errorf("error kind = %v", err)
	}
}

func TestPipeline_SilenceExcisionShrinks(t *testing.T) {
	t.Parallel()

	cfg := DefaultProcessingConfig()
	cfg.SilenceDetector = &SilenceDetectorConfig{
		ThresholdDB: -60.0,
		MinDuration: 100 * time.Millisecond,
		RemovalMode: SilenceExciseAll,
	}

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatal(err)
	}

	buf := audiotest.NewBufferWithSilenceSpan(8000, 1, 8000, 2000, 4000)
	if err := p.ProcessBuffer(buf); err != nil {
		t.Fatalf("ProcessBuffer() error = %v", err)
	}

	if got := buf.Frames(); got != 6000 {
		t.Errorf("Frames() = %d, want 6000", got)
	}

	if err := buf.Validate(); err != nil {
		t.Errorf("shrunk buffer invalid: %v", err)
	}
}
