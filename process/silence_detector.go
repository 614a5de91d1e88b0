// SPDX-License-Identifier: EPL-2.0

package process

import (
	"time"

	"github.com/ik5/audpipe/audio"
	"github.com/ik5/audpipe/safecast"
)

// SilenceSegment is one contiguous run of silent frames. Start is
// inclusive, End exclusive, both in frames.
type SilenceSegment struct {
	Start    int
	End      int
	Duration time.Duration
}

// Frames returns the segment length in frames.
func (s SilenceSegment) Frames() int { return s.End - s.Start }

// SilenceDetector scans a buffer frame by frame and flags contiguous runs
// whose magnitude stays below the threshold for at least the minimum
// duration. Depending on the removal mode, segments are only reported,
// trimmed from the edges, or excised throughout.
type SilenceDetector struct {
	cfg      SilenceDetectorConfig
	segments []SilenceSegment
}

// NewSilenceDetector validates the configuration and returns the stage.
func NewSilenceDetector(cfg SilenceDetectorConfig) (*SilenceDetector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &SilenceDetector{cfg: cfg}, nil
}

// NewSilenceDetectorWithParams returns a detector for the given threshold
// and minimum duration, in the default edge-trimming mode.
func NewSilenceDetectorWithParams(thresholdDB float64, minDuration time.Duration) (*SilenceDetector, error) {
	cfg := DefaultSilenceDetectorConfig()
	cfg.ThresholdDB = thresholdDB
	cfg.MinDuration = minDuration

	return NewSilenceDetector(cfg)
}

func (d *SilenceDetector) Name() string { return "silence detector" }

// Validate checks the stage configuration without touching data.
func (d *SilenceDetector) Validate() error { return d.cfg.Validate() }

// Reset discards the segments recorded by the last Process call.
func (d *SilenceDetector) Reset() { d.segments = nil }

// Config returns the active configuration.
func (d *SilenceDetector) Config() SilenceDetectorConfig { return d.cfg }

// Segments returns the silence segments found by the last Process call,
// positioned relative to the buffer as it was at detection time.
func (d *SilenceDetector) Segments() []SilenceSegment { return d.segments }

// Process detects silence and applies the configured removal mode in
// place. Excision is the only path that shrinks the buffer.
func (d *SilenceDetector) Process(buf *audio.SampleBuffer) error {
	if len(buf.Data) == 0 {
		d.segments = nil
		return nil
	}

	if err := validateBuffer(buf); err != nil {
		return err
	}

	segments, err := d.DetectSegments(buf)
	if err != nil {
		return err
	}

	d.segments = segments

	switch d.cfg.RemovalMode {
	case SilenceReportOnly, "":
		return nil
	case SilenceTrimEdges:
		d.trimEdges(buf, segments)
		return nil
	case SilenceExciseAll:
		d.excise(buf, segments)
		return nil
	default:
		return newError(KindSilenceDetector, "unknown removal mode %q", d.cfg.RemovalMode)
	}
}

// DetectSegments scans the buffer and returns every silent run meeting
// the minimum duration. The buffer is not modified.
func (d *SilenceDetector) DetectSegments(buf *audio.SampleBuffer) ([]SilenceSegment, error) {
	if len(buf.Data) == 0 {
		return nil, nil
	}

	// Tolerant policy: the seconds-times-rate product may land a hair off
	// an integer (9ms at 48kHz), which the strict path would reject.
	minFrames, err := safecast.ForAudio().TimeToSamples(d.cfg.MinDuration.Seconds(), buf.SampleRate)
	if err != nil {
		return nil, wrapError(KindSilenceDetector, err,
			"minimum duration %v at %d Hz", d.cfg.MinDuration, buf.SampleRate)
	}

	threshold := float32(dbToLinear(d.cfg.ThresholdDB))
	frames := buf.Frames()
	channels := buf.Channels

	var segments []SilenceSegment
	inSilence := false
	start := 0

	flush := func(end int) error {
		if !inSilence || end-start < minFrames {
			return nil
		}

		dur, err := safecast.SamplesToDuration(end-start, buf.SampleRate)
		if err != nil {
			return wrapError(KindSilenceDetector, err, "segment duration")
		}

		segments = append(segments, SilenceSegment{Start: start, End: end, Duration: dur})

		return nil
	}

	for f := 0; f < frames; f++ {
		silent := frameMagnitude(buf.Data, channels, f) <= threshold

		switch {
		case silent && !inSilence:
			inSilence = true
			start = f
		case !silent && inSilence:
			if err := flush(f); err != nil {
				return nil, err
			}
			inSilence = false
		}
	}

	if err := flush(frames); err != nil {
		return nil, err
	}

	return segments, nil
}

// SilencePercentage returns the share of the buffer's frames covered by
// detected silence, 0 to 100.
func (d *SilenceDetector) SilencePercentage(buf *audio.SampleBuffer) (float64, error) {
	segments, err := d.DetectSegments(buf)
	if err != nil {
		return 0, err
	}

	frames := buf.Frames()
	if frames == 0 {
		return 0, nil
	}

	silent := 0
	for _, s := range segments {
		silent += s.Frames()
	}

	return 100 * float64(silent) / float64(frames), nil
}

// TotalSilence returns the combined duration of all detected segments.
func (d *SilenceDetector) TotalSilence(buf *audio.SampleBuffer) (time.Duration, error) {
	segments, err := d.DetectSegments(buf)
	if err != nil {
		return 0, err
	}

	var total time.Duration
	for _, s := range segments {
		total += s.Duration
	}

	return total, nil
}

// frameMagnitude is the largest absolute sample across the frame's
// channels.
func frameMagnitude(data []float32, channels, frame int) float32 {
	base := frame * channels
	mag := float32(0)

	for c := 0; c < channels; c++ {
		s := data[base+c]
		if s < 0 {
			s = -s
		}
		if s > mag {
			mag = s
		}
	}

	return mag
}

// trimEdges drops a silence segment anchored at the buffer start and one
// anchored at the end. Interior segments are left alone.
func (d *SilenceDetector) trimEdges(buf *audio.SampleBuffer, segments []SilenceSegment) {
	frames := buf.Frames()
	start, end := 0, frames

	for _, s := range segments {
		if s.Start == 0 {
			start = s.End
		}
		if s.End == frames {
			end = s.Start
		}
	}

	if start == 0 && end == frames {
		return
	}

	if start >= end {
		buf.Data = buf.Data[:0]
		return
	}

	out := make([]float32, (end-start)*buf.Channels)
	copy(out, buf.Data[start*buf.Channels:end*buf.Channels])
	buf.Data = out
}

// excise removes every segment and repacks the remaining frames
// contiguously.
func (d *SilenceDetector) excise(buf *audio.SampleBuffer, segments []SilenceSegment) {
	if len(segments) == 0 {
		return
	}

	channels := buf.Channels
	kept := buf.Frames()
	for _, s := range segments {
		kept -= s.Frames()
	}

	out := make([]float32, 0, kept*channels)
	last := 0

	for _, s := range segments {
		out = append(out, buf.Data[last*channels:s.Start*channels]...)
		last = s.End
	}

	out = append(out, buf.Data[last*channels:]...)
	buf.Data = out
}
