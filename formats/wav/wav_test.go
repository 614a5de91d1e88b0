// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audpipe/audio"
)

// writeSeekBuffer gives the encoder the WriteSeeker it needs without
// touching the filesystem.
type writeSeekBuffer struct {
	data   []byte
	offset int64
}

func (w *writeSeekBuffer) Write(p []byte) (int, error) {
	end := w.offset + int64(len(p))
	if end > int64(len(w.data)) {
		grown := make([]byte, end)
		copy(grown, w.data)
		w.data = grown
	}
	copy(w.data[w.offset:], p)
	w.offset = end

	return len(p), nil
}

func (w *writeSeekBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		w.offset = offset
	case io.SeekCurrent:
		w.offset += offset
	case io.SeekEnd:
		w.offset = int64(len(w.data)) + offset
	}

	return w.offset, nil
}

func encodeWAV(t *testing.T, buf *audio.SampleBuffer, bitDepth int) []byte {
	t.Helper()

	w := &writeSeekBuffer{}
	if err := (Encoder{}).Encode(w, buf, bitDepth); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	return w.data
}

func TestRoundTrip16Bit(t *testing.T) {
	t.Parallel()

	src := &audio.SampleBuffer{
		SampleRate: 8000,
		Channels:   2,
		Data:       []float32{0, 0.25, -0.25, 0.5, -0.5, 0.99},
	}

	data := encodeWAV(t, src, 16)

	got, err := (Decoder{}).Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", got.SampleRate)
	}
	if got.Channels != 2 {
		t.Errorf("Channels = %d, want 2", got.Channels)
	}
	if got.Format != audio.FormatI16 {
		t.Errorf("Format = %v, want %v", got.Format, audio.FormatI16)
	}
	if len(got.Data) != len(src.Data) {
		t.Fatalf("len(Data) = %d, want %d", len(got.Data), len(src.Data))
	}

	// 16-bit quantization: half a step of slack.
	for i := range src.Data {
		if diff := math.Abs(float64(got.Data[i] - src.Data[i])); diff > 1.0/32767 {
			t.Errorf("Data[%d] = %v, want about %v", i, got.Data[i], src.Data[i])
		}
	}
}

func TestRoundTrip24Bit(t *testing.T) {
	t.Parallel()

	src := &audio.SampleBuffer{
		SampleRate: 44100,
		Channels:   1,
		Data:       []float32{0.125, -0.125, 0.75, -0.75},
	}

	data := encodeWAV(t, src, 24)

	got, err := (Decoder{}).Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got.Format != audio.FormatI24 {
		t.Errorf("Format = %v, want %v", got.Format, audio.FormatI24)
	}
	for i := range src.Data {
		if diff := math.Abs(float64(got.Data[i] - src.Data[i])); diff > 1.0/8388607 {
			t.Errorf("Data[%d] = %v, want about %v", i, got.Data[i], src.Data[i])
		}
	}
}

func TestEncodeClampsOutOfRange(t *testing.T) {
	t.Parallel()

	src := &audio.SampleBuffer{
		SampleRate: 8000,
		Channels:   1,
		Data:       []float32{2.0, -2.0},
	}

	data := encodeWAV(t, src, 16)

	got, err := (Decoder{}).Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got.Data[0] < 0.99 {
		t.Errorf("Data[0] = %v, want clamped to about 1", got.Data[0])
	}
	if got.Data[1] > -0.99 {
		t.Errorf("Data[1] = %v, want clamped to about -1", got.Data[1])
	}
}

func TestEncodeUnsupportedBitDepth(t *testing.T) {
	t.Parallel()

	src := &audio.SampleBuffer{SampleRate: 8000, Channels: 1, Data: []float32{0}}

	err := (Encoder{}).Encode(&writeSeekBuffer{}, src, 12)
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := (Decoder{}).Decode(bytes.NewReader([]byte("definitely not a riff stream")))
	if err == nil {
		t.Fatal("Decode() accepted garbage input")
	}
}

func TestDecodeNonSeekableReader(t *testing.T) {
	t.Parallel()

	src := &audio.SampleBuffer{
		SampleRate: 8000,
		Channels:   1,
		Data:       []float32{0.5, -0.5},
	}

	data := encodeWAV(t, src, 16)

	// Wrap so the decoder has to buffer the stream itself.
	got, err := (Decoder{}).Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", got.Frames())
	}
}
