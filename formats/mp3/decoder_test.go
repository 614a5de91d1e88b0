// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/ik5/audpipe/audio"
)

// mockPCMStream simulates the gomp3 decoder output: interleaved stereo
// 16-bit little-endian PCM.
type mockPCMStream struct {
	sampleRate int
	samples    []int16
	offset     int
	failRead   bool
}

func (m *mockPCMStream) SampleRate() int { return m.sampleRate }

func (m *mockPCMStream) Read(buf []byte) (int, error) {
	if m.failRead {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(buf)/2, len(m.samples)-m.offset)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(buf[2*i:2*i+2], uint16(m.samples[m.offset+i]))
	}
	m.offset += n

	return n * 2, nil
}

func TestDecodeStream(t *testing.T) {
	t.Parallel()

	src := &mockPCMStream{
		sampleRate: 44100,
		samples:    []int16{0, 16384, -16384, 32767, -32768, 0},
	}

	buf, err := decodeStream(src)
	if err != nil {
		t.Fatalf("decodeStream() error = %v", err)
	}

	if buf.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", buf.SampleRate)
	}
	if buf.Channels != 2 {
		t.Errorf("Channels = %d, want 2", buf.Channels)
	}
	if buf.Format != audio.FormatI16 {
		t.Errorf("Format = %v, want %v", buf.Format, audio.FormatI16)
	}
	if got := buf.Frames(); got != 3 {
		t.Fatalf("Frames() = %d, want 3", got)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1.0, 0}
	for i := range want {
		if diff := math.Abs(float64(buf.Data[i] - want[i])); diff > 1e-6 {
			t.Errorf("Data[%d] = %v, want %v", i, buf.Data[i], want[i])
		}
	}

	if err := buf.Validate(); err != nil {
		t.Errorf("decoded buffer invalid: %v", err)
	}
}

func TestDecodeStream_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	// Five samples is two frames plus a dangling left sample.
	src := &mockPCMStream{
		sampleRate: 48000,
		samples:    []int16{100, 200, 300, 400, 500},
	}

	buf, err := decodeStream(src)
	if err != nil {
		t.Fatalf("decodeStream() error = %v", err)
	}

	if got := buf.Frames(); got != 2 {
		t.Errorf("Frames() = %d, want 2", got)
	}
}

func TestDecodeStream_ReadError(t *testing.T) {
	t.Parallel()

	src := &mockPCMStream{sampleRate: 44100, failRead: true}

	if _, err := decodeStream(src); err == nil {
		t.Fatal("decodeStream() did not surface the read error")
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an mpeg stream")))
	if err == nil {
		t.Fatal("Decode() accepted garbage input")
	}
}
