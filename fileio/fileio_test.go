// SPDX-License-Identifier: EPL-2.0

package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audpipe/audio"
)

func testBuffer() *audio.SampleBuffer {
	return &audio.SampleBuffer{
		SampleRate: 8000,
		Channels:   1,
		Data:       []float32{0, 0.25, -0.25, 0.5, -0.5, 0},
	}
}

func TestWriteAndReadWAV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tone.wav")

	io := Default()
	if err := io.WriteAudio(path, testBuffer()); err != nil {
		t.Fatalf("WriteAudio() error = %v", err)
	}

	buf, err := io.ReadAudio(path)
	if err != nil {
		t.Fatalf("ReadAudio() error = %v", err)
	}

	if buf.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", buf.SampleRate)
	}
	if buf.Channels != 1 {
		t.Errorf("Channels = %d, want 1", buf.Channels)
	}
	if got := buf.Frames(); got != 6 {
		t.Errorf("Frames() = %d, want 6", got)
	}
}

func TestReadAudio_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, err := Default().ReadAudio("notes.txt")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ReadAudio() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestReadAudio_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Default().ReadAudio(filepath.Join(t.TempDir(), "missing.wav"))
	if err == nil {
		t.Fatal("ReadAudio() did not fail on a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadAudio() error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestReadAudio_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corrupt.wav")
	if err := os.WriteFile(path, []byte("this is not riff data"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Default().ReadAudio(path); err == nil {
		t.Fatal("ReadAudio() accepted a corrupt file")
	}
}

func TestReadAudio_EmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.wav")

	empty := &audio.SampleBuffer{SampleRate: 8000, Channels: 1}
	if err := Default().WriteAudio(path, empty); err != nil {
		t.Fatalf("WriteAudio() error = %v", err)
	}

	_, err := Default().ReadAudio(path)
	if !errors.Is(err, audio.ErrEmptyBuffer) {
		t.Errorf("ReadAudio() error = %v, want ErrEmptyBuffer", err)
	}
}

func TestWriteAudio_ExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")

	io := Default()
	if err := io.WriteAudio(path, testBuffer()); err != nil {
		t.Fatalf("first WriteAudio() error = %v", err)
	}

	err := io.WriteAudio(path, testBuffer())
	if !errors.Is(err, ErrFileExists) {
		t.Errorf("second WriteAudio() error = %v, want ErrFileExists", err)
	}

	io.Overwrite = true
	if err := io.WriteAudio(path, testBuffer()); err != nil {
		t.Errorf("overwriting WriteAudio() error = %v", err)
	}
}

func TestWriteAudio_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	err := Default().WriteAudio("out.flac", testBuffer())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("WriteAudio() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRegistry_CaseInsensitiveExtensions(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	for _, path := range []string{"A.WAV", "b.Mp3", "c.OGG", "d.AiFF"} {
		if _, ok := r.DecoderFor(path); !ok {
			t.Errorf("DecoderFor(%q) found no decoder", path)
		}
	}

	if _, ok := r.DecoderFor("noextension"); ok {
		t.Error("DecoderFor() matched a path without extension")
	}
}

func TestDeriveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		outputDir string
		suffix    string
		format    string
		want      string
	}{
		{
			name:   "same directory",
			input:  filepath.Join("in", "episode.wav"),
			suffix: "_processed",
			want:   filepath.Join("in", "episode_processed.wav"),
		},
		{
			name:      "output directory",
			input:     filepath.Join("in", "episode.wav"),
			outputDir: "out",
			suffix:    "_processed",
			want:      filepath.Join("out", "episode_processed.wav"),
		},
		{
			name:   "format override",
			input:  filepath.Join("in", "episode.mp3"),
			suffix: "_norm",
			format: "wav",
			want:   filepath.Join("in", "episode_norm.wav"),
		},
		{
			name:  "empty suffix",
			input: "take.ogg",
			want:  "take.ogg",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DeriveOutputPath(tt.input, tt.outputDir, tt.suffix, tt.format)
			if got != tt.want {
				t.Errorf("DeriveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
