// SPDX-License-Identifier: EPL-2.0

package fileio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/audpipe/audio"
)

// Decoder reads a complete audio file into a sample buffer.
type Decoder interface {
	Decode(r io.Reader) (*audio.SampleBuffer, error)
}

// Encoder writes a sample buffer as a complete audio file at the given
// bit depth.
type Encoder interface {
	Encode(w io.WriteSeeker, buf *audio.SampleBuffer, bitDepth int) error
}

// Registry maps file extensions (without the dot, lower case) to codecs.
type Registry struct {
	mtx      sync.Mutex
	decoders map[string]Decoder
	encoders map[string]Encoder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
		encoders: make(map[string]Encoder),
	}
}

// RegisterDecoder binds a decoder to an extension.
func (r *Registry) RegisterDecoder(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[strings.ToLower(ext)] = d
}

// RegisterEncoder binds an encoder to an extension.
func (r *Registry) RegisterEncoder(ext string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[strings.ToLower(ext)] = e
}

// DecoderFor returns the decoder registered for the path's extension.
func (r *Registry) DecoderFor(path string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.decoders[extOf(path)]

	return d, ok
}

// EncoderFor returns the encoder registered for the path's extension.
func (r *Registry) EncoderFor(path string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[extOf(path)]

	return e, ok
}

func extOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// IO reads and writes audio files through a registry. It is safe for
// concurrent use; batch workers share one instance.
type IO struct {
	registry *Registry
	// BitDepth used when encoding, 16, 24 or 32.
	BitDepth int
	// Overwrite allows replacing an existing output file.
	Overwrite bool
}

// New returns an IO over the given registry writing 16-bit output.
func New(registry *Registry) *IO {
	return &IO{
		registry: registry,
		BitDepth: 16,
	}
}

// ReadAudio decodes the file at path into a sample buffer.
func (f *IO) ReadAudio(path string) (*audio.SampleBuffer, error) {
	dec, ok := f.registry.DecoderFor(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	buf, err := dec.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("decoded %s: %w", path, err)
	}

	// An empty container is structurally valid, but a file with no
	// samples has nothing to process or write back.
	if len(buf.Data) == 0 {
		return nil, fmt.Errorf("decoded %s: %w", path, audio.ErrEmptyBuffer)
	}

	return buf, nil
}

// WriteAudio encodes the buffer to the file at path. Unless Overwrite is
// set, an existing file is an error.
func (f *IO) WriteAudio(path string, buf *audio.SampleBuffer) error {
	enc, ok := f.registry.EncoderFor(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if !f.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := enc.Encode(file, buf, f.BitDepth); err != nil {
		file.Close()
		os.Remove(path)

		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}

// DeriveOutputPath builds the output path for an input file: same
// directory (or outputDir when non-empty), filename stem plus suffix,
// original extension unless format overrides it.
func DeriveOutputPath(inputPath, outputDir, suffix, format string) string {
	dir := filepath.Dir(inputPath)
	if outputDir != "" {
		dir = outputDir
	}

	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	if format != "" {
		ext = "." + format
	}

	return filepath.Join(dir, stem+suffix+ext)
}
