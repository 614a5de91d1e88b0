// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the stream is not a valid RIFF/WAVE file.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a file whose chunk layout the
	// decoder cannot handle.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrUnsupportedBitDepth indicates a PCM bit depth outside the
	// supported set.
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
)
