// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrUnsupportedBitDepth indicates a PCM bit depth outside the
	// supported set.
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
)
