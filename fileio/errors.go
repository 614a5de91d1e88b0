// SPDX-License-Identifier: EPL-2.0

package fileio

import "errors"

var (
	// ErrUnsupportedFormat is raised when no codec is registered for a
	// path's extension.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrFileExists is raised when writing would replace an existing
	// file and Overwrite is off.
	ErrFileExists = errors.New("output file already exists")
)
