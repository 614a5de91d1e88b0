// SPDX-License-Identifier: EPL-2.0

// Package fileio reads and writes audio files for the processing
// pipeline.
//
// A Registry maps file extensions to codecs; DefaultRegistry binds the
// built-in formats (WAV, MP3, Ogg Vorbis, AIFF for decoding, WAV for
// encoding). The IO type ties a registry to read and write policy:
//
//	io := fileio.Default()
//	buf, err := io.ReadAudio("input.mp3")
//	if err != nil {
//	    return err
//	}
//
//	// ... process buf ...
//
//	io.Overwrite = true
//	err = io.WriteAudio("output.wav", buf)
//
// ReadAudio validates the decoded buffer before returning it, so
// downstream stages can assume a well-formed sample layout.
//
// DeriveOutputPath builds the conventional output name for a processed
// file: the input stem plus a suffix, in the input's directory or an
// explicit output directory.
package fileio
