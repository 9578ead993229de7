// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package n64z

import "errors"

// Sentinel errors shared by every format's decoder and encoder.
var (
	// ErrInvalidYaz0Header is returned when a Yaz0 stream is missing the "Yaz0"
	// magic, is shorter than the 0x10-byte header, or has nonzero padding.
	ErrInvalidYaz0Header = errors.New("n64z: invalid Yaz0 header")
	// ErrInvalidYay0Header is returned when a Yay0 stream is missing the "Yay0" magic.
	ErrInvalidYay0Header = errors.New("n64z: invalid Yay0 header")
	// ErrInvalidMio0Header is returned when a MIO0 stream is missing the "MIO0" magic.
	ErrInvalidMio0Header = errors.New("n64z: invalid MIO0 header")
	// ErrOutOfBounds is returned when a stream read would extend past the input,
	// a window index would extend past the decompressed buffer, or a header field
	// is internally inconsistent.
	ErrOutOfBounds = errors.New("n64z: out of bounds")
	// ErrUnalignedRead is returned when an aligned big-endian read is requested
	// at an offset that isn't a multiple of the field width.
	ErrUnalignedRead = errors.New("n64z: unaligned read")
	// ErrByteConversion is returned when a slice-to-fixed-width conversion fails.
	// Defensive; unreachable through the public API.
	ErrByteConversion = errors.New("n64z: byte conversion failed")
	// ErrInvalidCompressionLevel is returned when a legacy-gzip level falls
	// outside [4, 9].
	ErrInvalidCompressionLevel = errors.New("n64z: invalid compression level")
	// ErrCorruptData is returned when a MIO0 link field decodes to a length or
	// offset outside its permissible range, and when a legacy-gzip stream is
	// shorter than its 8-byte trailer, fails to inflate, or does not match its
	// trailer's CRC32 or size.
	ErrCorruptData = errors.New("n64z: corrupt data")
	// ErrUnknownFormat is returned when Compress/Decompress/CompressBound/
	// DecompressBound are called with an unrecognized Format value.
	ErrUnknownFormat = errors.New("n64z: unknown format")
	// ErrCompressInternal names an internal compressor invariant violation.
	// No function in this package returns it at present.
	ErrCompressInternal = errors.New("n64z: internal compressor error")
)
