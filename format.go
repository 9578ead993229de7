// SPDX-License-Identifier: GPL-2.0-only

package n64z

// Format identifies one of the four supported container formats.
type Format int

const (
	Yaz0 Format = iota
	Yay0
	Mio0
	LegacyGzip
)

func (f Format) String() string {
	switch f {
	case Yaz0:
		return "Yaz0"
	case Yay0:
		return "Yay0"
	case Mio0:
		return "MIO0"
	case LegacyGzip:
		return "LegacyGzip"
	default:
		return "unknown"
	}
}

// CompressOptions configures Compress. Level and SmallMem are only
// meaningful for LegacyGzip; Yaz0/Yay0/MIO0 ignore them.
type CompressOptions struct {
	// Level selects the legacy-gzip match-search preset, [4, 9].
	Level int
	// SmallMem shrinks the legacy-gzip hash index (15 to 13 bits) and block
	// buffer (0x8000 to 0x2000 bytes).
	SmallMem bool
}

// DefaultCompressOptions returns the options legacy-gzip reference tools
// default to: level 6, full-size hash index.
func DefaultCompressOptions() CompressOptions {
	return CompressOptions{Level: 6}
}

// Decompress inverts Compress for the given format.
func Decompress(format Format, input []byte) ([]byte, error) {
	switch format {
	case Yaz0:
		return DecompressYaz0(input)
	case Yay0:
		return DecompressYay0(input)
	case Mio0:
		return DecompressMio0(input)
	case LegacyGzip:
		return decompressLegacyGzip(input)
	default:
		return nil, ErrUnknownFormat
	}
}

// Compress encodes input in the given format. opts is only consulted for
// LegacyGzip; pass nil to use DefaultCompressOptions.
func Compress(format Format, input []byte, opts *CompressOptions) ([]byte, error) {
	switch format {
	case Yaz0:
		return CompressYaz0(input)
	case Yay0:
		return CompressYay0(input)
	case Mio0:
		return CompressMio0(input)
	case LegacyGzip:
		o := DefaultCompressOptions()
		if opts != nil {
			o = *opts
		}
		return compressLegacyGzip(input, o.Level, o.SmallMem)
	default:
		return nil, ErrUnknownFormat
	}
}

// CompressBound returns a conservative upper bound on the compressed size
// of an input of the given length, for the given format. For LegacyGzip,
// very short inputs can compress to one byte more than the returned value
// (see legacyGzipCompressBound).
func CompressBound(format Format, inputLen int) (int, error) {
	switch format {
	case Yaz0:
		return Yaz0CompressBound(inputLen), nil
	case Yay0:
		return Yay0CompressBound(inputLen), nil
	case Mio0:
		return Mio0CompressBound(inputLen), nil
	case LegacyGzip:
		return legacyGzipCompressBound(inputLen), nil
	default:
		return 0, ErrUnknownFormat
	}
}

// DecompressBound reads the declared uncompressed size from a compressed
// stream's header without decoding the body.
func DecompressBound(format Format, header []byte) (int, error) {
	switch format {
	case Yaz0:
		return Yaz0DecompressBound(header)
	case Yay0:
		return Yay0DecompressBound(header)
	case Mio0:
		return Mio0DecompressBound(header)
	case LegacyGzip:
		return legacyGzipDecompressBound(header)
	default:
		return 0, ErrUnknownFormat
	}
}
