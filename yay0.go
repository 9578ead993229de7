// SPDX-License-Identifier: GPL-2.0-only

package n64z

// Yay0 splits the token stream into three regions: 32-bit control words (one
// set bit per literal token), a 16-bit link table for matches, and a chunk
// region holding literal bytes and the occasional extra length byte.
//
// Unlike MIO0, which adds 1 to its 12-bit offset field before using it as a
// backward index, Yay0's link field is the backward distance itself, used
// directly in a "one-behind" copy index: srcIdx = cursor-offset+i-1. Solving
// for the field that reproduces a genuine match at absolute position pos
// (groupOffset = cursor-pos-1) gives linkField = groupOffset with no further
// adjustment, so groupOffset=0 (matching the immediately preceding byte)
// encodes and decodes exactly like any other distance.

func parseYay0Header(b []byte) (size, linkOffset, chunkOffset int, err error) {
	return parseRegionHeader(b, "Yay0", ErrInvalidYay0Header)
}

// Yay0DecompressBound returns the declared uncompressed size from a Yay0 header.
// Only the magic and size field are read, so the first 0x10 bytes suffice.
func Yay0DecompressBound(header []byte) (int, error) {
	if len(header) < regionHeaderSize || string(header[0:4]) != "Yay0" {
		return 0, ErrInvalidYay0Header
	}
	size, err := readU32BE(header, 4)
	return int(size), err
}

// Yay0CompressBound returns a conservative upper bound on compressed size.
func Yay0CompressBound(inputSize int) int {
	return 4*((inputSize+31)/32) + 2*inputSize + inputSize + regionHeaderSize
}

// DecompressYay0 inverts CompressYay0.
func DecompressYay0(src []byte) ([]byte, error) {
	size, linkOffset, chunkOffset, err := parseYay0Header(src)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, size)
	controlPos := regionHeaderSize
	linkPos := linkOffset
	chunkPos := chunkOffset
	cursor := 0

	var mask uint32
	var bitsLeft uint

	for cursor < size {
		if bitsLeft == 0 {
			w, err := readU32BE(src, controlPos)
			if err != nil {
				return nil, err
			}
			mask = w
			controlPos += 4
			bitsLeft = 32
		}

		if mask&0x80000000 != 0 {
			if chunkPos >= len(src) {
				return nil, ErrOutOfBounds
			}
			dst[cursor] = src[chunkPos]
			chunkPos++
			cursor++
		} else {
			link, err := readU16BE(src, linkPos)
			if err != nil {
				return nil, err
			}
			linkPos += 2

			nibble := link >> 12
			offsetField := int(link & 0x0FFF)
			var length int
			if nibble == 0 {
				if chunkPos >= len(src) {
					return nil, ErrOutOfBounds
				}
				length = int(src[chunkPos]) + 0x12
				chunkPos++
			} else {
				length = int(nibble) + 2
			}
			for i := 0; i < length; i++ {
				srcIdx := cursor - offsetField + i - 1
				if srcIdx < 0 || srcIdx >= len(dst) || cursor+i >= len(dst) {
					return nil, ErrOutOfBounds
				}
				dst[cursor+i] = dst[srcIdx]
			}
			cursor += length
		}

		mask <<= 1
		bitsLeft--
	}

	return dst, nil
}

// CompressYay0 greedily packs bytes using the same single-position-lookahead
// algorithm as Yaz0, emitting into Yay0's three-region framing.
func CompressYay0(src []byte) ([]byte, error) {
	inputSize := len(src)
	b := newRegionBuilder()

	m := acquireN64Matcher(src)
	defer releaseN64Matcher(m)

	inputPos := 0
	for inputPos < inputSize {
		m.advanceTo(inputPos)
		groupPos, groupSize := m.find(inputPos, n64MaxMatch)

		if groupSize <= 2 {
			b.pushLiteral(src[inputPos])
			inputPos++
			continue
		}

		m.advanceTo(inputPos + 1)
		newPos, newSize := m.find(inputPos+1, n64MaxMatch)
		if newSize >= groupSize+2 {
			b.pushLiteral(src[inputPos])
			inputPos++
			groupSize = newSize
			groupPos = newPos
		}

		groupOffset := inputPos - groupPos - 1
		linkField := groupOffset

		if groupSize >= 18 {
			b.pushMatch(uint16(linkField), byte(groupSize-0x12))
		} else {
			nibble := uint16(groupSize - 2)
			b.pushMatch(nibble<<12 | uint16(linkField))
		}
		inputPos += groupSize
	}

	return b.assemble("Yay0", inputSize), nil
}
