// SPDX-License-Identifier: GPL-2.0-only

package n64z

// n64region.go holds the three-region framing shared byte-for-byte by Yay0
// and MIO0: a 0x10-byte header, a 32-bit control-word table, a 16-bit link
// table, and a literal/extra-length chunk stream. Yay0 and MIO0 differ only
// in how a link's 16 bits decode to (length, offset) and in the copy-source
// index arithmetic, so those stay in yay0.go/mio0.go.

const regionHeaderSize = 0x10

// parseRegionHeader validates the magic and reads the three-region layout
// fields common to Yay0 and MIO0.
func parseRegionHeader(b []byte, magic string, headerErr error) (size, linkOffset, chunkOffset int, err error) {
	if len(b) < regionHeaderSize {
		return 0, 0, 0, headerErr
	}
	if string(b[0:4]) != magic {
		return 0, 0, 0, headerErr
	}
	sz, err := readU32BE(b, 4)
	if err != nil {
		return 0, 0, 0, err
	}
	lo, err := readU32BE(b, 8)
	if err != nil {
		return 0, 0, 0, err
	}
	co, err := readU32BE(b, 12)
	if err != nil {
		return 0, 0, 0, err
	}
	if int(lo) > len(b) || int(co) > len(b) {
		return 0, 0, 0, ErrOutOfBounds
	}
	return int(sz), int(lo), int(co), nil
}

func writeRegionHeader(magic string, size, linkOffset, chunkOffset int) []byte {
	dst := make([]byte, regionHeaderSize)
	copy(dst, magic)
	putU32BE(dst, 4, uint32(size))
	putU32BE(dst, 8, uint32(linkOffset))
	putU32BE(dst, 12, uint32(chunkOffset))
	return dst
}

// regionBuilder accumulates the three regions while tokens are emitted in
// order: a set control bit (MSB-first, 32 bits per word) marks a literal,
// a clear bit marks a match whose link word lives in the link table.
type regionBuilder struct {
	control    []byte
	link       []byte
	chunk      []byte
	curWordPos int
	curBit     uint32
}

func newRegionBuilder() *regionBuilder {
	return &regionBuilder{}
}

func (b *regionBuilder) beginToken() {
	b.curBit >>= 1
	if b.curBit == 0 {
		b.curBit = 0x80000000
		b.curWordPos = len(b.control)
		b.control = append(b.control, 0, 0, 0, 0)
	}
}

func (b *regionBuilder) pushLiteral(v byte) {
	b.beginToken()
	w, _ := readU32BE(b.control, b.curWordPos)
	w |= b.curBit
	putU32BE(b.control, b.curWordPos, w)
	b.chunk = append(b.chunk, v)
}

func (b *regionBuilder) pushMatch(link uint16, extra ...byte) {
	b.beginToken()
	b.link = append(b.link, byte(link>>8), byte(link))
	b.chunk = append(b.chunk, extra...)
}

// assemble concatenates header + regions in the header-declared order and
// back-patches the link/chunk offsets.
func (b *regionBuilder) assemble(magic string, size int) []byte {
	linkOffset := regionHeaderSize + len(b.control)
	chunkOffset := linkOffset + len(b.link)

	out := writeRegionHeader(magic, size, linkOffset, chunkOffset)
	out = append(out, b.control...)
	out = append(out, b.link...)
	out = append(out, b.chunk...)
	return out
}
