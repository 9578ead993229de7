// SPDX-License-Identifier: GPL-2.0-only

package n64z

// DEFLATE (RFC 1951) alphabet tables: literal/length (286 symbols),
// distance (30 symbols), and code-length (19 symbols).

const (
	lNumSymbols = 286
	dNumSymbols = 30
	bNumSymbols = 19

	endOfBlockSymbol = 256
	maxCodeLength    = 15
	maxBlCodeLength  = 7
)

// blExtraBits gives the extra-bit count for the three run-length symbols
// of the code-length alphabet; all others take no extra bits.
var blExtraBits = [bNumSymbols]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	2, 3, 7,
}

// blSymbolOrder is the order in which code-length code lengths are
// transmitted in a dynamic block header.
var blSymbolOrder = [bNumSymbols]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// baseLength/lengthExtraBits are indexed by (symbol - 257) for symbols 257-285.
var baseLength = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]int{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

var baseDistance = [dNumSymbols]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distanceExtraBits = [dNumSymbols]int{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// lengthSymbolTable and lengthSymbolExtra map a match length (3..258) to
// its literal/length symbol and extra-value, computed once at package init.
var lengthSymbolTable [259]int
var lengthSymbolExtra [259]int

func init() {
	sym := 0
	for length := 3; length <= 258; length++ {
		for sym < len(baseLength)-1 && length >= baseLength[sym+1] {
			sym++
		}
		lengthSymbolTable[length] = 257 + sym
		lengthSymbolExtra[length] = length - baseLength[sym]
	}
}

// distanceSymbol returns the distance alphabet symbol and extra value for
// a match distance in [1, 32768).
func distanceSymbol(dist int) (sym, extra int) {
	sym = 0
	for sym < dNumSymbols-1 && dist >= baseDistance[sym+1] {
		sym++
	}
	return sym, dist - baseDistance[sym]
}

// Fixed Huffman code lengths (spec 4.D): literal/length 8 for 0-143, 9 for
// 144-255, 7 for 256-279, 8 for 280-287; distance 5 for all 32 slots.
var fixedLCodeLengths = buildFixedLCodeLengths()
var fixedDCodeLengths = buildFixedDCodeLengths()

func buildFixedLCodeLengths() []int {
	l := make([]int, 288)
	for i := 0; i <= 143; i++ {
		l[i] = 8
	}
	for i := 144; i <= 255; i++ {
		l[i] = 9
	}
	for i := 256; i <= 279; i++ {
		l[i] = 7
	}
	for i := 280; i <= 287; i++ {
		l[i] = 8
	}
	return l
}

func buildFixedDCodeLengths() []int {
	d := make([]int, 32)
	for i := range d {
		d[i] = 5
	}
	return d
}

var fixedLCodes = canonicalizeLengths(fixedLCodeLengths, maxCodeLength)
var fixedDCodes = canonicalizeLengths(fixedDCodeLengths, maxCodeLength)
