// SPDX-License-Identifier: GPL-2.0-only

package n64z

import "testing"

func TestCanonicalizeLengthsDistinctCodes(t *testing.T) {
	lengths := []int{3, 3, 3, 3, 3, 2, 4, 4}
	codes := canonicalizeLengths(lengths, 15)
	seen := map[uint16]bool{}
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		c := codes[sym]
		if seen[c] {
			t.Fatalf("duplicate code %v for length-prefix set", c)
		}
		seen[c] = true
	}
}

func TestBuildHuffmanAllLengthsWithinBound(t *testing.T) {
	freq := make([]int, lNumSymbols)
	for i := range freq {
		freq[i] = 1
	}
	// Fibonacci-weighted frequencies build a tree far deeper than
	// maxCodeLength, to stress the overflow-correction path.
	a, b := 1, 1
	for i := 0; i < 30; i++ {
		freq[i] = a
		a, b = b, a+b
	}
	code := buildHuffman(freq, maxCodeLength)
	for sym, l := range code.lengths {
		if l > maxCodeLength {
			t.Fatalf("symbol %d has length %d > max %d", sym, l, maxCodeLength)
		}
	}
}

func TestBuildHuffmanSingleSymbolGetsCode(t *testing.T) {
	freq := make([]int, 10)
	freq[3] = 5
	code := buildHuffman(freq, maxCodeLength)
	if code.lengths[3] == 0 {
		t.Fatalf("sole used symbol must get a nonzero-length code")
	}
}

func TestBuildHuffmanPrefixFree(t *testing.T) {
	freq := []int{10, 1, 1, 1, 1, 1, 1, 50, 3, 7}
	code := buildHuffman(freq, maxCodeLength)

	type entry struct {
		code   uint16
		length int
	}
	var entries []entry
	for sym, l := range code.lengths {
		if l > 0 {
			entries = append(entries, entry{code.codes[sym], l})
		}
	}
	for i := range entries {
		for j := range entries {
			if i == j {
				continue
			}
			a, b := entries[i], entries[j]
			if a.length > b.length {
				continue
			}
			// a.length <= b.length: a's code must not be a prefix of b's.
			// Codes are stored bit-reversed, so the first-sent bits are the low ones.
			mask := uint16(1)<<a.length - 1
			if a.code == b.code&mask {
				t.Fatalf("code %v (len %d) is a prefix of %v (len %d)", a.code, a.length, b.code, b.length)
			}
		}
	}
}

func TestReverseBits(t *testing.T) {
	if got := reverseBits(0b001, 3); got != 0b100 {
		t.Fatalf("got %b, want %b", got, 0b100)
	}
	if got := reverseBits(0b1011, 4); got != 0b1101 {
		t.Fatalf("got %b, want %b", got, 0b1101)
	}
}

func TestRunLengthEncodeLengthsRoundsTripHistogram(t *testing.T) {
	seq := make([]int, 0, 200)
	for i := 0; i < 150; i++ {
		seq = append(seq, 0)
	}
	for i := 0; i < 20; i++ {
		seq = append(seq, 4)
	}
	seq = append(seq, 1, 2, 3)

	entries, freq := runLengthEncodeLengths(seq)

	decoded := make([]int, 0, len(seq))
	for _, e := range entries {
		switch e.sym {
		case 16:
			prev := decoded[len(decoded)-1]
			for i := 0; i < e.extraVal+3; i++ {
				decoded = append(decoded, prev)
			}
		case 17:
			for i := 0; i < e.extraVal+3; i++ {
				decoded = append(decoded, 0)
			}
		case 18:
			for i := 0; i < e.extraVal+11; i++ {
				decoded = append(decoded, 0)
			}
		default:
			decoded = append(decoded, e.sym)
		}
	}
	if len(decoded) != len(seq) {
		t.Fatalf("decoded length %d != source length %d", len(decoded), len(seq))
	}
	for i := range seq {
		if decoded[i] != seq[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, decoded[i], seq[i])
		}
	}

	total := 0
	for _, f := range freq {
		total += f
	}
	if total != len(entries) {
		t.Fatalf("frequency total %d != entry count %d", total, len(entries))
	}
}
