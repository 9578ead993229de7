// SPDX-License-Identifier: GPL-2.0-only

package n64z

// blockToken is one literal or match decision queued for the current block.
type blockToken struct {
	isMatch  bool
	literal  byte
	length   int
	distance int
}

// blockWriter accumulates one DEFLATE block's worth of tokens, then picks
// and emits the cheapest of stored/fixed/dynamic encodings.
type blockWriter struct {
	tokens      []blockToken
	litFreq     [lNumSymbols]int
	distFreq    [dNumSymbols]int
	rawLen      int // source bytes represented by the queued tokens
	matchTokens int
}

func newBlockWriter() *blockWriter {
	return &blockWriter{}
}

func (b *blockWriter) reset() {
	b.tokens = b.tokens[:0]
	for i := range b.litFreq {
		b.litFreq[i] = 0
	}
	for i := range b.distFreq {
		b.distFreq[i] = 0
	}
	b.rawLen = 0
	b.matchTokens = 0
}

func (b *blockWriter) empty() bool { return len(b.tokens) == 0 }

func (b *blockWriter) addLiteral(c byte) {
	b.tokens = append(b.tokens, blockToken{literal: c})
	b.litFreq[c]++
	b.rawLen++
}

func (b *blockWriter) addMatch(length, distance int) {
	b.tokens = append(b.tokens, blockToken{isMatch: true, length: length, distance: distance})
	lsym := lengthSymbolTable[length]
	b.litFreq[lsym]++
	dsym, _ := distanceSymbol(distance)
	b.distFreq[dsym]++
	b.rawLen += length
	b.matchTokens++
}

func litExtraBitsFor(sym int) int {
	if sym >= 257 {
		return lengthExtraBits[sym-257]
	}
	return 0
}

// storedCostBits returns the total bit cost of a stored block holding rawLen
// bytes that starts at bit position bitPos: the 3 header bits, the padding to
// the next byte boundary, the 32-bit LEN/NLEN field, and the data itself.
func storedCostBits(bitPos, rawLen int) int {
	afterHeader := bitPos + 3
	padding := (8 - afterHeader%8) % 8
	return 3 + padding + 32 + 8*rawLen
}

// fixedCostBits returns the total bit cost of a fixed-Huffman block encoding
// litFreq/distFreq, including its 3-bit block-type header (self-contained,
// like storedCostBits and buildDynamicPlan's own totals — callers must not
// add the header bits again).
func fixedCostBits(litFreq [lNumSymbols]int, distFreq [dNumSymbols]int) int {
	bits := 3
	for sym, f := range litFreq {
		if f == 0 {
			continue
		}
		bits += f * (fixedLCodeLengths[sym] + litExtraBitsFor(sym))
	}
	bits += fixedLCodeLengths[endOfBlockSymbol]
	for sym, f := range distFreq {
		if f == 0 {
			continue
		}
		bits += f * (fixedDCodeLengths[sym] + distanceExtraBits[sym])
	}
	return bits
}

// dynamicPlan holds everything flush() needs to actually emit a dynamic block
// once it has been chosen as cheapest, so the cost computation isn't repeated.
type dynamicPlan struct {
	litCode, distCode, blCode *huffmanCode
	hlit, hdist, hclen        int
	clSeq                     []clSymbol
	bits                      int
}

type clSymbol struct {
	sym, extraBits, extraVal int
}

// buildDynamicPlan expects litFreq to already include one count for the
// end-of-block symbol (256), so it always receives a Huffman code.
func buildDynamicPlan(litFreq [lNumSymbols]int, distFreq [dNumSymbols]int) *dynamicPlan {
	litCode := buildHuffman(litFreq[:], maxCodeLength)
	distCode := buildHuffman(distFreq[:], maxCodeLength)

	maxLit := endOfBlockSymbol
	for i := len(litCode.lengths) - 1; i > maxLit; i-- {
		if litCode.lengths[i] > 0 {
			maxLit = i
			break
		}
	}
	maxDist := 0
	for i := len(distCode.lengths) - 1; i > 0; i-- {
		if distCode.lengths[i] > 0 {
			maxDist = i
			break
		}
	}

	seq := make([]int, 0, maxLit+1+maxDist+1)
	seq = append(seq, litCode.lengths[:maxLit+1]...)
	seq = append(seq, distCode.lengths[:maxDist+1]...)

	clSeq, blFreq := runLengthEncodeLengths(seq)
	blCode := buildHuffman(blFreq[:], maxBlCodeLength)

	hclen := bNumSymbols
	for hclen > 4 && blCode.lengths[blSymbolOrder[hclen-1]] == 0 {
		hclen--
	}

	bits := 3 + 5 + 5 + 4 + 3*hclen
	for _, e := range clSeq {
		bits += blCode.lengths[e.sym] + e.extraBits
	}
	for sym, f := range litFreq {
		if f > 0 {
			bits += f * litCode.lengths[sym]
			bits += f * litExtraBitsFor(sym)
		}
	}
	for sym, f := range distFreq {
		if f > 0 {
			bits += f * distCode.lengths[sym]
			bits += f * distanceExtraBits[sym]
		}
	}

	return &dynamicPlan{
		litCode: litCode, distCode: distCode, blCode: blCode,
		hlit: maxLit + 1 - 257, hdist: maxDist + 1 - 1, hclen: hclen - 4,
		clSeq: clSeq, bits: bits,
	}
}

// runLengthEncodeLengths factors a concatenated code-length sequence into
// the code-length alphabet's run-length symbols (16/17/18 for repeats) plus
// literal code-length symbols (0-15), and tallies their frequencies.
func runLengthEncodeLengths(seq []int) ([]clSymbol, [bNumSymbols]int) {
	var out []clSymbol
	var freq [bNumSymbols]int
	emit := func(sym, extraBits, extraVal int) {
		out = append(out, clSymbol{sym, extraBits, extraVal})
		freq[sym]++
	}

	i, n := 0, len(seq)
	for i < n {
		val := seq[i]
		j := i + 1
		for j < n && seq[j] == val {
			j++
		}
		runLen := j - i

		if val == 0 {
			for runLen > 0 {
				switch {
				case runLen >= 11:
					take := runLen
					if take > 138 {
						take = 138
					}
					emit(18, 7, take-11)
					runLen -= take
				case runLen >= 3:
					take := runLen
					if take > 10 {
						take = 10
					}
					emit(17, 3, take-3)
					runLen -= take
				default:
					for k := 0; k < runLen; k++ {
						emit(0, 0, 0)
					}
					runLen = 0
				}
			}
		} else {
			emit(val, 0, 0)
			runLen--
			for runLen > 0 {
				if runLen >= 3 {
					take := runLen
					if take > 6 {
						take = 6
					}
					emit(16, 2, take-3)
					runLen -= take
				} else {
					for k := 0; k < runLen; k++ {
						emit(val, 0, 0)
					}
					runLen = 0
				}
			}
		}
		i = j
	}
	return out, freq
}

func emitSymbol(bw *bitWriter, code *huffmanCode, sym int) {
	bw.writeBits(uint32(code.codes[sym]), uint(code.lengths[sym]))
}

func writeTokens(bw *bitWriter, tokens []blockToken, litCode, distCode *huffmanCode) {
	for _, t := range tokens {
		if !t.isMatch {
			emitSymbol(bw, litCode, int(t.literal))
			continue
		}
		lsym := lengthSymbolTable[t.length]
		emitSymbol(bw, litCode, lsym)
		if eb := lengthExtraBits[lsym-257]; eb > 0 {
			bw.writeBits(uint32(lengthSymbolExtra[t.length]), uint(eb))
		}
		dsym, dextra := distanceSymbol(t.distance)
		emitSymbol(bw, distCode, dsym)
		if eb := distanceExtraBits[dsym]; eb > 0 {
			bw.writeBits(uint32(dextra), uint(eb))
		}
	}
	emitSymbol(bw, litCode, endOfBlockSymbol)
}

// flush picks the cheapest block encoding (stored < fixed < dynamic on a
// byte-count tie) and writes it, given the raw source bytes this block's
// tokens span (needed only for a stored block) and whether this is the
// final block of the stream.
func (b *blockWriter) flush(bw *bitWriter, raw []byte, final bool) {
	bfinal := uint32(0)
	if final {
		bfinal = 1
	}

	storedBits := storedCostBits(bw.bitLength(), len(raw))
	fixedBits := fixedCostBits(b.litFreq, b.distFreq)

	litFreqWithEOB := b.litFreq
	litFreqWithEOB[endOfBlockSymbol]++
	plan := buildDynamicPlan(litFreqWithEOB, b.distFreq)

	storedBytes := (storedBits + 7) / 8
	fixedBytes := (fixedBits + 7) / 8
	dynamicBytes := (plan.bits + 7) / 8

	switch {
	case storedBytes <= fixedBytes && storedBytes <= dynamicBytes:
		bw.writeBits(bfinal|0<<1, 3)
		bw.flushBits()
		n := len(raw)
		bw.out = append(bw.out, byte(n), byte(n>>8), byte(^n), byte(^n>>8))
		bw.out = append(bw.out, raw...)
	case fixedBytes <= dynamicBytes:
		bw.writeBits(bfinal|1<<1, 3)
		litCode := &huffmanCode{lengths: fixedLCodeLengths, codes: fixedLCodes}
		distCode := &huffmanCode{lengths: fixedDCodeLengths, codes: fixedDCodes}
		writeTokens(bw, b.tokens, litCode, distCode)
	default:
		bw.writeBits(bfinal|2<<1, 3)
		bw.writeBits(uint32(plan.hlit), 5)
		bw.writeBits(uint32(plan.hdist), 5)
		bw.writeBits(uint32(plan.hclen), 4)
		for i := 0; i < plan.hclen+4; i++ {
			bw.writeBits(uint32(plan.blCode.lengths[blSymbolOrder[i]]), 3)
		}
		for _, e := range plan.clSeq {
			emitSymbol(bw, plan.blCode, e.sym)
			if e.extraBits > 0 {
				bw.writeBits(uint32(e.extraVal), uint(e.extraBits))
			}
		}
		writeTokens(bw, b.tokens, plan.litCode, plan.distCode)
	}
}
