// SPDX-License-Identifier: GPL-2.0-only

package n64z

// gzipWindowGarbage is the 40-byte tail pattern the original gzip-1.3.3
// derivative left at the end of its window buffer (offset 2*W in a
// 2*W+MAX_MATCH allocation), carried over from whatever the C runtime had
// not zeroed at that address. buildGzipWindow places it at the matching
// offset in this package's window buffer, so match selection near the end
// of a stream can read into it exactly as the reference does.
var gzipWindowGarbage = [40]byte{
	0x00, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0xB5, 0x2F,
	0x05, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x52, 0xD0, 0xFF, 0xFF, 0xD0, 0x4A, 0x05, 0x08, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0A, 0x00, 0x00, 0x00,
}

const gzipMaxDist = gzipWindowSize - (gzipMaxMatch + gzipMinMatch + 1)

// buildGzipWindow lays out the buffer match scanning actually reads from:
// the real input, followed by whatever sat past the end of the original
// encoder's last window segment. That segment boundary falls at the next
// multiple of 2*W from the input's end; gzipWindowGarbage is placed starting
// there, exactly where the reference's allocator left it uncleared. Scanning
// only ever reaches this far when the input ends close to that boundary,
// which is why the divergence spec §9 calls out is input-dependent rather
// than universal.
func buildGzipWindow(input []byte) []byte {
	segment := 2 * gzipWindowSize
	windowEnd := ((len(input) + segment - 1) / segment) * segment
	buf := make([]byte, windowEnd+len(gzipWindowGarbage)+gzipMaxMatch)
	copy(buf, input)
	copy(buf[windowEnd:], gzipWindowGarbage[:])
	return buf
}

// gzipMatcher is a hash-chain match finder over the complete input buffer,
// following the classic deflate_slow chaining rules: most-recent-first
// chain walk, chain length quartered once a good match is already in hand,
// an early stop at nice_match, and distances capped at gzipMaxDist.
//
// head/prev store 1-based... no: they store raw 0-based positions with 0
// meaning "no entry", which makes a genuine match at position 0 unreachable
// as a source. That is not an oversight: it is the same boundary condition
// the original chain-based matcher has, and this package's legacy-gzip
// codec intentionally reproduces match-selection behavior bug for bug.
type gzipMatcher struct {
	input     []byte
	window    []byte // input, padded with the reference's window-tail garbage
	head      []int32
	prev      []int32
	cfg       gzipLevelConfig
	hashMask  uint32
	hashShift uint
}

func newGzipMatcher(input []byte, cfg gzipLevelConfig, smallMem bool) *gzipMatcher {
	hashBits := gzipHashBits
	if smallMem {
		hashBits = gzipSmallMemHashBits
	}
	return &gzipMatcher{
		input:     input,
		window:    buildGzipWindow(input),
		head:      make([]int32, 1<<uint(hashBits)),
		prev:      make([]int32, len(input)),
		cfg:       cfg,
		hashMask:  uint32(1<<uint(hashBits)) - 1,
		hashShift: (uint(hashBits) + gzipMinMatch - 1) / gzipMinMatch,
	}
}

func (m *gzipMatcher) hash(p int) uint32 {
	h := uint32(m.input[p])
	h = (h<<m.hashShift ^ uint32(m.input[p+1])) & m.hashMask
	h = (h<<m.hashShift ^ uint32(m.input[p+2])) & m.hashMask
	return h
}

// insertString records position p in its hash bucket and returns the
// bucket's previous head (0 if none), requiring 3 bytes of lookahead at p.
func (m *gzipMatcher) insertString(p int) int {
	h := m.hash(p)
	old := m.head[h]
	m.prev[p] = old
	m.head[h] = int32(p)
	return int(old)
}

func (m *gzipMatcher) matchLenAt(cur, strstart, maxLen int) int {
	l := 0
	for l < maxLen && m.window[cur+l] == m.window[strstart+l] {
		l++
	}
	return l
}

// longestMatch walks the hash chain at strstart looking for the longest
// prior match, quartering the chain budget once prevLength already reached
// good_match and stopping early once nice_match is reached. hashHead is the
// chain head insertString returned for strstart (the bucket's previous
// occupant, before strstart's own insertion) — not re-read from m.head,
// since strstart has already been inserted into that same bucket by the
// time this is called.
//
// Before scanning a candidate in full, a 3-point filter cheaply rejects it:
// the candidate's first two bytes and the byte at the current best length
// must all agree with strstart's, the same pre-check the reference match
// finder runs before committing to a byte-by-byte comparison. Because that
// check indexes strstart+bestLen and cur+bestLen directly, without clamping
// to the real input length, it is what lets match selection near the end of
// a stream reach into the window's padded tail — that padding is exactly
// buildGzipWindow's garbage region, so the filter and the window layout have
// to be wired in together.
func (m *gzipMatcher) longestMatch(strstart, prevLength, hashHead int) (length, dist int) {
	limit := 0
	if strstart > gzipMaxDist {
		limit = strstart - gzipMaxDist
	}
	maxLen := len(m.input) - strstart
	if maxLen > gzipMaxMatch {
		maxLen = gzipMaxMatch
	}
	niceMatch := m.cfg.niceMatch
	if niceMatch > maxLen {
		niceMatch = maxLen
	}

	chainLength := m.cfg.maxChainLength
	if prevLength >= m.cfg.goodMatch {
		chainLength >>= 2
		if chainLength == 0 {
			chainLength = 1
		}
	}

	bestLen := gzipMinMatch - 1
	bestDist := 0
	cur := hashHead
	for cur != 0 && cur > limit && chainLength > 0 {
		if m.window[cur] == m.window[strstart] &&
			m.window[cur+1] == m.window[strstart+1] &&
			m.window[cur+bestLen] == m.window[strstart+bestLen] {
			l := m.matchLenAt(cur, strstart, maxLen)
			if l > bestLen {
				bestLen = l
				bestDist = strstart - cur
				if l >= niceMatch {
					break
				}
			}
		}
		chainLength--
		cur = int(m.prev[cur])
	}
	if bestDist == 0 {
		return 0, 0
	}
	return bestLen, bestDist
}

// deflateBody runs the lazy-matching loop over the full input and returns
// the raw RFC1951 bitstream (no gzip header, no trailer).
func deflateBody(input []byte, level int, smallMem bool) ([]byte, error) {
	cfg, ok := gzipLevelPresets[level]
	if !ok {
		return nil, ErrInvalidCompressionLevel
	}

	n := len(input)
	bw := newBitWriter()

	if n == 0 {
		block := newBlockWriter()
		block.flush(bw, nil, true)
		bw.flushBits()
		return bw.bytes(), nil
	}

	m := newGzipMatcher(input, cfg, smallMem)
	block := newBlockWriter()
	blockBufSize := gzipBlockBufferSize(smallMem)
	blockStart := 0

	const (
		stateSearching = iota
		statePendingLiteral
	)
	state := stateSearching

	prevLength := gzipMinMatch - 1
	prevDist := 0
	strstart := 0

	flush := func(final bool) {
		if block.rawLen == 0 {
			if final {
				block.flush(bw, nil, true)
			}
			return
		}
		raw := input[blockStart : blockStart+block.rawLen]
		block.flush(bw, raw, final)
		blockStart += block.rawLen
		block.reset()
	}

	for strstart < n {
		length, dist := 0, 0
		if strstart+gzipMinMatch <= n {
			hashHead := m.insertString(strstart)
			if prevLength < cfg.maxLazyMatch {
				length, dist = m.longestMatch(strstart, prevLength, hashHead)
				if length == gzipMinMatch && strstart-dist > gzipTooFar {
					length = gzipMinMatch - 1
				}
			}
		}

		if prevLength >= gzipMinMatch && length <= prevLength {
			maxInsert := strstart + (n - strstart) - gzipMinMatch
			block.addMatch(prevLength, prevDist)
			remaining := prevLength - 2
			for remaining > 0 {
				strstart++
				if strstart <= maxInsert && strstart+gzipMinMatch <= n {
					m.insertString(strstart)
				}
				remaining--
			}
			strstart++
			state = stateSearching
			prevLength = gzipMinMatch - 1
		} else if state == statePendingLiteral {
			block.addLiteral(input[strstart-1])
			prevLength, prevDist = length, dist
			state = statePendingLiteral
			strstart++
		} else {
			state = statePendingLiteral
			prevLength, prevDist = length, dist
			strstart++
		}

		if block.rawLen >= blockBufSize {
			flush(false)
		} else if tok := len(block.tokens); tok > 0 && tok%gzipHeuristicFlushTokens == 0 {
			// fixedCostBits needs no Huffman tree, unlike the dynamic plan, so
			// this estimate stays cheap even though it runs every 0x1000 tokens.
			estBits := fixedCostBits(block.litFreq, block.distFreq)
			if block.matchTokens*2 < tok && estBits < 8*block.rawLen/2 {
				flush(false)
			}
		}
	}
	if state == statePendingLiteral {
		block.addLiteral(input[strstart-1])
	}
	flush(true)
	bw.flushBits()

	return bw.bytes(), nil
}
