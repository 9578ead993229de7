// SPDX-License-Identifier: GPL-2.0-only

package n64z

// n64WindowSize is the history window (W) shared by Yaz0, Yay0, and MIO0.
const n64WindowSize = 0x1000

// n64HashSize is the chained hash table size, MASK = 0x7FFF.
const n64HashSize = 0x8000
const n64HashMask = n64HashSize - 1

// n64MaxMatch is the longest match length the three N64 formats can encode.
const n64MaxMatch = 0x111

// n64Matcher is a hash-chain sliding-window match finder over a whole
// in-memory buffer, shared by the Yaz0/Yay0/MIO0 compressors. Chains are
// FIFO (oldest first) with O(1) front eviction of entries that have aged
// out of the window, per bucket.
type n64Matcher struct {
	data     []byte
	head     [n64HashSize]int32 // oldest position in each bucket, -1 if empty
	tail     [n64HashSize]int32 // newest position in each bucket
	next     []int32            // per-position "next newer" link within its bucket
	inserted int                // positions [0, inserted) are already indexed
}

// reset rebinds the matcher to a new input buffer, reusing its backing
// arrays (see n64window_pool.go).
func (m *n64Matcher) reset(data []byte) {
	m.data = data
	for i := range m.head {
		m.head[i] = -1
		m.tail[i] = -1
	}
	if cap(m.next) < len(data) {
		m.next = make([]int32, len(data))
	} else {
		m.next = m.next[:len(data)]
	}
	m.inserted = 0
}

// hash3 computes the rolling 3-byte hash used to bucket positions.
func (m *n64Matcher) hash3(p int) int {
	h := 0
	h = ((h << 5) ^ int(m.data[p])) & n64HashMask
	h = ((h << 5) ^ int(m.data[p+1])) & n64HashMask
	h = ((h << 5) ^ int(m.data[p+2])) & n64HashMask
	return h
}

// insert indexes position p into its hash bucket. Callers must insert
// positions in strictly increasing order.
func (m *n64Matcher) insert(p int) {
	if p+3 > len(m.data) {
		return
	}
	h := m.hash3(p)
	m.next[p] = -1
	if m.tail[h] != -1 {
		m.next[m.tail[h]] = int32(p)
	} else {
		m.head[h] = int32(p)
	}
	m.tail[h] = int32(p)
}

// advanceTo inserts every position in [inserted, p) into the hash index,
// bringing the index up to date before a query at p.
func (m *n64Matcher) advanceTo(p int) {
	for ; m.inserted < p; m.inserted++ {
		m.insert(m.inserted)
	}
}

// matchLen returns the common-prefix length of data[cand:] and data[p:],
// capped at maxLen and at the remaining input length.
func (m *n64Matcher) matchLen(cand, p, maxLen int) int {
	limit := len(m.data) - p
	if maxLen < limit {
		limit = maxLen
	}
	n := 0
	for n < limit && m.data[cand+n] == m.data[p+n] {
		n++
	}
	return n
}

// find returns the longest back-reference available to position p from the
// preceding n64WindowSize bytes, or (0, 0) if none reaches MIN_MATCH (3).
// advanceTo(p) must have been called first. Ties are broken by accepting
// the first (oldest) candidate that reaches the running-best length.
func (m *n64Matcher) find(p, maxLen int) (pos, length int) {
	if p+3 > len(m.data) {
		return 0, 0
	}
	h := m.hash3(p)
	limit := p - n64WindowSize

	// Evict expired entries from the front of the chain; each position is
	// evicted at most once over the matcher's lifetime.
	cur := m.head[h]
	for cur != -1 && int(cur) < limit {
		cur = m.next[cur]
	}
	m.head[h] = cur
	if cur == -1 {
		m.tail[h] = -1
	}

	bestLen := 0
	bestPos := -1
	for cur != -1 {
		c := int(cur)
		l := m.matchLen(c, p, maxLen)
		if l > bestLen {
			bestLen = l
			bestPos = c
			if bestLen >= maxLen {
				break
			}
		}
		cur = m.next[cur]
	}
	if bestLen < 3 {
		return 0, 0
	}
	return bestPos, bestLen
}
