// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (sliding_window_pool.go)

package n64z

import "sync"

var n64MatcherPool = sync.Pool{
	New: func() any {
		m := &n64Matcher{}
		for i := range m.head {
			m.head[i] = -1
			m.tail[i] = -1
		}
		return m
	},
}

// acquireN64Matcher borrows a matcher bound to data from the pool.
func acquireN64Matcher(data []byte) *n64Matcher {
	m := n64MatcherPool.Get().(*n64Matcher)
	m.reset(data)
	return m
}

// releaseN64Matcher returns a matcher to the pool for reuse.
func releaseN64Matcher(m *n64Matcher) {
	m.data = nil
	n64MatcherPool.Put(m)
}
