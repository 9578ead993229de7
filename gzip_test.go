// SPDX-License-Identifier: GPL-2.0-only

package n64z

import (
	"bytes"
	"testing"
)

func gzipRoundTrip(t *testing.T, data []byte, level int, smallMem bool) []byte {
	t.Helper()
	compressed, err := compressLegacyGzip(data, level, smallMem)
	if err != nil {
		t.Fatalf("compressLegacyGzip(level=%d): %v", level, err)
	}
	decompressed, err := decompressLegacyGzip(compressed)
	if err != nil {
		t.Fatalf("decompressLegacyGzip(level=%d): %v", level, err)
	}
	if !bytes.Equal(decompressed, data) {
		t.Fatalf("round trip mismatch at level %d: got %d bytes, want %d", level, len(decompressed), len(data))
	}
	return compressed
}

func TestLegacyGzipRoundTripAllLevels(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 200)
	for level := 4; level <= 9; level++ {
		gzipRoundTrip(t, data, level, false)
	}
}

func TestLegacyGzipRoundTripSmallMem(t *testing.T) {
	data := bytes.Repeat([]byte("small memory variant test data "), 300)
	gzipRoundTrip(t, data, 6, true)
}

func TestLegacyGzipRoundTripEmpty(t *testing.T) {
	gzipRoundTrip(t, nil, 6, false)
}

func TestLegacyGzipRoundTripSingleByte(t *testing.T) {
	gzipRoundTrip(t, []byte{0x2A}, 6, false)
}

func TestLegacyGzipRoundTripRandom(t *testing.T) {
	data := make([]byte, 20000)
	seed := uint32(987654321)
	for i := range data {
		seed = seed*1664525 + 1013904223
		data[i] = byte(seed >> 16)
	}
	gzipRoundTrip(t, data, 6, false)
}

func TestLegacyGzipRoundTripWindowBoundary(t *testing.T) {
	for _, n := range []int{gzipWindowSize - 1, gzipWindowSize, gzipWindowSize + 1, 2 * gzipWindowSize} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i % 7)
		}
		gzipRoundTrip(t, data, 6, false)
	}
}

func TestLegacyGzipInvalidLevelRejected(t *testing.T) {
	if _, err := compressLegacyGzip([]byte("x"), 3, false); err != ErrInvalidCompressionLevel {
		t.Fatalf("want ErrInvalidCompressionLevel, got %v", err)
	}
	if _, err := compressLegacyGzip([]byte("x"), 10, false); err != ErrInvalidCompressionLevel {
		t.Fatalf("want ErrInvalidCompressionLevel, got %v", err)
	}
}

func TestLegacyGzipCorruptTrailerDetected(t *testing.T) {
	data := []byte("verify the CRC and size trailer are actually checked")
	compressed := gzipRoundTrip(t, data, 6, false)
	tampered := append([]byte(nil), compressed...)
	tampered[len(tampered)-1] ^= 0xFF
	if _, err := decompressLegacyGzip(tampered); err != ErrCorruptData {
		t.Fatalf("want ErrCorruptData for a tampered trailer, got %v", err)
	}
}

func TestLegacyGzipCompressBoundNeverExceeded(t *testing.T) {
	data := make([]byte, 10000)
	for i := range data {
		data[i] = byte(i)
	}
	compressed, err := compressLegacyGzip(data, 6, false)
	if err != nil {
		t.Fatalf("compressLegacyGzip: %v", err)
	}
	bound := legacyGzipCompressBound(len(data))
	if len(compressed) > bound {
		t.Fatalf("compressed size %d exceeds bound %d", len(compressed), bound)
	}
}

func TestLegacyGzipDecompressBoundReadsTrailerSize(t *testing.T) {
	data := bytes.Repeat([]byte("bound check"), 50)
	compressed := gzipRoundTrip(t, data, 6, false)
	size, err := legacyGzipDecompressBound(compressed)
	if err != nil {
		t.Fatalf("legacyGzipDecompressBound: %v", err)
	}
	if size != len(data) {
		t.Fatalf("got %d, want %d", size, len(data))
	}
}

func TestLegacyGzipRoundTripNearWindowGarbageBoundary(t *testing.T) {
	// buildGzipWindow places gzipWindowGarbage right at the next multiple of
	// 2*W past the input's end; exercise lengths straddling that boundary so
	// match selection actually reaches into the padded tail.
	boundary := 2 * gzipWindowSize
	for _, n := range []int{boundary - 4, boundary - 1, boundary, boundary + 1, boundary + 4} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i % 5)
		}
		gzipRoundTrip(t, data, 9, false)
	}
}

func TestLegacyGzipRoundTripHeuristicFlushRange(t *testing.T) {
	// More than gzipHeuristicFlushTokens tokens, so deflateBody's periodic
	// early-flush check actually runs at least once; round trip must hold
	// regardless of which way the check resolves.
	data := make([]byte, 5*gzipHeuristicFlushTokens)
	seed := byte(1)
	for i := range data {
		seed = seed*37 + 1
		data[i] = seed & 0x03
	}
	gzipRoundTrip(t, data, 6, false)
}

func TestLegacyGzipStoredBlockForIncompressibleData(t *testing.T) {
	// Random-looking data with no repeats should still round trip even
	// though the stored block is likely to win the cost comparison.
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte((i*197 + 53) % 256)
	}
	gzipRoundTrip(t, data, 9, false)
}
