// SPDX-License-Identifier: GPL-2.0-only

package n64z

import (
	"bytes"
	"testing"
)

func yaz0RoundTrip(t *testing.T, data []byte) []byte {
	t.Helper()
	compressed, err := CompressYaz0(data)
	if err != nil {
		t.Fatalf("CompressYaz0: %v", err)
	}
	decompressed, err := DecompressYaz0(compressed)
	if err != nil {
		t.Fatalf("DecompressYaz0: %v", err)
	}
	if !bytes.Equal(decompressed, data) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(decompressed), len(data))
	}
	return compressed
}

func TestYaz0RoundTripEmpty(t *testing.T) {
	yaz0RoundTrip(t, nil)
}

func TestYaz0RoundTripSingleByte(t *testing.T) {
	yaz0RoundTrip(t, []byte{0x42})
}

func TestYaz0RoundTripRepeats(t *testing.T) {
	data := bytes.Repeat([]byte("abcd"), 500)
	yaz0RoundTrip(t, data)
}

func TestYaz0RoundTripRandom(t *testing.T) {
	data := make([]byte, 5000)
	seed := uint32(12345)
	for i := range data {
		seed = seed*1664525 + 1013904223
		data[i] = byte(seed >> 24)
	}
	yaz0RoundTrip(t, data)
}

func TestYaz0RoundTripWindowBoundary(t *testing.T) {
	for _, n := range []int{n64WindowSize - 1, n64WindowSize, n64WindowSize + 1, 2 * n64WindowSize} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i % 251)
		}
		yaz0RoundTrip(t, data)
	}
}

func TestYaz0HeaderRoundTrip(t *testing.T) {
	data := []byte("hello world, this is a test string for Yaz0 compression")
	compressed := yaz0RoundTrip(t, data)

	if string(compressed[0:4]) != "Yaz0" {
		t.Fatalf("missing Yaz0 magic")
	}
	size, err := Yaz0DecompressBound(compressed)
	if err != nil {
		t.Fatalf("Yaz0DecompressBound: %v", err)
	}
	if size != len(data) {
		t.Fatalf("got declared size %d, want %d", size, len(data))
	}
}

func TestYaz0InvalidHeader(t *testing.T) {
	if _, err := DecompressYaz0([]byte("Yaz1\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")); err != ErrInvalidYaz0Header {
		t.Fatalf("want ErrInvalidYaz0Header, got %v", err)
	}
	if _, err := DecompressYaz0([]byte("short")); err != ErrInvalidYaz0Header {
		t.Fatalf("want ErrInvalidYaz0Header for short input, got %v", err)
	}
}

func TestYaz0NonzeroPaddingRejected(t *testing.T) {
	hdr := make([]byte, 16)
	copy(hdr, "Yaz0")
	hdr[8] = 1
	if _, err := DecompressYaz0(hdr); err != ErrInvalidYaz0Header {
		t.Fatalf("want ErrInvalidYaz0Header for nonzero padding, got %v", err)
	}
}

func TestYaz0MaxMatchExactLength(t *testing.T) {
	// n64MaxMatch is the longest single match Yaz0 can encode; a run one
	// byte longer must still round trip using two tokens.
	data := bytes.Repeat([]byte{0xAA}, n64MaxMatch+1)
	yaz0RoundTrip(t, data)
}
