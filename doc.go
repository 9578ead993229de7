// SPDX-License-Identifier: GPL-2.0-only

// Package n64z implements lossless, byte-exact codecs for the compressed
// container formats used by first-party Nintendo 64 game tools: Yaz0, Yay0,
// MIO0, and a headerless legacy DEFLATE variant derived from gzip 1.3.3.
//
// Each format pairs a Decompress function, which is format-agnostic beyond
// its own header layout, with a Compress function that reproduces the
// reference encoder's match-selection behavior rather than just any valid
// encoding of the same bytes. Decompress and Compress round-trip: for any
// input, DecompressX(CompressX(data)) == data.
//
// Compress, Decompress, CompressBound and DecompressBound dispatch across
// all four formats by Format value for callers that don't need to import
// format-specific names.
package n64z
