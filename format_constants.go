// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package glz

// Format constants: these are part of the GLZ bitstream and must match
// exactly between encoder and decoder. See the token byte layout below.
const (
	// minMatch is the smallest match length permitted in a non-terminal sequence.
	minMatch = 3

	// tokenExt is the MLT/LLT value (7) that signals "extended length follows".
	tokenExt = 7

	// mlExtBase is the match length at which the extended (encode-mod) length field begins.
	mlExtBase = minMatch + tokenExt

	// llExtBase is the literal length at which the extended (encode-mod) length field begins.
	llExtBase = tokenExt
)

// Token byte bit positions, MSB first: OL2(2) | MLT(3) | LLT(3).
const (
	llShift = 0
	mlShift = 3
	olShift = 6

	llMask = 0x07
	mlMask = 0x07
	olMask = 0x03
)

// Policy constants: these may vary across builds without affecting the
// bitstream (spec.md §6). Defaults are tuned for a 256 KiB block.
const (
	// DefaultBlockSize is the largest block handed to EncodeBlock/DecodeBlock
	// by the stream layer. Must stay <= 1<<24 since a hash-chain entry packs
	// a position into 24 bits.
	DefaultBlockSize = 1 << 18

	// DefaultHashLog is the log2 of the number of hash-chain buckets.
	DefaultHashLog = 17

	// DefaultDepth is the maximum number of chain hops per match search.
	DefaultDepth = 64

	// DefaultNiceLength is the match length beyond which the chain walk
	// stops early.
	DefaultNiceLength = 128

	// windowSize is the trailing region near the end of a block where the
	// encoder stops looking for new matches; the last windowSize bytes are
	// always emitted through the literal-only terminal sequence or as part of
	// a match that started earlier.
	windowSize = 32

	// skipTrigger controls the geometric skip schedule used when no match is
	// found: skip = 1 + (misses >> skipTrigger).
	skipTrigger = 13

	// maxBlockSize is the hard ceiling imposed by the 24-bit position field
	// packed into each hash-chain entry (spec.md §9).
	maxBlockSize = 1 << 24
)

// Resource-model constants (spec.md §5): buffer margins.
const (
	// SlopBytes is the trailing slack every caller-owned I/O buffer must
	// carry beyond its logical length.
	SlopBytes = 1 << 16

	// encodeOverheadBytes is the minimum dst headroom beyond len(src) that
	// EncodeBlock checks for before encoding. EncodeBlock copies literals
	// with exact-length byte loops and does no overcopy.
	encodeOverheadBytes = 16

	// decodeOverheadBytes is the extra dst space DecodeStream allocates
	// beyond the block size. DecodeBlock copies literals and matches with
	// exact-length byte loops and writes nothing past the decompressed
	// length, so it does not itself need this margin.
	decodeOverheadBytes = 32
)
