// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package glz

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// wideCompare reports whether the CPU offers a fast 128-bit-ish compare
// path. Go has no portable intrinsic for _mm_cmpeq_epi8/movemask without a
// per-architecture assembly file, so the "SIMD fast path" promoted by
// spec.md §4.A is a CPU-feature-gated two-word (16 byte) probe instead of a
// single generic stdlib call: on SSE2-capable amd64 and NEON-capable arm64
// we unroll the word loop by two, halving the number of branches taken on
// the common case of a long run of equal bytes.
var wideCompare = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD

// count returns the length of the longest common prefix of a and b. It
// never reads past either slice (spec.md §4.A, testable property 4).
// Callers in this package guarantee at least windowSize bytes of slack at
// both ends, but count itself is safe for arbitrary slices.
func count(a, b []byte) int {
	n := min(len(a), len(b))
	if wideCompare {
		return countWide(a[:n], b[:n])
	}
	return countWord(a[:n], b[:n])
}

// countWide processes 16-byte chunks as two back-to-back uint64 word
// compares, falling back to countWord for the remainder.
func countWide(a, b []byte) int {
	n := len(a)
	i := 0
	for i+16 <= n {
		w1a := binary.LittleEndian.Uint64(a[i:])
		w1b := binary.LittleEndian.Uint64(b[i:])
		if diff := w1a ^ w1b; diff != 0 {
			return i + bits.TrailingZeros64(diff)/8
		}

		w2a := binary.LittleEndian.Uint64(a[i+8:])
		w2b := binary.LittleEndian.Uint64(b[i+8:])
		if diff := w2a ^ w2b; diff != 0 {
			return i + 8 + bits.TrailingZeros64(diff)/8
		}

		i += 16
	}
	return i + countWord(a[i:], b[i:])
}

// countWord processes word-sized (8 byte) chunks: xor the loaded words and
// count trailing zero bits divided by eight. On mismatch the answer is
// accumulated + trailing_zeros(diff)/8. The final partial word, if any, is
// compared byte by byte.
func countWord(a, b []byte) int {
	n := len(a)
	i := 0
	for i+8 <= n {
		wa := binary.LittleEndian.Uint64(a[i:])
		wb := binary.LittleEndian.Uint64(b[i:])
		if diff := wa ^ wb; diff != 0 {
			return i + bits.TrailingZeros64(diff)/8
		}
		i += 8
	}
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
