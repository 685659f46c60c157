// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package glz

import "encoding/binary"

// mixConstant is the 64-bit multiplicative constant used by the rolling
// hash (spec.md §4.C). It is the same constant used by the Rust prototype's
// cache_table_inner_hash, chosen for its avalanche properties under
// xor-shift-multiply mixing.
const mixConstant = 0xFF51_AFD7_ED55_8CCD

// hashAt maps the hashLen bytes at src[pos:pos+hashLen] to a bucket index in
// [0, 1<<log). Two positions with identical hashLen-byte prefixes always
// produce the same bucket.
//
// The scan position the main encode loop feeds here always has windowSize
// bytes of slack behind it, but advance inserts every position inside an
// accepted match, which can run up to the last byte of the block. Rather
// than thread a second "guaranteed slack" contract through every call site,
// load through a zero-padded scratch array when fewer than 8 bytes remain:
// the bucket it lands in is still deterministic, just less discriminating
// for the last few bytes of a block, which costs nothing but a rare chain
// collision.
func hashAt(src []byte, pos, hashLen, log int) int {
	var h uint64
	if pos+8 <= len(src) {
		h = binary.LittleEndian.Uint64(src[pos:])
	} else {
		var scratch [8]byte
		copy(scratch[:], src[pos:])
		h = binary.LittleEndian.Uint64(scratch[:])
	}
	h <<= uint((8 - hashLen) * 8)
	h ^= h >> 33
	h *= mixConstant
	return int(h >> (64 - uint(log)))
}
