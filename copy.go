// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package glz

// constCopy copies exactly size bytes from src[so:] to dst[do:] using an
// explicit byte loop rather than the copy builtin. This is deliberate: a
// library call (or a compiler-fused memmove) is fine when src/dst don't
// alias but actively wrong for fixedCopyWithin below, where overlap is the
// point. Keeping both primitives on the same explicit-loop shape keeps their
// performance comparable and avoids surprises if one call site is later
// changed to overlap.
//
// Callers guarantee so+size <= len(src) and do+size <= len(dst); this
// function does not bounds-check.
func constCopy(size int, src, dst []byte, so, do int) {
	s := src[so : so+size : so+size]
	d := dst[do : do+size : do+size]
	for i := 0; i < size; i++ {
		d[i] = s[i]
	}
}

// fixedCopyWithin copies size bytes from dst[so:so+size] to dst[do:do+size]
// within the same slice, byte by byte in increasing index order. When
// do-so < size this deliberately re-reads bytes it has already written
// earlier in the loop, which is exactly the run-length replication an
// overlapping LZ77 match requires (e.g. offset=1 replicates the preceding
// byte across the whole match). A generic copy() or memmove would instead
// preserve the original (pre-copy) source contents and produce the wrong
// result for overlapping regions.
func fixedCopyWithin(dst []byte, so, do, size int) {
	for i := 0; i < size; i++ {
		dst[do+i] = dst[so+i]
	}
}
