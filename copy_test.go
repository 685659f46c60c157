// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package glz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstCopyNonOverlapping(t *testing.T) {
	src := []byte("the quick brown fox")
	dst := make([]byte, 20)
	constCopy(9, src, dst, 4, 0)
	require.Equal(t, "quick bro", string(dst[:9]))
}

func TestFixedCopyWithinReplicatesOverlap(t *testing.T) {
	// offset 1 replicates the immediately preceding byte across the whole
	// run, the classic LZ77 "repeat last byte N times" case.
	dst := make([]byte, 8)
	dst[0] = 'x'
	fixedCopyWithin(dst, 0, 1, 7)
	require.Equal(t, "xxxxxxxx", string(dst))
}

func TestFixedCopyWithinPeriodicPattern(t *testing.T) {
	// offset 3 on "abc" repeated should reproduce the period exactly.
	dst := make([]byte, 9)
	copy(dst, "abc")
	fixedCopyWithin(dst, 0, 3, 6)
	require.Equal(t, "abcabcabc", string(dst))
}

func TestFixedCopyWithinNonOverlapping(t *testing.T) {
	dst := make([]byte, 10)
	copy(dst, "ABCDEfghij")
	fixedCopyWithin(dst, 0, 5, 5)
	require.Equal(t, "ABCDEABCDE", string(dst))
}
