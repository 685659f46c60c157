// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package glz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestMatchFinder(t *testing.T, blockSize int) *matchFinder {
	t.Helper()
	return newMatchFinder(&EncoderOptions{
		BlockSize:  blockSize,
		HashLog:    12,
		Depth:      32,
		NiceLength: 64,
	})
}

func TestLongestMatchFindsRepeat(t *testing.T) {
	// The first "wxyz" starts at position 1: a chain walk ends at an entry
	// for position 0, so position 0 is never offered as a candidate.
	src := append([]byte("-wxyz"), bytes.Repeat([]byte("wxyz"), 1)...)
	src = append(src, "tail"...)
	mf := newTestMatchFinder(t, len(src))

	var seq encodeSequence
	// prime positions 0..4 into the chain (all misses, nothing usable precedes them)
	for i := 0; i < 5; i++ {
		mf.longestMatch(src, i, i, &seq)
	}
	found := mf.longestMatch(src, 5, 5, &seq)
	require.True(t, found)
	require.Equal(t, 4, seq.ol)
	require.GreaterOrEqual(t, seq.ml, minMatch)
}

func TestLongestMatchNoPriorEntryMisses(t *testing.T) {
	src := []byte("abcdefgh")
	mf := newTestMatchFinder(t, len(src))
	var seq encodeSequence
	found := mf.longestMatch(src, 0, 0, &seq)
	require.False(t, found)
	require.Zero(t, seq.ml)
}

func TestLongestMatchRejectsTooCloseOffset(t *testing.T) {
	// distance must be > 3; "aaaa" repeated gives distance-1 matches that
	// the finder must refuse even though the bytes agree.
	src := bytes.Repeat([]byte{'a'}, 16)
	mf := newTestMatchFinder(t, len(src))
	var seq encodeSequence
	for i := 0; i < 3; i++ {
		mf.longestMatch(src, i, i, &seq)
	}
	found := mf.longestMatch(src, 3, 3, &seq)
	// the chain from position 3 offers positions 2 and 1 (distances 1 and 2),
	// both failing the "distance > 3" acceptance test, and the walk ends at
	// the entry for position 0.
	require.False(t, found)
}

func TestResetClearsChains(t *testing.T) {
	src := bytes.Repeat([]byte("abcd"), 4)
	mf := newTestMatchFinder(t, len(src))
	var seq encodeSequence
	for i := 0; i < 5; i++ {
		mf.longestMatch(src, i, i, &seq)
	}
	require.True(t, mf.longestMatch(src, 5, 5, &seq))

	mf.reset()
	found := mf.longestMatch(src, 5, 5, &seq)
	require.False(t, found)
}

func TestEstimateCostGrowsWithExtendedFields(t *testing.T) {
	small := estimateCost(2, 4, 8)
	large := estimateCost(10000, 10000, 1<<30)
	require.Greater(t, large, small)
}
