// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package glz

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamRoundTripMultipleBlocks(t *testing.T) {
	opts := DefaultEncoderOptions()
	opts.BlockSize = 4096

	rng := rand.New(rand.NewSource(7))
	src := make([]byte, opts.BlockSize*3+123)
	_, err := rng.Read(src)
	require.NoError(t, err)
	// Splice in a compressible run so not every block is pure literals.
	copy(src[1000:], bytes.Repeat([]byte("abcabcabcabc"), 50))

	var compressed bytes.Buffer
	require.NoError(t, EncodeStream(&compressed, bytes.NewReader(src), opts))

	var decompressed bytes.Buffer
	decOpts := &DecoderOptions{MaxBlockSize: opts.BlockSize}
	require.NoError(t, DecodeStream(&decompressed, bytes.NewReader(compressed.Bytes()), decOpts))

	require.True(t, bytes.Equal(src, decompressed.Bytes()))
}

func TestStreamRoundTripEmpty(t *testing.T) {
	var compressed, decompressed bytes.Buffer
	require.NoError(t, EncodeStream(&compressed, bytes.NewReader(nil), nil))
	require.Equal(t, 0, compressed.Len())
	require.NoError(t, DecodeStream(&decompressed, bytes.NewReader(compressed.Bytes()), nil))
	require.Equal(t, 0, decompressed.Len())
}

func TestStreamRoundTripExactBlockMultiple(t *testing.T) {
	opts := DefaultEncoderOptions()
	opts.BlockSize = 1024
	src := []byte(strings.Repeat("0123456789", 1024/10+1))[:opts.BlockSize*2]

	var compressed bytes.Buffer
	require.NoError(t, EncodeStream(&compressed, bytes.NewReader(src), opts))

	var decompressed bytes.Buffer
	decOpts := &DecoderOptions{MaxBlockSize: opts.BlockSize}
	require.NoError(t, DecodeStream(&decompressed, bytes.NewReader(compressed.Bytes()), decOpts))

	require.True(t, bytes.Equal(src, decompressed.Bytes()))
}

func TestDecodeStreamRejectsOversizedLengthPrefix(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFF, 0xFF, 0x7F}) // huge declared length, no payload behind it

	var decompressed bytes.Buffer
	opts := &DecoderOptions{MaxBlockSize: 1024}
	err := DecodeStream(&decompressed, &buf, opts)
	require.ErrorIs(t, err, ErrInputTooLarge)
}
