// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package glz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeModRoundTrip(t *testing.T) {
	cases := []uint64{
		0, 1, 0x7f, 0x80, 0xff, 300, 16384, 1 << 20, 1 << 32, 1<<40 + 17,
	}

	for _, v := range cases {
		v := v
		t.Run("", func(t *testing.T) {
			dst := encodeMod(v, nil)
			require.NotEmpty(t, dst)

			got, consumed := decodeMod(dst)
			require.Equal(t, v, got)
			require.Equal(t, len(dst), consumed)
		})
	}
}

func TestEncodeModKnownBytes(t *testing.T) {
	// 300 = 0x12C: first byte carries the low 8 bits with the continuation
	// bit set, second byte carries (300-0x80)>>7 = 0x01.
	got := encodeMod(300, nil)
	require.Equal(t, []byte{0xAC, 0x01}, got)
}

func TestDecodeModCheckedTruncated(t *testing.T) {
	src := []byte{0x80, 0x80, 0x80}
	_, _, err := decodeModChecked(src, len(src), 10)
	require.Error(t, err)

	var cp *CorruptPayload
	require.ErrorAs(t, err, &cp)
	require.Equal(t, ReasonTruncated, cp.Kind)
}

func TestDecodeModCheckedConsumesExactly(t *testing.T) {
	src := encodeMod(987654, nil)
	src = append(src, 0xFF, 0xFF) // trailing garbage must not be consumed
	v, consumed, err := decodeModChecked(src, len(src), 0)
	require.NoError(t, err)
	require.Equal(t, uint64(987654), v)
	require.Less(t, consumed, len(src))
}

func TestWriteVarintMatchesEncodeMod(t *testing.T) {
	for _, v := range []uint64{0, 127, 128, 999999} {
		buf := make([]byte, 16)
		end := writeVarint(buf, 0, v)

		want := encodeMod(v, nil)
		require.Equal(t, want, buf[:end])
	}
}

func TestVarintLenMatchesActualEncoding(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 16383, 16384, 1 << 30} {
		require.Equal(t, len(encodeMod(v, nil)), varintLen(v))
	}
}
