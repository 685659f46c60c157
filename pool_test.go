// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package glz

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAcquireReleaseEncoderRoundTrips(t *testing.T) {
	enc := AcquireEncoder()
	defer ReleaseEncoder(enc)

	src := bytes.Repeat([]byte("pooled"), 100)
	dst := make([]byte, len(src)+encodeOverheadBytes)
	n := enc.EncodeBlock(src, dst)

	out := make([]byte, len(src)+decodeOverheadBytes)
	decoded, err := DecodeBlock(dst[:n], n, out)
	require.NoError(t, err)
	require.True(t, bytes.Equal(src, out[:decoded]))
}

func TestReleaseEncoderNilIsNoop(t *testing.T) {
	require.NotPanics(t, func() {
		ReleaseEncoder(nil)
	})
}

func TestEncoderPoolConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			enc := AcquireEncoder()
			defer ReleaseEncoder(enc)

			src := bytes.Repeat([]byte{byte(i)}, 500)
			dst := make([]byte, len(src)+encodeOverheadBytes)
			n := enc.EncodeBlock(src, dst)
			out := make([]byte, len(src)+decodeOverheadBytes)
			decoded, err := DecodeBlock(dst[:n], n, out)
			require.NoError(t, err)
			require.True(t, bytes.Equal(src, out[:decoded]))
		}(i)
	}
	wg.Wait()
}
