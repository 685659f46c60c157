// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package glz

import "sync"

// encoderPool is a pool of Encoders configured with DefaultEncoderOptions,
// letting callers that compress many independent blocks (a server handling
// concurrent requests, a stream multiplexer) avoid reallocating each
// Encoder's hash-chain tables per block.
var encoderPool = sync.Pool{
	New: func() any {
		enc, err := NewEncoder(DefaultEncoderOptions())
		if err != nil {
			panic(err)
		}
		return enc
	},
}

// AcquireEncoder returns an Encoder from the pool, ready to use. Callers
// must pass it to ReleaseEncoder when done; the Encoder only ever runs with
// DefaultEncoderOptions, so callers needing different tuning should build
// their own Encoder with NewEncoder instead of using the pool.
func AcquireEncoder() *Encoder {
	return encoderPool.Get().(*Encoder)
}

// ReleaseEncoder resets enc and returns it to the pool.
func ReleaseEncoder(enc *Encoder) {
	if enc == nil {
		return
	}
	enc.Reset()
	encoderPool.Put(enc)
}
