// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package glz implements GLZ, a byte-oriented LZ77-family block compressor:
hash-chain match finding, a one-byte token per sequence (literal length,
match length and low offset bits), and encode-mod variable-length integers
for anything that overflows its 3-bit token field.

# Compress

	enc, err := glz.NewEncoder(glz.DefaultEncoderOptions())
	dst := make([]byte, len(src)+glz.SlopBytes)
	n := enc.EncodeBlock(src, dst)
	dst = dst[:n]

EncodeBlock panics on programmer error: a source block larger than the
Encoder's configured size, or a destination buffer without enough headroom.
The size checks made up front do not depend on the bytes being compressed,
but the compressed output can be larger than the source, so a destination
also panics if it turns out too short for the actual output; the SlopBytes
margin used above is the one the stream layer allocates.

# Decompress

	n, err := glz.DecodeBlock(payload, len(payload), dst)

DecodeBlock never panics on bad input: a truncated, tampered or otherwise
corrupt payload always comes back as a *CorruptPayload, since unlike
EncodeBlock's buffers, a payload's shape is attacker-controlled.

# Streams

EncodeStream and DecodeStream chunk an io.Reader into blocks, framing each
with a u32 LE compressed-length prefix. There is no container format beyond
that prefix: no magic number, no checksum, no seek index.

# Levels

OptionsForLevel(1..9) trades search effort for ratio, the same shape as a
tuned LZO1X-999 encoder's levels: deeper hash chains, a higher nice-length
early-exit, and cost-aware match selection once the depth makes the extra
arithmetic worth it.
*/
package glz
