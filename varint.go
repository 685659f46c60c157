// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package glz

// encode-mod is GLZ's variable-length unsigned integer encoding (spec.md
// §3, §4.E). It resembles LEB128 but continuation bytes contribute their
// full 8 bits rather than 7: decoding shifts each byte's full unsigned value
// left by the running shift and keeps accumulating 7 bits of shift per byte,
// terminating on the first byte <= 0x7f.

// encodeMod appends the encode-mod representation of v to dst and returns
// the extended slice.
func encodeMod(v uint64, dst []byte) []byte {
	for v > 0x7f {
		dst = append(dst, byte(v&0xff)|0x80)
		// v > 0x7f here, so v-0x80 never underflows; this is the exact
		// inverse of decodeMod's shift-and-accumulate step.
		v = (v - 0x80) >> 7
	}
	dst = append(dst, byte(v))
	return dst
}

// decodeMod reads an encode-mod integer from the front of src and returns
// the decoded value along with the number of bytes consumed. The caller
// must ensure src is non-empty and long enough; decodeModChecked is the
// bounds-checked variant used by the decoder.
func decodeMod(src []byte) (value uint64, consumed int) {
	var shift uint
	for {
		b := src[consumed]
		value += uint64(b) << shift
		consumed++
		if b <= 0x7f {
			return value, consumed
		}
		shift += 7
	}
}

// writeVarint writes the encode-mod representation of v directly into
// dst[pos:], returning the position just past the written bytes. Unlike
// encodeMod it never grows dst: callers (the encoder) have already checked
// dst has enough headroom, and a silent reallocation here would detach the
// written bytes from the buffer the caller is holding.
func writeVarint(dst []byte, pos int, v uint64) int {
	for v > 0x7f {
		dst[pos] = byte(v&0xff) | 0x80
		pos++
		v = (v - 0x80) >> 7
	}
	dst[pos] = byte(v)
	pos++
	return pos
}

// decodeModChecked is decodeMod with an explicit bound on how far it may
// read, returning a *CorruptPayload (ReasonTruncated) instead of reading
// past limit. at is the absolute payload offset of src[0], used only for
// the error's diagnostic field.
func decodeModChecked(src []byte, limit int, at int) (value uint64, consumed int, err error) {
	var shift uint
	for consumed < limit {
		b := src[consumed]
		value += uint64(b) << shift
		consumed++
		if b <= 0x7f {
			return value, consumed, nil
		}
		shift += 7
	}
	return 0, 0, corrupt(ReasonTruncated, at+limit)
}
