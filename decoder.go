// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package glz

// DecodeBlock decompresses payload[:payloadLen] into dst and returns the
// number of bytes written. It trusts nothing about payload: every read is
// bounds-checked against payloadLen, and every write is bounds-checked
// against len(dst), so a corrupt or adversarial payload can only ever
// produce a *CorruptPayload, never read or write out of bounds (spec.md
// §4.H, §7).
//
// dst must be at least as large as the block's expected decompressed size;
// an oversized payload that would overrun dst is reported as a
// ReasonSizeMismatch CorruptPayload rather than a panic, since unlike
// EncodeBlock's buffers, decode output size is a function of untrusted
// input and cannot be validated up front.
func DecodeBlock(payload []byte, payloadLen int, dst []byte) (int, error) {
	if payloadLen > len(payload) {
		payloadLen = len(payload)
	}

	ip := 0
	op := 0

	for ip < payloadLen {
		tok := payload[ip]
		ip++
		ol2, mlt, llt := unpackToken(tok)

		ll := llt
		if llt == tokenExt {
			ext, consumed, err := decodeModChecked(payload[ip:], payloadLen-ip, ip)
			if err != nil {
				return 0, err
			}
			ll = llExtBase + int(ext)
			ip += consumed
		}

		if ll > 0 {
			if ip+ll > payloadLen {
				return 0, corrupt(ReasonTruncated, ip)
			}
			if op+ll > len(dst) {
				return 0, corrupt(ReasonSizeMismatch, op)
			}
			constCopy(ll, payload, dst, ip, op)
			ip += ll
			op += ll
		}

		if ip == payloadLen {
			// Terminal sequence: no match follows.
			return op, nil
		}

		offExt, consumed, err := decodeModChecked(payload[ip:], payloadLen-ip, ip)
		if err != nil {
			return 0, err
		}
		ip += consumed
		offset := int(offExt)<<offsetShift | ol2

		if offset == 0 || offset > op {
			return 0, corrupt(ReasonOffsetOverflow, op)
		}

		ml := minMatch + mlt
		if mlt == tokenExt {
			ext, consumed, err := decodeModChecked(payload[ip:], payloadLen-ip, ip)
			if err != nil {
				return 0, err
			}
			ml = mlExtBase + int(ext)
			ip += consumed
		}

		if op+ml > len(dst) {
			return 0, corrupt(ReasonSizeMismatch, op)
		}

		so := op - offset
		fixedCopyWithin(dst, so, op, ml)
		op += ml
	}

	return op, nil
}
