// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package glz

// packToken packs a sequence's literal length, match length and offset into
// the one-byte token header described in spec.md §3/§4.F:
//
//	bits 7..6  offset low 2 bits (OL2)
//	bits 5..3  match-length token (MLT, 0..7)
//	bits 2..0  literal-length token (LLT, 0..7)
//
// ml must be >= minMatch.
func packToken(ll, ml, ol int) byte {
	if ml < minMatch {
		panic("glz: packToken called with ml < minMatch")
	}

	mlt := ml - minMatch
	if mlt > tokenExt {
		mlt = tokenExt
	}
	llt := ll
	if llt > tokenExt {
		llt = tokenExt
	}
	ol2 := ol & olMask

	return byte(ol2<<olShift | mlt<<mlShift | llt<<llShift)
}

// packTerminalToken packs the literal-length token for a block's final,
// match-free sequence. OL2 and MLT are left zero: the decoder's loop
// recognizes a terminal sequence by running out of payload after the
// literal run, not by inspecting these bits, but zeroing them keeps the
// byte deterministic.
func packTerminalToken(ll int) byte {
	llt := ll
	if llt > tokenExt {
		llt = tokenExt
	}
	return byte(llt << llShift)
}

// unpackToken decomposes a token byte into its OL2, MLT and LLT fields.
func unpackToken(tok byte) (ol2, mlt, llt int) {
	ol2 = int(tok>>olShift) & olMask
	mlt = int(tok>>mlShift) & mlMask
	llt = int(tok>>llShift) & llMask
	return
}
