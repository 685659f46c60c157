// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package glz

// encodeSequence is the encoder's unit of emission: a literal run followed
// by an optional back-reference (spec.md §3).
type encodeSequence struct {
	start int // source offset where the literal run begins
	ll    int // literal length: bytes preceding the match
	ol    int // offset: distance back to the match source
	ml    int // match length: bytes to copy (>= minMatch, except the terminal tail)
	cost  int // estimated encoding cost in bytes, used only by cost-aware selection
}
