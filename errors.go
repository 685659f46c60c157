// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package glz

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmer-error conditions: undersized buffers, bad
// options, and stream-level I/O wrapping. These are never attacker-data
// dependent, unlike CorruptPayload below.
var (
	// ErrBufferTooSmall is panicked by EncodeBlock when dst is shorter than
	// len(src)+encodeOverheadBytes (spec.md §7: insufficient output buffer
	// is a programmer error). DecodeBlock reports a too-small dst as a
	// ReasonSizeMismatch CorruptPayload instead.
	ErrBufferTooSmall = errors.New("glz: destination buffer too small")

	// ErrBlockTooLarge is panicked by EncodeBlock when a source block is
	// longer than the Encoder's configured BlockSize.
	ErrBlockTooLarge = errors.New("glz: block exceeds maximum block size")

	// ErrInvalidOptions is returned when NewEncoder is given nonsensical
	// parameters (zero/negative sizes, hash log out of range).
	ErrInvalidOptions = errors.New("glz: invalid encoder options")

	// ErrInputTooLarge is returned by the stream reader when a frame's
	// declared length could not possibly fit the configured block size.
	ErrInputTooLarge = errors.New("glz: compressed block length exceeds configured block size")

	// ErrSequenceAccounting is panicked by EncodeBlock if the literal and
	// match lengths summed across every emitted sequence don't equal the
	// source block's length (spec.md §5's terminal-block assertion). This
	// can only mean a bug in the scan loop or match finder, never a
	// property of the input bytes.
	ErrSequenceAccounting = errors.New("glz: internal error: emitted sequence lengths do not sum to block length")
)

// CorruptionKind enumerates the three recoverable decode failures named in
// spec.md §7.
type CorruptionKind int

const (
	// ReasonTruncated: an encode-mod read or literal/match copy would read
	// past payloadLen.
	ReasonTruncated CorruptionKind = iota
	// ReasonOffsetOverflow: a decoded back-reference offset exceeds the
	// current output position.
	ReasonOffsetOverflow
	// ReasonSizeMismatch: a literal run or match copy would write past the
	// end of dst.
	ReasonSizeMismatch
)

func (k CorruptionKind) String() string {
	switch k {
	case ReasonTruncated:
		return "truncated"
	case ReasonOffsetOverflow:
		return "offset_overflow"
	case ReasonSizeMismatch:
		return "size_mismatch"
	default:
		return "unknown"
	}
}

// CorruptPayload is returned by DecodeBlock (and anything built on it) when
// the compressed payload cannot be trusted. It is the only error a decoder
// may return; all are recoverable at the caller, which should discard the
// block (spec.md §7).
type CorruptPayload struct {
	Kind CorruptionKind
	// At is the input or output offset where the problem was detected, for
	// diagnostics only.
	At int
}

func (e *CorruptPayload) Error() string {
	return fmt.Sprintf("glz: corrupt payload (%s at offset %d)", e.Kind, e.At)
}

// corrupt builds a *CorruptPayload for the given kind and offset.
func corrupt(kind CorruptionKind, at int) error {
	return &CorruptPayload{Kind: kind, At: at}
}
