// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package glz

// Encoder compresses one block at a time. It owns a hash-chain match finder
// sized for a fixed maximum block, so it is reusable across many blocks
// without reallocating (spec.md §4.G, §5): call Reset (implicitly done by
// EncodeBlock) between unrelated blocks, or keep calling EncodeBlock on a
// stream of blocks directly.
//
// An Encoder is not safe for concurrent use; give each goroutine its own.
type Encoder struct {
	opts EncoderOptions
	mf   *matchFinder
	seq  encodeSequence
}

// NewEncoder validates opts and allocates an Encoder sized for
// opts.BlockSize. The returned Encoder can encode any block up to that size.
func NewEncoder(opts *EncoderOptions) (*Encoder, error) {
	if opts == nil {
		opts = DefaultEncoderOptions()
	}
	if opts.BlockSize <= 0 || opts.BlockSize > maxBlockSize {
		return nil, ErrInvalidOptions
	}
	if opts.HashLog <= 0 || opts.HashLog > 24 {
		return nil, ErrInvalidOptions
	}
	if opts.Depth <= 0 || opts.NiceLength <= 0 {
		return nil, ErrInvalidOptions
	}

	o := *opts
	return &Encoder{
		opts: o,
		mf:   newMatchFinder(&o),
	}, nil
}

// Reset clears the match finder's hash chains, as if the Encoder had just
// been constructed. EncodeBlock always does this itself at the start of a
// block, so Reset only matters if a caller wants to drop accumulated state
// without encoding (e.g. between unrelated files sharing one Encoder).
func (e *Encoder) Reset() {
	e.mf.reset()
}

// EncodeBlock compresses src into dst and returns the number of compressed
// bytes written. It panics on programmer error (spec.md §7): a src longer
// than the Encoder's configured BlockSize (ErrBlockTooLarge), or a dst
// shorter than len(src)+encodeOverheadBytes (ErrBufferTooSmall). Both are
// caller bugs, never a function of untrusted input, so panicking rather than
// returning an error matches how this package treats other API-contract
// violations. That length check is a lower bound, not the worst case: the
// output for match-heavy input can be longer than len(src)+encodeOverheadBytes,
// and a dst too short for the actual output panics with an index-out-of-range
// error while the sequences are written.
//
// Before returning, it also checks the terminal-block invariant every
// sequence emitted must satisfy: the literal and match lengths accounted for
// across the whole block must sum to exactly len(src) (spec.md §5
// "Supplemented Features", mirroring the Rust prototype's
// `assert!(compressed_bytes == src.len())`). A mismatch means the scan loop
// or the match finder mis-tracked a position, never something an attacker
// can trigger through src's contents, so it panics rather than returning an
// error.
func (e *Encoder) EncodeBlock(src, dst []byte) int {
	n := len(src)
	if n > e.opts.BlockSize {
		panic(ErrBlockTooLarge)
	}
	if len(dst) < n+encodeOverheadBytes {
		panic(ErrBufferTooSmall)
	}

	e.mf.reset()

	dstPos := 0
	literalStart := 0
	missCounter := 0
	pos := 0
	consumed := 0

	for pos+windowSize < n {
		e.mf.prefetch(src, pos+1)

		if !e.mf.longestMatch(src, pos, pos-literalStart, &e.seq) {
			skip := 1 + (missCounter >> skipTrigger)
			missCounter++
			pos += skip
			continue
		}
		missCounter = 0

		ll := pos - literalStart
		ml := e.seq.ml
		ol := e.seq.ol

		dstPos = emitSequence(dst, dstPos, src, literalStart, ll, ol, ml)
		consumed += ll + ml

		e.mf.advance(src, pos, ml)
		pos += ml
		literalStart = pos
	}

	tailLL := n - literalStart
	dstPos = emitTerminal(dst, dstPos, src, literalStart, tailLL)
	consumed += tailLL

	if consumed != n {
		panic(ErrSequenceAccounting)
	}

	return dstPos
}

// emitSequence writes one full sequence (literal run + back-reference) at
// dst[pos:] and returns the position just past it: token, optional extended
// literal length, the literal bytes themselves, the offset remainder
// (always present once there is a match), and optional extended match
// length (spec.md §3, §4.F).
func emitSequence(dst []byte, pos int, src []byte, litStart, ll, ol, ml int) int {
	dst[pos] = packToken(ll, ml, ol)
	pos++

	if ll >= tokenExt {
		pos = writeVarint(dst, pos, uint64(ll-llExtBase))
	}
	if ll > 0 {
		constCopy(ll, src, dst, litStart, pos)
		pos += ll
	}

	pos = writeVarint(dst, pos, uint64(ol>>offsetShift))

	if ml-minMatch >= tokenExt {
		pos = writeVarint(dst, pos, uint64(ml-mlExtBase))
	}

	return pos
}

// emitTerminal writes a block's final, match-free sequence: a token (OL2
// and MLT both zero) followed by an optional extended literal length and
// the remaining literal bytes. The decoder recognizes this as the last
// sequence because no bytes remain in the payload afterward, not from any
// bit in the token.
func emitTerminal(dst []byte, pos int, src []byte, litStart, ll int) int {
	dst[pos] = packTerminalToken(ll)
	pos++

	if ll >= tokenExt {
		pos = writeVarint(dst, pos, uint64(ll-llExtBase))
	}
	if ll > 0 {
		constCopy(ll, src, dst, litStart, pos)
		pos += ll
	}

	return pos
}
