// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package glz

import (
	"encoding/binary"
	"io"
)

// EncodeStream compresses r block by block, writing each block to w as a
// u32 LE compressed-length prefix followed by that many payload bytes.
// There is no larger container format, magic number or checksum (spec.md
// §5, §9 Non-goals): framing exists only so DecodeStream knows where one
// block's payload ends and the next one's length prefix begins.
//
// One Encoder and one pair of buffers are allocated up front and reused
// across every block, so EncodeStream's allocations do not grow with r's size.
func EncodeStream(w io.Writer, r io.Reader, opts *EncoderOptions) error {
	if opts == nil {
		opts = DefaultEncoderOptions()
	}
	enc, err := NewEncoder(opts)
	if err != nil {
		return err
	}

	src := make([]byte, opts.BlockSize)
	dst := make([]byte, opts.BlockSize+SlopBytes)
	var lenPrefix [4]byte

	for {
		n, rerr := io.ReadFull(r, src)
		if n > 0 {
			m := enc.EncodeBlock(src[:n], dst)

			binary.LittleEndian.PutUint32(lenPrefix[:], uint32(m))
			if _, werr := w.Write(lenPrefix[:]); werr != nil {
				return werr
			}
			if _, werr := w.Write(dst[:m]); werr != nil {
				return werr
			}
		}

		switch rerr {
		case nil:
			continue
		case io.EOF, io.ErrUnexpectedEOF:
			return nil
		default:
			return rerr
		}
	}
}

// DecodeStream reverses EncodeStream: it reads a u32 LE length prefix, then
// that many payload bytes, decodes the block and writes the result to w,
// repeating until r is exhausted exactly at a length-prefix boundary.
//
// A length prefix larger than opts.MaxBlockSize's worst-case compressed
// size is rejected with ErrInputTooLarge before any allocation or read it
// would require, guarding against a hostile or corrupt prefix demanding an
// unreasonable buffer.
func DecodeStream(w io.Writer, r io.Reader, opts *DecoderOptions) error {
	if opts == nil {
		opts = DefaultDecoderOptions()
	}

	maxPayload := opts.MaxBlockSize + SlopBytes
	payload := make([]byte, maxPayload)
	dst := make([]byte, opts.MaxBlockSize+decodeOverheadBytes)
	var lenPrefix [4]byte

	for {
		_, err := io.ReadFull(r, lenPrefix[:])
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		m := binary.LittleEndian.Uint32(lenPrefix[:])
		if int(m) > maxPayload {
			return ErrInputTooLarge
		}

		if _, err := io.ReadFull(r, payload[:m]); err != nil {
			return err
		}

		n, err := DecodeBlock(payload, int(m), dst)
		if err != nil {
			return err
		}
		if _, err := w.Write(dst[:n]); err != nil {
			return err
		}
	}
}
