// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package glz

// EncoderOptions configures a new Encoder (spec.md §6 new_encoder).
type EncoderOptions struct {
	// BlockSize is the largest block this Encoder will ever be asked to
	// encode. Must be <= maxBlockSize (1<<24).
	BlockSize int
	// HashLog is log2 of the number of hash-chain buckets.
	HashLog int
	// Depth is the maximum number of chain hops per match search.
	Depth int
	// NiceLength is the match length beyond which the chain walk stops early.
	NiceLength int
	// CostAware selects the alternate cost-scored match selection policy
	// (spec.md §4.D "Cost-aware variant") instead of greedy first-improvement.
	CostAware bool
}

// DefaultEncoderOptions returns options tuned for a 256 KiB block with
// greedy match selection.
func DefaultEncoderOptions() *EncoderOptions {
	return &EncoderOptions{
		BlockSize:  DefaultBlockSize,
		HashLog:    DefaultHashLog,
		Depth:      DefaultDepth,
		NiceLength: DefaultNiceLength,
	}
}

// DecoderOptions configures decoding. DecodeBlock itself is stateless and
// needs no options; this type exists for the stream layer and for symmetry
// with EncoderOptions.
type DecoderOptions struct {
	// MaxBlockSize bounds the decompressed size of any single block read
	// from a stream, guarding against a corrupt/hostile length prefix.
	MaxBlockSize int
}

// DefaultDecoderOptions returns options matching DefaultEncoderOptions.
func DefaultDecoderOptions() *DecoderOptions {
	return &DecoderOptions{MaxBlockSize: DefaultBlockSize}
}
