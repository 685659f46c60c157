// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package glz

// matchFinder is the hash-chain match finder from spec.md §4.D: a per-bucket
// linked list of prior positions, threaded through next by absolute
// position, bounded by a search depth and an early "nice length" stop.
//
// Each heads/next slot packs (first_byte<<24)|position into 32 bits. A zero
// heads slot marks an empty bucket, and a chain walk ends at the first entry
// whose position is 0, so position 0 is never offered as a match candidate.
type matchFinder struct {
	heads []uint32 // bucket -> newest (first_byte<<24)|position, 0 = empty
	next  []uint32 // position -> previous entry at the same bucket

	hashLog    int
	depth      int
	niceLength int
	costAware  bool
}

func newMatchFinder(opts *EncoderOptions) *matchFinder {
	return &matchFinder{
		heads:      make([]uint32, 1<<uint(opts.HashLog)),
		next:       make([]uint32, opts.BlockSize),
		hashLog:    opts.HashLog,
		depth:      opts.Depth,
		niceLength: opts.NiceLength,
		costAware:  opts.CostAware,
	}
}

// reset clears the hash-chain heads at the start of every block. next need
// not be zeroed: its entries are reachable only by walking a chain starting
// from heads, and every head is zero right after reset.
func (m *matchFinder) reset() {
	for i := range m.heads {
		m.heads[i] = 0
	}
}

func unpackEntry(v uint32) (firstByte byte, pos int) {
	return byte(v >> 24), int(v & 0x00FF_FFFF)
}

// insert hashes the 4 bytes at pos and threads pos into its bucket's chain,
// returning the bucket's previous head (the chain this position now leads
// into).
func (m *matchFinder) insert(src []byte, pos int) uint32 {
	h := hashAt(src, pos, 4, m.hashLog)
	old := m.heads[h]
	m.heads[h] = uint32(src[pos])<<24 | uint32(pos) //nolint:gosec // positions are bounded by maxBlockSize (1<<24)
	m.next[pos] = old
	return old
}

// prefetch is a documented no-op: Go has no portable prefetch intrinsic
// equivalent to the reference implementation's _mm_prefetch, and since it is
// purely a throughput hint (never an observable effect), omitting it changes
// nothing but speed under extreme cache pressure.
func (m *matchFinder) prefetch(src []byte, pos int) {}

// longestMatch implements spec.md §4.D: install the current position, then
// walk its bucket's chain looking for the longest prior occurrence of the
// bytes at pos. Returns true if seq was updated with an accepted match.
func (m *matchFinder) longestMatch(src []byte, pos, literalsBefore int, seq *encodeSequence) bool {
	seq.ll = 0
	seq.ml = 0
	seq.ol = 0
	seq.cost = 0
	seq.start = pos - literalsBefore

	head := m.insert(src, pos)
	if head == 0 {
		return false
	}

	bestGain := 0
	candByte, candPos := unpackEntry(head)
	for hop := 0; hop < m.depth && candPos != 0; hop++ {
		if candByte != src[pos] {
			entry := m.next[candPos]
			candByte, candPos = unpackEntry(entry)
			continue
		}

		if seq.ml > 0 && pos+seq.ml < len(src) && src[candPos+seq.ml] != src[pos+seq.ml] {
			entry := m.next[candPos]
			candByte, candPos = unpackEntry(entry)
			continue
		}

		k := count(src[candPos:], src[pos:])
		distance := pos - candPos

		if k >= minMatch && distance > 3 {
			accept := false
			gain := k - estimateCost(literalsBefore, k, distance)

			switch {
			case m.costAware:
				accept = seq.ml == 0 || gain > bestGain
			default:
				accept = k > seq.ml
			}

			if accept {
				seq.ml = k
				seq.ol = distance
				seq.start = pos - literalsBefore
				bestGain = gain

				if k > m.niceLength {
					return true
				}
			}
		}

		entry := m.next[candPos]
		candByte, candPos = unpackEntry(entry)
	}

	return seq.ml > 0
}

// advance inserts positions start+1 .. start+length-1 into their buckets,
// keeping the chain current across a region the encoder just emitted as a
// match (spec.md §4.D advance). Skipping this call is correct but loses
// future matches inside the copied region.
func (m *matchFinder) advance(src []byte, start, length int) {
	end := start + length
	if end > len(src) {
		end = len(src)
	}
	for p := start + 1; p < end; p++ {
		m.insert(src, p)
	}
}

// estimateCost approximates the encoded byte cost of a sequence with the
// given literal length, match length and offset, for use by the cost-aware
// selection policy (spec.md §4.D "Cost-aware variant"). It is a heuristic:
// the chosen policy only affects match selection, never the bitstream.
func estimateCost(ll, ml, distance int) int {
	cost := 1 // token byte
	if ll > llExtBase {
		cost += varintLen(uint64(ll - llExtBase))
	}
	if ml > mlExtBase {
		cost += varintLen(uint64(ml - mlExtBase))
	}
	cost += varintLen(uint64(distance >> offsetShift))
	return cost
}

// offsetShift is the number of offset bits carried directly in the token
// byte (OL2), matching olShift's field width.
const offsetShift = 2

// varintLen returns the number of bytes encodeMod would emit for v.
func varintLen(v uint64) int {
	n := 1
	for v > 0x7f {
		v = (v - 0x80) >> 7
		n++
	}
	return n
}
