// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package glz

// levelPreset holds the match-finder tuning for one compression level: how
// hard to search (Depth, NiceLength) and whether the cost-aware selection
// policy is worth its extra arithmetic at that effort level.
type levelPreset struct {
	hashLog    int
	depth      int
	niceLength int
	costAware  bool
}

// levelPresets maps levels 1 (fastest) through 9 (smallest output) to match
// finder tuning, the same shape as the levels a tuned LZO1X-999 encoder
// exposes: depth and nice-length climb together, and the pricier
// cost-scored match selection only turns on once the chain is already long
// enough to make the extra arithmetic worthwhile.
var levelPresets = [9]levelPreset{
	1: {hashLog: 15, depth: 8, niceLength: 32, costAware: false},
	2: {hashLog: 16, depth: 16, niceLength: 48, costAware: false},
	3: {hashLog: 16, depth: 24, niceLength: 64, costAware: false},
	4: {hashLog: 17, depth: 32, niceLength: 96, costAware: false},
	5: {hashLog: 17, depth: 64, niceLength: 128, costAware: false},
	6: {hashLog: 17, depth: 96, niceLength: 160, costAware: false},
	7: {hashLog: 18, depth: 128, niceLength: 192, costAware: true},
	8: {hashLog: 18, depth: 256, niceLength: 256, costAware: true},
}

// level9 is the slot zero-indexed levelPresets can't hold without shifting
// every other entry's index; see OptionsForLevel.
var level9 = levelPreset{hashLog: 19, depth: 512, niceLength: 512, costAware: true}

// OptionsForLevel returns encoder options tuned for the given level,
// clamped to [1, 9]. BlockSize is always DefaultBlockSize; callers who need
// a different block size should copy the returned options and override it.
func OptionsForLevel(level int) *EncoderOptions {
	switch {
	case level < 1:
		level = 1
	case level > 9:
		level = 9
	}

	p := level9
	if level < 9 {
		p = levelPresets[level]
	}

	return &EncoderOptions{
		BlockSize:  DefaultBlockSize,
		HashLog:    p.hashLog,
		Depth:      p.depth,
		NiceLength: p.niceLength,
		CostAware:  p.costAware,
	}
}
