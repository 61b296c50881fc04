/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package snowball

// Grouping is a character class stored as a bitset over the range [min, max].
// Bit i of the set stands for rune min+i.
type Grouping struct {
	bits []byte
	min  rune
	max  rune
}

// NewGrouping wraps a bitset produced by the Snowball compiler. It panics if
// the bitset is too short to cover the range.
func NewGrouping(bits []byte, min, max rune) Grouping {
	if max < min || len(bits)*8 <= int(max-min) {
		panic("snowball: grouping bitset does not cover its range")
	}
	return Grouping{bits: bits, min: min, max: max}
}

// GroupingOf builds the grouping holding exactly the runes of chars.
func GroupingOf(chars string) Grouping {
	if chars == "" {
		panic("snowball: empty grouping")
	}
	var g Grouping
	first := true
	for _, r := range chars {
		if first || r < g.min {
			g.min = r
		}
		if first || r > g.max {
			g.max = r
		}
		first = false
	}
	g.bits = make([]byte, int(g.max-g.min)/8+1)
	for _, r := range chars {
		off := r - g.min
		g.bits[off>>3] |= 1 << (off & 7)
	}
	return g
}

// Contains reports whether r belongs to the grouping. The zero Grouping is
// empty.
func (g Grouping) Contains(r rune) bool {
	if len(g.bits) == 0 || r < g.min || r > g.max {
		return false
	}
	off := r - g.min
	return g.bits[off>>3]&(1<<(off&7)) != 0
}
