/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package snowball

import (
	"strings"

	"github.com/pkg/errors"
)

// AmongEntry is one candidate string of an among table, in the layout emitted
// by the Snowball compiler.
type AmongEntry struct {
	// Str is the candidate string.
	Str string
	// Substr is the index of the longest other entry whose string is a proper
	// suffix (backward tables) or prefix (forward tables) of Str, or -1.
	Substr int
	// Result is the outcome code returned on a match. It is never zero; -1
	// conventionally means the match needs no action.
	Result int
}

// Direction tells which way an among table is matched.
type Direction int

const (
	// Forward tables are matched from the cursor toward Limit.
	Forward Direction = iota
	// Backward tables are matched from the cursor toward LimitBackward.
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

type amongNode struct {
	children map[rune]*amongNode
	result   int
	depth    int
}

// Among is a compiled among table. The entries are stored in a trie keyed by
// runes in matching order, so a lookup walks the buffer once and keeps the
// deepest node carrying a result. That is the longest matching entry, which
// is what following the Substr back-links of the raw table selects. Tables
// are built with CompileAmong, NewAmong or NewAmongB; the zero value is an
// empty forward table.
type Among struct {
	dir     Direction
	root    *amongNode
	entries []AmongEntry
}

// CompileAmong validates entries and builds the lookup trie. Every Substr
// back-link must name the longest shorter entry that the string ends with
// (Backward) or starts with (Forward).
func CompileAmong(dir Direction, entries []AmongEntry) (*Among, error) {
	t := &Among{dir: dir, root: &amongNode{}, entries: entries}
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.Result == 0 {
			return nil, errors.Wrapf(ErrMalformedAmong, "entry %d (%q) has result 0", i, e.Str)
		}
		if j, ok := seen[e.Str]; ok {
			return nil, errors.Wrapf(ErrMalformedAmong, "entry %d duplicates entry %d (%q)",
				i, j, e.Str)
		}
		seen[e.Str] = i
	}
	for i, e := range entries {
		if want := t.longestAffix(i); e.Substr != want {
			return nil, errors.Wrapf(ErrMalformedAmong,
				"entry %d (%q) links to %d, %s table expects %d", i, e.Str, e.Substr, dir, want)
		}
		t.insert(e)
	}
	return t, nil
}

// NewAmong is CompileAmong for forward tables; it panics on malformed input.
func NewAmong(entries []AmongEntry) *Among {
	return mustCompile(Forward, entries)
}

// NewAmongB is CompileAmong for backward tables; it panics on malformed input.
func NewAmongB(entries []AmongEntry) *Among {
	return mustCompile(Backward, entries)
}

func mustCompile(dir Direction, entries []AmongEntry) *Among {
	t, err := CompileAmong(dir, entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Direction returns the matching direction the table was compiled for.
func (t *Among) Direction() Direction { return t.dir }

// Len returns the number of entries.
func (t *Among) Len() int { return len(t.entries) }

func (t *Among) longestAffix(i int) int {
	s := t.entries[i].Str
	best, bestLen := -1, -1
	for j, o := range t.entries {
		if j == i || len(o.Str) >= len(s) || len(o.Str) <= bestLen {
			continue
		}
		if t.dir == Backward && strings.HasSuffix(s, o.Str) ||
			t.dir == Forward && strings.HasPrefix(s, o.Str) {
			best, bestLen = j, len(o.Str)
		}
	}
	return best
}

func (t *Among) insert(e AmongEntry) {
	rs := []rune(e.Str)
	n := t.root
	for k := range rs {
		r := rs[k]
		if t.dir == Backward {
			r = rs[len(rs)-1-k]
		}
		child, ok := n.children[r]
		if !ok {
			if n.children == nil {
				n.children = make(map[rune]*amongNode)
			}
			child = &amongNode{depth: n.depth + 1}
			n.children[r] = child
		}
		n = child
	}
	n.result = e.Result
}
