/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package snowball is the runtime that Snowball rule programs run on: a rune
// buffer with a cursor, scan limits and a [Bra, Ket) slice, plus the
// primitives that test and edit it.
package snowball

import (
	"slices"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Env holds the state of one word being stemmed. The fields are exported for
// rule programs, which save and restore them around every optional step.
// The invariant 0 <= LimitBackward <= Cursor <= Limit <= Len() holds between
// primitives.
type Env struct {
	current []rune

	Cursor        int
	Limit         int
	LimitBackward int
	Bra           int
	Ket           int
}

// NewEnv returns an Env loaded with word.
func NewEnv(word string) *Env {
	env := &Env{}
	env.SetCurrent(word)
	return env
}

// SetCurrent replaces the buffer with word and resets every position.
func (env *Env) SetCurrent(word string) {
	env.current = append(env.current[:0], []rune(word)...)
	env.Cursor = 0
	env.Limit = len(env.current)
	env.LimitBackward = 0
	env.Bra = 0
	env.Ket = env.Limit
}

// Current returns the buffer contents.
func (env *Env) Current() string {
	return string(env.current)
}

// Len returns the buffer length in runes.
func (env *Env) Len() int {
	return len(env.current)
}

// Next moves the cursor one rune toward Limit.
func (env *Env) Next() bool {
	if env.Cursor >= env.Limit {
		return false
	}
	env.Cursor++
	return true
}

// Prev moves the cursor one rune toward LimitBackward.
func (env *Env) Prev() bool {
	if env.Cursor <= env.LimitBackward {
		return false
	}
	env.Cursor--
	return true
}

// InGrouping consumes the rune at the cursor if it belongs to g.
func (env *Env) InGrouping(g Grouping) bool {
	if env.Cursor >= env.Limit || !g.Contains(env.current[env.Cursor]) {
		return false
	}
	env.Cursor++
	return true
}

// InGroupingB consumes the rune before the cursor if it belongs to g.
func (env *Env) InGroupingB(g Grouping) bool {
	if env.Cursor <= env.LimitBackward || !g.Contains(env.current[env.Cursor-1]) {
		return false
	}
	env.Cursor--
	return true
}

// OutGrouping consumes the rune at the cursor if it does not belong to g.
func (env *Env) OutGrouping(g Grouping) bool {
	if env.Cursor >= env.Limit || g.Contains(env.current[env.Cursor]) {
		return false
	}
	env.Cursor++
	return true
}

// OutGroupingB consumes the rune before the cursor if it does not belong to g.
func (env *Env) OutGroupingB(g Grouping) bool {
	if env.Cursor <= env.LimitBackward || g.Contains(env.current[env.Cursor-1]) {
		return false
	}
	env.Cursor--
	return true
}

// GoInGrouping skips runes of g and stops on the first rune outside it.
// It returns false, with the cursor at Limit, when there is no such rune.
func (env *Env) GoInGrouping(g Grouping) bool {
	for env.Cursor < env.Limit {
		if !g.Contains(env.current[env.Cursor]) {
			return true
		}
		env.Cursor++
	}
	return false
}

// GoInGroupingB is GoInGrouping running toward LimitBackward. On success the
// rune outside g is the one just before the cursor.
func (env *Env) GoInGroupingB(g Grouping) bool {
	for env.Cursor > env.LimitBackward {
		if !g.Contains(env.current[env.Cursor-1]) {
			return true
		}
		env.Cursor--
	}
	return false
}

// GoOutGrouping skips runes outside g and stops on the first rune of g.
func (env *Env) GoOutGrouping(g Grouping) bool {
	for env.Cursor < env.Limit {
		if g.Contains(env.current[env.Cursor]) {
			return true
		}
		env.Cursor++
	}
	return false
}

// GoOutGroupingB is GoOutGrouping running toward LimitBackward.
func (env *Env) GoOutGroupingB(g Grouping) bool {
	for env.Cursor > env.LimitBackward {
		if g.Contains(env.current[env.Cursor-1]) {
			return true
		}
		env.Cursor--
	}
	return false
}

// EqS matches s starting at the cursor and consumes it on success.
func (env *Env) EqS(s string) bool {
	c := env.Cursor
	for _, r := range s {
		if c >= env.Limit || env.current[c] != r {
			return false
		}
		c++
	}
	env.Cursor = c
	return true
}

// EqSB matches s ending at the cursor and consumes it on success.
func (env *Env) EqSB(s string) bool {
	c := env.Cursor
	for i := len(s); i > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
		if c <= env.LimitBackward || env.current[c-1] != r {
			return false
		}
		c--
	}
	env.Cursor = c
	return true
}

// FindAmong looks up the longest entry of t that starts at the cursor. It
// returns the entry's result with the cursor moved past the match, or 0 with
// the cursor untouched. The zero Among is an empty forward table.
func (env *Env) FindAmong(t *Among) int {
	mustDirection(t, Forward)
	n := t.root
	if n == nil {
		return 0
	}
	result, depth := n.result, 0
	for c := env.Cursor; c < env.Limit; c++ {
		if n = n.children[env.current[c]]; n == nil {
			break
		}
		if n.result != 0 {
			result, depth = n.result, n.depth
		}
	}
	if result != 0 {
		env.Cursor += depth
	}
	return result
}

// FindAmongB looks up the longest entry of t that ends at the cursor. On a
// match the cursor is left at the start of the matched suffix.
func (env *Env) FindAmongB(t *Among) int {
	mustDirection(t, Backward)
	n := t.root
	if n == nil {
		return 0
	}
	result, depth := n.result, 0
	for c := env.Cursor; c > env.LimitBackward; c-- {
		if n = n.children[env.current[c-1]]; n == nil {
			break
		}
		if n.result != 0 {
			result, depth = n.result, n.depth
		}
	}
	if result != 0 {
		env.Cursor -= depth
	}
	return result
}

func mustDirection(t *Among, dir Direction) {
	if t.dir != dir {
		panic(errors.Errorf("snowball: %s among table used for %s matching", t.dir, dir))
	}
}

// SliceFrom replaces [Bra, Ket) with s. Ket is moved to the end of s.
func (env *Env) SliceFrom(s string) {
	env.checkSlice("slice", env.Bra, env.Ket)
	env.replace(env.Bra, env.Ket, []rune(s))
	env.Ket = env.Bra + utf8.RuneCountInString(s)
}

// SliceDel deletes [Bra, Ket).
func (env *Env) SliceDel() {
	env.SliceFrom("")
}

// Insert replaces [bra, ket) with s, shifting Bra and Ket when they lie at or
// after bra. With bra == ket it is a plain insertion.
func (env *Env) Insert(bra, ket int, s string) {
	env.checkSlice("insert", bra, ket)
	adj := env.replace(bra, ket, []rune(s))
	if bra <= env.Bra {
		env.Bra += adj
	}
	if bra <= env.Ket {
		env.Ket += adj
	}
}

func (env *Env) checkSlice(op string, bra, ket int) {
	if bra < env.LimitBackward || bra > ket || ket > env.Limit || env.Limit > len(env.current) {
		panic(boundsError(op, bra, ket, env.LimitBackward, env.Limit, len(env.current)))
	}
}

// replace splices s over [bra, ket) and returns the change in length.
func (env *Env) replace(bra, ket int, s []rune) int {
	adj := len(s) - (ket - bra)
	env.current = slices.Replace(env.current, bra, ket, s...)
	env.Limit += adj
	switch {
	case env.Cursor >= ket:
		env.Cursor += adj
	case env.Cursor > bra:
		env.Cursor = bra
	}
	return adj
}
