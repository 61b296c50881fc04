/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package porter is the original Porter stemmer for English, written as a
// rule program for the snowball runtime. Input is expected in lowercase.
package porter

import (
	"github.com/hypermodeinc/snowstem/snowball"
)

var (
	gV    = snowball.NewGrouping([]byte{17, 65, 16, 1}, 'a', 'y')
	gVWXY = snowball.NewGrouping([]byte{1, 17, 65, 208, 1}, 'Y', 'y')
)

var (
	step2Replacements = [...]string{
		1: "tion", 2: "ence", 3: "ance", 4: "able", 5: "ent", 6: "e", 7: "ize",
		8: "ate", 9: "al", 10: "ful", 11: "ous", 12: "ive", 13: "ble",
	}
	step3Replacements = [...]string{1: "al", 2: "ic", 3: ""}
)

// context is the per-word state threaded through the steps.
type context struct {
	env *snowball.Env

	// yFound is set when a consonant y was tagged as Y before stemming.
	yFound bool
	p1     int
	p2     int
}

// Stem stems the word loaded in env. It implements snowball.Program.
func Stem(env *snowball.Env) {
	c := &context{env: env}
	c.tagY()
	c.markRegions()

	env.LimitBackward = env.Cursor
	env.Cursor = env.Limit
	for _, step := range []func(*context) bool{
		(*context).step1a,
		(*context).step1b,
		(*context).step1c,
		(*context).step2,
		(*context).step3,
		(*context).step4,
		(*context).step5a,
		(*context).step5b,
	} {
		save := env.Limit - env.Cursor
		step(c)
		env.Cursor = env.Limit - save
	}
	env.Cursor = env.LimitBackward

	c.untagY()
}

// tagY turns an initial y, and every y that follows a vowel, into Y so the
// suffix rules treat it as a consonant.
func (c *context) tagY() {
	env := c.env
	start := env.Cursor

	env.Bra = env.Cursor
	if env.EqS("y") {
		env.Ket = env.Cursor
		env.SliceFrom("Y")
		c.yFound = true
	}
	env.Cursor = start

	for c.gotoVowelY() {
		env.SliceFrom("Y")
		c.yFound = true
	}
	env.Cursor = start
}

// gotoVowelY frames the next y preceded by a vowel in [Bra, Ket) and leaves
// the cursor on that vowel.
func (c *context) gotoVowelY() bool {
	env := c.env
	for {
		at := env.Cursor
		if env.InGrouping(gV) {
			env.Bra = env.Cursor
			if env.EqS("y") {
				env.Ket = env.Cursor
				env.Cursor = at
				return true
			}
		}
		env.Cursor = at
		if !env.Next() {
			return false
		}
	}
}

// untagY rescans the result from the start and turns every Y back into y.
func (c *context) untagY() {
	if !c.yFound {
		return
	}
	env := c.env
	start := env.Cursor
	for c.gotoY() {
		env.SliceFrom("y")
	}
	env.Cursor = start
}

func (c *context) gotoY() bool {
	env := c.env
	for {
		at := env.Cursor
		env.Bra = env.Cursor
		if env.EqS("Y") {
			env.Ket = env.Cursor
			env.Cursor = at
			return true
		}
		env.Cursor = at
		if !env.Next() {
			return false
		}
	}
}

// markRegions sets p1 after the first non-vowel that follows a vowel, and p2
// after the next such pair. A region that cannot be found stays at Limit.
func (c *context) markRegions() {
	env := c.env
	c.p1, c.p2 = env.Limit, env.Limit
	start := env.Cursor
	if gopastSyllable(env) {
		c.p1 = env.Cursor
		if gopastSyllable(env) {
			c.p2 = env.Cursor
		}
	}
	env.Cursor = start
}

func gopastSyllable(env *snowball.Env) bool {
	if !env.GoOutGrouping(gV) {
		return false
	}
	env.Cursor++
	if !env.GoInGrouping(gV) {
		return false
	}
	env.Cursor++
	return true
}

func (c *context) r1() bool { return c.p1 <= c.env.Cursor }
func (c *context) r2() bool { return c.p2 <= c.env.Cursor }

// shortV matches a consonant-vowel-consonant ending where the final consonant
// is not w, x or Y.
func (c *context) shortV() bool {
	env := c.env
	return env.OutGroupingB(gVWXY) && env.InGroupingB(gV) && env.OutGroupingB(gV)
}

// step1a: sses -> ss, ies -> i, ss kept, s removed.
func (c *context) step1a() bool {
	env := c.env
	env.Ket = env.Cursor
	action := env.FindAmongB(step1aSuffixes)
	if action == 0 {
		return false
	}
	env.Bra = env.Cursor
	switch action {
	case 1:
		env.SliceFrom("ss")
	case 2:
		env.SliceFrom("i")
	case 3:
		env.SliceDel()
	}
	return true
}

// step1b: eed -> ee in R1; ed and ing removed when the stem has a vowel,
// followed by the e/undoubling fixups.
func (c *context) step1b() bool {
	env := c.env
	env.Ket = env.Cursor
	action := env.FindAmongB(step1bSuffixes)
	if action == 0 {
		return false
	}
	env.Bra = env.Cursor
	switch action {
	case 1:
		if !c.r1() {
			return false
		}
		env.SliceFrom("ee")
	case 2:
		save := env.Limit - env.Cursor
		if !env.GoOutGroupingB(gV) {
			return false
		}
		env.Cursor = env.Limit - save
		env.SliceDel()
		return c.step1bFixup()
	}
	return true
}

// step1bFixup runs after ed/ing removal: at, bl, iz and short stems get an e
// back, and a doubled consonant other than l, s or z loses one letter.
func (c *context) step1bFixup() bool {
	env := c.env
	save := env.Limit - env.Cursor
	action := env.FindAmongB(step1bEndings)
	env.Cursor = env.Limit - save
	switch action {
	case 1:
		c.insertE()
	case 2:
		env.Ket = env.Cursor
		if !env.Prev() {
			return false
		}
		env.Bra = env.Cursor
		env.SliceDel()
	case 3:
		if env.Cursor != c.p1 {
			return false
		}
		save := env.Limit - env.Cursor
		if !c.shortV() {
			return false
		}
		env.Cursor = env.Limit - save
		c.insertE()
	}
	return true
}

func (c *context) insertE() {
	env := c.env
	at := env.Cursor
	env.Insert(at, at, "e")
	env.Cursor = at
}

// step1c: y or Y -> i when the stem contains a vowel.
func (c *context) step1c() bool {
	env := c.env
	env.Ket = env.Cursor
	if !env.EqSB("y") && !env.EqSB("Y") {
		return false
	}
	env.Bra = env.Cursor
	if !env.GoOutGroupingB(gV) {
		return false
	}
	env.SliceFrom("i")
	return true
}

func (c *context) step2() bool {
	env := c.env
	env.Ket = env.Cursor
	action := env.FindAmongB(step2Suffixes)
	if action == 0 {
		return false
	}
	env.Bra = env.Cursor
	if !c.r1() {
		return false
	}
	if action > 0 {
		env.SliceFrom(step2Replacements[action])
	}
	return true
}

func (c *context) step3() bool {
	env := c.env
	env.Ket = env.Cursor
	action := env.FindAmongB(step3Suffixes)
	if action == 0 {
		return false
	}
	env.Bra = env.Cursor
	if !c.r1() {
		return false
	}
	if action > 0 {
		env.SliceFrom(step3Replacements[action])
	}
	return true
}

// step4 removes residual suffixes in R2; ion only after s or t.
func (c *context) step4() bool {
	env := c.env
	env.Ket = env.Cursor
	action := env.FindAmongB(step4Suffixes)
	if action == 0 {
		return false
	}
	env.Bra = env.Cursor
	if !c.r2() {
		return false
	}
	switch action {
	case 1:
		env.SliceDel()
	case 2:
		if !env.EqSB("s") && !env.EqSB("t") {
			return false
		}
		env.SliceDel()
	}
	return true
}

// step5a removes a final e in R2, or in R1 when not preceded by a short
// syllable.
func (c *context) step5a() bool {
	env := c.env
	env.Ket = env.Cursor
	if !env.EqSB("e") {
		return false
	}
	env.Bra = env.Cursor
	if !c.r2() {
		if !c.r1() {
			return false
		}
		save := env.Limit - env.Cursor
		if c.shortV() {
			return false
		}
		env.Cursor = env.Limit - save
	}
	env.SliceDel()
	return true
}

// step5b: ll -> l in R2.
func (c *context) step5b() bool {
	env := c.env
	env.Ket = env.Cursor
	if !env.EqSB("l") {
		return false
	}
	env.Bra = env.Cursor
	if !c.r2() {
		return false
	}
	if !env.EqSB("l") {
		return false
	}
	env.SliceDel()
	return true
}
