/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package basque is the Snowball stemmer for Basque (euskara). It strips verb
// endings, then noun endings, then one adjective ending. Input is expected in
// lowercase.
package basque

import (
	"github.com/hypermodeinc/snowstem/snowball"
)

var gV = snowball.NewGrouping([]byte{17, 65, 16}, 'a', 'u')

type context struct {
	env *snowball.Env

	pV int
	p1 int
	p2 int
}

// Stem stems the word loaded in env. It implements snowball.Program.
func Stem(env *snowball.Env) {
	c := &context{env: env}
	c.markRegions()

	env.LimitBackward = env.Cursor
	env.Cursor = env.Limit
	c.repeat((*context).verb)
	c.repeat((*context).noun)
	c.adjective()
	env.Cursor = env.LimitBackward
}

// repeat applies step until it stops firing. Each firing either shortens the
// buffer or moves the cursor back over the matched ending, so it terminates.
func (c *context) repeat(step func(*context) bool) {
	env := c.env
	for {
		save := env.Limit - env.Cursor
		if !step(c) {
			env.Cursor = env.Limit - save
			return
		}
	}
}

func (c *context) markRegions() {
	env := c.env
	c.pV, c.p1, c.p2 = env.Limit, env.Limit, env.Limit

	start := env.Cursor
	if c.skipToRV() {
		c.pV = env.Cursor
	}
	env.Cursor = start
	if gopastSyllable(env) {
		c.p1 = env.Cursor
		if gopastSyllable(env) {
			c.p2 = env.Cursor
		}
	}
	env.Cursor = start
}

// skipToRV moves the cursor to the start of RV. If the word starts with a
// vowel, RV begins after the next vowel when the second letter is a
// consonant, or after the next consonant when it is a vowel. If the word
// starts with a consonant, RV begins after the next vowel, or after the
// third letter when the second one is a vowel.
func (c *context) skipToRV() bool {
	env := c.env
	start := env.Cursor
	if env.InGrouping(gV) {
		at := env.Cursor
		if !env.OutGrouping(gV) || !env.GoOutGrouping(gV) {
			env.Cursor = at
			if env.InGrouping(gV) && env.GoInGrouping(gV) {
				env.Cursor++
				return true
			}
		} else {
			env.Cursor++
			return true
		}
	}

	env.Cursor = start
	if !env.OutGrouping(gV) {
		return false
	}
	at := env.Cursor
	if !env.OutGrouping(gV) || !env.GoOutGrouping(gV) {
		env.Cursor = at
		if !env.InGrouping(gV) || env.Cursor >= env.Limit {
			return false
		}
	}
	env.Cursor++
	return true
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

func (c *context) rv() bool { return c.pV <= c.env.Cursor }
func (c *context) r1() bool { return c.p1 <= c.env.Cursor }
func (c *context) r2() bool { return c.p2 <= c.env.Cursor }

// verb strips one aditzak ending.
func (c *context) verb() bool {
	env := c.env
	env.Ket = env.Cursor
	action := env.FindAmongB(verbSuffixes)
	if action == 0 {
		return false
	}
	env.Bra = env.Cursor
	switch action {
	case 1:
		if !c.rv() {
			return false
		}
		env.SliceDel()
	case 2:
		if !c.r2() {
			return false
		}
		env.SliceDel()
	}
	return true
}

// noun strips or rewrites one izenak ending.
func (c *context) noun() bool {
	env := c.env
	env.Ket = env.Cursor
	action := env.FindAmongB(nounSuffixes)
	if action == 0 {
		return false
	}
	env.Bra = env.Cursor
	switch action {
	case 1:
		if !c.rv() {
			return false
		}
		env.SliceDel()
	case 2:
		if !c.r2() {
			return false
		}
		env.SliceDel()
	case 3:
		env.SliceFrom("jok")
	case 4:
		if !c.r1() {
			return false
		}
		env.SliceDel()
	case 5:
		env.SliceFrom("tra")
	case 6:
		env.SliceFrom("minutu")
	}
	return true
}

// adjective strips one adjetiboak ending; zlea becomes z.
func (c *context) adjective() bool {
	env := c.env
	env.Ket = env.Cursor
	action := env.FindAmongB(adjectiveSuffixes)
	if action == 0 {
		return false
	}
	env.Bra = env.Cursor
	switch action {
	case 1:
		if !c.rv() {
			return false
		}
		env.SliceDel()
	case 2:
		env.SliceFrom("z")
	}
	return true
}
