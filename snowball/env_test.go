/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package snowball

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var vowels = GroupingOf("aeiou")

func requirePositions(t *testing.T, env *Env, cursor, limit, lb, bra, ket int) {
	t.Helper()
	require.Equal(t, cursor, env.Cursor, "cursor")
	require.Equal(t, limit, env.Limit, "limit")
	require.Equal(t, lb, env.LimitBackward, "limit backward")
	require.Equal(t, bra, env.Bra, "bra")
	require.Equal(t, ket, env.Ket, "ket")
}

func TestSetCurrent(t *testing.T) {
	env := NewEnv("añadir")
	require.Equal(t, "añadir", env.Current())
	require.Equal(t, 6, env.Len())
	requirePositions(t, env, 0, 6, 0, 0, 6)

	env.Cursor, env.Bra, env.LimitBackward = 3, 2, 1
	env.SetCurrent("ox")
	require.Equal(t, "ox", env.Current())
	requirePositions(t, env, 0, 2, 0, 0, 2)

	env.SetCurrent("")
	require.Equal(t, "", env.Current())
	requirePositions(t, env, 0, 0, 0, 0, 0)
}

func TestNextPrev(t *testing.T) {
	env := NewEnv("ab")
	require.True(t, env.Next())
	require.True(t, env.Next())
	require.False(t, env.Next())
	require.Equal(t, 2, env.Cursor)

	env.LimitBackward = 1
	require.True(t, env.Prev())
	require.False(t, env.Prev())
	require.Equal(t, 1, env.Cursor)
}

func TestInOutGrouping(t *testing.T) {
	env := NewEnv("ab")
	require.False(t, env.OutGrouping(vowels))
	require.True(t, env.InGrouping(vowels))
	require.False(t, env.InGrouping(vowels))
	require.True(t, env.OutGrouping(vowels))
	require.Equal(t, 2, env.Cursor)
	require.False(t, env.InGrouping(vowels))
	require.False(t, env.OutGrouping(vowels))

	require.False(t, env.InGroupingB(vowels))
	require.True(t, env.OutGroupingB(vowels))
	require.False(t, env.OutGroupingB(vowels))
	require.True(t, env.InGroupingB(vowels))
	require.Equal(t, 0, env.Cursor)
	require.False(t, env.InGroupingB(vowels))
	require.False(t, env.OutGroupingB(vowels))
}

func TestGoGrouping(t *testing.T) {
	env := NewEnv("strength")
	require.True(t, env.GoOutGrouping(vowels))
	require.Equal(t, 3, env.Cursor)
	require.True(t, env.GoInGrouping(vowels))
	require.Equal(t, 4, env.Cursor)
	env.Cursor++
	require.False(t, env.GoOutGrouping(vowels))
	require.Equal(t, 8, env.Cursor)

	require.True(t, env.GoOutGroupingB(vowels))
	require.Equal(t, 4, env.Cursor)
	require.True(t, env.GoInGroupingB(vowels))
	require.Equal(t, 3, env.Cursor)
	env.Cursor--
	require.False(t, env.GoOutGroupingB(vowels))
	require.Equal(t, 0, env.Cursor)

	env = NewEnv("aaa")
	require.False(t, env.GoInGrouping(vowels))
	require.Equal(t, 3, env.Cursor)
	require.False(t, env.GoInGroupingB(vowels))
	require.Equal(t, 0, env.Cursor)
}

func TestGoGroupingRespectsLimits(t *testing.T) {
	env := NewEnv("bcdab")
	env.Limit = 3
	require.False(t, env.GoOutGrouping(vowels))
	require.Equal(t, 3, env.Cursor)

	env = NewEnv("abcd")
	env.Cursor = 4
	env.LimitBackward = 1
	require.False(t, env.GoOutGroupingB(vowels))
	require.Equal(t, 1, env.Cursor)
}

func TestEqS(t *testing.T) {
	env := NewEnv("añob")
	require.False(t, env.EqS("an"))
	require.Equal(t, 0, env.Cursor)
	require.True(t, env.EqS("añ"))
	require.Equal(t, 2, env.Cursor)
	require.True(t, env.EqS(""))
	require.False(t, env.EqS("obx"))
	require.Equal(t, 2, env.Cursor)

	env.Cursor = env.Limit
	require.False(t, env.EqSB("xb"))
	require.True(t, env.EqSB("ob"))
	require.Equal(t, 2, env.Cursor)
	require.True(t, env.EqSB("ñ"))
	require.Equal(t, 1, env.Cursor)

	env.LimitBackward = 1
	require.False(t, env.EqSB("a"))
	require.Equal(t, 1, env.Cursor)
}

func TestSliceFrom(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		bra, ket   int
		cursor     int
		s          string
		want       string
		wantCursor int
		wantLimit  int
		wantKet    int
	}{
		{"delete with cursor after", "hopping", 3, 7, 7, "", "hop", 3, 3, 3},
		{"grow with cursor at bra", "abc", 1, 2, 1, "XYZ", "aXYZc", 1, 5, 4},
		{"delete with cursor inside", "abcdef", 1, 4, 2, "", "aef", 1, 3, 1},
		{"replace at end", "ponies", 3, 6, 3, "i", "poni", 3, 4, 4},
		{"shrink with cursor past ket", "sizes", 1, 3, 5, "a", "saes", 4, 4, 2},
		{"multibyte", "niño", 2, 3, 4, "n", "nino", 4, 4, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := NewEnv(tc.word)
			env.Bra, env.Ket, env.Cursor = tc.bra, tc.ket, tc.cursor
			env.SliceFrom(tc.s)
			require.Equal(t, tc.want, env.Current())
			require.Equal(t, tc.wantCursor, env.Cursor)
			require.Equal(t, tc.wantLimit, env.Limit)
			require.Equal(t, tc.bra, env.Bra)
			require.Equal(t, tc.wantKet, env.Ket)
		})
	}
}

func TestSliceDelKeepsLimitBackward(t *testing.T) {
	env := NewEnv("motoring")
	env.LimitBackward = 2
	env.Cursor = env.Limit
	env.Bra, env.Ket = 5, 8
	env.SliceDel()
	require.Equal(t, "motor", env.Current())
	requirePositions(t, env, 5, 5, 2, 5, 5)
}

func TestInsert(t *testing.T) {
	env := NewEnv("hop")
	env.Cursor = 3
	env.Bra, env.Ket = 0, 3
	env.Insert(3, 3, "e")
	require.Equal(t, "hope", env.Current())
	requirePositions(t, env, 4, 4, 0, 0, 4)

	env = NewEnv("abcd")
	env.Bra, env.Ket = 2, 3
	env.Cursor = 1
	env.Insert(0, 1, "xy")
	require.Equal(t, "xybcd", env.Current())
	requirePositions(t, env, 2, 5, 0, 3, 4)
}

func TestSliceBounds(t *testing.T) {
	tests := []struct {
		name string
		edit func(env *Env)
	}{
		{"bra after ket", func(env *Env) {
			env.Bra, env.Ket = 2, 1
			env.SliceDel()
		}},
		{"ket past limit", func(env *Env) {
			env.Limit = 2
			env.Bra, env.Ket = 0, 3
			env.SliceFrom("x")
		}},
		{"bra before limit backward", func(env *Env) {
			env.LimitBackward = 2
			env.Bra, env.Ket = 1, 3
			env.SliceDel()
		}},
		{"limit past buffer", func(env *Env) {
			env.Limit = 4
			env.Bra, env.Ket = 0, 1
			env.SliceDel()
		}},
		{"insert past limit", func(env *Env) {
			env.Insert(4, 4, "x")
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stem, err := Run(tc.edit, NewEnv(""), "abc")
			require.ErrorIs(t, err, ErrBounds)
			require.Empty(t, stem)
		})
	}
}

func TestRun(t *testing.T) {
	dropLast := func(env *Env) {
		env.Cursor = env.Limit
		env.Ket = env.Cursor
		if !env.Prev() {
			return
		}
		env.Bra = env.Cursor
		env.SliceDel()
	}

	env := &Env{}
	for word, want := range map[string]string{"cats": "cat", "a": "", "": "", "añ": "a"} {
		stem, err := Run(dropLast, env, word)
		require.NoError(t, err)
		require.Equal(t, want, stem, "word: %q", word)
	}
}

func TestRunRepanics(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		_, _ = Run(func(*Env) { panic("boom") }, NewEnv(""), "abc")
	})

	forward := compileTable(t, Forward, []AmongEntry{{Str: "a", Substr: -1, Result: 1}})
	require.Panics(t, func() {
		_, _ = Run(func(env *Env) { env.FindAmongB(forward) }, NewEnv(""), "abc")
	})
}
