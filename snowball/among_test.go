/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package snowball

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var pluralEntries = []AmongEntry{
	{Str: "s", Substr: -1, Result: 3},
	{Str: "ss", Substr: 0, Result: -1},
	{Str: "ies", Substr: 0, Result: 2},
	{Str: "sses", Substr: 0, Result: 1},
}

func compileTable(t *testing.T, dir Direction, entries []AmongEntry) *Among {
	t.Helper()
	table, err := CompileAmong(dir, entries)
	require.NoError(t, err)
	return table
}

func TestCompileAmongErrors(t *testing.T) {
	tests := []struct {
		name    string
		dir     Direction
		entries []AmongEntry
	}{
		{"zero result", Backward, []AmongEntry{{Str: "a", Substr: -1, Result: 0}}},
		{"duplicate", Backward, []AmongEntry{
			{Str: "a", Substr: -1, Result: 1},
			{Str: "a", Substr: -1, Result: 2},
		}},
		{"missing backward link", Backward, []AmongEntry{
			{Str: "s", Substr: -1, Result: 1},
			{Str: "ss", Substr: -1, Result: 2},
		}},
		{"link to shorter suffix", Backward, []AmongEntry{
			{Str: "s", Substr: -1, Result: 1},
			{Str: "es", Substr: 0, Result: 1},
			{Str: "ies", Substr: 0, Result: 1},
		}},
		{"backward link in forward table", Forward, []AmongEntry{
			{Str: "s", Substr: -1, Result: 1},
			{Str: "ss", Substr: 0, Result: 2},
			{Str: "as", Substr: 0, Result: 3},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CompileAmong(tc.dir, tc.entries)
			require.ErrorIs(t, err, ErrMalformedAmong)
			require.Panics(t, func() { mustCompile(tc.dir, tc.entries) })
		})
	}
}

func TestCompileAmong(t *testing.T) {
	pluralSuffixes := compileTable(t, Backward, pluralEntries)
	require.Equal(t, 4, pluralSuffixes.Len())
	require.Equal(t, Backward, pluralSuffixes.Direction())
	require.Equal(t, "backward", pluralSuffixes.Direction().String())

	empty, err := CompileAmong(Forward, nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
	require.Equal(t, 0, NewEnv("abc").FindAmong(empty))
}

func TestFindAmongB(t *testing.T) {
	pluralSuffixes := compileTable(t, Backward, pluralEntries)
	tests := []struct {
		word   string
		result int
		cursor int
	}{
		{"caresses", 1, 4},
		{"ponies", 2, 3},
		{"caress", -1, 4},
		{"cats", 3, 3},
		{"s", 3, 0},
		{"dog", 0, 3},
		{"", 0, 0},
	}
	for _, tc := range tests {
		env := NewEnv(tc.word)
		env.Cursor = env.Limit
		require.Equal(t, tc.result, env.FindAmongB(pluralSuffixes), "word: %q", tc.word)
		require.Equal(t, tc.cursor, env.Cursor, "word: %q", tc.word)
		require.Equal(t, tc.word, env.Current())
	}
}

func TestFindAmongBStopsAtLimitBackward(t *testing.T) {
	pluralSuffixes := compileTable(t, Backward, pluralEntries)
	env := NewEnv("caresses")
	env.Cursor = env.Limit
	env.LimitBackward = 6
	require.Equal(t, 3, env.FindAmongB(pluralSuffixes))
	require.Equal(t, 7, env.Cursor)

	env.Cursor = env.Limit
	env.LimitBackward = 8
	require.Equal(t, 0, env.FindAmongB(pluralSuffixes))
	require.Equal(t, 8, env.Cursor)
}

func TestFindAmongBFromInnerCursor(t *testing.T) {
	pluralSuffixes := compileTable(t, Backward, pluralEntries)
	env := NewEnv("ponies!")
	env.Cursor = 6
	require.Equal(t, 2, env.FindAmongB(pluralSuffixes))
	require.Equal(t, 3, env.Cursor)
}

func TestFindAmongBEmptyEntry(t *testing.T) {
	endings := compileTable(t, Backward, []AmongEntry{
		{Str: "", Substr: -1, Result: 3},
		{Str: "bb", Substr: 0, Result: 2},
		{Str: "at", Substr: 0, Result: 1},
	})

	env := NewEnv("xy")
	env.Cursor = env.Limit
	require.Equal(t, 3, env.FindAmongB(endings))
	require.Equal(t, 2, env.Cursor)

	env = NewEnv("hobb")
	env.Cursor = env.Limit
	require.Equal(t, 2, env.FindAmongB(endings))
	require.Equal(t, 2, env.Cursor)

	// "b" alone is only a path inside the trie; the empty entry still wins.
	env = NewEnv("ab")
	env.Cursor = env.Limit
	require.Equal(t, 3, env.FindAmongB(endings))
	require.Equal(t, 2, env.Cursor)
}

func TestFindAmong(t *testing.T) {
	prefixes := compileTable(t, Forward, []AmongEntry{
		{Str: "a", Substr: -1, Result: 1},
		{Str: "ab", Substr: 0, Result: 2},
		{Str: "abc", Substr: 1, Result: 3},
		{Str: "ñu", Substr: -1, Result: 4},
	})
	require.Equal(t, Forward, prefixes.Direction())

	tests := []struct {
		word   string
		result int
		cursor int
	}{
		{"abcd", 3, 3},
		{"abd", 2, 2},
		{"axe", 1, 1},
		{"ñus", 4, 2},
		{"ñ", 0, 0},
		{"xyz", 0, 0},
	}
	for _, tc := range tests {
		env := NewEnv(tc.word)
		require.Equal(t, tc.result, env.FindAmong(prefixes), "word: %q", tc.word)
		require.Equal(t, tc.cursor, env.Cursor, "word: %q", tc.word)
	}

	env := NewEnv("abc")
	env.Limit = 2
	require.Equal(t, 2, env.FindAmong(prefixes))
	require.Equal(t, 2, env.Cursor)
}

func TestFindAmongDirectionMismatch(t *testing.T) {
	pluralSuffixes := compileTable(t, Backward, pluralEntries)
	forward := compileTable(t, Forward, []AmongEntry{{Str: "a", Substr: -1, Result: 1}})
	env := NewEnv("aaa")
	require.Panics(t, func() { env.FindAmong(pluralSuffixes) })
	require.Panics(t, func() { env.FindAmongB(forward) })
}

func TestZeroAmong(t *testing.T) {
	var table Among
	require.Equal(t, Forward, table.Direction())
	require.Equal(t, 0, table.Len())

	env := NewEnv("abc")
	require.Equal(t, 0, env.FindAmong(&table))
	require.Equal(t, 0, env.Cursor)

	backward := Among{dir: Backward}
	env.Cursor = env.Limit
	require.Equal(t, 0, env.FindAmongB(&backward))
	require.Equal(t, 3, env.Cursor)
}

func TestMustCompileValidTables(t *testing.T) {
	require.Equal(t, 4, NewAmongB(pluralEntries).Len())
	require.Equal(t, Forward, NewAmong([]AmongEntry{{Str: "a", Substr: -1, Result: 1}}).Direction())
}
