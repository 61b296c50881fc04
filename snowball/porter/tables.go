/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package porter

import "github.com/hypermodeinc/snowstem/snowball"

// Suffix tables of the Porter algorithm. Results index the actions in porter.go.

var step1aSuffixes = snowball.NewAmongB([]snowball.AmongEntry{
	{Str: "s", Substr: -1, Result: 3},
	{Str: "ies", Substr: 0, Result: 2},
	{Str: "sses", Substr: 0, Result: 1},
	{Str: "ss", Substr: 0, Result: -1},
})

var step1bSuffixes = snowball.NewAmongB([]snowball.AmongEntry{
	{Str: "ed", Substr: -1, Result: 2},
	{Str: "eed", Substr: 0, Result: 1},
	{Str: "ing", Substr: -1, Result: 2},
})

var step1bEndings = snowball.NewAmongB([]snowball.AmongEntry{
	{Str: "", Substr: -1, Result: 3},
	{Str: "bb", Substr: 0, Result: 2},
	{Str: "dd", Substr: 0, Result: 2},
	{Str: "ff", Substr: 0, Result: 2},
	{Str: "gg", Substr: 0, Result: 2},
	{Str: "bl", Substr: 0, Result: 1},
	{Str: "mm", Substr: 0, Result: 2},
	{Str: "nn", Substr: 0, Result: 2},
	{Str: "pp", Substr: 0, Result: 2},
	{Str: "rr", Substr: 0, Result: 2},
	{Str: "at", Substr: 0, Result: 1},
	{Str: "tt", Substr: 0, Result: 2},
	{Str: "iz", Substr: 0, Result: 1},
})

var step2Suffixes = snowball.NewAmongB([]snowball.AmongEntry{
	{Str: "anci", Substr: -1, Result: 3},
	{Str: "enci", Substr: -1, Result: 2},
	{Str: "abli", Substr: -1, Result: 4},
	{Str: "eli", Substr: -1, Result: 6},
	{Str: "alli", Substr: -1, Result: 9},
	{Str: "ousli", Substr: -1, Result: 11},
	{Str: "entli", Substr: -1, Result: 5},
	{Str: "aliti", Substr: -1, Result: 9},
	{Str: "biliti", Substr: -1, Result: 13},
	{Str: "iviti", Substr: -1, Result: 12},
	{Str: "tional", Substr: -1, Result: 1},
	{Str: "ational", Substr: 10, Result: 8},
	{Str: "alism", Substr: -1, Result: 9},
	{Str: "ation", Substr: -1, Result: 8},
	{Str: "ization", Substr: 13, Result: 7},
	{Str: "izer", Substr: -1, Result: 7},
	{Str: "ator", Substr: -1, Result: 8},
	{Str: "iveness", Substr: -1, Result: 12},
	{Str: "fulness", Substr: -1, Result: 10},
	{Str: "ousness", Substr: -1, Result: 11},
})

var step3Suffixes = snowball.NewAmongB([]snowball.AmongEntry{
	{Str: "icate", Substr: -1, Result: 2},
	{Str: "ative", Substr: -1, Result: 3},
	{Str: "alize", Substr: -1, Result: 1},
	{Str: "iciti", Substr: -1, Result: 2},
	{Str: "ical", Substr: -1, Result: 2},
	{Str: "ful", Substr: -1, Result: 3},
	{Str: "ness", Substr: -1, Result: 3},
})

var step4Suffixes = snowball.NewAmongB([]snowball.AmongEntry{
	{Str: "ic", Substr: -1, Result: 1},
	{Str: "ance", Substr: -1, Result: 1},
	{Str: "ence", Substr: -1, Result: 1},
	{Str: "able", Substr: -1, Result: 1},
	{Str: "ible", Substr: -1, Result: 1},
	{Str: "ate", Substr: -1, Result: 1},
	{Str: "ive", Substr: -1, Result: 1},
	{Str: "ize", Substr: -1, Result: 1},
	{Str: "iti", Substr: -1, Result: 1},
	{Str: "al", Substr: -1, Result: 1},
	{Str: "ism", Substr: -1, Result: 1},
	{Str: "ion", Substr: -1, Result: 2},
	{Str: "er", Substr: -1, Result: 1},
	{Str: "ous", Substr: -1, Result: 1},
	{Str: "ant", Substr: -1, Result: 1},
	{Str: "ent", Substr: -1, Result: 1},
	{Str: "ment", Substr: 15, Result: 1},
	{Str: "ement", Substr: 16, Result: 1},
	{Str: "ou", Substr: -1, Result: 1},
})
