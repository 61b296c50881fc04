/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package tok

import (
	"github.com/dgraph-io/ristretto/v2/z"
)

// StemmerDefaults holds the default values of the stemmer superflag.
const StemmerDefaults = `lang=en; fallback=en; lowercase=false;`

// Options configure a Stemmer. They are fixed once the stemmer is created.
type Options struct {
	// Lang is a BCP47 tag or a language name such as "english" or "basque".
	Lang string
	// Fallback is used when Lang has no rule program. Empty disables it.
	Fallback string
	// Lowercase lowercases words, using the rules of Lang, before stemming.
	Lowercase bool
}

// ParseOptions reads a superflag such as "lang=eu; lowercase=true;". Missing
// keys take their value from StemmerDefaults; unknown keys are fatal.
func ParseOptions(flag string) Options {
	sf := z.NewSuperFlag(flag).MergeAndCheckDefault(StemmerDefaults)
	return Options{
		Lang:      sf.GetString("lang"),
		Fallback:  sf.GetString("fallback"),
		Lowercase: sf.GetBool("lowercase"),
	}
}
