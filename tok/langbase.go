/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package tok

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// langNames maps language names accepted in options to their BCP47 base.
var langNames = map[string]string{
	"basque":  "eu",
	"english": "en",
	"euskara": "eu",
	"porter":  "en",
}

var langBaseCache struct {
	sync.Mutex
	m map[string]string
}

// langBase returns the BCP47 base of a language tag or name, or "" when the
// input cannot be resolved.
func langBase(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return ""
	}
	if base, ok := langNames[lang]; ok {
		return base
	}
	langBaseCache.Lock()
	defer langBaseCache.Unlock()
	if langBaseCache.m == nil {
		langBaseCache.m = make(map[string]string)
	}
	if base, found := langBaseCache.m[lang]; found {
		return base
	}
	var base string
	// Parse errors are not fatal here: an unknown tag simply has no stemmer.
	tag, _ := language.Parse(lang)
	if tag != language.Und {
		// Low confidence is close to being undefined, so we treat it as such.
		// e.g., a lang tag like "x-klingon" resolves to nothing.
		if b, conf := tag.Base(); conf > language.No {
			base = b.String()
		}
	}
	langBaseCache.m[lang] = base
	return base
}
