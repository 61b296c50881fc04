/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package tok

import (
	"context"
	"sort"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	ostats "go.opencensus.io/stats"
	"go.opencensus.io/tag"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hypermodeinc/snowstem/snowball"
	"github.com/hypermodeinc/snowstem/snowball/basque"
	"github.com/hypermodeinc/snowstem/snowball/porter"
	"github.com/hypermodeinc/snowstem/x"
)

// ErrUnsupportedLanguage is returned when no rule program exists for the
// requested language and no usable fallback is configured.
var ErrUnsupportedLanguage = errors.New("tok: no stemmer for language")

// langStemmers maps BCP47 base languages to their rule programs. It is only
// written during init.
var langStemmers = make(map[string]snowball.Program)

func init() {
	registerStemmer("en", porter.Stem)
	registerStemmer("eu", basque.Stem)
}

func registerStemmer(lang string, p snowball.Program) {
	_, ok := langStemmers[lang]
	x.AssertTruef(!ok, "Duplicate stemmer: %s", lang)
	langStemmers[lang] = p
}

// Languages returns the base languages that have a stemmer, sorted.
func Languages() []string {
	langs := make([]string, 0, len(langStemmers))
	for lang := range langStemmers {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Stemmer reduces words of one language to their stems. It is safe for
// concurrent use: every call works on its own pooled engine state.
type Stemmer struct {
	lang      string
	program   snowball.Program
	lowercase bool
	tags      []tag.Mutator
	pool      sync.Pool
}

type stemWorker struct {
	env   *snowball.Env
	lower cases.Caser
}

// NewStemmer returns a stemmer for lang with no fallback language.
func NewStemmer(lang string) (*Stemmer, error) {
	return NewStemmerWithOptions(Options{Lang: lang})
}

// NewStemmerFromFlag returns a stemmer configured by a superflag string,
// see StemmerDefaults.
func NewStemmerFromFlag(flag string) (*Stemmer, error) {
	return NewStemmerWithOptions(ParseOptions(flag))
}

// NewStemmerWithOptions returns a stemmer configured by opts.
func NewStemmerWithOptions(opts Options) (*Stemmer, error) {
	lang := langBase(opts.Lang)
	program, ok := langStemmers[lang]
	if !ok {
		fallback := langBase(opts.Fallback)
		if program, ok = langStemmers[fallback]; !ok {
			return nil, errors.Wrapf(ErrUnsupportedLanguage, "%q", opts.Lang)
		}
		glog.Warningf("No stemmer for language %q, falling back to %q", opts.Lang, fallback)
		lang = fallback
	}

	glog.V(2).Infof("Creating %q stemmer, lowercase: %v", lang, opts.Lowercase)
	return newStemmer(lang, program, opts.Lowercase), nil
}

func newStemmer(lang string, program snowball.Program, lowercase bool) *Stemmer {
	s := &Stemmer{
		lang:      lang,
		program:   program,
		lowercase: lowercase,
		tags:      []tag.Mutator{tag.Upsert(x.KeyLang, lang)},
	}
	langTag := language.Make(lang)
	s.pool.New = func() interface{} {
		w := &stemWorker{env: &snowball.Env{}}
		if s.lowercase {
			w.lower = cases.Lower(langTag)
		}
		return w
	}
	return s
}

// Lang returns the base language the stemmer runs.
func (s *Stemmer) Lang() string {
	return s.lang
}

// Stem returns the stem of word. Words that match no rule come back
// unchanged. An error is only returned when the rule program edits outside
// the word, which means the program itself is broken.
func (s *Stemmer) Stem(word string) (string, error) {
	w := s.pool.Get().(*stemWorker)
	defer s.pool.Put(w)

	if s.lowercase {
		word = w.lower.String(word)
	}
	stem, err := snowball.Run(s.program, w.env, word)
	if err != nil {
		glog.Errorf("Error while stemming %q as %q: %+v", word, s.lang, err)
		s.record(x.NumStems.M(1), x.NumStemErrors.M(1))
		return "", errors.Wrapf(err, "while stemming %q", word)
	}
	s.record(x.NumStems.M(1))
	return stem, nil
}

// StemTerms stems every word of words, keeping their order.
func (s *Stemmer) StemTerms(words []string) ([]string, error) {
	stems := make([]string, len(words))
	for i, word := range words {
		stem, err := s.Stem(word)
		if err != nil {
			return nil, err
		}
		stems[i] = stem
	}
	return stems, nil
}

func (s *Stemmer) record(ms ...ostats.Measurement) {
	// The tag mutators are fixed at construction and always valid.
	_ = ostats.RecordWithTags(context.Background(), s.tags, ms...)
}

var stemmerCache struct {
	sync.Mutex
	m map[string]*Stemmer
}

// GetStemmer returns the shared stemmer for lang, creating it on first use.
func GetStemmer(lang string) (*Stemmer, error) {
	base := langBase(lang)
	stemmerCache.Lock()
	defer stemmerCache.Unlock()
	if s, ok := stemmerCache.m[base]; ok {
		return s, nil
	}
	s, err := NewStemmer(lang)
	if err != nil {
		return nil, err
	}
	if stemmerCache.m == nil {
		stemmerCache.m = make(map[string]*Stemmer)
	}
	stemmerCache.m[base] = s
	return s, nil
}

// StemWord stems word with the shared stemmer for lang.
func StemWord(lang, word string) (string, error) {
	s, err := GetStemmer(lang)
	if err != nil {
		return "", err
	}
	return s.Stem(word)
}
