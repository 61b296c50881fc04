/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package snowball

import (
	"github.com/pkg/errors"
)

// Program is a compiled rule program for one language. It transforms the word
// loaded in env in place. Steps that do not apply are skipped; the only way a
// program fails is a bounds violation, which the engine raises as a panic.
type Program func(env *Env)

// Run loads word into env, runs p and returns the stem. A bounds violation
// inside p is returned as an error matching ErrBounds; any other panic is
// not recovered.
func Run(p Program, env *Env, word string) (stem string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.Is(e, ErrBounds) {
				panic(r)
			}
			err = e
		}
	}()
	env.SetCurrent(word)
	p(env)
	return env.Current(), nil
}
