/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

// This file contains helpers for checks that must hold at init time, such as
// registering a stemmer twice or failing to register metric views. Errors
// that callers can act on are returned instead, wrapped with errors.Wrapf.

import (
	"log"

	"github.com/pkg/errors"
)

// CheckfNoTrace logs fatal if err != nil, without a stack trace.
func CheckfNoTrace(err error) {
	if err != nil {
		log.Fatal(err.Error())
	}
}

// AssertTruef asserts that b is true. Otherwise, it would log fatal.
func AssertTruef(b bool, format string, args ...interface{}) {
	if !b {
		log.Fatalf("%+v", errors.Errorf(format, args...))
	}
}
