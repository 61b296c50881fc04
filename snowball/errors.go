/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package snowball

import (
	"github.com/pkg/errors"
)

var (
	// ErrBounds is the cause of every error reported for an edit outside the
	// buffer limits. It can only be triggered by a malformed rule program.
	ErrBounds = errors.New("snowball: edit outside buffer limits")

	// ErrMalformedAmong is returned by CompileAmong for inconsistent tables.
	ErrMalformedAmong = errors.New("snowball: malformed among table")
)

func boundsError(op string, bra, ket, lb, limit, n int) error {
	return errors.Wrapf(ErrBounds, "%s [%d, %d) with limits [%d, %d] and length %d",
		op, bra, ket, lb, limit, n)
}
