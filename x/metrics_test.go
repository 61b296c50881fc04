/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.opencensus.io/stats/view"
)

func TestViewsRegistered(t *testing.T) {
	for _, name := range []string{"num_stems_total", "num_stem_errors_total"} {
		v := view.Find(name)
		require.NotNil(t, v, "view: %s", name)
		require.Len(t, v.TagKeys, 1)
		require.Equal(t, KeyLang, v.TagKeys[0])
	}
}
