/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	// Cumulative metrics.
	NumStems = stats.Int64("num_stems_total",
		"Total number of words stemmed", stats.UnitDimensionless)
	NumStemErrors = stats.Int64("num_stem_errors_total",
		"Total number of words a rule program failed on", stats.UnitDimensionless)

	// Tag keys here
	KeyLang, _ = tag.NewKey("lang")

	allTagKeys = []tag.Key{
		KeyLang,
	}

	allViews = []*view.View{
		{
			Name:        NumStems.Name(),
			Measure:     NumStems,
			Description: NumStems.Description(),
			Aggregation: view.Count(),
			TagKeys:     allTagKeys,
		},
		{
			Name:        NumStemErrors.Name(),
			Measure:     NumStemErrors,
			Description: NumStemErrors.Description(),
			Aggregation: view.Count(),
			TagKeys:     allTagKeys,
		},
	}
)

func init() {
	CheckfNoTrace(view.Register(allViews...))
}
