/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sim

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/fenggeHan/clt/dist"
)

// DefaultHistogramBins is the bin count used by presentation
// layers that do not choose their own.
const DefaultHistogramBins = 60

// Histogram bins the sample means into the given number of
// equal-width buckets spanning [min, max] of the sequence. It
// returns the bins+1 bucket edges and the per-bucket densities,
// normalized so the total area under the histogram is 1.
//
// When all means are identical the buckets span a unit interval
// centered on the common value, putting all mass in one bucket.
func (r *Result) Histogram(bins int) (edges, densities []float64, err error) {
	if bins < 1 {
		return nil, nil, &dist.ValidationError{Field: "bins", Reason: "bin count must be at least 1"}
	}
	if len(r.SampleMeans) == 0 {
		return nil, nil, &dist.ValidationError{Field: "sample_means", Reason: "mean sequence is empty"}
	}

	xs := make([]float64, len(r.SampleMeans))
	copy(xs, r.SampleMeans)
	sort.Float64s(xs)

	lo, hi := xs[0], xs[len(xs)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	edges = make([]float64, bins+1)
	floats.Span(edges, lo, hi)

	// The counting dividers exclude the upper edge, so nudge it
	// past the maximum to keep the largest mean inside the last
	// bucket.
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	densities = stat.Histogram(nil, dividers, xs, nil)

	width := (hi - lo) / float64(bins)
	norm := float64(len(xs)) * width
	for i := range densities {
		densities[i] /= norm
	}

	return edges, densities, nil
}
