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

	"gonum.org/v1/gonum/stat"

	"github.com/fenggeHan/clt/data"
)

// fitMeans fits a Gaussian to the mean sequence by maximum
// likelihood and derives its skewness. The fit uses the biased
// (population) central moments, and the skewness is the biased
// Fisher estimator m3 / m2^1.5.
func fitMeans(means data.Vector) *Result {
	xs := []float64(means)

	mu := stat.Mean(xs, nil)
	m2 := stat.Moment(2, xs, nil)

	res := &Result{
		SampleMeans: means,
		MuFit:       mu,
	}

	if m2 == 0 {
		// All means identical. std_fit = 0 is still a valid
		// answer here; the skewness has no defined value, so it
		// is reported as 0 alongside the warning.
		res.Warning = ErrDegenerateFit
		return res
	}

	m3 := stat.Moment(3, xs, nil)

	res.StdFit = math.Sqrt(m2)
	res.Skewness = m3 / math.Pow(m2, 1.5)

	return res
}
