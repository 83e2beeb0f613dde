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

package dist

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
)

// geometricP is the fixed success probability of the Geometric
// sampler. The probability is intentionally not configurable; see
// NewGeometric.
const geometricP = 0.5

// Geometric samples the number of Bernoulli trials up to and
// including the first success, so the sampled values are integers
// in {1, 2, ...}.
type Geometric struct {
	rnd *rand.Rand
}

// NewGeometric returns an instance of the Geometric sampler with
// the success probability fixed at 0.5. Callers cannot tune the
// probability; the registry advertises no parameters for this
// distribution. A nil src selects an independent time-seeded
// source.
//
// Sampling uses inverse-transform on the uniform source, since
// distuv carries no geometric distribution.
func NewGeometric(src rand.Source) *Geometric {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	return &Geometric{rnd: rand.New(src)}
}

// Sample draws a single trial count.
func (g *Geometric) Sample() (float64, error) {
	u := g.rnd.Float64()

	k := math.Ceil(math.Log1p(-u) / math.Log(1-geometricP))
	if k < 1 {
		// u == 0 maps to zero trials; the support starts at 1.
		k = 1
	}

	return k, nil
}
