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
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	clt "github.com/fenggeHan/clt/internal"
)

// Binomial samples the number of successes in n_trial independent
// Bernoulli trials with success probability p.
type Binomial struct {
	dist distuv.Binomial
}

// NewBinomial returns an instance of the Binomial sampler.
// It accepts the number of trials n_trial, which must be an
// integer >= 1, and the success probability p in [0, 1].
func NewBinomial(nTrial, p float64, src rand.Source) (*Binomial, error) {
	if !clt.IsIntegral(nTrial) || nTrial < 1 {
		return nil, &ValidationError{Field: "n_trial", Reason: "number of trials n_trial must be an integer >= 1"}
	}
	if !(p >= 0 && p <= 1) {
		return nil, &ValidationError{Field: "p", Reason: "success probability p must be in [0, 1]"}
	}

	return &Binomial{
		dist: distuv.Binomial{N: nTrial, P: p, Src: src},
	}, nil
}

// Sample draws a single success count.
func (b *Binomial) Sample() (float64, error) {
	return b.dist.Rand(), nil
}
