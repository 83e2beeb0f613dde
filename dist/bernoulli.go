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
)

// Bernoulli samples a single random bit (value 0 or 1), where 1
// occurs with success probability p.
type Bernoulli struct {
	dist distuv.Bernoulli
}

// NewBernoulli returns an instance of the Bernoulli sampler.
// It accepts the success probability p and rejects values outside
// [0, 1].
func NewBernoulli(p float64, src rand.Source) (*Bernoulli, error) {
	if !(p >= 0 && p <= 1) {
		return nil, &ValidationError{Field: "p", Reason: "success probability p must be in [0, 1]"}
	}

	return &Bernoulli{
		dist: distuv.Bernoulli{P: p, Src: src},
	}, nil
}

// Sample draws a single bit.
func (b *Bernoulli) Sample() (float64, error) {
	return b.dist.Rand(), nil
}
