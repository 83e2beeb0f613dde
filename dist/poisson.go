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

// Poisson samples random counts from the Poisson distribution
// with rate theta.
type Poisson struct {
	dist distuv.Poisson
}

// NewPoisson returns an instance of the Poisson sampler.
// It accepts the rate theta and rejects theta <= 0.
func NewPoisson(theta float64, src rand.Source) (*Poisson, error) {
	if !(theta > 0) {
		return nil, &ValidationError{Field: "theta", Reason: "rate theta must be positive"}
	}

	return &Poisson{
		dist: distuv.Poisson{Lambda: theta, Src: src},
	}, nil
}

// Sample draws a single count.
func (p *Poisson) Sample() (float64, error) {
	return p.dist.Rand(), nil
}
