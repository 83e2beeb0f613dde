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

// Exponential samples random values from the exponential
// distribution with rate lambda, so the sampled values have
// mean 1/lambda.
type Exponential struct {
	dist distuv.Exponential
}

// NewExponential returns an instance of the Exponential sampler.
// It accepts the rate lambda and rejects lambda <= 0.
func NewExponential(lambda float64, src rand.Source) (*Exponential, error) {
	if !(lambda > 0) {
		return nil, &ValidationError{Field: "lambda", Reason: "rate lambda must be positive"}
	}

	return &Exponential{
		dist: distuv.Exponential{Rate: lambda, Src: src},
	}, nil
}

// Sample draws a single value.
func (e *Exponential) Sample() (float64, error) {
	return e.dist.Rand(), nil
}
