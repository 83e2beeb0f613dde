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

// Uniform samples random values uniformly from the interval [a, b).
type Uniform struct {
	dist distuv.Uniform
}

// NewUniform returns an instance of the Uniform sampler.
// It accepts lower and upper bounds on the sampled values and
// rejects bounds with a >= b.
func NewUniform(a, b float64, src rand.Source) (*Uniform, error) {
	if !(a < b) {
		return nil, &ValidationError{Field: "a", Reason: "lower bound a must be less than upper bound b"}
	}

	return &Uniform{
		dist: distuv.Uniform{Min: a, Max: b, Src: src},
	}, nil
}

// Sample draws a single value from [a, b).
func (u *Uniform) Sample() (float64, error) {
	return u.dist.Rand(), nil
}
