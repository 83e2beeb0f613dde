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

package data

import (
	"github.com/fenggeHan/clt/dist"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements drawn by the provided dist.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler dist.Sampler) (Vector, error) {
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return NewVector(vec)
}

// Sum returns the sum of the elements of vector v.
func (v Vector) Sum() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}

	return sum
}

// Mean returns the arithmetic mean of the elements of vector v.
// It returns 0 for an empty vector.
func (v Vector) Mean() float64 {
	if len(v) == 0 {
		return 0
	}

	return v.Sum() / float64(len(v))
}

// Variance returns the population variance of the elements of
// vector v, normalized by len(v). It returns 0 for an empty
// vector.
func (v Vector) Variance() float64 {
	if len(v) == 0 {
		return 0
	}

	mean := v.Mean()
	sumSq := 0.0
	for _, x := range v {
		d := x - mean
		sumSq += d * d
	}

	return sumSq / float64(len(v))
}
