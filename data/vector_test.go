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
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"

	"github.com/fenggeHan/clt/dist"
)

func TestVector(t *testing.T) {
	l := 100
	sampler, err := dist.NewUniform(0, 1, rand.NewSource(7))
	if err != nil {
		t.Fatalf("Error during sampler construction: %v", err)
	}

	x, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	assert.Equal(t, l, len(x))

	sum := 0.0
	for i := 0; i < l; i++ {
		assert.True(t, x[i] >= 0 && x[i] < 1, "coordinates should lie in [0, 1)")
		sum += x[i]
	}

	assert.Equal(t, sum, x.Sum(), "sum should match the coordinate total")
	assert.Equal(t, sum/float64(l), x.Mean(), "mean should match the coordinate average")
}

func TestVector_Moments(t *testing.T) {
	v := Vector{1, 2, 3, 4}

	assert.Equal(t, 10.0, v.Sum())
	assert.Equal(t, 2.5, v.Mean())
	assert.Equal(t, 1.25, v.Variance())
}

func TestVector_Constant(t *testing.T) {
	v := NewConstantVector(5, 3.5)

	assert.Equal(t, 5, len(v))
	assert.Equal(t, 3.5, v.Mean())
	assert.Equal(t, 0.0, v.Variance())
}

func TestVector_Empty(t *testing.T) {
	var v Vector

	assert.Equal(t, 0.0, v.Sum())
	assert.Equal(t, 0.0, v.Mean())
	assert.Equal(t, 0.0, v.Variance())
}
