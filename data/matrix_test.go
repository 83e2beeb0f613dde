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

func TestMatrix(t *testing.T) {
	rows, cols := 5, 3
	sampler, err := dist.NewUniform(0, 10, rand.NewSource(7))
	if err != nil {
		t.Fatalf("Error during sampler construction: %v", err)
	}

	x, err := NewRandomMatrix(rows, cols, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	means := x.MeanRows()
	assert.Equal(t, rows, len(means))

	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols; j++ {
			assert.True(t, x[i][j] >= 0 && x[i][j] < 10, "coordinates should lie in [0, 10)")
			sum += x[i][j]
		}
		assert.Equal(t, sum/float64(cols), means[i], "row mean should average the row")
	}
}

func TestMatrix_Rows(t *testing.T) {
	m := NewConstantMatrix(2, 3, 1)
	assert.Equal(t, 2, m.Rows())
}

func TestMatrix_Cols(t *testing.T) {
	m := NewConstantMatrix(2, 3, 1)
	assert.Equal(t, 3, m.Cols())
}

func TestMatrix_Empty(t *testing.T) {
	var m Matrix
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.Equal(t, 0, len(m.MeanRows()))
}

func TestMatrix_DimsMatch(t *testing.T) {
	m1 := NewConstantMatrix(2, 3, 0)
	m2 := NewConstantMatrix(2, 3, 1)
	m3 := NewConstantMatrix(2, 4, 1)
	m4 := NewConstantMatrix(3, 3, 1)

	assert.True(t, m1.DimsMatch(m2))
	assert.False(t, m1.DimsMatch(m3))
	assert.False(t, m1.DimsMatch(m4))
}

func TestMatrix_CheckDims(t *testing.T) {
	m := NewConstantMatrix(2, 2, 1)

	assert.True(t, m.CheckDims(2, 2))
	assert.False(t, m.CheckDims(2, 3))
	assert.False(t, m.CheckDims(3, 2))
	assert.False(t, m.CheckDims(3, 3))
}

func TestMatrix_MismatchedVectors(t *testing.T) {
	_, err := NewMatrix([]Vector{
		{1, 2, 3},
		{4, 5},
	})

	assert.Error(t, err, "vectors of unequal length should be rejected")
}

func TestMatrix_ConstantMeanRows(t *testing.T) {
	m := NewConstantMatrix(4, 6, 2.5)

	for _, mean := range m.MeanRows() {
		assert.Equal(t, 2.5, mean)
	}
}
