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

package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"

	"github.com/fenggeHan/clt/dist"
	"github.com/fenggeHan/clt/sim"
)

func TestResult_Histogram(t *testing.T) {
	res, err := sim.Simulate(sim.Request{
		Dist:        dist.KindNormal,
		Params:      dist.Params{"mu": 0, "sigma": 1},
		SampleSize:  30,
		Simulations: 2000,
		Src:         rand.NewSource(8),
	})
	if err != nil {
		t.Fatalf("Error during simulation: %v", err)
	}

	edges, densities, err := res.Histogram(sim.DefaultHistogramBins)
	if err != nil {
		t.Fatalf("Error during histogram binning: %v", err)
	}

	assert.Equal(t, sim.DefaultHistogramBins+1, len(edges))
	assert.Equal(t, sim.DefaultHistogramBins, len(densities))

	width := edges[1] - edges[0]
	area := 0.0
	for _, d := range densities {
		assert.True(t, d >= 0, "densities should be non-negative")
		area += d * width
	}
	assert.InDelta(t, 1, area, 1e-9, "density histogram should have unit area")
}

func TestResult_HistogramDegenerate(t *testing.T) {
	res, err := sim.Simulate(sim.Request{
		Dist:        dist.KindBernoulli,
		Params:      dist.Params{"p": 1},
		SampleSize:  10,
		Simulations: 200,
		Src:         rand.NewSource(9),
	})
	if err != nil {
		t.Fatalf("Error during simulation: %v", err)
	}

	edges, densities, err := res.Histogram(10)
	if err != nil {
		t.Fatalf("Error during histogram binning: %v", err)
	}

	assert.Equal(t, 11, len(edges))

	nonEmpty := 0
	for _, d := range densities {
		if d > 0 {
			nonEmpty++
		}
	}
	assert.Equal(t, 1, nonEmpty, "identical means should occupy exactly one bucket")
}

func TestResult_HistogramInvalidBins(t *testing.T) {
	res, err := sim.Simulate(sim.Request{
		Dist:        dist.KindNormal,
		Params:      dist.Params{"mu": 0, "sigma": 1},
		SampleSize:  5,
		Simulations: 100,
		Src:         rand.NewSource(10),
	})
	if err != nil {
		t.Fatalf("Error during simulation: %v", err)
	}

	_, _, err = res.Histogram(0)

	vErr, ok := err.(*dist.ValidationError)
	assert.True(t, ok, "error should be a ValidationError")
	assert.Equal(t, "bins", vErr.Field)
}
