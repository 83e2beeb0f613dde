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

package sim

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/fenggeHan/clt/data"
	"github.com/fenggeHan/clt/dist"
	clt "github.com/fenggeHan/clt/internal"
)

// Bounds on the sampling parameters and their defaults. The
// bounds are policy carried over from the reference interface,
// not a mathematical necessity.
const (
	MinSampleSize = 1
	MaxSampleSize = 5000

	MinSimulations = 100
	MaxSimulations = 10000

	DefaultSampleSize  = 30
	DefaultSimulations = 2000
)

// Request describes a single simulation: the population
// distribution to draw from, its parameter set, the size n of
// each sample, and the number N of samples to reduce to means.
type Request struct {
	Dist   dist.Kind
	Params dist.Params

	// SampleSize is the number n of draws averaged into each
	// sample mean. Must be in [MinSampleSize, MaxSampleSize].
	SampleSize int

	// Simulations is the number N of sample means produced. Must
	// be in [MinSimulations, MaxSimulations].
	Simulations int

	// Src optionally fixes the random source, making the result
	// reproducible. When nil, Simulate creates an independent
	// time-seeded source for this call, so concurrent callers
	// never share generator state.
	Src rand.Source
}

// Result holds the outcome of a simulation.
type Result struct {
	// SampleMeans is the ordered sequence of N sample means.
	SampleMeans data.Vector

	// MuFit and StdFit are the maximum-likelihood Gaussian fit of
	// SampleMeans: its arithmetic mean and population standard
	// deviation.
	MuFit  float64
	StdFit float64

	// Skewness is the biased Fisher skewness of SampleMeans. It
	// is 0 when the fit is degenerate.
	Skewness float64

	// Warning is ErrDegenerateFit when SampleMeans collapsed to
	// zero variance, nil otherwise.
	Warning error
}

// Simulate draws an N x n matrix of independent values from the
// requested population distribution, reduces each row to its
// arithmetic mean and fits a Gaussian to the resulting sequence.
//
// Invalid sampling parameters or a parameter set violating the
// distribution's constraints are reported as *dist.ValidationError
// before any sampling takes place. A non-finite value in the mean
// sequence is reported as *SimulationError.
func Simulate(req Request) (*Result, error) {
	if req.SampleSize < MinSampleSize || req.SampleSize > MaxSampleSize {
		return nil, &dist.ValidationError{
			Field:  "n",
			Reason: fmt.Sprintf("sample size must be in [%d, %d]", MinSampleSize, MaxSampleSize),
		}
	}
	if req.Simulations < MinSimulations || req.Simulations > MaxSimulations {
		return nil, &dist.ValidationError{
			Field:  "N",
			Reason: fmt.Sprintf("simulation count must be in [%d, %d]", MinSimulations, MaxSimulations),
		}
	}

	spec, err := dist.Lookup(req.Dist)
	if err != nil {
		return nil, err
	}

	src := req.Src
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	sampler, err := spec.New(req.Params, src)
	if err != nil {
		return nil, err
	}

	mat, err := data.NewRandomMatrix(req.Simulations, req.SampleSize, sampler)
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate sample matrix")
	}

	means := mat.MeanRows()
	if !clt.AllFinite(means) {
		return nil, &SimulationError{Detail: "sample means contain non-finite values"}
	}

	return fitMeans(means), nil
}
