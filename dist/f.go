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

// F samples random values from the F distribution with dfn
// numerator and dfd denominator degrees of freedom.
type F struct {
	dist distuv.F
}

// NewF returns an instance of the F sampler. It accepts the
// numerator and denominator degrees of freedom dfn and dfd, each
// of which must be an integer >= 1.
func NewF(dfn, dfd float64, src rand.Source) (*F, error) {
	if !clt.IsIntegral(dfn) || dfn < 1 {
		return nil, &ValidationError{Field: "dfn", Reason: "numerator degrees of freedom dfn must be an integer >= 1"}
	}
	if !clt.IsIntegral(dfd) || dfd < 1 {
		return nil, &ValidationError{Field: "dfd", Reason: "denominator degrees of freedom dfd must be an integer >= 1"}
	}

	return &F{
		dist: distuv.F{D1: dfn, D2: dfd, Src: src},
	}, nil
}

// Sample draws a single value.
func (f *F) Sample() (float64, error) {
	return f.dist.Rand(), nil
}
