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

// StudentsT samples random values from the standard Student's t
// distribution with df degrees of freedom.
type StudentsT struct {
	dist distuv.StudentsT
}

// NewStudentsT returns an instance of the StudentsT sampler.
// It accepts the degrees of freedom df, which must be an
// integer >= 1.
func NewStudentsT(df float64, src rand.Source) (*StudentsT, error) {
	if !clt.IsIntegral(df) || df < 1 {
		return nil, &ValidationError{Field: "df", Reason: "degrees of freedom df must be an integer >= 1"}
	}

	return &StudentsT{
		dist: distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df, Src: src},
	}, nil
}

// Sample draws a single value.
func (s *StudentsT) Sample() (float64, error) {
	return s.dist.Rand(), nil
}
