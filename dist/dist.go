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

// Sampler draws single random values from a population
// probability distribution.
type Sampler interface {
	Sample() (float64, error)
}

// Kind identifies one of the supported population distributions.
type Kind string

// Supported distribution identifiers.
const (
	KindUniform     Kind = "uniform"
	KindPoisson     Kind = "poisson"
	KindExponential Kind = "exponential"
	KindNormal      Kind = "normal"
	KindBernoulli   Kind = "bernoulli"
	KindBinomial    Kind = "binomial"
	KindGeometric   Kind = "geometric"
	KindChiSquared  Kind = "chi-square"
	KindStudentsT   Kind = "student-t"
	KindF           Kind = "f"
)
