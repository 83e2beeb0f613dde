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

import "github.com/pkg/errors"

// SimulationError reports an unexpected numeric fault during
// sampling or aggregation, such as a non-finite sample mean
// produced by an extreme parameter combination that passed
// validation. The operation is not retried.
type SimulationError struct {
	Detail string
}

func (e *SimulationError) Error() string {
	return "simulation fault: " + e.Detail
}

// ErrDegenerateFit is reported in Result.Warning when the sample
// means collapsed to zero variance, so the Gaussian fit has
// std_fit = 0. The simulation itself still succeeds.
var ErrDegenerateFit = errors.New("sample means have zero variance, normal fit is degenerate")
