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

package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenggeHan/clt/dist"
)

func TestRegistry_Kinds(t *testing.T) {
	kinds := dist.Kinds()

	assert.Equal(t, []dist.Kind{
		dist.KindUniform,
		dist.KindPoisson,
		dist.KindExponential,
		dist.KindNormal,
		dist.KindBernoulli,
		dist.KindBinomial,
		dist.KindGeometric,
		dist.KindChiSquared,
		dist.KindStudentsT,
		dist.KindF,
	}, kinds)
}

func TestRegistry_Lookup(t *testing.T) {
	spec, err := dist.Lookup(dist.KindBinomial)
	if err != nil {
		t.Fatalf("Error during registry lookup: %v", err)
	}

	assert.Equal(t, dist.KindBinomial, spec.Kind)
	assert.Equal(t, "Binomial", spec.Name)
	assert.Equal(t, 2, len(spec.Params))
	assert.Equal(t, "n_trial", spec.Params[0].Name)
	assert.True(t, spec.Params[0].Integer)
	assert.Equal(t, "p", spec.Params[1].Name)
	assert.False(t, spec.Params[1].Integer)
}

func TestRegistry_LookupUnknown(t *testing.T) {
	_, err := dist.Lookup(dist.Kind("weibull"))

	vErr, ok := err.(*dist.ValidationError)
	assert.True(t, ok, "error should be a ValidationError")
	assert.Equal(t, "distribution", vErr.Field)
}

func TestRegistry_GeometricHasNoParams(t *testing.T) {
	spec, err := dist.Lookup(dist.KindGeometric)
	if err != nil {
		t.Fatalf("Error during registry lookup: %v", err)
	}

	assert.Empty(t, spec.Params, "geometric success probability is fixed, not a parameter")
}
