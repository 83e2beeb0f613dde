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
)

// Spec describes one registered distribution: its identifier, a
// display name, the ordered parameter schema, and a constructor
// that validates a parameter set and returns a sampler bound to
// it. Specs are built once at startup and never mutated.
type Spec struct {
	Kind   Kind
	Name   string
	Params []ParamSpec
	New    func(p Params, src rand.Source) (Sampler, error)
}

var registry = map[Kind]Spec{
	KindUniform: {
		Kind: KindUniform,
		Name: "Uniform",
		Params: []ParamSpec{
			{Name: "a", Default: 0},
			{Name: "b", Default: 1},
		},
		New: func(p Params, src rand.Source) (Sampler, error) {
			a, err := p.value("a")
			if err != nil {
				return nil, err
			}
			b, err := p.value("b")
			if err != nil {
				return nil, err
			}
			return NewUniform(a, b, src)
		},
	},
	KindPoisson: {
		Kind: KindPoisson,
		Name: "Poisson",
		Params: []ParamSpec{
			{Name: "theta", Default: 3},
		},
		New: func(p Params, src rand.Source) (Sampler, error) {
			theta, err := p.value("theta")
			if err != nil {
				return nil, err
			}
			return NewPoisson(theta, src)
		},
	},
	KindExponential: {
		Kind: KindExponential,
		Name: "Exponential",
		Params: []ParamSpec{
			{Name: "lambda", Default: 1},
		},
		New: func(p Params, src rand.Source) (Sampler, error) {
			lambda, err := p.value("lambda")
			if err != nil {
				return nil, err
			}
			return NewExponential(lambda, src)
		},
	},
	KindNormal: {
		Kind: KindNormal,
		Name: "Normal",
		Params: []ParamSpec{
			{Name: "mu", Default: 0},
			{Name: "sigma", Default: 1},
		},
		New: func(p Params, src rand.Source) (Sampler, error) {
			mu, err := p.value("mu")
			if err != nil {
				return nil, err
			}
			sigma, err := p.value("sigma")
			if err != nil {
				return nil, err
			}
			return NewNormal(mu, sigma, src)
		},
	},
	KindBernoulli: {
		Kind: KindBernoulli,
		Name: "Bernoulli",
		Params: []ParamSpec{
			{Name: "p", Default: 0.5},
		},
		New: func(p Params, src rand.Source) (Sampler, error) {
			prob, err := p.value("p")
			if err != nil {
				return nil, err
			}
			return NewBernoulli(prob, src)
		},
	},
	KindBinomial: {
		Kind: KindBinomial,
		Name: "Binomial",
		Params: []ParamSpec{
			{Name: "n_trial", Integer: true, Default: 10},
			{Name: "p", Default: 0.5},
		},
		New: func(p Params, src rand.Source) (Sampler, error) {
			nTrial, err := p.value("n_trial")
			if err != nil {
				return nil, err
			}
			prob, err := p.value("p")
			if err != nil {
				return nil, err
			}
			return NewBinomial(nTrial, prob, src)
		},
	},
	KindGeometric: {
		Kind:   KindGeometric,
		Name:   "Geometric",
		Params: []ParamSpec{},
		New: func(p Params, src rand.Source) (Sampler, error) {
			return NewGeometric(src), nil
		},
	},
	KindChiSquared: {
		Kind: KindChiSquared,
		Name: "Chi-Square",
		Params: []ParamSpec{
			{Name: "df", Integer: true, Default: 5},
		},
		New: func(p Params, src rand.Source) (Sampler, error) {
			df, err := p.value("df")
			if err != nil {
				return nil, err
			}
			return NewChiSquared(df, src)
		},
	},
	KindStudentsT: {
		Kind: KindStudentsT,
		Name: "Student-t",
		Params: []ParamSpec{
			{Name: "df", Integer: true, Default: 10},
		},
		New: func(p Params, src rand.Source) (Sampler, error) {
			df, err := p.value("df")
			if err != nil {
				return nil, err
			}
			return NewStudentsT(df, src)
		},
	},
	KindF: {
		Kind: KindF,
		Name: "F",
		Params: []ParamSpec{
			{Name: "dfn", Integer: true, Default: 10},
			{Name: "dfd", Integer: true, Default: 20},
		},
		New: func(p Params, src rand.Source) (Sampler, error) {
			dfn, err := p.value("dfn")
			if err != nil {
				return nil, err
			}
			dfd, err := p.value("dfd")
			if err != nil {
				return nil, err
			}
			return NewF(dfn, dfd, src)
		},
	},
}

// kindOrder fixes the order in which Kinds lists the registry.
var kindOrder = []Kind{
	KindUniform,
	KindPoisson,
	KindExponential,
	KindNormal,
	KindBernoulli,
	KindBinomial,
	KindGeometric,
	KindChiSquared,
	KindStudentsT,
	KindF,
}

// Lookup returns the Spec registered for kind k. An unknown
// identifier is reported as a ValidationError on the distribution
// field.
func Lookup(k Kind) (Spec, error) {
	spec, ok := registry[k]
	if !ok {
		return Spec{}, &ValidationError{Field: "distribution", Reason: "unknown distribution identifier " + string(k)}
	}

	return spec, nil
}

// Kinds returns the identifiers of all registered distributions
// in a stable order.
func Kinds() []Kind {
	ks := make([]Kind, len(kindOrder))
	copy(ks, kindOrder)

	return ks
}
