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

// Package sim implements the central limit theorem sampling and
// aggregation engine.
//
// A single call to Simulate draws N independent samples of size n
// from a selected population distribution, reduces each sample to
// its arithmetic mean, fits a Gaussian to the resulting mean
// sequence by maximum likelihood, and reports the sequence
// together with the fitted mean, fitted standard deviation and
// skewness. As n grows the mean sequence approaches a Gaussian
// regardless of the population's shape, which is what the engine
// exists to demonstrate.
//
// The engine is stateless: every call allocates its own sample
// matrix and, unless the caller supplies a seeded random source,
// its own independent random source.
package sim
