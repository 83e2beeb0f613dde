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

// Params maps parameter names to numeric values for one
// simulation request. Whether a given set satisfies a
// distribution's constraints is decided by that distribution's
// sampler constructor.
type Params map[string]float64

// value extracts a named parameter, reporting a missing entry as
// a ValidationError on that name.
func (p Params) value(name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, &ValidationError{Field: name, Reason: "parameter is required"}
	}

	return v, nil
}

// ParamSpec describes a single named parameter of a distribution:
// its name as it appears in a Params set, whether it must be
// integer-valued, and the value a caller should pre-populate
// inputs with.
type ParamSpec struct {
	Name    string
	Integer bool
	Default float64
}
