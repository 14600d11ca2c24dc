/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// Converter computes the scale ratio between two units of the same kind via
// their common reference unit. Implementations are read-only over a Registry
// and safe for concurrent use.
type Converter interface {
	// Factor returns the ratio scale(from)/scale(to). It fails when the
	// units belong to different kinds, or when the kind has no reference
	// unit to anchor the scales.
	Factor(from, to Unit) (Amount, error)

	// Convert re-expresses a, measured in from, as an amount measured in
	// to. Converting a unit to itself returns a unchanged. Precision
	// beyond that is whatever the Amount's own division gives; the
	// converter never rounds on its own.
	Convert(a Amount, from, to Unit) (Amount, error)
}
