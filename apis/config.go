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

// NumericMode selects the Amount representation produced by the
// configuration-driven constructors. It is a per-registry choice made once
// at assembly time; amounts created explicitly through the amount package
// are unaffected.
type NumericMode int

const (
	// NumericFloat64 selects native float64 amounts.
	NumericFloat64 NumericMode = iota
	// NumericDecimal selects fixed-point decimal amounts.
	NumericDecimal
)

// Config carries read-only knobs that influence registry assembly and
// amount construction. It is passed by value and should be treated as
// immutable by implementations.
type Config struct {
	// Numeric selects the Amount representation for implicit scale
	// factors and config-driven amount parsing.
	Numeric NumericMode

	// DivisionPrecision is the number of fractional decimal digits kept
	// by fixed-point division. It has no effect on float64 amounts.
	DivisionPrecision int32

	// FoldIdentifiers controls whether kind and unit identifiers are
	// folded to lower case before registration and lookup. If false,
	// identifiers are case-sensitive.
	FoldIdentifiers bool
}
