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

// Package amount provides the two stock apis.Amount representations:
// native float64 (Float) and fixed-point decimal (Dec). A registry picks
// one representation at assembly time via apis.Config; mixed operands are
// coerced to the receiver's representation, so the left-hand side of an
// expression decides its numeric semantics.
package amount

import (
	"github.com/zeebo/errs"

	"dirpx.dev/qty/apis"
)

var (
	// Error wraps malformed numeric input.
	Error = errs.Class("qty(amount)")
	// ErrDivisionByZero marks divisions whose divisor is the additive
	// identity. Arithmetic call sites raise it before delegating to
	// Amount.Div, which assumes a non-zero operand.
	ErrDivisionByZero = errs.Class("division by zero")
)

// Parse builds an Amount from its decimal text form in the representation
// selected by cfg.
func Parse(s string, cfg apis.Config) (apis.Amount, error) {
	if cfg.Numeric == apis.NumericDecimal {
		return NewDecP(s, cfg.DivisionPrecision)
	}
	return ParseFloat(s)
}

// MustParse is like Parse but panics on malformed input. It is intended
// for hard-coded declarations, tests, and examples.
func MustParse(s string, cfg apis.Config) apis.Amount {
	a, err := Parse(s, cfg)
	if err != nil {
		panic(err)
	}
	return a
}

// One returns the multiplicative identity in the representation selected
// by cfg. Registries use it for implicit reference-unit scales.
func One(cfg apis.Config) apis.Amount {
	if cfg.Numeric == apis.NumericDecimal {
		return decOne(cfg.DivisionPrecision)
	}
	return Float(1)
}
