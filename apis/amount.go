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

// Amount is the pluggable numeric contract behind every quantity value and
// scale factor: ordered field arithmetic with a multiplicative identity.
//
// Implementations are immutable value types; every operation returns a new
// Amount and leaves the receiver untouched. When the operand uses a
// different representation than the receiver, it is coerced to the
// receiver's representation, so the left-hand side decides the numeric
// semantics of a mixed expression.
//
// Division-by-zero detection is a caller concern: arithmetic call sites
// check Sign() on the divisor before calling Div, so implementations may
// assume a non-zero operand and apply only their own precision policy.
type Amount interface {
	// Add returns the sum of the receiver and o.
	Add(o Amount) Amount
	// Sub returns the difference between the receiver and o.
	Sub(o Amount) Amount
	// Mul returns the product of the receiver and o.
	Mul(o Amount) Amount
	// Div returns the quotient of the receiver and o, applying the
	// implementation's own rounding/precision policy. o must be non-zero.
	Div(o Amount) Amount
	// Cmp compares the receiver against o: -1 if less, 0 if equal, +1 if greater.
	Cmp(o Amount) int
	// Sign reports -1, 0, or +1 for negative, zero, or positive amounts.
	Sign() int
	// IsOne reports whether the amount equals the multiplicative identity.
	IsOne() bool
	// String returns the canonical decimal rendering of the amount.
	String() string
}
