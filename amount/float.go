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

package amount

import (
	"math"
	"strconv"

	"dirpx.dev/qty/apis"
)

// Float is the native float64 Amount representation. Arithmetic follows
// IEEE 754 semantics; division performs no rounding beyond the hardware's.
type Float float64

// Ensure Float implements apis.Amount.
var _ apis.Amount = Float(0)

// ParseFloat builds a Float from its decimal text form.
func ParseFloat(s string) (apis.Amount, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, Error.New("malformed amount %q", s)
	}
	return Float(f), nil
}

// Add returns the sum of the receiver and o.
func (f Float) Add(o apis.Amount) apis.Amount { return f + toFloat(o) }

// Sub returns the difference between the receiver and o.
func (f Float) Sub(o apis.Amount) apis.Amount { return f - toFloat(o) }

// Mul returns the product of the receiver and o.
func (f Float) Mul(o apis.Amount) apis.Amount { return f * toFloat(o) }

// Div returns the quotient of the receiver and o. o must be non-zero;
// the caller guards against zero divisors before reaching here.
func (f Float) Div(o apis.Amount) apis.Amount { return f / toFloat(o) }

// Cmp compares the receiver against o.
func (f Float) Cmp(o apis.Amount) int {
	of := toFloat(o)
	switch {
	case f < of:
		return -1
	case f > of:
		return 1
	default:
		return 0
	}
}

// Sign reports -1, 0, or +1 for negative, zero, or positive amounts.
func (f Float) Sign() int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}

// IsOne reports whether the amount equals 1.
func (f Float) IsOne() bool { return f == 1 }

// String returns the shortest decimal rendering that round-trips.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

// toFloat coerces any apis.Amount to the float64 representation.
// Foreign implementations go through their canonical decimal string.
func toFloat(o apis.Amount) Float {
	switch v := o.(type) {
	case Float:
		return v
	case Dec:
		return Float(v.d.InexactFloat64())
	default:
		f, err := strconv.ParseFloat(o.String(), 64)
		if err != nil {
			// Contract violation: String must be decimal text.
			return Float(math.NaN())
		}
		return Float(f)
	}
}
