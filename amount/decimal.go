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
	"github.com/shopspring/decimal"

	"dirpx.dev/qty/apis"
)

// Dec is the fixed-point decimal Amount representation. Addition,
// subtraction, and multiplication are exact; division rounds half away
// from zero at the precision the amount carries. Results inherit the
// receiver's precision, so a value chain keeps one policy throughout.
type Dec struct {
	d    decimal.Decimal
	prec int32
}

// Ensure Dec implements apis.Amount.
var _ apis.Amount = Dec{}

// NewDec builds a Dec from its decimal text form at the default division
// precision.
func NewDec(s string) (apis.Amount, error) {
	return NewDecP(s, defaultDecPrecision)
}

// NewDecP builds a Dec from its decimal text form carrying the given
// division precision. A non-positive precision resets to the default.
func NewDecP(s string, prec int32) (apis.Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, Error.New("malformed amount %q", s)
	}
	if prec <= 0 {
		prec = defaultDecPrecision
	}
	return Dec{d: d, prec: prec}, nil
}

// MustDec is like NewDec but panics on malformed input. It is intended
// for hard-coded declarations, tests, and examples.
func MustDec(s string) apis.Amount {
	a, err := NewDec(s)
	if err != nil {
		panic(err)
	}
	return a
}

// defaultDecPrecision mirrors config.DefaultDivisionPrecision without the
// import (config depends on apis only; amount stays a sibling leaf).
const defaultDecPrecision = int32(16)

// decOne returns the multiplicative identity carrying prec.
func decOne(prec int32) Dec {
	if prec <= 0 {
		prec = defaultDecPrecision
	}
	return Dec{d: decimal.New(1, 0), prec: prec}
}

// Add returns the exact sum of the receiver and o.
func (a Dec) Add(o apis.Amount) apis.Amount {
	return Dec{d: a.d.Add(a.coerce(o)), prec: a.prec}
}

// Sub returns the exact difference between the receiver and o.
func (a Dec) Sub(o apis.Amount) apis.Amount {
	return Dec{d: a.d.Sub(a.coerce(o)), prec: a.prec}
}

// Mul returns the exact product of the receiver and o.
func (a Dec) Mul(o apis.Amount) apis.Amount {
	return Dec{d: a.d.Mul(a.coerce(o)), prec: a.prec}
}

// Div returns the quotient of the receiver and o, rounded half away from
// zero at the receiver's division precision. o must be non-zero; the
// caller guards against zero divisors before reaching here.
func (a Dec) Div(o apis.Amount) apis.Amount {
	return Dec{d: a.d.DivRound(a.coerce(o), a.prec), prec: a.prec}
}

// Cmp compares the receiver against o.
func (a Dec) Cmp(o apis.Amount) int { return a.d.Cmp(a.coerce(o)) }

// Sign reports -1, 0, or +1 for negative, zero, or positive amounts.
func (a Dec) Sign() int { return a.d.Sign() }

// IsOne reports whether the amount equals 1.
func (a Dec) IsOne() bool { return a.d.Equal(decimal.New(1, 0)) }

// String returns the canonical fixed-point rendering without exponent.
func (a Dec) String() string { return a.d.String() }

// Decimal exposes the underlying decimal value.
func (a Dec) Decimal() decimal.Decimal { return a.d }

// Precision returns the division precision the amount carries.
func (a Dec) Precision() int32 { return a.prec }

// coerce converts any apis.Amount operand to the decimal representation.
// Foreign implementations go through their canonical decimal string.
func (a Dec) coerce(o apis.Amount) decimal.Decimal {
	switch v := o.(type) {
	case Dec:
		return v.d
	case Float:
		return decimal.NewFromFloat(float64(v))
	default:
		d, err := decimal.NewFromString(o.String())
		if err != nil {
			// Contract violation: String must be decimal text.
			return decimal.Decimal{}
		}
		return d
	}
}
