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

package convert

import (
	"github.com/zeebo/errs"

	"dirpx.dev/qty/apis"
)

var (
	// ErrIncompatibleUnits marks an operation across units of different
	// kinds.
	ErrIncompatibleUnits = errs.Class("incompatible units")
	// ErrNoReferenceUnit marks a conversion within a kind that has no
	// reference unit to anchor its scales. Such a kind supports only
	// same-unit arithmetic.
	ErrNoReferenceUnit = errs.Class("no reference unit")
)

// New constructs an apis.Converter over reg. The converter holds no state
// of its own and is safe for concurrent use.
func New(reg apis.Registry) apis.Converter {
	return &converter{reg: reg}
}

// converter derives every conversion from the linear-scale rule
// "1 unit = scale × reference unit".
type converter struct {
	reg apis.Registry
}

// Ensure converter implements apis.Converter.
var _ apis.Converter = (*converter)(nil)

// Factor returns scale(from)/scale(to), the multiplier that re-expresses
// an amount measured in from as an amount measured in to.
func (c *converter) Factor(from, to apis.Unit) (apis.Amount, error) {
	if err := c.check(from, to); err != nil {
		return nil, err
	}
	return from.Scale.Div(to.Scale), nil
}

// Convert re-expresses a, measured in from, in the unit to. Converting a
// unit to itself returns a unchanged, exactly. The reference-unit round
// trip is exact because scale(reference) = 1; any other pairing carries
// whatever precision the Amount's own division gives.
func (c *converter) Convert(a apis.Amount, from, to apis.Unit) (apis.Amount, error) {
	if from.ID == to.ID {
		return a, nil
	}
	if err := c.check(from, to); err != nil {
		return nil, err
	}
	return a.Mul(from.Scale).Div(to.Scale), nil
}

// check validates that from and to share a kind and that the kind is
// anchored by a reference unit.
func (c *converter) check(from, to apis.Unit) error {
	if from.Kind != to.Kind {
		return ErrIncompatibleUnits.New("cannot convert %q (%s) to %q (%s)", from.ID, from.Kind, to.ID, to.Kind)
	}
	if _, ok := c.reg.Reference(from.Kind); !ok {
		return ErrNoReferenceUnit.New("kind %q has no reference unit", from.Kind)
	}
	return nil
}
