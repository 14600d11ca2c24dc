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

package qty

import (
	"errors"

	"dirpx.dev/qty/amount"
	"dirpx.dev/qty/apis"
	"dirpx.dev/qty/convert"
	"dirpx.dev/qty/qtyapi/common"
	"dirpx.dev/qty/registry"
	"dirpx.dev/qty/resolver"
)

// ErrNilAmount is returned when a value is constructed without an amount.
var ErrNilAmount = errors.New("qty: nil amount provided")

// Value is a measured quantity: an amount paired with a registered unit.
// Values are immutable; every operation returns a new Value. The kind of a
// value is always its unit's owning kind and is never stored separately.
//
// Arithmetic reads the registry snapshot that is current at call time.
// Because registration completes before concurrent use begins, values are
// safe to share and operate on from any number of goroutines.
type Value struct {
	amt  apis.Amount
	unit apis.Unit
}

// Ensure Value satisfies the display contracts.
var (
	_ common.Measurer  = Value{}
	_ common.Symboler  = Value{}
	_ common.Displayer = Value{}
)

// New constructs a Value of the given amount measured in the unit
// registered under unitID.
func New(a apis.Amount, unitID string) (Value, error) {
	if a == nil {
		return Value{}, ErrNilAmount
	}
	u, ok := st.Load().reg.Unit(unitID)
	if !ok {
		return Value{}, registry.ErrUnknownUnit.New("unit %q is not registered", unitID)
	}
	return Value{amt: a, unit: u}, nil
}

// MustNew is like New but panics on failure. It is intended for tests and
// hard-coded values over a registry known to contain the unit.
func MustNew(a apis.Amount, unitID string) Value {
	v, err := New(a, unitID)
	if err != nil {
		panic(err)
	}
	return v
}

// Amount returns the numeric amount of the value.
func (v Value) Amount() apis.Amount { return v.amt }

// Unit returns the unit the amount is expressed in.
func (v Value) Unit() apis.Unit { return v.unit }

// Kind returns the identifier of the unit's owning kind.
func (v Value) Kind() string { return v.unit.Kind }

// UnitSymbol returns the display symbol of the value's unit.
func (v Value) UnitSymbol() string { return v.unit.Symbol }

// Convert re-expresses the value in the unit registered under unitID.
// Converting a value to its own unit returns it unchanged.
func (v Value) Convert(unitID string) (Value, error) {
	s := st.Load()
	target, ok := s.reg.Unit(unitID)
	if !ok {
		return Value{}, registry.ErrUnknownUnit.New("unit %q is not registered", unitID)
	}
	if target.ID == v.unit.ID {
		return v, nil
	}
	a, err := s.conv.Convert(v.amt, v.unit, target)
	if err != nil {
		return Value{}, err
	}
	return Value{amt: a, unit: target}, nil
}

// Add returns v + o. Same-unit operands combine exactly; operands that
// merely share a kind have o converted to v's unit first, so the result
// carries v's unit. Different kinds, or a shared kind without a reference
// unit, fail.
func (v Value) Add(o Value) (Value, error) {
	o, err := v.align(o)
	if err != nil {
		return Value{}, err
	}
	return Value{amt: v.amt.Add(o.amt), unit: v.unit}, nil
}

// Sub returns v - o with the same unit semantics as Add.
func (v Value) Sub(o Value) (Value, error) {
	o, err := v.align(o)
	if err != nil {
		return Value{}, err
	}
	return Value{amt: v.amt.Sub(o.amt), unit: v.unit}, nil
}

// align brings o into v's unit, enforcing kind compatibility.
func (v Value) align(o Value) (Value, error) {
	if o.unit.ID == v.unit.ID {
		return o, nil
	}
	if o.unit.Kind != v.unit.Kind {
		return Value{}, convert.ErrIncompatibleUnits.New("cannot combine %q (%s) with %q (%s)", v.unit.ID, v.unit.Kind, o.unit.ID, o.unit.Kind)
	}
	a, err := st.Load().conv.Convert(o.amt, o.unit, v.unit)
	if err != nil {
		return Value{}, err
	}
	return Value{amt: a, unit: v.unit}, nil
}

// MulScalar scales the value by a plain amount, preserving its unit.
// Multiplying by one is the identity operation.
func (v Value) MulScalar(a apis.Amount) Value {
	if a.IsOne() {
		return v
	}
	return Value{amt: v.amt.Mul(a), unit: v.unit}
}

// DivScalar divides the value by a plain amount, preserving its unit.
// Dividing by one is the identity operation; dividing by zero fails.
func (v Value) DivScalar(a apis.Amount) (Value, error) {
	if a.Sign() == 0 {
		return Value{}, amount.ErrDivisionByZero.New("cannot divide %s by zero", v)
	}
	if a.IsOne() {
		return v, nil
	}
	return Value{amt: v.amt.Div(a), unit: v.unit}, nil
}

// Mul multiplies two quantity values. The result kind comes from the
// registered derived relations; both operands are first expressed in their
// kind's reference unit, and the result carries the resolved kind's
// reference unit.
func (v Value) Mul(o Value) (Value, error) {
	s := st.Load()
	kind, ok := s.res.Multiply(v.unit.Kind, o.unit.Kind)
	if !ok {
		return Value{}, resolver.ErrUndefinedOperation.New("no registered relation for %q × %q", v.unit.Kind, o.unit.Kind)
	}
	lv, rv, ref, err := deriveOperands(s, v, o, kind)
	if err != nil {
		return Value{}, err
	}
	return Value{amt: lv.Mul(rv), unit: ref}, nil
}

// Div divides two quantity values with the same reference-unit semantics
// as Mul. Dividing by a zero-valued quantity fails.
func (v Value) Div(o Value) (Value, error) {
	s := st.Load()
	kind, ok := s.res.Divide(v.unit.Kind, o.unit.Kind)
	if !ok {
		return Value{}, resolver.ErrUndefinedOperation.New("no registered relation for %q ÷ %q", v.unit.Kind, o.unit.Kind)
	}
	if o.amt.Sign() == 0 {
		return Value{}, amount.ErrDivisionByZero.New("cannot divide %s by zero %s", v, o.unit.Kind)
	}
	lv, rv, ref, err := deriveOperands(s, v, o, kind)
	if err != nil {
		return Value{}, err
	}
	return Value{amt: lv.Div(rv), unit: ref}, nil
}

// deriveOperands expresses both operands in their reference units and
// fetches the result kind's reference unit. All three kinds must be
// anchored by a reference unit.
func deriveOperands(s *state, v, o Value, kind string) (apis.Amount, apis.Amount, apis.Unit, error) {
	lv, err := toReference(s, v)
	if err != nil {
		return nil, nil, apis.Unit{}, err
	}
	rv, err := toReference(s, o)
	if err != nil {
		return nil, nil, apis.Unit{}, err
	}
	ref, ok := s.reg.Reference(kind)
	if !ok {
		return nil, nil, apis.Unit{}, convert.ErrNoReferenceUnit.New("result kind %q has no reference unit", kind)
	}
	return lv, rv, ref, nil
}

// toReference returns v's amount expressed in its kind's reference unit.
func toReference(s *state, v Value) (apis.Amount, error) {
	ref, ok := s.reg.Reference(v.unit.Kind)
	if !ok {
		return nil, convert.ErrNoReferenceUnit.New("kind %q has no reference unit", v.unit.Kind)
	}
	if ref.ID == v.unit.ID {
		return v.amt, nil
	}
	return s.conv.Convert(v.amt, v.unit, ref)
}

// Cmp compares two values of the same kind after expressing o in v's
// unit: -1 if v < o, 0 if equal, +1 if v > o. Comparing values of
// different kinds fails.
func (v Value) Cmp(o Value) (int, error) {
	o, err := v.align(o)
	if err != nil {
		return 0, err
	}
	return v.amt.Cmp(o.amt), nil
}

// Equal reports whether two values of the same kind represent the same
// measurement, unit differences notwithstanding.
func (v Value) Equal(o Value) (bool, error) {
	c, err := v.Cmp(o)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// String renders the value as "<amount> <symbol>". A unit without a
// symbol renders as the bare amount.
func (v Value) String() string {
	if v.amt == nil {
		return ""
	}
	if v.unit.Symbol == "" {
		return v.amt.String()
	}
	return v.amt.String() + " " + v.unit.Symbol
}

// Describe returns the long human-readable form "<amount> <unit name>".
func (v Value) Describe() string {
	if v.amt == nil {
		return ""
	}
	if v.unit.Name == "" {
		return v.amt.String()
	}
	return v.amt.String() + " " + v.unit.Name
}
