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

package convert_test

import (
	"testing"

	"dirpx.dev/qty/amount"
	"dirpx.dev/qty/apis"
	"dirpx.dev/qty/config"
	"dirpx.dev/qty/convert"
	"dirpx.dev/qty/registry"
)

// reg builds a registry with a convertible mass kind, plus an unanchored
// kind without a reference unit.
func reg(t testing.TB) apis.Registry {
	t.Helper()
	r := registry.New(config.DefaultConfig())

	if err := r.Register(apis.KindSpec{
		ID: "mass",
		Units: []apis.UnitSpec{
			{ID: "kilogram", Symbol: "kg", Reference: true},
			{ID: "gram", Symbol: "g", Scale: amount.MustDec("0.001")},
			{ID: "tonne", Symbol: "t", Scale: amount.MustDec("1000")},
		},
	}); err != nil {
		t.Fatalf("register mass: %v", err)
	}

	// Currency has units but no reference: same-unit arithmetic only.
	if err := r.Register(apis.KindSpec{
		ID: "currency",
		Units: []apis.UnitSpec{
			{ID: "coin", Symbol: "¤", Scale: amount.MustDec("1")},
			{ID: "note", Symbol: "₿", Scale: amount.MustDec("100")},
		},
	}); err != nil {
		t.Fatalf("register currency: %v", err)
	}
	return r
}

func mustUnit(t testing.TB, r apis.Registry, id string) apis.Unit {
	t.Helper()
	u, ok := r.Unit(id)
	if !ok {
		t.Fatalf("unit %q not registered", id)
	}
	return u
}

func TestConvert_ThroughReference(t *testing.T) {
	r := reg(t)
	c := convert.New(r)

	g := mustUnit(t, r, "gram")
	kg := mustUnit(t, r, "kilogram")
	tn := mustUnit(t, r, "tonne")

	got, err := c.Convert(amount.MustDec("1.407"), kg, g)
	if err != nil {
		t.Fatalf("Convert(kg->g): %v", err)
	}
	if got.String() != "1407" {
		t.Fatalf("Convert(kg->g) = %s, want 1407", got)
	}

	got, err = c.Convert(amount.MustDec("2500"), g, tn)
	if err != nil {
		t.Fatalf("Convert(g->t): %v", err)
	}
	if got.String() != "0.0025" {
		t.Fatalf("Convert(g->t) = %s, want 0.0025", got)
	}
}

func TestConvert_SameUnitIsIdentity(t *testing.T) {
	r := reg(t)
	c := convert.New(r)
	g := mustUnit(t, r, "gram")

	in := amount.MustDec("17.4")
	got, err := c.Convert(in, g, g)
	if err != nil {
		t.Fatalf("Convert(g->g): %v", err)
	}
	if got != in {
		t.Fatalf("Convert(g->g) = %v, want the input amount unchanged", got)
	}
}

func TestConvert_ReferenceRoundTrip(t *testing.T) {
	r := reg(t)
	c := convert.New(r)

	kg := mustUnit(t, r, "kilogram")
	for _, id := range []string{"gram", "tonne", "kilogram"} {
		u := mustUnit(t, r, id)
		in := amount.MustDec("17.4")
		up, err := c.Convert(in, u, kg)
		if err != nil {
			t.Fatalf("Convert(%s->kg): %v", id, err)
		}
		back, err := c.Convert(up, kg, u)
		if err != nil {
			t.Fatalf("Convert(kg->%s): %v", id, err)
		}
		if back.Cmp(in) != 0 {
			t.Fatalf("round trip via reference for %s = %s, want %s", id, back, in)
		}
	}
}

func TestFactor(t *testing.T) {
	r := reg(t)
	c := convert.New(r)

	f, err := c.Factor(mustUnit(t, r, "tonne"), mustUnit(t, r, "gram"))
	if err != nil {
		t.Fatalf("Factor(t->g): %v", err)
	}
	if f.String() != "1000000" {
		t.Fatalf("Factor(t->g) = %s, want 1000000", f)
	}
}

func TestConvert_IncompatibleKinds(t *testing.T) {
	r := reg(t)
	c := convert.New(r)

	_, err := c.Convert(amount.MustDec("1"), mustUnit(t, r, "gram"), mustUnit(t, r, "coin"))
	if !convert.ErrIncompatibleUnits.Has(err) {
		t.Fatalf("expected ErrIncompatibleUnits, got: %v", err)
	}
}

func TestConvert_NoReferenceUnit(t *testing.T) {
	r := reg(t)
	c := convert.New(r)

	_, err := c.Convert(amount.MustDec("1"), mustUnit(t, r, "coin"), mustUnit(t, r, "note"))
	if !convert.ErrNoReferenceUnit.Has(err) {
		t.Fatalf("expected ErrNoReferenceUnit, got: %v", err)
	}
}
