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

package strategy_test

import (
	"testing"

	"dirpx.dev/qty/apis"
	"dirpx.dev/qty/config"
	"dirpx.dev/qty/registry"
	"dirpx.dev/qty/strategy"
)

// algebraReg registers the fixture algebra:
//
//	area  = length × length
//	speed = length ÷ duration
func algebraReg(t testing.TB) apis.Registry {
	t.Helper()
	r := registry.New(config.DefaultConfig())
	for _, spec := range []apis.KindSpec{
		{ID: "length"},
		{ID: "duration"},
		{ID: "area", Relation: apis.Product("length", "length")},
		{ID: "speed", Relation: apis.Quotient("length", "duration")},
	} {
		if err := r.Register(spec); err != nil {
			t.Fatalf("register %s: %v", spec.ID, err)
		}
	}
	return r
}

func TestProduct_TryMultiply(t *testing.T) {
	s := strategy.NewProduct(algebraReg(t))

	if k, ok := s.TryMultiply("length", "length"); !ok || k != "area" {
		t.Fatalf("TryMultiply(length,length) = %q,%v, want area", k, ok)
	}
	// No product registered for these pairs.
	if _, ok := s.TryMultiply("length", "duration"); ok {
		t.Fatal("TryMultiply(length,duration): unexpectedly handled")
	}
	if _, ok := s.TryMultiply("speed", "duration"); ok {
		t.Fatal("TryMultiply(speed,duration): product strategy must not handle quotient facts")
	}
}

func TestProduct_TryDivide_RecoversFactor(t *testing.T) {
	s := strategy.NewProduct(algebraReg(t))

	if k, ok := s.TryDivide("area", "length"); !ok || k != "length" {
		t.Fatalf("TryDivide(area,length) = %q,%v, want length", k, ok)
	}
	if _, ok := s.TryDivide("area", "duration"); ok {
		t.Fatal("TryDivide(area,duration): unexpectedly handled")
	}
	if _, ok := s.TryDivide("length", "length"); ok {
		t.Fatal("TryDivide(length,length): basic kind is not a product")
	}
}

func TestQuotient_TryDivide(t *testing.T) {
	s := strategy.NewQuotient(algebraReg(t))

	if k, ok := s.TryDivide("length", "duration"); !ok || k != "speed" {
		t.Fatalf("TryDivide(length,duration) = %q,%v, want speed", k, ok)
	}
	// The defining quotient is ordered.
	if _, ok := s.TryDivide("duration", "length"); ok {
		t.Fatal("TryDivide(duration,length): unexpectedly handled")
	}
}

func TestQuotient_TryDivide_RecoversDivisor(t *testing.T) {
	s := strategy.NewQuotient(algebraReg(t))

	// Inverse of the speed × duration → length multiply fact.
	if k, ok := s.TryDivide("length", "speed"); !ok || k != "duration" {
		t.Fatalf("TryDivide(length,speed) = %q,%v, want duration", k, ok)
	}
	// Only the dividend recovers the divisor.
	if _, ok := s.TryDivide("duration", "speed"); ok {
		t.Fatal("TryDivide(duration,speed): unexpectedly handled")
	}
	if _, ok := s.TryDivide("speed", "length"); ok {
		t.Fatal("TryDivide(speed,length): quotient kind over its dividend is not a registered fact")
	}
}

func TestQuotient_TryMultiply_RecoversDividend(t *testing.T) {
	s := strategy.NewQuotient(algebraReg(t))

	if k, ok := s.TryMultiply("speed", "duration"); !ok || k != "length" {
		t.Fatalf("TryMultiply(speed,duration) = %q,%v, want length", k, ok)
	}
	// Commuted operands resolve too.
	if k, ok := s.TryMultiply("duration", "speed"); !ok || k != "length" {
		t.Fatalf("TryMultiply(duration,speed) = %q,%v, want length", k, ok)
	}
	// Multiplying a quotient kind by its dividend is not a registered fact.
	if _, ok := s.TryMultiply("speed", "length"); ok {
		t.Fatal("TryMultiply(speed,length): unexpectedly handled")
	}
}

func TestStrategies_UnknownKinds(t *testing.T) {
	r := algebraReg(t)
	for _, s := range []apis.Strategy{strategy.NewProduct(r), strategy.NewQuotient(r)} {
		if _, ok := s.TryMultiply("length", "nope"); ok {
			t.Fatalf("%T.TryMultiply with unknown kind: unexpectedly handled", s)
		}
		if _, ok := s.TryDivide("nope", "length"); ok {
			t.Fatalf("%T.TryDivide with unknown kind: unexpectedly handled", s)
		}
	}
}
