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

package prefix_test

import (
	"testing"

	"dirpx.dev/qty/qtyapi/prefix"
)

var defined = []prefix.Prefix{
	prefix.None, prefix.Nano, prefix.Micro, prefix.Milli, prefix.Centi,
	prefix.Kilo, prefix.Mega, prefix.Giga, prefix.Tera,
}

func TestString_RoundTripsThroughParse(t *testing.T) {
	for _, p := range defined {
		got, err := prefix.Parse(p.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", p.String(), err)
		}
		if got != p {
			t.Fatalf("Parse(%q) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestParse_Lenient(t *testing.T) {
	cases := map[string]prefix.Prefix{
		"":       prefix.None,
		"  ":     prefix.None,
		"none":   prefix.None,
		"KILO":   prefix.Kilo,
		" milli": prefix.Milli,
		"Tera ":  prefix.Tera,
	}
	for in, want := range cases {
		got, err := prefix.Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("Parse(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	if _, err := prefix.Parse("deka"); err == nil {
		t.Fatal("Parse(deka): expected error")
	}
}

func TestMustParse_PanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse(bogus): expected panic")
		}
	}()
	prefix.MustParse("bogus")
}

func TestSymbolAndFactor(t *testing.T) {
	cases := []struct {
		p      prefix.Prefix
		symbol string
		factor float64
	}{
		{prefix.None, "", 1},
		{prefix.Nano, "n", 1e-9},
		{prefix.Micro, "µ", 1e-6},
		{prefix.Milli, "m", 1e-3},
		{prefix.Centi, "c", 1e-2},
		{prefix.Kilo, "k", 1e3},
		{prefix.Mega, "M", 1e6},
		{prefix.Giga, "G", 1e9},
		{prefix.Tera, "T", 1e12},
	}
	for _, c := range cases {
		if got := c.p.Symbol(); got != c.symbol {
			t.Fatalf("%v.Symbol() = %q, want %q", c.p, got, c.symbol)
		}
		if got := c.p.Factor(); got != c.factor {
			t.Fatalf("%v.Factor() = %v, want %v", c.p, got, c.factor)
		}
	}
}

func TestUnknownValueBehavior(t *testing.T) {
	bogus := prefix.Prefix(99)
	if got := bogus.String(); got != "Unknown(99)" {
		t.Fatalf("String = %q", got)
	}
	if got := bogus.Symbol(); got != "" {
		t.Fatalf("Symbol = %q, want empty", got)
	}
	if got := bogus.Factor(); got != 1 {
		t.Fatalf("Factor = %v, want 1", got)
	}
	if _, err := bogus.MarshalText(); err == nil {
		t.Fatal("MarshalText on unknown value: expected error")
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, p := range defined {
		text, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", p, err)
		}
		var back prefix.Prefix
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != p {
			t.Fatalf("round trip %v -> %q -> %v", p, text, back)
		}
	}
}

func TestUnmarshalText_FailureLeavesValue(t *testing.T) {
	p := prefix.Giga
	if err := p.UnmarshalText([]byte("zetta")); err == nil {
		t.Fatal("expected error")
	}
	if p != prefix.Giga {
		t.Fatalf("receiver changed to %v", p)
	}
}
