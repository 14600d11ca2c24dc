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

package prefix

import (
	"fmt"
	"strings"
)

// Prefix is an optional base-10 magnitude prefix attached to a unit.
//
// # Overview
//
// Prefix is a small enumerated type that names the metric magnitude of a
// unit (kilo, milli, ...). It is display metadata: a unit's conversion
// behavior is governed exclusively by its explicit scale factor, and a
// declared Prefix never alters that factor. Declaring Kilometer with
// Prefix Kilo and scale 1000 is redundant on purpose; the prefix exists so
// formatting, documentation, and introspection tools can render the unit
// without reverse-engineering its scale.
//
// # Values
//
// The defined prefixes cover the commonly used SI range from Nano (1e-9)
// to Tera (1e12), plus None for unprefixed units.
//
// # Contract
//
//   - Prefix values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - Consumers MUST NOT derive conversion factors from Prefix; the unit's
//     scale factor is the only conversion input. Factor exists for
//     display and sanity-checking tooling only.
//   - Adding new values is allowed, but existing values MUST NOT change
//     their semantics in breaking ways.
type Prefix int

const (
	// None marks a unit without a magnitude prefix. It is the zero value,
	// so omitting the field in a unit declaration means "no prefix".
	None Prefix = iota

	// Nano is the SI prefix for 1e-9, symbol "n".
	Nano

	// Micro is the SI prefix for 1e-6, symbol "µ".
	Micro

	// Milli is the SI prefix for 1e-3, symbol "m".
	Milli

	// Centi is the SI prefix for 1e-2, symbol "c".
	Centi

	// Kilo is the SI prefix for 1e3, symbol "k".
	Kilo

	// Mega is the SI prefix for 1e6, symbol "M".
	Mega

	// Giga is the SI prefix for 1e9, symbol "G".
	Giga

	// Tera is the SI prefix for 1e12, symbol "T".
	Tera
)

// String returns the canonical name of the prefix ("Kilo", "None", ...).
//
// For out-of-range values it returns "Unknown(<n>)"; such values never
// round-trip through Parse.
func (p Prefix) String() string {
	switch p {
	case None:
		return "None"
	case Nano:
		return "Nano"
	case Micro:
		return "Micro"
	case Milli:
		return "Milli"
	case Centi:
		return "Centi"
	case Kilo:
		return "Kilo"
	case Mega:
		return "Mega"
	case Giga:
		return "Giga"
	case Tera:
		return "Tera"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// Symbol returns the SI symbol of the prefix ("k", "µ", ...), or the
// empty string for None and unknown values.
func (p Prefix) Symbol() string {
	switch p {
	case Nano:
		return "n"
	case Micro:
		return "µ"
	case Milli:
		return "m"
	case Centi:
		return "c"
	case Kilo:
		return "k"
	case Mega:
		return "M"
	case Giga:
		return "G"
	case Tera:
		return "T"
	default:
		return ""
	}
}

// Factor returns the base-10 magnitude the prefix names, or 1 for None.
//
// # Contract
//
//   - Factor is informational. Conversion code MUST use the unit's scale
//     factor, never this value.
//   - For unknown values, Factor returns 1 so that display code degrades
//     to the unprefixed rendering instead of producing garbage.
func (p Prefix) Factor() float64 {
	switch p {
	case Nano:
		return 1e-9
	case Micro:
		return 1e-6
	case Milli:
		return 1e-3
	case Centi:
		return 1e-2
	case Kilo:
		return 1e3
	case Mega:
		return 1e6
	case Giga:
		return 1e9
	case Tera:
		return 1e12
	default:
		return 1
	}
}

// Parse converts a textual prefix name into a Prefix.
//
// Matching is case-insensitive and ignores surrounding whitespace.
// The empty string and "None" both yield None. Any other unrecognized
// token is an error.
func Parse(s string) (Prefix, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return None, nil
	}

	switch strings.ToLower(trimmed) {
	case "none":
		return None, nil
	case "nano":
		return Nano, nil
	case "micro":
		return Micro, nil
	case "milli":
		return Milli, nil
	case "centi":
		return Centi, nil
	case "kilo":
		return Kilo, nil
	case "mega":
		return Mega, nil
	case "giga":
		return Giga, nil
	case "tera":
		return Tera, nil
	default:
		return None, fmt.Errorf("prefix: unknown prefix %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// It is intended for hard-coded unit declarations, tests, and examples,
// where an invalid token is a programmer error. Callers MUST NOT use it
// on untrusted input.
func MustParse(s string) Prefix {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText encodes the Prefix as its canonical name.
//
// For unknown or out-of-range values it returns a non-nil error rather
// than persisting an "Unknown(...)" form.
func (p Prefix) MarshalText() ([]byte, error) {
	switch p {
	case None, Nano, Micro, Milli, Centi, Kilo, Mega, Giga, Tera:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("prefix: cannot marshal unknown prefix %d", p)
	}
}

// UnmarshalText decodes a Prefix from the tokens accepted by Parse.
// On failure the receiver is left unchanged.
func (p *Prefix) UnmarshalText(text []byte) error {
	value, err := Parse(string(text))
	if err != nil {
		return err
	}

	*p = value
	return nil
}
