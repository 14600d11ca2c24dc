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

// Package qty provides unit-safe arithmetic over physical quantities.
//
// A quantity value pairs a numeric amount with a unit, and every operation
// on it — addition, scalar scaling, multiplication, division, conversion —
// is permitted only when it is dimensionally and numerically sound. The
// core is a unit-algebra engine: a registry of quantity kinds and their
// units, a linear-scale conversion rule anchored at a per-kind reference
// unit, and a derived-kind algebra that decides which kind results from
// multiplying or dividing two values.
//
// # Design
//
// The core of qty is a read-mostly global snapshot (state). The snapshot
// holds five things:
//
//   - Config: knobs that control how amounts are represented (float64 or
//     fixed-point decimal), the decimal division precision, and whether
//     identifiers are case-folded.
//
//   - Registry: a process-wide mapping from kind identifiers to their
//     validated unit sets and derived relations. All validation —
//     duplicate kinds, globally duplicate unit ids, multiple reference
//     units, non-positive scales, relations naming unregistered kinds —
//     happens synchronously inside Register, all-or-nothing; a failed
//     registration is never observable. Successful registrations are
//     permanent: units never change scale once values may depend on them.
//
//   - Resolver: a read-only object that answers "which kind is X × Y?"
//     and "which kind is X ÷ Y?" over the registered relations, in both
//     directions. The resolver chains strategies in priority order:
//     1. Product relations: {A, B} → A×B, and (A×B) ÷ A → B.
//     2. Quotient relations: A ÷ B → A/B, and (A/B) × B → A.
//     Anything unregistered is rejected, never guessed.
//
//   - Converter: computes the scale ratio between two units of one kind
//     through their common reference unit. A kind without a reference
//     unit supports only same-unit arithmetic.
//
//   - Builder: a pluggable factory that knows how to construct Registry,
//     Resolver, and Converter instances for a given Config (and optional
//     extension data), migrating registered kinds across rebuilds.
//
// All of these live inside a single immutable struct called state. The
// package holds an atomic pointer to the current state. Readers load that
// pointer, use it, and never mutate it. Writers build a brand-new state
// and atomically swap it in. Value arithmetic is therefore lock-free on
// the hot path, and concurrent callers always see a consistent snapshot.
//
// # Usage pattern in a binary
//
// A process declares its quantity kinds once at startup, base kinds before
// derived kinds:
//
//	qty.MustRegister(apis.KindSpec{
//		ID: "length",
//		Units: []apis.UnitSpec{
//			{ID: "meter", Symbol: "m", Reference: true},
//			{ID: "kilometer", Symbol: "km", Prefix: prefix.Kilo, Scale: amount.Float(1000)},
//		},
//	})
//	qty.MustRegister(apis.KindSpec{
//		ID:       "area",
//		Relation: apis.Product("length", "length"),
//		Units: []apis.UnitSpec{
//			{ID: "square_meter", Symbol: "m²", Reference: true},
//		},
//	})
//
// and then creates and combines values freely:
//
//	a := qty.MustNew(amount.Float(3), "meter")
//	b := qty.MustNew(amount.Float(0.5), "kilometer")
//	area, err := a.Mul(b) // 1500 m²
//
// Same-kind addition converts the right-hand operand into the left-hand
// operand's unit, so the result keeps the caller's chosen unit:
//
//	grams := qty.MustNew(amount.MustDec("17.4"), "gram")
//	kilos := qty.MustNew(amount.MustDec("1.407"), "kilogram")
//	sum, err := grams.Add(kilos) // 1424.4 g
//
// # Error tiers
//
// Construction-time errors (duplicate kind, duplicate unit identifier,
// multiple reference units, invalid scale, unknown base kind) are
// configuration defects: Register surfaces them synchronously and the
// registry stays unchanged. Runtime errors (incompatible units, no
// reference unit, undefined derived operation, division by zero) are
// ordinary outcomes of caller-driven arithmetic, returned as inspectable
// errs classes so callers can recover or report. Numeric precision loss is
// not an error: conversions and derived products delegate arithmetic to
// the configured Amount representation and never round on their own.
//
// # Concurrency model
//
// Reads (New, Value arithmetic, Registry, Resolver, Converter) are
// wait-free: they load the current *state atomically and never take locks.
// Writes (Register on the registry, SetConfig, SetBuilder, SetExt,
// SetRegistry, SetResolver, SetAll) serialize on a short build mutex and
// publish complete snapshots. Registration is expected to finish before
// concurrent arithmetic begins; after that single synchronization point
// the whole structure is read-only.
//
// # Pinning
//
// SetRegistry and SetResolver pin the layer they install: subsequent
// SetConfig/SetBuilder/SetExt calls will not rebuild a pinned layer until
// UnpinRegistry/UnpinResolver is called. Pinning exists for advanced
// scenarios — a custom resolver with extra algebra, a registry shared
// across test cases — while the remaining layers stay reconfigurable.
//
// # Scope
//
// qty is intentionally small. It does not parse quantity expressions, does
// not serialize values, and ships no predefined kind catalog; declaring
// mass, length, energy and friends is the embedding binary's one-time
// setup (see examples/si). A kind has at most one reference unit — one
// system of measure per kind — and cross-system conversion belongs to the
// caller.
package qty
