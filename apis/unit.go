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

import "dirpx.dev/qty/qtyapi/prefix"

// RelationOp names how a derived quantity kind relates to its base kinds.
type RelationOp int

const (
	// RelationNone marks a basic kind with no derived relation.
	RelationNone RelationOp = iota
	// RelationProduct marks a kind defined as Left × Right.
	RelationProduct
	// RelationQuotient marks a kind defined as Left ÷ Right.
	RelationQuotient
)

// Relation ties a derived kind to two already-registered base kinds.
// The zero value means "basic kind, no relation".
type Relation struct {
	// Op selects the relation form.
	Op RelationOp
	// Left is the first operand kind: the product's first factor, or the
	// quotient's dividend.
	Left string
	// Right is the second operand kind: the product's second factor, or the
	// quotient's divisor.
	Right string
}

// Product is shorthand for a Relation declaring Left × Right.
func Product(left, right string) Relation {
	return Relation{Op: RelationProduct, Left: left, Right: right}
}

// Quotient is shorthand for a Relation declaring Left ÷ Right.
func Quotient(left, right string) Relation {
	return Relation{Op: RelationQuotient, Left: left, Right: right}
}

// UnitSpec declares one unit of a quantity kind, as consumed by
// Registry.Register. It is structured input from whatever declaration
// front end assembles the registry.
type UnitSpec struct {
	// ID is the unit identifier. It must be unique across all kinds.
	ID string
	// Name is the human-readable unit name, e.g. "kilogram".
	Name string
	// Symbol is the display symbol, e.g. "kg".
	Symbol string
	// Prefix is optional magnitude metadata for display tooling.
	// It never participates in conversion.
	Prefix prefix.Prefix
	// Scale expresses "1 unit = Scale × reference unit" for the owning
	// kind. It must be positive. On a reference unit it may be nil,
	// meaning 1 in the configured representation; any explicit value
	// must equal 1.
	Scale Amount
	// Reference flags this unit as the kind's reference unit.
	// At most one unit per kind may carry the flag.
	Reference bool
}

// KindSpec declares one quantity kind and its full unit set.
type KindSpec struct {
	// ID is the kind identifier, e.g. "mass".
	ID string
	// Relation is the optional derived relation. Both referenced kinds
	// must already be registered, so base kinds register before derived
	// kinds.
	Relation Relation
	// Units is the ordered unit list for the kind. It may be empty; such
	// a kind can serve as a base of derived relations but carries no
	// values of its own.
	Units []UnitSpec
}

// Unit is the immutable registered record of one unit. Registries hand out
// copies; quantity values borrow unit identity and never mutate it.
type Unit struct {
	// ID is the normalized unit identifier.
	ID string
	// Kind is the normalized identifier of the owning kind.
	Kind string
	// Name is the human-readable unit name.
	Name string
	// Symbol is the display symbol.
	Symbol string
	// Prefix is the declared magnitude metadata.
	Prefix prefix.Prefix
	// Scale is the positive factor relative to the kind's reference unit.
	Scale Amount
	// Reference reports whether this unit is the kind's reference unit.
	Reference bool
}

// Kind is the immutable registered record of one quantity kind.
type Kind struct {
	// ID is the normalized kind identifier.
	ID string
	// Relation is the derived relation, normalized; zero for basic kinds.
	Relation Relation
	// Reference is the reference unit's identifier, or "" if the kind
	// has none. A kind without a reference unit supports only same-unit
	// arithmetic.
	Reference string
	// Units lists the kind's unit identifiers in registration order.
	Units []string
}
