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

// Registry stores validated quantity kinds and their units. Registration is
// all-or-nothing: a failed Register leaves the registry exactly as it was,
// and a successful one makes the kind permanently queryable. Reads must be
// safe for concurrent use without locking.
type Registry interface {
	// Register validates and stores one kind with its unit set.
	// Implementations must reject duplicate kind ids, unit ids colliding
	// with any unit of any kind, more than one reference unit, non-positive
	// scales, and relations naming unregistered kinds.
	Register(spec KindSpec) error
	// Kind returns the registered kind record for id, if present.
	Kind(id string) (Kind, bool)
	// Unit returns the registered unit record for id, if present.
	Unit(id string) (Unit, bool)
	// Reference returns the reference unit of the given kind, if the kind
	// exists and has one.
	Reference(kindID string) (Unit, bool)
	// UnitsOf returns the kind's units in registration order.
	// It returns nil for an unknown kind.
	UnitsOf(kindID string) []Unit
	// Product returns the kind registered as the product of a and b.
	// The lookup is order-independent.
	Product(a, b string) (kindID string, ok bool)
	// Quotient returns the kind registered as num divided by den.
	Quotient(num, den string) (kindID string, ok bool)
	// Entries returns the registered kind specs in registration order,
	// for diagnostics and migration into a rebuilt registry.
	Entries() []KindSpec
	// Count returns the number of registered kinds.
	Count() int
	// Reset clears all registered kinds and units.
	Reset()
}
