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

package registry

import (
	"sync"
	"sync/atomic"

	"github.com/zeebo/errs"

	"dirpx.dev/qty/amount"
	"dirpx.dev/qty/apis"
	"dirpx.dev/qty/utils/ident"
)

var (
	// ErrDuplicateKind marks an attempt to register a kind id twice.
	ErrDuplicateKind = errs.Class("duplicate kind")
	// ErrDuplicateUnit marks a unit id colliding with a unit already
	// registered under any kind.
	ErrDuplicateUnit = errs.Class("duplicate unit identifier")
	// ErrMultipleReferenceUnits marks a kind spec flagging more than one
	// reference unit.
	ErrMultipleReferenceUnits = errs.Class("multiple reference units")
	// ErrInvalidScale marks a scale that is missing, not positive, or a
	// reference scale different from 1.
	ErrInvalidScale = errs.Class("invalid scale")
	// ErrUnknownBaseKind marks a derived relation naming a kind that is
	// not registered yet. Base kinds must register before derived kinds.
	ErrUnknownBaseKind = errs.Class("unknown base kind")
	// ErrDuplicateRelation marks a second kind claiming a product or
	// quotient pair already taken; resolution must stay unambiguous.
	ErrDuplicateRelation = errs.Class("duplicate relation")
	// ErrInvalidIdentifier wraps identifier normalization failures.
	ErrInvalidIdentifier = errs.Class("invalid identifier")
	// ErrUnknownUnit marks a lookup of a unit id that is not registered.
	// The registry itself returns ok=false; value constructors use this
	// class to report the failure.
	ErrUnknownUnit = errs.Class("unknown unit")
)

// New constructs an empty Registry that normalizes identifiers according
// to cfg and materializes implicit reference scales in cfg's numeric
// representation.
func New(cfg apis.Config) apis.Registry {
	r := &registry{cfg: cfg}
	r.snap.Store(emptySnapshot())
	return r
}

// registry validates kind specs under a write mutex and publishes each
// successful registration as a brand-new immutable snapshot. Reads load
// the current snapshot and never take locks, so a failed Register is
// invisible and a successful one is atomic.
type registry struct {
	// cfg is the configuration used for identifier normalization and
	// implicit scales.
	cfg apis.Config
	// mu serializes writers.
	mu sync.Mutex
	// snap is the current immutable registry state.
	snap atomic.Pointer[snapshot]
}

// snapshot holds the registered state. Published snapshots are never
// mutated; writers copy, extend, and swap.
type snapshot struct {
	// kinds maps normalized kind id to its record.
	kinds map[string]apis.Kind
	// units maps normalized unit id to its record, across all kinds.
	units map[string]apis.Unit
	// products maps an unordered kind pair to the kind registered as its
	// product.
	products map[pair]string
	// quotients maps an ordered (dividend, divisor) pair to the kind
	// registered as their quotient.
	quotients map[pair]string
	// specs keeps the normalized kind specs in registration order for
	// Entries and migration.
	specs []apis.KindSpec
}

// pair is a two-kind table key. Product keys are stored with productKey
// so that lookups are order-independent.
type pair struct {
	a string
	b string
}

// productKey returns the canonical unordered key for a product pair.
func productKey(a, b string) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a: a, b: b}
}

func emptySnapshot() *snapshot {
	return &snapshot{
		kinds:     map[string]apis.Kind{},
		units:     map[string]apis.Unit{},
		products:  map[pair]string{},
		quotients: map[pair]string{},
	}
}

// Register validates spec against the current state and, on success,
// publishes a new snapshot containing the kind, its units, and its
// relation facts. Any validation failure leaves the registry unchanged.
func (r *registry) Register(spec apis.KindSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.snap.Load()

	norm, err := r.normalize(cur, spec)
	if err != nil {
		return err
	}

	next := cur.clone()
	next.commit(norm)
	r.snap.Store(next)
	return nil
}

// normalized is a fully validated registration, ready to commit.
type normalized struct {
	kind apis.Kind
	unit []apis.Unit
	spec apis.KindSpec
}

// normalize validates spec against snapshot s and returns the records to
// store. It performs every check before anything is written.
func (r *registry) normalize(s *snapshot, spec apis.KindSpec) (normalized, error) {
	kindID, err := ident.Normalize(spec.ID, r.cfg)
	if err != nil {
		return normalized{}, ErrInvalidIdentifier.New("kind %q: %v", spec.ID, err)
	}
	if _, ok := s.kinds[kindID]; ok {
		return normalized{}, ErrDuplicateKind.New("kind %q is already registered", kindID)
	}

	rel, err := r.normalizeRelation(s, kindID, spec.Relation)
	if err != nil {
		return normalized{}, err
	}

	kind := apis.Kind{ID: kindID, Relation: rel}
	nspec := apis.KindSpec{ID: kindID, Relation: rel}

	units := make([]apis.Unit, 0, len(spec.Units))
	seen := map[string]bool{}
	for _, us := range spec.Units {
		unitID, err := ident.Normalize(us.ID, r.cfg)
		if err != nil {
			return normalized{}, ErrInvalidIdentifier.New("unit %q: %v", us.ID, err)
		}
		if seen[unitID] {
			return normalized{}, ErrDuplicateUnit.New("unit %q appears twice in kind %q", unitID, kindID)
		}
		if _, ok := s.units[unitID]; ok {
			return normalized{}, ErrDuplicateUnit.New("unit %q is already registered under kind %q", unitID, s.units[unitID].Kind)
		}
		seen[unitID] = true

		scale, err := r.normalizeScale(kindID, unitID, us)
		if err != nil {
			return normalized{}, err
		}
		if us.Reference {
			if kind.Reference != "" {
				return normalized{}, ErrMultipleReferenceUnits.New("kind %q flags both %q and %q as reference", kindID, kind.Reference, unitID)
			}
			kind.Reference = unitID
		}

		units = append(units, apis.Unit{
			ID:        unitID,
			Kind:      kindID,
			Name:      us.Name,
			Symbol:    us.Symbol,
			Prefix:    us.Prefix,
			Scale:     scale,
			Reference: us.Reference,
		})
		kind.Units = append(kind.Units, unitID)
		nspec.Units = append(nspec.Units, apis.UnitSpec{
			ID:        unitID,
			Name:      us.Name,
			Symbol:    us.Symbol,
			Prefix:    us.Prefix,
			Scale:     scale,
			Reference: us.Reference,
		})
	}

	return normalized{kind: kind, unit: units, spec: nspec}, nil
}

// normalizeRelation validates a derived relation against the already
// registered kinds and checks the relation tables for ambiguity.
func (r *registry) normalizeRelation(s *snapshot, kindID string, rel apis.Relation) (apis.Relation, error) {
	if rel.Op == apis.RelationNone {
		return apis.Relation{}, nil
	}

	left, err := ident.Normalize(rel.Left, r.cfg)
	if err != nil {
		return apis.Relation{}, ErrInvalidIdentifier.New("relation kind %q: %v", rel.Left, err)
	}
	right, err := ident.Normalize(rel.Right, r.cfg)
	if err != nil {
		return apis.Relation{}, ErrInvalidIdentifier.New("relation kind %q: %v", rel.Right, err)
	}

	// A relation may only reference kinds registered before this one,
	// which also rules out self-reference and cycles.
	if _, ok := s.kinds[left]; !ok {
		return apis.Relation{}, ErrUnknownBaseKind.New("kind %q relation references unregistered kind %q", kindID, left)
	}
	if _, ok := s.kinds[right]; !ok {
		return apis.Relation{}, ErrUnknownBaseKind.New("kind %q relation references unregistered kind %q", kindID, right)
	}

	switch rel.Op {
	case apis.RelationProduct:
		if owner, ok := s.products[productKey(left, right)]; ok {
			return apis.Relation{}, ErrDuplicateRelation.New("product %q × %q is already owned by kind %q", left, right, owner)
		}
	case apis.RelationQuotient:
		if owner, ok := s.quotients[pair{a: left, b: right}]; ok {
			return apis.Relation{}, ErrDuplicateRelation.New("quotient %q ÷ %q is already owned by kind %q", left, right, owner)
		}
	}

	return apis.Relation{Op: rel.Op, Left: left, Right: right}, nil
}

// normalizeScale checks the scale rules of one unit spec: a reference unit
// must scale at exactly 1 (nil means 1), every other unit needs an
// explicit positive scale.
func (r *registry) normalizeScale(kindID, unitID string, us apis.UnitSpec) (apis.Amount, error) {
	if us.Reference {
		if us.Scale == nil {
			return amount.One(r.cfg), nil
		}
		if !us.Scale.IsOne() {
			return nil, ErrInvalidScale.New("reference unit %q of kind %q must have scale 1, got %s", unitID, kindID, us.Scale)
		}
		return us.Scale, nil
	}

	if us.Scale == nil {
		return nil, ErrInvalidScale.New("unit %q of kind %q has no scale", unitID, kindID)
	}
	if us.Scale.Sign() <= 0 {
		return nil, ErrInvalidScale.New("unit %q of kind %q has non-positive scale %s", unitID, kindID, us.Scale)
	}
	return us.Scale, nil
}

// clone copies the snapshot's maps shallowly; records are immutable so
// sharing them is safe.
func (s *snapshot) clone() *snapshot {
	next := &snapshot{
		kinds:     make(map[string]apis.Kind, len(s.kinds)+1),
		units:     make(map[string]apis.Unit, len(s.units)+4),
		products:  make(map[pair]string, len(s.products)+1),
		quotients: make(map[pair]string, len(s.quotients)+1),
		specs:     make([]apis.KindSpec, len(s.specs), len(s.specs)+1),
	}
	for k, v := range s.kinds {
		next.kinds[k] = v
	}
	for k, v := range s.units {
		next.units[k] = v
	}
	for k, v := range s.products {
		next.products[k] = v
	}
	for k, v := range s.quotients {
		next.quotients[k] = v
	}
	copy(next.specs, s.specs)
	return next
}

// commit stores a validated registration into the (unpublished) snapshot.
func (s *snapshot) commit(n normalized) {
	s.kinds[n.kind.ID] = n.kind
	for _, u := range n.unit {
		s.units[u.ID] = u
	}
	switch n.kind.Relation.Op {
	case apis.RelationProduct:
		s.products[productKey(n.kind.Relation.Left, n.kind.Relation.Right)] = n.kind.ID
	case apis.RelationQuotient:
		s.quotients[pair{a: n.kind.Relation.Left, b: n.kind.Relation.Right}] = n.kind.ID
	}
	s.specs = append(s.specs, n.spec)
}

// Kind returns the registered kind record for id, if present.
func (r *registry) Kind(id string) (apis.Kind, bool) {
	nid, err := ident.Normalize(id, r.cfg)
	if err != nil {
		return apis.Kind{}, false
	}
	k, ok := r.snap.Load().kinds[nid]
	return k, ok
}

// Unit returns the registered unit record for id, if present.
func (r *registry) Unit(id string) (apis.Unit, bool) {
	nid, err := ident.Normalize(id, r.cfg)
	if err != nil {
		return apis.Unit{}, false
	}
	u, ok := r.snap.Load().units[nid]
	return u, ok
}

// Reference returns the reference unit of kindID, if the kind exists and
// has one.
func (r *registry) Reference(kindID string) (apis.Unit, bool) {
	nid, err := ident.Normalize(kindID, r.cfg)
	if err != nil {
		return apis.Unit{}, false
	}
	s := r.snap.Load()
	k, ok := s.kinds[nid]
	if !ok || k.Reference == "" {
		return apis.Unit{}, false
	}
	u, ok := s.units[k.Reference]
	return u, ok
}

// UnitsOf returns the kind's units in registration order, or nil for an
// unknown kind.
func (r *registry) UnitsOf(kindID string) []apis.Unit {
	nid, err := ident.Normalize(kindID, r.cfg)
	if err != nil {
		return nil
	}
	s := r.snap.Load()
	k, ok := s.kinds[nid]
	if !ok {
		return nil
	}
	out := make([]apis.Unit, 0, len(k.Units))
	for _, uid := range k.Units {
		out = append(out, s.units[uid])
	}
	return out
}

// Product returns the kind registered as the product of a and b, in either
// order.
func (r *registry) Product(a, b string) (string, bool) {
	na, err := ident.Normalize(a, r.cfg)
	if err != nil {
		return "", false
	}
	nb, err := ident.Normalize(b, r.cfg)
	if err != nil {
		return "", false
	}
	k, ok := r.snap.Load().products[productKey(na, nb)]
	return k, ok
}

// Quotient returns the kind registered as num divided by den.
func (r *registry) Quotient(num, den string) (string, bool) {
	nn, err := ident.Normalize(num, r.cfg)
	if err != nil {
		return "", false
	}
	nd, err := ident.Normalize(den, r.cfg)
	if err != nil {
		return "", false
	}
	k, ok := r.snap.Load().quotients[pair{a: nn, b: nd}]
	return k, ok
}

// Entries returns the registered kind specs in registration order.
func (r *registry) Entries() []apis.KindSpec {
	s := r.snap.Load()
	out := make([]apis.KindSpec, len(s.specs))
	copy(out, s.specs)
	return out
}

// Count returns the number of registered kinds.
func (r *registry) Count() int {
	return len(r.snap.Load().kinds)
}

// Reset clears all registered kinds and units.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Store(emptySnapshot())
}
