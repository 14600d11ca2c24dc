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
	"sync"
	"sync/atomic"

	"dirpx.dev/qty/amount"
	"dirpx.dev/qty/apis"
	"dirpx.dev/qty/builder"
	"dirpx.dev/qty/config"
)

// init initializes the global qty state.
func init() {
	// Initialize state with default cfg and an empty reg, res, and conv.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil, nil)
	s.conv = b.BuildConverter(s.cfg, s.reg, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("qty: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("qty: builder returned nil resolver")
	// ErrNilConverter is returned when a builder returns a nil converter.
	ErrNilConverter = errors.New("qty: builder returned nil converter")
)

// Register validates and stores one quantity kind in the global registry.
// Base kinds must register before the derived kinds that reference them.
// This is a convenience wrapper around the global reg.
func Register(spec apis.KindSpec) error {
	return st.Load().reg.Register(spec)
}

// MustRegister is like Register but panics on validation failure. It is
// intended for the one-time declaration block at process startup, where a
// rejected kind is a configuration defect.
func MustRegister(spec apis.KindSpec) {
	if err := Register(spec); err != nil {
		panic(err)
	}
}

// ParseAmount builds an Amount from its decimal text form in the numeric
// representation selected by the global configuration.
func ParseAmount(s string) (apis.Amount, error) {
	return amount.Parse(s, st.Load().cfg)
}

// MustParseAmount is like ParseAmount but panics on malformed input.
func MustParseAmount(s string) apis.Amount {
	return amount.MustParse(s, st.Load().cfg)
}

// SetAll explicitly sets all global qty state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced. The converter is always
// rebuilt against the effective registry.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Resolver
	nres := res
	npres := false
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, nreg, old.res, next)
	} else {
		npres = true
	}

	// Converter always follows the effective registry.
	nconv := nbld.BuildConverter(ncfg, nreg, next)

	ensure(nreg, nres, nconv)

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			reg:  nreg,
			res:  nres,
			conv: nconv,
			bld:  nbld,
			preg: npreg,
			pres: npres,
		},
	)
}

// Config returns the global qty configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global qty configuration to cfg.
// It rebuilds the global reg, res, and conv using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg, res, and conv based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(cfg, nreg, old.res, old.ext)
	}
	nconv := b.BuildConverter(cfg, nreg, old.ext)

	ensure(nreg, nres, nconv)

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			reg:  nreg,
			res:  nres,
			conv: nconv,
			bld:  b,
			preg: old.preg,
			pres: old.pres,
		},
	)
}

// Registry returns the global qty reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global qty reg to reg and pins it.
// It rebuilds the global res and conv against the new reg.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new res and conv based on the old cfg and new reg.
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, reg, old.res, old.ext)
	}
	nconv := b.BuildConverter(old.cfg, reg, old.ext)

	ensure(reg, nres, nconv)

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  reg,
			res:  nres,
			conv: nconv,
			bld:  b,
			preg: true,
			pres: old.pres,
		},
	)
}

// Resolver returns the global qty res.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global qty res to res and pins it.
// This is a convenience wrapper around the global state.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  res,
			conv: old.conv,
			bld:  old.bld,
			preg: old.preg,
			pres: true,
		},
	)
}

// Converter returns the global qty conv.
func Converter() apis.Converter {
	return st.Load().conv
}

// Builder returns the global qty bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global qty bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg, res, and conv based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nreg, old.res, old.ext)
	}
	nconv := b.BuildConverter(old.cfg, nreg, old.ext)

	ensure(nreg, nres, nconv)

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  nreg,
			res:  nres,
			conv: nconv,
			bld:  b,
			preg: old.preg,
			pres: old.pres,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg, res, and conv based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nreg, old.res, ext)
	}
	nconv := b.BuildConverter(old.cfg, nreg, ext)

	ensure(nreg, nres, nconv)

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			reg:  nreg,
			res:  nres,
			conv: nconv,
			bld:  b,
			preg: old.preg,
			pres: old.pres,
		},
	)
}

// ExtAs returns the global qty extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global qty reg is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global qty reg immune to rebuilds.
func PinRegistry() {
	setPins(func(s *state) { s.preg = true })
}

// UnpinRegistry makes the global qty reg rebuildable again.
func UnpinRegistry() {
	setPins(func(s *state) { s.preg = false })
}

// IsResolverPinned returns whether the global qty res is pinned (immutable).
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver makes the global qty res immune to rebuilds.
func PinResolver() {
	setPins(func(s *state) { s.pres = true })
}

// UnpinResolver makes the global qty res rebuildable again.
func UnpinResolver() {
	setPins(func(s *state) { s.pres = false })
}

// setPins publishes a copy of the current state with the pin flags adjusted.
func setPins(adjust func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	adjust(&next)
	st.Store(&next)
}

// ensure panics on nil layers so a broken builder is caught at swap time,
// not on the first lookup.
func ensure(reg apis.Registry, res apis.Resolver, conv apis.Converter) {
	if reg == nil {
		panic(ErrNilRegistry)
	}
	if res == nil {
		panic(ErrNilResolver)
	}
	if conv == nil {
		panic(ErrNilConverter)
	}
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global qty state.
var st atomic.Pointer[state]

// state is the global qty state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global qty configuration.
	cfg apis.Config
	// ext is the global qty extension configuration.
	ext any
	// reg is the global qty registry.
	reg apis.Registry
	// res is the global qty resolver.
	res apis.Resolver
	// conv is the global qty converter.
	conv apis.Converter
	// bld is the global qty builder.
	bld apis.Builder
	// preg indicates whether the reg is pinned (immutable).
	preg bool
	// pres indicates whether the res is pinned (immutable).
	pres bool
}
