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

package builder

import (
	"log/slog"

	"dirpx.dev/qty/apis"
	"dirpx.dev/qty/convert"
	"dirpx.dev/qty/registry"
	"dirpx.dev/qty/resolver"
	"dirpx.dev/qty/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided
// configuration and pre-existing registry. If a pre-existing registry is
// provided, its kind specs are re-registered in their original order, so
// base kinds land before the derived kinds that reference them. A spec the
// new configuration rejects (for example two kinds whose ids collide once
// folding is enabled) is dropped and logged; migration continues with the
// remaining specs.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if prev != nil {
		for _, spec := range prev.Entries() {
			if err := nreg.Register(spec); err != nil {
				slog.Warn("dropping kind during registry rebuild", "kind", spec.ID, "err", err)
			}
		}
	}
	return nreg
}

// BuildResolver builds and returns a new apis.Resolver over reg. The chain
// order makes explicit product relations win over quotient-derived facts.
func (b *builder) BuildResolver(cfg apis.Config, reg apis.Registry, _ apis.Resolver, _ any) apis.Resolver {
	return resolver.New(
		strategy.NewProduct(reg),
		strategy.NewQuotient(reg),
	)
}

// BuildConverter builds and returns a new apis.Converter over reg.
func (b *builder) BuildConverter(cfg apis.Config, reg apis.Registry, _ any) apis.Converter {
	return convert.New(reg)
}
