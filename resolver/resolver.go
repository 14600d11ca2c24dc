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

package resolver

import (
	"github.com/zeebo/errs"

	"dirpx.dev/qty/apis"
)

// ErrUndefinedOperation marks a multiply or divide over two kinds with no
// registered relation. Resolvers report it by returning ok=false; value
// arithmetic raises this class so callers can inspect the failure.
var ErrUndefinedOperation = errs.Class("undefined derived operation")

// New constructs an apis.Resolver that tries the given strategies in order.
// Nil strategies are ignored. The returned resolver is safe for concurrent
// use provided strategies themselves are safe for concurrent calls.
func New(strategies ...apis.Strategy) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Multiply runs strategies in order until one handles the pair.
// Returns ok=false if no strategy resolved a kind.
func (r chain) Multiply(x, y string) (string, bool) {
	for _, s := range r.strats {
		if kind, ok := s.TryMultiply(x, y); ok {
			return kind, true
		}
	}
	return "", false
}

// Divide runs strategies in order until one handles the pair.
// Returns ok=false if no strategy resolved a kind.
func (r chain) Divide(x, y string) (string, bool) {
	for _, s := range r.strats {
		if kind, ok := s.TryDivide(x, y); ok {
			return kind, true
		}
	}
	return "", false
}
