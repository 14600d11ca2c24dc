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

// Resolver answers which quantity kind results from multiplying or dividing
// two kinds, using the relations recorded at registration. Resolution is a
// pure function over immutable tables: deterministic, and rejecting (never
// guessing) any unregistered combination.
//
// Typical chain: ProductStrategy -> QuotientStrategy.
type Resolver interface {
	// Multiply returns the kind of x × y, or ok=false if no registered
	// relation covers the pair. The lookup is order-independent.
	Multiply(x, y string) (kindID string, ok bool)

	// Divide returns the kind of x ÷ y, or ok=false if no registered
	// relation covers the pair.
	Divide(x, y string) (kindID string, ok bool)
}
