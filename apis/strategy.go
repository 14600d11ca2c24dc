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

// Strategy is a pluggable derived-algebra resolution step. A Resolver
// chains multiple strategies in order (e.g., Product -> Quotient); the
// first one that handles a pair decides the result.
type Strategy interface {
	// TryMultiply attempts to resolve the kind of x × y.
	// It returns (kind, true) if handled; otherwise ("", false) to fall through.
	TryMultiply(x, y string) (kindID string, handled bool)

	// TryDivide attempts to resolve the kind of x ÷ y.
	TryDivide(x, y string) (kindID string, handled bool)
}
