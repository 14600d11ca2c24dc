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

package strategy

import (
	"dirpx.dev/qty/apis"
)

// NewQuotient creates an apis.Strategy over the registry's quotient relations.
func NewQuotient(reg apis.Registry) apis.Strategy {
	return &quotientStrategy{reg: reg}
}

// quotientStrategy resolves through kinds declared as Quotient(A, B):
// A ÷ B gives the quotient kind K, K × B recovers the dividend A, and
// A ÷ K recovers the divisor B.
type quotientStrategy struct {
	reg apis.Registry
}

// Ensure quotientStrategy implements apis.Strategy.
var _ apis.Strategy = (*quotientStrategy)(nil)

// TryMultiply resolves x × y when one operand is a quotient kind A/B and
// the other operand is its divisor B; the result is the dividend A.
func (s *quotientStrategy) TryMultiply(x, y string) (string, bool) {
	if s.reg == nil {
		return "", false
	}
	if a, ok := s.dividend(x, y); ok {
		return a, true
	}
	return s.dividend(y, x)
}

// TryDivide first looks up (x, y) in the quotient table: a kind registered
// as Quotient(x, y) is the result of x ÷ y by definition. Failing that, it
// resolves x ÷ y when y is a quotient kind A/B with x as its dividend A;
// the result is the divisor B, the inverse of the K × B → A multiply fact.
func (s *quotientStrategy) TryDivide(x, y string) (string, bool) {
	if s.reg == nil {
		return "", false
	}
	if k, ok := s.reg.Quotient(x, y); ok {
		return k, true
	}
	return s.divisor(x, y)
}

// divisor returns the divisor B when q is a quotient kind A/B and other
// resolves to its dividend A.
func (s *quotientStrategy) divisor(other, q string) (string, bool) {
	k, ok := s.reg.Kind(q)
	if !ok || k.Relation.Op != apis.RelationQuotient {
		return "", false
	}
	o, ok := s.reg.Kind(other)
	if !ok || o.ID != k.Relation.Left {
		return "", false
	}
	return k.Relation.Right, true
}

// dividend returns the dividend A when q is a quotient kind A/B and other
// resolves to its divisor B.
func (s *quotientStrategy) dividend(q, other string) (string, bool) {
	k, ok := s.reg.Kind(q)
	if !ok || k.Relation.Op != apis.RelationQuotient {
		return "", false
	}
	o, ok := s.reg.Kind(other)
	if !ok || o.ID != k.Relation.Right {
		return "", false
	}
	return k.Relation.Left, true
}
