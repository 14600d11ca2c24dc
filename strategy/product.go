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

// NewProduct creates an apis.Strategy over the registry's product relations.
func NewProduct(reg apis.Registry) apis.Strategy {
	return &productStrategy{reg: reg}
}

// productStrategy resolves through kinds declared as Product(A, B):
// A × B gives the product kind, and dividing the product kind by one
// factor recovers the other.
type productStrategy struct {
	reg apis.Registry
}

// Ensure productStrategy implements apis.Strategy.
var _ apis.Strategy = (*productStrategy)(nil)

// TryMultiply looks up {x, y} in the product table, order-independently.
func (s *productStrategy) TryMultiply(x, y string) (string, bool) {
	if s.reg == nil {
		return "", false
	}
	return s.reg.Product(x, y)
}

// TryDivide resolves x ÷ y when x is a product kind with y as one factor;
// the result is the other factor.
func (s *productStrategy) TryDivide(x, y string) (string, bool) {
	if s.reg == nil {
		return "", false
	}
	k, ok := s.reg.Kind(x)
	if !ok || k.Relation.Op != apis.RelationProduct {
		return "", false
	}
	ny, ok := s.kindID(y)
	if !ok {
		return "", false
	}
	switch ny {
	case k.Relation.Left:
		return k.Relation.Right, true
	case k.Relation.Right:
		return k.Relation.Left, true
	default:
		return "", false
	}
}

// kindID resolves y to its registered (normalized) kind id.
func (s *productStrategy) kindID(y string) (string, bool) {
	k, ok := s.reg.Kind(y)
	if !ok {
		return "", false
	}
	return k.ID, true
}
