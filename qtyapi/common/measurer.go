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

package common

import "dirpx.dev/qty/apis"

// Measurer exposes the two halves of a measured value: its numeric amount
// and the unit the amount is expressed in.
//
// # Overview
//
// Measurer is the minimal read contract for anything that behaves like a
// quantity value. Formatting helpers, report generators, and assertion
// libraries accept Measurer instead of a concrete value type so that
// wrappers (logged samples, table cells, aggregation accumulators) can
// satisfy the contract without unwrapping.
//
// The two accessors are conceptually inseparable: an amount without its
// unit is a bare number, and consumers MUST NOT interpret Amount() in any
// unit other than the one Unit() reports at the same instant.
//
// # Contract
//
//   - Amount and Unit MUST be consistent with each other: they describe
//     one measurement, not two independently sampled fields.
//   - Both accessors MUST be safe for concurrent calls and MUST NOT
//     mutate the receiver.
//   - Implementations SHOULD be O(1) accessors over immutable state; a
//     Measurer is a view, not a computation.
//   - The returned Unit is a registered record; consumers MAY rely on its
//     Kind, Symbol, and Scale fields being the values fixed at
//     registration time.
type Measurer interface {
	// Amount returns the numeric amount of the measurement.
	Amount() apis.Amount

	// Unit returns the unit the amount is expressed in.
	Unit() apis.Unit
}
