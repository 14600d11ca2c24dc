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

// Symboler exposes the display symbol of a measured value's unit.
//
// # Overview
//
// Symboler is the narrow contract for consumers that only need the unit
// marker — axis labels, column headers, compact log fields — without the
// amount. The symbol is whatever the unit declared at registration time
// (for example "kg" or "m/s"); it is display text, not an identifier, and
// MUST NOT be used as a registry key.
//
// # Contract
//
//   - UnitSymbol MUST be deterministic for a given value and cheap to
//     call (a field read, not a computation).
//   - UnitSymbol MUST be safe for concurrent calls.
//   - An empty string means the unit declared no symbol; callers MUST
//     tolerate it.
type Symboler interface {
	// UnitSymbol returns the display symbol of the value's unit.
	UnitSymbol() string
}

// Displayer renders a measured value as "<amount> <symbol>".
//
// # Overview
//
// Displayer is the human-facing rendering contract for quantity values.
// The format is fixed: the amount's canonical decimal rendering, one
// space, then the unit symbol ("1424.4 g"). Keeping the shape stable lets
// operators grep logs and diff reports without locale or layout noise.
//
// # Contract
//
//   - String MUST render the amount exactly as the underlying Amount's
//     own String method does — no additional rounding or padding.
//   - If the unit has no symbol, the trailing space is omitted and the
//     amount stands alone.
//   - String MUST be safe for concurrent calls and MUST NOT mutate the
//     receiver.
//   - The output is for humans; callers MUST NOT parse it back into a
//     value.
type Displayer interface {
	// String returns the "<amount> <symbol>" rendering of the value.
	String() string
}
