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

package registry_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/qty/amount"
	"dirpx.dev/qty/apis"
	"dirpx.dev/qty/config"
	"dirpx.dev/qty/registry"
)

// TestConcurrentRegisterAndLookup verifies that Register and the read
// surface are race-free and consistent under concurrent use: readers only
// ever see fully registered kinds.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	const kinds = 32
	specs := make([]apis.KindSpec, 0, kinds)
	for i := 0; i < kinds; i++ {
		specs = append(specs, apis.KindSpec{
			ID: fmt.Sprintf("kind%d", i),
			Units: []apis.UnitSpec{
				{ID: fmt.Sprintf("ref%d", i), Symbol: "r", Reference: true},
				{ID: fmt.Sprintf("big%d", i), Symbol: "R", Scale: amount.Float(1000)},
			},
		})
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Writers: each registers a disjoint slice of kinds, with idempotent
	// re-registration attempts that must fail cleanly.
	wg.Add(len(specs))
	for _, spec := range specs {
		go func(spec apis.KindSpec) {
			defer wg.Done()
			if err := reg.Register(spec); err != nil {
				t.Errorf("register %s: %v", spec.ID, err)
				return
			}
			if err := reg.Register(spec); !registry.ErrDuplicateKind.Has(err) {
				t.Errorf("re-register %s: want ErrDuplicateKind, got %v", spec.ID, err)
			}
		}(spec)
	}

	// Readers: hammer lookups; every kind that is visible must be complete.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				id := fmt.Sprintf("kind%d", i%kinds)
				k, ok := reg.Kind(id)
				if !ok {
					continue // not registered yet
				}
				if len(k.Units) != 2 || k.Reference == "" {
					t.Errorf("kind %s visible but incomplete: %+v", id, k)
					return
				}
				if _, ok := reg.Unit(k.Reference); !ok {
					t.Errorf("kind %s reference unit %s missing", id, k.Reference)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	wg.Wait()

	if got := reg.Count(); got != kinds {
		t.Fatalf("Count() = %d, want %d", got, kinds)
	}
	// Entries must contain every kind exactly once.
	seen := map[string]bool{}
	for _, e := range reg.Entries() {
		if seen[e.ID] {
			t.Fatalf("Entries contains %s twice", e.ID)
		}
		seen[e.ID] = true
	}
	if len(seen) != kinds {
		t.Fatalf("Entries = %d kinds, want %d", len(seen), kinds)
	}
}
