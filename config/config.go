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

package config

import (
	"dirpx.dev/qty/apis"
)

const (
	// DefaultNumeric represents the default for Numeric.
	// Native float64 amounts are the baseline representation.
	DefaultNumeric = apis.NumericFloat64
	// DefaultDivisionPrecision represents the default for DivisionPrecision.
	// 16 fractional digits keeps fixed-point division at least as precise
	// as float64 for all practical unit ratios.
	DefaultDivisionPrecision = int32(16)
	// DefaultFoldIdentifiers represents the default for FoldIdentifiers.
	// When true, "Mass" and "mass" name the same kind.
	DefaultFoldIdentifiers = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure DivisionPrecision is valid.
	if cfg.DivisionPrecision <= 0 {
		cfg.DivisionPrecision = DefaultDivisionPrecision
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Numeric:           DefaultNumeric,
		DivisionPrecision: DefaultDivisionPrecision,
		FoldIdentifiers:   DefaultFoldIdentifiers,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithNumeric sets the Numeric option.
func WithNumeric(mode apis.NumericMode) Option {
	return func(c *apis.Config) {
		c.Numeric = mode
	}
}

// WithDivisionPrecision sets the DivisionPrecision option.
// A non-positive value resets to the default.
func WithDivisionPrecision(prec int32) Option {
	return func(c *apis.Config) {
		if prec <= 0 {
			c.DivisionPrecision = DefaultDivisionPrecision
			return
		}
		c.DivisionPrecision = prec
	}
}

// WithFoldIdentifiers sets the FoldIdentifiers option.
func WithFoldIdentifiers(fold bool) Option {
	return func(c *apis.Config) {
		c.FoldIdentifiers = fold
	}
}
