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

package ident

import (
	"errors"
	"strings"

	"dirpx.dev/qty/apis"
)

var (
	// ErrEmptyIdentifier is returned when an identifier is empty after trimming.
	ErrEmptyIdentifier = errors.New("ident: empty identifier provided")
	// ErrInvalidIdentifier indicates that an identifier contains characters
	// outside the allowed set, or does not start with a letter.
	ErrInvalidIdentifier = errors.New("ident: identifier contains invalid characters")
)

// Normalize canonicalizes a kind or unit identifier according to cfg and
// validates its shape, returning the form under which the registry indexes it.
//
// Normalization policy:
//   - surrounding whitespace is trimmed;
//   - when cfg.FoldIdentifiers is set, ASCII letters are folded to lower case;
//   - the identifier must start with a letter and contain only letters,
//     digits, '_', '-', or '.'.
func Normalize(id string, cfg apis.Config) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrEmptyIdentifier
	}
	if cfg.FoldIdentifiers {
		id = strings.ToLower(id)
	}

	for i, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			if i == 0 {
				return "", ErrInvalidIdentifier
			}
		default:
			return "", ErrInvalidIdentifier
		}
	}
	return id, nil
}
