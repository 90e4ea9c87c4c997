/*
   Copyright 2025 The DIRPX Authors

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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Code is the canonical, validated representation of an API error code.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with members of the closed set.
//
// IMPORTANT: only the constants declared in codes.go are valid. There is no
// "custom code" escape hatch — the vocabulary is closed so that independent
// implementations of the same wire format stay interoperable.
type Code string

var (
	// ErrCodeInvalid is returned when a value is not a member of the closed
	// code set.
	//
	// Having a dedicated sentinel error makes it easy for callers and tests
	// to detect "this is about code membership" vs "this is some other error".
	ErrCodeInvalid = errors.New("apierror: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger API structs and participate in strict
// JSON decoding.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse takes a user-provided string, normalizes it and checks membership in
// the closed set. On success it returns the canonical Code value.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	c := Code(s)
	if err := Validate(c); err != nil {
		return "", err
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level values in init() or var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical token form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - uppercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is a member of the closed set —
// callers should still call Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Code is a member of the closed set.
// The empty code ("") is invalid: every error MUST carry a code.
func Validate(c Code) error {
	if _, ok := registry[c]; !ok {
		return ErrCodeInvalid
	}
	return nil
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical token and refuses to emit values outside
// the closed set.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning, so JSON
// decoding of a "code" field rejects unknown tokens.
func (c *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
