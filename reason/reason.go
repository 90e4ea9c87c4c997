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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is the canonical, validated representation of an error reason.
//
// Reasons are unique within a particular domain of errors and should be
// terse but meaningful enough for a human reader to understand what they
// refer to.
//
// Good examples:
//
//   - "CPU_AVAILABILITY"
//   - "NO_STOCK"
//   - "CHECKED_OUT"
//   - "AVAILABILITY_ERROR"
//
// Bad examples:
//
//   - "THE_BOOK_YOU_WANT_IS_NOT_AVAILABLE" (overly verbose)
//   - "ERROR" (too general)
type Reason string

// MinLength and MaxLength define the allowed length range for a canonical
// reason token.
const (
	// MinLength is the minimum length for a non-empty reason. We keep it at
	// 3 so that trivial values like "X" are not considered meaningful
	// reasons. The empty string is still allowed and means "no reason
	// provided".
	MinLength = 3

	// MaxLength is the maximum length for a valid reason. 64 characters is
	// enough for descriptive tokens like "ZONE_CAPACITY_EXHAUSTED" while
	// still preventing unbounded strings.
	MaxLength = 64
)

const (
	// reasonFmt is the canonical pattern for reason tokens:
	// UPPER_SNAKE_CASE, no leading digit, no leading or trailing underscore.
	//
	//	^ - start of string;
	//	[A-Z] - first character must be an uppercase ASCII letter;
	//	[A-Z0-9_]* - middle characters may be uppercase letters, digits or
	//	             underscore;
	//	[A-Z0-9] - last character must not be an underscore;
	//	$ - end of string;
	//
	// Length limits are enforced separately against MinLength / MaxLength.
	reasonFmt = `^[A-Z][A-Z0-9_]*[A-Z0-9]$`

	// metadataKeyFmt is the convention for ErrorInfo metadata keys:
	// lowerCamel-ish, starting with a lowercase letter.
	metadataKeyFmt = `^[a-z][a-zA-Z0-9-_]+$`
)

var (
	reasonRe      = regexp.MustCompile(reasonFmt)
	metadataKeyRe = regexp.MustCompile(metadataKeyFmt)
)

var (
	// ErrReasonInvalidFormat is returned when a reason does not conform to
	// the UPPER_SNAKE_CASE convention.
	ErrReasonInvalidFormat = errors.New("apierror: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("apierror: invalid reason length")
	// ErrMetadataKeyInvalid is returned when a metadata key does not conform
	// to the documented key convention.
	ErrMetadataKeyInvalid = errors.New("apierror: invalid metadata key")
)

// Ensure Reason implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the zero-value reason, meaning "not provided".
var Empty Reason = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical reason form.
//
// We do *very* conservative transformations:
//
//   - trim spaces
//   - upper-case
//   - replace "-" and " " with "_"
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Reason value.
//
// Parse also accepts the empty string and returns reason.Empty without error.
// This is what makes Reason an "optional" part of the error model.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level reason constants in var blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("apierror: empty reason in MustParse")
	}
	return r
}

// Validate checks whether the provided Reason is in canonical form.
//
// The empty reason ("") is considered valid here, because the whole point of
// this type is to be optional. If you need to enforce "must be non-empty",
// add that check at the call site.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// ValidateMetadataKey checks a single ErrorInfo metadata key against the
// documented key convention. Like reason validation, this is opt-in: the
// core never calls it on the encode/decode path.
func ValidateMetadataKey(k string) error {
	if !metadataKeyRe.MatchString(k) {
		return ErrMetadataKeyInvalid
	}
	return nil
}

// String returns the canonical string representation of the reason.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler.
//
// We allow marshaling of the empty reason as an empty slice to not break
// JSON/YAML encoders that rely on TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	if r == Empty {
		return []byte{}, nil
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input will produce reason.Empty.
func (r *Reason) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
