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

package detail

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// Kind is the value of the "@type" discriminator member.
type Kind string

// The known discriminator values. Anything else round-trips as Unknown.
const (
	KindErrorInfo        Kind = "ERROR_INFO"
	KindBadRequest       Kind = "BAD_REQUEST"
	KindLocalizedMessage Kind = "LOCALIZED_MESSAGE"
)

// tagKey is the name of the discriminator member on the wire.
const tagKey = "@type"

// Detail is one structured payload attached to an API error. The concrete
// types in this package (ErrorInfo, BadRequest, LocalizedMessage, Unknown)
// are the only implementations; the interface exists so an error can carry a
// heterogeneous, order-preserving list of them.
type Detail interface {
	// Kind returns the discriminator value the detail serializes under.
	Kind() Kind

	// marshalWire renders the detail's wire object including the
	// discriminator. Keeping it unexported seals the union: outside
	// packages cannot add variants the codec does not know about.
	marshalWire() ([]byte, error)
}

// ErrorInfo is the primary way to send a machine-readable identifier for
// the cause of an error.
//
// Contextual information should be included in Metadata and MUST be included
// there if it appears within the error's message text.
type ErrorInfo struct {
	// Reason is a short UPPER_SNAKE_CASE description of the cause, unique
	// within a particular domain of errors, e.g. "NO_STOCK" or
	// "API_DISABLED". The format is a documented convention (see the reason
	// package); it is not validated here.
	Reason string

	// Metadata is a map of key/value pairs providing additional dynamic
	// context, e.g.
	//
	//	"zone": "us-east1-a"
	//	"vmType": "e2-medium"
	//	"zonesWithCapacity": "us-central1-f,us-central1-c"
	//
	// Keys conventionally match [a-z][a-zA-Z0-9-_]+ (see
	// reason.ValidateMetadataKey).
	Metadata map[string]string
}

// NewErrorInfo constructs an ErrorInfo detail. A nil metadata map is
// normalized to an empty one so the wire object always carries "metadata".
func NewErrorInfo(reason string, metadata map[string]string) ErrorInfo {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return ErrorInfo{Reason: reason, Metadata: metadata}
}

// Kind implements Detail.
func (ErrorInfo) Kind() Kind { return KindErrorInfo }

// MarshalJSON renders the ERROR_INFO wire shape.
func (d ErrorInfo) MarshalJSON() ([]byte, error) { return d.marshalWire() }

func (d ErrorInfo) marshalWire() ([]byte, error) {
	md := d.Metadata
	if md == nil {
		md = map[string]string{}
	}
	return json.Marshal(struct {
		Type     Kind              `json:"@type"`
		Reason   string            `json:"reason"`
		Metadata map[string]string `json:"metadata"`
	}{KindErrorInfo, d.Reason, md})
}

// FieldViolation describes why one element of a request was rejected.
type FieldViolation struct {
	// Field is a path that leads to the violating field in the request
	// body: dot-separated identifiers with bracketed indexes for repeated
	// elements, e.g.
	//
	//   - "fullName" for a violation in the top-level fullName value;
	//   - "emailAddresses[1].email" for a violation in the email member of
	//     the second emailAddresses element;
	//   - "emailAddresses[3].type[2]" for a violation in the third type
	//     value of the fourth emailAddresses element.
	Field string `json:"field"`

	// Description explains why the request element is bad.
	Description string `json:"description"`
}

// BadRequest describes violations in a client request. This detail focuses
// on the syntactic aspects of the request.
type BadRequest struct {
	// FieldViolations lists all violations, in the order the validator
	// reported them. Order is preserved across encode/decode.
	FieldViolations []FieldViolation
}

// NewBadRequest constructs a BadRequest detail. A nil slice is normalized to
// an empty one so the wire object always carries a "fieldViolations" array.
func NewBadRequest(violations []FieldViolation) BadRequest {
	if violations == nil {
		violations = []FieldViolation{}
	}
	return BadRequest{FieldViolations: violations}
}

// Kind implements Detail.
func (BadRequest) Kind() Kind { return KindBadRequest }

// MarshalJSON renders the BAD_REQUEST wire shape.
func (d BadRequest) MarshalJSON() ([]byte, error) { return d.marshalWire() }

func (d BadRequest) marshalWire() ([]byte, error) {
	fv := d.FieldViolations
	if fv == nil {
		fv = []FieldViolation{}
	}
	return json.Marshal(struct {
		Type            Kind             `json:"@type"`
		FieldViolations []FieldViolation `json:"fieldViolations"`
	}{KindBadRequest, fv})
}

// LocalizedMessage provides an error message localized to a user-specified
// locale where possible.
type LocalizedMessage struct {
	// Locale follows IETF BCP-47, e.g. "en-US", "fr-CH", "es-MX".
	Locale string

	// Message is the localized text itself: a brief description of the
	// error and a call to action to resolve it. Any contextual values in
	// the message must also appear in an accompanying ErrorInfo's metadata;
	// that is the caller's responsibility and is not checked here.
	Message string
}

// NewLocalizedMessage constructs a LocalizedMessage detail.
func NewLocalizedMessage(locale, message string) LocalizedMessage {
	return LocalizedMessage{Locale: locale, Message: message}
}

// Kind implements Detail.
func (LocalizedMessage) Kind() Kind { return KindLocalizedMessage }

// MarshalJSON renders the LOCALIZED_MESSAGE wire shape.
func (d LocalizedMessage) MarshalJSON() ([]byte, error) { return d.marshalWire() }

func (d LocalizedMessage) marshalWire() ([]byte, error) {
	return json.Marshal(struct {
		Type    Kind   `json:"@type"`
		Locale  string `json:"locale"`
		Message string `json:"message"`
	}{KindLocalizedMessage, d.Locale, d.Message})
}

// Unknown carries a detail whose discriminator this implementation does not
// recognize. The raw object is preserved verbatim (in compact form) so it
// survives re-encoding unchanged.
type Unknown struct {
	// Tag is the unrecognized discriminator value.
	Tag Kind

	// Raw is the complete, compacted detail object, including the
	// discriminator member.
	Raw json.RawMessage
}

// Kind implements Detail.
func (d Unknown) Kind() Kind { return d.Tag }

// MarshalJSON re-emits the original object.
func (d Unknown) MarshalJSON() ([]byte, error) { return d.marshalWire() }

func (d Unknown) marshalWire() ([]byte, error) {
	if len(d.Raw) == 0 {
		return json.Marshal(map[string]Kind{tagKey: d.Tag})
	}
	return append([]byte(nil), d.Raw...), nil
}

// Equal reports whether two details are the same variant with equal fields.
// For BadRequest the violation order is significant.
func Equal(a, b Detail) bool {
	switch x := a.(type) {
	case ErrorInfo:
		y, ok := b.(ErrorInfo)
		return ok && x.Reason == y.Reason && maps.Equal(x.Metadata, y.Metadata)
	case BadRequest:
		y, ok := b.(BadRequest)
		return ok && slices.Equal(x.FieldViolations, y.FieldViolations)
	case LocalizedMessage:
		y, ok := b.(LocalizedMessage)
		return ok && x == y
	case Unknown:
		y, ok := b.(Unknown)
		return ok && x.Tag == y.Tag && bytes.Equal(x.Raw, y.Raw)
	}
	return false
}
