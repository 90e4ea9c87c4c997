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

// Package wire encodes API errors to their transport payload and decodes
// payloads back into validated error values.
//
// Both directions are pure, synchronous byte transformations: reading a
// network body belongs to the transport adapters (httpx, ginx, grpcx) and is
// finished before Decode is invoked.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"

	"dirpx.dev/apierror"
	"dirpx.dev/apierror/code"
	"dirpx.dev/apierror/detail"
)

// ContentType is the media type of every encoded payload.
const ContentType = "application/json; charset=utf-8"

// Payload is the transport projection of one error: the HTTP status derived
// from the code table, the fixed content type, and the canonical JSON body.
type Payload struct {
	Status      int
	ContentType string
	Body        []byte
}

// Encode renders e into its transport payload. The status comes from the
// code table, never from the value itself.
func Encode(e *apierror.Error) (Payload, error) {
	if e == nil {
		return Payload{}, errors.New("wire: cannot encode a nil error")
	}
	body, err := json.Marshal(e)
	if err != nil {
		return Payload{}, fmt.Errorf("wire: encode: %w", err)
	}
	return Payload{
		Status:      e.Code.HTTPStatus(),
		ContentType: ContentType,
		Body:        body,
	}, nil
}

// DecodeErrorKind classifies a decode failure.
type DecodeErrorKind string

const (
	// KindMalformedBody means the body is not valid JSON at all.
	KindMalformedBody DecodeErrorKind = "malformed_body"

	// KindSchemaViolation means the body is valid JSON but does not match
	// the error wire shape: unknown code token, non-string message, missing
	// members, or a detail whose known discriminator does not match its
	// variant's shape.
	KindSchemaViolation DecodeErrorKind = "schema_violation"
)

// DecodeError is the typed failure returned by Decode. It always wraps the
// underlying parse or validation failure as its cause.
type DecodeError struct {
	Kind  DecodeErrorKind
	Cause error
}

// Error implements the built-in error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("wire: %s: %v", e.Kind, e.Cause)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *DecodeError) Unwrap() error { return e.Cause }

// IsMalformedBody reports whether err is a decode failure caused by a body
// that is not valid JSON.
func IsMalformedBody(err error) bool {
	var de *DecodeError
	return errors.As(err, &de) && de.Kind == KindMalformedBody
}

// IsSchemaViolation reports whether err is a decode failure caused by valid
// JSON that does not match the error wire shape.
func IsSchemaViolation(err error) bool {
	var de *DecodeError
	return errors.As(err, &de) && de.Kind == KindSchemaViolation
}

// Decode parses and validates a wire body and reconstructs a fresh error
// value from it.
//
// Validation is strict: the code must be a member of the closed taxonomy,
// the message must be a string, and details must be an array whose elements
// each match their discriminator's shape (see detail.Unmarshal). Extra
// top-level members — in particular a "status" the sender may have embedded —
// are ignored: transport status belongs to the envelope, not the body.
func Decode(body []byte) (*apierror.Error, error) {
	var raw struct {
		Code    *string           `json:"code"`
		Message *string           `json:"message"`
		Details []json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			return nil, &DecodeError{Kind: KindMalformedBody, Cause: err}
		}
		// Valid JSON of the wrong shape (e.g. a top-level array, or a
		// member with the wrong type) is a schema violation, not a parse
		// failure.
		return nil, &DecodeError{Kind: KindSchemaViolation, Cause: err}
	}

	if raw.Code == nil {
		return nil, schemaViolation(`missing member "code"`)
	}
	// Unlike construction-side Parse, no normalization happens here: the
	// wire form carries exact tokens or it is invalid.
	c := code.Code(*raw.Code)
	if err := code.Validate(c); err != nil {
		return nil, &DecodeError{Kind: KindSchemaViolation, Cause: fmt.Errorf("code %q: %w", *raw.Code, err)}
	}
	if raw.Message == nil {
		return nil, schemaViolation(`missing member "message"`)
	}
	if raw.Details == nil {
		return nil, schemaViolation(`missing member "details"`)
	}

	details := make([]detail.Detail, 0, len(raw.Details))
	for i, rd := range raw.Details {
		d, err := detail.Unmarshal(rd)
		if err != nil {
			return nil, &DecodeError{Kind: KindSchemaViolation, Cause: fmt.Errorf("details[%d]: %w", i, err)}
		}
		details = append(details, d)
	}

	return apierror.New(c, *raw.Message, apierror.WithDetails(details...)), nil
}

func schemaViolation(msg string) error {
	return &DecodeError{Kind: KindSchemaViolation, Cause: errors.New(msg)}
}
