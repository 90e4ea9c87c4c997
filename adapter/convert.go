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

// Package adapter converts third-party validation failures into the standard
// BAD_REQUEST detail format, and projects errors into presentation and
// logging views.
//
// Each validation engine has its own failure shape, so the engine coupling
// is isolated here behind single entry points: Flattened is the
// engine-neutral intermediate, FromFlattened builds the canonical error from
// it, and one From* function per supported engine (currently
// go-playground/validator) produces a Flattened. Swapping engines never
// touches the core model.
//
// Adapters never fail. A validation engine that reports zero violations is
// not a valid input — that is a bug in the caller or the engine, and the
// resulting error will simply carry an empty violation list.
package adapter

import (
	"strings"

	"dirpx.dev/apierror"
	"dirpx.dev/apierror/apis"
	"dirpx.dev/apierror/code"
	"dirpx.dev/apierror/detail"
)

// descriptionSeparator joins the messages of one field into a single
// violation description, and is split on again by ToFormErrors.
const descriptionSeparator = "; "

// validationMessage is the fixed top-level message of an adapted validation
// failure. Form-level messages, when present, are appended after a colon.
const validationMessage = "Validation Error"

// FieldMessages carries all of one field's messages, in engine order.
type FieldMessages struct {
	// Field is the path into the violating payload, e.g.
	// "emailAddresses[1].email".
	Field string

	// Messages are the individual complaints about the field.
	Messages []string
}

// Flattened is the engine-neutral projection of a validation failure: the
// whole-object messages plus the per-field messages, both order-preserving.
type Flattened struct {
	// FormErrors are messages about the submission as a whole.
	FormErrors []string

	// Fields holds per-field messages in the engine's iteration order.
	Fields []FieldMessages
}

// FromFlattened wraps a flattened validation failure into the canonical
// error: code INVALID_ARGUMENT, one BAD_REQUEST detail with one field
// violation per field (messages joined with "; "), and the fixed
// "Validation Error" message, extended with the joined form-level messages
// when any exist.
func FromFlattened(f Flattened) *apierror.Error {
	violations := make([]detail.FieldViolation, 0, len(f.Fields))
	for _, fm := range f.Fields {
		violations = append(violations, detail.FieldViolation{
			Field:       fm.Field,
			Description: strings.Join(fm.Messages, descriptionSeparator),
		})
	}

	msg := validationMessage
	if len(f.FormErrors) > 0 {
		msg += ": " + strings.Join(f.FormErrors, descriptionSeparator)
	}

	return apierror.New(code.InvalidArgument, msg,
		apierror.WithDetail(detail.NewBadRequest(violations)))
}

// ToFormErrors is the reverse, presentation-only projection: it flattens an
// error's BAD_REQUEST details back into the form/field view UI code expects.
//
// The result must never be sent over the wire — the canonical transport form
// of a validation failure is the error itself.
func ToFormErrors(e *apierror.Error) apis.FormErrors {
	out := apis.FormErrors{
		FormErrors:  []string{},
		FieldErrors: map[string][]string{},
	}
	if e == nil {
		return out
	}

	if rest, ok := strings.CutPrefix(e.Message, validationMessage+": "); ok {
		out.FormErrors = strings.Split(rest, descriptionSeparator)
	}

	for _, d := range e.Details {
		br, ok := d.(detail.BadRequest)
		if !ok {
			continue
		}
		for _, v := range br.FieldViolations {
			msgs := strings.Split(v.Description, descriptionSeparator)
			out.FieldErrors[v.Field] = append(out.FieldErrors[v.Field], msgs...)
		}
	}
	return out
}

// ToDescriptor converts an error into a portable snapshot carrying both the
// logical code and its resolved transport statuses. The descriptor is
// intended for structured logging, tracing, or message bus propagation.
func ToDescriptor(e *apierror.Error) apis.Descriptor {
	if e == nil {
		return apis.Descriptor{}
	}
	return apis.Descriptor{
		Code:       string(e.Code),
		Message:    e.Message,
		HTTPStatus: e.Code.HTTPStatus(),
		GRPCCode:   int(e.Code.GRPCStatus()),
	}
}
