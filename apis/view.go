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

package apis

// FormErrors is a flattened, UI-oriented projection of validation failures.
//
// It mirrors the "flatten" shape that form libraries expect: messages that
// apply to the submission as a whole, plus per-field message lists keyed by
// field path. It is produced by adapter.ToFormErrors for presentation only —
// the wire form of a validation failure is always the BAD_REQUEST detail,
// never this view.
type FormErrors struct {
	// FormErrors lists whole-form messages, in order. Never nil.
	FormErrors []string `json:"formErrors"`

	// FieldErrors maps a field path to its messages, each list in order.
	// Never nil.
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// Descriptor is a flat, transport-friendly snapshot of one error: the
// logical code plus its resolved transport statuses.
//
// It intentionally uses plain strings and ints (not the code.Code value
// type) so that it can be embedded in log records, traces or message bus
// payloads without dragging the model packages along.
type Descriptor struct {
	// Code is the closed-taxonomy token, e.g. "NOT_FOUND".
	Code string `json:"code"`

	// Message is the developer-facing message.
	Message string `json:"message,omitempty"`

	// HTTPStatus is the HTTP status the code maps to.
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) the code maps to.
	GRPCCode int `json:"grpc_code,omitempty"`
}
