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

package apierror

import (
	"encoding/json"

	"dirpx.dev/apierror/code"
	"dirpx.dev/apierror/detail"
)

// MarshalJSON renders the canonical wire form:
//
//	{"code":<token>,"message":<string>,"details":[<detail>,...]}
//
// The three members are always present and "details" is always an array,
// possibly empty. The cause is never serialized. Decoding is intentionally
// NOT implemented here: the strict, validating decode path lives in
// dirpx.dev/apierror/wire so that permissive construction and strict wire
// intake stay clearly separated.
func (e *Error) MarshalJSON() ([]byte, error) {
	details := e.Details
	if details == nil {
		details = []detail.Detail{}
	}
	return json.Marshal(struct {
		Code    code.Code       `json:"code"`
		Message string          `json:"message"`
		Details []detail.Detail `json:"details"`
	}{e.Code, e.Message, details})
}
