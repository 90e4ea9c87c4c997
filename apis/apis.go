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

import "dirpx.dev/apierror/detail"

// CodedError represents an error that is classified into one of the closed,
// machine-readable error code tokens ("NOT_FOUND", "INVALID_ARGUMENT", …).
//
// Codes are stable and enumerable. They are the primary value that boundary
// adapters (HTTP, gRPC) use to decide which transport status to return.
//
// Implementations MUST return a member of the closed set defined in the
// code package. Adapters should treat anything else as an internal error at
// the boundary rather than try to "fix" or "guess" the value.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code token.
	ErrorCode() string
}

// DetailedError represents an error that exposes zero or more structured
// details. This is especially useful for validation scenarios where multiple
// fields may fail at once and the caller needs to show *all* of them.
//
// Implementations SHOULD return a slice that is safe to iterate over and
// that will not be modified by the callee. Returning nil is allowed and
// simply means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns the structured details, in order. May return nil.
	ErrorDetails() []detail.Detail
}

// CausedError represents an error that exposes its underlying cause.
//
// While errors.Unwrap covers most needs, having this interface in apis lets
// logging code keep the contract explicit without depending on errors.As /
// errors.Is directly.
//
// Implementations SHOULD return the direct, immediate cause of the error.
// If there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Unwrap returns the underlying error that triggered this one, if any.
	Unwrap() error
}
