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
	"net/http"

	"google.golang.org/grpc/codes"
)

// The closed error-code vocabulary.
//
// These ten tokens are the complete set. They are shared with the other
// implementations of the same wire format, so adding, removing or renaming a
// token is a breaking protocol change and must be coordinated across all of
// them.
const (
	// InvalidArgument indicates that the client specified an invalid
	// argument regardless of the state of the system.
	InvalidArgument Code = "INVALID_ARGUMENT"

	// FailedPrecondition indicates that the operation was rejected because
	// the system is not in a state required for the operation's execution.
	// For example, the directory to be deleted is non-empty, an rmdir
	// operation is applied to a non-directory, etc.
	FailedPrecondition Code = "FAILED_PRECONDITION"

	// NotFound indicates that the requested entity was not found.
	NotFound Code = "NOT_FOUND"

	// AlreadyExists indicates that the entity a client tried to create
	// already exists.
	AlreadyExists Code = "ALREADY_EXISTS"

	// Unauthenticated indicates that the caller does not have valid
	// authentication credentials for the operation.
	Unauthenticated Code = "UNAUTHENTICATED"

	// PermissionDenied indicates that the caller does not have permission
	// to execute the specified operation.
	PermissionDenied Code = "PERMISSION_DENIED"

	// TooManyRequests indicates that the caller has exhausted their rate
	// limit or quota.
	TooManyRequests Code = "TOO_MANY_REQUESTS"

	// Internal indicates that a part of the underlying system is broken.
	Internal Code = "INTERNAL"

	// Unknown is used when the application doesn't know how to classify the
	// caught error. Boundary layers normalize unclassified failures to this
	// code rather than leak internal detail to the wire.
	Unknown Code = "UNKNOWN"

	// Unavailable indicates that the service is currently unavailable.
	// The call can be retried with a backoff.
	Unavailable Code = "UNAVAILABLE"
)

// registry holds the full closed set. Validate checks membership here, and
// All iterates it, so a code that is added without extending the status
// tables below is caught immediately by the totality tests.
var registry = map[Code]struct{}{
	InvalidArgument:    {},
	FailedPrecondition: {},
	NotFound:           {},
	AlreadyExists:      {},
	Unauthenticated:    {},
	PermissionDenied:   {},
	TooManyRequests:    {},
	Internal:           {},
	Unknown:            {},
	Unavailable:        {},
}

// all lists the codes in declaration order. Kept as a slice (not derived
// from the registry map) so that All returns a stable order for tests and
// documentation.
var all = []Code{
	InvalidArgument,
	FailedPrecondition,
	NotFound,
	AlreadyExists,
	Unauthenticated,
	PermissionDenied,
	TooManyRequests,
	Internal,
	Unknown,
	Unavailable,
}

// httpStatus is the total, immutable Code → HTTP status projection.
var httpStatus = map[Code]int{
	InvalidArgument:    http.StatusBadRequest,
	FailedPrecondition: http.StatusBadRequest,
	NotFound:           http.StatusNotFound,
	AlreadyExists:      http.StatusConflict,
	Unauthenticated:    http.StatusUnauthorized,
	PermissionDenied:   http.StatusForbidden,
	TooManyRequests:    http.StatusTooManyRequests,
	Internal:           http.StatusInternalServerError,
	Unknown:            http.StatusInternalServerError,
	Unavailable:        http.StatusServiceUnavailable,
}

// grpcStatus is the total, immutable Code → gRPC status projection.
var grpcStatus = map[Code]codes.Code{
	InvalidArgument:    codes.InvalidArgument,
	FailedPrecondition: codes.FailedPrecondition,
	NotFound:           codes.NotFound,
	AlreadyExists:      codes.AlreadyExists,
	Unauthenticated:    codes.Unauthenticated,
	PermissionDenied:   codes.PermissionDenied,
	TooManyRequests:    codes.ResourceExhausted,
	Internal:           codes.Internal,
	Unknown:            codes.Unknown,
	Unavailable:        codes.Unavailable,
}

// All returns the complete closed code set in declaration order.
// The returned slice is a copy and safe for the caller to modify.
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}

// HTTPStatus returns the HTTP status the code maps to.
//
// The mapping is total over the closed set. For a value outside the set
// (which cannot be produced by Parse/UnmarshalText, only by casting raw
// strings) it falls back to 500 so that a broken caller never writes a zero
// status to a response.
func (c Code) HTTPStatus() int {
	if st, ok := httpStatus[c]; ok {
		return st
	}
	return http.StatusInternalServerError
}

// GRPCStatus returns the gRPC status code the code maps to.
//
// Like HTTPStatus, the mapping is total over the closed set and falls back
// to codes.Unknown for values outside it.
func (c Code) GRPCStatus() codes.Code {
	if st, ok := grpcStatus[c]; ok {
		return st
	}
	return codes.Unknown
}

// FromGRPC maps a gRPC status code back to the closed set. It is the inverse
// of GRPCStatus; gRPC codes with no counterpart collapse to Unknown.
func FromGRPC(gc codes.Code) Code {
	for _, c := range all {
		if grpcStatus[c] == gc {
			return c
		}
	}
	return Unknown
}
