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

// Package apierror defines the canonical, wire-compatible API error value.
//
// An Error carries a code from the closed taxonomy in dirpx.dev/apierror/code,
// a developer-facing message, and an ordered list of structured details from
// dirpx.dev/apierror/detail. Its JSON form is stable across the independent
// implementations of the same error model:
//
//	{"code":"NOT_FOUND","message":"no such project","details":[]}
//
// The value is pure data: constructing, rendering and comparing it performs
// no I/O, holds no hidden state and is safe to use from any number of
// goroutines. Encoding and decoding live in dirpx.dev/apierror/wire.
package apierror

import (
	"errors"
	"fmt"
	"slices"

	"dirpx.dev/apierror/code"
	"dirpx.dev/apierror/detail"
)

// Error is the canonical API error value.
//
// It carries:
//   - Code: the closed-taxonomy classification (required);
//   - Message: developer-facing, human-readable description, in English;
//     localized text goes into a LocalizedMessage detail instead, and any
//     dynamic values in the message must also appear in an ErrorInfo
//     detail's metadata;
//   - Details: ordered structured payloads (never nil after New);
//   - Cause: wrapped underlying error for local diagnostics. The cause is
//     deliberately excluded from the wire form; it only surfaces through
//     Unwrap and the log-oriented serialization in dirpx.dev/apierror/logx.
//
// Errors are constructed once and treated as immutable. The WithX helpers
// return shallow copies, so instances can be safely shared and refined in a
// functional style.
type Error struct {
	Code    code.Code
	Message string
	Details []detail.Detail
	Cause   error
}

// New constructs an Error.
//
// Usage:
//
//	return apierror.New(code.FailedPrecondition, "the project's api is disabled",
//	    apierror.WithDetail(detail.NewErrorInfo("API_DISABLED", map[string]string{
//	        "resource": "projects/123",
//	    })),
//	)
//
// Details default to an empty, non-nil slice so the wire form always carries
// a "details" array. The message content is not validated.
func New(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg, Details: []detail.Detail{}}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	ApiError[<CODE>]: <message>
//
// It is a stable, human-oriented rendering for logs and debugging. It is
// never parsed back.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("ApiError[%s]: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string { return string(e.Code) }

// ErrorDetails implements apis.DetailedError. The returned slice is shared;
// callers must not modify it.
func (e *Error) ErrorDetails() []detail.Detail { return e.Details }

// Equal reports value equality: same code, same message and the same details
// in the same order. The cause does not participate — two errors that differ
// only in local diagnostics are equivalent on the wire.
func (e *Error) Equal(o *Error) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.Code == o.Code &&
		e.Message == o.Message &&
		slices.EqualFunc(e.Details, o.Details, detail.Equal)
}

// As extracts an *Error from an arbitrary error chain. It is the explicit
// "is this a domain error" predicate used by boundary layers to decide
// between encoding the error as-is and normalizing it to UNKNOWN.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WithMessage returns a shallow copy of e with a replaced message.
// The original error is not modified.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one more detail appended.
//
// The details slice is always copied to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *Error) WithDetail(d detail.Detail) *Error {
	cp := *e
	ds := make([]detail.Detail, len(e.Details), len(e.Details)+1)
	copy(ds, e.Details)
	cp.Details = append(ds, d)
	return &cp
}

// WithDetails returns a shallow copy of e with all provided details
// appended, preserving their order.
func (e *Error) WithDetails(ds ...detail.Detail) *Error {
	if len(ds) == 0 {
		return e
	}
	cp := *e
	merged := make([]detail.Detail, 0, len(e.Details)+len(ds))
	merged = append(merged, e.Details...)
	merged = append(merged, ds...)
	cp.Details = merged
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
