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

import "dirpx.dev/apierror/detail"

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithDetail appends a single structured detail on construction.
// Intended to be used with New(...).
func WithDetail(d detail.Detail) Option {
	return func(e *Error) *Error {
		return e.WithDetail(d)
	}
}

// WithDetails appends multiple structured details, in order, on construction.
// Intended to be used with New(...).
func WithDetails(ds ...detail.Detail) Option {
	return func(e *Error) *Error {
		return e.WithDetails(ds...)
	}
}

// WithCause attaches an underlying cause on construction. The cause never
// reaches the wire form; it exists for Unwrap chains and logging.
// Intended to be used with New(...).
func WithCause(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
