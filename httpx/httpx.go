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

// Package httpx adapts API errors to net/http: writing an error as a
// response on the server side and decoding an error response on the client
// side. It owns the transport edges that the pure wire codec deliberately
// does not: response headers and the blocking read of a response body.
package httpx

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"dirpx.dev/apierror"
	"dirpx.dev/apierror/code"
	"dirpx.dev/apierror/wire"
)

// Meta carries extra context that the HTTP layer can add on top of the
// error. All fields are optional and typically come from request context,
// headers, or rate-limiter output.
type Meta struct {
	// RequestID is echoed back as X-Request-Id for correlation.
	RequestID string

	// RetryAfterSeconds emits a Retry-After header when positive. Meant for
	// TOO_MANY_REQUESTS and UNAVAILABLE responses.
	RetryAfterSeconds int
}

// Write serializes e and writes it to the response writer. The status and
// body come entirely from the wire codec; no automatic redaction is
// performed — the error's own wire form already excludes causes.
func Write(rw http.ResponseWriter, e *apierror.Error, meta Meta) error {
	p, err := wire.Encode(e)
	if err != nil {
		return err
	}

	rw.Header().Set("Content-Type", p.ContentType)
	if meta.RequestID != "" {
		rw.Header().Set("X-Request-Id", meta.RequestID)
	}
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(p.Status)
	_, werr := rw.Write(p.Body)
	return werr
}

// WriteAny is the global catch point for handler failures: a domain error is
// written as itself, anything else is normalized to UNKNOWN with the fixed
// message "Unknown" so internal detail never leaks to the wire. The original
// error stays attached as the cause for server-side logging.
func WriteAny(rw http.ResponseWriter, err error, meta Meta) error {
	e, ok := apierror.As(err)
	if !ok {
		e = apierror.New(code.Unknown, "Unknown", apierror.WithCause(err))
	}
	return Write(rw, e, meta)
}

// DecodeResponse reads an error response body and decodes it into a fresh
// error value. Reading the body is the only blocking step and completes
// before the pure decode runs.
//
// The response's own status code is not copied into the value: the decoded
// error's code determines any status the caller derives from it, and the
// envelope status is the caller's to act on (e.g. retry on 503).
func DecodeResponse(resp *http.Response) (*apierror.Error, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpx: read response body: %w", err)
	}
	return wire.Decode(body)
}
