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

// Package ginx wires the error model into gin: a request-ID middleware for
// correlation and an error-handling middleware that acts as the single
// global catch point for handler failures.
package ginx

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dirpx.dev/apierror"
	"dirpx.dev/apierror/code"
	"dirpx.dev/apierror/logx"
	"dirpx.dev/apierror/wire"
)

// requestIDKey is the gin context key the request ID is stored under.
const requestIDKey = "request_id"

// headerRequestID is the correlation header, read from the request and
// echoed on the response.
const headerRequestID = "X-Request-ID"

// RequestID returns a middleware that propagates the caller's X-Request-ID
// or generates a fresh UUID when the header is absent. The ID is stored in
// the context and echoed on the response for correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// GetRequestID extracts the request ID placed by RequestID. It falls back to
// the request header and returns "" when neither is present.
func GetRequestID(c *gin.Context) string {
	if v, exists := c.Get(requestIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return c.GetHeader(headerRequestID)
}

// Abort attaches err to the gin context and stops the handler chain. The
// installed ErrorHandler turns it into the wire response.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler returns the global error-handling middleware.
//
// After the chain runs, the last collected error is written as a wire
// response: domain errors encode as themselves, anything else is normalized
// to UNKNOWN/"Unknown" so internal detail never reaches the client. The full
// error — cause chain included — is logged server-side through logx when a
// logger is provided.
//
// Handlers that already wrote a response are left alone.
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		e, ok := apierror.As(err)
		if !ok {
			e = apierror.New(code.Unknown, "Unknown", apierror.WithCause(err))
		}

		if logger != nil {
			logx.Entry(logger, e).WithField(requestIDKey, GetRequestID(c)).Error(e.Message)
		}

		p, perr := wire.Encode(e)
		if perr != nil {
			c.Data(code.Internal.HTTPStatus(), wire.ContentType, nil)
			return
		}
		c.Data(p.Status, p.ContentType, p.Body)
	}
}
