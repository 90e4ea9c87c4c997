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

// Package logx renders API errors for structured logging.
//
// This is the deliberate counterpart of the wire form: wire JSON never
// carries causes or other internals, so this package does. The fields it
// produces stay server-side.
package logx

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"dirpx.dev/apierror"
	"dirpx.dev/apierror/adapter"
	"dirpx.dev/apierror/detail"
)

// Fields renders err as logrus fields.
//
// For a domain error the fields carry the code, its transport statuses, the
// message, compact one-line summaries of the details, and the full cause
// chain. For any other error only "error" is set.
func Fields(err error) logrus.Fields {
	e, ok := apierror.As(err)
	if !ok {
		return logrus.Fields{"error": err.Error()}
	}

	desc := adapter.ToDescriptor(e)
	f := logrus.Fields{
		"error_code":  desc.Code,
		"error_msg":   desc.Message,
		"http_status": desc.HTTPStatus,
	}

	if len(e.Details) > 0 {
		summaries := make([]string, len(e.Details))
		for i, d := range e.Details {
			summaries[i] = summarize(d)
		}
		f["error_details"] = summaries
	}

	if chain := causeChain(e); len(chain) > 0 {
		f["error_cause"] = chain[0]
		if len(chain) > 1 {
			f["error_cause_chain"] = chain
		}
	}
	return f
}

// Entry is a convenience wrapper: logger.WithFields(Fields(err)).
func Entry(logger *logrus.Logger, err error) *logrus.Entry {
	return logger.WithFields(Fields(err))
}

// causeChain walks the unwrap chain below the domain error, outermost first.
func causeChain(e *apierror.Error) []string {
	var chain []string
	for cause := e.Cause; cause != nil; cause = errors.Unwrap(cause) {
		chain = append(chain, cause.Error())
	}
	return chain
}

// summarize renders one detail as a single log-friendly line.
func summarize(d detail.Detail) string {
	switch x := d.(type) {
	case detail.ErrorInfo:
		return fmt.Sprintf("%s reason=%s metadata=%d", x.Kind(), x.Reason, len(x.Metadata))
	case detail.BadRequest:
		return fmt.Sprintf("%s violations=%d", x.Kind(), len(x.FieldViolations))
	case detail.LocalizedMessage:
		return fmt.Sprintf("%s locale=%s", x.Kind(), x.Locale)
	default:
		return string(d.Kind())
	}
}
