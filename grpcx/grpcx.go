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

// Package grpcx adapts API errors to gRPC. The detail variants have exact
// counterparts in google.rpc (ErrorInfo, BadRequest, LocalizedMessage), so
// the mapping is lossless in both directions for the known kinds; opaque
// unknown details have no proto form and are dropped at this boundary.
package grpcx

import (
	"context"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"dirpx.dev/apierror"
	"dirpx.dev/apierror/code"
	"dirpx.dev/apierror/detail"
)

// UnaryServerInterceptor returns a gRPC interceptor that maps domain errors
// into gRPC statuses with google.rpc details. Errors that are not domain
// errors are returned as-is; normalizing them is the server's own policy
// decision, not this adapter's.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		e, ok := apierror.As(err)
		if !ok {
			return nil, err
		}
		return nil, ToStatus(e).Err()
	}
}

// ToStatus converts a domain error into a gRPC status. The status code comes
// from the code table's gRPC projection; each known detail becomes its
// google.rpc counterpart.
func ToStatus(e *apierror.Error) *gstatus.Status {
	base := gstatus.New(e.Code.GRPCStatus(), e.Message)

	var msgs []protoadapt.MessageV1
	for _, d := range e.Details {
		switch x := d.(type) {
		case detail.ErrorInfo:
			msgs = append(msgs, &errdetails.ErrorInfo{
				Reason:   x.Reason,
				Metadata: x.Metadata,
			})
		case detail.BadRequest:
			violations := make([]*errdetails.BadRequest_FieldViolation, 0, len(x.FieldViolations))
			for _, v := range x.FieldViolations {
				violations = append(violations, &errdetails.BadRequest_FieldViolation{
					Field:       v.Field,
					Description: v.Description,
				})
			}
			msgs = append(msgs, &errdetails.BadRequest{FieldViolations: violations})
		case detail.LocalizedMessage:
			msgs = append(msgs, &errdetails.LocalizedMessage{
				Locale:  x.Locale,
				Message: x.Message,
			})
		}
	}

	if len(msgs) > 0 {
		if with, err := base.WithDetails(msgs...); err == nil {
			return with
		}
	}
	return base
}

// FromStatus reconstructs a domain error from a gRPC error, if it carries
// one. The gRPC status code is projected back onto the closed taxonomy
// (codes with no counterpart collapse to UNKNOWN) and the google.rpc details
// are converted back to their variants.
func FromStatus(err error) (*apierror.Error, bool) {
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}

	e := apierror.New(code.FromGRPC(st.Code()), st.Message())
	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			e = e.WithDetail(detail.NewErrorInfo(x.GetReason(), x.GetMetadata()))
		case *errdetails.BadRequest:
			violations := make([]detail.FieldViolation, 0, len(x.GetFieldViolations()))
			for _, v := range x.GetFieldViolations() {
				violations = append(violations, detail.FieldViolation{
					Field:       v.GetField(),
					Description: v.GetDescription(),
				})
			}
			e = e.WithDetail(detail.NewBadRequest(violations))
		case *errdetails.LocalizedMessage:
			e = e.WithDetail(detail.NewLocalizedMessage(x.GetLocale(), x.GetMessage()))
		}
	}
	return e, true
}
