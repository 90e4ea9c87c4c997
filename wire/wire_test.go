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

package wire

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"dirpx.dev/apierror"
	"dirpx.dev/apierror/code"
	"dirpx.dev/apierror/detail"
)

func TestEncode_InternalError(t *testing.T) {
	p, err := Encode(apierror.New(code.Internal, "internal error"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if p.Status != 500 {
		t.Fatalf("status = %d, want 500", p.Status)
	}
	if !strings.Contains(p.ContentType, "application/json") {
		t.Fatalf("content type = %q", p.ContentType)
	}
	if string(p.Body) != `{"code":"INTERNAL","message":"internal error","details":[]}` {
		t.Fatalf("body = %s", p.Body)
	}
}

func TestEncode_StructuredInfo(t *testing.T) {
	e := apierror.New(code.FailedPrecondition, "the project's api is disabled",
		apierror.WithDetail(detail.NewErrorInfo("API_DISABLED", map[string]string{"resource": "projects/123"})),
	)
	p, err := Encode(e)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if p.Status != 400 {
		t.Fatalf("status = %d, want 400", p.Status)
	}
	want := `{"code":"FAILED_PRECONDITION","message":"the project's api is disabled","details":[{"@type":"ERROR_INFO","reason":"API_DISABLED","metadata":{"resource":"projects/123"}}]}`
	if string(p.Body) != want {
		t.Fatalf("body = %s\nwant   %s", p.Body, want)
	}
}

func TestEncode_NilError(t *testing.T) {
	if _, err := Encode(nil); err == nil {
		t.Fatal("Encode(nil) succeeded")
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		e    *apierror.Error
	}{
		{"no details", apierror.New(code.NotFound, "no such project")},
		{
			"error info",
			apierror.New(code.Unavailable, "try later",
				apierror.WithDetail(detail.NewErrorInfo("ZONE_DOWN", map[string]string{"zone": "us-east1-a"}))),
		},
		{
			"bad request",
			apierror.New(code.InvalidArgument, "Validation Error",
				apierror.WithDetail(detail.NewBadRequest([]detail.FieldViolation{
					{Field: "email", Description: "is required"},
					{Field: "password", Description: "too short"},
				}))),
		},
		{
			"all variants",
			apierror.New(code.TooManyRequests, "slow down",
				apierror.WithDetails(
					detail.NewErrorInfo("RATE_LIMITED", map[string]string{"limit": "100"}),
					detail.NewBadRequest(nil),
					detail.NewLocalizedMessage("es-MX", "demasiadas solicitudes"),
				)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Encode(tt.e)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := Decode(p.Body)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !got.Equal(tt.e) {
				t.Fatalf("round trip mismatch:\nin  %#v\nout %#v", tt.e, got)
			}
			if got == tt.e {
				t.Fatal("decode returned the sender's instance")
			}
		})
	}
}

func TestRoundTrip_UnknownDetailVariant(t *testing.T) {
	body := []byte(`{"code":"UNAVAILABLE","message":"x","details":[{"@type":"RETRY_INFO","retryDelay":"30s"}]}`)
	e, err := Decode(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p, err := Encode(e)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(p.Body) != string(body) {
		t.Fatalf("unknown variant not preserved:\nin  %s\nout %s", body, p.Body)
	}
}

func TestRoundTrip_ViolationFidelity(t *testing.T) {
	in := apierror.New(code.InvalidArgument, "Validation Error",
		apierror.WithDetail(detail.NewBadRequest([]detail.FieldViolation{
			{Field: "emailAddresses[1].email", Description: "invalid address"},
			{Field: "fullName", Description: "is required"},
		})),
	)
	p, err := Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := Decode(p.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	br, ok := out.Details[0].(detail.BadRequest)
	if !ok {
		t.Fatalf("detail type = %T", out.Details[0])
	}
	if len(br.FieldViolations) != 2 {
		t.Fatalf("violations = %d, want 2", len(br.FieldViolations))
	}
	if br.FieldViolations[0].Field != "emailAddresses[1].email" ||
		br.FieldViolations[1].Field != "fullName" {
		t.Fatalf("order or fields not preserved: %#v", br.FieldViolations)
	}
	if br.FieldViolations[0].Description != "invalid address" {
		t.Fatalf("description not preserved: %#v", br.FieldViolations[0])
	}
}

func TestDecode_MalformedBody(t *testing.T) {
	inputs := []string{
		"",
		"not json",
		`{"code":"INTERNAL"`,
	}
	for _, in := range inputs {
		_, err := Decode([]byte(in))
		if err == nil {
			t.Errorf("Decode(%q) succeeded", in)
			continue
		}
		if !IsMalformedBody(err) {
			t.Errorf("Decode(%q): error = %v, want malformed body", in, err)
		}
		if IsSchemaViolation(err) {
			t.Errorf("Decode(%q): classified as both kinds", in)
		}
	}
}

func TestDecode_SchemaViolation(t *testing.T) {
	inputs := []string{
		`{"code":"NOT_A_CODE","message":"x","details":[]}`,
		`{"code":"internal","message":"x","details":[]}`,
		`{"message":"x","details":[]}`,
		`{"code":"INTERNAL","details":[]}`,
		`{"code":"INTERNAL","message":"x"}`,
		`{"code":"INTERNAL","message":"x","details":null}`,
		`{"code":"INTERNAL","message":7,"details":[]}`,
		`{"code":7,"message":"x","details":[]}`,
		`{"code":"INTERNAL","message":"x","details":[{"reason":"Y_Z"}]}`,
		`{"code":"INTERNAL","message":"x","details":[{"@type":"ERROR_INFO"}]}`,
		`{"code":"INTERNAL","message":"x","details":[1]}`,
		`[]`,
		`"INTERNAL"`,
	}
	for _, in := range inputs {
		_, err := Decode([]byte(in))
		if err == nil {
			t.Errorf("Decode(%s) succeeded", in)
			continue
		}
		if !IsSchemaViolation(err) {
			t.Errorf("Decode(%s): error = %v, want schema violation", in, err)
		}
	}
}

func TestDecode_WrapsCause(t *testing.T) {
	_, err := Decode([]byte("not json"))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error type = %T", err)
	}
	var syn *json.SyntaxError
	if !errors.As(de.Cause, &syn) {
		t.Fatalf("cause = %T, want *json.SyntaxError", de.Cause)
	}
}

func TestDecode_IgnoresEmbeddedStatus(t *testing.T) {
	// A sender that smuggles a status into the body must not influence the
	// decoded value; status comes from the transport envelope only.
	body := []byte(`{"code":"NOT_FOUND","message":"gone","details":[],"status":200}`)
	e, err := Decode(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Code != code.NotFound {
		t.Fatalf("code = %s", e.Code)
	}
	if e.Code.HTTPStatus() != 404 {
		t.Fatalf("status = %d, want 404", e.Code.HTTPStatus())
	}
}
