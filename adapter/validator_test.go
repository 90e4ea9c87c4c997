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

package adapter

import (
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/apierror/code"
	"dirpx.dev/apierror/detail"
)

// newEngine builds a validator configured the way request handlers configure
// it: field paths come from json tags, so violations reference the payload
// the client actually sent.
func newEngine() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func TestFromValidationErrors(t *testing.T) {
	type signupRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"min=8"`
	}

	err := newEngine().Struct(signupRequest{Password: "x"})
	if err == nil {
		t.Fatal("engine reported no violations")
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("engine failure type = %T", err)
	}

	e := FromValidationErrors(verrs)

	if e.Code != code.InvalidArgument {
		t.Fatalf("code = %s, want INVALID_ARGUMENT", e.Code)
	}
	if len(e.Details) != 1 {
		t.Fatalf("details = %d, want exactly one BAD_REQUEST", len(e.Details))
	}
	br, ok := e.Details[0].(detail.BadRequest)
	if !ok {
		t.Fatalf("detail type = %T", e.Details[0])
	}
	if len(br.FieldViolations) != 2 {
		t.Fatalf("violations = %#v", br.FieldViolations)
	}

	// Struct field order is the engine's iteration order.
	if br.FieldViolations[0].Field != "email" || br.FieldViolations[1].Field != "password" {
		t.Fatalf("fields = %q, %q", br.FieldViolations[0].Field, br.FieldViolations[1].Field)
	}
	if !strings.Contains(br.FieldViolations[0].Description, "required") {
		t.Fatalf("email description = %q", br.FieldViolations[0].Description)
	}
	if !strings.Contains(br.FieldViolations[1].Description, "min") {
		t.Fatalf("password description = %q", br.FieldViolations[1].Description)
	}
}

func TestFromValidationErrors_NestedPath(t *testing.T) {
	type emailAddress struct {
		Email string `json:"email" validate:"required"`
	}
	type contactRequest struct {
		FullName string         `json:"fullName" validate:"required"`
		Emails   []emailAddress `json:"emailAddresses" validate:"dive"`
	}

	err := newEngine().Struct(contactRequest{
		FullName: "Ada",
		Emails:   []emailAddress{{Email: "a@b.c"}, {}},
	})
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("engine failure type = %T", err)
	}

	e := FromValidationErrors(verrs)
	br := e.Details[0].(detail.BadRequest)
	if len(br.FieldViolations) != 1 {
		t.Fatalf("violations = %#v", br.FieldViolations)
	}
	if got := br.FieldViolations[0].Field; got != "emailAddresses[1].email" {
		t.Fatalf("field path = %q, want emailAddresses[1].email", got)
	}
}

func TestFromValidationErrors_MultipleMessagesPerField(t *testing.T) {
	f := Flattened{
		Fields: []FieldMessages{
			{Field: "password", Messages: []string{`failed "min" validation (expected 8)`, `failed "containsany" validation (expected 0123456789)`}},
		},
	}
	e := FromFlattened(f)
	br := e.Details[0].(detail.BadRequest)
	if !strings.Contains(br.FieldViolations[0].Description, "; ") {
		t.Fatalf("messages not joined: %q", br.FieldViolations[0].Description)
	}
}
