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

package logx

import (
	"errors"
	"fmt"
	"testing"

	"dirpx.dev/apierror"
	"dirpx.dev/apierror/code"
	"dirpx.dev/apierror/detail"
)

func TestFields_DomainError(t *testing.T) {
	root := errors.New("pg: connection refused")
	e := apierror.New(code.Unavailable, "db is down",
		apierror.WithDetail(detail.NewErrorInfo("PG_DOWN", map[string]string{"host": "db:5432"})),
		apierror.WithCause(fmt.Errorf("query users: %w", root)),
	)

	f := Fields(e)

	if f["error_code"] != "UNAVAILABLE" {
		t.Fatalf("error_code = %v", f["error_code"])
	}
	if f["http_status"] != 503 {
		t.Fatalf("http_status = %v", f["http_status"])
	}
	if f["error_cause"] != "query users: pg: connection refused" {
		t.Fatalf("error_cause = %v", f["error_cause"])
	}
	chain, ok := f["error_cause_chain"].([]string)
	if !ok || len(chain) != 2 || chain[1] != "pg: connection refused" {
		t.Fatalf("error_cause_chain = %v", f["error_cause_chain"])
	}
	details, ok := f["error_details"].([]string)
	if !ok || len(details) != 1 {
		t.Fatalf("error_details = %v", f["error_details"])
	}
	if details[0] != "ERROR_INFO reason=PG_DOWN metadata=1" {
		t.Fatalf("detail summary = %q", details[0])
	}
}

func TestFields_PlainError(t *testing.T) {
	f := Fields(errors.New("boom"))
	if f["error"] != "boom" {
		t.Fatalf("error = %v", f["error"])
	}
	if _, ok := f["error_code"]; ok {
		t.Fatal("plain error got domain fields")
	}
}

func TestFields_NoCause(t *testing.T) {
	f := Fields(apierror.New(code.NotFound, "missing"))
	if _, ok := f["error_cause"]; ok {
		t.Fatal("cause fields present without a cause")
	}
	if _, ok := f["error_details"]; ok {
		t.Fatal("detail fields present without details")
	}
}
