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

package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dirpx.dev/apierror"
	"dirpx.dev/apierror/code"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	e := apierror.New(code.TooManyRequests, "slow down")

	if err := Write(rec, e, Meta{RequestID: "req-1", RetryAfterSeconds: 30}); err != nil {
		t.Fatalf("write: %v", err)
	}

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
	if got := rec.Header().Get("Retry-After"); got != "30" {
		t.Fatalf("retry-after = %q", got)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "req-1" {
		t.Fatalf("request id = %q", got)
	}
	if body := rec.Body.String(); body != `{"code":"TOO_MANY_REQUESTS","message":"slow down","details":[]}` {
		t.Fatalf("body = %s", body)
	}
}

func TestWriteAny_DomainError(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := WriteAny(rec, apierror.New(code.NotFound, "no such project"), Meta{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestWriteAny_NormalizesUnclassified(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := WriteAny(rec, errors.New("pg: connection refused"), Meta{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := rec.Body.String()
	if body != `{"code":"UNKNOWN","message":"Unknown","details":[]}` {
		t.Fatalf("body = %s", body)
	}
	if strings.Contains(body, "connection refused") {
		t.Fatal("internal detail leaked to the wire")
	}
}

func TestDecodeResponse(t *testing.T) {
	e := apierror.New(code.Unavailable, "maintenance window")
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		_ = Write(rw, e, Meta{})
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
	got, err := DecodeResponse(resp)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Equal(e) {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}
