// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package apitest drives exercise handlers through a chi router in handler tests.
//
// Requests are authenticated by role without minting tokens: [Do] injects claims directly,
// so the role guards registered by each handler run exactly as in production.
package apitest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/taibuivan/querylab/internal/platform/ctxutil"
	"github.com/taibuivan/querylab/internal/platform/sec"
)

// Anonymous sends a request without claims.
const Anonymous sec.UserRole = ""

// Router mounts routes the way the API server does.
func Router(register func(chi.Router)) http.Handler {
	router := chi.NewRouter()
	register(router)
	return router
}

// Do serves one request. A non-nil body is encoded as JSON.
func Do(t *testing.T, handler http.Handler, method, target string, body any, role sec.UserRole) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, reader)
	if role != Anonymous {
		claims := &sec.AuthClaims{UserID: "test", Role: string(role)}
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

// Report decodes the report string of a successful report response.
func Report(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Data struct {
			Report string `json:"report"`
		} `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode report: %v (body %s)", err, recorder.Body.String())
	}
	return envelope.Data.Report
}

// Data decodes the data member of a success envelope into target.
func Data(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()

	envelope := struct {
		Data any `json:"data"`
	}{Data: target}
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode data: %v (body %s)", err, recorder.Body.String())
	}
}

// Code decodes the error code of an error envelope.
func Code(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error: %v (body %s)", err, recorder.Body.String())
	}
	return envelope.Code
}
