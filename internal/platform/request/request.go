// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/taibuivan/querylab/internal/platform/apperr"
	"github.com/taibuivan/querylab/internal/platform/ctxutil"
	"github.com/taibuivan/querylab/internal/platform/sec"
	"github.com/taibuivan/querylab/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ID parses a named URL parameter as a positive integer primary key.

Returns:
  - int64: the parsed identifier
  - error: apperr.BadRequest if the parameter is missing or not a positive integer
*/
func ID(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.BadRequest(fmt.Sprintf("Invalid %s: %q", name, raw))
	}
	return id, nil
}

/*
OptionalQuery returns a pointer to the query value, or nil when the key is absent.

An explicitly empty value ("?name=") is returned as a pointer to "" so callers can
tell "not supplied" from "supplied but empty".
*/
func OptionalQuery(request *http.Request, key string) *string {
	values := request.URL.Query()
	if !values.Has(key) {
		return nil
	}
	value := values.Get(key)
	return &value
}

/*
QueryInt parses an integer query parameter, returning fallback when absent.
*/
func QueryInt(request *http.Request, key string, fallback int) (int, error) {
	raw := request.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.BadRequest(fmt.Sprintf("Query parameter %s must be an integer", key))
	}
	return value, nil
}

/*
QueryFloat parses a float query parameter, returning fallback when absent.
*/
func QueryFloat(request *http.Request, key string, fallback float64) (float64, error) {
	raw := request.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperr.BadRequest(fmt.Sprintf("Query parameter %s must be a number", key))
	}
	return value, nil
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

// DateLayout is the calendar date format accepted in request bodies and query strings.
const DateLayout = "2006-01-02"

/*
Date parses an optional YYYY-MM-DD value. An empty value yields the zero time.

Returns:
  - error: apperr.ValidationError naming field when the value is malformed
*/
func Date(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperr.ValidationError("Validation failed",
			apperr.FieldError{Field: field, Message: "Must be a date formatted YYYY-MM-DD"})
	}
	return parsed, nil
}
