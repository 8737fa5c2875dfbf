// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// Every entity has a standalone Validate<Entity> function built on this package and
// called by its service before any write. Stores never validate; handlers never validate.
// Email and URL rules delegate to go-playground/validator so they match the formats
// the exercises accept.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/querylab/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

	engine     *validator.Validate
	engineOnce sync.Once
)

// fieldEngine returns the shared go-playground instance; it caches tag parsing.
func fieldEngine() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
	})
	return engine
}

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. Create one per operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	return v.MinLenMessage(field, value, min, fmt.Sprintf("Minimum %d characters", min))
}

// MinLenMessage is [Validator.MinLen] with a caller-supplied message.
func (v *Validator) MinLenMessage(field, value string, min int, message string) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, message)
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// Min fails if the value is below min.
func (v *Validator) Min(field string, value, min int) *Validator {
	return v.MinMessage(field, value, min, fmt.Sprintf("Must be at least %d", min))
}

// MinMessage is [Validator.Min] with a caller-supplied message.
func (v *Validator) MinMessage(field string, value, min int, message string) *Validator {
	if value < min {
		v.add(field, message)
	}
	return v
}

// FloatRange fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) FloatRange(field string, value, min, max float64) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %g and %g", min, max))
	}
	return v
}

// FloatMin fails if the value is below min.
func (v *Validator) FloatMin(field string, value, min float64) *Validator {
	if value < min {
		v.add(field, fmt.Sprintf("Must be at least %g", min))
	}
	return v
}

// Email fails if the value is not a valid email address.
func (v *Validator) Email(field, value string) *Validator {
	return v.EmailMessage(field, value, "Must be a valid email address")
}

// EmailMessage is [Validator.Email] with a caller-supplied message.
func (v *Validator) EmailMessage(field, value, message string) *Validator {
	if fieldEngine().Var(value, "required,email") != nil {
		v.add(field, message)
	}
	return v
}

// URL fails if the value is not an absolute URL.
func (v *Validator) URL(field, value string) *Validator {
	return v.URLMessage(field, value, "Must be a valid URL")
}

// URLMessage is [Validator.URL] with a caller-supplied message.
func (v *Validator) URLMessage(field, value, message string) *Validator {
	if fieldEngine().Var(value, "required,url") != nil {
		v.add(field, message)
	}
	return v
}

// Pattern fails with message if the value does not match pattern.
func (v *Validator) Pattern(field, value string, pattern *regexp.Regexp, message string) *Validator {
	if !pattern.MatchString(value) {
		v.add(field, message)
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("energy", energy < 0, "Must not be negative")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a VALIDATION_ERROR [apperr.AppError] if any rule failed, or nil.
//
// This is the only output method; call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
