// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate checks request input and reports every failure at once.
//
// Services chain rules on a [Validator] and finish with [Validator.Err] or
// [Validator.ErrWithMessage]. Request payloads that only need presence checks
// use `validate:"..."` tags through [Struct] instead.
package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ianbriton/blogapi/internal/platform/apperr"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// # Password Policy

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// Password policy messages, one per failed rule.
const (
	MsgPasswordTooShort = "Passwords must be at least 8 characters."
	MsgPasswordNonAlnum = "Passwords must have at least one non alphanumeric character."
	MsgPasswordDigit    = "Passwords must have at least one digit ('0'-'9')."
	MsgPasswordLower    = "Passwords must have at least one lowercase ('a'-'z')."
	MsgPasswordUpper    = "Passwords must have at least one uppercase ('A'-'Z')."
)

const (
	msgRequired     = "This field is required"
	msgInvalidEmail = "Must be a valid email address"
)

// Validator accumulates [apperr.FieldError]s. The zero value is ready to use;
// use one per operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required rejects blank values.
func (v *Validator) Required(field, value string) *Validator {
	return v.Custom(field, strings.TrimSpace(value) == "", msgRequired)
}

// MaxLen rejects values longer than limit runes.
func (v *Validator) MaxLen(field, value string, limit int) *Validator {
	return v.Custom(field, utf8.RuneCountInString(value) > limit, fmt.Sprintf("Maximum %d characters", limit))
}

// MinLen rejects values shorter than limit runes.
func (v *Validator) MinLen(field, value string, limit int) *Validator {
	return v.Custom(field, utf8.RuneCountInString(value) < limit, fmt.Sprintf("Minimum %d characters", limit))
}

// Email rejects anything but a bare address; display-name forms such as
// "Alice <alice@example.com>" fail.
func (v *Validator) Email(field, value string) *Validator {
	err := structValidator().Var(value, "email")
	return v.Custom(field, err != nil, msgInvalidEmail)
}

// Password applies the password policy and records one error per failed rule.
func (v *Validator) Password(field, value string) *Validator {
	var hasDigit, hasLower, hasUpper, hasOther bool
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasOther = true
		}
	}

	return v.Custom(field, utf8.RuneCountInString(value) < MinPasswordLength, MsgPasswordTooShort).
		Custom(field, !hasOther, MsgPasswordNonAlnum).
		Custom(field, !hasDigit, MsgPasswordDigit).
		Custom(field, !hasLower, MsgPasswordLower).
		Custom(field, !hasUpper, MsgPasswordUpper)
}

// Custom records message against field when failed is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
	}
	return v
}

// HasErrors reports whether any rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Err returns nil or a VALIDATION_ERROR headed "Validation failed".
func (v *Validator) Err() error {
	return v.ErrWithMessage("Validation failed")
}

// ErrWithMessage is [Validator.Err] with a caller supplied headline.
func (v *Validator) ErrWithMessage(message string) error {
	if !v.HasErrors() {
		return nil
	}
	return apperr.ValidationError(message, v.errs...)
}
