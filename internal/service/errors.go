// Package service holds the business rules: authentication, the admin gate,
// catalog, library and game configuration management. Every failure is an
// oops error carrying one of the codes below.
package service

import (
	"github.com/samber/oops"
)

// Error codes carried by service errors.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInternal           = "INTERNAL"
)

// ErrorCode returns the code carried by err, or CodeInternal for errors
// that did not come from this package.
func ErrorCode(err error) string {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return CodeInternal
	}
	if code, ok := oopsErr.Code().(string); ok && code != "" {
		return code
	}
	return CodeInternal
}

// IsCode reports whether err carries code.
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}

func internal(op string, err error) error {
	return oops.Code(CodeInternal).With("operation", op).Wrap(err)
}
