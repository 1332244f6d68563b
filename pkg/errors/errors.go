package errors

import (
	"errors"
	"fmt"
)

const (
	CodeConflict        = "CONFLICT"
	CodeBadInput        = "BAD_INPUT"
	CodeValidationError = "VALIDATION_ERROR"
	CodeWeakPassword    = "WEAK_PASSWORD"
)

var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrUnauthorized            = errors.New("unauthorized access")
	ErrInsufficientPermissions = errors.New("insufficient permissions")

	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserInactive      = errors.New("user account is inactive")
	ErrEmailNotVerified  = errors.New("email address is not verified")
	ErrActivationInvalid = errors.New("data for account activation is not correct")

	ErrInvalidInput = errors.New("invalid input data")
	ErrWeakPassword = errors.New("password does not meet requirements")

	ErrTokenInvalid = errors.New("token is invalid")

	ErrProductNotFound   = errors.New("product not found")
	ErrProductRejected   = errors.New("product was rejected by the store")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderLineRejected = errors.New("order line was rejected by the store")

	ErrNotFound     = errors.New("record not found")
	ErrMultipleRows = errors.New("multiple records match lookup")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Conflict reports a uniqueness violation. The message names the offending value.
func Conflict(message string, err error) *AppError {
	return NewAppError(CodeConflict, message, err)
}

func BadInput(message string, err error) *AppError {
	return NewAppError(CodeBadInput, message, err)
}

// HasCode reports whether err wraps an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
