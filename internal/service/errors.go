package service

import (
	"ecommerce-backend/internal/validator"
	appErrors "ecommerce-backend/pkg/errors"
)

func validationError(err error) error {
	return appErrors.NewAppError(appErrors.CodeValidationError, validator.Describe(err), appErrors.ErrInvalidInput)
}
