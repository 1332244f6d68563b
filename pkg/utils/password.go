package utils

import (
	"fmt"
	"unicode"

	appErrors "ecommerce-backend/pkg/errors"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// ValidatePassword requires MinPasswordLength characters with at least
// one letter and one digit.
func ValidatePassword(password string) error {
	var hasLetter, hasNumber bool

	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	if len([]rune(password)) < MinPasswordLength || !hasLetter || !hasNumber {
		return fmt.Errorf("%w: at least %d characters with a letter and a number",
			appErrors.ErrWeakPassword, MinPasswordLength)
	}

	return nil
}
