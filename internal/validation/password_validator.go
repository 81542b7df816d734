package validation

import "unicode"

const MinPasswordLength = 8

type PasswordValidator interface {
	ValidatePassword(password string) bool
}

type DefaultPasswordValidator struct{}

func NewDefaultPasswordValidator() *DefaultPasswordValidator {
	return &DefaultPasswordValidator{}
}

// ValidatePassword requires at least MinPasswordLength bytes and one letter.
func (v *DefaultPasswordValidator) ValidatePassword(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}
	for _, c := range password {
		if unicode.IsLetter(c) {
			return true
		}
	}
	return false
}
